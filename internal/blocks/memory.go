package blocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryBlockRepository is an in-memory implementation for scaffolding and tests.
type MemoryBlockRepository struct {
	mu       sync.RWMutex
	blocks   map[uuid.UUID]*ContentBlock
	keyIndex map[string]uuid.UUID
	versions map[uuid.UUID]*ContentBlockVersion
}

// NewMemoryBlockRepository creates an empty in-memory block repository.
func NewMemoryBlockRepository() *MemoryBlockRepository {
	return &MemoryBlockRepository{
		blocks:   make(map[uuid.UUID]*ContentBlock),
		keyIndex: make(map[string]uuid.UUID),
		versions: make(map[uuid.UUID]*ContentBlockVersion),
	}
}

var _ BlockRepository = (*MemoryBlockRepository)(nil)

func addressKey(section, blockKey string) string {
	return strings.ToLower(section) + "\x00" + strings.ToLower(blockKey)
}

// Create inserts the supplied block.
func (m *MemoryBlockRepository) Create(_ context.Context, record *ContentBlock) (*ContentBlock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneBlock(record)
	m.blocks[copied.ID] = copied
	m.keyIndex[addressKey(copied.Section, copied.BlockKey)] = copied.ID
	return cloneBlock(copied), nil
}

// GetByID retrieves a block by identifier.
func (m *MemoryBlockRepository) GetByID(_ context.Context, id uuid.UUID) (*ContentBlock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.blocks[id]
	if !ok {
		return nil, &NotFoundError{Resource: "content_block", Key: id.String()}
	}
	return cloneBlock(rec), nil
}

// GetByKey retrieves a block by its section and key, returning NotFoundError when absent.
func (m *MemoryBlockRepository) GetByKey(_ context.Context, section, blockKey string) (*ContentBlock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.keyIndex[addressKey(section, blockKey)]
	if !ok {
		return nil, &NotFoundError{Resource: "content_block", Key: blockAddress(section, blockKey)}
	}
	return cloneBlock(m.blocks[id]), nil
}

// List returns all blocks ordered by section, sort order, and key.
func (m *MemoryBlockRepository) List(_ context.Context) ([]*ContentBlock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*ContentBlock, 0, len(m.blocks))
	for _, rec := range m.blocks {
		out = append(out, cloneBlock(rec))
	}
	sortBlocks(out)
	return out, nil
}

// ListSection returns the blocks of one section ordered by sort order and key.
func (m *MemoryBlockRepository) ListSection(_ context.Context, section string) ([]*ContentBlock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*ContentBlock, 0)
	for _, rec := range m.blocks {
		if strings.EqualFold(rec.Section, section) {
			out = append(out, cloneBlock(rec))
		}
	}
	sortBlocks(out)
	return out, nil
}

// Search matches blocks by case-insensitive substring across text fields.
func (m *MemoryBlockRepository) Search(_ context.Context, query string) ([]*ContentBlock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]*ContentBlock, 0)
	for _, rec := range m.blocks {
		if blockMatches(rec, needle) {
			out = append(out, cloneBlock(rec))
		}
	}
	sortBlocks(out)
	return out, nil
}

// Update replaces the stored block.
func (m *MemoryBlockRepository) Update(_ context.Context, record *ContentBlock) (*ContentBlock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.blocks[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "content_block", Key: record.ID.String()}
	}
	delete(m.keyIndex, addressKey(existing.Section, existing.BlockKey))

	copied := cloneBlock(record)
	m.blocks[copied.ID] = copied
	m.keyIndex[addressKey(copied.Section, copied.BlockKey)] = copied.ID
	return cloneBlock(copied), nil
}

// Delete removes a block together with its versions.
func (m *MemoryBlockRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.blocks[id]
	if !ok {
		return &NotFoundError{Resource: "content_block", Key: id.String()}
	}
	delete(m.keyIndex, addressKey(existing.Section, existing.BlockKey))
	delete(m.blocks, id)
	for versionID, version := range m.versions {
		if version.BlockID == id {
			delete(m.versions, versionID)
		}
	}
	return nil
}

// CreateVersion stores a version record.
func (m *MemoryBlockRepository) CreateVersion(_ context.Context, version *ContentBlockVersion) (*ContentBlockVersion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneVersion(version)
	m.versions[copied.ID] = copied
	return cloneVersion(copied), nil
}

// ListVersions returns the versions of a block, newest first.
func (m *MemoryBlockRepository) ListVersions(_ context.Context, blockID uuid.UUID) ([]*ContentBlockVersion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*ContentBlockVersion, 0)
	for _, version := range m.versions {
		if version.BlockID == blockID {
			out = append(out, cloneVersion(version))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Version > out[j].Version
	})
	return out, nil
}

// GetVersion resolves a single version by block and number.
func (m *MemoryBlockRepository) GetVersion(_ context.Context, blockID uuid.UUID, number int) (*ContentBlockVersion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, version := range m.versions {
		if version.BlockID == blockID && version.Version == number {
			return cloneVersion(version), nil
		}
	}
	return nil, &NotFoundError{Resource: "content_block_version", Key: versionKey(blockID, number)}
}

// DeleteVersion removes a single version record.
func (m *MemoryBlockRepository) DeleteVersion(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.versions[id]; !ok {
		return &NotFoundError{Resource: "content_block_version", Key: id.String()}
	}
	delete(m.versions, id)
	return nil
}

func sortBlocks(records []*ContentBlock) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Section != records[j].Section {
			return records[i].Section < records[j].Section
		}
		if records[i].SortOrder != records[j].SortOrder {
			return records[i].SortOrder < records[j].SortOrder
		}
		return records[i].BlockKey < records[j].BlockKey
	})
}

func blockMatches(rec *ContentBlock, needle string) bool {
	if needle == "" {
		return false
	}
	fields := []string{
		rec.Section,
		rec.BlockKey,
		rec.TitleEN,
		rec.TitleDA,
		derefString(rec.DescriptionEN),
		derefString(rec.DescriptionDA),
		derefString(rec.Value),
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
