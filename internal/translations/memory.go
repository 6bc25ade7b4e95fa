package translations

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryTranslationRepository is an in-memory implementation for scaffolding and tests.
type MemoryTranslationRepository struct {
	mu           sync.RWMutex
	translations map[uuid.UUID]*Translation
	keyIndex     map[string]uuid.UUID
	versions     map[uuid.UUID]*TranslationVersion
}

// NewMemoryTranslationRepository creates an empty in-memory translation repository.
func NewMemoryTranslationRepository() *MemoryTranslationRepository {
	return &MemoryTranslationRepository{
		translations: make(map[uuid.UUID]*Translation),
		keyIndex:     make(map[string]uuid.UUID),
		versions:     make(map[uuid.UUID]*TranslationVersion),
	}
}

var _ TranslationRepository = (*MemoryTranslationRepository)(nil)

// Create inserts the supplied translation.
func (m *MemoryTranslationRepository) Create(_ context.Context, record *Translation) (*Translation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneTranslation(record)
	m.translations[copied.ID] = copied
	m.keyIndex[strings.ToLower(copied.Key)] = copied.ID
	return cloneTranslation(copied), nil
}

// GetByID retrieves a translation by identifier.
func (m *MemoryTranslationRepository) GetByID(_ context.Context, id uuid.UUID) (*Translation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.translations[id]
	if !ok {
		return nil, &NotFoundError{Resource: "translation", Key: id.String()}
	}
	return cloneTranslation(rec), nil
}

// GetByKey retrieves a translation by its key, returning NotFoundError when absent.
func (m *MemoryTranslationRepository) GetByKey(_ context.Context, key string) (*Translation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.keyIndex[strings.ToLower(key)]
	if !ok {
		return nil, &NotFoundError{Resource: "translation", Key: key}
	}
	return cloneTranslation(m.translations[id]), nil
}

// List returns all translations ordered by key.
func (m *MemoryTranslationRepository) List(_ context.Context) ([]*Translation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Translation, 0, len(m.translations))
	for _, rec := range m.translations {
		out = append(out, cloneTranslation(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out, nil
}

// Update replaces the stored translation.
func (m *MemoryTranslationRepository) Update(_ context.Context, record *Translation) (*Translation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.translations[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "translation", Key: record.ID.String()}
	}
	delete(m.keyIndex, strings.ToLower(existing.Key))

	copied := cloneTranslation(record)
	m.translations[copied.ID] = copied
	m.keyIndex[strings.ToLower(copied.Key)] = copied.ID
	return cloneTranslation(copied), nil
}

// Delete removes a translation together with its versions.
func (m *MemoryTranslationRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.translations[id]
	if !ok {
		return &NotFoundError{Resource: "translation", Key: id.String()}
	}
	delete(m.keyIndex, strings.ToLower(existing.Key))
	delete(m.translations, id)
	for versionID, version := range m.versions {
		if version.TranslationID == id {
			delete(m.versions, versionID)
		}
	}
	return nil
}

// CreateVersion stores a version record.
func (m *MemoryTranslationRepository) CreateVersion(_ context.Context, version *TranslationVersion) (*TranslationVersion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneTranslationVersion(version)
	m.versions[copied.ID] = copied
	return cloneTranslationVersion(copied), nil
}

// ListVersions returns the versions of a translation, newest first.
func (m *MemoryTranslationRepository) ListVersions(_ context.Context, translationID uuid.UUID) ([]*TranslationVersion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*TranslationVersion, 0)
	for _, version := range m.versions {
		if version.TranslationID == translationID {
			out = append(out, cloneTranslationVersion(version))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Version > out[j].Version
	})
	return out, nil
}

// GetVersion resolves a single version by translation and number.
func (m *MemoryTranslationRepository) GetVersion(_ context.Context, translationID uuid.UUID, number int) (*TranslationVersion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, version := range m.versions {
		if version.TranslationID == translationID && version.Version == number {
			return cloneTranslationVersion(version), nil
		}
	}
	return nil, &NotFoundError{Resource: "translation_version", Key: fmt.Sprintf("%s:%d", translationID.String(), number)}
}

// DeleteVersion removes a single version record.
func (m *MemoryTranslationRepository) DeleteVersion(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.versions[id]; !ok {
		return &NotFoundError{Resource: "translation_version", Key: id.String()}
	}
	delete(m.versions, id)
	return nil
}
