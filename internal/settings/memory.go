package settings

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemorySettingRepository is an in-memory implementation for scaffolding and tests.
type MemorySettingRepository struct {
	mu       sync.RWMutex
	settings map[string]*SiteSetting
}

// NewMemorySettingRepository creates an empty in-memory setting repository.
func NewMemorySettingRepository() *MemorySettingRepository {
	return &MemorySettingRepository{
		settings: make(map[string]*SiteSetting),
	}
}

var _ SettingRepository = (*MemorySettingRepository)(nil)

// GetByKey retrieves a setting by key, returning NotFoundError when absent.
func (m *MemorySettingRepository) GetByKey(_ context.Context, key string) (*SiteSetting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.settings[strings.ToLower(key)]
	if !ok {
		return nil, &NotFoundError{Resource: "site_setting", Key: key}
	}
	return cloneSetting(rec), nil
}

// List returns all settings ordered by key.
func (m *MemorySettingRepository) List(_ context.Context) ([]*SiteSetting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*SiteSetting, 0, len(m.settings))
	for _, rec := range m.settings {
		out = append(out, cloneSetting(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out, nil
}

// Upsert creates or replaces the setting stored under the record's key.
func (m *MemorySettingRepository) Upsert(_ context.Context, record *SiteSetting) (*SiteSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneSetting(record)
	m.settings[strings.ToLower(copied.Key)] = copied
	return cloneSetting(copied), nil
}

// Delete removes a setting by identifier.
func (m *MemorySettingRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, rec := range m.settings {
		if rec.ID == id {
			delete(m.settings, key)
			return nil
		}
	}
	return &NotFoundError{Resource: "site_setting", Key: id.String()}
}
