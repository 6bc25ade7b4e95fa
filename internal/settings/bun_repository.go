package settings

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunSettingRepository persists settings using a Bun-backed database. Settings
// are a small keyed table, so it talks to bun directly instead of going
// through the generic repository layer.
type BunSettingRepository struct {
	db *bun.DB
}

// NewBunSettingRepository constructs a Bun-backed setting repository.
func NewBunSettingRepository(db *bun.DB) *BunSettingRepository {
	return &BunSettingRepository{db: db}
}

var _ SettingRepository = (*BunSettingRepository)(nil)

// GetByKey retrieves a setting by key.
func (r *BunSettingRepository) GetByKey(ctx context.Context, key string) (*SiteSetting, error) {
	if r.db == nil {
		return nil, errors.New("settings: bun repository requires a database")
	}
	var record SiteSetting
	err := r.db.NewSelect().Model(&record).Where("key = ?", key).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Resource: "site_setting", Key: key}
		}
		return nil, err
	}
	return &record, nil
}

// List returns the stored settings ordered by key.
func (r *BunSettingRepository) List(ctx context.Context) ([]*SiteSetting, error) {
	if r.db == nil {
		return nil, errors.New("settings: bun repository requires a database")
	}
	var records []*SiteSetting
	if err := r.db.NewSelect().Model(&records).Order("key ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return records, nil
}

// Upsert creates or replaces the setting stored under the record's key.
func (r *BunSettingRepository) Upsert(ctx context.Context, record *SiteSetting) (*SiteSetting, error) {
	if r.db == nil {
		return nil, errors.New("settings: bun repository requires a database")
	}

	var existing SiteSetting
	err := r.db.NewSelect().Model(&existing).Where("key = ?", record.Key).Scan(ctx)
	created := false
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			created = true
		} else {
			return nil, err
		}
	}

	if created {
		if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
			return nil, err
		}
	} else {
		record.ID = existing.ID
		if _, err := r.db.NewUpdate().
			Model(record).
			Column("value", "value_json", "updated_at").
			WherePK().
			Exec(ctx); err != nil {
			return nil, err
		}
	}

	return r.GetByKey(ctx, record.Key)
}

// Delete removes a setting by identifier.
func (r *BunSettingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.db == nil {
		return errors.New("settings: bun repository requires a database")
	}
	_, err := r.db.NewDelete().Model(&SiteSetting{ID: id}).WherePK().Exec(ctx)
	return err
}
