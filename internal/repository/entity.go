package repository

import (
	"context"
	"fmt"
	"time"

	"hostel-directory-backend/internal/database/models"
	apperrors "hostel-directory-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntityRepository operates on hostels and projects through their shared columns
type EntityRepository struct {
	db *gorm.DB
}

// NewEntityRepository creates a new entity repository
func NewEntityRepository(db *gorm.DB) *EntityRepository {
	return &EntityRepository{db: db}
}

func (r *EntityRepository) table(kind models.EntityType) (string, error) {
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedEntityType, kind)
	}
	return kind.TableName(), nil
}

// LockActive reports whether the entity exists and is active, taking a row lock
// on Postgres so concurrent tag writers on the same entity run one after another.
// SQLite has no row locks; its writers are already serialized.
func (r *EntityRepository) LockActive(ctx context.Context, kind models.EntityType, id uuid.UUID) (bool, error) {
	table, err := r.table(kind)
	if err != nil {
		return false, err
	}
	var ids []uuid.UUID
	err = r.db.WithContext(ctx).
		Table(table).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND is_active = ?", id, true).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) == 1, nil
}

// SetCustomValues overwrites the entity's free-text values
func (r *EntityRepository) SetCustomValues(ctx context.Context, kind models.EntityType, id uuid.UUID, values models.CustomValues) error {
	table, err := r.table(kind)
	if err != nil {
		return err
	}
	if values == nil {
		values = models.CustomValues{}
	}
	return r.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"custom_values": values,
			"updated_at":    time.Now(),
		}).Error
}

type customValuesRow struct {
	ID           uuid.UUID
	CustomValues models.CustomValues
}

// DropCustomValues removes the category's free-text value from every hostel and project,
// active or not, and returns how many entities held one
func (r *EntityRepository) DropCustomValues(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	key := categoryID.String()
	var dropped int64
	for _, kind := range []models.EntityType{models.EntityTypeHostel, models.EntityTypeProject} {
		var rows []customValuesRow
		err := r.db.WithContext(ctx).
			Table(kind.TableName()).
			Select("id, custom_values").
			Where("custom_values LIKE ?", "%\""+key+"\"%").
			Scan(&rows).Error
		if err != nil {
			return dropped, err
		}
		for _, row := range rows {
			if _, ok := row.CustomValues[key]; !ok {
				continue
			}
			delete(row.CustomValues, key)
			if err := r.SetCustomValues(ctx, kind, row.ID, row.CustomValues); err != nil {
				return dropped, err
			}
			dropped++
		}
	}
	return dropped, nil
}
