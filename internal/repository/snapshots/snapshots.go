package snapshots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bullion/internal/model"
)

var ErrNotFound = errors.New("snapshot not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SaveReport archives one pipeline report.
func (that *Repository) SaveReport(ctx context.Context, report *model.Report) error {
	if err := that.db.WithContext(ctx).Create(model.NewPriceSnapshot(report)).Error; err != nil {
		return fmt.Errorf("insert snapshot in database: %w", err)
	}

	return nil
}

// Latest returns the newest snapshot of a source.
func (that *Repository) Latest(ctx context.Context, source string) (*model.PriceSnapshot, error) {
	var snapshot model.PriceSnapshot

	err := that.db.WithContext(ctx).
		Where("source = ?", source).
		Order("fetched_at DESC, id DESC").
		First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get latest snapshot from database: %w", err)
	}

	return &snapshot, nil
}

// Prune deletes snapshots fetched before the cutoff and returns how many were removed.
func (that *Repository) Prune(ctx context.Context, before time.Time) (int64, error) {
	result := that.db.WithContext(ctx).Where("fetched_at < ?", before).Delete(&model.PriceSnapshot{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete old snapshots from database: %w", result.Error)
	}

	return result.RowsAffected, nil
}
