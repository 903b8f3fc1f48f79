package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/petcare/pet-service/internal/core/domain"
)

// OfferingRepository persists service offerings through gorm.
type OfferingRepository struct {
	db *gorm.DB
}

func NewOfferingRepository(db *gorm.DB) *OfferingRepository {
	return &OfferingRepository{db: db}
}

func (r *OfferingRepository) FindByID(ctx context.Context, id string) (*domain.Offering, error) {
	var offering domain.Offering
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&offering).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfferingNotFound
		}
		return nil, fmt.Errorf("find offering: %w", err)
	}
	return &offering, nil
}

func (r *OfferingRepository) FindAll(ctx context.Context) ([]domain.Offering, error) {
	var offerings []domain.Offering
	if err := r.db.WithContext(ctx).Order("name").Find(&offerings).Error; err != nil {
		return nil, fmt.Errorf("list offerings: %w", err)
	}
	return offerings, nil
}

func (r *OfferingRepository) Save(ctx context.Context, offering *domain.Offering) (*domain.Offering, error) {
	if err := r.db.WithContext(ctx).Save(offering).Error; err != nil {
		return nil, translateDuplicate(err)
	}
	return offering, nil
}

func (r *OfferingRepository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Offering{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete offering: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrOfferingNotFound
	}
	return nil
}
