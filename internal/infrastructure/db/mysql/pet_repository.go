package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/petcare/pet-service/internal/core/domain"
)

// PetRepository persists the pet catalog through gorm.
type PetRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{db: db}
}

func (r *PetRepository) FindByID(ctx context.Context, id string) (*domain.Pet, error) {
	var pet domain.Pet
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("find pet: %w", err)
	}
	return &pet, nil
}

func (r *PetRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.Pet, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Pet{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count pets: %w", err)
	}

	var pets []domain.Pet
	err := r.db.WithContext(ctx).Order("created_at desc").Offset(offset).Limit(limit).Find(&pets).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list pets: %w", err)
	}
	return pets, total, nil
}

func (r *PetRepository) Save(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if err := r.db.WithContext(ctx).Save(pet).Error; err != nil {
		return nil, translateDuplicate(err)
	}
	return pet, nil
}

func (r *PetRepository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Pet{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete pet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

func (r *PetRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Pet{}, "id IN ?", ids).Error; err != nil {
		return fmt.Errorf("delete pets: %w", err)
	}
	return nil
}
