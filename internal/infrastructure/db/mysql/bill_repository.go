package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/petcare/pet-service/internal/core/domain"
)

// BillRepository persists billing records through gorm.
type BillRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

func (r *BillRepository) FindByID(ctx context.Context, id string) (*domain.Bill, error) {
	var bill domain.Bill
	err := r.db.WithContext(ctx).Preload("Pet").Where("id = ?", id).First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBillNotFound
		}
		return nil, fmt.Errorf("find bill: %w", err)
	}
	return &bill, nil
}

func (r *BillRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Bill, error) {
	var bills []domain.Bill
	err := r.db.WithContext(ctx).Preload("Pet").Where("user_id = ?", userID).Order("created_at desc").Find(&bills).Error
	if err != nil {
		return nil, fmt.Errorf("list bills by user: %w", err)
	}
	return bills, nil
}

func (r *BillRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.Bill, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Bill{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count bills: %w", err)
	}

	var bills []domain.Bill
	err := r.db.WithContext(ctx).Preload("Pet").Order("created_at desc").Offset(offset).Limit(limit).Find(&bills).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list bills: %w", err)
	}
	return bills, total, nil
}

// CreateWithSale inserts the bill and flips the pet's availability flag in a
// single transaction. The conditional update doubles as a guard against two
// concurrent sales of the same pet: the loser matches zero rows and the whole
// transaction rolls back.
func (r *BillRepository) CreateWithSale(ctx context.Context, bill *domain.Bill) (*domain.Bill, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("User", "Pet").Create(bill).Error; err != nil {
			return fmt.Errorf("insert bill: %w", err)
		}

		res := tx.Model(&domain.Pet{}).Where("id = ? AND status = ?", bill.PetID, true).Update("status", false)
		if res.Error != nil {
			return fmt.Errorf("mark pet sold: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrPetNotAvailable
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}
