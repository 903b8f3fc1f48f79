package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/petcare/pet-service/internal/api/metrics"
	"github.com/petcare/pet-service/internal/core/domain"
	"github.com/petcare/pet-service/internal/core/ports"
)

// BillingService records pet sales and serves billing history.
type BillingService struct {
	bills  ports.BillRepository
	pets   ports.PetRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewBillingService(bills ports.BillRepository, pets ports.PetRepository, users ports.UserRepository, logger zerolog.Logger) *BillingService {
	return &BillingService{bills: bills, pets: pets, users: users, logger: logger}
}

// Create records a sale. The buyer and the pet must exist and the pet must
// still be available; the bill insert and the sold flag flip happen in one
// repository transaction.
func (s *BillingService) Create(ctx context.Context, input ports.CreateBillInput) (*domain.Bill, error) {
	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	pet, err := s.pets.FindByID(ctx, input.PetID)
	if err != nil {
		return nil, err
	}
	if !pet.Status {
		return nil, domain.ErrPetNotAvailable
	}

	bill := &domain.Bill{
		ID:            uuid.NewString(),
		UserID:        input.UserID,
		PetID:         pet.ID,
		PaymentMethod: input.PaymentMethod,
		Price:         pet.Price,
	}

	saved, err := s.bills.CreateWithSale(ctx, bill)
	if err != nil {
		return nil, err
	}

	metrics.BillsCreatedTotal.WithLabelValues(input.PaymentMethod).Inc()
	s.logger.Info().Str("bill_id", saved.ID).Uint("user_id", saved.UserID).Str("pet_id", saved.PetID).Msg("pet sale recorded")
	return saved, nil
}

func (s *BillingService) List(ctx context.Context, page, limit int) (*ports.ListBillsResult, error) {
	page, limit = normalizePage(page, limit)

	bills, total, err := s.bills.FindPage(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ListBillsResult{
		Items:      bills,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *BillingService) ListByUser(ctx context.Context, userID uint) ([]domain.Bill, error) {
	return s.bills.FindByUser(ctx, userID)
}

func (s *BillingService) Get(ctx context.Context, id string) (*domain.Bill, error) {
	return s.bills.FindByID(ctx, id)
}
