package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/petcare/pet-service/internal/core/domain"
	"github.com/petcare/pet-service/internal/core/ports"
)

// OfferingService implements CRUD use cases for bookable service offerings.
type OfferingService struct {
	repo   ports.OfferingRepository
	logger zerolog.Logger
}

func NewOfferingService(repo ports.OfferingRepository, logger zerolog.Logger) *OfferingService {
	return &OfferingService{repo: repo, logger: logger}
}

func (s *OfferingService) Create(ctx context.Context, offering *domain.Offering) (*domain.Offering, error) {
	if offering.ID == "" {
		offering.ID = uuid.NewString()
	}
	offering.Status = true

	saved, err := s.repo.Save(ctx, offering)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("offering_id", saved.ID).Str("name", saved.Name).Msg("offering created")
	return saved, nil
}

func (s *OfferingService) List(ctx context.Context) ([]domain.Offering, error) {
	return s.repo.FindAll(ctx)
}

func (s *OfferingService) Get(ctx context.Context, id string) (*domain.Offering, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OfferingService) Update(ctx context.Context, id string, input ports.UpdateOfferingInput) (*domain.Offering, error) {
	offering, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		offering.Name = *input.Name
	}
	if input.Description != nil {
		offering.Description = *input.Description
	}
	if input.Price != nil {
		offering.Price = *input.Price
	}

	return s.repo.Save(ctx, offering)
}

func (s *OfferingService) SetStatus(ctx context.Context, id string, status bool) (*domain.Offering, error) {
	offering, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	offering.Status = status
	return s.repo.Save(ctx, offering)
}

func (s *OfferingService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, id)
}
