package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/petcare/pet-service/internal/api/metrics"
	"github.com/petcare/pet-service/internal/core/domain"
	"github.com/petcare/pet-service/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// PetService implements catalog use cases.
type PetService struct {
	repo   ports.PetRepository
	logger zerolog.Logger
}

func NewPetService(repo ports.PetRepository, logger zerolog.Logger) *PetService {
	return &PetService{repo: repo, logger: logger}
}

func (s *PetService) List(ctx context.Context, page, limit int) (*ports.ListPetsResult, error) {
	page, limit = normalizePage(page, limit)

	pets, total, err := s.repo.FindPage(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ListPetsResult{
		Items:      pets,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *PetService) Get(ctx context.Context, id string) (*domain.Pet, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PetService) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	if pet.ID == "" {
		pet.ID = uuid.NewString()
	}
	pet.Status = true

	saved, err := s.repo.Save(ctx, pet)
	if err != nil {
		return nil, err
	}

	metrics.PetsCreatedTotal.WithLabelValues(saved.Species).Inc()
	s.logger.Info().Str("pet_id", saved.ID).Str("name", saved.Name).Msg("pet created")
	return saved, nil
}

func (s *PetService) Update(ctx context.Context, id string, input ports.UpdatePetInput) (*domain.Pet, error) {
	pet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		pet.Name = *input.Name
	}
	if input.Species != nil {
		pet.Species = *input.Species
	}
	if input.Breed != nil {
		pet.Breed = *input.Breed
	}
	if input.Age != nil {
		pet.Age = *input.Age
	}
	if input.Price != nil {
		pet.Price = *input.Price
	}
	if input.Description != nil {
		pet.Description = *input.Description
	}
	if input.ImageURL != nil {
		pet.ImageURL = *input.ImageURL
	}

	return s.repo.Save(ctx, pet)
}

func (s *PetService) SetStatus(ctx context.Context, id string, status bool) (*domain.Pet, error) {
	pet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pet.Status = status
	return s.repo.Save(ctx, pet)
}

func (s *PetService) ClearImage(ctx context.Context, id string) (*domain.Pet, error) {
	pet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pet.ImageURL = ""
	return s.repo.Save(ctx, pet)
}

func (s *PetService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, id)
}

func (s *PetService) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.repo.DeleteByIDs(ctx, ids)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}
