package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminhub/user-console/internal/core/domain"
	"github.com/adminhub/user-console/internal/core/ports"
)

// AddressService implements address management nested under a user.
type AddressService struct {
	repo     ports.AddressRepository
	userRepo ports.UserRepository
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewAddressService(repo ports.AddressRepository, userRepo ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *AddressService {
	return &AddressService{repo: repo, userRepo: userRepo, audit: audit, logger: logger}
}

// canAccess is the owner-or-admin rule applied to every nested operation.
func canAccess(actor ports.Actor, userID int64) bool {
	return actor.IsAdmin() || actor.ID == userID
}

func (s *AddressService) List(ctx context.Context, actor ports.Actor, userID int64, query ports.ListQuery) (*domain.Page[domain.Address], error) {
	if !canAccess(actor, userID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByUser(ctx, userID, query.Normalize())
}

func (s *AddressService) ListAll(ctx context.Context, actor ports.Actor, query ports.ListQuery) (*domain.Page[domain.Address], error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListAll(ctx, query.Normalize())
}

func (s *AddressService) Get(ctx context.Context, actor ports.Actor, userID, id int64) (*domain.Address, error) {
	if !canAccess(actor, userID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, userID, id)
}

func (s *AddressService) Create(ctx context.Context, actor ports.Actor, userID int64, input ports.AddressInput) (*domain.Address, error) {
	if !canAccess(actor, userID) {
		return nil, domain.ErrForbidden
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	address := &domain.Address{
		Street:       input.Street,
		Number:       input.Number,
		Complement:   input.Complement,
		Neighborhood: input.Neighborhood,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		Country:      input.Country,
		UserID:       userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, address)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to create address")
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{Actor: actor.ID, Action: domain.AuditCreated, Entity: domain.EntityAddress, EntityID: created.ID, At: now})
	return created, nil
}

func (s *AddressService) Update(ctx context.Context, actor ports.Actor, userID, id int64, input ports.AddressInput) (*domain.Address, error) {
	if !canAccess(actor, userID) {
		return nil, domain.ErrForbidden
	}

	address, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	address.Street = input.Street
	address.Number = input.Number
	address.Complement = input.Complement
	address.Neighborhood = input.Neighborhood
	address.City = input.City
	address.State = input.State
	address.ZipCode = input.ZipCode
	address.Country = input.Country
	address.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, address)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{Actor: actor.ID, Action: domain.AuditUpdated, Entity: domain.EntityAddress, EntityID: id, At: address.UpdatedAt})
	return updated, nil
}

func (s *AddressService) Delete(ctx context.Context, actor ports.Actor, userID, id int64) error {
	if !canAccess(actor, userID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.Info().Int64("address_id", id).Int64("actor", actor.ID).Msg("address deleted")
	s.audit.Record(domain.AuditEntry{Actor: actor.ID, Action: domain.AuditDeleted, Entity: domain.EntityAddress, EntityID: id, At: time.Now().UTC()})
	return nil
}
