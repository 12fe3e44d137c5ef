package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/adminhub/user-console/internal/core/domain"
	"github.com/adminhub/user-console/internal/core/ports"
)

// UserService implements user management use cases.
type UserService struct {
	repo        ports.UserRepository
	addressRepo ports.AddressRepository
	audit       ports.AuditRecorder
	logger      zerolog.Logger
}

func NewUserService(repo ports.UserRepository, addressRepo ports.AddressRepository, audit ports.AuditRecorder, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, addressRepo: addressRepo, audit: audit, logger: logger}
}

func (s *UserService) List(ctx context.Context, actor ports.Actor, query ports.ListQuery) (*domain.Page[domain.User], error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx, query.Normalize())
}

func (s *UserService) Get(ctx context.Context, actor ports.Actor, id int64) (*domain.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, actor ports.Actor, input ports.CreateUserInput) (*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = []string{domain.RoleUser}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Int64("actor", actor.ID).Msg("user created")
	s.audit.Record(domain.AuditEntry{Actor: actor.ID, Action: domain.AuditCreated, Entity: domain.EntityUser, EntityID: created.ID, At: now})
	return created, nil
}

func (s *UserService) Update(ctx context.Context, actor ports.Actor, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return nil, domain.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = strings.ToLower(input.Email)
	}
	// Only admins may change role membership.
	if len(input.Roles) > 0 && actor.IsAdmin() {
		user.Roles = input.Roles
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{Actor: actor.ID, Action: domain.AuditUpdated, Entity: domain.EntityUser, EntityID: id, At: user.UpdatedAt})
	return updated, nil
}

func (s *UserService) UpdatePassword(ctx context.Context, actor ports.Actor, id int64, password string) error {
	if !actor.IsAdmin() && actor.ID != id {
		return domain.ErrForbidden
	}
	if password == "" {
		return domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hash)); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEntry{Actor: actor.ID, Action: domain.AuditUpdated, Entity: domain.EntityUser, EntityID: id, At: time.Now().UTC()})
	return nil
}

// Delete removes a user and their addresses. Admin-only; admins cannot delete
// their own account through this path.
func (s *UserService) Delete(ctx context.Context, actor ports.Actor, id int64) error {
	if !actor.IsAdmin() || actor.ID == id {
		return domain.ErrForbidden
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.addressRepo.DeleteByUser(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", id).Msg("failed to remove addresses of deleted user")
	}

	s.logger.Info().Int64("user_id", id).Int64("actor", actor.ID).Msg("user deleted")
	s.audit.Record(domain.AuditEntry{Actor: actor.ID, Action: domain.AuditDeleted, Entity: domain.EntityUser, EntityID: id, At: time.Now().UTC()})
	return nil
}
