package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adminhub/user-console/internal/api/metrics"
	"github.com/adminhub/user-console/internal/core/domain"
	"github.com/adminhub/user-console/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists entries to the audit
// trail collection.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit entry.
func (s *auditService) Process(ctx context.Context, entry domain.AuditEntry) error {
	if err := s.repo.Insert(ctx, &entry); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("audit: insert: %w", err)
	}

	metrics.AuditEntriesTotal.WithLabelValues(entry.Entity, entry.Action).Inc()
	s.log.Debug().
		Str("entity", entry.Entity).
		Str("action", entry.Action).
		Int64("entity_id", entry.EntityID).
		Int64("actor", entry.Actor).
		Msg("audit entry recorded")

	return nil
}
