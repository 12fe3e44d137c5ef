package ports

import (
	"context"

	"github.com/adminhub/user-console/internal/core/domain"
)

// AuditRecorder accepts audit entries for asynchronous persistence. Recording
// must never block a request beyond queueing.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

// AuditService persists a single audit entry.
type AuditService interface {
	Process(ctx context.Context, entry domain.AuditEntry) error
}

// AuditRepository defines persistence for the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}
