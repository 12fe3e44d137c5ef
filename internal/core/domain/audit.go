package domain

import (
	"strconv"
	"time"
)

// Audit actions recorded for administrative changes.
const (
	AuditCreated = "created"
	AuditUpdated = "updated"
	AuditDeleted = "deleted"
)

// Audit entity kinds.
const (
	EntityUser    = "user"
	EntityAddress = "address"
)

// AuditEntry records a single mutation performed through the API.
type AuditEntry struct {
	Actor    int64     `json:"actor" bson:"actor"`
	Action   string    `json:"action" bson:"action"`
	Entity   string    `json:"entity" bson:"entity"`
	EntityID int64     `json:"entity_id" bson:"entity_id"`
	At       time.Time `json:"at" bson:"at"`
}

// Key identifies the entity the entry belongs to. Entries sharing a key are
// processed in order.
func (e AuditEntry) Key() string {
	return e.Entity + ":" + strconv.FormatInt(e.EntityID, 10)
}
