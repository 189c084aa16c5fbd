package order

import (
	"errors"
	"fmt"
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/errs"
)

// EntryKind separates status changes from free-text activity notes.
type EntryKind string

const (
	EntryStatusChange EntryKind = "status_change"
	EntryNote         EntryKind = "note"
)

// AuditEntry is an immutable line of an order's activity feed.
type AuditEntry struct {
	id        kernel.UUID
	kind      EntryKind
	from      Status
	to        Status
	body      string
	createdAt time.Time
}

func newStatusChangeEntry(from, to Status, at time.Time) AuditEntry {
	return AuditEntry{
		id:        kernel.NewUUID(),
		kind:      EntryStatusChange,
		from:      from,
		to:        to,
		body:      fmt.Sprintf("Status updated from %s to: %s", from.Label(), to.Label()),
		createdAt: at,
	}
}

func newNoteEntry(body string, at time.Time) AuditEntry {
	return AuditEntry{
		id:        kernel.NewUUID(),
		kind:      EntryNote,
		body:      body,
		createdAt: at,
	}
}

// RestoreAuditEntry rebuilds an entry loaded from persistence.
func RestoreAuditEntry(
	id kernel.UUID,
	kind EntryKind,
	from, to Status,
	body string,
	createdAt time.Time,
) (AuditEntry, error) {
	if err := id.Validate(); err != nil {
		return AuditEntry{}, err
	}

	switch kind {
	case EntryStatusChange:
		if err := errors.Join(from.Validate(), to.Validate()); err != nil {
			return AuditEntry{}, err
		}
	case EntryNote:
	default:
		return AuditEntry{}, errs.NewValueIsInvalidErrorWithCause("entry kind", fmt.Errorf("%q is unknown", string(kind)))
	}

	return AuditEntry{id: id, kind: kind, from: from, to: to, body: body, createdAt: createdAt}, nil
}

func (e AuditEntry) ID() kernel.UUID {
	return e.id
}

func (e AuditEntry) Kind() EntryKind {
	return e.kind
}

// From is the previous status of a status-change entry.
func (e AuditEntry) From() Status {
	return e.from
}

// To is the new status of a status-change entry.
func (e AuditEntry) To() Status {
	return e.to
}

func (e AuditEntry) Body() string {
	return e.body
}

func (e AuditEntry) CreatedAt() time.Time {
	return e.createdAt
}
