package ports

import (
	"context"
	"io"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/domain"
)

// ExportLedger is the flat-file copy of registration history.
type ExportLedger interface {
	AppendCreated(row domain.ExportRow) error
	AppendCancelled(row domain.ExportRow) error
	PatchStatusByRegistrationID(id int64, status domain.ExportStatus) error
	RemoveByRegistrationID(ids []int64) (int, error)
	CountRows() (int, error)
	Snapshot() ([]domain.ExportRow, error)
	Replace(rows []domain.ExportRow) error
	WriteTo(w io.Writer) (int64, error)
}

// ExportRecorder mirrors committed registration changes into the export ledger.
// Failures are handled by the recorder; callers never roll back on them.
// Hold must be taken before the relational write and released after the
// matching Record or Purge call.
type ExportRecorder interface {
	Hold() func()
	RecordCreated(ctx context.Context, reg domain.Registration)
	RecordCancelled(ctx context.Context, reg domain.Registration)
	Purge(ctx context.Context, registrationIDs []int64)
}
