package auditoria

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Recorder appends one audit row on the caller's transaction. It never
// commits; the caller's commit persists the mutation and the audit entry
// together or not at all.
type Recorder interface {
	Record(ctx context.Context, tx pgx.Tx, e Entrada) error
}
