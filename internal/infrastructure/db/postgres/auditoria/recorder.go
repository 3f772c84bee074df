// Package auditoria persists audit rows. The recorder runs on the
// caller's transaction so a failed mutation never leaves a stray entry.
package auditoria

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"prestamos-api/internal/domain/auditoria"
)

const InsertRegistro = `
	INSERT INTO auditoria (id_usuario, accion, modulo, fecha_hora, detalle, old_values, new_values)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type Recorder struct{}

func NewRecorder() auditoria.Recorder {
	return &Recorder{}
}

func (r *Recorder) Record(ctx context.Context, tx pgx.Tx, e auditoria.Entrada) error {
	old, err := dumpsOrNil(e.Old)
	if err != nil {
		return fmt.Errorf("serialize old snapshot: %w", err)
	}
	nuevo, err := dumpsOrNil(e.New)
	if err != nil {
		return fmt.Errorf("serialize new snapshot: %w", err)
	}

	_, err = tx.Exec(
		ctx,
		InsertRegistro,
		e.IDUsuario, e.Accion, e.Modulo, time.Now().UTC(), e.Detalle, old, nuevo,
	)

	return err
}

func dumpsOrNil(m map[string]string) (*string, error) {
	if len(m) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
