package services

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/unicode/norm"

	"prestamos-api/internal/application/ports"
	"prestamos-api/internal/domain/auditoria"
	domain "prestamos-api/internal/domain/user"
	"prestamos-api/internal/infrastructure/db/postgres"
	"prestamos-api/internal/infrastructure/mq"
)

type UsuarioService struct {
	db       postgres.DB
	userRepo domain.Repository
	audit    auditoria.Recorder
	mq       ports.RabbitMQ
	mCounter *prometheus.CounterVec
}

func NewUsuarioService(
	db postgres.DB,
	userRepo domain.Repository,
	audit auditoria.Recorder,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UsuarioService {
	return &UsuarioService{
		db:       db,
		userRepo: userRepo,
		audit:    audit,
		mq:       rbMQ,
		mCounter: mCounter,
	}
}

func (us *UsuarioService) ActualizarPerfil(ctx context.Context, actor *domain.User, patch domain.Patch) (*domain.User, error) {
	if !actor.EstadoActivo {
		return nil, ErrUsuarioInactivo
	}

	req := *actor
	old := map[string]string{}
	nuevo := map[string]string{}

	if patch.Nombre != nil {
		nombre := norm.NFC.String(strings.TrimSpace(*patch.Nombre))
		if nombre != actor.Nombre {
			old["nombre"] = actor.Nombre
			nuevo["nombre"] = nombre
			req.Nombre = nombre
		}
	}
	if patch.Telefono != nil && !sameStr(patch.Telefono, actor.Telefono) {
		old["telefono"] = derefStr(actor.Telefono)
		nuevo["telefono"] = *patch.Telefono
		req.Telefono = patch.Telefono
	}
	if patch.Direccion != nil && !sameStr(patch.Direccion, actor.Direccion) {
		old["direccion"] = derefStr(actor.Direccion)
		nuevo["direccion"] = *patch.Direccion
		req.Direccion = patch.Direccion
	}

	// no effective change: answer with current state, write nothing
	if len(nuevo) == 0 {
		return actor, nil
	}

	tx, err := us.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	updated, err := us.userRepo.WithTx(tx).UpdatePerfil(ctx, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	entrada := auditoria.Entrada{
		IDUsuario: int64(actor.ID),
		Accion:    auditoria.AccionActualizarPerfil,
		Modulo:    auditoria.ModuloUsuarios,
		Detalle:   "Actualización de perfil básico (nombre/telefono/direccion)",
		Old:       old,
		New:       nuevo,
	}
	if err = us.audit.Record(ctx, tx, entrada); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	us.mq.GetInputChan() <- mq.NewEvent(entrada)
	us.mCounter.WithLabelValues("perfil_updated_total").Inc()

	return updated, nil
}

func sameStr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
