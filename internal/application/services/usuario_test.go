package services

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "prestamos-api/internal/domain/user"
	auditoriaDB "prestamos-api/internal/infrastructure/db/postgres/auditoria"
	userDB "prestamos-api/internal/infrastructure/db/postgres/user"
)

func newTestUsuarioService(t *testing.T, mock pgxmock.PgxPoolIface) *UsuarioService {
	t.Helper()
	svc := NewUsuarioService(
		mock,
		userDB.NewRepository(mock),
		auditoriaDB.NewRecorder(),
		newFakeMQ(),
		newTestCounter(),
	)
	return svc.(*UsuarioService)
}

func activeUser() *domain.User {
	return &domain.User{
		ID:           5,
		Nombre:       "Ana",
		Correo:       "ana@example.com",
		EstadoActivo: true,
	}
}

func TestUsuarioService_ActualizarPerfil_Success(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE usuario").
		WithArgs("Ana María", pgxmock.AnyArg(), pgxmock.AnyArg(), int64(5)).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(int64(5), "Ana María", "ana@example.com", nil, ptr("555-0100"), nil,
				false, true, 0, time.Now(), time.Now()))
	mock.ExpectExec("INSERT INTO auditoria").
		WithArgs(
			int64(5), "ACTUALIZAR_PERFIL", "Usuarios",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	svc := newTestUsuarioService(t, mock)

	u, err := svc.ActualizarPerfil(context.Background(), activeUser(), domain.Patch{
		Nombre:   ptr("Ana María"),
		Telefono: ptr("555-0100"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", u.Nombre)

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Len(t, svc.mq.GetInputChan(), 1)
}

func TestUsuarioService_ActualizarPerfil_NoEffectiveChange(t *testing.T) {
	mock := newMockDB(t)
	svc := newTestUsuarioService(t, mock)

	actor := activeUser()
	u, err := svc.ActualizarPerfil(context.Background(), actor, domain.Patch{
		Nombre: ptr("Ana"),
	})
	require.NoError(t, err)
	assert.Same(t, actor, u, "unchanged patch answers with current state")

	require.NoError(t, mock.ExpectationsWereMet(), "no write may happen")
	assert.Len(t, svc.mq.GetInputChan(), 0)
}

func TestUsuarioService_ActualizarPerfil_InactiveUser(t *testing.T) {
	mock := newMockDB(t)
	svc := newTestUsuarioService(t, mock)

	actor := activeUser()
	actor.EstadoActivo = false

	_, err := svc.ActualizarPerfil(context.Background(), actor, domain.Patch{
		Nombre: ptr("Otro Nombre"),
	})
	require.ErrorIs(t, err, ErrUsuarioInactivo)
	require.NoError(t, mock.ExpectationsWereMet())
}
