package services

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "prestamos-api/internal/domain/solicitud"
	auditoriaDB "prestamos-api/internal/infrastructure/db/postgres/auditoria"
	catalogoDB "prestamos-api/internal/infrastructure/db/postgres/catalogo"
	solicitudDB "prestamos-api/internal/infrastructure/db/postgres/solicitud"
	userDB "prestamos-api/internal/infrastructure/db/postgres/user"
)

var solicitudJoinColumns = []string{
	"id_solicitud", "id_usuario", "id_estado_solicitud", "nombre",
	"fecha_envio", "metodo_entrega", "direccion_entrega",
}

var solicitudColumns = []string{
	"id_solicitud", "id_usuario", "id_estado_solicitud",
	"fecha_envio", "metodo_entrega", "direccion_entrega",
}

var articuloColumns = []string{
	"id_articulo", "id_solicitud", "id_tipo", "id_estado",
	"descripcion", "valor_estimado", "valor_aprobado", "condicion",
}

func solicitudJoinRow(id, userID int64, estado, metodo string, direccion *string) *pgxmock.Rows {
	return pgxmock.NewRows(solicitudJoinColumns).
		AddRow(id, userID, int64(1), estado, time.Now(), metodo, direccion)
}

func newTestSolicitudService(t *testing.T, mock pgxmock.PgxPoolIface) *SolicitudService {
	t.Helper()
	svc := NewSolicitudService(
		mock,
		solicitudDB.NewRepository(mock),
		catalogoDB.NewRepository(mock),
		userDB.NewRepository(mock),
		auditoriaDB.NewRecorder(),
		newFakeMQ(),
		newTestCounter(),
	)
	return svc.(*SolicitudService)
}

func expectAuditInsert(mock pgxmock.PgxPoolIface, actorID int64, accion string) {
	mock.ExpectExec("INSERT INTO auditoria").
		WithArgs(
			actorID, accion, "Solicitud",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
}

func TestSolicitudService_Crear_Success(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery("FROM estado_solicitud").
		WithArgs("pendiente").
		WillReturnRows(pgxmock.NewRows([]string{"id_estado_solicitud", "nombre"}).
			AddRow(int64(1), "pendiente"))
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO solicitud").
		WithArgs(int64(5), int64(1), "oficina", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(solicitudColumns).
			AddRow(int64(100), int64(5), int64(1), time.Now(), "oficina", nil))
	expectAuditInsert(mock, 5, "CREAR_SOLICITUD")
	mock.ExpectCommit()
	mock.ExpectRollback()

	svc := newTestSolicitudService(t, mock)

	s, err := svc.Crear(context.Background(), 5, "Oficina", nil)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, int64(100), s.ID)
	assert.Equal(t, "pendiente", s.Estado)

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Len(t, svc.mq.GetInputChan(), 1)
}

func TestSolicitudService_Crear_Validation(t *testing.T) {
	tests := []struct {
		name      string
		metodo    string
		direccion *string
	}{
		{"unknown metodo", "paloma mensajera", nil},
		{"domicilio without direccion", "domicilio", nil},
		{"domicilio with blank direccion", "domicilio", ptr("   ")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockDB(t)
			svc := newTestSolicitudService(t, mock)

			_, err := svc.Crear(context.Background(), 5, tt.metodo, tt.direccion)
			require.ErrorIs(t, err, ErrValidacion)
			require.NoError(t, mock.ExpectationsWereMet(), "no query may run")
		})
	}
}

func TestSolicitudService_Crear_MissingSeedEstado(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery("FROM estado_solicitud").
		WithArgs("pendiente").
		WillReturnRows(pgxmock.NewRows([]string{"id_estado_solicitud", "nombre"}))

	svc := newTestSolicitudService(t, mock)

	_, err := svc.Crear(context.Background(), 5, "oficina", nil)
	require.ErrorIs(t, err, ErrCatalogoIncompleto)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSolicitudService_Obtener_OwnershipHidesExistence(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery("FROM solicitud").
		WithArgs(int64(100)).
		WillReturnRows(solicitudJoinRow(100, 99, "pendiente", "oficina", nil))

	svc := newTestSolicitudService(t, mock)

	// someone else's solicitud reads as absent
	_, err := svc.Obtener(context.Background(), 5, 100)
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSolicitudService_Actualizar_Success(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery("FROM solicitud").
		WithArgs(int64(100)).
		WillReturnRows(solicitudJoinRow(100, 5, "pendiente", "oficina", nil))
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE solicitud").
		WithArgs("domicilio", ptr("Av. Juárez 12"), int64(100)).
		WillReturnRows(pgxmock.NewRows(solicitudColumns).
			AddRow(int64(100), int64(5), int64(1), time.Now(), "domicilio", ptr("Av. Juárez 12")))
	expectAuditInsert(mock, 5, "ACTUALIZAR_SOLICITUD")
	mock.ExpectCommit()
	mock.ExpectRollback()

	svc := newTestSolicitudService(t, mock)

	s, err := svc.Actualizar(context.Background(), 5, 100, domain.Patch{
		MetodoEntrega:    ptr("domicilio"),
		DireccionEntrega: ptr("Av. Juárez 12"),
	})
	require.NoError(t, err)
	assert.Equal(t, "domicilio", s.MetodoEntrega)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSolicitudService_Actualizar_EmptyPatch(t *testing.T) {
	mock := newMockDB(t)
	svc := newTestSolicitudService(t, mock)

	_, err := svc.Actualizar(context.Background(), 5, 100, domain.Patch{})
	require.ErrorIs(t, err, ErrValidacion)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSolicitudService_Eliminar_CascadesChildrenFirst(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery("FROM solicitud").
		WithArgs(int64(100)).
		WillReturnRows(solicitudJoinRow(100, 5, "pendiente", "oficina", nil))
	mock.ExpectQuery("FROM articulo").
		WithArgs(int64(100)).
		WillReturnRows(pgxmock.NewRows(articuloColumns).
			AddRow(int64(1), int64(100), int64(2), int64(1), "reloj", 1500.0, nil, nil))
	mock.ExpectQuery("FROM articulo_foto").
		WithArgs([]int64{1}).
		WillReturnRows(pgxmock.NewRows([]string{"id_foto", "id_articulo", "url", "orden"}))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM articulo_foto").
		WithArgs(int64(100)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM articulo").
		WithArgs(int64(100)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM solicitud").
		WithArgs(int64(100)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	expectAuditInsert(mock, 5, "ELIMINAR_SOLICITUD")
	mock.ExpectCommit()
	mock.ExpectRollback()

	svc := newTestSolicitudService(t, mock)

	require.NoError(t, svc.Eliminar(context.Background(), 5, 100))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSolicitudService_CambiarEstado(t *testing.T) {
	t.Run("cliente role is forbidden", func(t *testing.T) {
		mock := newMockDB(t)
		mock.ExpectQuery("FROM usuario_rol").
			WithArgs(int64(5)).
			WillReturnRows(pgxmock.NewRows([]string{"nombre"}).AddRow("cliente"))

		svc := newTestSolicitudService(t, mock)

		_, err := svc.CambiarEstado(context.Background(), 5, 100, "evaluada")
		require.ErrorIs(t, err, ErrForbidden)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown estado is a validation error", func(t *testing.T) {
		mock := newMockDB(t)
		mock.ExpectQuery("FROM usuario_rol").
			WithArgs(int64(5)).
			WillReturnRows(pgxmock.NewRows([]string{"nombre"}).AddRow("evaluador"))
		mock.ExpectQuery("FROM solicitud").
			WithArgs(int64(100)).
			WillReturnRows(solicitudJoinRow(100, 9, "pendiente", "oficina", nil))
		mock.ExpectQuery("FROM estado_solicitud").
			WithArgs("inventado").
			WillReturnRows(pgxmock.NewRows([]string{"id_estado_solicitud", "nombre"}))

		svc := newTestSolicitudService(t, mock)

		_, err := svc.CambiarEstado(context.Background(), 5, 100, "inventado")
		require.ErrorIs(t, err, ErrValidacion)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("evaluador moves any solicitud", func(t *testing.T) {
		mock := newMockDB(t)
		mock.ExpectQuery("FROM usuario_rol").
			WithArgs(int64(5)).
			WillReturnRows(pgxmock.NewRows([]string{"nombre"}).AddRow("Evaluador"))
		mock.ExpectQuery("FROM solicitud").
			WithArgs(int64(100)).
			WillReturnRows(solicitudJoinRow(100, 9, "pendiente", "oficina", nil))
		mock.ExpectQuery("FROM estado_solicitud").
			WithArgs("evaluada").
			WillReturnRows(pgxmock.NewRows([]string{"id_estado_solicitud", "nombre"}).
				AddRow(int64(2), "evaluada"))
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE solicitud").
			WithArgs(int64(2), int64(100)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		expectAuditInsert(mock, 5, "CAMBIAR_ESTADO_SOLICITUD")
		mock.ExpectCommit()
		mock.ExpectQuery("FROM solicitud").
			WithArgs(int64(100)).
			WillReturnRows(solicitudJoinRow(100, 9, "evaluada", "oficina", nil))
		// deferred rollback fires after the reload, once the tx is done
		mock.ExpectRollback()

		svc := newTestSolicitudService(t, mock)

		s, err := svc.CambiarEstado(context.Background(), 5, 100, "evaluada")
		require.NoError(t, err)
		assert.Equal(t, "evaluada", s.Estado)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSolicitudService_CrearCompleta_UnknownTipo(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery("FROM cat_tipo_articulo").
		WithArgs([]int64{42}).
		WillReturnRows(pgxmock.NewRows([]string{"id_tipo"}))

	svc := newTestSolicitudService(t, mock)

	_, err := svc.CrearCompleta(context.Background(), 5, domain.Solicitud{
		MetodoEntrega: "oficina",
		Articulos: []*domain.Articulo{
			{IDTipo: 42, Descripcion: "reloj", ValorEstimado: 1500},
		},
	})
	require.ErrorIs(t, err, ErrValidacion)
	require.NoError(t, mock.ExpectationsWereMet(), "nothing may be written")
}

func TestSolicitudService_ReemplazarCompleta_ValidationPrecedesWrites(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery("FROM solicitud").
		WithArgs(int64(100)).
		WillReturnRows(solicitudJoinRow(100, 5, "pendiente", "oficina", nil))
	mock.ExpectQuery("FROM articulo").
		WithArgs(int64(100)).
		WillReturnRows(pgxmock.NewRows(articuloColumns))

	svc := newTestSolicitudService(t, mock)

	// invalid payload: domicilio without direccion. The stored tree must
	// stay untouched, so no Begin is ever expected.
	_, err := svc.ReemplazarCompleta(context.Background(), 5, 100, domain.Solicitud{
		MetodoEntrega: "domicilio",
		Articulos: []*domain.Articulo{
			{IDTipo: 1, Descripcion: "reloj", ValorEstimado: 1500},
		},
	})
	require.ErrorIs(t, err, ErrValidacion)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSolicitudService_ReemplazarCompleta_Success(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery("FROM solicitud").
		WithArgs(int64(100)).
		WillReturnRows(solicitudJoinRow(100, 5, "pendiente", "oficina", nil))
	mock.ExpectQuery("FROM articulo").
		WithArgs(int64(100)).
		WillReturnRows(pgxmock.NewRows(articuloColumns).
			AddRow(int64(1), int64(100), int64(2), int64(1), "viejo", 100.0, nil, nil))
	mock.ExpectQuery("FROM articulo_foto").
		WithArgs([]int64{1}).
		WillReturnRows(pgxmock.NewRows([]string{"id_foto", "id_articulo", "url", "orden"}))
	mock.ExpectQuery("FROM cat_tipo_articulo").
		WithArgs([]int64{3}).
		WillReturnRows(pgxmock.NewRows([]string{"id_tipo"}).AddRow(int64(3)))
	mock.ExpectQuery("FROM estado_articulo").
		WithArgs("pendiente").
		WillReturnRows(pgxmock.NewRows([]string{"id_estado_articulo", "nombre"}).
			AddRow(int64(1), "pendiente"))

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE solicitud").
		WithArgs("oficina", pgxmock.AnyArg(), int64(100)).
		WillReturnRows(pgxmock.NewRows(solicitudColumns).
			AddRow(int64(100), int64(5), int64(1), time.Now(), "oficina", nil))
	mock.ExpectExec("DELETE FROM articulo_foto").
		WithArgs(int64(100)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM articulo").
		WithArgs(int64(100)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectQuery("INSERT INTO articulo").
		WithArgs(int64(100), int64(3), int64(1), "anillo", 900.0, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id_articulo"}).AddRow(int64(2)))
	mock.ExpectExec("INSERT INTO articulo_foto").
		WithArgs(int64(2), "https://cdn.example.com/a.jpg", 1).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	expectAuditInsert(mock, 5, "ACTUALIZAR_SOLICITUD")
	mock.ExpectCommit()

	// reload of the canonical nested state
	mock.ExpectQuery("FROM solicitud").
		WithArgs(int64(100)).
		WillReturnRows(solicitudJoinRow(100, 5, "pendiente", "oficina", nil))
	mock.ExpectQuery("FROM articulo").
		WithArgs(int64(100)).
		WillReturnRows(pgxmock.NewRows(articuloColumns).
			AddRow(int64(2), int64(100), int64(3), int64(1), "anillo", 900.0, nil, nil))
	mock.ExpectQuery("FROM articulo_foto").
		WithArgs([]int64{2}).
		WillReturnRows(pgxmock.NewRows([]string{"id_foto", "id_articulo", "url", "orden"}).
			AddRow(int64(7), int64(2), "https://cdn.example.com/a.jpg", 1))
	// deferred rollback fires after the reload, once the tx is done
	mock.ExpectRollback()

	svc := newTestSolicitudService(t, mock)

	s, err := svc.ReemplazarCompleta(context.Background(), 5, 100, domain.Solicitud{
		MetodoEntrega: "oficina",
		Articulos: []*domain.Articulo{
			{
				IDTipo:        3,
				Descripcion:   "anillo",
				ValorEstimado: 900,
				Fotos:         []*domain.Foto{{URL: "https://cdn.example.com/a.jpg", Orden: 1}},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, s.Articulos, 1)
	require.Len(t, s.Articulos[0].Fotos, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func ptr(s string) *string { return &s }
