package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"prestamos-api/internal/application/ports"
	"prestamos-api/internal/domain/auditoria"
	"prestamos-api/internal/domain/catalogo"
	domain "prestamos-api/internal/domain/solicitud"
	"prestamos-api/internal/domain/user"
	"prestamos-api/internal/infrastructure/db/postgres"
	"prestamos-api/internal/infrastructure/mq"
)

// Roles allowed to change a solicitud's estado.
var rolesPrivilegiados = []string{user.RolAdministrador, user.RolEvaluador}

type SolicitudService struct {
	db            postgres.DB
	solicitudRepo domain.Repository
	catalogoRepo  catalogo.Repository
	userRepo      user.Repository
	audit         auditoria.Recorder
	mq            ports.RabbitMQ
	mCounter      *prometheus.CounterVec
}

func NewSolicitudService(
	db postgres.DB,
	solicitudRepo domain.Repository,
	catalogoRepo catalogo.Repository,
	userRepo user.Repository,
	audit auditoria.Recorder,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.SolicitudService {
	return &SolicitudService{
		db:            db,
		solicitudRepo: solicitudRepo,
		catalogoRepo:  catalogoRepo,
		userRepo:      userRepo,
		audit:         audit,
		mq:            rbMQ,
		mCounter:      mCounter,
	}
}

func (ss *SolicitudService) Crear(ctx context.Context, actorID int64, metodo string, direccion *string) (*domain.Solicitud, error) {
	metodo = strings.ToLower(strings.TrimSpace(metodo))
	if err := validarEntrega(metodo, direccion); err != nil {
		return nil, err
	}

	pendiente, err := ss.estadoSolicitudSemilla(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := ss.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	s, err := ss.solicitudRepo.WithTx(tx).Create(ctx, domain.Solicitud{
		IDUsuario:        actorID,
		IDEstado:         pendiente.ID,
		Estado:           pendiente.Nombre,
		MetodoEntrega:    metodo,
		DireccionEntrega: direccion,
	})
	if err != nil {
		return nil, err
	}

	entrada := auditoria.Entrada{
		IDUsuario: actorID,
		Accion:    auditoria.AccionCrearSolicitud,
		Modulo:    auditoria.ModuloSolicitud,
		Detalle:   fmt.Sprintf("Solicitud %d creada por usuario %d", s.ID, actorID),
		New:       s.Snapshot(),
	}
	if err = ss.audit.Record(ctx, tx, entrada); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	ss.mq.GetInputChan() <- mq.NewEvent(entrada)
	ss.mCounter.WithLabelValues("solicitud_created_total").Inc()

	return s, nil
}

func (ss *SolicitudService) Mias(ctx context.Context, actorID int64) (domain.Solicitudes, error) {
	return ss.solicitudRepo.FetchMine(ctx, actorID)
}

// Obtener returns ErrNotFound both for absent rows and for rows owned
// by someone else, so existence never leaks.
func (ss *SolicitudService) Obtener(ctx context.Context, actorID, id int64) (*domain.Solicitud, error) {
	return ss.fetchOwned(ctx, ss.solicitudRepo, actorID, id)
}

func (ss *SolicitudService) Actualizar(ctx context.Context, actorID, id int64, patch domain.Patch) (*domain.Solicitud, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("%w: debe enviar al menos un campo editable", ErrValidacion)
	}

	s, err := ss.fetchOwned(ctx, ss.solicitudRepo, actorID, id)
	if err != nil {
		return nil, err
	}

	req := *s
	if patch.MetodoEntrega != nil {
		req.MetodoEntrega = strings.ToLower(strings.TrimSpace(*patch.MetodoEntrega))
	}
	if patch.DireccionEntrega != nil {
		req.DireccionEntrega = patch.DireccionEntrega
	}
	if err = validarEntrega(req.MetodoEntrega, req.DireccionEntrega); err != nil {
		return nil, err
	}

	tx, err := ss.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	updated, err := ss.solicitudRepo.WithTx(tx).UpdateHeader(ctx, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	entrada := auditoria.Entrada{
		IDUsuario: actorID,
		Accion:    auditoria.AccionActualizar,
		Modulo:    auditoria.ModuloSolicitud,
		Detalle:   fmt.Sprintf("Solicitud %d actualizada por usuario %d", id, actorID),
		Old:       s.Snapshot(),
		New:       updated.Snapshot(),
	}
	if err = ss.audit.Record(ctx, tx, entrada); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	ss.mq.GetInputChan() <- mq.NewEvent(entrada)
	ss.mCounter.WithLabelValues("solicitud_updated_total").Inc()

	return updated, nil
}

func (ss *SolicitudService) Eliminar(ctx context.Context, actorID, id int64) error {
	s, err := ss.fetchOwned(ctx, ss.solicitudRepo, actorID, id)
	if err != nil {
		return err
	}
	s.Articulos, err = ss.solicitudRepo.FetchArticulos(ctx, id)
	if err != nil {
		return err
	}

	tx, err := ss.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// children first: fotos, articulos, then the solicitud itself
	repo := ss.solicitudRepo.WithTx(tx)
	if err = repo.DeleteArticulos(ctx, id); err != nil {
		return err
	}
	if err = repo.Delete(ctx, id); err != nil {
		return err
	}

	entrada := auditoria.Entrada{
		IDUsuario: actorID,
		Accion:    auditoria.AccionEliminar,
		Modulo:    auditoria.ModuloSolicitud,
		Detalle:   fmt.Sprintf("Solicitud %d eliminada por usuario %d", id, actorID),
		Old:       s.Snapshot(),
	}
	if err = ss.audit.Record(ctx, tx, entrada); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return err
	}

	ss.mq.GetInputChan() <- mq.NewEvent(entrada)
	ss.mCounter.WithLabelValues("solicitud_deleted_total").Inc()

	return nil
}

func (ss *SolicitudService) CambiarEstado(ctx context.Context, actorID, id int64, estado string) (*domain.Solicitud, error) {
	privileged, err := ss.actorPrivilegiado(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !privileged {
		return nil, ErrForbidden
	}

	s, err := ss.solicitudRepo.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNotFound
	}

	// any catalog-valid estado is reachable; only the name must exist
	destino, err := ss.catalogoRepo.EstadoSolicitudPorNombre(ctx, estado)
	if err != nil {
		return nil, err
	}
	if destino == nil {
		return nil, fmt.Errorf("%w: estado %q no existe en el catálogo", ErrValidacion, estado)
	}

	tx, err := ss.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err = ss.solicitudRepo.WithTx(tx).UpdateEstado(ctx, id, destino.ID); err != nil {
		return nil, err
	}

	after := *s
	after.IDEstado = destino.ID
	after.Estado = destino.Nombre

	entrada := auditoria.Entrada{
		IDUsuario: actorID,
		Accion:    auditoria.AccionCambiarEstado,
		Modulo:    auditoria.ModuloSolicitud,
		Detalle:   fmt.Sprintf("Solicitud %d: estado %q -> %q", id, s.Estado, destino.Nombre),
		Old:       s.Snapshot(),
		New:       after.Snapshot(),
	}
	if err = ss.audit.Record(ctx, tx, entrada); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	ss.mq.GetInputChan() <- mq.NewEvent(entrada)
	ss.mCounter.WithLabelValues("solicitud_estado_changed_total").Inc()

	return ss.solicitudRepo.FetchByID(ctx, id)
}

func (ss *SolicitudService) CrearCompleta(ctx context.Context, actorID int64, req domain.Solicitud) (*domain.Solicitud, error) {
	req.MetodoEntrega = strings.ToLower(strings.TrimSpace(req.MetodoEntrega))
	if err := validarEntrega(req.MetodoEntrega, req.DireccionEntrega); err != nil {
		return nil, err
	}
	if len(req.Articulos) == 0 {
		return nil, fmt.Errorf("%w: debe enviar al menos 1 artículo", ErrValidacion)
	}
	if err := ss.validarTipos(ctx, req.Articulos); err != nil {
		return nil, err
	}

	estadoSol, err := ss.estadoSolicitudSemilla(ctx)
	if err != nil {
		return nil, err
	}
	estadoArt, err := ss.estadoArticuloSemilla(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := ss.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	repo := ss.solicitudRepo.WithTx(tx)
	s, err := repo.Create(ctx, domain.Solicitud{
		IDUsuario:        actorID,
		IDEstado:         estadoSol.ID,
		Estado:           estadoSol.Nombre,
		MetodoEntrega:    req.MetodoEntrega,
		DireccionEntrega: req.DireccionEntrega,
	})
	if err != nil {
		return nil, err
	}
	if err = repo.InsertArticulos(ctx, s.ID, estadoArt.ID, req.Articulos); err != nil {
		return nil, err
	}
	s.Articulos = req.Articulos

	entrada := auditoria.Entrada{
		IDUsuario: actorID,
		Accion:    auditoria.AccionCrearSolicitud,
		Modulo:    auditoria.ModuloSolicitud,
		Detalle:   fmt.Sprintf("Solicitud completa %d creada por usuario %d", s.ID, actorID),
		New:       s.Snapshot(),
	}
	if err = ss.audit.Record(ctx, tx, entrada); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	ss.mq.GetInputChan() <- mq.NewEvent(entrada)
	ss.mCounter.WithLabelValues("solicitud_created_total").Inc()

	return ss.ObtenerCompleta(ctx, actorID, s.ID)
}

func (ss *SolicitudService) ObtenerCompleta(ctx context.Context, actorID, id int64) (*domain.Solicitud, error) {
	s, err := ss.fetchOwned(ctx, ss.solicitudRepo, actorID, id)
	if err != nil {
		return nil, err
	}
	if s.Articulos, err = ss.solicitudRepo.FetchArticulos(ctx, id); err != nil {
		return nil, err
	}

	return s, nil
}

// ReemplazarCompleta swaps out every articulo and foto. Validations run
// before any write so an invalid payload leaves the stored tree intact.
func (ss *SolicitudService) ReemplazarCompleta(ctx context.Context, actorID, id int64, req domain.Solicitud) (*domain.Solicitud, error) {
	s, err := ss.fetchOwned(ctx, ss.solicitudRepo, actorID, id)
	if err != nil {
		return nil, err
	}
	if s.Articulos, err = ss.solicitudRepo.FetchArticulos(ctx, id); err != nil {
		return nil, err
	}

	req.MetodoEntrega = strings.ToLower(strings.TrimSpace(req.MetodoEntrega))
	if err = validarEntrega(req.MetodoEntrega, req.DireccionEntrega); err != nil {
		return nil, err
	}
	if len(req.Articulos) == 0 {
		return nil, fmt.Errorf("%w: debe enviar al menos 1 artículo", ErrValidacion)
	}
	if err = ss.validarTipos(ctx, req.Articulos); err != nil {
		return nil, err
	}
	estadoArt, err := ss.estadoArticuloSemilla(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := ss.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	repo := ss.solicitudRepo.WithTx(tx)

	header := *s
	header.MetodoEntrega = req.MetodoEntrega
	header.DireccionEntrega = req.DireccionEntrega
	updated, err := repo.UpdateHeader(ctx, header)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	if err = repo.DeleteArticulos(ctx, id); err != nil {
		return nil, err
	}
	if err = repo.InsertArticulos(ctx, id, estadoArt.ID, req.Articulos); err != nil {
		return nil, err
	}
	updated.Articulos = req.Articulos

	entrada := auditoria.Entrada{
		IDUsuario: actorID,
		Accion:    auditoria.AccionActualizar,
		Modulo:    auditoria.ModuloSolicitud,
		Detalle:   fmt.Sprintf("Reemplazo completo de la solicitud %d por usuario %d", id, actorID),
		Old:       s.Snapshot(),
		New:       updated.Snapshot(),
	}
	if err = ss.audit.Record(ctx, tx, entrada); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	ss.mq.GetInputChan() <- mq.NewEvent(entrada)
	ss.mCounter.WithLabelValues("solicitud_updated_total").Inc()

	return ss.ObtenerCompleta(ctx, actorID, id)
}

func (ss *SolicitudService) fetchOwned(ctx context.Context, repo domain.Repository, actorID, id int64) (*domain.Solicitud, error) {
	s, err := repo.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil || s.IDUsuario != actorID {
		return nil, ErrNotFound
	}
	return s, nil
}

func (ss *SolicitudService) actorPrivilegiado(ctx context.Context, actorID int64) (bool, error) {
	roles, err := ss.userRepo.FetchRoles(ctx, user.ID(actorID))
	if err != nil {
		return false, err
	}
	for _, r := range roles {
		for _, p := range rolesPrivilegiados {
			if strings.EqualFold(r, p) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (ss *SolicitudService) validarTipos(ctx context.Context, arts []*domain.Articulo) error {
	seen := make(map[int64]struct{}, len(arts))
	var ids []int64
	for _, a := range arts {
		if _, ok := seen[a.IDTipo]; !ok {
			seen[a.IDTipo] = struct{}{}
			ids = append(ids, a.IDTipo)
		}
	}

	faltantes, err := ss.catalogoRepo.TiposFaltantes(ctx, ids)
	if err != nil {
		return err
	}
	if len(faltantes) > 0 {
		return fmt.Errorf("%w: tipos de artículo inexistentes: %v", ErrValidacion, faltantes)
	}

	return nil
}

func (ss *SolicitudService) estadoSolicitudSemilla(ctx context.Context) (*catalogo.Entrada, error) {
	e, err := ss.catalogoRepo.EstadoSolicitudPorNombre(ctx, domain.EstadoPendiente)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: no existe estado_solicitud %q", ErrCatalogoIncompleto, domain.EstadoPendiente)
	}
	return e, nil
}

func (ss *SolicitudService) estadoArticuloSemilla(ctx context.Context) (*catalogo.Entrada, error) {
	e, err := ss.catalogoRepo.EstadoArticuloPorNombre(ctx, domain.EstadoPendiente)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: no existe estado_articulo %q", ErrCatalogoIncompleto, domain.EstadoPendiente)
	}
	return e, nil
}

func validarEntrega(metodo string, direccion *string) error {
	if !domain.ValidMetodo(metodo) {
		return fmt.Errorf("%w: método de entrega inválido (domicilio | oficina)", ErrValidacion)
	}
	if metodo == domain.MetodoDomicilio && (direccion == nil || strings.TrimSpace(*direccion) == "") {
		return fmt.Errorf("%w: debe proporcionar una dirección si el método es domicilio", ErrValidacion)
	}
	return nil
}
