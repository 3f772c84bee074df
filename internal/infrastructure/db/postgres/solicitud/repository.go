package solicitud

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"prestamos-api/internal/domain/solicitud"
	"prestamos-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) solicitud.Repository {
	return &Repository{db: db}
}

func (r *Repository) WithTx(tx pgx.Tx) solicitud.Repository {
	return &Repository{db: tx}
}

func (r *Repository) Create(ctx context.Context, req solicitud.Solicitud) (*solicitud.Solicitud, error) {
	s := new(Solicitud)
	err := r.db.QueryRow(
		ctx,
		InsertSolicitud,
		req.IDUsuario, req.IDEstado, req.MetodoEntrega, req.DireccionEntrega,
	).Scan(
		&s.ID,
		&s.IDUsuario,
		&s.IDEstado,
		&s.FechaEnvio,
		&s.MetodoEntrega,
		&s.DireccionEntrega,
	)
	if err != nil {
		return nil, err
	}
	// RETURNING cannot join the catalog; the caller resolved the estado
	// name already.
	s.Estado = req.Estado

	return fromDBModel(s), nil
}

func (r *Repository) FetchByID(ctx context.Context, id int64) (*solicitud.Solicitud, error) {
	s := new(Solicitud)
	err := r.db.QueryRow(ctx, SelectSolicitudByID, id).Scan(
		&s.ID,
		&s.IDUsuario,
		&s.IDEstado,
		&s.Estado,
		&s.FechaEnvio,
		&s.MetodoEntrega,
		&s.DireccionEntrega,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s), nil
}

func (r *Repository) FetchMine(ctx context.Context, userID int64) (solicitud.Solicitudes, error) {
	rows, err := r.db.Query(ctx, SelectMisSolicitudes, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ss Solicitudes
	for rows.Next() {
		s := new(Solicitud)
		if err = rows.Scan(
			&s.ID,
			&s.IDUsuario,
			&s.IDEstado,
			&s.Estado,
			&s.FechaEnvio,
			&s.MetodoEntrega,
			&s.DireccionEntrega,
		); err != nil {
			return nil, err
		}
		ss = append(ss, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(ss), nil
}

func (r *Repository) UpdateHeader(ctx context.Context, req solicitud.Solicitud) (*solicitud.Solicitud, error) {
	s := new(Solicitud)
	err := r.db.QueryRow(
		ctx,
		UpdateSolicitudHeader,
		req.MetodoEntrega, req.DireccionEntrega, req.ID,
	).Scan(
		&s.ID,
		&s.IDUsuario,
		&s.IDEstado,
		&s.FechaEnvio,
		&s.MetodoEntrega,
		&s.DireccionEntrega,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	s.Estado = req.Estado

	return fromDBModel(s), nil
}

func (r *Repository) UpdateEstado(ctx context.Context, id, idEstado int64) error {
	tag, err := r.db.Exec(ctx, UpdateSolicitudEstado, idEstado, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) FetchArticulos(ctx context.Context, solicitudID int64) ([]*solicitud.Articulo, error) {
	rows, err := r.db.Query(ctx, SelectArticulosBySolicitud, solicitudID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var arts []*Articulo
	for rows.Next() {
		a := new(Articulo)
		if err = rows.Scan(
			&a.ID,
			&a.IDSolicitud,
			&a.IDTipo,
			&a.IDEstado,
			&a.Descripcion,
			&a.ValorEstimado,
			&a.ValorAprobado,
			&a.Condicion,
		); err != nil {
			return nil, err
		}
		arts = append(arts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	out := make([]*solicitud.Articulo, len(arts))
	ids := make([]int64, len(arts))
	byID := make(map[int64]*solicitud.Articulo, len(arts))
	for i, a := range arts {
		out[i] = articuloFromDBModel(a)
		ids[i] = a.ID
		byID[a.ID] = out[i]
	}
	if len(ids) == 0 {
		return out, nil
	}

	fotos, err := r.fetchFotos(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, f := range fotos {
		if a, ok := byID[f.IDArticulo]; ok {
			a.Fotos = append(a.Fotos, f)
		}
	}

	return out, nil
}

func (r *Repository) fetchFotos(ctx context.Context, articuloIDs []int64) ([]*solicitud.Foto, error) {
	rows, err := r.db.Query(ctx, SelectFotosByArticulos, articuloIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fotos []*solicitud.Foto
	for rows.Next() {
		f := new(Foto)
		if err = rows.Scan(&f.ID, &f.IDArticulo, &f.URL, &f.Orden); err != nil {
			return nil, err
		}
		fotos = append(fotos, fotoFromDBModel(f))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fotos, nil
}

func (r *Repository) InsertArticulos(ctx context.Context, solicitudID, idEstado int64, arts []*solicitud.Articulo) error {
	for _, a := range arts {
		var id int64
		err := r.db.QueryRow(
			ctx,
			InsertArticulo,
			solicitudID, a.IDTipo, idEstado, a.Descripcion, a.ValorEstimado, a.Condicion,
		).Scan(&id)
		if err != nil {
			return err
		}
		for _, f := range a.Fotos {
			if _, err = r.db.Exec(ctx, InsertFoto, id, f.URL, f.Orden); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *Repository) DeleteArticulos(ctx context.Context, solicitudID int64) error {
	// fotos first, then articulos
	if _, err := r.db.Exec(ctx, DeleteFotosBySolicitud, solicitudID); err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, DeleteArticulosBySolicitud, solicitudID); err != nil {
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, DeleteSolicitudByID, id)
	return err
}
