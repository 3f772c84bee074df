package catalogo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"prestamos-api/internal/domain/catalogo"
	"prestamos-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) catalogo.Repository {
	return &Repository{db: db}
}

func (r *Repository) WithTx(tx pgx.Tx) catalogo.Repository {
	return &Repository{db: tx}
}

func (r *Repository) TiposArticulo(ctx context.Context) (catalogo.Entradas, error) {
	return r.fetchEntradas(ctx, SelectTiposArticulo)
}

func (r *Repository) EstadosSolicitud(ctx context.Context) (catalogo.Entradas, error) {
	return r.fetchEntradas(ctx, SelectEstadosSolicitud)
}

func (r *Repository) EstadosArticulo(ctx context.Context) (catalogo.Entradas, error) {
	return r.fetchEntradas(ctx, SelectEstadosArticulo)
}

func (r *Repository) EstadoSolicitudPorNombre(ctx context.Context, nombre string) (*catalogo.Entrada, error) {
	return r.fetchEntrada(ctx, SelectEstadoSolicitudPorNombre, nombre)
}

func (r *Repository) EstadoArticuloPorNombre(ctx context.Context, nombre string) (*catalogo.Entrada, error) {
	return r.fetchEntrada(ctx, SelectEstadoArticuloPorNombre, nombre)
}

func (r *Repository) TiposFaltantes(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, SelectTiposExistentes, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existentes := make(map[int64]struct{}, len(ids))
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		existentes[id] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	var faltantes []int64
	for _, id := range ids {
		if _, ok := existentes[id]; !ok {
			faltantes = append(faltantes, id)
		}
	}

	return faltantes, nil
}

func (r *Repository) fetchEntradas(ctx context.Context, query string) (catalogo.Entradas, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// empty catalogs are an empty list, never nil and never an error
	es := make(catalogo.Entradas, 0)
	for rows.Next() {
		var e catalogo.Entrada
		if err = rows.Scan(&e.ID, &e.Nombre); err != nil {
			return nil, err
		}
		es = append(es, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return es, nil
}

func (r *Repository) fetchEntrada(ctx context.Context, query, nombre string) (*catalogo.Entrada, error) {
	e := new(catalogo.Entrada)
	err := r.db.QueryRow(ctx, query, nombre).Scan(&e.ID, &e.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return e, nil
}
