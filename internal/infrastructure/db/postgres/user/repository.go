package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"prestamos-api/internal/domain/user"
	"prestamos-api/internal/infrastructure/db/postgres"
)

var ErrCorreoEnUso = errors.New("el correo ya está en uso")

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) WithTx(tx pgx.Tx) user.Repository {
	return &Repository{db: tx}
}

func (r *Repository) FetchByID(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, int64(id)).Scan(
		&u.ID,
		&u.Nombre,
		&u.Correo,
		&u.ContrasenaHash,
		&u.Telefono,
		&u.Direccion,
		&u.Verificado,
		&u.EstadoActivo,
		&u.TokenVersion,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchByCorreo(ctx context.Context, correo string) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByCorreo, correo).Scan(
		&u.ID,
		&u.Nombre,
		&u.Correo,
		&u.ContrasenaHash,
		&u.Telefono,
		&u.Direccion,
		&u.Verificado,
		&u.EstadoActivo,
		&u.TokenVersion,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) Create(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Nombre, req.Correo, req.ContrasenaHash, req.Verificado, req.EstadoActivo,
	).Scan(
		&u.ID,
		&u.Nombre,
		&u.Correo,
		&u.ContrasenaHash,
		&u.Telefono,
		&u.Direccion,
		&u.Verificado,
		&u.EstadoActivo,
		&u.TokenVersion,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrCorreoEnUso
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdatePerfil(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(
		ctx,
		UpdatePerfilByID,
		req.Nombre, req.Telefono, req.Direccion, int64(req.ID),
	).Scan(
		&u.ID,
		&u.Nombre,
		&u.Correo,
		&u.ContrasenaHash,
		&u.Telefono,
		&u.Direccion,
		&u.Verificado,
		&u.EstadoActivo,
		&u.TokenVersion,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchRoles(ctx context.Context, id user.ID) ([]string, error) {
	rows, err := r.db.Query(ctx, SelectRolesByUserID, int64(id))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var nombre string
		if err = rows.Scan(&nombre); err != nil {
			return nil, err
		}
		roles = append(roles, nombre)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}
