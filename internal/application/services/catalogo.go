package services

import (
	"context"

	"prestamos-api/internal/application/ports"
	"prestamos-api/internal/domain/catalogo"
)

type CatalogoService struct {
	repo catalogo.Repository
}

func NewCatalogoService(repo catalogo.Repository) ports.CatalogoService {
	return &CatalogoService{repo: repo}
}

func (cs *CatalogoService) Bootstrap(ctx context.Context) (*ports.Bootstrap, error) {
	tipos, err := cs.repo.TiposArticulo(ctx)
	if err != nil {
		return nil, err
	}
	estadosSol, err := cs.repo.EstadosSolicitud(ctx)
	if err != nil {
		return nil, err
	}
	estadosArt, err := cs.repo.EstadosArticulo(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.Bootstrap{
		MetodosEntrega:      catalogo.MetodosEntrega(),
		CondicionesArticulo: catalogo.CondicionesArticulo(),
		TiposArticulo:       tipos,
		EstadosSolicitud:    estadosSol,
		EstadosArticulo:     estadosArt,
	}, nil
}

func (cs *CatalogoService) TiposArticulo(ctx context.Context) (catalogo.Entradas, error) {
	return cs.repo.TiposArticulo(ctx)
}

func (cs *CatalogoService) EstadosSolicitud(ctx context.Context) (catalogo.Entradas, error) {
	return cs.repo.EstadosSolicitud(ctx)
}

func (cs *CatalogoService) EstadosArticulo(ctx context.Context) (catalogo.Entradas, error) {
	return cs.repo.EstadosArticulo(ctx)
}
