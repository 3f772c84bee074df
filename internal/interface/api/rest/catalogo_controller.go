package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prestamos-api/internal/application/ports"
	domain "prestamos-api/internal/domain/catalogo"
	"prestamos-api/internal/interface/api/rest/dto/catalogo"
)

// CatalogoController serves the lookup tables clients need to render
// their forms. All routes are public reads.
type CatalogoController struct {
	catalogoService ports.CatalogoService
	logger          *zap.Logger
}

func NewCatalogoController(
	r *gin.Engine,
	catalogoService ports.CatalogoService,
	logger *zap.Logger,
	cacheMW gin.HandlerFunc,
) *CatalogoController {
	cc := &CatalogoController{
		catalogoService: catalogoService,
		logger:          logger,
	}

	r.GET(RouteCatalogoBootstrap, cacheMW, cc.BootstrapHandler)
	r.GET(RouteCatalogoMetodos, cacheMW, cc.MetodosEntregaHandler)
	r.GET(RouteCatalogoCondiciones, cacheMW, cc.CondicionesHandler)
	r.GET(RouteCatalogoTipos, cacheMW, cc.TiposArticuloHandler)
	r.GET(RouteCatalogoEstadosSol, cacheMW, cc.EstadosSolicitudHandler)
	r.GET(RouteCatalogoEstadosArt, cacheMW, cc.EstadosArticuloHandler)

	return cc
}

func (cc *CatalogoController) BootstrapHandler(c *gin.Context) {
	b, err := cc.catalogoService.Bootstrap(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get catalogs"},
		)
		cc.logger.Error("Bootstrap() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, catalogo.ToResponseBootstrap(*b))
}

func (cc *CatalogoController) MetodosEntregaHandler(c *gin.Context) {
	c.JSON(http.StatusOK, catalogo.OpcionesData{
		Data: catalogo.ToResponseOpciones(domain.MetodosEntrega()),
	})
}

func (cc *CatalogoController) CondicionesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, catalogo.OpcionesData{
		Data: catalogo.ToResponseOpciones(domain.CondicionesArticulo()),
	})
}

func (cc *CatalogoController) TiposArticuloHandler(c *gin.Context) {
	cc.entradas(c, "TiposArticulo()", cc.catalogoService.TiposArticulo)
}

func (cc *CatalogoController) EstadosSolicitudHandler(c *gin.Context) {
	cc.entradas(c, "EstadosSolicitud()", cc.catalogoService.EstadosSolicitud)
}

func (cc *CatalogoController) EstadosArticuloHandler(c *gin.Context) {
	cc.entradas(c, "EstadosArticulo()", cc.catalogoService.EstadosArticulo)
}

func (cc *CatalogoController) entradas(
	c *gin.Context,
	op string,
	fetch func(ctx context.Context) (domain.Entradas, error),
) {
	es, err := fetch(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get catalogs"},
		)
		cc.logger.Error(op+" error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, catalogo.ResponseData{
		Data: catalogo.ToResponseEntradas(es),
	})
}
