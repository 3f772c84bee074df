package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prestamos-api/internal/application/ports"
	"prestamos-api/internal/application/services"
	"prestamos-api/internal/interface/api/rest/dto/usuario"
	"prestamos-api/internal/interface/api/rest/middleware"
	"prestamos-api/internal/interface/api/rest/validator"
)

type UsuarioController struct {
	usuarioService ports.UsuarioService
	logger         *zap.Logger
}

func NewUsuarioController(
	r *gin.Engine,
	usuarioService ports.UsuarioService,
	logger *zap.Logger,
	authMW gin.HandlerFunc,
) *UsuarioController {
	uc := &UsuarioController{
		usuarioService: usuarioService,
		logger:         logger,
	}

	r.GET(RoutePerfil, authMW, middleware.RequireActive(), uc.GetPerfilHandler)
	r.PATCH(RoutePerfil, authMW, middleware.RequireActive(), uc.UpdatePerfilHandler)

	return uc
}

func (uc *UsuarioController) GetPerfilHandler(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to resolve user"},
		)
		return
	}

	c.JSON(http.StatusOK, usuario.ToResponseUsuario(*u))
}

func (uc *UsuarioController) UpdatePerfilHandler(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to resolve user"},
		)
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if len(raw) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty patch"})
		return
	}

	patch, desconocidos, errs := validator.ValidatePerfilPatch(raw)
	if len(desconocidos) > 0 {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "fields not editable",
			"details": desconocidos,
		})
		return
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	updated, err := uc.usuarioService.ActualizarPerfil(c.Request.Context(), u, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsuarioInactivo):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrValidacion):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to update profile"},
			)
			uc.logger.Error("ActualizarPerfil() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, usuario.ToResponseUsuario(*updated))
}
