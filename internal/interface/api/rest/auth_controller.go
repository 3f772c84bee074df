package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prestamos-api/internal/application/ports"
	"prestamos-api/internal/application/services"
	userDB "prestamos-api/internal/infrastructure/db/postgres/user"
	"prestamos-api/internal/infrastructure/googleauth"
	"prestamos-api/internal/interface/api/rest/dto/auth"
	"prestamos-api/internal/interface/api/rest/dto/usuario"
	"prestamos-api/internal/interface/api/rest/middleware"
	"prestamos-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.AuthService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.AuthService,
	authMW gin.HandlerFunc,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteAuthRegister, ac.RegisterHandler)
	r.POST(RouteAuthLogin, ac.LoginHandler)
	r.POST(RouteAuthGoogle, ac.GoogleHandler)
	r.GET(RouteAuthMe, authMW, ac.MeHandler)

	return ac
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateRegister(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.authService.Register(c.Request.Context(), req.Nombre, req.Correo, req.Contrasena)
	if err != nil {
		switch {
		case errors.Is(err, userDB.ErrCorreoEnUso):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrRegistroSoloGoogle),
			errors.Is(err, services.ErrValidacion):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to register user"},
			)
			ac.logger.Error("Register() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusCreated, usuario.ToResponseUsuario(*u))
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}
	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), req.Correo, req.Contrasena)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to log in"},
		)
		ac.logger.Error("Login() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}

func (ac *AuthController) GoogleHandler(c *gin.Context) {
	var req auth.GoogleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}
	if errs := validator.ValidateGoogle(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	token, err := ac.authService.LoginGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, googleauth.ErrUntrustedIdentity):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, googleauth.ErrDomainNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to log in with Google"},
			)
			ac.logger.Error("LoginGoogle() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}

func (ac *AuthController) MeHandler(c *gin.Context) {
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
