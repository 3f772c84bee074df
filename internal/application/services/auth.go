package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"prestamos-api/config"
	"prestamos-api/internal/application/ports"
	"prestamos-api/internal/domain/auditoria"
	domain "prestamos-api/internal/domain/user"
	"prestamos-api/internal/infrastructure/db/postgres"
	"prestamos-api/internal/infrastructure/mq"
	"prestamos-api/internal/infrastructure/password"
)

type AuthService struct {
	cfg      config.Auth
	db       postgres.DB
	userRepo domain.Repository
	audit    auditoria.Recorder
	tokens   ports.TokenService
	verifier ports.IdentityVerifier
	mq       ports.RabbitMQ
	mCounter *prometheus.CounterVec
	lookupMX MXLookup
}

func NewAuthService(
	cfg config.Auth,
	db postgres.DB,
	userRepo domain.Repository,
	audit auditoria.Recorder,
	tokens ports.TokenService,
	verifier ports.IdentityVerifier,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.AuthService {
	return &AuthService{
		cfg:      cfg,
		db:       db,
		userRepo: userRepo,
		audit:    audit,
		tokens:   tokens,
		verifier: verifier,
		mq:       rbMQ,
		mCounter: mCounter,
		lookupMX: net.LookupMX,
	}
}

func (as *AuthService) Register(ctx context.Context, nombre, correo, contrasena string) (*domain.User, error) {
	if as.cfg.GoogleOnly {
		return nil, ErrRegistroSoloGoogle
	}

	correo = strings.ToLower(strings.TrimSpace(correo))
	if err := as.checkCorreoPolicy(correo); err != nil {
		return nil, err
	}

	hash, err := password.Hash(contrasena)
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: la contraseña supera los 72 bytes", ErrValidacion)
		}
		return nil, err
	}

	tx, err := as.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	u, err := as.userRepo.WithTx(tx).Create(ctx, domain.User{
		Nombre:         nombre,
		Correo:         correo,
		ContrasenaHash: &hash,
		Verificado:     false,
		EstadoActivo:   true,
	})
	if err != nil {
		return nil, err
	}

	entrada := auditoria.Entrada{
		IDUsuario: int64(u.ID),
		Accion:    auditoria.AccionRegistrarUsuario,
		Modulo:    auditoria.ModuloAuth,
		Detalle:   fmt.Sprintf("Registro de usuario %d", u.ID),
		New:       u.Snapshot(),
	}
	if err = as.audit.Record(ctx, tx, entrada); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	as.mq.GetInputChan() <- mq.NewEvent(entrada)
	as.mCounter.WithLabelValues("user_registered_total").Inc()

	return u, nil
}

func (as *AuthService) Login(ctx context.Context, correo, contrasena string) (string, error) {
	u, err := as.userRepo.FetchByCorreo(ctx, strings.ToLower(strings.TrimSpace(correo)))
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}
	// federated-only accounts carry no usable hash
	if u.ContrasenaHash == nil || !password.Verify(contrasena, *u.ContrasenaHash) {
		return "", ErrInvalidCredentials
	}

	token, err := as.tokens.Issue(int64(u.ID), 0)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}

func (as *AuthService) LoginGoogle(ctx context.Context, idToken string) (string, error) {
	claims, err := as.verifier.Verify(ctx, idToken)
	if err != nil {
		return "", err
	}

	u, err := as.userRepo.FetchByCorreo(ctx, claims.Correo)
	if err != nil {
		return "", err
	}
	if u == nil {
		if u, err = as.createFederated(ctx, claims.Nombre, claims.Correo); err != nil {
			return "", err
		}
	}

	token, err := as.tokens.Issue(int64(u.ID), 0)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}

// createFederated provisions a first-login Google account. The random
// hash makes password login permanently impossible for it.
func (as *AuthService) createFederated(ctx context.Context, nombre, correo string) (*domain.User, error) {
	dummy, err := password.RandomHash()
	if err != nil {
		return nil, err
	}

	tx, err := as.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	u, err := as.userRepo.WithTx(tx).Create(ctx, domain.User{
		Nombre:         nombre,
		Correo:         correo,
		ContrasenaHash: &dummy,
		Verificado:     true,
		EstadoActivo:   true,
	})
	if err != nil {
		return nil, err
	}

	entrada := auditoria.Entrada{
		IDUsuario: int64(u.ID),
		Accion:    auditoria.AccionRegistrarUsuario,
		Modulo:    auditoria.ModuloAuth,
		Detalle:   fmt.Sprintf("Alta por Google del usuario %d", u.ID),
		New:       u.Snapshot(),
	}
	if err = as.audit.Record(ctx, tx, entrada); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	as.mq.GetInputChan() <- mq.NewEvent(entrada)
	as.mCounter.WithLabelValues("user_registered_google_total").Inc()

	return u, nil
}

func (as *AuthService) checkCorreoPolicy(correo string) error {
	dom := dominioDe(correo)

	if as.cfg.AllowedEmailDomain != "" && !strings.HasSuffix(correo, "@"+as.cfg.AllowedEmailDomain) {
		return fmt.Errorf("%w: solo correos @%s", ErrValidacion, as.cfg.AllowedEmailDomain)
	}
	if as.cfg.RejectDisposable && esDominioDesechable(dom) {
		return fmt.Errorf("%w: dominio de correo desechable", ErrValidacion)
	}
	if as.cfg.CheckEmailMX && !tieneMX(as.lookupMX, dom) {
		return fmt.Errorf("%w: el dominio del correo no recibe mensajes", ErrValidacion)
	}

	return nil
}
