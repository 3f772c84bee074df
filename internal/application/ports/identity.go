package ports

import (
	"context"

	"prestamos-api/internal/infrastructure/googleauth"
)

// IdentityVerifier validates an externally issued identity token and
// returns normalized claims.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*googleauth.Claims, error)
}
