//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/pkg/clock"
	"residencial-admin/internal/pkg/config"
	"residencial-admin/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// Identities of the seeded mock accounts.
var (
	AdminIdentity = auth.Identity{ID: "1", Role: auth.RoleAdmin, Name: "Administrador Principal"}
	OwnerIdentity = auth.Identity{ID: "2", Role: auth.RoleOwner, Name: "María González", Apartment: "Torre A - 301"}
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, identity auth.Identity) string {
	t.Helper()
	return h.tokenAt(t, identity, time.Now())
}

// CreateExpiredToken signs a token whose lifetime ended before now.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, identity auth.Identity) string {
	t.Helper()
	duration := h.duration(t)
	return h.tokenAt(t, identity, time.Now().Add(-2*duration))
}

func (h *JWTHelper) tokenAt(t *testing.T, identity auth.Identity, issuedAt time.Time) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.duration(t), clock.NewMockClock(issuedAt))
	token, err := service.GenerateToken(identity)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) duration(t *testing.T) time.Duration {
	t.Helper()
	d, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return d
}
