package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-xref/internal/logger"
	"github.com/MKhiriev/go-xref/internal/store"
	"github.com/MKhiriev/go-xref/models"
)

type routeGuard struct {
	role   models.Role
	tokens store.TokenRepository
	logger *logger.Logger
}

// NewRouteGuard returns a guard for role. It looks at the persisted token
// only and never waits for a profile fetch.
func NewRouteGuard(role models.Role, tokens store.TokenRepository, logger *logger.Logger) RouteGuard {
	return &routeGuard{role: role, tokens: tokens, logger: logger}
}

func (g *routeGuard) Check(ctx context.Context) models.GuardDecision {
	decision := models.GuardDecision{Role: g.role, LoginPage: g.role.LoginPage()}

	stored, err := g.tokens.Get(ctx, g.role)
	if err != nil {
		if !errors.Is(err, store.ErrTokenNotFound) {
			g.logger.Err(err).Str("role", string(g.role)).Msg("guard could not read token")
		}
		return decision
	}

	decision.Allowed = strings.TrimSpace(stored.Value) != ""
	return decision
}
