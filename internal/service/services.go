package service

import (
	"time"

	"github.com/MKhiriev/go-xref/internal/adapter"
	"github.com/MKhiriev/go-xref/internal/logger"
	"github.com/MKhiriev/go-xref/internal/store"
	"github.com/MKhiriev/go-xref/models"
)

// ClientServices groups everything the terminal UI needs. The user and admin
// sessions never share state.
type ClientServices struct {
	UserSession  SessionManager
	AdminSession SessionManager
	UserGuard    RouteGuard
	AdminGuard   RouteGuard

	Search  SearchService
	Account AccountService
	Admin   AdminService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, requestTimeout time.Duration, logger *logger.Logger) *ClientServices {
	tokens := storages.TokenRepository

	userSession := NewSessionManager(models.RoleUser, tokens, serverAdapter, logger)
	adminSession := NewSessionManager(models.RoleAdmin, tokens, serverAdapter, logger)

	return &ClientServices{
		UserSession:  userSession,
		AdminSession: adminSession,
		UserGuard:    NewRouteGuard(models.RoleUser, tokens, logger),
		AdminGuard:   NewRouteGuard(models.RoleAdmin, tokens, logger),
		Search:       NewSearchService(serverAdapter, userSession, logger, requestTimeout),
		Account:      NewAccountService(serverAdapter, userSession, logger),
		Admin:        NewAdminService(serverAdapter, adminSession, logger),
	}
}
