package service

import (
	"github.com/aivahq/aiva/internal/adapter"
	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/internal/store"
)

// ClientServices groups all client-side services into a single value passed
// to the TUI.
type ClientServices struct {
	SessionService ClientSessionService
	AvatarService  ClientAvatarService
}

// NewClientServices wires the client service layer to the local storage and
// the server gateway.
func NewClientServices(storages *store.ClientStorages, gateway adapter.ServerGateway, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService: NewClientSessionService(storages.KVStorage, gateway, logger),
		AvatarService:  NewClientAvatarService(storages.KVStorage, gateway, logger),
	}
}
