package service

import (
	"github.com/MKhiriev/vedicas-garden/internal/adapter"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/internal/utils"
)

type ClientServices struct {
	State *LocalState

	AuthService   ClientAuthService
	SyncService   ClientSyncService
	SyncJob       ClientSyncJob
	GardenService ClientGardenService
	ChatService   ClientChatService
	AstroService  ClientAstroService
}

// NewClientServices wires every client service around one LocalState. The
// state is not loaded yet; call State.Init before use.
func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteStore, chart adapter.ChartAPI, logger *logger.Logger) *ClientServices {
	state := NewLocalState(storages.KV, logger)
	ids := utils.NewUUIDGenerator()

	syncSvc := NewClientSyncService(state, remote, logger)
	gardenSvc := NewClientGardenService(state, storages.SeedLogs, remote, ids, logger)
	astroSvc := NewClientAstroService(state, chart, logger)

	return &ClientServices{
		State:         state,
		AuthService:   NewClientAuthService(remote, storages.Session, syncSvc, logger),
		SyncService:   syncSvc,
		SyncJob:       NewClientSyncJob(syncSvc, logger),
		GardenService: gardenSvc,
		ChatService:   NewClientChatService(state, chart, gardenSvc, astroSvc, ids, logger),
		AstroService:  astroSvc,
	}
}
