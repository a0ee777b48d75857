package service

import (
	"github.com/MKhiriev/calm-journal/internal/adapter"
	"github.com/MKhiriev/calm-journal/internal/config"
	"github.com/MKhiriev/calm-journal/internal/logger"
	"github.com/MKhiriev/calm-journal/internal/store"
)

// ClientServices groups the services the client application runs.
type ClientServices struct {
	Identity *SessionIdentity
	Data     DataService
	Journal  JournalService
	SyncJob  SyncJob
}

// NewClientServices wires every service over the given storage and remote
// backends. The session forwards ID tokens to the remote store when it
// accepts them.
func NewClientServices(storages *store.ClientStorages, remotes *adapter.ClientRemotes, workersCfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	tokens, _ := remotes.Store.(TokenReceiver)
	identity := NewSessionIdentity(tokens)

	dataSvc := NewDataService(remotes.Store, storages.Cache, remotes.Probe, identity, logger)

	return &ClientServices{
		Identity: identity,
		Data:     dataSvc,
		Journal:  NewJournalService(dataSvc, identity, logger),
		SyncJob:  NewSyncJob(dataSvc, workersCfg.SyncInterval, workersCfg.ConnectivityPollInterval, logger),
	}
}
