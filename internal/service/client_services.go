package service

import (
	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
)

// ClientServices bundles the service layer of the client application.
type ClientServices struct {
	Sync   ClientSyncService
	Ledger LedgerService
}

func NewClientServices(storages *store.ClientStorages, backend adapter.BackendAdapter, workersCfg config.ClientWorkers) *ClientServices {
	return &ClientServices{
		Sync:   NewClientSyncService(storages, backend, workersCfg.UploadBatchSize),
		Ledger: NewLedgerService(storages),
	}
}
