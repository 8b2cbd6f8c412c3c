package models

import "time"

// SyncStatus is the per-record synchronization state stored alongside every
// syncable row in the local database.
type SyncStatus string

const (
	// StatusPending marks a record whose local state has diverged from the
	// last known-synced state and is awaiting upload.
	StatusPending SyncStatus = "pending"
	// StatusSyncing marks a record with an in-flight network operation.
	// At most one operation may hold a record in this state.
	StatusSyncing SyncStatus = "syncing"
	// StatusSynced marks a record confirmed by the server.
	StatusSynced SyncStatus = "synced"
	// StatusFailed marks a record whose last upload attempt failed with a
	// non-auth error. The record keeps NeedsSync=true and is retried on the
	// next sync pass.
	StatusFailed SyncStatus = "failed"
	// StatusConflict marks a record whose unsynced local edit collided with a
	// newer server copy during download. Resolution is manual; the local
	// fields are never overwritten automatically.
	StatusConflict SyncStatus = "conflict"
	// StatusDeleted marks a soft-deleted record awaiting remote delete
	// confirmation before it is physically removed.
	StatusDeleted SyncStatus = "deleted"
)

// SyncType selects which phases a sync job performs.
type SyncType string

const (
	SyncTypeFull         SyncType = "full"
	SyncTypeUploadOnly   SyncType = "upload_only"
	SyncTypeDownloadOnly SyncType = "download_only"
)

// SyncJobParams is the parameter block handed from the scheduler to the job
// runner. Notify and OfflineQueued affect post-run logging only, never the
// sync algorithm itself.
type SyncJobParams struct {
	SyncType      SyncType `json:"sync_type"`
	Notify        bool     `json:"notify"`
	OfflineQueued bool     `json:"offline_queued"`
}

// RunPhase is the coarse state of the orchestrator exposed to observers.
type RunPhase string

const (
	RunIdle    RunPhase = "idle"
	RunActive  RunPhase = "running"
	RunSuccess RunPhase = "success"
	RunFailed  RunPhase = "failed"
)

// SyncRunState is the observable sync-state value. The orchestrator is the
// single writer; UI code and the job runner are readers.
type SyncRunState struct {
	Phase     RunPhase  `json:"phase"`
	ChangedAt time.Time `json:"changed_at"`
	LastError string    `json:"last_error,omitempty"`
}
