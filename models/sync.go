package models

// PendingWrite is a document persisted only in the local cache, waiting to be
// uploaded to the remote store.
type PendingWrite struct {
	// Key is the cache key, "<CollectionPath>_<TempID>".
	Key string
	// CollectionPath is the collection the document will be created in.
	CollectionPath string
	// TempID has the form "temp_<unix millis>".
	TempID string
	// Document is the stamped document body.
	Document Document
}

// SyncReport summarises one pass over the pending-write queue.
type SyncReport struct {
	// Skipped is true when the pass did not run because the device is offline.
	Skipped bool
	// Synced maps the pending cache key to the remote-assigned ID.
	Synced map[string]string
	// Failed maps the pending cache key to the error that kept it queued.
	Failed map[string]error
}

// NewSyncReport returns an empty report with initialised maps.
func NewSyncReport() SyncReport {
	return SyncReport{
		Synced: make(map[string]string),
		Failed: make(map[string]error),
	}
}
