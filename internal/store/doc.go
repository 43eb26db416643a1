// Package store provides the local key/value persistence for studyplan.
//
// The [KV] interface is deliberately small: the application state loads
// every collection once at startup and writes the full serialized
// collection back on each confirmed mutation.
//
// # Backends
//
//   - bolt (default): a single bbolt bucket in studyplan.bolt
//   - sqlite: a kv table in studyplan.db, created by embedded migrations
//   - memory: a process-local map, used by tests and throwaway sessions
//
// Use [Open] to obtain a handle for a configured backend:
//
//	kv, err := store.Open(store.BackendBolt, dataDir)
//	if err != nil {
//	    return err
//	}
//	defer kv.Close()
package store
