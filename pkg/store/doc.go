// Package store provides session-scoped string storage backends.
//
// A Store maps string keys to string values for the lifetime of a user
// session. It is the persistence boundary behind the typed accessors in
// package slot; the store itself never interprets values.
//
// # Backends
//
// The Store interface has pluggable implementations:
//
//	st := store.NewMemoryStore()              // single process (default)
//	st := store.NewRedisStore(redisClient)    // shared across servers
//	st := store.NewSQLStore(db)               // database/sql backends
//	st := store.NewS3Store(s3Client, bucket)  // object storage
//	st := store.NewBrowserStore()             // sessionStorage (js/wasm only)
//
// # Observability
//
// Stores can be wrapped with opt-in decorators:
//
//	st = store.Instrument(st, store.WithNamespace("myapp"))
//	st = store.Trace(st)
//
// # Conformance
//
// The storetest subpackage runs a shared conformance suite against any
// Store implementation.
package store
