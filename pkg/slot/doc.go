// Package slot provides typed accessors over session-scoped string stores.
//
// A Slot binds one storage key, and optionally a default value, to a Go
// type. It hides JSON serialization and the absent-vs-null ambiguity of
// the underlying store:
//
//	st := store.NewMemoryStore()
//
//	counter, err := slot.New[int](ctx, st, "counter", slot.WithDefault(0))
//	if err != nil { ... }
//
//	n, ok, err := counter.Get(ctx) // ok=false means no value
//	err = counter.Set(ctx, n+1)
//	err = counter.Delete(ctx)
//
// Slots hold no cached state. Two slots constructed with the same key over
// the same store observe the same value; the store is the single source
// of truth.
//
// # Trust boundary
//
// Get does not validate that the stored shape matches T. Decoding a value
// written under a different type silently yields a structurally wrong
// result. Callers that need a guarantee can attach a check with
// WithValidator.
package slot
