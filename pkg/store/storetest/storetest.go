// Package storetest provides a conformance suite for Store implementations.
//
// Backend packages run it against their implementation:
//
//	func TestMemoryStoreConformance(t *testing.T) {
//	    storetest.Run(t, func(t *testing.T) store.Store {
//	        return store.NewMemoryStore()
//	    })
//	}
package storetest

import (
	"context"
	"testing"

	"github.com/vango-dev/sessionslot/pkg/store"
)

// Run exercises the Store contract against a fresh store per subtest.
// The factory must return an empty store.
func Run(t *testing.T, factory func(t *testing.T) store.Store) {
	ctx := context.Background()

	t.Run("GetAbsent", func(t *testing.T) {
		st := factory(t)

		v, ok, err := st.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if ok {
			t.Errorf("Get on empty store: ok=true, value %q", v)
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		st := factory(t)

		if err := st.Set(ctx, "k", `{"a":1}`); err != nil {
			t.Fatalf("Set: %v", err)
		}
		v, ok, err := st.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !ok || v != `{"a":1}` {
			t.Errorf("Get: got (%q, %v), want (%q, true)", v, ok, `{"a":1}`)
		}
	})

	t.Run("EmptyValue", func(t *testing.T) {
		st := factory(t)

		if err := st.Set(ctx, "k", ""); err != nil {
			t.Fatalf("Set: %v", err)
		}
		v, ok, err := st.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !ok || v != "" {
			t.Errorf("empty value should round-trip as present: got (%q, %v)", v, ok)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		st := factory(t)

		if err := st.Set(ctx, "k", "first"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := st.Set(ctx, "k", "second"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		v, ok, err := st.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !ok || v != "second" {
			t.Errorf("last write should win: got (%q, %v)", v, ok)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		st := factory(t)

		if err := st.Set(ctx, "k", "v"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := st.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		_, ok, err := st.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if ok {
			t.Error("Get after Delete: ok=true")
		}
	})

	t.Run("DeleteAbsent", func(t *testing.T) {
		st := factory(t)

		if err := st.Delete(ctx, "never-set"); err != nil {
			t.Errorf("Delete of absent key should be a no-op: %v", err)
		}
	})

	t.Run("KeysIndependent", func(t *testing.T) {
		st := factory(t)

		if err := st.Set(ctx, "a", "1"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := st.Set(ctx, "b", "2"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := st.Delete(ctx, "a"); err != nil {
			t.Fatalf("Delete: %v", err)
		}

		v, ok, err := st.Get(ctx, "b")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !ok || v != "2" {
			t.Errorf("deleting one key disturbed another: got (%q, %v)", v, ok)
		}
	})
}
