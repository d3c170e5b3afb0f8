//go:build js && wasm

package store

import (
	"context"
	"syscall/js"
)

// BrowserStore is backed by the browser's sessionStorage.
// Contents persist for the lifetime of the browsing session and are not
// shared across tabs. Only available in js/wasm builds.
//
// The browser executes on a single thread, so no locking is needed;
// contexts are ignored because sessionStorage calls cannot block.
type BrowserStore struct {
	storage js.Value
}

// NewBrowserStore creates a store over window.sessionStorage.
func NewBrowserStore() *BrowserStore {
	return &BrowserStore{storage: js.Global().Get("sessionStorage")}
}

// Get retrieves the value for key. getItem returns null for absent keys.
func (b *BrowserStore) Get(ctx context.Context, key string) (string, bool, error) {
	v := b.storage.Call("getItem", key)
	if v.IsNull() {
		return "", false, nil
	}
	return v.String(), true, nil
}

// Set writes the value for key. A quota error from the browser surfaces
// as a panic from syscall/js; callers that need to survive quota pressure
// should recover at a higher level.
func (b *BrowserStore) Set(ctx context.Context, key, value string) error {
	b.storage.Call("setItem", key, value)
	return nil
}

// Delete removes the entry for key. removeItem is a no-op if absent.
func (b *BrowserStore) Delete(ctx context.Context, key string) error {
	b.storage.Call("removeItem", key)
	return nil
}
