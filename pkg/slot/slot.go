package slot

import (
	"context"
	"encoding/json"

	"github.com/vango-dev/sessionslot/pkg/store"
)

// NoneToken is the raw text stored to represent "no value". The store
// format only holds JSON, which cannot encode undefined; this literal is
// the agreed sentinel and must stay bit-exact so that entries written by
// other versions keep reading back as absent.
const NoneToken = "undefined"

// DecodeError is returned by Get when the stored text for a key is
// neither the none sentinel nor valid JSON.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return "slot: decode " + e.Key + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError is returned by Get when a configured validator rejects
// the decoded value.
type ValidationError struct {
	Key string
	Err error
}

func (e *ValidationError) Error() string {
	return "slot: validate " + e.Key + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Slot is a typed view over one entry in a session-scoped store.
// It holds no cached value; every operation reads or writes the store
// directly, so slots sharing a key observe each other's writes.
type Slot[T any] struct {
	store    store.Store
	key      string
	validate func(T) error
}

// Option configures a Slot during construction.
type Option[T any] func(*slotConfig[T])

type slotConfig[T any] struct {
	defaultValue T
	hasDefault   bool
	validate     func(T) error
}

// WithDefault sets a default value. If the key has no entry when the slot
// is constructed, the serialized default is written immediately; an
// existing entry is never overwritten, whatever its shape.
func WithDefault[T any](v T) Option[T] {
	return func(c *slotConfig[T]) {
		c.defaultValue = v
		c.hasDefault = true
	}
}

// WithValidator attaches a check that Get runs on every decoded value.
// Without it the slot is an unchecked trust boundary: stored text is
// decoded into T with no shape verification.
func WithValidator[T any](fn func(T) error) Option[T] {
	return func(c *slotConfig[T]) {
		c.validate = fn
	}
}

// New creates a slot bound to key over st.
//
// If WithDefault was given and the store currently has no entry for key,
// New seeds the store with the serialized default before returning. The
// seed write is eager so that the default is observable immediately after
// construction, including through other slots sharing the key. Seeding
// errors (store failures) propagate unchanged.
func New[T any](ctx context.Context, st store.Store, key string, opts ...Option[T]) (*Slot[T], error) {
	cfg := &slotConfig[T]{}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Slot[T]{
		store:    st,
		key:      key,
		validate: cfg.validate,
	}

	if cfg.hasDefault {
		_, ok, err := st.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			if err := s.Set(ctx, cfg.defaultValue); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

// Key returns the storage key the slot is bound to.
func (s *Slot[T]) Key() string {
	return s.key
}

// Get reads the current value.
//
// It returns ok=false when the key has no entry or the entry holds the
// none sentinel. JSON null decodes into T's zero value with ok=true, so
// a stored null stays distinct from "no value" for pointer-shaped T.
// Malformed stored text returns a *DecodeError with no recovery or
// default substitution.
func (s *Slot[T]) Get(ctx context.Context) (T, bool, error) {
	var zero T

	raw, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return zero, false, err
	}
	if !ok || raw == NoneToken {
		return zero, false, nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return zero, false, &DecodeError{Key: s.key, Err: err}
	}

	if s.validate != nil {
		if err := s.validate(v); err != nil {
			return zero, false, &ValidationError{Key: s.key, Err: err}
		}
	}

	return v, true, nil
}

// Set serializes value to JSON and writes it, overwriting any previous
// entry. Last write wins.
func (s *Slot[T]) Set(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, s.key, string(data))
}

// SetNone writes the none sentinel. The entry still exists in the store,
// but Get reports no value, mirroring Delete's observable result while
// keeping the key occupied.
func (s *Slot[T]) SetNone(ctx context.Context) error {
	return s.store.Set(ctx, s.key, NoneToken)
}

// Delete removes the entry entirely. Subsequent Gets report no value.
// Deleting an absent entry is a no-op.
func (s *Slot[T]) Delete(ctx context.Context) error {
	return s.store.Delete(ctx, s.key)
}
