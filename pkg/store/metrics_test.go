package store

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

// failingStore returns a fixed error from every operation.
type failingStore struct{ err error }

func (f failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, f.err
}
func (f failingStore) Set(ctx context.Context, key, value string) error { return f.err }
func (f failingStore) Delete(ctx context.Context, key string) error     { return f.err }

func TestInstrumentedStore_RecordsSuccess(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	st := Instrument(NewMemoryStore(), WithRegistry(reg))

	if err := st.Set(ctx, "k", "value"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, _, err := st.Get(ctx, "k"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	for _, op := range []string{"get", "set", "delete"} {
		if got := metricCounterValue(t, st.metrics.opsTotal.WithLabelValues(op, "success")); got != 1 {
			t.Errorf("ops_total(%s,success)=%v, want 1", op, got)
		}
		if got := metricHistogramCount(t, st.metrics.opDuration.WithLabelValues(op)); got != 1 {
			t.Errorf("op_duration_seconds(%s) samples=%v, want 1", op, got)
		}
	}

	if got := metricHistogramCount(t, st.metrics.valueBytes); got != 1 {
		t.Errorf("value_bytes samples=%v, want 1", got)
	}
}

func TestInstrumentedStore_RecordsMisses(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	st := Instrument(NewMemoryStore(), WithRegistry(reg))

	if _, ok, _ := st.Get(ctx, "absent"); ok {
		t.Fatal("Get on empty store: ok=true")
	}

	if got := metricCounterValue(t, st.metrics.missesTotal); got != 1 {
		t.Errorf("misses_total=%v, want 1", got)
	}
}

func TestInstrumentedStore_RecordsErrors(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	st := Instrument(failingStore{err: errors.New("backend down")}, WithRegistry(reg))

	if _, _, err := st.Get(ctx, "k"); err == nil {
		t.Fatal("expected error to propagate")
	}
	if err := st.Set(ctx, "k", "v"); err == nil {
		t.Fatal("expected error to propagate")
	}

	if got := metricCounterValue(t, st.metrics.opsTotal.WithLabelValues("get", "error")); got != 1 {
		t.Errorf("ops_total(get,error)=%v, want 1", got)
	}
	if got := metricCounterValue(t, st.metrics.opsTotal.WithLabelValues("set", "error")); got != 1 {
		t.Errorf("ops_total(set,error)=%v, want 1", got)
	}
	// Errors don't count as misses or record value sizes.
	if got := metricCounterValue(t, st.metrics.missesTotal); got != 0 {
		t.Errorf("misses_total=%v, want 0", got)
	}
	if got := metricHistogramCount(t, st.metrics.valueBytes); got != 0 {
		t.Errorf("value_bytes samples=%v, want 0", got)
	}
}

func TestInstrumentedStore_NamespaceOption(t *testing.T) {
	reg := prometheus.NewRegistry()
	st := Instrument(NewMemoryStore(),
		WithRegistry(reg),
		WithNamespace("myapp"),
		WithSubsystem("sessions"),
	)

	if err := st.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	found := false
	for _, f := range families {
		if f.GetName() == "myapp_sessions_ops_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected myapp_sessions_ops_total in registry")
	}
}
