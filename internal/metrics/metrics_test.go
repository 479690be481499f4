package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(WithRegistry(reg))

	m.Notified(true)
	m.Notified(false)
	m.Notified(false)
	m.Rendered(2 * time.Millisecond)
	m.Event("click")
	m.Event("click")
	m.StaleEvent()
	m.Panic("boom")
	m.ClientConnected()
	m.FrameSent()
	m.StorageWrite(nil)
	m.StorageWrite(errors.New("disk full"))

	if got := testutil.ToFloat64(m.notifications.WithLabelValues("absorbed")); got != 2 {
		t.Errorf("absorbed = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.renders); got != 1 {
		t.Errorf("renders = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.events.WithLabelValues("click")); got != 2 {
		t.Errorf("click events = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.clients); got != 1 {
		t.Errorf("clients = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.storageWrites.WithLabelValues("error")); got != 1 {
		t.Errorf("storage errors = %v, want 1", got)
	}

	expected := `
# HELP teamfight_stale_events_total Browser events dropped because they targeted an older render
# TYPE teamfight_stale_events_total counter
teamfight_stale_events_total 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "teamfight_stale_events_total"); err != nil {
		t.Error(err)
	}
}

func TestNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(WithRegistry(reg), WithNamespace("tf"))
	m.FrameSent()

	n, err := testutil.GatherAndCount(reg, "tf_frames_sent_total")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("series = %d, want 1", n)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.Notified(true)
	m.Rendered(time.Second)
	m.Event("click")
	m.StaleEvent()
	m.Panic(nil)
	m.ClientConnected()
	m.ClientDisconnected()
	m.FrameSent()
	m.StorageWrite(nil)
}
