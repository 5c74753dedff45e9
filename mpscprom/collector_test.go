package mpscprom

import (
	"strings"
	"testing"

	"github.com/baxromumarov/mpsc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Count(t *testing.T) {
	tx, _ := mpsc.New[int]()
	defer tx.Close()

	c := NewCollector(tx)
	assert.Equal(t, 6, testutil.CollectAndCount(c))
}

func TestCollector_Values(t *testing.T) {
	tx, rx := mpsc.New[int]()
	tx2 := tx.Clone()
	tx.Send(1)
	tx.Send(2)
	tx2.Send(3)

	v, ok := rx.Recv()
	require.True(t, ok)
	require.Equal(t, 1, v)

	c := NewCollector(rx, WithChannel("jobs"))

	expected := `
# HELP mpsc_sent_total Values accepted by Send.
# TYPE mpsc_sent_total counter
mpsc_sent_total{channel="jobs"} 3
# HELP mpsc_received_total Values returned by Recv.
# TYPE mpsc_received_total counter
mpsc_received_total{channel="jobs"} 1
# HELP mpsc_drains_total Batches moved from the shared queue to the receiver.
# TYPE mpsc_drains_total counter
mpsc_drains_total{channel="jobs"} 1
# HELP mpsc_senders Live senders.
# TYPE mpsc_senders gauge
mpsc_senders{channel="jobs"} 2
# HELP mpsc_pending Values sent but not yet received.
# TYPE mpsc_pending gauge
mpsc_pending{channel="jobs"} 2
# HELP mpsc_receiver_closed 1 if the receiver has been closed.
# TYPE mpsc_receiver_closed gauge
mpsc_receiver_closed{channel="jobs"} 0
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected))
	assert.NoError(t, err)

	tx.Close()
	tx2.Close()
}

func TestCollector_Registry(t *testing.T) {
	tx, rx := mpsc.New[string]()
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector(rx, WithNamespace("app"))))

	tx.Send("a")
	tx.Close()
	rx.Close()

	families, err := reg.Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, mf := range families {
		got[mf.GetName()] = metricValue(mf)
	}
	assert.Equal(t, float64(1), got["app_mpsc_sent_total"])
	assert.Equal(t, float64(0), got["app_mpsc_senders"])
	assert.Equal(t, float64(1), got["app_mpsc_receiver_closed"])
}

func TestNewCollector_NilSourcePanics(t *testing.T) {
	assert.PanicsWithValue(t, "mpscprom: nil source", func() {
		NewCollector(nil)
	})
}

func metricValue(mf *dto.MetricFamily) float64 {
	m := mf.GetMetric()[0]
	switch mf.GetType() {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	}
	return 0
}
