// Package mpscprom exports mpsc channel statistics as Prometheus metrics.
package mpscprom

import (
	"github.com/baxromumarov/mpsc"
	"github.com/prometheus/client_golang/prometheus"
)

// Source is anything that can report channel statistics. Both
// *mpsc.Sender and *mpsc.Receiver satisfy it.
type Source interface {
	Stats() mpsc.Stats
}

// Collector is a prometheus.Collector reading one channel's [mpsc.Stats]
// on every scrape.
type Collector struct {
	src Source

	sent           *prometheus.Desc
	received       *prometheus.Desc
	drains         *prometheus.Desc
	senders        *prometheus.Desc
	pending        *prometheus.Desc
	receiverClosed *prometheus.Desc
}

type collectorConfig struct {
	namespace string
	channel   string
}

// CollectorOption configures a [Collector].
type CollectorOption func(*collectorConfig)

// WithNamespace prefixes every metric name with ns.
func WithNamespace(ns string) CollectorOption {
	return func(c *collectorConfig) {
		c.namespace = ns
	}
}

// WithChannel sets the value of the "channel" label. Defaults to "mpsc".
func WithChannel(name string) CollectorOption {
	return func(c *collectorConfig) {
		c.channel = name
	}
}

// NewCollector returns a Collector for src. It panics if src is nil.
func NewCollector(src Source, opts ...CollectorOption) *Collector {
	if src == nil {
		panic("mpscprom: nil source")
	}
	cfg := collectorConfig{channel: "mpsc"}
	for _, o := range opts {
		o(&cfg)
	}

	labels := prometheus.Labels{"channel": cfg.channel}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(cfg.namespace, "mpsc", name),
			help, nil, labels,
		)
	}

	return &Collector{
		src:            src,
		sent:           desc("sent_total", "Values accepted by Send."),
		received:       desc("received_total", "Values returned by Recv."),
		drains:         desc("drains_total", "Batches moved from the shared queue to the receiver."),
		senders:        desc("senders", "Live senders."),
		pending:        desc("pending", "Values sent but not yet received."),
		receiverClosed: desc("receiver_closed", "1 if the receiver has been closed."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.sent
	ch <- c.received
	ch <- c.drains
	ch <- c.senders
	ch <- c.pending
	ch <- c.receiverClosed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()

	var closed float64
	if st.ReceiverClosed {
		closed = 1
	}

	ch <- prometheus.MustNewConstMetric(c.sent, prometheus.CounterValue, float64(st.Sent))
	ch <- prometheus.MustNewConstMetric(c.received, prometheus.CounterValue, float64(st.Received))
	ch <- prometheus.MustNewConstMetric(c.drains, prometheus.CounterValue, float64(st.Drains))
	ch <- prometheus.MustNewConstMetric(c.senders, prometheus.GaugeValue, float64(st.Senders))
	ch <- prometheus.MustNewConstMetric(c.pending, prometheus.GaugeValue, float64(st.Pending))
	ch <- prometheus.MustNewConstMetric(c.receiverClosed, prometheus.GaugeValue, closed)
}
