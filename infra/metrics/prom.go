package metrics

import (
	"fmt"

	coremetrics "github.com/kilianp07/pizzafactory/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records order events in Prometheus metrics.
type PromSink struct {
	reg        *prometheus.Registry
	orders     *prometheus.CounterVec
	rejections *prometheus.CounterVec
	lastOrder  prometheus.Gauge
	textfile   string
}

// NewPromSink registers order metrics on a private registry. When textfile is
// set, Flush writes the registry in the node-exporter textfile format.
func NewPromSink(textfile string) (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.NewRegistry(), textfile)
}

// NewPromSinkWithRegistry registers metrics on the provided registry.
// A nil registry gets a fresh one.
func NewPromSinkWithRegistry(reg *prometheus.Registry, textfile string) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pizzafactory",
		Name:      "orders_total",
		Help:      "Total number of pizzas prepared, baked and served",
	}, []string{"region", "kind"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pizzafactory",
		Name:      "order_rejections_total",
		Help:      "Total number of orders aborted on unresolved input",
	}, []string{"stage"})
	lastOrder := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pizzafactory",
		Name:      "last_order_timestamp_seconds",
		Help:      "Unix time of the last served order",
	})

	for _, c := range []prometheus.Collector{orders, rejections, lastOrder} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return &PromSink{reg: reg, orders: orders, rejections: rejections, lastOrder: lastOrder, textfile: textfile}, nil
}

// RecordOrder increments the served counter for the order variant.
func (s *PromSink) RecordOrder(ev coremetrics.OrderEvent) error {
	s.orders.WithLabelValues(ev.Variant.Region.Key(), ev.Variant.Kind.Key()).Inc()
	if !ev.Time.IsZero() {
		s.lastOrder.Set(float64(ev.Time.Unix()))
	}
	return nil
}

// RecordRejection increments the rejection counter for the failing stage.
func (s *PromSink) RecordRejection(ev coremetrics.RejectionEvent) error {
	s.rejections.WithLabelValues(string(ev.Stage)).Inc()
	return nil
}

// Registry exposes the registry the sink writes to.
func (s *PromSink) Registry() *prometheus.Registry { return s.reg }

// Flush writes the textfile if one is configured.
func (s *PromSink) Flush() error {
	if s.textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(s.textfile, s.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
