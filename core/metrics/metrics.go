package metrics

import (
	"time"

	"github.com/kilianp07/pizzafactory/core/model"
)

// Stage names the driver step at which an order was rejected.
type Stage string

const (
	StageRegion Stage = "region"
	StageKind   Stage = "kind"
)

// OrderEvent represents a pizza that went through prepare, bake and serve.
type OrderEvent struct {
	OrderID string
	Variant model.Variant
	Time    time.Time
}

// RejectionEvent represents an order aborted because its input did not resolve.
type RejectionEvent struct {
	OrderID string
	Stage   Stage
	Input   string
	Reason  string
	Time    time.Time
}

// Sink records served orders.
type Sink interface {
	RecordOrder(ev OrderEvent) error
}

// RejectionRecorder is implemented by sinks able to record rejected orders.
type RejectionRecorder interface {
	RecordRejection(ev RejectionEvent) error
}

// Flusher is implemented by sinks that buffer and must be flushed before exit.
type Flusher interface {
	Flush() error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordOrder(OrderEvent) error         { return nil }
func (NopSink) RecordRejection(RejectionEvent) error { return nil }
