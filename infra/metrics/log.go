package metrics

import (
	coremetrics "github.com/kilianp07/pizzafactory/core/metrics"
	"github.com/kilianp07/pizzafactory/infra/logger"
)

// LogSink writes order events as structured log lines.
type LogSink struct {
	log logger.Logger
}

// NewLogSink returns a LogSink. A nil logger uses the "orders" component logger.
func NewLogSink(l logger.Logger) *LogSink {
	if l == nil {
		l = logger.New("orders")
	}
	return &LogSink{log: l}
}

func (s *LogSink) RecordOrder(ev coremetrics.OrderEvent) error {
	s.log.Infow("order served", map[string]any{
		"order_id": ev.OrderID,
		"region":   ev.Variant.Region.String(),
		"kind":     ev.Variant.Kind.Key(),
		"time":     ev.Time,
	})
	return nil
}

func (s *LogSink) RecordRejection(ev coremetrics.RejectionEvent) error {
	s.log.Infow("order rejected", map[string]any{
		"order_id": ev.OrderID,
		"stage":    string(ev.Stage),
		"input":    ev.Input,
		"reason":   ev.Reason,
	})
	return nil
}
