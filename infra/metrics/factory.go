package metrics

import (
	"github.com/kilianp07/pizzafactory/core/factory"
	coremetrics "github.com/kilianp07/pizzafactory/core/metrics"
	"github.com/kilianp07/pizzafactory/infra/logger"
)

// init registers built-in order sinks.
func init() {
	_ = coremetrics.RegisterSink("nop", func(map[string]any) (coremetrics.Sink, error) {
		return coremetrics.NopSink{}, nil
	})

	_ = coremetrics.RegisterSink("log", func(conf map[string]any) (coremetrics.Sink, error) {
		var c struct {
			Component string `json:"component"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Component == "" {
			c.Component = "orders"
		}
		return NewLogSink(logger.New(c.Component)), nil
	})

	_ = coremetrics.RegisterSink("prometheus", func(conf map[string]any) (coremetrics.Sink, error) {
		var c struct {
			Textfile string `json:"textfile"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		s, err := NewPromSink(c.Textfile)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
