package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	coremetrics "github.com/kilianp07/pizzafactory/core/metrics"
	"github.com/kilianp07/pizzafactory/core/model"
)

type captureLogger struct {
	msgs   []string
	fields []map[string]any
}

func (c *captureLogger) Debugf(string, ...any)         {}
func (c *captureLogger) Debugw(string, map[string]any) {}
func (c *captureLogger) Infof(string, ...any)          {}
func (c *captureLogger) Infow(msg string, f map[string]any) {
	c.msgs = append(c.msgs, msg)
	c.fields = append(c.fields, f)
}
func (c *captureLogger) Warnf(string, ...any)  {}
func (c *captureLogger) Errorf(string, ...any) {}

func TestLogSink(t *testing.T) {
	l := &captureLogger{}
	s := NewLogSink(l)
	assert.NoError(t, s.RecordOrder(coremetrics.OrderEvent{
		OrderID: "o1",
		Variant: model.Variant{Region: model.RegionChina, Kind: model.KindVeggie},
	}))
	assert.NoError(t, s.RecordRejection(coremetrics.RejectionEvent{
		OrderID: "o2",
		Stage:   coremetrics.StageKind,
		Input:   "pepperoni",
	}))
	assert.Equal(t, []string{"order served", "order rejected"}, l.msgs)
	assert.Equal(t, "China", l.fields[0]["region"])
	assert.Equal(t, "veggie", l.fields[0]["kind"])
	assert.Equal(t, "kind", l.fields[1]["stage"])
	assert.Equal(t, "pepperoni", l.fields[1]["input"])
}
