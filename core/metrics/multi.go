package metrics

import "errors"

// MultiSink fans out events to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordOrder forwards the event to every sink, even if one fails, and
// returns the joined errors.
func (m *MultiSink) RecordOrder(ev OrderEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		errs = append(errs, s.RecordOrder(ev))
	}
	return errors.Join(errs...)
}

// RecordRejection forwards rejections to every sink that supports them.
func (m *MultiSink) RecordRejection(ev RejectionEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if rec, ok := s.(RejectionRecorder); ok {
			errs = append(errs, rec.RecordRejection(ev))
		}
	}
	return errors.Join(errs...)
}

// Flush flushes every sink that buffers. All sinks are flushed even if one fails.
func (m *MultiSink) Flush() error {
	var errs []error
	for _, s := range m.Sinks {
		if f, ok := s.(Flusher); ok {
			errs = append(errs, f.Flush())
		}
	}
	return errors.Join(errs...)
}
