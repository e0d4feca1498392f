package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/pizzafactory/config"
	"github.com/kilianp07/pizzafactory/core/metrics"
	"github.com/kilianp07/pizzafactory/core/model"
	"github.com/kilianp07/pizzafactory/core/pizzeria"
	"github.com/kilianp07/pizzafactory/infra/logger"
	_ "github.com/kilianp07/pizzafactory/infra/metrics"
)

// Texts written by the interactive flow.
const (
	Banner       = "🌍 Welcome to the Global Abstract Pizza Factory!"
	RegionPrompt = "Enter your region (USA, Italy, China): "
	KindPrompt   = "Enter pizza type (cheese, veggie): "
)

// Service runs pizza orders: it resolves the regional factory and the pizza
// kind, then prepares, bakes and serves the pizza.
type Service struct {
	log   logger.Logger
	sink  metrics.Sink
	now   func() time.Time
	newID func() string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	sink, err := metrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return NewWithSink(logger.New("service"), sink), nil
}

// NewWithSink creates a Service with explicit dependencies. Nil values are
// replaced by no-op implementations.
func NewWithSink(l logger.Logger, sink metrics.Sink) *Service {
	if l == nil {
		l = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Service{
		log:   l,
		sink:  sink,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Run executes the interactive flow: prompt for the region, resolve the
// factory, prompt for the kind, resolve the pizza, then print its three steps.
// A resolution failure prints the error message on one line and ends the
// order; Run then returns nil. Only I/O failures are returned.
func (s *Service) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	o := s.newOrder(out)
	lr := newLineReader(in)
	defer lr.close()

	if err := o.write(RegionPrompt); err != nil {
		return err
	}
	region, err := lr.next(ctx)
	if err != nil {
		return err
	}
	f, ok, err := o.resolveFactory(region)
	if !ok || err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := o.write(KindPrompt); err != nil {
		return err
	}
	kind, err := lr.next(ctx)
	if err != nil {
		return err
	}
	p, ok, err := o.resolvePizza(f, kind)
	if !ok || err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return o.serve(p)
}

// Order runs the same flow as Run with the region and kind given up front.
// No prompt is written.
func (s *Service) Order(ctx context.Context, region, kind string, out io.Writer) error {
	o := s.newOrder(out)
	f, ok, err := o.resolveFactory(region)
	if !ok || err != nil {
		return err
	}
	p, ok, err := o.resolvePizza(f, kind)
	if !ok || err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return o.serve(p)
}

// Close flushes buffered sinks.
func (s *Service) Close() error {
	if f, ok := s.sink.(metrics.Flusher); ok {
		return f.Flush()
	}
	return nil
}

type lineResult struct {
	text string
	err  error
}

// lineReader scans input on its own goroutine so a blocked read does not
// keep next from observing context cancellation.
type lineReader struct {
	lines chan lineResult
	done  chan struct{}
}

func newLineReader(in io.Reader) *lineReader {
	r := &lineReader{lines: make(chan lineResult), done: make(chan struct{})}
	go r.scan(in)
	return r
}

func (r *lineReader) scan(in io.Reader) {
	defer close(r.lines)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		select {
		case r.lines <- lineResult{text: strings.TrimRight(sc.Text(), "\r")}:
		case <-r.done:
			return
		}
	}
	if err := sc.Err(); err != nil {
		select {
		case r.lines <- lineResult{err: fmt.Errorf("read input: %w", err)}:
		case <-r.done:
		}
	}
}

// next returns the next input line without its line ending. End of input
// reads as an empty line.
func (r *lineReader) next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-r.lines:
		if !ok {
			return "", nil
		}
		return res.text, res.err
	}
}

// close releases the scanning goroutine once its pending read returns.
func (r *lineReader) close() { close(r.done) }

// order carries one pass through the state machine.
type order struct {
	*Service
	id  string
	out io.Writer
}

func (s *Service) newOrder(out io.Writer) *order {
	return &order{Service: s, id: s.newID(), out: out}
}

func (o *order) write(text string) error {
	if _, err := io.WriteString(o.out, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (o *order) writeLine(text string) error { return o.write(text + "\n") }

// resolveFactory reports ok=false when the order ended on invalid input.
func (o *order) resolveFactory(region string) (pizzeria.PizzaFactory, bool, error) {
	f, err := pizzeria.ResolveFactory(region)
	if err != nil {
		return nil, false, o.reject(metrics.StageRegion, region, err)
	}
	o.log.Debugw("factory resolved", map[string]any{"order_id": o.id, "region": f.Region().String()})
	return f, true, nil
}

func (o *order) resolvePizza(f pizzeria.PizzaFactory, kind string) (pizzeria.Pizza, bool, error) {
	p, err := pizzeria.ResolvePizza(f, kind)
	if err != nil {
		return nil, false, o.reject(metrics.StageKind, kind, err)
	}
	o.log.Debugw("pizza resolved", map[string]any{"order_id": o.id, "variant": p.Variant().String()})
	return p, true, nil
}

// reject prints the message of a domain error. Any other error is returned.
func (o *order) reject(stage metrics.Stage, input string, err error) error {
	if !errors.Is(err, model.ErrInvalidRegion) && !errors.Is(err, model.ErrInvalidPizzaKind) {
		return err
	}
	o.log.Debugw("order rejected", map[string]any{"order_id": o.id, "stage": string(stage), "input": input})
	if rec, ok := o.sink.(metrics.RejectionRecorder); ok {
		if rerr := rec.RecordRejection(metrics.RejectionEvent{
			OrderID: o.id,
			Stage:   stage,
			Input:   strings.TrimSpace(input),
			Reason:  err.Error(),
			Time:    o.now(),
		}); rerr != nil {
			o.log.Warnf("record rejection: %v", rerr)
		}
	}
	return o.writeLine(err.Error())
}

func (o *order) serve(p pizzeria.Pizza) error {
	for _, step := range []func() string{p.Prepare, p.Bake, p.Serve} {
		if err := o.writeLine(step()); err != nil {
			return err
		}
	}
	if err := o.sink.RecordOrder(metrics.OrderEvent{OrderID: o.id, Variant: p.Variant(), Time: o.now()}); err != nil {
		o.log.Warnf("record order: %v", err)
	}
	return nil
}
