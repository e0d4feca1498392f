// Package metrics defines the order sinks fed by the ordering flow. A sink
// records served orders and, when it implements RejectionRecorder, rejected
// ones. Sinks are built from configuration through a name registry; built-in
// types are registered by infra/metrics. NewSink returns a MultiSink
// automatically when several sinks are configured.
package metrics
