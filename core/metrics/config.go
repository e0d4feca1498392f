package metrics

import "github.com/kilianp07/pizzafactory/core/factory"

// Config defines settings for order sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}
