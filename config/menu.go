package config

import "github.com/kilianp07/pizzafactory/pkg/export"

// MenuConfig defines how the menu command renders the variant list.
type MenuConfig struct {
	Format string `json:"format"`
}

func (c *MenuConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = string(export.FormatTable)
	}
}

func (c MenuConfig) Validate() error {
	_, err := export.ParseFormat(c.Format)
	return err
}
