package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/pizzafactory/core/pizzeria"
	"github.com/kilianp07/pizzafactory/pkg/export"
)

var menuFormat string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "List every regional pizza with its preparation steps",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	menuCmd.Flags().StringVarP(&menuFormat, "format", "f", "", "output format: table, json, yaml or csv (default from config)")
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	name := cfg.Menu.Format
	if menuFormat != "" {
		name = menuFormat
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return err
	}
	items, err := pizzeria.Menu()
	if err != nil {
		return fmt.Errorf("menu: %w", err)
	}
	return export.WriteMenu(cmd.OutOrStdout(), format, items)
}
