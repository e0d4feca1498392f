package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kilianp07/pizzafactory/app"
)

var (
	orderRegion string
	orderKind   string
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Order a pizza without prompts",
	Example: `  pizzafactory order --region italy --kind cheese
  pizzafactory order -r USA -k veggie`,
	Args: cobra.NoArgs,
	RunE: runOrder,
}

func init() {
	orderCmd.Flags().StringVarP(&orderRegion, "region", "r", "", "region: USA, Italy or China")
	orderCmd.Flags().StringVarP(&orderKind, "kind", "k", "", "pizza type: cheese or veggie")
	rootCmd.AddCommand(orderCmd)
}

func runOrder(cmd *cobra.Command, args []string) error {
	return withService(cmd, func(ctx context.Context, svc *app.Service) error {
		return svc.Order(ctx, orderRegion, orderKind, cmd.OutOrStdout())
	})
}
