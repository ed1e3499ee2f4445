package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/stravex/internal/ui/style"
)

func (c *CLI) newEntitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List the entity catalog, marking the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := c.app.Entities(c.configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, code := range catalog.All {
				marker := " "
				if slices.Contains(catalog.Defaults, code) {
					marker = style.Success.Render("*")
				}
				_, _ = fmt.Fprintf(out, "%s %s\n", marker, code)
			}
			_, _ = fmt.Fprintln(out, style.Muted.Render(fmt.Sprintf(
				"%d entities, %d kept by default (*)",
				len(catalog.All), len(catalog.Defaults),
			)))
			return nil
		},
	}
}
