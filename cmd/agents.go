package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/proposta-ai/propgen/internal/agent"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the registered generation agents.",
	Long: `List every registered agent as a (sector, template style) pair with its
pricing model. With an agent store file configured (agents.file), the file's
catalog is shown; otherwise the built-in one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		var registry agent.Registry = agent.DefaultRegistry()
		if settings.AgentsFile != "" {
			registry, err = agent.LoadFileRegistry(afero.NewOsFs(), settings.AgentsFile)
			if err != nil {
				return err
			}
		}

		configs := registry.List()
		sort.Slice(configs, func(i, j int) bool {
			if configs[i].Sector != configs[j].Sector {
				return configs[i].Sector < configs[j].Sector
			}
			return configs[i].Style < configs[j].Style
		})

		header := lipgloss.NewStyle().Bold(true)
		fmt.Fprintln(os.Stdout, header.Render(fmt.Sprintf("%-14s %-9s %-22s %s", "SECTOR", "STYLE", "PRICING", "NAME")))
		for _, c := range configs {
			fmt.Fprintf(os.Stdout, "%-14s %-9s %-22s %s\n", c.Sector, c.Style, c.PricingModel, c.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(agentsCmd)
}
