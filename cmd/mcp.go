package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/proposta-ai/propgen/internal/mcptools"
	"github.com/proposta-ai/propgen/internal/proposal"
	"github.com/proposta-ai/propgen/internal/workflow"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio.",
	Long: `Expose proposal generation as MCP tools over stdin/stdout so AI clients
can call generate_proposal and list_agents directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		stack, err := buildStack(ctx)
		if err != nil {
			return err
		}
		defer stack.close()

		gen := mcptools.GeneratorFunc(func(ctx context.Context, req proposal.Request) (*workflow.Result, error) {
			return stack.generate(ctx, req)
		})
		server := mcptools.NewServer(version, gen, stack.registry)
		return mcptools.Serve(ctx, server)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
