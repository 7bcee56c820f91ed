// Package mcptools exposes proposal generation to MCP clients over stdio.
package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/proposta-ai/propgen/internal/agent"
	"github.com/proposta-ai/propgen/internal/proposal"
	"github.com/proposta-ai/propgen/internal/workflow"
)

// Generator runs one proposal generation. The CLI wires an attempt sequence
// behind it; tests wire a stub.
type Generator interface {
	Generate(ctx context.Context, req proposal.Request) (*workflow.Result, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, req proposal.Request) (*workflow.Result, error)

func (f GeneratorFunc) Generate(ctx context.Context, req proposal.Request) (*workflow.Result, error) {
	return f(ctx, req)
}

// agentEntry is one row of the list_agents response.
type agentEntry struct {
	Sector       string `json:"sector"`
	Style        string `json:"style"`
	Name         string `json:"name"`
	PricingModel string `json:"pricingModel"`
}

type listAgentsParams struct{}

type listAgentsResponse struct {
	Agents []agentEntry `json:"agents"`
}

// NewServer builds the MCP server with the generation tools registered.
func NewServer(version string, gen Generator, registry agent.Registry) *mcp.Server {
	impl := &mcp.Implementation{
		Name:    "propgen",
		Version: version,
	}
	server := mcp.NewServer(impl, &mcp.ServerOptions{})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_proposal",
		Description: "Generate a complete commercial proposal (pt-BR) for a client project. Takes sector, template style, client and project details, and plan selection; returns the structured proposal with timing and model attribution.",
	}, generateProposalHandler(gen))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_agents",
		Description: "List the registered generation agents as (sector, template style) pairs with their pricing models.",
	}, listAgentsHandler(registry))

	return server
}

// Serve runs the server over stdin/stdout until the context ends.
func Serve(ctx context.Context, server *mcp.Server) error {
	if err := server.Run(ctx, mcp.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

func generateProposalHandler(gen Generator) mcp.ToolHandlerFor[proposal.Request, workflow.Result] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[proposal.Request]) (*mcp.CallToolResultFor[workflow.Result], error) {
		res, err := gen.Generate(ctx, params.Arguments)
		if err != nil {
			return nil, err
		}
		return &mcp.CallToolResultFor[workflow.Result]{StructuredContent: *res}, nil
	}
}

func listAgentsHandler(registry agent.Registry) mcp.ToolHandlerFor[listAgentsParams, listAgentsResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[listAgentsParams]) (*mcp.CallToolResultFor[listAgentsResponse], error) {
		var resp listAgentsResponse
		for _, cfg := range registry.List() {
			resp.Agents = append(resp.Agents, agentEntry{
				Sector:       string(cfg.Sector),
				Style:        string(cfg.Style),
				Name:         cfg.Name,
				PricingModel: string(cfg.PricingModel),
			})
		}
		return &mcp.CallToolResultFor[listAgentsResponse]{StructuredContent: resp}, nil
	}
}
