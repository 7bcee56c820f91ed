package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/proposta-ai/propgen/internal/proposal"
	"github.com/proposta-ai/propgen/internal/workflow"
)

var (
	genFile      string
	genOutput    string
	genSector    string
	genTemplate  string
	genClient    string
	genProject   string
	genDesc      string
	genCompany   string
	genEmail     string
	genPhone     string
	genPlans     int
	genPlanNames []string
	genDetails   string
	genTerms     bool
	genFAQ       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a commercial proposal.",
	Long: `Generate a complete proposal for a client project.

The request can come from a JSON file (--file) or from flags. The generated
proposal is printed as JSON on stdout; progress and the summary go to stderr.

Example:
  propgen generate --sector design --template flash \
    --client "Café Aurora" --project "Identidade visual" \
    --description "Rebranding completo da cafeteria" --plans 3 --terms --faq`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		req, err := buildRequest()
		if err != nil {
			return err
		}

		stack, err := buildStack(ctx)
		if err != nil {
			return err
		}
		defer stack.close()

		res, err := stack.generate(ctx, req)
		if err != nil {
			return err
		}

		printSummary(res)
		return writeResult(res)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genFile, "file", "f", "", "JSON file with the generation request")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "write the result to a file instead of stdout")
	generateCmd.Flags().StringVar(&genSector, "sector", "", "service sector (design, architecture, marketing, development, consulting, photography)")
	generateCmd.Flags().StringVar(&genTemplate, "template", "flash", "template style (flash, prime, minimal)")
	generateCmd.Flags().StringVar(&genClient, "client", "", "client name")
	generateCmd.Flags().StringVar(&genProject, "project", "", "project name")
	generateCmd.Flags().StringVar(&genDesc, "description", "", "project description")
	generateCmd.Flags().StringVar(&genCompany, "company-info", "", "company background for the about section")
	generateCmd.Flags().StringVar(&genEmail, "email", "", "company contact email")
	generateCmd.Flags().StringVar(&genPhone, "phone", "", "company contact phone")
	generateCmd.Flags().IntVar(&genPlans, "plans", 1, "number of pricing plans (1-3)")
	generateCmd.Flags().StringSliceVar(&genPlanNames, "plan-names", nil, "explicit plan names (overrides --plans count)")
	generateCmd.Flags().StringVar(&genDetails, "plan-details", "", "free-text pricing guidance")
	generateCmd.Flags().BoolVar(&genTerms, "terms", false, "include a terms and conditions section")
	generateCmd.Flags().BoolVar(&genFAQ, "faq", false, "include a FAQ section")
}

func buildRequest() (proposal.Request, error) {
	var req proposal.Request

	if genFile != "" {
		data, err := os.ReadFile(genFile)
		if err != nil {
			return req, fmt.Errorf("read request file: %w", err)
		}
		if err := json.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("parse request file: %w", err)
		}
		return req, nil
	}

	req = proposal.Request{
		SelectedService:    genSector,
		ClientName:         genClient,
		ProjectName:        genProject,
		ProjectDescription: genDesc,
		CompanyInfo:        genCompany,
		CompanyEmail:       genEmail,
		CompanyPhone:       genPhone,
		SelectedPlans:      proposal.PlanSelection{Count: genPlans, Names: genPlanNames},
		PlanDetails:        genDetails,
		IncludeTerms:       genTerms,
		IncludeFAQ:         genFAQ,
		TemplateType:       genTemplate,
	}
	if len(genPlanNames) > 0 {
		req.SelectedPlans.Count = len(genPlanNames)
	}

	var missing []string
	for flag, value := range map[string]string{
		"--sector":      req.SelectedService,
		"--client":      req.ClientName,
		"--project":     req.ProjectName,
		"--description": req.ProjectDescription,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, flag)
		}
	}
	if len(missing) > 0 {
		return req, fmt.Errorf("missing required flags: %s (or use --file)", strings.Join(missing, ", "))
	}
	return req, nil
}

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	summaryKeyStyle   = lipgloss.NewStyle().Faint(true)
	summaryWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func printSummary(res *workflow.Result) {
	fmt.Fprintln(os.Stderr, summaryTitleStyle.Render("✔ Proposal generated"))
	fmt.Fprintf(os.Stderr, "%s %dms\n", summaryKeyStyle.Render("time:"), res.TimingMs)
	fmt.Fprintf(os.Stderr, "%s %s\n", summaryKeyStyle.Render("models:"), strings.Join(res.ModelsUsed, ", "))
	fmt.Fprintf(os.Stderr, "%s %d\n", summaryKeyStyle.Render("plans:"), len(res.Proposal.Plans))
	if res.FallbackUsed {
		fmt.Fprintln(os.Stderr, summaryWarnStyle.Render("note: one or more sections used a deterministic fallback"))
	}
}

func writeResult(res *workflow.Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	if genOutput != "" {
		return os.WriteFile(genOutput, append(data, '\n'), 0o644)
	}
	fmt.Println(string(data))
	return nil
}
