// Command cli evaluates proposals against a mandate from the terminal.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"gomandate/adapters/excel"
	"gomandate/adapters/llm"
	"gomandate/app"
	"gomandate/domain/decision"
	"gomandate/domain/mandate"
	"gomandate/domain/proposal"
	"gomandate/internal/config"
)

var (
	mandateFile  string
	proposalFile string
	workbookFile string
	parallel     int
	jsonOutput   bool
)

func main() {
	root := &cobra.Command{
		Use:          "gomandate",
		Short:        "Evaluate business proposals against an organizational mandate",
		SilenceUsage: true,
	}

	evaluateCmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate one proposal YAML file against a mandate YAML file",
		RunE:  runEvaluate,
	}
	evaluateCmd.Flags().StringVar(&mandateFile, "mandate", "", "mandate YAML file (required)")
	evaluateCmd.Flags().StringVar(&proposalFile, "proposal", "", "proposal YAML file (required)")
	evaluateCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the raw decision object as JSON")
	evaluateCmd.MarkFlagRequired("mandate")
	evaluateCmd.MarkFlagRequired("proposal")

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate every proposal in an xlsx workbook against a mandate",
		RunE:  runBatch,
	}
	batchCmd.Flags().StringVar(&mandateFile, "mandate", "", "mandate YAML file (required)")
	batchCmd.Flags().StringVar(&workbookFile, "workbook", "", "proposals xlsx workbook (required)")
	batchCmd.Flags().IntVar(&parallel, "parallel", 4, "evaluations to run concurrently")
	batchCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit raw decision objects as JSON lines")
	batchCmd.MarkFlagRequired("mandate")
	batchCmd.MarkFlagRequired("workbook")

	root.AddCommand(evaluateCmd, batchCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newEvaluator() (*app.EvaluationService, error) {
	godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	risk := llm.NewRiskAdapter(llm.Config{
		Model:       cfg.AI.Model,
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
		Timeout:     cfg.AI.Timeout,
	})
	return app.NewEvaluationService(risk), nil
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	m, err := loadMandate(mandateFile)
	if err != nil {
		return err
	}
	p, err := loadProposal(proposalFile)
	if err != nil {
		return err
	}

	evaluator, err := newEvaluator()
	if err != nil {
		return err
	}

	obj, trace := evaluator.Evaluate(cmd.Context(), m, p)
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"decision": obj, "trace": trace,
		})
	}
	renderDecision(p.Title, obj)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	m, err := loadMandate(mandateFile)
	if err != nil {
		return err
	}
	proposals, err := excel.ReadProposals(workbookFile)
	if err != nil {
		return err
	}

	evaluator, err := newEvaluator()
	if err != nil {
		return err
	}

	// Evaluations share no state; run them in parallel with a bound
	results := make([]decision.Object, len(proposals))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(parallel)
	for i, p := range proposals {
		i, p := i, p
		g.Go(func() error {
			obj, _ := evaluator.Evaluate(ctx, m, p)
			results[i] = obj
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, obj := range results {
		if jsonOutput {
			if err := json.NewEncoder(os.Stdout).Encode(obj); err != nil {
				return err
			}
			continue
		}
		renderDecision(proposals[i].Title, obj)
		fmt.Println()
	}
	return nil
}

func loadMandate(path string) (mandate.Context, error) {
	var m mandate.Context
	raw, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read mandate file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("parse mandate file: %w", err)
	}
	if m.Kind == "" {
		// Infer the shape when the file omits the tag
		if len(m.Outcomes) > 0 {
			m.Kind = mandate.KindOutcomeRanked
		} else {
			m.Kind = mandate.KindWeighted
		}
	}
	return m, nil
}

func loadProposal(path string) (proposal.Context, error) {
	var p proposal.Context
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read proposal file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parse proposal file: %w", err)
	}
	return p, nil
}

func renderDecision(title string, obj decision.Object) {
	heading := color.New(color.Bold)
	heading.Printf("%s\n", title)

	switch obj.Recommendation {
	case decision.RecommendApprove:
		color.Green("  recommendation: %s", obj.Recommendation)
	case decision.RecommendRevise:
		color.Yellow("  recommendation: %s", obj.Recommendation)
	default:
		color.Red("  recommendation: %s", obj.Recommendation)
	}

	fmt.Printf("  human required: %v\n", obj.HumanRequired)
	fmt.Printf("  confidence:     %.2f\n", obj.Confidence)
	fmt.Printf("  tradeoff:       %.2f\n", obj.TradeoffScore)
	fmt.Printf("  summary:        %s\n", obj.Summary)

	for _, v := range obj.ConstraintViolations {
		color.Red("  violation: %s", v)
	}
	for _, c := range obj.Conflicts {
		color.Yellow("  conflict:  %s", c)
	}
	for _, reason := range obj.ConfidenceReasons {
		fmt.Printf("  reason:    %s\n", reason)
	}
}
