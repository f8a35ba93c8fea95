package cmd

import (
	"fmt"

	"github.com/solatis/showwhen/internal/conditions"
	"github.com/solatis/showwhen/internal/core/db"
	"github.com/solatis/showwhen/internal/core/store"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Scan stored visibility rules for silent problems",
	Long: `Scans stored visibility rules and reports what the evaluator degrades
silently: payloads that parse to no constraint, operators outside the
catalog, and values that do not match their operator's arity.`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("--db-url required")
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	queries, err := db.LoadQueries(database)
	if err != nil {
		return fmt.Errorf("failed to load queries: %w", err)
	}
	rules, err := listRules(queries, cfg.LintLimit)
	if err != nil {
		return err
	}

	found := 0
	for _, rule := range rules {
		where := fmt.Sprintf("form %s %s/%s", rule.FormID, rule.ElementKind, rule.ElementRef)
		cond := rule.Condition()

		if cond == nil && rule.Payload.Valid {
			// A stored payload that parses to no constraint is stale data:
			// the element renders unconditionally visible.
			found++
			fmt.Printf("%s: stored payload parses to no constraint\n", where)
			continue
		}

		for _, p := range conditions.Check(cond) {
			found++
			op := string(p.Operator)
			if spec, ok := conditions.Table[p.Operator]; ok {
				op = fmt.Sprintf("%s (%q)", p.Operator, spec.Label)
			}
			fmt.Printf("%s: field %q operator %s: %v\n", where, p.Field, op, p.Err)
		}
	}

	if found > 0 {
		return fmt.Errorf("%d problem(s) in %d rule(s)", found, len(rules))
	}
	fmt.Printf("%d rule(s) clean\n", len(rules))
	return nil
}

func listRules(queries *db.Queries, limit int) ([]store.VisibilityRule, error) {
	s, err := store.New(queries)
	if err != nil {
		return nil, err
	}
	rules, err := s.ListAll(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}
