package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/solatis/showwhen/internal/conditions"
	"github.com/solatis/showwhen/internal/types"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <condition.json> <values.json>",
	Short: "Evaluate a condition payload against form values",
	Long: `Evaluates a wire-format condition payload against a JSON object of
current field values and prints the visibility outcome, mirroring the call
the form renderer makes per gated element.`,
	Args: cobra.ExactArgs(2),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read condition file: %w", err)
	}
	rawValues, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read values file: %w", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(rawValues, &decoded); err != nil {
		return fmt.Errorf("values file is not a JSON object: %w", err)
	}
	values := make(types.Values, len(decoded))
	for k, v := range decoded {
		values[types.FieldRef(k)] = v
	}

	cond := conditions.Parse(payload)
	for _, p := range conditions.Check(cond) {
		fmt.Fprintf(os.Stderr, "warning: field %q operator %q: %v\n", p.Field, p.Operator, p.Err)
	}

	if conditions.Evaluate(cond, values) {
		fmt.Println("visible")
	} else {
		fmt.Println("hidden")
	}
	return nil
}
