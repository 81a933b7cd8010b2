package cmd

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var statsOutput string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show inventory statistics",
	Long: `Show product count, total inventory value (price × stock), the
distribution by category and the brand map.

Output formats:
- text: human readable report
- json: machine readable
- yaml: machine readable`,
	Args: cobra.NoArgs,
	RunE: showStatistics,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsOutput, "output", "o", "text", "Output format (text|json|yaml)")
}

func showStatistics(cmd *cobra.Command, args []string) error {
	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	stats := env.inv.Statistics()
	out := cmd.OutOrStdout()

	switch statsOutput {
	case "text":
		fmt.Fprintln(out, env.format.Statistics(stats))
	case "json":
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode statistics: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(stats); err != nil {
			return fmt.Errorf("failed to encode statistics: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format: %s", statsOutput)
	}

	return nil
}
