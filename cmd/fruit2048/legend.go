package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit2048/internal/config"
	"github.com/vovakirdan/fruit2048/internal/game"
)

var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Show the fruit for each tile value",
	Long:  `Shows which fruit stands for which tile value, and the spawn presets.`,
	Args:  cobra.NoArgs,
	Run:   runLegend,
}

func runLegend(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Tiles:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-6s  %-5s  %s\n", "Value", "Fruit", "Name")
	fmt.Fprintf(out, "  %-6s  %-5s  %s\n", "-----", "-----", "----")
	for _, f := range game.Legend() {
		fmt.Fprintf(out, "  %-6d  %s     %s\n", f.Value, f.Symbol, f.Name)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Larger tiles are shown as numbers.")

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Spawn presets:")
	fmt.Fprintln(out)
	for _, name := range config.PresetNames() {
		weights, _ := config.LookupPreset(config.Preset(name))
		fmt.Fprintf(out, "  %-7s %s\n", name, formatWeights(weights))
	}
}

// formatWeights renders weights as "2: 80%, 4: 15%" in value order.
func formatWeights(weights map[int]float64) string {
	values := make([]int, 0, len(weights))
	for v := range weights {
		values = append(values, v)
	}
	sort.Ints(values)

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d: %.0f%%", v, weights[v]*100)
	}
	return strings.Join(parts, ", ")
}
