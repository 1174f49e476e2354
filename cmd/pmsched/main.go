package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nabzillaa/project-management-automation-sub000/internal/cpm"
	"github.com/Nabzillaa/project-management-automation-sub000/internal/graph"
	"github.com/Nabzillaa/project-management-automation-sub000/internal/pert"
	"github.com/Nabzillaa/project-management-automation-sub000/internal/planner"
	"github.com/Nabzillaa/project-management-automation-sub000/internal/project"
	"github.com/Nabzillaa/project-management-automation-sub000/internal/reporter"
	"github.com/Nabzillaa/project-management-automation-sub000/internal/ui"
)

var (
	flagJSON   bool
	flagOutput string
	flagStart  string
	flagFormat string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pmsched",
		Short: "Critical path scheduling and PERT estimation for project plans",
		Long: `pmsched reads a project file (YAML or JSON), builds the task dependency
graph, runs critical path analysis over a working-day calendar, and reports
per-task schedule dates, slack, and the critical path.`,
	}

	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(estimateCmd())
	rootCmd.AddCommand(vizCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildSchedule is shared logic for analyze and viz commands.
func buildSchedule(path string) (*planner.Report, *graph.Graph, *cpm.Result, error) {
	p, err := project.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}

	if flagStart != "" {
		start, err := time.Parse(project.DateLayout, flagStart)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("parse --start: %w", err)
		}
		p.Start = start
	}

	g, err := graph.Build(p.Tasks)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build task graph: %w", err)
	}
	if g.TaskCount() == 0 {
		return nil, nil, nil, fmt.Errorf("project %s has no tasks", path)
	}

	result := cpm.Analyze(g, p.Start)
	report := planner.Generate(p, g, result)

	return report, g, result, nil
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <project-file>",
		Short: "Compute the critical path schedule for a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, _, _, err := buildSchedule(args[0])
			if err != nil {
				return err
			}

			if flagOutput != "" {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				return os.WriteFile(flagOutput, data, 0644)
			}

			rpt := reporter.New(report)
			if flagJSON {
				data, err := rpt.JSON()
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			rpt.PrintSchedule(os.Stdout)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagOutput, "output", "", "Save JSON report to file")
	cmd.Flags().StringVar(&flagStart, "start", "", "Override project start date (YYYY-MM-DD)")

	return cmd
}

func estimateCmd() *cobra.Command {
	var (
		flagOptimistic  float64
		flagMostLikely  float64
		flagPessimistic float64
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Three-point (PERT) duration estimate",
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := pert.New(flagOptimistic, flagMostLikely, flagPessimistic)
			if err != nil {
				return err
			}

			if flagJSON {
				return outputJSON(est)
			}

			fmt.Printf("📐 %s\n", ui.BoldCyan("PERT Estimate"))
			fmt.Println(ui.Cyan("═══════════════════"))
			fmt.Printf("Expected:  %s\n", ui.Bold(ui.Days(est.Expected)))
			fmt.Printf("Variance:  %.3f\n", est.Variance)
			fmt.Printf("Std dev:   %.3f\n", est.StdDev)
			fmt.Printf("68%%:       %s – %s\n", ui.Days(est.Confidence68.Min), ui.Days(est.Confidence68.Max))
			fmt.Printf("95%%:       %s – %s\n", ui.Days(est.Confidence95.Min), ui.Days(est.Confidence95.Max))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&flagOptimistic, "optimistic", "o", 0, "Optimistic duration")
	cmd.Flags().Float64VarP(&flagMostLikely, "most-likely", "m", 0, "Most likely duration")
	cmd.Flags().Float64VarP(&flagPessimistic, "pessimistic", "p", 0, "Pessimistic duration")
	cmd.MarkFlagRequired("optimistic")
	cmd.MarkFlagRequired("most-likely")
	cmd.MarkFlagRequired("pessimistic")

	return cmd
}

func vizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viz <project-file>",
		Short: "Print the task dependency graph (ascii or dot)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, g, result, err := buildSchedule(args[0])
			if err != nil {
				return err
			}

			if flagFormat == "dot" {
				return printDOT(g, result)
			}

			printASCIIDAG(report, g)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagFormat, "format", "ascii", "Output format (ascii, dot)")
	cmd.Flags().StringVar(&flagStart, "start", "", "Override project start date (YYYY-MM-DD)")

	return cmd
}

// --- Output helpers ---

func outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printASCIIDAG(report *planner.Report, g *graph.Graph) {
	fmt.Printf("🔗 %s\n", ui.BoldCyan("Task Dependency Graph"))
	fmt.Println(ui.Cyan("═══════════════════════"))
	fmt.Println()

	rows := make(map[string]planner.TaskRow, len(report.Tasks))
	for _, row := range report.Tasks {
		rows[row.TaskID] = row
	}

	for _, wave := range report.Waves {
		fmt.Printf("%s 🌊 Wave %d %s\n", ui.Cyan("──"), wave.Index+1, ui.Cyan("──────────────────────────────"))
		for _, id := range wave.TaskIDs {
			row := rows[id]
			fmt.Printf("  %s [%s] %s %s\n",
				ui.CriticalMarker(row.IsCritical), ui.BoldMagenta(id), row.Title,
				ui.Dim(fmt.Sprintf("(%s d)", ui.Days(row.Duration))))

			for _, succ := range g.Succs[g.Index[id]] {
				fmt.Printf("      %s %s\n", ui.Dim("└──→"), ui.Magenta(g.ID(succ)))
			}
		}
		fmt.Println()
	}
}

func printDOT(g *graph.Graph, result *cpm.Result) error {
	fmt.Println("digraph schedule {")
	fmt.Println("  rankdir=LR;")
	fmt.Println("  node [shape=box, style=rounded];")
	fmt.Println()

	for _, id := range result.TopoOrder {
		task := g.Tasks[g.Index[id]]
		label := id
		if task.Title != "" {
			label = fmt.Sprintf("%s\\n%s", id, strings.ReplaceAll(task.Title, `"`, `\"`))
		}
		attrs := fmt.Sprintf(`label="%s"`, label)
		if result.Tasks[id].IsCritical {
			attrs += `, style="rounded,bold", color=red`
		}
		fmt.Printf("  %q [%s];\n", id, attrs)
	}

	fmt.Println()

	for _, id := range result.TopoOrder {
		for _, succ := range g.Succs[g.Index[id]] {
			to := g.ID(succ)
			style := ""
			if result.Tasks[id].IsCritical && result.Tasks[to].IsCritical {
				style = ` [color=red, penwidth=2]`
			}
			fmt.Printf("  %q -> %q%s;\n", id, to, style)
		}
	}

	fmt.Println("}")
	return nil
}
