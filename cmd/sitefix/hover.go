package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/bookvibe/internal/htmlfix"
)

var hoverCmd = &cobra.Command{
	Use:   "hover",
	Short: "Hover effect passes and the hover class report",
}

var hoverFixAllCmd = &cobra.Command{
	Use:   "fix-all",
	Short: "Add hover effects to cards, buttons and links",
	Args:  cobra.NoArgs,
	Run:   ruleSetRunner(htmlfix.SetHoverFixAll),
}

var hoverPreciseCmd = &cobra.Command{
	Use:   "precise",
	Short: "Keep hover effects only on interactive elements",
	Args:  cobra.NoArgs,
	Run:   ruleSetRunner(htmlfix.SetHoverPrecise),
}

var hoverCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove duplicate and conflicting hover classes",
	Args:  cobra.NoArgs,
	Run:   ruleSetRunner(htmlfix.SetHoverCleanup),
}

var hoverAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report hover classes used by the frontend sources",
	Args:  cobra.NoArgs,
	Run:   runHoverAnalyze,
}

func init() {
	hoverAnalyzeCmd.Flags().String("source", "", "directory of .ts/.tsx sources (overrides site.analyze_source)")
	hoverAnalyzeCmd.Flags().String("out", htmlfix.ReportFile, "report file")
	hoverCmd.AddCommand(hoverFixAllCmd, hoverPreciseCmd, hoverCleanupCmd, hoverAnalyzeCmd)
	rootCmd.AddCommand(hoverCmd)
}

func runHoverAnalyze(cmd *cobra.Command, args []string) {
	e, err := loadEnv()
	exitOnError(err)

	source, _ := cmd.Flags().GetString("source")
	if source == "" {
		source = e.cfg.Site.AnalyzeSource
	}
	if source == "" {
		exitOnError(fmt.Errorf("no source directory: pass --source or set site.analyze_source"))
	}
	out, _ := cmd.Flags().GetString("out")

	report, err := htmlfix.AnalyzeHover(source, e.logger)
	exitOnError(err)

	fmt.Println("HOVER EFFECTS ANALYSIS")
	for _, c := range report.Categories() {
		fmt.Printf("\n%s (%d)\n", c.Name, len(c.Classes))
		for _, class := range c.Classes {
			fmt.Printf("  %s\n", class)
		}
	}

	if dryRun {
		return
	}
	exitOnError(report.WriteJSON(out))
	fmt.Printf("\nReport written to %s\n", out)
}
