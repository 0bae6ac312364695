package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmcdole/bookvibe/internal/htmlfix"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Replace legacy theme colors with the brand palette",
	Args:  cobra.NoArgs,
	Run:   ruleSetRunner(htmlfix.SetColors),
}

var adHoverCmd = &cobra.Command{
	Use:   "ad-hover",
	Short: "Remove hover effects from ad banners",
	Args:  cobra.NoArgs,
	Run:   ruleSetRunner(htmlfix.SetAdHover),
}

var adBannersCmd = &cobra.Command{
	Use:   "ad-banners",
	Short: "Insert the top and bottom ad banners where missing",
	Args:  cobra.NoArgs,
	Run:   ruleSetRunner(htmlfix.SetAdBanners),
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every rule set in pipeline order",
	Args:  cobra.NoArgs,
	Run:   runAll,
}

func init() {
	rootCmd.AddCommand(colorsCmd, adHoverCmd, adBannersCmd, allCmd)
}

// ruleSetRunner returns a command body that applies the named rule set to the site
func ruleSetRunner(name string) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		e, err := loadEnv()
		exitOnError(err)

		set, err := htmlfix.Lookup(name, e.cfg.Site.BannerSkip)
		exitOnError(err)

		summary, err := e.processor().Run(cmd.Context(), set)
		exitOnError(err)
		printSummary(summary)
	}
}

// runAll applies every set as one pipeline so the result is a fixed point of the whole sequence
func runAll(cmd *cobra.Command, args []string) {
	e, err := loadEnv()
	exitOnError(err)

	set, err := htmlfix.Lookup(htmlfix.SetAll, e.cfg.Site.BannerSkip)
	exitOnError(err)

	fmt.Printf("Running %d passes: %s\n", len(htmlfix.PipelineOrder), strings.Join(htmlfix.PipelineOrder, ", "))
	summary, err := e.processor().Run(cmd.Context(), set)
	exitOnError(err)
	printSummary(summary)
}
