package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmcdole/bookvibe/internal/config"
	"github.com/mmcdole/bookvibe/internal/htmlfix"
	"github.com/mmcdole/bookvibe/internal/logging"
)

var (
	cfgFile string
	siteDir string
	verbose bool
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "sitefix",
	Short: "Maintenance passes for the bookstore's static HTML site",
	Long: `sitefix rewrites the static site in place: brand colors, hover effects,
ad banners and the admin portal layout. Every pass is idempotent, so running
a command twice leaves the files unchanged the second time.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&siteDir, "root", "", "site root (overrides site.root)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "report changes without writing files")
}

// env is what every command needs: config, logger and the resolved site root
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	root   string
}

func loadEnv() (*env, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	root := cfg.Site.Root
	if siteDir != "" {
		root = siteDir
	}
	if root == "" {
		root = "."
	}
	return &env{
		cfg:    cfg,
		logger: logging.Console(os.Stderr, verbose),
		root:   root,
	}, nil
}

func (e *env) walkOptions() htmlfix.WalkOptions {
	return htmlfix.HTMLFiles(e.cfg.Site.SkipDirs, e.cfg.Site.Exclude)
}

func (e *env) processor() *htmlfix.Processor {
	return htmlfix.NewProcessor(e.root, htmlfix.Options{
		Walk:      e.walkOptions(),
		MaxPasses: e.cfg.Site.MaxPasses,
		DryRun:    dryRun,
		Reporter:  htmlfix.NewReporter(os.Stderr),
	}, e.logger)
}

func printSummary(s *htmlfix.Summary) {
	verb := "Updated"
	if dryRun {
		verb = "Would update"
	}
	for _, rel := range s.Updated {
		fmt.Printf("%s: %s\n", verb, rel)
	}
	for _, fe := range s.Failed {
		fmt.Fprintf(os.Stderr, "Failed: %v\n", fe)
	}
	fmt.Printf("Total files updated: %d\n", len(s.Updated))
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
