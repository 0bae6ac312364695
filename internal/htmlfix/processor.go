package htmlfix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultMaxPasses bounds fixed-point iteration of a rule set over one file
const DefaultMaxPasses = 5

// ErrNoFixedPoint is returned when a rule set keeps changing a file
var ErrNoFixedPoint = errors.New("rules did not converge")

// FileError records a file that could not be processed
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string { return e.Path + ": " + e.Err.Error() }

// Summary reports the outcome of one run
type Summary struct {
	RuleSet string
	Scanned int
	Updated []string // relative paths that changed (or would change on a dry run)
	Skipped []string // relative paths excluded by the rule set
	Failed  []FileError
}

// Processor applies rule sets to the HTML files under a root directory
type Processor struct {
	root      string
	walk      WalkOptions
	maxPasses int
	dryRun    bool
	reporter  Reporter
	logger    *slog.Logger
}

// Options configures a Processor
type Options struct {
	Walk      WalkOptions
	MaxPasses int
	DryRun    bool // report changes without writing
	Reporter  Reporter
}

// NewProcessor creates a processor rooted at root
func NewProcessor(root string, opts Options, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MaxPasses <= 0 {
		opts.MaxPasses = DefaultMaxPasses
	}
	if opts.Reporter == nil {
		opts.Reporter = NopReporter{}
	}
	return &Processor{
		root:      root,
		walk:      opts.Walk,
		maxPasses: opts.MaxPasses,
		dryRun:    opts.DryRun,
		reporter:  opts.Reporter,
		logger:    logger,
	}
}

// Run applies set to every matching file. Per-file failures are logged and
// collected in the summary; only walk failures and cancellation return an error.
func (p *Processor) Run(ctx context.Context, set RuleSet) (*Summary, error) {
	files, err := Walk(p.root, p.walk)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", p.root, err)
	}

	summary := &Summary{RuleSet: set.Name}
	p.reporter.Start(len(files))
	defer p.reporter.Finish()

	for i, rel := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		p.reporter.Update(i+1, rel)

		if set.Skips(rel) {
			p.logger.Debug("skipping file", "path", rel, "rule_set", set.Name)
			summary.Skipped = append(summary.Skipped, rel)
			continue
		}
		summary.Scanned++

		changed, err := p.processFile(rel, set)
		if err != nil {
			p.logger.Error("error processing file", "path", rel, "rule_set", set.Name, "error", err)
			summary.Failed = append(summary.Failed, FileError{Path: rel, Err: err})
			continue
		}
		if changed {
			p.logger.Info("updated", "path", rel, "rule_set", set.Name, "dry_run", p.dryRun)
			summary.Updated = append(summary.Updated, rel)
		}
	}

	return summary, nil
}

func (p *Processor) processFile(rel string, set RuleSet) (bool, error) {
	path := filepath.Join(p.root, filepath.FromSlash(rel))

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	original := string(data)
	updated, err := ApplyFixedPoint(original, rel, set.Rules, p.maxPasses)
	if err != nil {
		return false, err
	}
	if updated == original {
		return false, nil
	}
	if p.dryRun {
		return true, nil
	}
	return true, WriteFileAtomic(path, []byte(updated), info.Mode().Perm())
}

// Apply runs every rule once, in order
func Apply(content, rel string, rules []Rule) (string, error) {
	for _, r := range rules {
		out, err := r.Apply(content, rel)
		if err != nil {
			return content, err
		}
		content = out
	}
	return content, nil
}

// ApplyFixedPoint repeats Apply until the content stops changing, so running
// the same rules on the result is a no-op.
func ApplyFixedPoint(content, rel string, rules []Rule, maxPasses int) (string, error) {
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}
	for pass := 0; pass < maxPasses; pass++ {
		out, err := Apply(content, rel, rules)
		if err != nil {
			return content, err
		}
		if out == content {
			return out, nil
		}
		content = out
	}
	return content, fmt.Errorf("%w after %d passes", ErrNoFixedPoint, maxPasses)
}

// WriteFileAtomic replaces path via a temporary file in the same directory,
// so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".htmlfix-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
