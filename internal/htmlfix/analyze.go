package htmlfix

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ReportFile is the default output name of the hover analysis
const ReportFile = "hover-effects-report.json"

var hoverClass = compile(`hover:[\w-]+`)

// HoverReport lists the distinct hover classes found per element category
type HoverReport struct {
	Buttons    []string `json:"buttons"`
	Links      []string `json:"links"`
	Cards      []string `json:"cards"`
	Inputs     []string `json:"inputs"`
	Navigation []string `json:"navigation"`
	Badges     []string `json:"badges"`
	Other      []string `json:"other"`
}

// Category is one report section
type Category struct {
	Name    string
	Classes []string
}

// Categories returns the report sections in display order
func (r *HoverReport) Categories() []Category {
	return []Category{
		{"BUTTONS", r.Buttons},
		{"LINKS", r.Links},
		{"CARDS", r.Cards},
		{"INPUTS", r.Inputs},
		{"NAVIGATION", r.Navigation},
		{"BADGES", r.Badges},
		{"OTHER", r.Other},
	}
}

// WriteJSON writes the report with two-space indentation
func (r *HoverReport) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// AnalyzeHover scans .ts and .tsx sources under root and groups their hover
// classes by the kind of component they appear in. Unreadable files are skipped.
func AnalyzeHover(root string, logger *slog.Logger) (*HoverReport, error) {
	if logger == nil {
		logger = slog.Default()
	}

	files, err := Walk(root, WalkOptions{
		Extensions: []string{".ts", ".tsx"},
		SkipDirs:   []string{"node_modules"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sets := map[string]map[string]struct{}{}
	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			logger.Debug("skipping unreadable file", "path", rel, "error", err)
			continue
		}
		content := string(data)

		classes, err := findHoverClasses(content)
		if err != nil {
			logger.Warn("failed to scan file", "path", rel, "error", err)
			continue
		}
		if len(classes) == 0 {
			continue
		}

		category := categorize(rel, content)
		if sets[category] == nil {
			sets[category] = map[string]struct{}{}
		}
		for _, c := range classes {
			sets[category][c] = struct{}{}
		}
	}

	return &HoverReport{
		Buttons:    sorted(sets["buttons"]),
		Links:      sorted(sets["links"]),
		Cards:      sorted(sets["cards"]),
		Inputs:     sorted(sets["inputs"]),
		Navigation: sorted(sets["navigation"]),
		Badges:     sorted(sets["badges"]),
		Other:      sorted(sets["other"]),
	}, nil
}

func findHoverClasses(content string) ([]string, error) {
	var out []string
	m, err := hoverClass.FindStringMatch(content)
	for m != nil && err == nil {
		out = append(out, m.String())
		m, err = hoverClass.FindNextMatch(m)
	}
	return out, err
}

// categorize classifies a file by its path first, then by whether it renders links
func categorize(rel, content string) string {
	switch {
	case strings.Contains(rel, "button"):
		return "buttons"
	case strings.Contains(rel, "input"), strings.Contains(rel, "textarea"), strings.Contains(rel, "select"):
		return "inputs"
	case strings.Contains(rel, "card"):
		return "cards"
	case strings.Contains(rel, "badge"):
		return "badges"
	case strings.Contains(rel, "nav"), strings.Contains(rel, "header"), strings.Contains(rel, "footer"):
		return "navigation"
	case strings.Contains(content, "<a "), strings.Contains(content, "Link"), strings.Contains(content, "href="):
		return "links"
	default:
		return "other"
	}
}

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
