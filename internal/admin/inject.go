package admin

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/htmlfix"
)

// Session reports whether an admin is logged in
type Session interface {
	IsLoggedIn() (bool, error)
}

// Injector writes the shared sidebar and top bar into admin pages
type Injector struct {
	renderer *Renderer
	session  Session
	logger   *slog.Logger
}

// NewInjector creates an injector
func NewInjector(renderer *Renderer, session Session, logger *slog.Logger) *Injector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Injector{renderer: renderer, session: session, logger: logger}
}

// RequireSession returns ErrNotLoggedIn, naming the login page, when no admin is logged in
func (i *Injector) RequireSession() error {
	ok, err := i.session.IsLoggedIn()
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: redirect to %s", domain.ErrNotLoggedIn, LoginPage)
	}
	return nil
}

// Inject fills #admin-sidebar and #admin-top-bar in doc for the page at
// current and reports whether the page has either placeholder.
func (i *Injector) Inject(doc *html.Node, current string) (bool, error) {
	found := false

	if sidebar := FindByID(doc, SidebarID); sidebar != nil {
		markup, err := i.renderer.Sidebar(current)
		if err != nil {
			return false, err
		}
		if err := SetInnerHTML(sidebar, markup); err != nil {
			return false, err
		}
		found = true
	}

	if topBar := FindByID(doc, TopBarID); topBar != nil {
		markup, err := i.renderer.TopBar(current)
		if err != nil {
			return false, err
		}
		if err := SetInnerHTML(topBar, markup); err != nil {
			return false, err
		}
		found = true
	}

	return found, nil
}

// Page returns content with the layout injected. ok is false when the page
// has no layout placeholders, in which case content is returned unchanged.
func (i *Injector) Page(content, current string) (out string, ok bool, err error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return content, false, fmt.Errorf("failed to parse page: %w", err)
	}
	found, err := i.Inject(doc, current)
	if err != nil || !found {
		return content, false, err
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return content, false, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), true, nil
}

// Run injects the layout into every admin page under dir. Paths relative to
// dir are used as the current page. Pages without placeholders are skipped.
func (i *Injector) Run(ctx context.Context, dir string, walk htmlfix.WalkOptions, dryRun bool) (*htmlfix.Summary, error) {
	if err := i.RequireSession(); err != nil {
		return nil, err
	}

	files, err := htmlfix.Walk(dir, walk)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	summary := &htmlfix.Summary{RuleSet: "admin-layout"}
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		changed, found, err := i.file(dir, rel, dryRun)
		switch {
		case err != nil:
			i.logger.Error("error processing file", "path", rel, "error", err)
			summary.Failed = append(summary.Failed, htmlfix.FileError{Path: rel, Err: err})
		case !found:
			summary.Skipped = append(summary.Skipped, rel)
		default:
			summary.Scanned++
			if changed {
				i.logger.Info("updated", "path", rel, "dry_run", dryRun)
				summary.Updated = append(summary.Updated, rel)
			}
		}
	}
	return summary, nil
}

func (i *Injector) file(dir, rel string, dryRun bool) (changed, found bool, err error) {
	path := filepath.Join(dir, filepath.FromSlash(rel))
	info, err := os.Stat(path)
	if err != nil {
		return false, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, false, err
	}

	out, found, err := i.Page(string(data), rel)
	if err != nil || !found {
		return false, found, err
	}
	if out == string(data) {
		return false, true, nil
	}
	if dryRun {
		return true, true, nil
	}
	return true, true, htmlfix.WriteFileAtomic(path, []byte(out), info.Mode().Perm())
}

// ToggleFile flips the mobile sidebar state stored in the page at path and
// returns whether the sidebar is now open.
func ToggleFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return false, fmt.Errorf("failed to parse page: %w", err)
	}

	open, err := ToggleSidebar(doc)
	if err != nil {
		return false, err
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return false, fmt.Errorf("failed to render page: %w", err)
	}
	return open, htmlfix.WriteFileAtomic(path, buf.Bytes(), info.Mode().Perm())
}
