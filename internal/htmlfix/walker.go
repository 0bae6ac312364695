package htmlfix

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// WalkOptions controls which files a walk returns
type WalkOptions struct {
	Extensions []string // e.g. ".html"; matched case-insensitively
	SkipDirs   []string // directory names skipped anywhere in the tree
	Exclude    []string // doublestar globs matched against the relative path
}

// HTMLFiles returns options for the static site rewrite passes
func HTMLFiles(skipDirs, exclude []string) WalkOptions {
	return WalkOptions{
		Extensions: []string{".html"},
		SkipDirs:   skipDirs,
		Exclude:    exclude,
	}
}

// Walk returns the relative paths of matching files under root, sorted.
// Hidden directories are always skipped.
func Walk(root string, opts WalkOptions) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == root {
				return nil
			}
			if shouldSkipDir(d.Name(), opts.SkipDirs) || matchesAny(rel, opts.Exclude) {
				return filepath.SkipDir
			}
			return nil
		}

		if !hasExtension(d.Name(), opts.Extensions) || matchesAny(rel, opts.Exclude) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func shouldSkipDir(name string, skip []string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, s := range skip {
		if strings.EqualFold(name, s) {
			return true
		}
	}
	return false
}

func hasExtension(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// matchesAny checks relPath and its base name against doublestar patterns
func matchesAny(relPath string, patterns []string) bool {
	base := filepath.Base(relPath)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
