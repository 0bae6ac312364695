package htmlfix

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func newTestProcessor(root string, opts Options) (*Processor, *bytes.Buffer) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewProcessor(root, opts, logger), &logs
}

func TestProcessor_Run(t *testing.T) {
	root := t.TempDir()
	changed := writeFile(t, root, "index.html", `<div class="bg-primary">x</div>`)
	untouched := writeFile(t, root, "about/index.html", `<div class="bg-white">x</div>`)
	writeFile(t, root, "node_modules/pkg/index.html", `<div class="bg-primary">x</div>`)

	p, _ := newTestProcessor(root, Options{Walk: HTMLFiles([]string{"node_modules"}, nil)})
	summary, err := p.Run(context.Background(), Colors())
	require.NoError(t, err)

	assert.Equal(t, SetColors, summary.RuleSet)
	assert.Equal(t, 2, summary.Scanned)
	assert.Equal(t, []string{"index.html"}, summary.Updated)
	assert.Empty(t, summary.Failed)
	assert.Equal(t, `<div class="bg-[#00377b]">x</div>`, readFile(t, changed))
	assert.Equal(t, `<div class="bg-white">x</div>`, readFile(t, untouched))

	// second run is a no-op
	summary, err = p.Run(context.Background(), Colors())
	require.NoError(t, err)
	assert.Empty(t, summary.Updated)
}

func TestProcessor_PreservesPermissions(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "index.html", `<p class="text-primary">x</p>`)
	require.NoError(t, os.Chmod(path, 0600))

	p, _ := newTestProcessor(root, Options{Walk: HTMLFiles(nil, nil)})
	_, err := p.Run(context.Background(), Colors())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestProcessor_DryRun(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "index.html", `<div class="bg-primary">x</div>`)

	p, _ := newTestProcessor(root, Options{Walk: HTMLFiles(nil, nil), DryRun: true})
	summary, err := p.Run(context.Background(), Colors())
	require.NoError(t, err)

	assert.Equal(t, []string{"index.html"}, summary.Updated)
	assert.Equal(t, `<div class="bg-primary">x</div>`, readFile(t, path))
}

func TestProcessor_SkipPaths(t *testing.T) {
	root := t.TempDir()
	skipped := writeFile(t, root, "sawal-jawab/index.html", page)
	writeFile(t, root, "about/index.html", page)

	p, _ := newTestProcessor(root, Options{Walk: HTMLFiles(nil, nil)})
	summary, err := p.Run(context.Background(), AdBanners([]string{"sawal-jawab"}))
	require.NoError(t, err)

	assert.Equal(t, []string{"sawal-jawab/index.html"}, summary.Skipped)
	assert.Equal(t, []string{"about/index.html"}, summary.Updated)
	assert.Equal(t, page, readFile(t, skipped))
}

func TestProcessor_PipelineSecondRunIsNoop(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "index.html", `<footer>
  <a href="/fb" class="flex items-center gap-2 text-white/90 hover:opacity-85">Facebook</a>
</footer>
`)
	about := writeFile(t, root, "about/index.html", page)
	auth := writeFile(t, root, "auth/login.html", page)

	p, _ := newTestProcessor(root, Options{Walk: HTMLFiles(nil, nil)})
	summary, err := p.Run(context.Background(), Pipeline([]string{"auth"}))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"index.html", "about/index.html"}, summary.Updated)
	assert.Empty(t, summary.Failed)
	first := readFile(t, path)
	assert.Contains(t, readFile(t, about), "Top Advertisement Banner")
	assert.Equal(t, page, readFile(t, auth))

	summary, err = p.Run(context.Background(), Pipeline([]string{"auth"}))
	require.NoError(t, err)
	assert.Empty(t, summary.Updated)
	assert.Equal(t, first, readFile(t, path))
}

func TestProcessor_ContinuesAfterFailure(t *testing.T) {
	root := t.TempDir()
	good := writeFile(t, root, "good.html", `<div class="bg-primary">x</div>`)
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.html"), filepath.Join(root, "broken.html")))

	p, logs := newTestProcessor(root, Options{Walk: HTMLFiles(nil, nil)})
	summary, err := p.Run(context.Background(), Colors())
	require.NoError(t, err)

	require.Len(t, summary.Failed, 1)
	assert.Equal(t, "broken.html", summary.Failed[0].Path)
	assert.Contains(t, logs.String(), "error processing file")
	assert.Equal(t, []string{"good.html"}, summary.Updated)
	assert.Equal(t, `<div class="bg-[#00377b]">x</div>`, readFile(t, good))
}

func TestProcessor_Canceled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", `<div class="bg-primary">x</div>`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, _ := newTestProcessor(root, Options{Walk: HTMLFiles(nil, nil)})
	_, err := p.Run(ctx, Colors())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessor_ReportsProgress(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.html", "a")
	writeFile(t, root, "b.html", "b")

	var out bytes.Buffer
	p, _ := newTestProcessor(root, Options{Walk: HTMLFiles(nil, nil), Reporter: NewLineReporter(&out)})
	_, err := p.Run(context.Background(), Colors())
	require.NoError(t, err)

	assert.Equal(t, "Processing 2 files\n[1/2] a.html\n[2/2] b.html\n", out.String())
}
