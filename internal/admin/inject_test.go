package admin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/htmlfix"
)

type fakeSession struct {
	loggedIn bool
	err      error
}

func (f fakeSession) IsLoggedIn() (bool, error) { return f.loggedIn, f.err }

const adminPage = `<!DOCTYPE html>
<html>
<head><title>Clients</title></head>
<body>
<div id="sidebar-overlay" class="fixed inset-0 hidden"></div>
<aside id="admin-sidebar-container" class="fixed -translate-x-full lg:translate-x-0">
  <div id="admin-sidebar"></div>
</aside>
<header id="admin-top-bar"></header>
<main>Client list</main>
</body>
</html>
`

func newTestInjector(t *testing.T, session Session) *Injector {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	return NewInjector(r, session, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestInjector_Page(t *testing.T) {
	inj := newTestInjector(t, fakeSession{loggedIn: true})

	out, ok, err := inj.Page(adminPage, "clients/index.html")
	require.NoError(t, err)
	require.True(t, ok)

	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)

	sidebar := FindByID(doc, SidebarID)
	require.NotNil(t, sidebar)
	require.NotNil(t, FindByID(sidebar, "logout-btn"))
	require.NotNil(t, FindByID(doc, "sidebar-toggle"))
	assert.Contains(t, out, "Client list")
	assert.Contains(t, out, `href="../clients/index.html"`)

	again, ok, err := inj.Page(out, "clients/index.html")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, out, again)
}

func TestInjector_PageWithoutPlaceholders(t *testing.T) {
	inj := newTestInjector(t, fakeSession{loggedIn: true})

	in := "<html><body><form>login</form></body></html>"
	out, ok, err := inj.Page(in, "index.html")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, in, out)
}

func TestInjector_RunRequiresSession(t *testing.T) {
	inj := newTestInjector(t, fakeSession{loggedIn: false})

	_, err := inj.Run(context.Background(), t.TempDir(), htmlfix.HTMLFiles(nil, nil), false)
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
	assert.Contains(t, err.Error(), LoginPage)
}

func TestInjector_RunSessionError(t *testing.T) {
	boom := errors.New("boom")
	inj := newTestInjector(t, fakeSession{err: boom})

	_, err := inj.Run(context.Background(), t.TempDir(), htmlfix.HTMLFiles(nil, nil), false)
	assert.ErrorIs(t, err, boom)
}

func TestInjector_Run(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) string {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}
	clients := write("clients/index.html", adminPage)
	write("index.html", "<html><body>login</body></html>")

	inj := newTestInjector(t, fakeSession{loggedIn: true})

	summary, err := inj.Run(context.Background(), dir, htmlfix.HTMLFiles(nil, nil), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"clients/index.html"}, summary.Updated)
	assert.Equal(t, []string{"index.html"}, summary.Skipped)
	data, err := os.ReadFile(clients)
	require.NoError(t, err)
	assert.Equal(t, adminPage, string(data), "dry run must not write")

	summary, err = inj.Run(context.Background(), dir, htmlfix.HTMLFiles(nil, nil), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"clients/index.html"}, summary.Updated)

	summary, err = inj.Run(context.Background(), dir, htmlfix.HTMLFiles(nil, nil), false)
	require.NoError(t, err)
	assert.Empty(t, summary.Updated)
	assert.Equal(t, 1, summary.Scanned)
}
