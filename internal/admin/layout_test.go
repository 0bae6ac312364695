package admin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks(t *testing.T) {
	sections := Links("clients/index.html")
	require.Len(t, sections, len(Menu))

	byLabel := map[string]Link{}
	for _, s := range sections {
		for _, l := range s.Links {
			byLabel[l.Label] = l
		}
	}

	client := byLabel["Client"]
	assert.Equal(t, "../clients/index.html", client.Href)
	assert.Contains(t, client.Class, activeClass)

	users := byLabel["Users"]
	assert.Equal(t, "../users/index.html", users.Href)
	assert.Contains(t, users.Class, inactiveClass)
	assert.NotContains(t, users.Class, activeClass)

	ops := byLabel["Operations"]
	assert.Equal(t, "#operations", ops.Href)
	assert.Contains(t, ops.Class, inactiveClass)
}

func TestLinks_AdminRoot(t *testing.T) {
	for _, s := range Links("index.html") {
		for _, l := range s.Links {
			assert.False(t, strings.HasPrefix(l.Href, "../"), l.Href)
			assert.NotContains(t, l.Class, activeClass)
		}
	}
}

func TestRenderer_Sidebar(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out, err := r.Sidebar("marketing/index.html")
	require.NoError(t, err)

	assert.Contains(t, out, `href="../dashboard/index.html"`)
	assert.Contains(t, out, `src="../../assets/logo.svg"`)
	assert.Contains(t, out, `id="logout-btn"`)
	assert.Contains(t, out, `data-logout-target="../index.html"`)
	assert.Contains(t, out, "LOG OUT")
	assert.Contains(t, out, `<path stroke-linecap="round"`)
	for _, s := range Menu {
		assert.Contains(t, out, s.Title)
	}
	assert.Equal(t, 1, strings.Count(out, activeClass))
}

func TestRenderer_TopBar(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out, err := r.TopBar("index.html")
	require.NoError(t, err)

	assert.Contains(t, out, `id="sidebar-toggle"`)
	assert.Contains(t, out, `id="menu-icon"`)
	assert.Contains(t, out, `id="close-icon"`)
	assert.Contains(t, out, `src="../assets/logo.svg"`)
	assert.Contains(t, out, "Admin Portal")
}

func TestIcon_Fallback(t *testing.T) {
	assert.Equal(t, Icon("settings"), Icon("does-not-exist"))
	assert.NotEqual(t, Icon("settings"), Icon("mail"))
}
