package htmlfix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{
		"index.html",
		"UPPER.HTML",
		"notes.txt",
		"blogs/post.html",
		"blogs/draft-post.html",
		"node_modules/lib/index.html",
		"Vendor/x.html",
		".git/hooks/index.html",
	} {
		writeFile(t, root, rel, "x")
	}

	files, err := Walk(root, HTMLFiles([]string{"node_modules", "vendor"}, []string{"**/draft-*.html"}))
	require.NoError(t, err)

	assert.Equal(t, []string{"UPPER.HTML", "blogs/post.html", "index.html"}, files)
}

func TestWalk_AllExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.ts", "x")
	writeFile(t, root, "b.md", "x")

	files, err := Walk(root, WalkOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.ts", "b.md"}, files)
}

func TestWalk_MissingRoot(t *testing.T) {
	_, err := Walk("/nonexistent/site/root", HTMLFiles(nil, nil))
	assert.Error(t, err)
}
