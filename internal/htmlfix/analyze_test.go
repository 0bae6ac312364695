package htmlfix

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeHover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "components/ui/button.tsx", `<button className="hover:bg-red-500 hover:bg-red-500 hover:text-white" />`)
	writeFile(t, root, "components/ui/input.tsx", `<input className="hover:border-gray-400" />`)
	writeFile(t, root, "components/site-header.tsx", `<div className="hover:text-[#00377b] hover:underline" />`)
	writeFile(t, root, "components/question-card.tsx", `<div className="hover:shadow-lg" />`)
	writeFile(t, root, "app/page.tsx", `<Link href="/x" className="hover:underline" />`)
	writeFile(t, root, "lib/util.ts", `const cls = "hover:opacity-80"`)
	writeFile(t, root, "lib/plain.ts", `const x = 1`)
	writeFile(t, root, "node_modules/pkg/button.tsx", `"hover:ignored"`)
	writeFile(t, root, "styles.css", `.a { } /* hover:css */`)

	report, err := AnalyzeHover(root, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"hover:bg-red-500", "hover:text-white"}, report.Buttons)
	assert.Equal(t, []string{"hover:border-gray-400"}, report.Inputs)
	assert.Equal(t, []string{"hover:text-", "hover:underline"}, report.Navigation)
	assert.Equal(t, []string{"hover:shadow-lg"}, report.Cards)
	assert.Equal(t, []string{"hover:underline"}, report.Links)
	assert.Equal(t, []string{"hover:opacity-80"}, report.Other)
	assert.Empty(t, report.Badges)
}

func TestHoverReport_WriteJSON(t *testing.T) {
	report := &HoverReport{
		Buttons:    []string{"hover:a"},
		Links:      []string{},
		Cards:      []string{},
		Inputs:     []string{},
		Navigation: []string{},
		Badges:     []string{},
		Other:      []string{"hover:b"},
	}
	path := filepath.Join(t.TempDir(), ReportFile)
	require.NoError(t, report.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"buttons\": [\n    \"hover:a\"\n  ],")

	var decoded HoverReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"hover:b"}, decoded.Other)
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, "buttons", categorize("components/button-group.tsx", ""))
	assert.Equal(t, "inputs", categorize("components/select.tsx", ""))
	assert.Equal(t, "badges", categorize("components/badge.tsx", ""))
	assert.Equal(t, "navigation", categorize("components/footer.tsx", ""))
	assert.Equal(t, "links", categorize("app/page.tsx", `<a href="/">`))
	assert.Equal(t, "other", categorize("app/page.tsx", "plain"))
}
