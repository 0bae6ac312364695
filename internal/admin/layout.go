package admin

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	linkBase      = "flex items-center gap-3 px-3 py-2.5 rounded-lg text-sm font-medium transition-colors"
	activeClass   = "bg-[#00377b] text-white"
	inactiveClass = "text-gray-700 hover:bg-gray-100"
)

const sidebarTemplate = `
<div class="mb-6 pb-6 border-b">
    <a href="{{.Base}}dashboard/index.html" class="flex items-center gap-3 hover:opacity-85 transition-opacity">
        <img src="{{.Assets}}logo.svg" alt="AdvocateKhoj" class="h-8 w-auto">
        <div>
            <span class="text-lg font-bold text-gray-900">AdvocateKhoj</span>
            <p class="text-xs text-gray-500">Admin Panel</p>
        </div>
    </a>
</div>
<nav class="space-y-6">
{{- range .Sections}}
    <div>
        <h3 class="text-xs font-semibold text-gray-500 uppercase tracking-wider mb-2 px-3">{{.Title}}</h3>
        <div class="space-y-1">
        {{- range .Links}}
            <a href="{{.Href}}" class="{{.Class}}">
                <svg class="w-4 h-4" fill="none" stroke="currentColor" viewBox="0 0 24 24">{{.Icon}}</svg>
                {{.Label}}
            </a>
        {{- end}}
        </div>
    </div>
{{- end}}
</nav>
<div class="mt-6 pt-6 border-t">
    <button id="logout-btn" data-logout-target="{{.Logout}}" class="w-full flex items-center gap-3 px-3 py-2.5 text-sm font-medium text-red-600 hover:text-red-700 hover:bg-red-50 border border-red-200 rounded-lg transition-colors">
        <svg class="w-4 h-4" fill="none" stroke="currentColor" viewBox="0 0 24 24">{{icon "log-out"}}</svg>
        LOG OUT
    </button>
</div>
`

const topBarTemplate = `
<div class="flex items-center justify-between px-4 py-3">
    <div class="flex items-center gap-4">
        <button id="sidebar-toggle" class="lg:hidden p-2 rounded-lg hover:bg-gray-100 transition-colors">
            <svg id="menu-icon" class="w-5 h-5 text-gray-600" fill="none" stroke="currentColor" viewBox="0 0 24 24">{{icon "menu"}}</svg>
            <svg id="close-icon" class="w-5 h-5 text-gray-600 hidden" fill="none" stroke="currentColor" viewBox="0 0 24 24">{{icon "x"}}</svg>
        </button>
        <img src="{{.Assets}}logo.svg" alt="AdvocateKhoj" class="h-10 w-auto">
    </div>
    <div class="flex items-center gap-3">
        <span class="text-sm text-gray-600 hidden sm:block">Admin Portal</span>
    </div>
</div>
`

// Renderer produces the sidebar and top bar markup for an admin page
type Renderer struct {
	sidebar *template.Template
	topBar  *template.Template
}

// NewRenderer parses the layout templates
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{"icon": Icon}

	sidebar, err := template.New("sidebar").Funcs(funcs).Parse(sidebarTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sidebar template: %w", err)
	}
	topBar, err := template.New("topbar").Funcs(funcs).Parse(topBarTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse top bar template: %w", err)
	}
	return &Renderer{sidebar: sidebar, topBar: topBar}, nil
}

// Link is a resolved sidebar link
type Link struct {
	Href  string
	Class string
	Icon  template.HTML
	Label string
}

// NavSection is a resolved menu section
type NavSection struct {
	Title string
	Links []Link
}

type pageView struct {
	Base     string
	Assets   string
	Logout   string
	Sections []NavSection
}

// Links resolves the menu for the page at current: hrefs gain the base path
// and the link for the current page gets the active classes.
func Links(current string) []NavSection {
	base := BasePath(current)
	sections := make([]NavSection, 0, len(Menu))
	for _, s := range Menu {
		view := NavSection{Title: s.Title}
		for _, item := range s.Items {
			link := Link{Href: item.Href, Icon: Icon(item.Icon), Label: item.Label}
			switch {
			case item.IsHash():
				link.Class = linkBase + " " + inactiveClass
			case IsActiveLink(item.Href, current):
				link.Href = base + item.Href
				link.Class = linkBase + " " + activeClass
			default:
				link.Href = base + item.Href
				link.Class = linkBase + " " + inactiveClass
			}
			view.Links = append(view.Links, link)
		}
		sections = append(sections, view)
	}
	return sections
}

func (r *Renderer) view(current string) pageView {
	return pageView{
		Base:     BasePath(current),
		Assets:   AssetsPath(current),
		Logout:   LogoutTarget(current),
		Sections: Links(current),
	}
}

// Sidebar renders the sidebar contents for the page at current
func (r *Renderer) Sidebar(current string) (string, error) {
	var buf bytes.Buffer
	if err := r.sidebar.Execute(&buf, r.view(current)); err != nil {
		return "", fmt.Errorf("failed to render sidebar: %w", err)
	}
	return buf.String(), nil
}

// TopBar renders the top bar contents for the page at current
func (r *Renderer) TopBar(current string) (string, error) {
	var buf bytes.Buffer
	if err := r.topBar.Execute(&buf, r.view(current)); err != nil {
		return "", fmt.Errorf("failed to render top bar: %w", err)
	}
	return buf.String(), nil
}
