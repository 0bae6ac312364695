package admin

import "html/template"

// Item is one sidebar link
type Item struct {
	Href  string // relative to the admin root, or a #fragment
	Label string
	Icon  string
}

// IsHash reports whether the item points at an in-page fragment
func (i Item) IsHash() bool {
	return len(i.Href) > 0 && i.Href[0] == '#'
}

// Section groups sidebar items under a heading
type Section struct {
	Title string
	Items []Item
}

// Menu is the admin sidebar navigation
var Menu = []Section{
	{Title: "IT ADMIN AREA", Items: []Item{{Href: "it-admin/index.html", Label: "IT Admin", Icon: "settings"}}},
	{Title: "ADVOCATE ADMIN", Items: []Item{{Href: "advocates/index.html", Label: "Advocate Admin", Icon: "user-check"}}},
	{Title: "CLIENT", Items: []Item{{Href: "clients/index.html", Label: "Client", Icon: "user-circle"}}},
	{Title: "MARKETING", Items: []Item{{Href: "marketing/index.html", Label: "Marketing", Icon: "trending-up"}}},
	{Title: "OPERATIONS", Items: []Item{{Href: "#operations", Label: "Operations", Icon: "settings"}}},
	{Title: "ADENGINE", Items: []Item{{Href: "adengine/index.html", Label: "AdEngine", Icon: "file-text"}}},
	{Title: "BLOGS", Items: []Item{{Href: "#blogs", Label: "Blogs", Icon: "file-text"}}},
	{Title: "LAW SCHOOL", Items: []Item{{Href: "law-school/index.html", Label: "Law School", Icon: "graduation-cap"}}},
	{Title: "WEB SITE", Items: []Item{{Href: "website/index.html", Label: "Web Site", Icon: "globe"}}},
	{Title: "NEWSLETTER", Items: []Item{{Href: "newsletter/index.html", Label: "Newsletter", Icon: "mail"}}},
	{Title: "USERS", Items: []Item{{Href: "users/index.html", Label: "Users", Icon: "user-circle"}}},
}

// icons holds SVG path markup keyed by icon name
var icons = map[string]string{
	"settings":       `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M10.325 4.317c.426-1.756 2.924-1.756 3.35 0a1.724 1.724 0 002.573 1.066c1.543-.94 3.31.826 2.37 2.37a1.724 1.724 0 001.065 2.572c1.756.426 1.756 2.924 0 3.35a1.724 1.724 0 00-1.066 2.573c.94 1.543-.826 3.31-2.37 2.37a1.724 1.724 0 00-2.572 1.065c-.426 1.756-2.924 1.756-3.35 0a1.724 1.724 0 00-2.573-1.066c-1.543.94-3.31-.826-2.37-2.37a1.724 1.724 0 00-1.065-2.572c-1.756-.426-1.756-2.924 0-3.35a1.724 1.724 0 001.066-2.573c-.94-1.543.826-3.31 2.37-2.37.996.608 2.296.07 2.572-1.065z"/><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M15 12a3 3 0 11-6 0 3 3 0 016 0z"/>`,
	"user-check":     `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M9 12l2 2 4-4m6 2a9 9 0 11-18 0 9 9 0 0118 0z"/>`,
	"user-circle":    `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M5.121 17.804A13.937 13.937 0 0112 16c2.5 0 4.847.655 6.879 1.804M15 10a3 3 0 11-6 0 3 3 0 016 0zm6 2a9 9 0 11-18 0 9 9 0 0118 0z"/>`,
	"trending-up":    `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M13 7h8m0 0v8m0-8l-8 8-4-4-6 6"/>`,
	"file-text":      `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M9 12h6m-6 4h6m2 5H7a2 2 0 01-2-2V5a2 2 0 012-2h5.586a1 1 0 01.707.293l5.414 5.414a1 1 0 01.293.707V19a2 2 0 01-2 2z"/>`,
	"graduation-cap": `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M12 14l9-5-9-5-9 5 9 5z"/><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M12 14l6.16-3.422a12.083 12.083 0 01.665 6.479A11.952 11.952 0 0012 20.055a11.952 11.952 0 00-6.824-2.998 12.078 12.078 0 01.665-6.479L12 14z"/>`,
	"globe":          `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M21 12a9 9 0 01-9 9m9-9a9 9 0 00-9-9m9 9H3m9 9a9 9 0 01-9-9m9 9c1.657 0 3-4.03 3-9s-1.343-9-3-9m0 18c-1.657 0-3-4.03-3-9s1.343-9 3-9m-9 9a9 9 0 019-9"/>`,
	"mail":           `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M3 8l7.89 5.26a2 2 0 002.22 0L21 8M5 19h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v10a2 2 0 002 2z"/>`,
	"log-out":        `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M17 16l4-4m0 0l-4-4m4 4H7m6 4v1a3 3 0 01-3 3H6a3 3 0 01-3-3V7a3 3 0 013-3h4a3 3 0 013 3v1"/>`,
	"menu":           `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M4 6h16M4 12h16M4 18h16"/>`,
	"x":              `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M6 18L18 6M6 6l12 12"/>`,
}

// Icon returns the SVG paths for name, falling back to the settings icon
func Icon(name string) template.HTML {
	if p, ok := icons[name]; ok {
		return template.HTML(p)
	}
	return template.HTML(icons["settings"])
}
