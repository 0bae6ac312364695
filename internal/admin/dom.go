package admin

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/mmcdole/bookvibe/internal/domain"
)

// Element ids the layout reads and writes
const (
	SidebarID          = "admin-sidebar"
	TopBarID           = "admin-top-bar"
	SidebarContainerID = "admin-sidebar-container"
	OverlayID          = "sidebar-overlay"
	MenuIconID         = "menu-icon"
	CloseIconID        = "close-icon"
)

const (
	closedClass = "-translate-x-full"
	hiddenClass = "hidden"
)

// FindByID returns the first element below n with the given id, or nil
func FindByID(n *html.Node, id string) *html.Node {
	var found *html.Node
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if found != nil {
			return
		}
		if node.Type == html.ElementNode && attr(node, "id") == id {
			found = node
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// HasClass reports whether n carries class
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds class to n unless it is already present
func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}
	setAttr(n, "class", strings.TrimSpace(attr(n, "class")+" "+class))
}

// RemoveClass removes every occurrence of class from n
func RemoveClass(n *html.Node, class string) {
	fields := strings.Fields(attr(n, "class"))
	kept := fields[:0]
	for _, c := range fields {
		if c != class {
			kept = append(kept, c)
		}
	}
	setAttr(n, "class", strings.Join(kept, " "))
}

// SetInnerHTML replaces the children of n with the parsed fragment
func SetInnerHTML(n *html.Node, fragment string) error {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), n)
	if err != nil {
		return fmt.Errorf("failed to parse fragment: %w", err)
	}
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nil
}

// ToggleSidebar opens a closed sidebar or closes an open one and returns
// whether it is now open. The overlay and menu/close icons follow when present.
func ToggleSidebar(doc *html.Node) (bool, error) {
	sidebar := FindByID(doc, SidebarContainerID)
	if sidebar == nil {
		return false, fmt.Errorf("%w: #%s", domain.ErrElementNotFound, SidebarContainerID)
	}

	overlay := FindByID(doc, OverlayID)
	menuIcon := FindByID(doc, MenuIconID)
	closeIcon := FindByID(doc, CloseIconID)

	open := !HasClass(sidebar, closedClass)
	if open {
		AddClass(sidebar, closedClass)
		addIf(overlay, hiddenClass)
		removeIf(menuIcon, hiddenClass)
		addIf(closeIcon, hiddenClass)
		return false, nil
	}

	RemoveClass(sidebar, closedClass)
	removeIf(overlay, hiddenClass)
	addIf(menuIcon, hiddenClass)
	removeIf(closeIcon, hiddenClass)
	return true, nil
}

func addIf(n *html.Node, class string) {
	if n != nil {
		AddClass(n, class)
	}
}

func removeIf(n *html.Node, class string) {
	if n != nil {
		RemoveClass(n, class)
	}
}
