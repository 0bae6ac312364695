package admin

import "strings"

// DefaultPage is the page assumed when a path does not name one
const DefaultPage = "dashboard/index.html"

// LoginPage is where visitors without a session are sent
const LoginPage = "index.html"

// CurrentPath returns the page path relative to the admin folder for a URL
// path such as /site/admin/clients/index.html.
func CurrentPath(urlPath string) string {
	if i := strings.Index(urlPath, "/admin/"); i != -1 {
		if rel := urlPath[i+len("/admin/"):]; rel != "" {
			return rel
		}
		return DefaultPage
	}

	var parts []string
	for _, p := range strings.Split(urlPath, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	for i, p := range parts {
		if p == "admin" && i+1 < len(parts) {
			return strings.Join(parts[i+1:], "/")
		}
	}
	return DefaultPage
}

// BasePath is the prefix that leads from the current page back to the admin root
func BasePath(current string) string {
	if strings.Contains(current, "/") {
		return "../"
	}
	return ""
}

// AssetsPath is the prefix of the shared assets folder next to the admin root
func AssetsPath(current string) string {
	if strings.Contains(current, "/") {
		return "../../assets/"
	}
	return "../assets/"
}

// LogoutTarget is the page shown after logging out from current
func LogoutTarget(current string) string {
	return BasePath(current) + LoginPage
}

// IsActiveLink reports whether href points at the current page.
// Fragment links are never active.
func IsActiveLink(href, current string) bool {
	if strings.HasPrefix(href, "#") {
		return false
	}
	href = strings.TrimPrefix(href, "../")
	href = strings.TrimPrefix(href, "./")
	if i := strings.Index(href, "#"); i != -1 {
		href = href[:i]
	}
	if href == "" {
		return false
	}
	return current == href || strings.HasSuffix(current, "/"+href)
}
