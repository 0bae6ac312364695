package htmlfix

import (
	"fmt"
	"sort"
	"strings"
)

// RuleSet is an ordered list of rules applied together as one maintenance pass
type RuleSet struct {
	Name        string
	Description string
	Rules       []Rule
	SkipPaths   []string // files whose relative path contains any of these are left alone
}

// Skips reports whether the file at rel is excluded from this set
func (s RuleSet) Skips(rel string) bool {
	for _, p := range s.SkipPaths {
		if p != "" && strings.Contains(rel, p) {
			return true
		}
	}
	return false
}

// Rule set names
const (
	SetColors       = "colors"
	SetAdHover      = "ad-hover"
	SetAdBanners    = "ad-banners"
	SetHoverFixAll  = "hover-fix-all"
	SetHoverPrecise = "hover-precise"
	SetHoverCleanup = "hover-cleanup"
	SetAll          = "all"
)

// PipelineOrder is the order used when every set runs in sequence
var PipelineOrder = []string{
	SetColors,
	SetAdBanners,
	SetAdHover,
	SetHoverFixAll,
	SetHoverPrecise,
	SetHoverCleanup,
}

// Lookup returns the named rule set. bannerSkip configures the ad-banners set.
func Lookup(name string, bannerSkip []string) (RuleSet, error) {
	switch name {
	case SetColors:
		return Colors(), nil
	case SetAdHover:
		return AdHover(), nil
	case SetAdBanners:
		return AdBanners(bannerSkip), nil
	case SetHoverFixAll:
		return HoverFixAll(), nil
	case SetHoverPrecise:
		return HoverPrecise(), nil
	case SetHoverCleanup:
		return HoverCleanup(), nil
	case SetAll:
		return Pipeline(bannerSkip), nil
	default:
		names := append([]string{SetAll}, PipelineOrder...)
		sort.Strings(names)
		return RuleSet{}, fmt.Errorf("unknown rule set %q (known: %s)", name, strings.Join(names, ", "))
	}
}

// Pipeline joins every set in PipelineOrder into one rule set. Running it to a
// fixed point settles rules from later sets that undo earlier ones, so a
// second run over the output changes nothing.
func Pipeline(bannerSkip []string) RuleSet {
	sets := []RuleSet{Colors(), AdBanners(bannerSkip), AdHover(), HoverFixAll(), HoverPrecise(), HoverCleanup()}

	var rules []Rule
	for _, set := range sets {
		for _, r := range set.Rules {
			if len(set.SkipPaths) > 0 {
				r = ExceptPaths(set.SkipPaths, r)
			}
			rules = append(rules, r)
		}
	}
	return RuleSet{
		Name:        SetAll,
		Description: "Every maintenance pass in pipeline order",
		Rules:       rules,
	}
}

// Colors replaces theme color utility classes with their hex values
func Colors() RuleSet {
	return RuleSet{
		Name:        SetColors,
		Description: "Replace primary/secondary/accent color classes with exact hex values",
		Rules: []Rule{
			// primary dark
			Replace("border-primary-dark", `border-primary-dark`, `border-[#001944]`),
			Replace("text-primary-dark", `text-primary-dark`, `text-[#001944]`),
			Replace("bg-primary-dark", `bg-primary-dark`, `bg-[#001944]`),
			Replace("border-primary-20", `border-primary/20`, `border-[#001944]/20`),
			Replace("border-primary-10", `border-primary/10`, `border-[#001944]/10`),
			Replace("border-primary-80", `border-primary/80`, `border-[#001944]/80`),
			Replace("border-primary-60", `border-primary/60`, `border-[#001944]/60`),

			// primary
			Replace("bg-primary", `bg-primary(?![-/])`, `bg-[#00377b]`),
			Replace("text-primary", `text-primary(?![-/])`, `text-[#00377b]`),
			Replace("border-primary", `border-primary(?![-/])`, `border-[#00377b]`),
			Replace("from-primary", `from-primary`, `from-[#00377b]`),
			Replace("to-primary", `to-primary`, `to-[#00377b]`),
			Replace("bg-primary-alpha", `bg-primary/`, `bg-[#00377b]/`),
			Replace("text-primary-alpha", `text-primary/`, `text-[#00377b]/`),
			Replace("border-primary-alpha", `border-primary/`, `border-[#00377b]/`),
			Replace("ring-primary", `ring-primary`, `ring-[#00377b]`),

			// secondary
			Replace("bg-secondary", `bg-secondary(?![-/])`, `bg-[#d67c40]`),
			Replace("text-secondary", `text-secondary(?![-/])`, `text-[#d67c40]`),
			Replace("border-secondary", `border-secondary(?![-/])`, `border-[#d67c40]`),
			Replace("bg-secondary-dark", `bg-secondary-dark`, `bg-[#c26a36]`),
			Replace("hover-bg-secondary-dark", `hover:bg-secondary-dark`, `hover:bg-[#c26a36]`),
			Replace("bg-secondary-alpha", `bg-secondary/`, `bg-[#d67c40]/`),
			Replace("text-secondary-alpha", `text-secondary/`, `text-[#d67c40]/`),
			Replace("border-secondary-alpha", `border-secondary/`, `border-[#d67c40]/`),

			// accent
			Replace("border-accent", `border-accent`, `border-[#f17313]`),
			Replace("text-accent", `text-accent`, `text-[#f17313]`),
			Replace("bg-accent", `bg-accent`, `bg-[#f17313]`),
		},
	}
}

// AdHover removes the hover border effect from advertisement placeholders
func AdHover() RuleSet {
	return RuleSet{
		Name:        SetAdHover,
		Description: "Remove hover effects from advertisement banners",
		Rules: []Rule{
			Replace("hex-border-with-transition", `hover:border-\[#00377b\]/40\s+transition-colors`, ``),
			Replace("theme-border-with-transition", `hover:border-primary/40\s+transition-colors`, ``),
			Replace("hex-border", `hover:border-\[#00377b\]/40`, ``),
		},
	}
}

const topBanner = `    <!-- Top Advertisement Banner -->
    <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-4">
        <div class="bg-gray-50 border-2 border-dashed border-gray-300 rounded-lg flex items-center justify-center h-24 md:h-32 hover:border-primary/40 transition-colors">
            <div class="text-center text-gray-500">
                <div class="text-sm font-medium">Premium Advertisement Space - Top Banner</div>
                <div class="text-xs mt-1">728x90 / 970x250 / Responsive</div>
            </div>
        </div>
    </div>

`

const bottomBanner = `        <!-- Bottom Advertisement Banner -->
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-8">
            <div class="bg-gray-50 border-2 border-dashed border-gray-300 rounded-lg flex items-center justify-center h-32 md:h-40 hover:border-primary/40 transition-colors">
                <div class="text-center text-gray-500">
                    <div class="text-sm font-medium">Advertisement Space - Footer Area</div>
                    <div class="text-xs mt-1">728x90 / 970x250 / Responsive</div>
                </div>
            </div>
        </div>
`

// AdBanners inserts advertisement placeholders after the header and before the footer.
// Pages whose path contains any of skip are left alone.
func AdBanners(skip []string) RuleSet {
	return RuleSet{
		Name:        SetAdBanners,
		Description: "Insert top and bottom advertisement banners",
		SkipPaths:   skip,
		Rules: []Rule{
			InsertOnce("</header>", "Top Advertisement Banner",
				Rewrite("top-banner", `</header>\s*\n\s*<main`, func(Match) string {
					return "</header>\n\n" + topBanner + "<main"
				})),
			InsertOnce("</main>", "Bottom Advertisement Banner",
				Rewrite("bottom-banner", `(\s*)</main>\s*\n\s*<!-- Footer`, func(m Match) string {
					indent := m.Group(1)
					return indent + bottomBanner + "\n" + indent + "</main>\n\n" + indent + "<!-- Footer"
				})),
		},
	}
}

// HoverFixAll removes hover effects from static elements and ensures the
// expected hover classes on buttons, inputs, and links.
func HoverFixAll() RuleSet {
	cardRule := Rewrite("content-card", `class="([^"]*?bg-white[^"]*?border[^"]*?rounded-lg[^"]*?shadow-sm[^"]*?)"`, func(m Match) string {
		if !strings.Contains(m.Text, "question") && !strings.Contains(m.Text, "blog") && !strings.Contains(m.Text, "Card") {
			return m.Text
		}
		if strings.Contains(m.Group(1), "hover:translate-x-1") {
			return m.Text
		}
		return appendClasses(m.Text, " transition-all duration-200 hover:translate-x-1 hover:opacity-90")
	})

	return RuleSet{
		Name:        SetHoverFixAll,
		Description: "Normalize hover effects on buttons, inputs, links and static elements",
		Rules: []Rule{
			// ad banners
			Replace("banner-hex-hover", `(bg-gray-50.*border-dashed.*border-gray-300[^>]*?)hover:border-\[#00377b\]/40[^"]*`, `$1`),
			Replace("banner-theme-hover", `(bg-gray-50.*border-dashed.*border-gray-300[^>]*?)hover:border-primary/40[^"]*`, `$1`),
			// keeps the captured banner classes; only the transition goes
			Replace("banner-transition", `(bg-gray-50.*border-dashed.*border-gray-300[^>]*?)transition-colors(?=\s|")`, `$1`),

			// static text
			Replace("paragraph", `(<p[^>]*?)hover:[^"]*(")`, `$1$2`),
			Replace("heading", `(<h[1-6][^>]*?)hover:[^"]*(")`, `$1$2`),
			Replace("text-span", `(<span[^>]*?class="[^"]*?text-[^"]*?"[^>]*?)hover:[^"]*(")`, `$1$2`),
			Replace("label", `(<label[^>]*?)hover:[^"]*(")`, `$1$2`),
			Replace("badge", `(<span[^>]*?class="[^"]*?badge[^"]*?"[^>]*?)(?!.*href)([^>]*?)hover:[^"]*(")`, `$1$2$3`),

			// interactive elements
			EnsureClass("primary-button", `class="([^"]*?bg-\[#00377b\][^"]*?)"`, `hover:bg-\[#00377b\]/90`, " hover:bg-[#00377b]/90"),
			EnsureClass("secondary-button", `class="([^"]*?bg-\[#d67c40\][^"]*?)"`, `hover:bg-\[#c26a36\]|hover:bg-\[#d67c40\]/80`, " hover:bg-[#c26a36]"),
			EnsureClass("outline-button", `class="([^"]*?border[^"]*?bg-white[^"]*?shadow-xs[^"]*?)"`, `hover:bg-\[#f17313\]|hover:bg-accent`, " hover:bg-[#f17313] hover:text-white"),
			EnsureClass("input", `class="([^"]*?border-2[^"]*?border-gray-300[^"]*?)"`, `hover:border-gray-400`, " hover:border-gray-400"),
			EnsureClass("footer-link", `class="([^"]*?text-white/90[^"]*?)"`, `hover:text-white`, " hover:text-white"),
			EnsureClass("nav-link", `class="([^"]*?text-\[#001944\][^"]*?border-transparent[^"]*?)"`, `hover:text-\[#00377b\]`, " hover:text-[#00377b] hover:border-[#1453a3]/60"),
			EnsureClass("logo-link", `class="([^"]*?flex items-center[^"]*?)"`, `hover:opacity-85`, " hover:opacity-85 transition-opacity"),

			// question and blog listings
			ForPaths([]string{"sawal-jawab", "blogs"}, cardRule),
		},
	}
}

// HoverPrecise targets hover classes by element type: logo links keep their
// opacity effect, static elements lose theirs.
func HoverPrecise() RuleSet {
	return RuleSet{
		Name:        SetHoverPrecise,
		Description: "Element-aware hover cleanup for logos, banners, text, badges, inputs and footer links",
		Rules: []Rule{
			Strip("container-opacity", `(<(div|nav|button|section|header|footer|main)[^>]*?class="[^"]*?)hover:opacity-85[^"]*(")`, []int{1, 3}),
			Strip("button-opacity", `(<(a|button)[^>]*?class="[^"]*?(?:bg-\[#|bg-primary|bg-secondary|bg-gradient)[^"]*?)hover:opacity-85[^"]*(")`, []int{1, 3}),
			Strip("banner-hover", `(bg-gray-50[^>]*?border-dashed[^>]*?border-gray-300[^>]*?)hover:[^"]*(")`, []int{1, 2}),
			Strip("static-text", `(<(p|h[1-6]|label|span)[^>]*?class="[^"]*?)(?<!href=)([^"]*?)hover:[^"]*(")`, []int{1, 3, 4}, "href=", "<a"),
			Strip("static-badge", `(<span[^>]*?class="[^"]*?(?:badge|px-2\.5 py-0\.5)[^"]*?"[^>]*?)(?<!href=)([^>]*?)hover:[^"]*(")`, []int{1, 2, 3}, "href=", "<a"),
			Rewrite("logo-link", `(<a[^>]*?href="[^"]*?"[^>]*?class="[^"]*?flex items-center[^"]*?"[^>]*?>[\s\S]*?<img[^>]*?logo[^>]*?>)`, func(m Match) string {
				if strings.Contains(m.Text, "hover:opacity-85") {
					return m.Text
				}
				return appendClasses(m.Text, " hover:opacity-85 transition-opacity")
			}),
			EnsureClass("form-control", `<(?:input|textarea|select)[^>]*?class="[^"]*?border-2[^"]*?border-gray-300[^"]*?"`, `hover:border-gray-400`, " hover:border-gray-400"),
			EnsureClass("footer-link", `<a[^>]*?class="[^"]*?text-white/90[^"]*?"`, `hover:text-white`, " hover:text-white transition-colors duration-200"),
			Replace("dedupe-opacity", `transition-opacity\s+transition-opacity`, `transition-opacity`),
			Replace("dedupe-colors", `transition-colors\s+transition-colors`, `transition-colors`),
			Replace("dedupe-all", `transition-all\s+transition-all`, `transition-all`),
		},
	}
}

// HoverCleanup removes duplicated hover and transition classes left by earlier passes
func HoverCleanup() RuleSet {
	return RuleSet{
		Name:        SetHoverCleanup,
		Description: "Remove duplicate hover/transition classes and stray hover effects",
		Rules: []Rule{
			Replace("dedupe-text-white", `hover:text-white\s+hover:text-white`, `hover:text-white`),
			Replace("dedupe-colors", `transition-colors\s+transition-colors`, `transition-colors`),
			Replace("dedupe-colors-duration", `transition-colors\s+duration-200\s+transition-colors`, `transition-colors duration-200`),
			Replace("footer-link-order", `hover:text-white\s+transition-colors\s+text-sm\s+hover:text-white\s+transition-colors\s+duration-200`, `hover:text-white transition-colors duration-200 text-sm`),
			Strip("footer-link-opacity", `(<a[^>]*?class="[^"]*?text-white/90[^"]*?)hover:opacity-85[^"]*(")`, []int{1, 2}),
			Strip("footer-element", `(<footer[^>]*?class="[^"]*?)hover:[^"]*(")`, []int{1, 2}),
			Replace("button-accent", `hover:bg-\[#c26a36\]\s+hover:bg-\[#f17313\]`, `hover:bg-[#f17313]`),
			Replace("button-secondary", `hover:bg-\[#d67c40\]\s+hover:bg-\[#c26a36\]`, `hover:bg-[#c26a36]`),
			Replace("dedupe-opacity", `transition-opacity\s+transition-opacity`, `transition-opacity`),
			Replace("dedupe-all", `transition-all\s+transition-all`, `transition-all`),
			Replace("dedupe-shadow", `transition-shadow\s+transition-shadow`, `transition-shadow`),
			Strip("social-link-opacity", `(<a[^>]*?class="[^"]*?flex items-center gap-2[^"]*?text-white/90[^"]*?)hover:opacity-85[^"]*(")`, []int{1, 2}),
			Strip("partner-card", `(<div[^>]*?class="[^"]*?bg-white[^"]*?rounded-lg[^"]*?p-6[^"]*?)hover:shadow-lg[^"]*(")`, []int{1, 2}, "href=", "<a"),
		},
	}
}
