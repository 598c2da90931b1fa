package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/theme"
)

// NavID is the element id the measuring script swaps on scroll updates.
const NavID = "site-nav"

// NavLinkClass returns the classes for a nav link, highlighted when active.
func NavLinkClass(active bool, tc theme.Classes) string {
	if active {
		return "text-sm font-medium transition-colors duration-200 text-orange-600"
	}
	return classes("text-sm font-medium transition-colors duration-200", tc.TextSecondary, "hover:"+tc.Text)
}

// NavBarClass returns the classes for the nav bar, opaque once scrolled.
func NavBarClass(scrolled bool, tc theme.Classes) string {
	base := "fixed top-0 w-full z-50 transition-all duration-500"
	if scrolled {
		return classes(base, tc.NavBg, "backdrop-blur-md shadow-lg")
	}
	return classes(base, "bg-transparent")
}

// Nav renders the navigation bar.
func Nav(s NavState) g.Node {
	tc := theme.ClassesFor(s.Theme)

	links := make([]g.Node, 0, len(s.Items))
	for _, item := range s.Items {
		active := item.ID == s.Active
		links = append(links, h.A(
			h.Href("#"+item.ID),
			h.Class(NavLinkClass(active, tc)),
			g.Attr("data-nav", item.ID),
			g.If(active, g.Attr("aria-current", "true")),
			g.Text(item.Name),
		))
	}

	toggleIcon := content.IconMoon
	if s.Theme.IsDark() {
		toggleIcon = content.IconSun
	}

	return h.Nav(
		h.ID(NavID),
		h.Class(NavBarClass(s.Scrolled, tc)),
		g.Attr("data-active", s.Active),
		g.Attr("data-scrolled", strconv.FormatBool(s.Scrolled)),
		g.Attr("data-theme", s.Theme.String()),
		h.Div(h.Class("max-w-7xl mx-auto px-6 py-4"),
			h.Div(h.Class("flex justify-between items-center"),
				h.Div(h.Class(classes("text-2xl font-bold", tc.Text)),
					icon(content.IconTerminal, "inline w-8 h-8 mr-2 text-orange-600"),
					g.Text(s.Brand),
				),
				h.Div(h.Class("flex items-center space-x-8"),
					h.Div(h.Class("hidden md:flex space-x-8"), g.Group(links)),
					themeToggle(s, tc, toggleIcon),
				),
			),
		),
	)
}

func themeToggle(s NavState, tc theme.Classes, glyph content.Icon) g.Node {
	return g.El("form",
		h.Method("post"),
		h.Action("/theme/"),
		h.Class("inline"),
		h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(s.CSRFToken)),
		h.Input(h.Type("hidden"), h.Name("return"), h.Value(s.Active)),
		h.Button(
			h.Type("submit"),
			g.Attr("aria-label", "Toggle theme"),
			h.Class(classes("p-2 rounded-lg transition-all duration-200", tc.CardBg, tc.CardHover, "shadow-lg")),
			icon(glyph, "w-5 h-5 text-orange-600"),
		),
	)
}
