package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/theme"
)

// Document wraps nav and body in the HTML shell.
func Document(cfg SiteConfig, meta PageMeta, mode theme.Mode, nav g.Node, body g.Node) g.Node {
	tc := theme.ClassesFor(mode)
	if meta.Title == "" {
		meta.Title = cfg.Name
	}
	if meta.Description == "" {
		meta.Description = cfg.Description
	}
	if meta.URL == "" {
		meta.URL = BuildURL(cfg.URL)
	}
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	pr := content.DefaultProfile()

	return h.Doctype(
		h.HTML(h.Lang("en"), g.If(mode.IsDark(), h.Class("dark")),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(meta.Title)),
				h.Meta(h.Name("description"), h.Content(meta.Description)),
				h.Link(h.Rel("canonical"), h.Href(meta.URL)),
				h.Meta(g.Attr("property", "og:title"), h.Content(meta.Title)),
				h.Meta(g.Attr("property", "og:description"), h.Content(meta.Description)),
				h.Meta(g.Attr("property", "og:url"), h.Content(meta.URL)),
				h.Meta(g.Attr("property", "og:type"), h.Content(meta.OGType)),
				h.Link(h.Rel("icon"), h.Href("/favicon.svg"), h.Type("image/svg+xml")),
				h.Link(h.Rel("stylesheet"), h.Href("/public/styles.css")),
				h.Script(h.Type("application/ld+json"),
					g.Raw(PersonJsonLD(cfg, pr.Name, pr.Role, pr.Contact.Email, pr.Contact.GitHub, pr.Contact.LinkedIn)),
				),
				h.Script(h.Src("/public/scrollspy.js"), h.Defer()),
			),
			h.Body(h.Class(classes("min-h-screen scroll-smooth transition-all duration-500", tc.Bg)),
				nav,
				g.El("main", body),
			),
		),
	)
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig, mode theme.Mode) g.Node {
	return errorPage(cfg, mode, "Page not found", "There is nothing at this address.")
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig, mode theme.Mode) g.Node {
	return errorPage(cfg, mode, "Something went wrong", "The page could not be rendered. Try again in a moment.")
}

func errorPage(cfg SiteConfig, mode theme.Mode, title, message string) g.Node {
	tc := theme.ClassesFor(mode)
	body := h.Section(h.Class("min-h-screen flex items-center justify-center"),
		h.Div(h.Class(classes(tc.CardBg, "rounded-2xl p-10 shadow-xl border text-center", tc.Border)),
			h.H1(h.Class(classes("text-4xl font-bold mb-4", tc.Text)), g.Text(title)),
			h.P(h.Class(classes("mb-6", tc.TextSecondary)), g.Text(message)),
			h.A(h.Href("/"), h.Class("text-orange-600 font-medium"), g.Text("Back home")),
		),
	)
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				g.El("title", g.Text(title+" | "+cfg.Name)),
				h.Meta(h.Name("robots"), h.Content("noindex")),
				h.Link(h.Rel("stylesheet"), h.Href("/public/styles.css")),
			),
			h.Body(h.Class(classes("min-h-screen", tc.Bg)), body),
		),
	)
}
