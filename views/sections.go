package views

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/theme"
)

// Body renders every section below the nav, in page order.
func Body(p Page) g.Node {
	tc := theme.ClassesFor(p.Theme)
	return g.Group([]g.Node{
		Hero(p, tc),
		About(p, tc),
		Services(p.Services, tc),
		Projects(p.Projects, tc),
		Contact(p.Profile.Contact, tc),
		SiteFooter(p.Profile, tc),
		availabilityBadge(p.Profile, tc),
	})
}

func sectionHeading(title, subtitle string, tc theme.Classes) g.Node {
	return h.Div(h.Class("text-center mb-16"),
		h.H2(h.Class(classes("text-4xl lg:text-5xl font-bold mb-4", tc.Text)), g.Text(title)),
		h.Div(h.Class(classes("w-20 h-1 bg-orange-600 mx-auto", when(subtitle != "", "mb-6")))),
		g.If(subtitle != "",
			h.P(h.Class(classes("text-xl max-w-3xl mx-auto", tc.TextSecondary)), g.Text(subtitle)),
		),
	)
}

// when returns s if cond holds.
func when(cond bool, s string) string {
	if cond {
		return s
	}
	return ""
}

func card(tc theme.Classes, extra string, children ...g.Node) g.Node {
	return h.Div(append([]g.Node{
		h.Class(classes(tc.CardBg, "backdrop-blur-sm rounded-2xl p-6 shadow-xl border", tc.Border, extra)),
	}, children...)...)
}

// Hero renders the landing section.
func Hero(p Page, tc theme.Classes) g.Node {
	pr := p.Profile

	focus := make([]g.Node, 0, len(pr.Focus))
	for _, f := range pr.Focus {
		focus = append(focus, h.Div(h.Class("flex items-center space-x-3"),
			icon(f.Icon, "w-5 h-5 text-orange-600"),
			h.Span(h.Class(tc.TextSecondary), g.Text(f.Label)),
		))
	}

	chipPos := []string{
		"-top-4 -left-4 from-blue-500 to-purple-600",
		"-bottom-4 -right-4 from-green-500 to-teal-600",
		"top-1/2 -left-6 from-yellow-500 to-orange-600",
	}
	chips := make([]g.Node, 0, len(pr.TechChips))
	for i, chip := range pr.TechChips {
		pos := chipPos[i%len(chipPos)]
		chips = append(chips, h.Div(
			h.Class(classes("absolute bg-gradient-to-r text-white px-3 py-1 rounded-full text-xs font-medium shadow-lg animate-pulse", pos)),
			g.Text(chip),
		))
	}

	return h.Section(h.ID(content.SectionHome), h.Class("min-h-screen flex items-center justify-center relative overflow-hidden"),
		heroBackdrop(tc),
		h.Div(h.Class("max-w-7xl mx-auto px-6 grid lg:grid-cols-3 gap-12 items-center relative z-10"),
			h.Div(h.Class("lg:col-span-1 space-y-8 animate-fade-in"),
				h.Div(h.Class("space-y-6"),
					h.H1(h.Class(classes("text-6xl lg:text-7xl font-bold leading-tight", tc.Text)), g.Text("Hello.")),
					h.Div(h.Class("w-16 h-1 bg-gradient-to-r from-orange-600 to-red-600")),
					h.Div(h.Class("space-y-2"),
						h.P(h.Class(classes("text-xl font-medium", tc.TextSecondary)), g.Textf("I'm %s", pr.Name)),
						h.H2(h.Class(classes("text-2xl lg:text-3xl font-bold", tc.Text)), g.Text(pr.Role)),
					),
				),
				card(tc, "",
					h.Div(h.Class("flex items-center space-x-3 mb-3"),
						icon(content.IconGraduation, "w-6 h-6 text-orange-600"),
						h.H3(h.Class(classes("text-lg font-semibold", tc.Text)), g.Text("Currently Studying")),
					),
					h.P(h.Class(classes("text-sm", tc.TextSecondary)), g.Text(pr.Studying)),
				),
				rotatingBadge(pr.Badge, tc),
			),
			h.Div(h.Class("lg:col-span-1 relative flex justify-center"),
				h.Div(h.Class("relative w-full max-w-md"),
					h.Div(h.Class("absolute inset-0 bg-gradient-to-br from-orange-400/30 via-red-400/20 to-amber-400/30 rounded-3xl blur-3xl transform rotate-6 scale-110")),
					h.Div(h.Class("absolute inset-0 bg-gradient-to-tl from-red-400/25 via-orange-400/15 to-yellow-400/25 rounded-3xl blur-2xl transform -rotate-3 scale-105")),
					h.Div(h.Class("absolute inset-0 bg-gradient-to-br from-amber-400/20 via-orange-400/10 to-red-400/20 rounded-3xl blur-xl transform rotate-12 scale-95")),
					h.Div(h.Class("absolute inset-0 rounded-full border-2 border-orange-400/30 animate-ping scale-110")),
					h.Div(h.Class("absolute inset-0 rounded-full border border-red-400/20 animate-pulse scale-125 delay-500")),
					h.Div(h.Class("relative transform hover:scale-105 transition-all duration-500"),
						h.Div(h.Class("absolute inset-0 bg-gradient-to-br from-orange-500/20 to-red-500/20 rounded-3xl blur-lg")),
						h.Div(h.Class("relative bg-gradient-to-br from-white/10 to-white/5 backdrop-blur-sm rounded-3xl p-4 shadow-2xl border border-white/20"),
							h.Img(h.Src(pr.Image), h.Alt(pr.ImageAlt), h.Class("w-full h-auto object-cover rounded-2xl shadow-xl")),
							h.Div(h.Class("absolute top-6 right-6 bg-gradient-to-r from-orange-600 to-red-600 text-white px-4 py-2 rounded-full text-sm font-medium shadow-lg animate-bounce"),
								h.Div(h.Class("flex items-center space-x-2"),
									h.Div(h.Class("w-2 h-2 bg-white rounded-full animate-pulse")),
									h.Span(g.Text("Student Dev")),
								),
							),
							g.Group(chips),
						),
					),
					h.Div(h.Class("absolute -top-8 -right-8 w-16 h-16 bg-gradient-to-br from-orange-400/40 to-red-400/40 rounded-full blur-xl animate-bounce delay-1000")),
					h.Div(h.Class("absolute -bottom-8 -left-8 w-20 h-20 bg-gradient-to-br from-amber-400/30 to-orange-400/30 rounded-full blur-xl animate-bounce delay-500")),
				),
			),
			h.Div(h.Class("lg:col-span-1 space-y-8 animate-fade-in"),
				h.Div(h.Class("space-y-6"),
					h.P(h.Class(classes("text-lg leading-relaxed", tc.TextSecondary)), g.Text(pr.Intro)),
					card(tc, "",
						h.H3(h.Class(classes("text-lg font-semibold mb-4", tc.Text)), g.Text("Current Focus")),
						h.Div(h.Class("space-y-3"), g.Group(focus)),
					),
				),
				h.A(
					h.Href("#"+content.SectionContact),
					h.Class(classes(tc.Button, "px-8 py-4 rounded-lg font-medium transition-all duration-200 inline-flex items-center group shadow-xl hover:shadow-2xl transform hover:scale-105")),
					g.Text("Let's Connect"),
					icon(content.IconArrowRight, "w-5 h-5 ml-2 group-hover:translate-x-1 transition-transform"),
				),
			),
		),
	)
}

func heroBackdrop(tc theme.Classes) g.Node {
	return h.Div(h.Class("absolute inset-0 overflow-hidden"),
		h.Div(h.Class("absolute top-20 left-10 w-72 h-72 bg-gradient-to-br from-orange-400/30 to-red-400/30 rounded-full blur-3xl animate-pulse")),
		h.Div(h.Class("absolute bottom-20 right-10 w-96 h-96 bg-gradient-to-br from-amber-400/20 to-orange-400/20 rounded-full blur-3xl animate-pulse delay-1000")),
		h.Div(h.Class("absolute top-1/2 right-20 w-64 h-64 bg-gradient-to-br from-red-400/25 to-pink-400/25 rounded-full blur-3xl animate-pulse delay-500")),
		h.Div(h.Class("absolute bottom-40 left-20 w-80 h-80 bg-gradient-to-br from-yellow-400/20 to-orange-400/20 rounded-full blur-3xl animate-pulse delay-700")),
		h.Div(h.Class("absolute top-32 right-32 w-4 h-4 bg-orange-500/60 rotate-45 animate-bounce delay-300")),
		h.Div(h.Class("absolute bottom-32 left-32 w-6 h-6 bg-red-500/60 rounded-full animate-bounce delay-700")),
		h.Div(h.Class("absolute top-1/3 left-1/4 w-3 h-3 bg-amber-500/60 rotate-45 animate-bounce delay-1000")),
		h.Div(h.Class("absolute bottom-1/3 right-1/4 w-5 h-5 bg-orange-600/60 rounded-full animate-bounce delay-500")),
		h.Div(h.Class("absolute inset-0 opacity-10"),
			h.Div(
				h.Class("absolute inset-0"),
				g.Attr("style", fmt.Sprintf("background-image: radial-gradient(circle at 1px 1px, %s 1px, transparent 0); background-size: 50px 50px", tc.Dots)),
			),
		),
	)
}

func rotatingBadge(text string, tc theme.Classes) g.Node {
	return h.Div(h.Class("flex justify-start"),
		h.Div(h.Class("rotating-badge relative"),
			g.El("svg", h.Class("w-32 h-32"), g.Attr("viewBox", "0 0 120 120"),
				g.El("defs",
					g.El("path", h.ID("circle"), g.Attr("d", "M 60, 60 m -40, 0 a 40,40 0 1,1 80,0 a 40,40 0 1,1 -80,0")),
				),
				g.El("text", h.Class(classes("text-xs font-medium", tc.BadgeFill)),
					g.El("textPath", g.Attr("href", "#circle"), g.Attr("startOffset", "0%"), g.Text(text)),
				),
			),
			h.Div(h.Class("absolute inset-0 flex items-center justify-center"),
				h.Div(h.Class("w-3 h-3 bg-orange-600 rounded-full animate-pulse")),
			),
		),
	)
}

// About renders the biography, stat tiles and skill bars.
func About(p Page, tc theme.Classes) g.Node {
	pr := p.Profile

	bio := make([]g.Node, 0, len(pr.Bio))
	for _, para := range pr.Bio {
		bio = append(bio, h.Div(h.Class(classes("text-lg leading-relaxed", tc.TextSecondary)), Markdown(para)))
	}

	stats := make([]g.Node, 0, len(pr.Stats))
	for _, s := range pr.Stats {
		stats = append(stats, h.Div(h.Class(classes("text-center p-6 rounded-xl shadow-lg", tc.CardBg)),
			h.Div(h.Class("text-3xl font-bold text-orange-600 mb-2"), g.Text(s.Value)),
			h.Div(h.Class(tc.TextSecondary), g.Text(s.Label)),
		))
	}

	return h.Section(h.ID(content.SectionAbout), h.Class(classes("py-20", tc.SectionBg)),
		h.Div(h.Class("max-w-7xl mx-auto px-6"),
			sectionHeading("About Me", "", tc),
			h.Div(h.Class("grid lg:grid-cols-2 gap-12 items-center"),
				h.Div(h.Class("space-y-6"),
					g.Group(bio),
					h.Div(h.Class("grid grid-cols-2 gap-6 pt-6"), g.Group(stats)),
				),
				h.Div(h.Class("space-y-6"),
					h.H3(h.Class(classes("text-2xl font-bold mb-6", tc.Text)), g.Text("Technical Skills")),
					SkillList(p.Skills, tc),
				),
			),
		),
	)
}

// SkillList renders one progress bar per skill, in order.
func SkillList(skills []content.Skill, tc theme.Classes) g.Node {
	bars := make([]g.Node, 0, len(skills))
	for i, s := range skills {
		bars = append(bars, h.Div(h.Class("space-y-2"), g.Attr("data-skill", strconv.Itoa(i)),
			h.Div(h.Class(classes("flex justify-between", tc.TextSecondary)),
				h.Span(h.Class("font-medium"), g.Text(s.Name)),
				h.Span(g.Textf("%d%%", s.Width())),
			),
			h.Div(h.Class(classes("w-full rounded-full h-2", tc.Track)),
				h.Div(
					h.Class("bg-gradient-to-r from-orange-500 to-red-500 h-2 rounded-full transition-all duration-1000"),
					g.Attr("style", fmt.Sprintf("width: %d%%", s.Width())),
				),
			),
		))
	}
	return g.Group(bars)
}

// Services renders one card per service, in order.
func Services(services []content.Service, tc theme.Classes) g.Node {
	cards := make([]g.Node, 0, len(services))
	for i, s := range services {
		cards = append(cards, h.Div(
			g.Attr("data-service", strconv.Itoa(i)),
			h.Class(classes(tc.CardBg, "p-8 rounded-xl", tc.CardHover, "transition-all duration-300 group hover:transform hover:scale-105 shadow-lg hover:shadow-xl")),
			h.Div(h.Class("text-orange-600 mb-6 group-hover:scale-110 transition-transform duration-300"), icon(s.Icon, "w-8 h-8")),
			h.H3(h.Class(classes("text-xl font-bold mb-4", tc.Text)), g.Text(s.Title)),
			h.P(h.Class(classes("leading-relaxed", tc.TextSecondary)), g.Text(s.Description)),
		))
	}
	return h.Section(h.ID(content.SectionServices), h.Class("py-20"),
		h.Div(h.Class("max-w-7xl mx-auto px-6"),
			sectionHeading("What I Do", "Backend development services I offer as a student developer", tc),
			h.Div(h.Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"), g.Group(cards)),
		),
	)
}

// Projects renders one card per project, in order.
func Projects(projects []content.Project, tc theme.Classes) g.Node {
	cards := make([]g.Node, 0, len(projects))
	for i, p := range projects {
		cards = append(cards, projectCard(i, p, tc))
	}
	return h.Section(h.ID(content.SectionPortfolio), h.Class(classes("py-20", tc.SectionBg)),
		h.Div(h.Class("max-w-7xl mx-auto px-6"),
			sectionHeading("My Projects", "Real-world projects I've built while learning and growing as a developer", tc),
			h.Div(h.Class("grid lg:grid-cols-3 gap-8"), g.Group(cards)),
		),
	)
}

func projectCard(i int, p content.Project, tc theme.Classes) g.Node {
	features := make([]g.Node, 0, len(p.Features))
	for _, f := range p.Features {
		features = append(features, h.Div(h.Class("flex items-center space-x-2"),
			icon(content.IconStar, "w-3 h-3 text-orange-600"),
			h.Span(h.Class(classes("text-xs", tc.TextSecondary)), g.Text(f)),
		))
	}
	tech := make([]g.Node, 0, len(p.Tech))
	for _, t := range p.Tech {
		tech = append(tech, h.Span(h.Class("bg-orange-100 text-orange-700 px-2 py-1 rounded-full text-xs font-medium"), g.Text(t)))
	}
	return h.Div(
		g.Attr("data-project", strconv.Itoa(i)),
		h.Class(classes(tc.CardBg, "rounded-xl overflow-hidden hover:transform hover:scale-105 transition-all duration-300 group shadow-lg hover:shadow-xl")),
		h.Div(h.Class("p-8"),
			h.Div(h.Class("flex items-center justify-between mb-6"),
				h.Div(h.Class("text-orange-600 group-hover:scale-110 transition-transform duration-300"), icon(p.Icon, "w-8 h-8")),
				h.Span(h.Class(classes("px-3 py-1 rounded-full text-sm font-medium", p.Status.BadgeClass())), g.Text(string(p.Status))),
			),
			h.H3(h.Class(classes("text-2xl font-bold mb-3", tc.Text)), g.Text(p.Title)),
			h.P(h.Class(classes("mb-6 leading-relaxed", tc.TextSecondary)), g.Text(p.Description)),
			h.Div(h.Class("space-y-4"),
				h.Div(
					h.H4(h.Class(classes("text-sm font-semibold mb-2", tc.Text)), g.Text("Key Features:")),
					h.Div(h.Class("grid grid-cols-2 gap-2"), g.Group(features)),
				),
				h.Div(
					h.H4(h.Class(classes("text-sm font-semibold mb-2", tc.Text)), g.Text("Technologies:")),
					h.Div(h.Class("flex flex-wrap gap-2"), g.Group(tech)),
				),
			),
		),
	)
}

// Contact renders the contact identifiers and the form. The form has no
// action; scrollspy.js swallows its submit event.
func Contact(c content.Contact, tc theme.Classes) g.Node {
	field := classes("w-full", tc.Input, "rounded-lg px-4 py-3 focus:outline-none focus:border-orange-400 transition-colors duration-200")
	return h.Section(h.ID(content.SectionContact), h.Class("py-20"),
		h.Div(h.Class("max-w-7xl mx-auto px-6"),
			sectionHeading("Let's Connect", "Interested in collaborating or have a project idea? Let's discuss!", tc),
			h.Div(h.Class("max-w-4xl mx-auto"),
				h.Div(h.Class("grid lg:grid-cols-2 gap-12"),
					h.Div(h.Class("space-y-8"),
						contactLine(content.IconMail, "Email", c.Email, tc),
						contactLine(content.IconGithub, "GitHub", c.GitHub, tc),
						contactLine(content.IconLinkedin, "LinkedIn", c.LinkedIn, tc),
					),
					g.El("form", h.Class("space-y-6"), g.Attr("data-decorative", "true"),
						h.Div(h.Input(h.Type("text"), h.Placeholder("Your Name"), h.Class(field))),
						h.Div(h.Input(h.Type("email"), h.Placeholder("Your Email"), h.Class(field))),
						h.Div(h.Textarea(h.Rows("5"), h.Placeholder("Your Message"), h.Class(classes(field, "resize-none")))),
						h.Button(h.Type("submit"), h.Class("w-full bg-orange-600 hover:bg-orange-700 text-white py-3 rounded-lg font-medium transition-colors duration-200"), g.Text("Send Message")),
					),
				),
			),
		),
	)
}

func contactLine(glyph content.Icon, label, value string, tc theme.Classes) g.Node {
	return h.Div(h.Class("flex items-center space-x-4"),
		h.Div(h.Class("bg-orange-600 p-3 rounded-lg"), icon(glyph, "w-6 h-6 text-white")),
		h.Div(
			h.H3(h.Class(classes("text-lg font-semibold", tc.Text)), g.Text(label)),
			h.P(h.Class(tc.TextSecondary), g.Text(value)),
		),
	)
}

// SiteFooter renders the page footer.
func SiteFooter(pr content.Profile, tc theme.Classes) g.Node {
	return h.Footer(h.Class(classes("py-8 border-t", tc.FooterBg, tc.Border)),
		h.Div(h.Class("max-w-7xl mx-auto px-6 text-center"),
			h.P(h.Class(tc.TextSecondary), g.Text(pr.Footer)),
		),
	)
}

func availabilityBadge(pr content.Profile, tc theme.Classes) g.Node {
	return h.Div(h.Class("fixed bottom-8 right-8 z-40"),
		h.Div(h.Class(classes(tc.CardBg, "backdrop-blur-sm rounded-full p-4 shadow-lg border", tc.Border)),
			h.Div(h.Class("flex items-center space-x-2"),
				h.Div(h.Class("w-3 h-3 bg-green-500 rounded-full animate-pulse")),
				h.Span(h.Class(classes("text-sm font-medium", tc.TextSecondary)), g.Text(pr.Available)),
			),
		),
	)
}
