package views

import (
	"bytes"
	"context"
	"fmt"
	gohtml "html"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/theme"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Component(n).Render(context.Background(), &buf))
	return buf.String()
}

// assertInOrder checks each needle occurs in html exactly once and after
// the previous one.
func assertInOrder(t *testing.T, html string, needles ...string) {
	t.Helper()
	pos := 0
	for _, n := range needles {
		assert.Equal(t, 1, strings.Count(html, n), "occurrences of %q", n)
		i := strings.Index(html[pos:], n)
		if !assert.GreaterOrEqual(t, i, 0, "%q out of order", n) {
			return
		}
		pos += i + len(n)
	}
}

func TestServicesRenderOneCardPerEntry(t *testing.T) {
	services := content.Services()
	html := render(t, Services(services, theme.ClassesFor(theme.Light)))

	assert.Equal(t, len(services), strings.Count(html, `data-service="`))
	var needles []string
	for i, s := range services {
		needles = append(needles, fmt.Sprintf(`data-service="%d"`, i), s.Title)
	}
	assertInOrder(t, html, needles...)
}

func TestProjectsRenderOneCardPerEntry(t *testing.T) {
	projects := content.Projects()
	html := render(t, Projects(projects, theme.ClassesFor(theme.Light)))

	assert.Equal(t, len(projects), strings.Count(html, `data-project="`))
	var needles []string
	for i, p := range projects {
		needles = append(needles, fmt.Sprintf(`data-project="%d"`, i), p.Title)
	}
	assertInOrder(t, html, needles...)
	assert.Contains(t, html, "bg-green-100 text-green-700")
	assert.Equal(t, 2, strings.Count(html, "bg-purple-100 text-purple-700"))
	assert.Contains(t, html, "Payment Gateway")
	assert.Contains(t, html, "PostgreSQL")
}

func TestSkillBarsMatchLevels(t *testing.T) {
	skills := content.Skills()
	html := render(t, SkillList(skills, theme.ClassesFor(theme.Light)))

	assert.Equal(t, len(skills), strings.Count(html, `data-skill="`))
	var needles []string
	for i, s := range skills {
		needles = append(needles,
			fmt.Sprintf(`data-skill="%d"`, i),
			gohtml.EscapeString(s.Name),
		)
		assert.Contains(t, html, fmt.Sprintf(`style="width: %d%%"`, s.Level))
	}
	assertInOrder(t, html, needles...)
}

func TestSkillBarClampsOutOfRange(t *testing.T) {
	html := render(t, SkillList([]content.Skill{{Name: "Over", Level: 130}, {Name: "Under", Level: -3}}, theme.ClassesFor(theme.Dark)))
	assert.Contains(t, html, `style="width: 100%"`)
	assert.Contains(t, html, `style="width: 0%"`)
	assert.NotContains(t, html, "130")
}

func TestBodyContainsSectionsInOrder(t *testing.T) {
	html := render(t, Body(NewPage(theme.Light)))
	assertInOrder(t, html,
		`id="home"`,
		`id="about"`,
		`id="services"`,
		`id="portfolio"`,
		`id="contact"`,
	)
	p := content.DefaultProfile()
	assert.Contains(t, html, p.Contact.Email)
	assert.Contains(t, html, p.Contact.GitHub)
	assert.Contains(t, html, p.Contact.LinkedIn)
	assert.Contains(t, html, "Open to opportunities")
}

func TestHeroBackdropLayers(t *testing.T) {
	html := render(t, Hero(NewPage(theme.Light), theme.ClassesFor(theme.Light)))
	backdrop := render(t, heroBackdrop(theme.ClassesFor(theme.Light)))
	assert.Equal(t, 4, strings.Count(backdrop, "rounded-full blur-3xl"))
	assert.Equal(t, 4, strings.Count(backdrop, "animate-bounce"))
	assert.Contains(t, html, "from-red-400/25 to-pink-400/25")
	assert.Contains(t, html, "animate-ping scale-110")
	assert.Contains(t, html, "animate-pulse scale-125")
	assert.Contains(t, html, "rotate-12 scale-95")
	assert.Contains(t, html, "-top-8 -right-8")
	assert.Contains(t, html, "-bottom-8 -left-8")
}

func TestContactFormIsDecorative(t *testing.T) {
	html := render(t, Contact(content.DefaultProfile().Contact, theme.ClassesFor(theme.Light)))
	assert.NotContains(t, html, "action=")
	assert.Contains(t, html, `data-decorative="true"`)
	assert.Contains(t, html, `placeholder="Your Message"`)
}

func TestBodyUsesThemeClasses(t *testing.T) {
	lightHTML := render(t, Body(NewPage(theme.Light)))
	darkHTML := render(t, Body(NewPage(theme.Dark)))

	dc := theme.ClassesFor(theme.Dark)
	lc := theme.ClassesFor(theme.Light)
	assert.Contains(t, darkHTML, dc.SectionBg)
	assert.Contains(t, darkHTML, dc.Track)
	assert.NotContains(t, darkHTML, lc.SectionBg)
	assert.Contains(t, lightHTML, lc.SectionBg)
	assert.NotContains(t, lightHTML, dc.SectionBg)

	roundTrip := render(t, Body(NewPage(theme.Light.Toggle().Toggle())))
	assert.Equal(t, lightHTML, roundTrip)
}

func TestNavHighlightsActiveSection(t *testing.T) {
	s := NewNavState(theme.Light, "tok")
	s.Active = content.SectionServices
	html := render(t, Nav(s))

	tc := theme.ClassesFor(theme.Light)
	assert.Contains(t, html, `data-active="services"`)
	assert.Equal(t, 1, strings.Count(html, "text-orange-600\" data-nav"))
	assert.Contains(t, html, `href="#services" class="`+NavLinkClass(true, tc)+`" data-nav="services" aria-current="true"`)
	assert.Contains(t, html, `href="#about" class="`+NavLinkClass(false, tc)+`" data-nav="about"`)
	assert.Contains(t, html, `name="_csrf" value="tok"`)
	assert.Contains(t, html, `name="return" value="services"`)
	assert.Contains(t, html, `data-icon="moon"`)
}

func TestNavScrolledAndDark(t *testing.T) {
	s := NewNavState(theme.Dark, "")
	s.Scrolled = true
	html := render(t, Nav(s))

	assert.Contains(t, html, theme.ClassesFor(theme.Dark).NavBg)
	assert.Contains(t, html, `data-scrolled="true"`)
	assert.Contains(t, html, `data-icon="sun"`)

	s.Scrolled = false
	html = render(t, Nav(s))
	assert.Contains(t, html, "bg-transparent")
	assert.NotContains(t, html, "backdrop-blur-md")
}

func TestNavLinkClass(t *testing.T) {
	tc := theme.ClassesFor(theme.Dark)
	assert.Contains(t, NavLinkClass(true, tc), "text-orange-600")
	inactive := NavLinkClass(false, tc)
	assert.Contains(t, inactive, tc.TextSecondary)
	assert.Contains(t, inactive, "hover:"+tc.Text)
}

func TestDocument(t *testing.T) {
	cfg := SiteConfig{Name: "Saugat Giri", URL: "https://example.com", Description: "Backend developer"}
	html := render(t, Document(cfg, PageMeta{}, theme.Dark, Nav(NewNavState(theme.Dark, "")), Body(NewPage(theme.Dark))))

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Saugat Giri</title>")
	assert.Contains(t, html, `<link rel="canonical" href="https://example.com/">`)
	assert.Contains(t, html, `src="/public/scrollspy.js"`)
	assert.Contains(t, html, `"@type":"Person"`)
	assert.Contains(t, html, `https://linkedin.com/in/saugat1070`)
	assert.Contains(t, html, theme.ClassesFor(theme.Dark).Bg)
}

func TestMarkdownRendersParagraph(t *testing.T) {
	html := render(t, Markdown("Building **scalable** systems <script>"))
	assert.Contains(t, html, "<p>")
	assert.Contains(t, html, "<strong>scalable</strong>")
	assert.NotContains(t, html, "<script>")
}

func TestErrorPages(t *testing.T) {
	cfg := SiteConfig{Name: "Folio"}
	assert.Contains(t, render(t, NotFound(cfg, theme.Light)), "Page not found | Folio")
	assert.Contains(t, render(t, ServerError(cfg, theme.Dark)), "Something went wrong")
}

func TestPersonJsonLD(t *testing.T) {
	out := PersonJsonLD(SiteConfig{URL: "https://example.com"}, "A", "Dev", "a@example.com", "https://github.com/a", "", "linkedin.com/in/a")
	assert.Contains(t, out, `"email":"mailto:a@example.com"`)
	assert.Contains(t, out, `"sameAs":["https://github.com/a","https://linkedin.com/in/a"]`)
	assert.Contains(t, out, `"url":"https://example.com/"`)
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "http://localhost:3000/", BuildURL("http://localhost:3000"))
	assert.Equal(t, "http://localhost:3000/", BuildURL("http://localhost:3000/"))
	assert.Equal(t, "https://example.com/sitemap.xml", BuildURL("https://example.com", "sitemap.xml"))
	assert.Equal(t, "https://example.com/folio/about/", BuildURL("https://example.com/folio", "about"))
}
