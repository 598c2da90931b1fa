package views

import (
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/theme"
)

// SiteConfig holds the site-wide settings templates need.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string
	OGType      string
}

// NavState is what the navigation bar depends on. It is rendered fresh on
// every request and on every scroll update.
type NavState struct {
	Brand     string
	Items     []content.NavItem
	Active    string
	Scrolled  bool
	Theme     theme.Mode
	CSRFToken string
}

// Page is the data for the section body below the nav. It depends only on
// the content and the theme, so it can be rendered once per theme.
type Page struct {
	Profile  content.Profile
	Services []content.Service
	Projects []content.Project
	Skills   []content.Skill
	Theme    theme.Mode
}

// NewPage assembles a Page from the shipped content tables.
func NewPage(mode theme.Mode) Page {
	return Page{
		Profile:  content.DefaultProfile(),
		Services: content.Services(),
		Projects: content.Projects(),
		Skills:   content.Skills(),
		Theme:    mode,
	}
}

// NewNavState returns the nav for a fresh page load.
func NewNavState(mode theme.Mode, csrfToken string) NavState {
	return NavState{
		Brand:     content.DefaultProfile().Brand,
		Items:     content.NavItems(),
		Active:    content.SectionHome,
		Theme:     mode,
		CSRFToken: csrfToken,
	}
}
