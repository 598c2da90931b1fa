package views

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a gomponents node to the templ.Component render contract.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// BuildURL joins path segments onto a base URL. The result always has a
// path; directory-like paths end in a slash, file names such as
// sitemap.xml do not.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && path.Ext(u.Path) == "" && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// classes joins non-empty class fragments with single spaces.
func classes(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// PersonJsonLD produces a Schema.org Person JSON-LD block for the page owner.
func PersonJsonLD(cfg SiteConfig, name, role, email string, sameAs ...string) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     name,
		"jobTitle": role,
		"url":      BuildURL(cfg.URL),
	}
	if email != "" {
		data["email"] = "mailto:" + email
	}
	var links []string
	for _, s := range sameAs {
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
			s = "https://" + s
		}
		links = append(links, s)
	}
	if len(links) > 0 {
		data["sameAs"] = links
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
