package folio

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/scrollspy"
	"github.com/eringen/folio/views"
)

func (a *App) handleHome(c echo.Context) error {
	mode := themeFor(c)
	nav := views.NewNavState(mode, CsrfToken(c))
	if s := c.QueryParam("section"); slices.Contains(content.Sections(), s) {
		nav.Active = s
	}

	body, err := a.Pages.Body(c.Request().Context(), mode)
	if err != nil {
		return err
	}
	page := views.Document(a.viewConfig(), views.PageMeta{}, mode, views.Nav(nav), g.Raw(string(body)))
	return RenderNode(c, http.StatusOK, page)
}

// handleNavFragment answers a scroll update with the nav partial. The query
// carries the scroll offset, the measured section layout and the section the
// client currently shows as active.
func (a *App) handleNavFragment(c echo.Context) error {
	if !a.fragmentLimiter.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
	}

	y := 0
	if raw := c.QueryParam("y"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid scroll offset")
		}
		y = v
	}
	layout, err := scrollspy.ParseLayout(c.QueryParam("layout"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tracker := scrollspy.NewTracker(content.Sections(), content.SectionHome)
	current := c.QueryParam("current")
	if tracker.Known(current) {
		tracker = scrollspy.NewTracker(content.Sections(), current)
	}
	active := tracker.Update(layout, y)
	if a.recorder != nil && active != current {
		a.recorder.RecordSection(c, active)
	}

	mode := themeFor(c)
	nav := views.NewNavState(mode, CsrfToken(c))
	nav.Active = active
	nav.Scrolled = scrollspy.IsScrolled(y)
	return RenderNode(c, http.StatusOK, views.Nav(nav))
}

// handleThemeToggle flips the session theme and sends the visitor back to
// the section they were reading.
func (a *App) handleThemeToggle(c echo.Context) error {
	mode := themeFor(c).Toggle()
	if err := setTheme(c, mode); err != nil {
		return err
	}
	a.Logger.Debug("theme toggled", zap.String("theme", mode.String()))
	return c.Redirect(http.StatusSeeOther, returnTarget(c.FormValue("return")))
}

// returnTarget maps a section id to the URL the toggle redirects to.
// Unknown ids go to the top of the page.
func returnTarget(section string) string {
	if section == "" || section == content.SectionHome || !slices.Contains(content.Sections(), section) {
		return "/"
	}
	return "/?section=" + section + "#" + section
}

func (a *App) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleFavicon(c echo.Context) error {
	path := filepath.Join(a.Config.StaticDir, "favicon.svg")
	if _, err := os.Stat(path); err == nil {
		return c.File(path)
	}
	data, err := EmbeddedAssets.ReadFile("embedded/favicon.svg")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", data)
}

func (a *App) handleRobots(c echo.Context) error {
	path := filepath.Join(a.Config.StaticDir, "robots.txt")
	if _, err := os.Stat(path); err == nil {
		return c.File(path)
	}
	return c.String(http.StatusOK, "User-agent: *\nAllow: /\n\nSitemap: "+views.BuildURL(a.Config.URL, "sitemap.xml")+"\n")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	mode := themeFor(c)
	switch {
	case code == http.StatusNotFound:
		_ = RenderNode(c, http.StatusNotFound, views.NotFound(a.viewConfig(), mode))
	case code >= http.StatusInternalServerError:
		a.Logger.Error("server error",
			zap.Error(err),
			zap.String("uri", c.Request().RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		)
		_ = RenderNode(c, code, views.ServerError(a.viewConfig(), mode))
	default:
		a.Echo.DefaultHTTPErrorHandler(err, c)
	}
}
