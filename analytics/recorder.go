package analytics

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const maxUserAgentLen = 512

// Recorder turns requests into visit rows. Failures are logged and never
// affect the response.
type Recorder struct {
	store    *Store
	logger   *zap.Logger
	selfHost string
	now      func() time.Time
}

// NewRecorder returns a recorder writing to store. selfHost is the site's
// own hostname, used to label internal referrers.
func NewRecorder(store *Store, logger *zap.Logger, selfHost string) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		store:    store,
		logger:   logger,
		selfHost: selfHost,
		now:      time.Now,
	}
}

// optedOut reports whether the client sent Do Not Track or Global Privacy
// Control.
func optedOut(c echo.Context) bool {
	h := c.Request().Header
	return h.Get("DNT") == "1" || h.Get("Sec-GPC") == "1"
}

func userAgent(c echo.Context) string {
	ua := c.Request().UserAgent()
	if len(ua) > maxUserAgentLen {
		ua = ua[:maxUserAgentLen]
	}
	return ua
}

// VisitorID returns the anonymous visitor id for the request.
func (r *Recorder) VisitorID(c echo.Context) string {
	return GenerateVisitorID(r.store.Salt(), c.RealIP(), userAgent(c))
}

// PageViews returns middleware that records successful GET requests. theme
// reports the theme the response was rendered in.
func (r *Recorder) PageViews(theme func(echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil || c.Request().Method != http.MethodGet || c.Response().Status != http.StatusOK {
				return err
			}
			if optedOut(c) {
				return nil
			}
			r.recordPageView(c, theme(c))
			return nil
		}
	}
}

func (r *Recorder) recordPageView(c echo.Context, theme string) {
	ctx := c.Request().Context()
	ua := userAgent(c)
	ip := c.RealIP()
	salt := r.store.Salt()
	path := c.Request().URL.Path

	if IsBot(ua) {
		bv := &BotVisit{
			BotName:   ExtractBotName(ua),
			IPHash:    HashIP(salt, ip),
			UserAgent: ua,
			Path:      path,
			Timestamp: r.now(),
		}
		if err := r.store.SaveBotVisit(ctx, bv); err != nil {
			r.logger.Warn("failed to save bot visit", zap.Error(err))
		}
		return
	}

	browser, os, device := ParseUserAgent(ua)
	v := &Visit{
		VisitorID: GenerateVisitorID(salt, ip, ua),
		IPHash:    HashIP(salt, ip),
		Browser:   browser,
		OS:        os,
		Device:    device,
		Path:      path,
		Referrer:  CleanReferrer(c.Request().Referer(), r.selfHost),
		Theme:     theme,
		Timestamp: r.now(),
	}
	if err := r.store.SaveVisit(ctx, v); err != nil {
		r.logger.Warn("failed to save visit", zap.Error(err))
	}
}

// RecordSection stores a section impression for the requesting visitor.
func (r *Recorder) RecordSection(c echo.Context, section string) {
	if optedOut(c) || IsBot(c.Request().UserAgent()) {
		return
	}
	sv := &SectionView{
		VisitorID: r.VisitorID(c),
		Section:   section,
		Timestamp: r.now(),
	}
	if err := r.store.SaveSectionView(c.Request().Context(), sv); err != nil {
		r.logger.Warn("failed to save section view", zap.Error(err), zap.String("section", section))
	}
}
