package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "analytics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStorePersistsSalt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "analytics.db")
	s, err := NewStore(path)
	require.NoError(t, err)
	salt := s.Salt()
	assert.Len(t, salt, 64)
	require.NoError(t, s.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, salt, reopened.Salt())

	v, err := reopened.GetSetting("schema_version")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestSettings(t *testing.T) {
	s := setupTestStore(t)

	v, err := s.GetSetting("missing")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.SetSetting("k", "one"))
	require.NoError(t, s.SetSetting("k", "two"))
	v, err = s.GetSetting("k")
	require.NoError(t, err)
	assert.Equal(t, "two", v)
}

func TestGetStats(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	visits := []Visit{
		{VisitorID: "a", Browser: "Chrome", Device: "Desktop", Path: "/", Referrer: "Direct", Theme: "light", Timestamp: now},
		{VisitorID: "a", Browser: "Chrome", Device: "Desktop", Path: "/", Referrer: "Direct", Theme: "dark", Timestamp: now},
		{VisitorID: "b", Browser: "Firefox", Device: "Mobile", Path: "/", Referrer: "GitHub", Theme: "dark", Timestamp: now},
		{VisitorID: "c", Browser: "Safari", Device: "Mobile", Path: "/", Referrer: "Direct", Theme: "light", Timestamp: now.AddDate(0, 0, -40)},
	}
	for i := range visits {
		require.NoError(t, s.SaveVisit(ctx, &visits[i]))
	}
	require.NoError(t, s.SaveBotVisit(ctx, &BotVisit{BotName: "Googlebot", UserAgent: "Googlebot", Path: "/", Timestamp: now}))
	for _, section := range []string{"about", "services", "about"} {
		require.NoError(t, s.SaveSectionView(ctx, &SectionView{VisitorID: "a", Section: section, Timestamp: now}))
	}

	stats, err := s.GetStats(ctx, now.AddDate(0, 0, -7), now.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalViews)
	assert.Equal(t, 2, stats.UniqueVisitors)
	assert.Equal(t, 1, stats.BotVisits)
	assert.Equal(t, []DimensionStat{{Name: "about", Count: 2}, {Name: "services", Count: 1}}, stats.TopSections)
	assert.Equal(t, []DimensionStat{{Name: "Chrome", Count: 2}, {Name: "Firefox", Count: 1}}, stats.BrowserStats)
	assert.Equal(t, []DimensionStat{{Name: "dark", Count: 2}, {Name: "light", Count: 1}}, stats.ThemeStats)
	assert.Equal(t, []DimensionStat{{Name: "Direct", Count: 2}, {Name: "GitHub", Count: 1}}, stats.ReferrerStats)
	require.Len(t, stats.DailyViews, 1)
	assert.Equal(t, now.Format("2006-01-02"), stats.DailyViews[0].Date)
	assert.Equal(t, 3, stats.DailyViews[0].Views)
}

func TestTimestampsStoredAsUTCText(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	tokyo := time.FixedZone("JST", 9*60*60)
	// 17:30 UTC on the 28th, already the 1st in Tokyo.
	at := time.Date(2026, 3, 1, 2, 30, 0, 0, tokyo)

	require.NoError(t, s.SaveVisit(ctx, &Visit{VisitorID: "a", Theme: "dark", Timestamp: at}))
	require.NoError(t, s.SaveSectionView(ctx, &SectionView{VisitorID: "a", Section: "about", Timestamp: at}))

	var kind, day string
	require.NoError(t, s.db.QueryRowContext(ctx,
		`SELECT typeof(timestamp), strftime('%Y-%m-%d %H:%M', timestamp) FROM visits`).Scan(&kind, &day))
	assert.Equal(t, "text", kind)
	assert.Equal(t, "2026-02-28 17:30", day)

	from := time.Date(2026, 2, 28, 17, 0, 0, 0, time.UTC)
	stats, err := s.GetStats(ctx, from, from.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalViews)
	assert.Equal(t, []DimensionStat{{Name: "about", Count: 1}}, stats.TopSections)
	assert.Equal(t, []DailyView{{Date: "2026-02-28", Views: 1}}, stats.DailyViews)

	// The range is half open.
	stats, err = s.GetStats(ctx, from, at)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalViews)
	assert.Empty(t, stats.DailyViews)
}

func TestGetStatsEmpty(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now()
	stats, err := s.GetStats(context.Background(), now.AddDate(0, 0, -1), now)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalViews)
	assert.NotNil(t, stats.TopSections)
	assert.NotNil(t, stats.DailyViews)
}

func TestCleanup(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.SaveVisit(ctx, &Visit{VisitorID: "old", Timestamp: now.AddDate(0, 0, -400)}))
	require.NoError(t, s.SaveVisit(ctx, &Visit{VisitorID: "new", Timestamp: now}))
	require.NoError(t, s.SaveSectionView(ctx, &SectionView{VisitorID: "old", Section: "about", Timestamp: now.AddDate(0, 0, -400)}))

	removed, err := s.Cleanup(ctx, 365)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	stats, err := s.GetStats(ctx, now.AddDate(-2, 0, 0), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalViews)
}

func TestCleanupSchedulerStops(t *testing.T) {
	s := setupTestStore(t)
	stop := s.StartCleanupScheduler(365, 10*time.Millisecond, nil)
	time.Sleep(30 * time.Millisecond)
	stop()
	stop()
}

func newContext(e *echo.Echo, method, target, ua string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("User-Agent", ua)
	req.RemoteAddr = "203.0.113.9:4000"
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRecorderPageViews(t *testing.T) {
	s := setupTestStore(t)
	r := NewRecorder(s, zap.NewNop(), "saugat.dev")
	e := echo.New()

	handler := r.PageViews(func(echo.Context) string { return "dark" })(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	notFound := r.PageViews(func(echo.Context) string { return "dark" })(func(c echo.Context) error {
		return c.String(http.StatusNotFound, "nope")
	})

	c, _ := newContext(e, http.MethodGet, "/", "Mozilla/5.0 (X11; Linux x86_64) Firefox/121.0")
	require.NoError(t, handler(c))

	c, _ = newContext(e, http.MethodGet, "/", "Googlebot/2.1")
	require.NoError(t, handler(c))

	c, _ = newContext(e, http.MethodGet, "/", "Mozilla/5.0 Firefox/121.0")
	c.Request().Header.Set("DNT", "1")
	require.NoError(t, handler(c))

	c, _ = newContext(e, http.MethodGet, "/missing", "Mozilla/5.0 Firefox/121.0")
	require.NoError(t, notFound(c))

	now := time.Now()
	stats, err := s.GetStats(context.Background(), now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalViews)
	assert.Equal(t, 1, stats.BotVisits)
	assert.Equal(t, []DimensionStat{{Name: "dark", Count: 1}}, stats.ThemeStats)
	assert.Equal(t, []DimensionStat{{Name: "Firefox", Count: 1}}, stats.BrowserStats)
}

func TestRecorderSections(t *testing.T) {
	s := setupTestStore(t)
	r := NewRecorder(s, nil, "")
	e := echo.New()

	c, _ := newContext(e, http.MethodGet, "/fragments/nav/", "Mozilla/5.0 Firefox/121.0")
	r.RecordSection(c, "services")
	c, _ = newContext(e, http.MethodGet, "/fragments/nav/", "Bingbot/2.0")
	r.RecordSection(c, "services")

	now := time.Now()
	stats, err := s.GetStats(context.Background(), now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []DimensionStat{{Name: "services", Count: 1}}, stats.TopSections)
}
