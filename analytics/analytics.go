// Package analytics provides privacy-first visit counting for the portfolio.
// IP addresses are never stored; they are hashed with a per-installation salt.
package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"time"
)

// Visit represents a single page view.
type Visit struct {
	VisitorID string    `json:"visitor_id"` // Salted hash of IP and User-Agent
	IPHash    string    `json:"-"`
	Browser   string    `json:"browser"`
	OS        string    `json:"os"`
	Device    string    `json:"device"` // Desktop, Mobile, Tablet
	Path      string    `json:"path"`
	Referrer  string    `json:"referrer"` // Cleaned referrer label
	Theme     string    `json:"theme"`
	Timestamp time.Time `json:"timestamp"`
}

// BotVisit represents a single crawler page view.
type BotVisit struct {
	BotName   string    `json:"bot_name"`
	IPHash    string    `json:"-"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// SectionView records that a visitor scrolled a section into view.
type SectionView struct {
	VisitorID string    `json:"visitor_id"`
	Section   string    `json:"section"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats holds aggregated analytics data.
type Stats struct {
	Period         string          `json:"period"`
	UniqueVisitors int             `json:"unique_visitors"`
	TotalViews     int             `json:"total_views"`
	BotVisits      int             `json:"bot_visits"`
	TopSections    []DimensionStat `json:"top_sections"`
	BrowserStats   []DimensionStat `json:"browsers"`
	DeviceStats    []DimensionStat `json:"devices"`
	ThemeStats     []DimensionStat `json:"themes"`
	ReferrerStats  []DimensionStat `json:"referrers"`
	DailyViews     []DailyView     `json:"daily_views"`
}

// DimensionStat represents a dimension breakdown (browser, section, etc.).
type DimensionStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DailyView represents views per day.
type DailyView struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

// HashIP creates a salted SHA-256 hash of an IP address.
func HashIP(salt, ip string) string {
	h := sha256.New()
	h.Write([]byte(salt + ip))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// GenerateVisitorID creates a salted visitor ID from IP and User-Agent.
func GenerateVisitorID(salt, ip, userAgent string) string {
	h := sha256.New()
	h.Write([]byte(salt + ip + "|" + userAgent))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// ParseUserAgent extracts browser, OS, and device from a User-Agent string.
func ParseUserAgent(ua string) (browser, os, device string) {
	ua = strings.ToLower(ua)

	// More specific patterns before generic ones: Edge and Opera both
	// advertise Chrome, Chrome advertises Safari.
	switch {
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr/"):
		browser = "Opera"
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	default:
		browser = "Other"
	}

	// Android UAs contain "linux".
	switch {
	case strings.Contains(ua, "windows"):
		os = "Windows"
	case strings.Contains(ua, "android"):
		os = "Android"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
		os = "iOS"
	case strings.Contains(ua, "macintosh") || strings.Contains(ua, "mac os"):
		os = "macOS"
	case strings.Contains(ua, "linux"):
		os = "Linux"
	default:
		os = "Other"
	}

	// iPad UAs contain "mobile".
	switch {
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		device = "Tablet"
	case strings.Contains(ua, "mobile"):
		device = "Mobile"
	default:
		device = "Desktop"
	}

	return
}

var botMarkers = []string{
	"bot", "crawler", "spider", "crawl", "slurp", "scrape",
	"yandex", "baidu", "facebookexternalhit", "headlesschrome",
}

// IsBot checks if the User-Agent is likely a bot or crawler. An empty
// User-Agent counts as a bot.
func IsBot(ua string) bool {
	if strings.TrimSpace(ua) == "" {
		return true
	}
	ua = strings.ToLower(ua)
	for _, m := range botMarkers {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}

// botPatterns is checked in order; the first match names the bot.
var botPatterns = []struct {
	pattern string
	name    string
}{
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"yandex", "Yandex"},
	{"baidu", "Baidu"},
	{"duckduckbot", "DuckDuckBot"},
	{"facebookexternalhit", "Facebook"},
	{"twitterbot", "Twitterbot"},
	{"linkedinbot", "LinkedIn"},
	{"ahrefsbot", "Ahrefs"},
	{"semrushbot", "SEMrush"},
	{"slurp", "Yahoo Slurp"},
	{"headlesschrome", "Headless Chrome"},
	{"crawler", "Generic Crawler"},
	{"spider", "Generic Spider"},
}

// ExtractBotName names the bot behind a User-Agent string.
func ExtractBotName(ua string) string {
	ua = strings.ToLower(ua)
	for _, p := range botPatterns {
		if strings.Contains(ua, p.pattern) {
			return p.name
		}
	}
	if strings.Contains(ua, "bot") {
		return "Other Bot"
	}
	return "Unknown"
}

var referrerDomainRegex = regexp.MustCompile(`^https?://(?:www\.)?([^/:]+)`)

// CleanReferrer reduces a referrer URL to a label. Referrers from the
// site's own host are reported as "Internal".
func CleanReferrer(ref, selfHost string) string {
	if ref == "" {
		return "Direct"
	}
	refLower := strings.ToLower(ref)
	switch {
	case strings.Contains(refLower, "google."):
		return "Google"
	case strings.Contains(refLower, "bing."):
		return "Bing"
	case strings.Contains(refLower, "duckduckgo."):
		return "DuckDuckGo"
	case strings.Contains(refLower, "github."):
		return "GitHub"
	case strings.Contains(refLower, "linkedin."):
		return "LinkedIn"
	}
	matches := referrerDomainRegex.FindStringSubmatch(refLower)
	if len(matches) > 1 {
		if selfHost != "" && strings.TrimPrefix(strings.ToLower(selfHost), "www.") == matches[1] {
			return "Internal"
		}
		return matches[1]
	}
	return "Other"
}
