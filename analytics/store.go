package analytics

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"
)

// Store provides database operations for analytics.
type Store struct {
	db   *sql.DB
	salt string
}

// NewStore opens (or creates) the analytics database at dbPath, runs schema
// migrations, and loads or generates the hashing salt.
func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create analytics dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(time.Hour)

	// WAL lets the stats queries read while visits are written; the busy
	// timeout makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := s.initSalt(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Salt returns the per-installation hashing salt.
func (s *Store) Salt() string {
	return s.salt
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			visitor_id TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			browser TEXT NOT NULL,
			os TEXT NOT NULL,
			device TEXT NOT NULL,
			path TEXT NOT NULL,
			referrer TEXT NOT NULL DEFAULT '',
			theme TEXT NOT NULL DEFAULT 'light',
			timestamp DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS bot_visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			bot_name TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			user_agent TEXT NOT NULL,
			path TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS section_views (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			visitor_id TEXT NOT NULL,
			section TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp);
		CREATE INDEX IF NOT EXISTS idx_visits_visitor_id ON visits(visitor_id);
		CREATE INDEX IF NOT EXISTS idx_bot_visits_timestamp ON bot_visits(timestamp);
		CREATE INDEX IF NOT EXISTS idx_section_views_timestamp ON section_views(timestamp);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// currentSchemaVersion is the latest schema version. Increment when adding migrations.
const currentSchemaVersion = 1

func (s *Store) migrate() error {
	verStr, err := s.GetSetting("schema_version")
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	version := 0
	if verStr != "" {
		version, err = strconv.Atoi(verStr)
		if err != nil {
			return fmt.Errorf("parse schema version %q: %w", verStr, err)
		}
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("schema version %d is newer than supported %d", version, currentSchemaVersion)
	}
	return s.SetSetting("schema_version", strconv.Itoa(currentSchemaVersion))
}

func (s *Store) initSalt() error {
	v, err := s.GetSetting("hash_salt")
	if err != nil {
		return fmt.Errorf("read hash salt: %w", err)
	}
	if v == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return fmt.Errorf("generate salt: %w", err)
		}
		v = hex.EncodeToString(b)
		if err := s.SetSetting("hash_salt", v); err != nil {
			return fmt.Errorf("store hash salt: %w", err)
		}
	}
	s.salt = v
	return nil
}

// GetSetting retrieves a setting value by key. Returns empty string if not found.
func (s *Store) GetSetting(key string) (string, error) {
	var val string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return val, err
}

// SetSetting stores a setting value by key (upsert).
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// SaveVisit stores a page view.
func (s *Store) SaveVisit(ctx context.Context, v *Visit) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO visits
		(visitor_id, ip_hash, browser, os, device, path, referrer, theme, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.VisitorID, v.IPHash, v.Browser, v.OS, v.Device, v.Path, v.Referrer, v.Theme, sqliteTime(v.Timestamp))
	return err
}

// SaveBotVisit stores a crawler page view.
func (s *Store) SaveBotVisit(ctx context.Context, bv *BotVisit) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO bot_visits
		(bot_name, ip_hash, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		bv.BotName, bv.IPHash, bv.UserAgent, bv.Path, sqliteTime(bv.Timestamp))
	return err
}

// SaveSectionView stores a section impression.
func (s *Store) SaveSectionView(ctx context.Context, sv *SectionView) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO section_views
		(visitor_id, section, timestamp) VALUES (?, ?, ?)`,
		sv.VisitorID, sv.Section, sqliteTime(sv.Timestamp))
	return err
}

// timeLayout is the text form SQLite's date functions parse. Timestamps are
// stored as UTC text in this layout so they sort and compare as strings.
const timeLayout = "2006-01-02 15:04:05"

func sqliteTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func (s *Store) dimension(ctx context.Context, query string, from, to time.Time) ([]DimensionStat, error) {
	rows, err := s.db.QueryContext(ctx, query, sqliteTime(from), sqliteTime(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []DimensionStat{}
	for rows.Next() {
		var d DimensionStat
		if err := rows.Scan(&d.Name, &d.Count); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (s *Store) count(ctx context.Context, query string, from, to time.Time) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, query, sqliteTime(from), sqliteTime(to)).Scan(&n)
	return n, err
}

// GetStats returns aggregated statistics for [from, to). The independent
// queries run concurrently.
func (s *Store) GetStats(ctx context.Context, from, to time.Time) (*Stats, error) {
	stats := &Stats{
		Period:        from.Format("2006-01-02") + " to " + to.Format("2006-01-02"),
		TopSections:   []DimensionStat{},
		BrowserStats:  []DimensionStat{},
		DeviceStats:   []DimensionStat{},
		ThemeStats:    []DimensionStat{},
		ReferrerStats: []DimensionStat{},
		DailyViews:    []DailyView{},
	}

	var mu sync.Mutex
	eg, ctx := errgroup.WithContext(ctx)

	counts := []struct {
		label string
		query string
		dst   *int
	}{
		{"count views", `SELECT COUNT(*) FROM visits WHERE timestamp >= ? AND timestamp < ?`, &stats.TotalViews},
		{"count unique visitors", `SELECT COUNT(DISTINCT visitor_id) FROM visits WHERE timestamp >= ? AND timestamp < ?`, &stats.UniqueVisitors},
		{"count bot visits", `SELECT COUNT(*) FROM bot_visits WHERE timestamp >= ? AND timestamp < ?`, &stats.BotVisits},
	}
	for _, c := range counts {
		eg.Go(func() error {
			n, err := s.count(ctx, c.query, from, to)
			if err != nil {
				return fmt.Errorf("%s: %w", c.label, err)
			}
			mu.Lock()
			*c.dst = n
			mu.Unlock()
			return nil
		})
	}

	dims := []struct {
		label string
		query string
		dst   *[]DimensionStat
	}{
		{"top sections", `SELECT section, COUNT(*) AS c FROM section_views WHERE timestamp >= ? AND timestamp < ? GROUP BY section ORDER BY c DESC, section`, &stats.TopSections},
		{"browser stats", `SELECT browser, COUNT(*) AS c FROM visits WHERE timestamp >= ? AND timestamp < ? GROUP BY browser ORDER BY c DESC, browser`, &stats.BrowserStats},
		{"device stats", `SELECT device, COUNT(*) AS c FROM visits WHERE timestamp >= ? AND timestamp < ? GROUP BY device ORDER BY c DESC, device`, &stats.DeviceStats},
		{"theme stats", `SELECT theme, COUNT(*) AS c FROM visits WHERE timestamp >= ? AND timestamp < ? GROUP BY theme ORDER BY c DESC, theme`, &stats.ThemeStats},
		{"referrer stats", `SELECT referrer, COUNT(*) AS c FROM visits WHERE timestamp >= ? AND timestamp < ? GROUP BY referrer ORDER BY c DESC, referrer LIMIT 10`, &stats.ReferrerStats},
	}
	for _, d := range dims {
		eg.Go(func() error {
			result, err := s.dimension(ctx, d.query, from, to)
			if err != nil {
				return fmt.Errorf("%s: %w", d.label, err)
			}
			mu.Lock()
			*d.dst = result
			mu.Unlock()
			return nil
		})
	}

	eg.Go(func() error {
		rows, err := s.db.QueryContext(ctx, `SELECT strftime('%Y-%m-%d', timestamp) AS day, COUNT(*)
			FROM visits WHERE timestamp >= ? AND timestamp < ?
			GROUP BY day ORDER BY day`, sqliteTime(from), sqliteTime(to))
		if err != nil {
			return fmt.Errorf("daily views: %w", err)
		}
		defer rows.Close()
		daily := []DailyView{}
		for rows.Next() {
			var dv DailyView
			if err := rows.Scan(&dv.Date, &dv.Views); err != nil {
				return fmt.Errorf("daily views: %w", err)
			}
			daily = append(daily, dv)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("daily views: %w", err)
		}
		mu.Lock()
		stats.DailyViews = daily
		mu.Unlock()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// Cleanup deletes rows older than retentionDays and returns how many were
// removed.
func (s *Store) Cleanup(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	var total int64
	for _, table := range []string{"visits", "bot_visits", "section_views"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE timestamp < ?`, sqliteTime(cutoff))
		if err != nil {
			return total, fmt.Errorf("cleanup %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

// StartCleanupScheduler runs Cleanup every interval until the returned
// stop function is called. stop waits for the scheduler to exit.
func (s *Store) StartCleanupScheduler(retentionDays int, interval time.Duration, onErr func(error)) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.Cleanup(ctx, retentionDays); err != nil && onErr != nil {
					onErr(err)
				}
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(cancel)
		<-done
	}
}
