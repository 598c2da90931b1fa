package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/folio/analytics"
)

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	err := printStats(&buf, &analytics.Stats{
		Period:         "2026-09-14 to 2026-10-14",
		UniqueVisitors: 3,
		TotalViews:     5,
		TopSections:    []analytics.DimensionStat{{Name: "about", Count: 4}},
		ThemeStats:     []analytics.DimensionStat{{Name: "dark", Count: 2}},
		DailyViews:     []analytics.DailyView{{Date: "2026-10-14", Views: 5}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2026-09-14 to 2026-10-14")
	assert.Regexp(t, `Unique visitors\s+3`, out)
	assert.Regexp(t, `Page views\s+5`, out)
	assert.Contains(t, out, "Sections")
	assert.Regexp(t, `about\s+4`, out)
	assert.NotContains(t, out, "Browsers")
	assert.Regexp(t, `2026-10-14\s+5`, out)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "folio dev\n", buf.String())
}
