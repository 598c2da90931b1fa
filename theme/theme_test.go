package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleTwiceRestoresClasses(t *testing.T) {
	for _, m := range []Mode{Light, Dark} {
		before := ClassesFor(m)
		after := ClassesFor(m.Toggle().Toggle())
		assert.Equal(t, before, after, "mode %s", m)
	}
}

func TestToggleChangesEveryClass(t *testing.T) {
	l, d := ClassesFor(Light), ClassesFor(Dark)
	assert.NotEqual(t, l.Bg, d.Bg)
	assert.NotEqual(t, l.Text, d.Text)
	assert.NotEqual(t, l.TextSecondary, d.TextSecondary)
	assert.NotEqual(t, l.CardBg, d.CardBg)
	assert.NotEqual(t, l.CardHover, d.CardHover)
	assert.NotEqual(t, l.NavBg, d.NavBg)
	assert.NotEqual(t, l.SectionBg, d.SectionBg)
	assert.NotEqual(t, l.Border, d.Border)
	assert.NotEqual(t, l.Input, d.Input)
	assert.NotEqual(t, l.FooterBg, d.FooterBg)
	assert.NotEqual(t, l.Track, d.Track)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, Dark, ParseMode("dark"))
	assert.Equal(t, Dark, ParseMode(" DARK "))
	assert.Equal(t, Light, ParseMode("light"))
	assert.Equal(t, Light, ParseMode(""))
	assert.Equal(t, Light, ParseMode("sepia"))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "dark", Dark.String())
	assert.Equal(t, Dark, ParseMode(Dark.String()))
	assert.True(t, Dark.IsDark())
	assert.False(t, Light.IsDark())
}
