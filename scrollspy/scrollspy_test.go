package scrollspy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var order = []string{"home", "about", "services", "portfolio", "contact"}

func pageLayout() Layout {
	return Layout{
		"home":      {Top: 0, Height: 900},
		"about":     {Top: 900, Height: 700},
		"services":  {Top: 1600, Height: 600},
		"portfolio": {Top: 2200, Height: 800},
		"contact":   {Top: 3000, Height: 600},
	}
}

func TestActiveWithinBounds(t *testing.T) {
	layout := pageLayout()
	for _, id := range order {
		b := layout[id]
		for _, y := range []int{b.Top - Lookahead, b.Top + b.Height/2 - Lookahead, b.Top + b.Height - 1 - Lookahead} {
			if y < 0 {
				continue
			}
			got, ok := Active(order, layout, y)
			require.True(t, ok, "offset %d", y)
			assert.Equal(t, id, got, "offset %d", y)
		}
	}
}

func TestActiveUsesLookahead(t *testing.T) {
	layout := pageLayout()

	got, ok := Active(order, layout, 799)
	require.True(t, ok)
	assert.Equal(t, "home", got)

	got, ok = Active(order, layout, 800)
	require.True(t, ok)
	assert.Equal(t, "about", got)
}

func TestActiveNoMatch(t *testing.T) {
	_, ok := Active(order, pageLayout(), 5000)
	assert.False(t, ok)

	_, ok = Active(order, Layout{}, 0)
	assert.False(t, ok)
}

func TestActiveSkipsMissingSections(t *testing.T) {
	layout := pageLayout()
	delete(layout, "about")
	_, ok := Active(order, layout, 1000)
	assert.False(t, ok)

	got, ok := Active(order, layout, 1600)
	require.True(t, ok)
	assert.Equal(t, "services", got)
}

func TestActiveFirstMatchWins(t *testing.T) {
	layout := Layout{
		"home":  {Top: 0, Height: 1000},
		"about": {Top: 500, Height: 1000},
	}
	got, ok := Active(order, layout, 600)
	require.True(t, ok)
	assert.Equal(t, "home", got)
}

func TestActiveIgnoresUnknownIDs(t *testing.T) {
	layout := Layout{"sidebar": {Top: 0, Height: 5000}}
	_, ok := Active(order, layout, 10)
	assert.False(t, ok)
}

func TestTrackerKeepsLastActive(t *testing.T) {
	tr := NewTracker(order, "home")
	assert.Equal(t, "home", tr.Active())

	assert.Equal(t, "services", tr.Update(pageLayout(), 1700))
	assert.Equal(t, "services", tr.Update(pageLayout(), 9000))
	assert.Equal(t, "services", tr.Active())
	assert.Equal(t, "about", tr.Update(pageLayout(), 850))
}

func TestTrackerCopiesOrder(t *testing.T) {
	ids := []string{"home", "about"}
	tr := NewTracker(ids, "home")
	ids[1] = "other"
	assert.True(t, tr.Known("about"))
	assert.False(t, tr.Known("other"))
}

func TestIsScrolled(t *testing.T) {
	assert.False(t, IsScrolled(0))
	assert.False(t, IsScrolled(ScrolledThreshold))
	assert.True(t, IsScrolled(ScrolledThreshold+1))
}

func TestParseLayout(t *testing.T) {
	layout, err := ParseLayout("home:0:900, about:900:700,services:-20:600")
	require.NoError(t, err)
	assert.Equal(t, Layout{
		"home":     {Top: 0, Height: 900},
		"about":    {Top: 900, Height: 700},
		"services": {Top: -20, Height: 600},
	}, layout)

	empty, err := ParseLayout("  ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseLayoutErrors(t *testing.T) {
	for _, in := range []string{
		"home",
		"home:0",
		":0:10",
		"home:x:10",
		"home:0:y",
		"home:0:-1",
		"home:0:10,",
		"home:0:10:5",
	} {
		_, err := ParseLayout(in)
		assert.ErrorIs(t, err, ErrMalformedLayout, "input %q", in)
	}
}

func TestLayoutStringRoundTrip(t *testing.T) {
	layout := pageLayout()
	encoded := layout.String(order)
	assert.Equal(t, "home:0:900,about:900:700,services:1600:600,portfolio:2200:800,contact:3000:600", encoded)

	decoded, err := ParseLayout(encoded)
	require.NoError(t, err)
	assert.Equal(t, layout, decoded)
}
