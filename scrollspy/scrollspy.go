// Package scrollspy decides which page section is in view for a given
// scroll offset.
package scrollspy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Lookahead is added to the scroll offset before testing section bounds,
	// so a section counts as active slightly before its top reaches the
	// viewport edge.
	Lookahead = 100

	// ScrolledThreshold is the offset past which the nav bar gets its
	// opaque background.
	ScrolledThreshold = 50

	maxLayoutEntries = 32
)

// ErrMalformedLayout is returned by ParseLayout for undecodable input.
var ErrMalformedLayout = errors.New("scrollspy: malformed layout")

// Bounds is the vertical extent of a section in document coordinates.
type Bounds struct {
	Top    int
	Height int
}

// Contains reports whether y falls in [Top, Top+Height).
func (b Bounds) Contains(y int) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Layout maps section ids to their bounds. Sections absent from the page
// are simply missing.
type Layout map[string]Bounds

// Active scans order and returns the first section whose bounds contain
// scrollY+Lookahead. ok is false when no section matches.
func Active(order []string, layout Layout, scrollY int) (id string, ok bool) {
	pos := scrollY + Lookahead
	for _, section := range order {
		b, found := layout[section]
		if !found {
			continue
		}
		if b.Contains(pos) {
			return section, true
		}
	}
	return "", false
}

// IsScrolled reports whether the nav should render in its scrolled style.
func IsScrolled(scrollY int) bool {
	return scrollY > ScrolledThreshold
}

// Tracker keeps the active section across scroll updates. When an update
// matches nothing, the previous section stays active.
type Tracker struct {
	order  []string
	active string
}

// NewTracker returns a tracker over order with initial as the active section.
func NewTracker(order []string, initial string) *Tracker {
	return &Tracker{
		order:  append([]string(nil), order...),
		active: initial,
	}
}

// Active returns the current section id.
func (t *Tracker) Active() string {
	return t.active
}

// Update applies a scroll event and returns the resulting active section.
func (t *Tracker) Update(layout Layout, scrollY int) string {
	if id, ok := Active(t.order, layout, scrollY); ok {
		t.active = id
	}
	return t.active
}

// Known reports whether id is one of the tracked sections.
func (t *Tracker) Known(id string) bool {
	for _, s := range t.order {
		if s == id {
			return true
		}
	}
	return false
}

// ParseLayout decodes "id:top:height" entries separated by commas, the form
// the measuring script sends. An empty string is an empty layout.
func ParseLayout(s string) (Layout, error) {
	layout := make(Layout)
	s = strings.TrimSpace(s)
	if s == "" {
		return layout, nil
	}
	entries := strings.Split(s, ",")
	if len(entries) > maxLayoutEntries {
		return nil, fmt.Errorf("%w: %d entries exceeds %d", ErrMalformedLayout, len(entries), maxLayoutEntries)
	}
	for _, entry := range entries {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 || parts[0] == "" {
			return nil, fmt.Errorf("%w: entry %q", ErrMalformedLayout, entry)
		}
		top, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: top in %q", ErrMalformedLayout, entry)
		}
		height, err := strconv.Atoi(parts[2])
		if err != nil || height < 0 {
			return nil, fmt.Errorf("%w: height in %q", ErrMalformedLayout, entry)
		}
		layout[parts[0]] = Bounds{Top: top, Height: height}
	}
	return layout, nil
}

// String encodes the layout in the wire form accepted by ParseLayout, in
// the given order. Ids missing from the layout are skipped.
func (l Layout) String(order []string) string {
	var b strings.Builder
	for _, id := range order {
		bounds, ok := l[id]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s:%d:%d", id, bounds.Top, bounds.Height)
	}
	return b.String()
}
