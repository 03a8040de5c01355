package search

import (
	"context"
	"log"

	"nearby/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Searcher runs one nearby search. *places.Client satisfies it.
type Searcher interface {
	SearchNearby(ctx context.Context, center model.Coordinates, radiusMeters int, category model.Category) ([]model.Place, error)
}

// State is the refresh pipeline state.
type State int

const (
	StateUninitialized State = iota // no location yet
	StateIdle
	StateFetching
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	default:
		return "unknown"
	}
}

// Options sets the initial criteria.
type Options struct {
	Category     model.Category
	RadiusMeters int
}

// Controller owns the search criteria and the current result set. It must only
// be used from the Bubble Tea update loop.
type Controller struct {
	searcher Searcher

	location    *model.Coordinates
	category    model.Category
	radius      int
	seq         int
	pending     model.SearchTag
	state       State
	places      []model.Place
	failed      bool
	lastErr     error
	hasSearched bool
}

// NewController creates a controller with no location.
func NewController(searcher Searcher, opts Options) *Controller {
	category := opts.Category
	if category == "" {
		category = model.DefaultCategory
	}
	radius := opts.RadiusMeters
	if radius == 0 {
		radius = model.DefaultRadius
	}
	return &Controller{
		searcher: searcher,
		category: category,
		radius:   model.ClampRadius(radius),
		places:   []model.Place{},
	}
}

// SetLocation sets the search center. The first call leaves Uninitialized.
func (c *Controller) SetLocation(coords model.Coordinates) tea.Cmd {
	if c.location != nil && *c.location == coords {
		return nil
	}
	c.location = &coords
	return c.OnCriteriaChanged()
}

// SetCategory changes the category. Values are passed to the API verbatim.
func (c *Controller) SetCategory(category model.Category) tea.Cmd {
	if category == c.category {
		return nil
	}
	c.category = category
	return c.OnCriteriaChanged()
}

// SetRadius changes the radius, clamped to the supported range.
func (c *Controller) SetRadius(meters int) tea.Cmd {
	meters = model.ClampRadius(meters)
	if meters == c.radius {
		return nil
	}
	c.radius = meters
	return c.OnCriteriaChanged()
}

// OnCriteriaChanged issues a search for the current criteria tuple. It returns
// nil while there is no location. Earlier requests are not cancelled; their
// results are discarded by Apply.
func (c *Controller) OnCriteriaChanged() tea.Cmd {
	criteria, ok := c.Criteria()
	if !ok {
		return nil
	}

	c.seq++
	tag := model.SearchTag{
		Seq:      c.seq,
		ID:       uuid.New().String(),
		Criteria: criteria,
	}
	c.pending = tag
	c.state = StateFetching

	searcher := c.searcher
	return func() tea.Msg {
		places, err := searcher.SearchNearby(context.Background(), criteria.Center, criteria.RadiusMeters, criteria.Category)
		return model.SearchResultMsg{Tag: tag, Places: places, Err: err}
	}
}

// Refresh re-issues the search for the current criteria.
func (c *Controller) Refresh() tea.Cmd {
	return c.OnCriteriaChanged()
}

// Apply applies a completed search. Results from anything but the latest
// request, or for criteria that are no longer current, are discarded and
// Apply returns false.
func (c *Controller) Apply(msg model.SearchResultMsg) bool {
	current, ok := c.Criteria()
	if !ok || msg.Tag.Seq != c.pending.Seq || msg.Tag.Criteria != current {
		log.Printf("search: discarding stale result %s (seq %d, latest %d)", msg.Tag.ID, msg.Tag.Seq, c.pending.Seq)
		return false
	}

	c.state = StateIdle
	c.hasSearched = true
	if msg.Err != nil {
		log.Printf("search: %s failed, showing no places: %v", msg.Tag.ID, msg.Err)
		c.places = []model.Place{}
		c.failed = true
		c.lastErr = msg.Err
		return true
	}

	places := msg.Places
	if places == nil {
		places = []model.Place{}
	}
	c.places = places
	c.failed = false
	c.lastErr = nil
	return true
}

// Criteria returns the current tuple, or false when there is no location yet.
func (c *Controller) Criteria() (model.SearchCriteria, bool) {
	if c.location == nil {
		return model.SearchCriteria{}, false
	}
	return model.SearchCriteria{
		Center:       *c.location,
		RadiusMeters: c.radius,
		Category:     c.category,
	}, true
}

// Places returns the current result set in response order.
func (c *Controller) Places() []model.Place { return c.places }

// Loading reports whether the latest request is outstanding.
func (c *Controller) Loading() bool { return c.state == StateFetching }

// State returns the pipeline state.
func (c *Controller) State() State {
	if c.location == nil {
		return StateUninitialized
	}
	if c.state == StateUninitialized {
		return StateIdle
	}
	return c.state
}

// Category returns the selected category.
func (c *Controller) Category() model.Category { return c.category }

// Radius returns the selected radius in meters.
func (c *Controller) Radius() int { return c.radius }

// Failed reports whether the last applied search failed, as opposed to
// returning zero results.
func (c *Controller) Failed() bool { return c.failed }

// Err returns the error of the last applied search, if it failed.
func (c *Controller) Err() error { return c.lastErr }

// HasSearched reports whether any result has been applied yet.
func (c *Controller) HasSearched() bool { return c.hasSearched }
