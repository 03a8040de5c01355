package search

import (
	"context"
	"errors"
	"testing"

	"nearby/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchCall struct {
	center   model.Coordinates
	radius   int
	category model.Category
}

// fakeSearcher answers from a table keyed by category.
type fakeSearcher struct {
	calls   []searchCall
	results map[model.Category][]model.Place
	err     error
}

func (f *fakeSearcher) SearchNearby(ctx context.Context, center model.Coordinates, radiusMeters int, category model.Category) ([]model.Place, error) {
	f.calls = append(f.calls, searchCall{center, radiusMeters, category})
	if f.err != nil {
		return []model.Place{}, f.err
	}
	return f.results[category], nil
}

var sf = model.Coordinates{Latitude: 37.77, Longitude: -122.41}

func run(t *testing.T, cmd tea.Cmd) model.SearchResultMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(model.SearchResultMsg)
	require.True(t, ok)
	return msg
}

func TestControllerStartsUninitialized(t *testing.T) {
	c := NewController(&fakeSearcher{}, Options{})
	assert.Equal(t, StateUninitialized, c.State())
	assert.False(t, c.Loading())
	assert.Empty(t, c.Places())
	assert.Equal(t, model.DefaultCategory, c.Category())
	assert.Equal(t, model.DefaultRadius, c.Radius())

	_, ok := c.Criteria()
	assert.False(t, ok)

	// criteria changes without a location never issue a request
	assert.Nil(t, c.SetCategory(model.CategoryCafe))
	assert.Nil(t, c.SetRadius(8000))
	assert.Nil(t, c.Refresh())
	assert.Equal(t, model.CategoryCafe, c.Category())
	assert.Equal(t, 8000, c.Radius())
}

func TestControllerFetchAndApply(t *testing.T) {
	fake := &fakeSearcher{results: map[model.Category][]model.Place{
		model.CategoryCafe: {{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
	}}
	c := NewController(fake, Options{Category: model.CategoryCafe, RadiusMeters: 5000})

	cmd := c.SetLocation(sf)
	assert.Equal(t, StateFetching, c.State())
	assert.True(t, c.Loading())

	msg := run(t, cmd)
	assert.Equal(t, model.SearchCriteria{Center: sf, RadiusMeters: 5000, Category: model.CategoryCafe}, msg.Tag.Criteria)
	assert.NotEmpty(t, msg.Tag.ID)

	require.True(t, c.Apply(msg))
	assert.Equal(t, StateIdle, c.State())
	assert.False(t, c.Loading())
	require.Len(t, c.Places(), 2)
	assert.Equal(t, "a", c.Places()[0].ID)
	assert.Equal(t, "b", c.Places()[1].ID)
	assert.False(t, c.Failed())
	assert.True(t, c.HasSearched())

	require.Len(t, fake.calls, 1)
	assert.Equal(t, searchCall{sf, 5000, model.CategoryCafe}, fake.calls[0])
}

func TestControllerUnchangedCriteriaIssueNothing(t *testing.T) {
	c := NewController(&fakeSearcher{}, Options{})
	c.Apply(run(t, c.SetLocation(sf)))

	assert.Nil(t, c.SetLocation(sf))
	assert.Nil(t, c.SetCategory(model.DefaultCategory))
	assert.Nil(t, c.SetRadius(model.DefaultRadius))
	assert.Nil(t, c.SetRadius(model.DefaultRadius+100)) // clamps back to 5000
	assert.Equal(t, StateIdle, c.State())
}

func TestControllerEachCriteriaChangeTriggersSearch(t *testing.T) {
	fake := &fakeSearcher{}
	c := NewController(fake, Options{})
	c.Apply(run(t, c.SetLocation(sf)))

	c.Apply(run(t, c.SetCategory(model.CategoryPharmacy)))
	c.Apply(run(t, c.SetRadius(12000)))
	moved := model.Coordinates{Latitude: 37.8, Longitude: -122.4}
	c.Apply(run(t, c.SetLocation(moved)))

	require.Len(t, fake.calls, 4)
	assert.Equal(t, model.CategoryPharmacy, fake.calls[1].category)
	assert.Equal(t, 12000, fake.calls[2].radius)
	assert.Equal(t, searchCall{moved, 12000, model.CategoryPharmacy}, fake.calls[3])
}

func TestControllerRadiusIsClamped(t *testing.T) {
	fake := &fakeSearcher{}
	c := NewController(fake, Options{RadiusMeters: 999999})
	assert.Equal(t, model.MaxRadius, c.Radius())

	c.Apply(run(t, c.SetLocation(sf)))
	c.Apply(run(t, c.SetRadius(10)))
	assert.Equal(t, model.MinRadius, c.Radius())
	assert.Equal(t, model.MinRadius, fake.calls[1].radius)
}

func TestControllerDiscardsStaleResult(t *testing.T) {
	fake := &fakeSearcher{results: map[model.Category][]model.Place{
		model.CategoryRestaurant: {{ID: "r1"}, {ID: "r2"}, {ID: "r3"}},
		model.CategoryCafe:       {{ID: "c1"}},
	}}
	c := NewController(fake, Options{})

	// C1 issued, then criteria change to C2 before C1 resolves.
	c1 := c.SetLocation(sf)
	c2 := c.SetCategory(model.CategoryCafe)

	// C2 resolves and applies first.
	require.True(t, c.Apply(run(t, c2)))
	assert.False(t, c.Loading())

	// C1 arrives late and must not overwrite C2's places.
	assert.False(t, c.Apply(run(t, c1)))
	require.Len(t, c.Places(), 1)
	assert.Equal(t, "c1", c.Places()[0].ID)
	assert.False(t, c.Loading())
}

func TestControllerStaleResultBeforeFreshKeepsLoading(t *testing.T) {
	fake := &fakeSearcher{results: map[model.Category][]model.Place{
		model.CategoryRestaurant: {{ID: "r1"}},
		model.CategoryBank:       {{ID: "b1"}, {ID: "b2"}},
	}}
	c := NewController(fake, Options{})

	c1 := c.SetLocation(sf)
	c2 := c.SetCategory(model.CategoryBank)

	assert.False(t, c.Apply(run(t, c1)))
	assert.True(t, c.Loading(), "newer request still outstanding")
	assert.Empty(t, c.Places())

	assert.True(t, c.Apply(run(t, c2)))
	assert.False(t, c.Loading())
	assert.Len(t, c.Places(), 2)
}

func TestControllerSameCriteriaReissuedOnlyLatestApplies(t *testing.T) {
	c := NewController(&fakeSearcher{}, Options{})
	first := c.SetLocation(sf)
	second := c.Refresh()

	assert.False(t, c.Apply(run(t, first)))
	assert.True(t, c.Loading())
	assert.True(t, c.Apply(run(t, second)))
	assert.False(t, c.Loading())
}

func TestControllerFailureDegradesToEmpty(t *testing.T) {
	fake := &fakeSearcher{results: map[model.Category][]model.Place{
		model.CategoryRestaurant: {{ID: "r1"}},
	}}
	c := NewController(fake, Options{})
	require.True(t, c.Apply(run(t, c.SetLocation(sf))))
	require.Len(t, c.Places(), 1)

	fake.err = errors.New("dial tcp: connection refused")
	require.True(t, c.Apply(run(t, c.Refresh())))

	assert.NotNil(t, c.Places())
	assert.Empty(t, c.Places())
	assert.False(t, c.Loading())
	assert.Equal(t, StateIdle, c.State())
	assert.True(t, c.Failed())
	assert.EqualError(t, c.Err(), "dial tcp: connection refused")
}

// A failed search and a zero-result search both leave no places; only
// Failed tells them apart.
func TestControllerFailedVersusZeroResults(t *testing.T) {
	failing := NewController(&fakeSearcher{err: errors.New("timeout")}, Options{})
	failing.Apply(run(t, failing.SetLocation(sf)))

	empty := NewController(&fakeSearcher{}, Options{})
	empty.Apply(run(t, empty.SetLocation(sf)))

	assert.Equal(t, failing.Places(), empty.Places())
	assert.True(t, failing.Failed())
	assert.False(t, empty.Failed())
	assert.Nil(t, empty.Err())
}

func TestControllerRecoversAfterFailure(t *testing.T) {
	fake := &fakeSearcher{err: errors.New("timeout")}
	c := NewController(fake, Options{})
	c.Apply(run(t, c.SetLocation(sf)))
	require.True(t, c.Failed())

	fake.err = nil
	fake.results = map[model.Category][]model.Place{model.CategoryATM: {{ID: "atm"}}}
	c.Apply(run(t, c.SetCategory(model.CategoryATM)))
	assert.False(t, c.Failed())
	assert.Nil(t, c.Err())
	assert.Len(t, c.Places(), 1)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "fetching", StateFetching.String())
}
