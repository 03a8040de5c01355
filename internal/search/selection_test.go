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

type fakeFetcher struct {
	details map[string]*model.PlaceDetails
	errs    map[string]error
	calls   []string
}

func (f *fakeFetcher) FetchDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error) {
	f.calls = append(f.calls, placeID)
	if err := f.errs[placeID]; err != nil {
		return nil, err
	}
	return f.details[placeID], nil
}

func runDetails(t *testing.T, cmd tea.Cmd) model.DetailsResultMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(model.DetailsResultMsg)
	require.True(t, ok)
	return msg
}

func rating(v float64) *float64 { return &v }

var (
	placeA = model.Place{ID: "A", Name: "Alpha"}
	placeB = model.Place{ID: "B", Name: "Bravo"}
)

func TestSelectionEmpty(t *testing.T) {
	s := NewSelection(&fakeFetcher{})
	assert.Equal(t, model.SelectionState{}, s.State())
	_, ok := s.Place()
	assert.False(t, ok)
}

func TestSelectionSelectAndResolve(t *testing.T) {
	f := &fakeFetcher{details: map[string]*model.PlaceDetails{
		"A": {ID: "A", Name: "Alpha", Rating: rating(4.5), PhotoReference: "ref1"},
	}}
	s := NewSelection(f)

	cmd := s.Select(placeA)
	st := s.State()
	assert.Equal(t, "A", st.SelectedPlaceID)
	assert.True(t, st.DetailsLoading)
	assert.Nil(t, st.Details)

	p, ok := s.Place()
	require.True(t, ok)
	assert.Equal(t, placeA, p)

	require.True(t, s.Apply(runDetails(t, cmd)))
	st = s.State()
	assert.False(t, st.DetailsLoading)
	require.NotNil(t, st.Details)
	assert.Equal(t, "ref1", st.Details.PhotoReference)
	assert.Equal(t, []string{"A"}, f.calls)
}

func TestSelectionNewSelectClearsPriorDetails(t *testing.T) {
	f := &fakeFetcher{details: map[string]*model.PlaceDetails{
		"A": {ID: "A", Name: "Alpha"},
		"B": {ID: "B", Name: "Bravo"},
	}}
	s := NewSelection(f)
	require.True(t, s.Apply(runDetails(t, s.Select(placeA))))
	require.NotNil(t, s.State().Details)

	_ = s.Select(placeB)
	st := s.State()
	assert.Equal(t, "B", st.SelectedPlaceID)
	assert.Nil(t, st.Details)
	assert.True(t, st.DetailsLoading)
}

func TestSelectionLateDetailsForPriorPlaceDiscarded(t *testing.T) {
	f := &fakeFetcher{details: map[string]*model.PlaceDetails{
		"A": {ID: "A", Name: "Alpha"},
		"B": {ID: "B", Name: "Bravo"},
	}}
	s := NewSelection(f)

	cmdA := s.Select(placeA)
	cmdB := s.Select(placeB)

	// A resolves after B was selected.
	assert.False(t, s.Apply(runDetails(t, cmdA)))
	assert.True(t, s.State().DetailsLoading)
	assert.Nil(t, s.State().Details)

	require.True(t, s.Apply(runDetails(t, cmdB)))
	require.NotNil(t, s.State().Details)
	assert.Equal(t, "Bravo", s.State().Details.Name)

	// and once more after B has applied
	assert.False(t, s.Apply(runDetails(t, cmdA)))
	assert.Equal(t, "Bravo", s.State().Details.Name)
}

func TestSelectionLateDetailsAfterBFails(t *testing.T) {
	f := &fakeFetcher{
		details: map[string]*model.PlaceDetails{"A": {ID: "A", Name: "Alpha"}},
		errs:    map[string]error{"B": errors.New("API error: NOT_FOUND")},
	}
	s := NewSelection(f)

	cmdA := s.Select(placeA)
	cmdB := s.Select(placeB)

	require.True(t, s.Apply(runDetails(t, cmdB)))
	assert.False(t, s.Apply(runDetails(t, cmdA)))

	st := s.State()
	assert.Equal(t, "B", st.SelectedPlaceID)
	assert.Nil(t, st.Details)
	assert.False(t, st.DetailsLoading)
	assert.Error(t, s.Err())
}

func TestSelectionReselectSamePlaceUsesLatestFetch(t *testing.T) {
	f := &fakeFetcher{details: map[string]*model.PlaceDetails{"A": {ID: "A", Name: "Alpha"}}}
	s := NewSelection(f)

	first := s.Select(placeA)
	second := s.Select(placeA)

	assert.False(t, s.Apply(runDetails(t, first)))
	assert.True(t, s.Apply(runDetails(t, second)))
	assert.Len(t, f.calls, 2)
}

func TestSelectionFailureLeavesDetailsNil(t *testing.T) {
	f := &fakeFetcher{errs: map[string]error{"A": errors.New("network error")}}
	s := NewSelection(f)

	require.True(t, s.Apply(runDetails(t, s.Select(placeA))))
	st := s.State()
	assert.Equal(t, "A", st.SelectedPlaceID)
	assert.Nil(t, st.Details)
	assert.False(t, st.DetailsLoading)
	assert.EqualError(t, s.Err(), "network error")

	// a fresh selection clears the previous error
	_ = s.Select(placeB)
	assert.NoError(t, s.Err())
}
