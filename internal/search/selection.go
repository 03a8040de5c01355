package search

import (
	"context"
	"log"

	"nearby/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// DetailsFetcher fetches details for one place. *places.Client satisfies it.
type DetailsFetcher interface {
	FetchDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error)
}

// Selection owns the selected place and its lazily fetched details.
type Selection struct {
	fetcher DetailsFetcher
	seq     int
	place   *model.Place
	state   model.SelectionState
	lastErr error
}

// NewSelection creates an empty selection.
func NewSelection(fetcher DetailsFetcher) *Selection {
	return &Selection{fetcher: fetcher}
}

// Select makes place the selected one, clears prior details and returns the
// details fetch.
func (s *Selection) Select(place model.Place) tea.Cmd {
	s.seq++
	seq := s.seq
	p := place
	s.place = &p
	s.state = model.SelectionState{
		SelectedPlaceID: place.ID,
		DetailsLoading:  true,
	}
	s.lastErr = nil

	fetcher := s.fetcher
	return func() tea.Msg {
		details, err := fetcher.FetchDetails(context.Background(), place.ID)
		return model.DetailsResultMsg{Seq: seq, PlaceID: place.ID, Details: details, Err: err}
	}
}

// Apply applies a details result. Results for an earlier selection are
// discarded and Apply returns false.
func (s *Selection) Apply(msg model.DetailsResultMsg) bool {
	if msg.Seq != s.seq || msg.PlaceID != s.state.SelectedPlaceID {
		log.Printf("search: discarding details for %s (seq %d, latest %d)", msg.PlaceID, msg.Seq, s.seq)
		return false
	}

	s.state.DetailsLoading = false
	if msg.Err != nil {
		s.state.Details = nil
		s.lastErr = msg.Err
		return true
	}
	s.state.Details = msg.Details
	return true
}

// State returns a snapshot of the selection.
func (s *Selection) State() model.SelectionState { return s.state }

// Place returns the selected place, if any.
func (s *Selection) Place() (model.Place, bool) {
	if s.place == nil {
		return model.Place{}, false
	}
	return *s.place, true
}

// Err returns the error of the last details fetch for the current selection.
func (s *Selection) Err() error { return s.lastErr }
