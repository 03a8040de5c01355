package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// LocationResolvedMsg is sent when the device position is known.
type LocationResolvedMsg struct {
	Coordinates Coordinates
}

// LocationFailedMsg is sent when the position could not be obtained.
// Err wraps location.ErrPermissionDenied when access was refused.
type LocationFailedMsg struct {
	Err error
}

// SearchTag identifies one issued nearby search.
type SearchTag struct {
	Seq      int
	ID       string
	Criteria SearchCriteria
}

// SearchResultMsg is sent when a nearby search completes.
type SearchResultMsg struct {
	Tag    SearchTag
	Places []Place
	Err    error
}

// DetailsResultMsg is sent when a place details fetch completes.
type DetailsResultMsg struct {
	Seq     int
	PlaceID string
	Details *PlaceDetails
	Err     error
}

// PhotoLoadedMsg is sent when a place photo has been downloaded and rendered.
type PhotoLoadedMsg struct {
	Reference string
	Art       string
	Err       error
}

// SavedPlacesLoadedMsg is sent when saved places are loaded.
type SavedPlacesLoadedMsg struct {
	Places []SavedPlace
}

// PlaceSavedMsg is sent when a place is bookmarked.
type PlaceSavedMsg struct {
	Saved SavedPlace
}

// SavedPlaceDeletedMsg is sent when a bookmark is removed.
type SavedPlaceDeletedMsg struct {
	Deleted SavedPlace
}

// Screen represents different app screens.
type Screen int

const (
	ScreenNearby Screen = iota
	ScreenSaved
	ScreenRequests
)

// LocationStatus tracks the one-shot location acquisition.
type LocationStatus int

const (
	LocationPending LocationStatus = iota
	LocationReady
	LocationDenied
	LocationUnavailable
)
