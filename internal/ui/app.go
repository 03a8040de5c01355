package ui

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"nearby/internal/db"
	"nearby/internal/location"
	"nearby/internal/model"
	"nearby/internal/places"
	"nearby/internal/search"
	"nearby/internal/util"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PlacesAPI is what the shell needs from the places gateway.
type PlacesAPI interface {
	search.Searcher
	search.DetailsFetcher
	PhotoURL(photoReference string, maxWidth int) string
	Calls() *places.CallLog
}

// Config wires the root model.
type Config struct {
	DB       *sql.DB
	Places   PlacesAPI
	Locator  location.Provider
	TermCaps TerminalCapabilities

	// Category and Radius override the saved preferences when set.
	Category model.Category
	Radius   int

	// PhotoClient downloads place photos. Defaults to a 15s client.
	PhotoClient *http.Client
}

// Model is the root Bubble Tea model.
type Model struct {
	db          *sql.DB
	api         PlacesAPI
	locator     location.Provider
	photoClient *http.Client
	termCaps    TerminalCapabilities

	search    *search.Controller
	selection *search.Selection

	screen           model.Screen
	locStatus        model.LocationStatus
	locErr           error
	panelOpen        bool
	selectedCategory model.Category
	gState           GState
	markerPending    bool

	picker   CategoryPicker
	slider   RadiusSlider
	nearby   *NearbyModel
	saved    *SavedModel
	requests *RequestsModel
	detail   *DetailModel

	savedIndex map[string]int64

	spinner spinner.Model
	width   int
	height  int

	error       string
	info        string
	showingHelp bool

	keys      KeyMap
	prefs     UIPreferences
	undoStack []undoAction
	redoStack []undoAction
}

// New creates a new root model.
func New(cfg Config) Model {
	prefs := loadUIPreferences()
	if cfg.Category.Valid() {
		prefs.Category = string(cfg.Category)
	}
	if cfg.Radius > 0 {
		prefs.RadiusMeters = model.ClampRadius(cfg.Radius)
	}

	picker := NewCategoryPicker(model.Category(prefs.Category))
	slider := NewRadiusSlider(prefs.RadiusMeters)

	photoClient := cfg.PhotoClient
	if photoClient == nil {
		photoClient = &http.Client{Timeout: 15 * time.Second}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	var calls *places.CallLog
	if cfg.Places != nil {
		calls = cfg.Places.Calls()
	}

	return Model{
		db:          cfg.DB,
		api:         cfg.Places,
		locator:     cfg.Locator,
		photoClient: photoClient,
		termCaps:    cfg.TermCaps,
		search: search.NewController(cfg.Places, search.Options{
			Category:     picker.Value(),
			RadiusMeters: slider.Value(),
		}),
		selection:  search.NewSelection(cfg.Places),
		screen:     model.ScreenNearby,
		locStatus:  model.LocationPending,
		gState:     GStateIdle,
		picker:     picker,
		slider:     slider,
		nearby:     NewNearbyModel(prefs.SortByDistance),
		saved:      NewSavedModel(nil),
		requests:   NewRequestsModel(calls),
		detail:     &DetailModel{},
		savedIndex: map[string]int64{},
		spinner:    sp,
		keys:       DefaultKeyMap(),
		prefs:      prefs,
	}
}

// Init requests the device location and loads saved places.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		locateCmd(m.locator),
		m.spinner.Tick,
		loadSavedPlacesCmd(m.db),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		return m, nil

	case model.LocationResolvedMsg:
		m.locStatus = model.LocationReady
		m.locErr = nil
		return m, m.withSpinner(m.search.SetLocation(msg.Coordinates))

	case model.LocationFailedMsg:
		m.locErr = msg.Err
		if errors.Is(msg.Err, location.ErrPermissionDenied) {
			m.locStatus = model.LocationDenied
		} else {
			m.locStatus = model.LocationUnavailable
		}
		log.Printf("ui: location unavailable: %v", msg.Err)
		return m, nil

	case model.SearchResultMsg:
		if !m.search.Apply(msg) {
			return m, nil
		}
		if !m.search.Failed() {
			m.error = ""
		}
		if criteria, ok := m.search.Criteria(); ok {
			m.nearby.SetPlaces(m.search.Places(), criteria.Center, m.savedIndex)
		}
		return m, nil

	case model.DetailsResultMsg:
		m.selection.Apply(msg)
		return m, nil

	case model.PhotoLoadedMsg:
		m.detail.ApplyPhoto(msg)
		return m, nil

	case model.SavedPlacesLoadedMsg:
		prev := m.saved.listCursor
		m.saved = NewSavedModel(msg.Places)
		m.saved.listCursor = prev
		m.saved.clamp(m.saved.Len())
		m.savedIndex = m.saved.Index()
		m.nearby.MarkSaved(m.savedIndex)
		return m, nil

	case model.PlaceSavedMsg:
		m.pushUndoAction(m.buildSaveAction(msg))
		m.error = ""
		m.info = fmt.Sprintf("Saved %s (u to undo)", msg.Saved.Name)
		return m, loadSavedPlacesCmd(m.db)

	case placeAlreadySavedMsg:
		m.info = msg.name + " is already saved"
		return m, nil

	case model.SavedPlaceDeletedMsg:
		m.pushUndoAction(m.buildDeleteAction(msg))
		m.error = ""
		m.info = fmt.Sprintf("Removed %s (u to undo)", msg.Deleted.Name)
		return m, loadSavedPlacesCmd(m.db)

	case undoAppliedMsg:
		return m, m.applyUndoResult(msg)
	}

	return m, nil
}

// busy reports whether anything is in flight that shows a spinner.
func (m Model) busy() bool {
	return m.locStatus == model.LocationPending ||
		m.search.Loading() ||
		m.selection.State().DetailsLoading ||
		m.detail.photoLoading
}

// withSpinner starts the spinner alongside cmd. A nil cmd stays nil.
func (m Model) withSpinner(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Help) {
		m.showingHelp = !m.showingHelp
		return m, nil
	}
	if m.showingHelp {
		if msg.String() == "esc" {
			m.showingHelp = false
		}
		return m, nil
	}

	// "m" then a marker label opens that marker.
	if m.markerPending {
		m.markerPending = false
		if msg.String() == "esc" {
			return m, nil
		}
		place, ok := m.nearby.SelectLabel(msg.String())
		if !ok {
			m.info = fmt.Sprintf("No marker %q", msg.String())
			return m, nil
		}
		return m, m.openPlace(place, m.search.Category())
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Undo):
		if len(m.undoStack) == 0 {
			m.info = "Nothing to undo"
			return m, nil
		}
		return m, m.undoCmd()
	case key.Matches(msg, m.keys.Redo):
		if len(m.redoStack) == 0 {
			m.info = "Nothing to redo"
			return m, nil
		}
		return m, m.redoCmd()
	case key.Matches(msg, m.keys.NearbyTab):
		m.screen = model.ScreenNearby
		return m, nil
	case key.Matches(msg, m.keys.SavedTab):
		m.screen = model.ScreenSaved
		return m, nil
	case key.Matches(msg, m.keys.RequestsTab):
		m.screen = model.ScreenRequests
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.screen = (m.screen + 1) % 3
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.screen = (m.screen + 2) % 3
		return m, nil
	}

	// Handle "gg" state machine
	if msg.String() == "g" {
		if m.gState == GStateIdle {
			m.gState = GStateFirstG
			return m, nil
		}
		m.gState = GStateIdle
		m.jumpToTop()
		return m, nil
	}
	m.gState = GStateIdle

	switch m.screen {
	case model.ScreenNearby:
		return m.handleNearbyKey(msg)
	case model.ScreenSaved:
		return m.handleSavedKey(msg)
	case model.ScreenRequests:
		return m.handleRequestsKey(msg)
	}
	return m, nil
}

func (m *Model) jumpToTop() {
	switch m.screen {
	case model.ScreenNearby:
		m.nearby.JumpToTop()
	case model.ScreenSaved:
		m.saved.JumpToTop()
	case model.ScreenRequests:
		m.requests.JumpToTop()
	}
}

func (m Model) handleNearbyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextCategory):
		return m, m.setCategory(m.picker.Next())
	case key.Matches(msg, m.keys.PrevCategory):
		return m, m.setCategory(m.picker.Prev())
	case key.Matches(msg, m.keys.RadiusUp):
		return m, m.setRadius(m.slider.Increase())
	case key.Matches(msg, m.keys.RadiusDown):
		return m, m.setRadius(m.slider.Decrease())
	case key.Matches(msg, m.keys.Refresh):
		switch m.locStatus {
		case model.LocationUnavailable:
			m.locStatus = model.LocationPending
			m.locErr = nil
			return m, tea.Batch(locateCmd(m.locator), m.spinner.Tick)
		case model.LocationDenied:
			m.info = "Location access denied"
			return m, nil
		}
		return m, m.withSpinner(m.search.Refresh())
	case key.Matches(msg, m.keys.SortDistance):
		if m.nearby.ToggleSort() {
			m.info = "Sorted nearest first"
		} else {
			m.info = "Sorted in search order"
		}
		m.prefs.SortByDistance = m.nearby.sortByDistance
		m.persistPrefs()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.nearby.MoveDown()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.nearby.MoveUp()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.nearby.JumpToBottom()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageDown):
		m.nearby.HalfPageDown(m.height / 2)
		return m, nil
	case key.Matches(msg, m.keys.HalfPageUp):
		m.nearby.HalfPageUp(m.height / 2)
		return m, nil
	case key.Matches(msg, m.keys.Select):
		place, ok := m.nearby.Selected()
		if !ok {
			return m, nil
		}
		return m, m.openPlace(place, m.search.Category())
	case key.Matches(msg, m.keys.Back):
		m.panelOpen = false
		return m, nil
	case key.Matches(msg, m.keys.Marker):
		if m.nearby.Len() > 0 {
			m.markerPending = true
			m.info = "Marker: press its label"
		}
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m, m.saveSelected()
	case key.Matches(msg, m.keys.Photo):
		return m, m.loadPhoto()
	}
	return m, nil
}

func (m Model) handleSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.saved.MoveDown()
	case key.Matches(msg, m.keys.Up):
		m.saved.MoveUp()
	case key.Matches(msg, m.keys.Bottom):
		m.saved.JumpToBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.saved.HalfPageDown(m.height / 2)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.saved.HalfPageUp(m.height / 2)
	case key.Matches(msg, m.keys.Delete):
		if sp, ok := m.saved.Selected(); ok {
			return m, deleteSavedPlaceCmd(m.db, sp.ID)
		}
	case key.Matches(msg, m.keys.Select):
		if sp, ok := m.saved.Selected(); ok {
			m.screen = model.ScreenNearby
			return m, m.openPlace(sp.ToPlace(), model.Category(sp.Category))
		}
	}
	return m, nil
}

func (m Model) handleRequestsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.requests.MoveDown()
	case key.Matches(msg, m.keys.Up):
		m.requests.MoveUp()
	case key.Matches(msg, m.keys.Bottom):
		m.requests.JumpToBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.requests.HalfPageDown(m.height / 2)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.requests.HalfPageUp(m.height / 2)
	}
	return m, nil
}

func (m *Model) setCategory(c model.Category) tea.Cmd {
	m.prefs.Category = string(c)
	m.persistPrefs()
	return m.withSpinner(m.search.SetCategory(c))
}

func (m *Model) setRadius(meters int) tea.Cmd {
	m.prefs.RadiusMeters = meters
	m.persistPrefs()
	return m.withSpinner(m.search.SetRadius(meters))
}

func (m *Model) persistPrefs() {
	if err := saveUIPreferences(m.prefs); err != nil {
		log.Printf("ui: %v", err)
	}
}

// openPlace selects place and opens the detail panel.
func (m *Model) openPlace(place model.Place, category model.Category) tea.Cmd {
	m.panelOpen = true
	m.selectedCategory = category
	m.detail.Reset()
	return m.withSpinner(m.selection.Select(place))
}

// saveSelected bookmarks the open place, or the place under the cursor.
func (m *Model) saveSelected() tea.Cmd {
	if m.db == nil {
		m.error = "saving is unavailable without a database"
		return nil
	}

	place, ok := m.selection.Place()
	category := m.selectedCategory
	if !m.panelOpen || !ok {
		place, ok = m.nearby.Selected()
		category = m.search.Category()
	}
	if !ok {
		m.info = "Nothing selected"
		return nil
	}

	p := model.NewSavedPlace{
		PlaceID:   place.ID,
		Name:      place.Name,
		Vicinity:  place.Vicinity,
		Category:  string(category),
		Latitude:  place.Location.Latitude,
		Longitude: place.Location.Longitude,
	}
	if det := m.selection.State().Details; det != nil && det.ID == place.ID {
		p.Rating = det.Rating
	}
	return savePlaceCmd(m.db, p)
}

func (m *Model) loadPhoto() tea.Cmd {
	if !m.panelOpen {
		return nil
	}
	det := m.selection.State().Details
	if det == nil || det.PhotoReference == "" {
		m.info = "No photo for this place"
		return nil
	}
	if m.detail.photoRef == det.PhotoReference && (m.detail.photoLoading || m.detail.photoArt != "") {
		return nil
	}
	m.detail.StartPhoto(det.PhotoReference)
	w, h := m.photoSize()
	return tea.Batch(
		loadPhotoCmd(m.photoClient, m.api.PhotoURL(det.PhotoReference, 0), det.PhotoReference, m.termCaps, w, h),
		m.spinner.Tick,
	)
}

func (m Model) photoSize() (int, int) {
	w := m.rightPaneWidth() - 10
	if w < 10 {
		w = 10
	}
	h := m.height / 3
	if h < 6 {
		h = 6
	}
	return w, h
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	var breadcrumbParts []string
	switch m.screen {
	case model.ScreenNearby:
		breadcrumbParts = []string{"Nearby", m.search.Category().Label() + " · " + util.FormatRadius(m.search.Radius())}
		if place, ok := m.selection.Place(); ok && m.panelOpen {
			breadcrumbParts = []string{"Nearby", place.Name}
		}
	case model.ScreenSaved:
		breadcrumbParts = []string{"Saved"}
	case model.ScreenRequests:
		breadcrumbParts = []string{"Requests"}
	}

	header := renderHeader(breadcrumbParts, m.width)
	tabs := renderTabs(m.screen, m.saved.Len(), m.width)
	footer := RenderHelp(m.keys, m.screen, m.panelOpen, m.width)

	var banners []string
	if m.error != "" {
		banners = append(banners, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		banners = append(banners, SuccessStyle.Width(m.width).Render(m.info))
	}

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(tabs) - lipgloss.Height(footer) - len(banners)
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch m.screen {
	case model.ScreenNearby:
		content = m.nearbyView(contentHeight)
	case model.ScreenSaved:
		var center *model.Coordinates
		if criteria, ok := m.search.Criteria(); ok {
			center = &criteria.Center
		}
		content = m.saved.View(m.width, contentHeight, center)
	case model.ScreenRequests:
		content = m.requests.View(m.width, contentHeight)
	}

	// Ensure content fills the available height to anchor footer at bottom
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	parts := []string{header, tabs}
	parts = append(parts, banners...)
	parts = append(parts, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) wideLayout() bool {
	return m.width >= 100
}

func (m Model) rightPaneWidth() int {
	if !m.wideLayout() {
		return m.width
	}
	return m.width - m.width*45/100
}

func (m Model) nearbyView(height int) string {
	var center *model.Coordinates
	criteria, located := m.search.Criteria()
	if located {
		center = &criteria.Center
	}
	filters := renderFilterBar(m.picker, m.slider, center, m.width)
	status := m.searchStatusLine()

	bodyHeight := height - lipgloss.Height(filters) - lipgloss.Height(status)
	var body string
	switch m.locStatus {
	case model.LocationPending:
		body = EmptyStateStyle.Render(m.spinner.View() + " Loading your location...")
	case model.LocationDenied:
		body = EmptyStateStyle.Render(`    Location access denied.
    Nearby search needs your location. Run with  -setup  to allow it,
    or pass  -lat  and  -lng  to search around a fixed point.`)
	case model.LocationUnavailable:
		msg := "Could not determine your location."
		if m.locErr != nil {
			msg = fmt.Sprintf("Could not determine your location: %v", m.locErr)
		}
		body = EmptyStateStyle.Render("    " + msg + "\n    Press  r  to try again.")
	default:
		body = m.resultsView(criteria, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, filters, status, body)
}

func (m Model) resultsView(criteria model.SearchCriteria, height int) string {
	emptyMsg := "    Searching..."
	switch {
	case m.search.Loading() || !m.search.HasSearched():
	case m.search.Failed():
		emptyMsg = "    Search failed. Press  r  to retry."
	default:
		emptyMsg = fmt.Sprintf("    No places found within %s.\n    Try a wider radius ( + ) or another category ( ] ).",
			util.FormatRadius(criteria.RadiusMeters))
	}

	selectedID := ""
	if place, ok := m.selection.Place(); ok {
		selectedID = place.ID
	}

	if !m.wideLayout() {
		if m.panelOpen {
			return m.detailView(m.width, height)
		}
		return m.nearby.View(m.width, height, emptyMsg)
	}

	leftW := m.width * 45 / 100
	rightW := m.width - leftW
	left := m.nearby.View(leftW, height, emptyMsg)
	var right string
	if m.panelOpen {
		right = m.detailView(rightW, height)
	} else {
		right = renderMap(criteria.Center, criteria.RadiusMeters, m.search.Places(), selectedID, rightW, height)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(leftW).Height(height).MaxHeight(height).Render(left),
		lipgloss.NewStyle().Width(rightW).Height(height).MaxHeight(height).Render(right),
	)
}

func (m Model) detailView(width, height int) string {
	v := detailView{
		state:   m.selection.State(),
		err:     m.selection.Err(),
		spinner: m.spinner.View(),
	}
	if place, ok := m.selection.Place(); ok {
		v.place = place
		v.hasPlace = true
		_, v.saved = m.savedIndex[place.ID]
		if criteria, located := m.search.Criteria(); located {
			v.distance = distanceMeters(criteria.Center, place.Location)
		} else {
			v.distance = -1
		}
	}
	return m.detail.View(v, width, height)
}

// searchStatusLine tells a failed search apart from an empty one.
func (m Model) searchStatusLine() string {
	switch {
	case m.locStatus != model.LocationReady:
		return ""
	case m.search.Loading():
		return StatusBarStyle.Render(fmt.Sprintf("%s Searching %s within %s...",
			m.spinner.View(), strings.ToLower(m.search.Category().Label()), util.FormatRadius(m.search.Radius())))
	case m.search.Failed():
		msg := "Search failed"
		if err := m.search.Err(); err != nil {
			msg += ": " + err.Error()
		}
		return ErrorStyle.Width(m.width).Render(msg)
	case m.search.HasSearched() && len(m.search.Places()) == 0:
		return StatusBarStyle.Render("No places found")
	}
	return ""
}

func renderTabs(screen model.Screen, savedCount, width int) string {
	tabs := []struct {
		name   string
		screen model.Screen
	}{
		{"Nearby", model.ScreenNearby},
		{fmt.Sprintf("Saved (%d)", savedCount), model.ScreenSaved},
		{"Requests", model.ScreenRequests},
	}

	var tabStrings []string
	for _, tab := range tabs {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

		if screen == tab.screen {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}

		tabStrings = append(tabStrings, tabStyle.Render(tab.name))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

func renderHeader(breadcrumbParts []string, width int) string {
	title := HeaderStyle.Render("nearby")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	right := BreadcrumbStyle.Render(time.Now().Format("Mon 02 Jan 15:04")) + "  "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return TitleStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

// Commands

type placeAlreadySavedMsg struct {
	name string
}

func locateCmd(p location.Provider) tea.Cmd {
	if p == nil {
		return func() tea.Msg {
			return model.LocationFailedMsg{Err: errors.New("no location provider configured")}
		}
	}
	return func() tea.Msg {
		coords, err := location.Locate(context.Background(), p)
		if err != nil {
			return model.LocationFailedMsg{Err: err}
		}
		return model.LocationResolvedMsg{Coordinates: coords}
	}
}

func loadSavedPlacesCmd(database *sql.DB) tea.Cmd {
	if database == nil {
		return nil
	}
	return func() tea.Msg {
		saved, err := db.ListSavedPlaces(database)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.SavedPlacesLoadedMsg{Places: saved}
	}
}

func savePlaceCmd(database *sql.DB, p model.NewSavedPlace) tea.Cmd {
	return func() tea.Msg {
		_, err := db.GetSavedPlaceByPlaceID(database, p.PlaceID)
		if err == nil {
			return placeAlreadySavedMsg{name: p.Name}
		}
		if !errors.Is(err, db.ErrNotFound) {
			return model.ErrorMsg{Err: err}
		}

		id, err := db.InsertSavedPlace(database, p)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		saved, err := db.GetSavedPlace(database, id)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load saved place: %w", err)}
		}
		return model.PlaceSavedMsg{Saved: saved}
	}
}

func deleteSavedPlaceCmd(database *sql.DB, id int64) tea.Cmd {
	if database == nil {
		return nil
	}
	return func() tea.Msg {
		saved, err := db.GetSavedPlace(database, id)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load saved place before delete: %w", err)}
		}
		if err := db.DeleteSavedPlace(database, id); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to delete saved place: %w", err)}
		}
		return model.SavedPlaceDeletedMsg{Deleted: saved}
	}
}
