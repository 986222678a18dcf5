// ABOUTME: Bubbletea model for the infinite-scroll blog browser.
// ABOUTME: Coordinates listing/search paging, debounced input, and grid layout.
package tui

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"blogdeck/internal/api"
	"blogdeck/internal/diag"
	"blogdeck/internal/feed"
	"blogdeck/internal/models"
	"blogdeck/internal/render"
)

// Fetcher is the page-fetching dependency of the browse model.
type Fetcher interface {
	ListPosts(ctx context.Context, page int) (*api.PageResult, error)
	SearchPosts(ctx context.Context, query string, page int) (*api.PageResult, error)
}

// Debounce and trigger timing, matching the page's behavior.
const (
	scrollDebounce  = 100 * time.Millisecond
	resizeDebounce  = 250 * time.Millisecond
	searchDebounce  = 500 * time.Millisecond
	fillProbeDelay  = 100 * time.Millisecond
	fillSettleDelay = 500 * time.Millisecond
	bannerLifetime  = 5 * time.Second

	// fillTolerance is the extra content height (in rows) still treated as
	// "too short to scroll" by the viewport-fill check.
	fillTolerance = 3

	featuredLimit = 3
)

// pillCategories is the fixed filter pill bar; the empty slug is "All".
var pillCategories = []string{"", "tech", "thoughts", "stories", "career", "project"}

type listingLoadedMsg struct {
	gen    int
	result *api.PageResult
}

type listingErrorMsg struct {
	gen int
	err error
}

type searchLoadedMsg struct {
	gen    int
	result *api.PageResult
}

type searchErrorMsg struct {
	gen int
	err error
}

// Timer messages carry a sequence number; a stale sequence means the timer
// was superseded and the tick is dropped.
type scrollCheckMsg struct{}

type resizeDoneMsg struct{ seq int }

type searchDebounceMsg struct{ seq int }

type fillProbeMsg struct{ seq int }

type fillSettleMsg struct{ seq int }

type clearStatusMsg struct{ id int }

var (
	browseTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pillStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	pillActiveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("212")).Padding(0, 1)
)

// BrowseModel is the bubbletea model for the blog browser.
type BrowseModel struct {
	fetcher Fetcher
	session *feed.Session

	cardMinWidth  int
	triggerMargin int

	featured []models.Post
	posts    []models.Post

	searchInput   textinput.Model
	searchFocused bool
	searchSeq     int
	searchFailed  bool
	totalResults  int

	viewport  viewport.Model
	spinner   spinner.Model
	width     int
	height    int
	resizeSeq int

	scrollPending bool
	probeSeq      int

	selected  int
	rowStart  []int // first content line of each row
	rowHeight []int
	cardRow   []int // card index -> row index
	pillIndex int

	status   string
	statusID int

	quitting bool

	openURLFn  func(string) error
	resolveFn  func(string) string
	saveFn     func(models.Post) error
	loadedOnce bool
}

// BrowseOption configures optional BrowseModel dependencies.
type BrowseOption func(*BrowseModel)

// WithSaver sets the callback used to save the selected post locally.
func WithSaver(fn func(models.Post) error) BrowseOption {
	return func(m *BrowseModel) { m.saveFn = fn }
}

// WithURLResolver sets the resolver for possibly-relative post URLs.
func WithURLResolver(fn func(string) string) BrowseOption {
	return func(m *BrowseModel) { m.resolveFn = fn }
}

// NewBrowseModel creates the browser bound to a fetcher.
func NewBrowseModel(fetcher Fetcher, cardMinWidth, triggerMargin int, opts ...BrowseOption) BrowseModel {
	input := textinput.New()
	input.Placeholder = "search posts"
	input.Prompt = "/ "
	input.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := BrowseModel{
		fetcher:       fetcher,
		session:       feed.NewSession(),
		cardMinWidth:  cardMinWidth,
		triggerMargin: triggerMargin,
		searchInput:   input,
		spinner:       s,
		viewport:      viewport.New(0, 0),
		openURLFn:     openURLInBrowser,
		resolveFn:     func(ref string) string { return ref },
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model. The first listing page loads immediately.
func (m BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.startListingFetch(), m.spinner.Tick)
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = clampInt(msg.Width-10, 10, 60)
		m.layout()
		if !m.loadedOnce {
			m.rebuildContent()
		}
		m.resizeSeq++
		seq := m.resizeSeq
		return m, tea.Tick(resizeDebounce, func(time.Time) tea.Msg { return resizeDoneMsg{seq: seq} })

	case resizeDoneMsg:
		if msg.seq != m.resizeSeq {
			return m, nil
		}
		// Layout-only reaction: re-run the grid fill, never fetch.
		m.rebuildContent()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case listingLoadedMsg:
		return m.applyListingPage(msg)

	case listingErrorMsg:
		if !m.session.Fail(msg.gen) {
			return m, nil
		}
		diag.Error("browse", msg.err, map[string]string{"stream": "listing"})
		cmd := m.setTransientStatus("Unable to load posts, scroll to retry")
		return m, cmd

	case searchLoadedMsg:
		return m.applySearchPage(msg)

	case searchErrorMsg:
		if !m.session.Fail(msg.gen) {
			return m, nil
		}
		diag.Error("browse", msg.err, map[string]string{"stream": "search"})
		m.searchFailed = true
		m.rebuildContent()
		return m, nil

	case scrollCheckMsg:
		m.scrollPending = false
		return m, m.maybeLoadNext()

	case searchDebounceMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		return m.performSearch(m.searchInput.Value())

	case fillProbeMsg:
		if msg.seq != m.probeSeq {
			return m, nil
		}
		if !m.contentTooShort() {
			return m, nil
		}
		seq := m.probeSeq
		return m, tea.Tick(fillSettleDelay, func(time.Time) tea.Msg { return fillSettleMsg{seq: seq} })

	case fillSettleMsg:
		if msg.seq != m.probeSeq {
			return m, nil
		}
		if !m.contentTooShort() {
			return m, nil
		}
		return m, m.nextPageCmd()

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		if m.session.InFlight() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m BrowseModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.searchFocused {
		return m.updateSearchInput(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "/":
		m.searchFocused = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "esc":
		if m.session.SearchActive() || m.searchFailed {
			return m.clearSearch()
		}
		return m, nil
	case "tab":
		return m.cyclePill(1)
	case "shift+tab":
		return m.cyclePill(-1)
	case "t":
		return m.filterBySelectedTag()
	case "s":
		return m.saveSelected()
	case "enter":
		return m.openSelected()
	case "r":
		return m.refresh()
	case "left", "h":
		return m.moveSelection(-1)
	case "right", "l":
		return m.moveSelection(1)
	case "up", "k":
		return m.moveSelectionRow(-1)
	case "down", "j":
		return m.moveSelectionRow(1)
	case "pgup":
		m.viewport.ViewUp()
		cmd := m.scheduleScrollCheck()
		return m, cmd
	case "pgdown":
		m.viewport.ViewDown()
		cmd := m.scheduleScrollCheck()
		return m, cmd
	case "g":
		m.selected = 0
		m.viewport.GotoTop()
		return m, nil
	case "G":
		if n := m.cardCount(); n > 0 {
			m.selected = n - 1
		}
		m.rebuildContent()
		m.viewport.GotoBottom()
		cmd := m.scheduleScrollCheck()
		return m, cmd
	}

	return m, nil
}

func (m BrowseModel) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.searchFocused = false
		m.searchInput.Blur()
		if m.session.SearchActive() || m.searchFailed {
			return m.clearSearch()
		}
		return m, nil
	case tea.KeyEnter:
		m.searchFocused = false
		m.searchInput.Blur()
		m.searchSeq++ // cancel any pending debounce
		return m.performSearch(m.searchInput.Value())
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	after := m.searchInput.Value()
	if before == after {
		return m, cmd
	}

	// Restart the debounce window on every change. A cleared box fires
	// immediately; a single character is too noisy to search on.
	m.searchSeq++
	trimmed := strings.TrimSpace(after)
	switch {
	case len(trimmed) == 0:
		model, searchCmd := m.performSearch("")
		return model, tea.Batch(cmd, searchCmd)
	case len(trimmed) >= 2:
		seq := m.searchSeq
		return m, tea.Batch(cmd, tea.Tick(searchDebounce, func(time.Time) tea.Msg {
			return searchDebounceMsg{seq: seq}
		}))
	default:
		return m, cmd
	}
}

// performSearch enters search mode for query, or clears search when the
// trimmed query is empty.
func (m BrowseModel) performSearch(query string) (tea.Model, tea.Cmd) {
	query = strings.TrimSpace(query)
	if query == "" {
		return m.clearSearch()
	}
	m.session.EnterSearch(query, "")
	return m.beginSearchLoad()
}

// filterByTag is the tag-chip/pill path: a tag filter is a search whose
// query is the tag name.
func (m BrowseModel) filterByTag(tag string) (tea.Model, tea.Cmd) {
	m.searchInput.SetValue(tag)
	m.searchSeq++
	m.session.EnterSearch(tag, tag)
	return m.beginSearchLoad()
}

func (m BrowseModel) beginSearchLoad() (tea.Model, tea.Cmd) {
	m.featured = nil
	m.posts = nil
	m.selected = 0
	m.searchFailed = false
	m.totalResults = 0
	m.rebuildContent()
	m.viewport.GotoTop()
	return m, tea.Batch(m.startSearchFetch(), m.spinner.Tick)
}

func (m BrowseModel) clearSearch() (tea.Model, tea.Cmd) {
	m.session.ClearSearch()
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.searchFocused = false
	m.searchSeq++
	m.searchFailed = false
	m.totalResults = 0
	m.pillIndex = 0
	m.featured = nil
	m.posts = nil
	m.selected = 0
	m.rebuildContent()
	m.viewport.GotoTop()
	return m, tea.Batch(m.startListingFetch(), m.spinner.Tick)
}

func (m BrowseModel) refresh() (tea.Model, tea.Cmd) {
	if m.session.SearchActive() {
		query, tag := m.session.Query(), m.session.Tag()
		m.session.EnterSearch(query, tag)
		return m.beginSearchLoad()
	}
	return m.clearSearch()
}

func (m BrowseModel) cyclePill(dir int) (tea.Model, tea.Cmd) {
	m.pillIndex = (m.pillIndex + dir + len(pillCategories)) % len(pillCategories)
	slug := pillCategories[m.pillIndex]
	if slug == "" {
		return m.clearSearch()
	}
	return m.filterByTag(slug)
}

func (m BrowseModel) filterBySelectedTag() (tea.Model, tea.Cmd) {
	post, ok := m.selectedPost()
	if !ok {
		return m, nil
	}
	tags := post.TagList()
	if len(tags) == 0 {
		return m, nil
	}
	// Selecting a chip filters instead of navigating to the post.
	return m.filterByTag(tags[0])
}

func (m BrowseModel) openSelected() (tea.Model, tea.Cmd) {
	post, ok := m.selectedPost()
	if !ok || post.URL == "" {
		// A card without a URL is a no-op, not an error.
		return m, nil
	}
	target := m.resolveFn(post.URL)
	if err := m.openURLFn(target); err != nil {
		diag.Error("browse", err, map[string]string{"url": target})
		cmd := m.setTransientStatus("Could not open browser")
		return m, cmd
	}
	cmd := m.setTransientStatus("Opened " + post.DisplayTitle())
	return m, cmd
}

func (m BrowseModel) saveSelected() (tea.Model, tea.Cmd) {
	post, ok := m.selectedPost()
	if !ok || m.saveFn == nil {
		return m, nil
	}
	if err := m.saveFn(*post); err != nil {
		diag.Error("browse", err, map[string]string{"post": post.Title})
		cmd := m.setTransientStatus("Could not save post")
		return m, cmd
	}
	cmd := m.setTransientStatus("Saved " + post.DisplayTitle())
	return m, cmd
}

// maybeLoadNext is the scroll trigger: near the bottom, fetch the next page
// of whichever stream is current.
func (m *BrowseModel) maybeLoadNext() tea.Cmd {
	linesBelow := m.viewport.TotalLineCount() - (m.viewport.YOffset + m.viewport.Height)
	if linesBelow > m.triggerMargin {
		return nil
	}
	return m.nextPageCmd()
}

func (m *BrowseModel) nextPageCmd() tea.Cmd {
	if m.session.SearchActive() {
		return m.startSearchFetch()
	}
	return m.startListingFetch()
}

func (m *BrowseModel) startListingFetch() tea.Cmd {
	page, gen, ok := m.session.BeginListing()
	if !ok {
		return nil
	}
	fetcher := m.fetcher
	return func() tea.Msg {
		result, err := fetcher.ListPosts(context.Background(), page)
		if err != nil {
			return listingErrorMsg{gen: gen, err: err}
		}
		return listingLoadedMsg{gen: gen, result: result}
	}
}

func (m *BrowseModel) startSearchFetch() tea.Cmd {
	query, page, gen, ok := m.session.BeginSearch()
	if !ok {
		return nil
	}
	fetcher := m.fetcher
	return func() tea.Msg {
		result, err := fetcher.SearchPosts(context.Background(), query, page)
		if err != nil {
			return searchErrorMsg{gen: gen, err: err}
		}
		return searchLoadedMsg{gen: gen, result: result}
	}
}

func (m BrowseModel) applyListingPage(msg listingLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.session.CompleteListing(msg.gen, msg.result.HasNext) {
		return m, nil // stale: a later mode switch owns the page now
	}
	m.loadedOnce = true
	if msg.result.Page == 1 {
		m.featured, m.posts = splitFeatured(msg.result.Posts)
		m.selected = 0
	} else {
		m.posts = append(m.posts, msg.result.Posts...)
	}
	m.rebuildContent()
	cmd := m.armFillProbe()
	return m, cmd
}

func (m BrowseModel) applySearchPage(msg searchLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.session.CompleteSearch(msg.gen, msg.result.HasNext) {
		return m, nil
	}
	m.loadedOnce = true
	m.searchFailed = false
	m.totalResults = msg.result.TotalResults
	if msg.result.Page == 1 {
		m.featured = nil
		m.posts = msg.result.Posts
		m.selected = 0
		m.viewport.GotoTop()
	} else {
		m.posts = append(m.posts, msg.result.Posts...)
	}
	m.rebuildContent()
	cmd := m.armFillProbe()
	return m, cmd
}

// armFillProbe schedules one viewport-fill check per completed load. The
// probe chain is bounded: another probe only arms after the next load.
func (m *BrowseModel) armFillProbe() tea.Cmd {
	m.probeSeq++
	seq := m.probeSeq
	return tea.Tick(fillProbeDelay, func(time.Time) tea.Msg { return fillProbeMsg{seq: seq} })
}

// contentTooShort reports whether the rendered feed cannot produce a
// scrollbar, more pages exist, and nothing is in flight.
func (m *BrowseModel) contentTooShort() bool {
	if m.session.InFlight() || m.viewport.Height <= 0 {
		return false
	}
	if m.viewport.TotalLineCount() > m.viewport.Height+fillTolerance {
		return false
	}
	if m.session.SearchActive() {
		return m.session.SearchHasNext()
	}
	return m.session.ListingHasNext()
}

func (m *BrowseModel) scheduleScrollCheck() tea.Cmd {
	if m.scrollPending {
		return nil
	}
	m.scrollPending = true
	return tea.Tick(scrollDebounce, func(time.Time) tea.Msg { return scrollCheckMsg{} })
}

func (m *BrowseModel) setTransientStatus(text string) tea.Cmd {
	m.status = text
	m.statusID++
	id := m.statusID
	return tea.Tick(bannerLifetime, func(time.Time) tea.Msg { return clearStatusMsg{id: id} })
}

func (m BrowseModel) moveSelection(delta int) (tea.Model, tea.Cmd) {
	n := m.cardCount()
	if n == 0 {
		return m, nil
	}
	m.selected = clampInt(m.selected+delta, 0, n-1)
	m.rebuildContent()
	m.ensureSelectionVisible()
	cmd := m.scheduleScrollCheck()
	return m, cmd
}

func (m BrowseModel) moveSelectionRow(dir int) (tea.Model, tea.Cmd) {
	n := m.cardCount()
	if n == 0 || m.selected >= len(m.cardRow) {
		return m, nil
	}
	row := m.cardRow[m.selected]
	target := m.selected
	for i := m.selected + dir; i >= 0 && i < n; i += dir {
		if m.cardRow[i] != row {
			target = i
			break
		}
	}
	m.selected = target
	m.rebuildContent()
	m.ensureSelectionVisible()
	cmd := m.scheduleScrollCheck()
	return m, cmd
}

func (m *BrowseModel) ensureSelectionVisible() {
	if m.selected >= len(m.cardRow) {
		return
	}
	row := m.cardRow[m.selected]
	if row >= len(m.rowStart) {
		return
	}
	start := m.rowStart[row]
	end := start + m.rowHeight[row]
	switch {
	case start < m.viewport.YOffset:
		m.viewport.SetYOffset(start)
	case end > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(end - m.viewport.Height)
	}
}

func (m *BrowseModel) selectedPost() (*models.Post, bool) {
	if m.selected < len(m.featured) {
		return &m.featured[m.selected], true
	}
	idx := m.selected - len(m.featured)
	if idx < len(m.posts) {
		return &m.posts[idx], true
	}
	return nil, false
}

func (m *BrowseModel) cardCount() int {
	return len(m.featured) + len(m.posts)
}

// layout sizes the viewport under the header and above the help line.
func (m *BrowseModel) layout() {
	header := m.headerView()
	vh := m.height - lipgloss.Height(header) - 1
	if vh < 1 {
		vh = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = vh
}

// rebuildContent renders all cards into the grid and records row offsets
// for selection tracking. Ghost filling happens inside the regular grid.
func (m *BrowseModel) rebuildContent() {
	m.layout()
	w := m.width
	per := render.CardsPerRow(w, m.cardMinWidth)
	if per == 0 {
		m.viewport.SetContent("")
		return
	}

	if m.cardCount() == 0 {
		m.viewport.SetContent(m.emptyContent())
		m.rowStart = nil
		m.rowHeight = nil
		m.cardRow = nil
		return
	}

	if n := m.cardCount(); m.selected >= n {
		m.selected = n - 1
	}

	var rows []string
	m.rowStart = m.rowStart[:0]
	m.rowHeight = m.rowHeight[:0]
	m.cardRow = m.cardRow[:0]

	appendRow := func(row string, cards int) {
		start := 0
		if len(rows) > 0 {
			start = m.rowStart[len(rows)-1] + m.rowHeight[len(rows)-1]
		}
		h := lipgloss.Height(row)
		rows = append(rows, row)
		m.rowStart = append(m.rowStart, start)
		m.rowHeight = append(m.rowHeight, h)
		for i := 0; i < cards; i++ {
			m.cardRow = append(m.cardRow, len(rows)-1)
		}
	}

	// Featured section: hero row, then the side-by-side pair.
	if len(m.featured) > 0 {
		hero := render.FeaturedCard(&m.featured[0], 0, w, m.selected == 0)
		appendRow(hero, 1)

		if len(m.featured) > 1 {
			rest := m.featured[1:]
			if per >= 2 {
				pairW := w / len(rest)
				cards := make([]string, 0, len(rest))
				for i := range rest {
					cards = append(cards, render.FeaturedCard(&rest[i], i+1, pairW, m.selected == i+1))
				}
				appendRow(lipgloss.JoinHorizontal(lipgloss.Top, cards...), len(rest))
			} else {
				for i := range rest {
					appendRow(render.FeaturedCard(&rest[i], i+1, w, m.selected == i+1), 1)
				}
			}
		}
	}

	// Regular grid with ghost-filled last row.
	if len(m.posts) > 0 {
		cardW := w / per
		base := len(m.featured)
		cards := make([]string, 0, len(m.posts))
		for i := range m.posts {
			cards = append(cards, render.RegularCard(&m.posts[i], cardW, m.selected == base+i))
		}
		filled := render.FillLastRow(cards, per, cardW)
		for i := 0; i < len(filled); i += per {
			end := i + per
			if end > len(filled) {
				end = len(filled)
			}
			real := end - i
			if end > len(cards) {
				real = len(cards) - i
				if real < 0 {
					real = 0
				}
			}
			appendRow(lipgloss.JoinHorizontal(lipgloss.Top, filled[i:end]...), real)
		}
	}

	m.viewport.SetContent(strings.Join(rows, "\n"))
}

func (m *BrowseModel) emptyContent() string {
	switch {
	case m.searchFailed:
		return render.SearchUnavailable()
	case m.session.InFlight():
		return render.LoadingPlaceholder()
	case m.session.SearchActive():
		return render.NoResults()
	default:
		return render.LoadingPlaceholder()
	}
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑↓←→ move · enter open · t tag · s save · / search · tab filter · esc all posts · q quit"))
	return b.String()
}

func (m BrowseModel) headerView() string {
	var b strings.Builder

	title := browseTitleStyle.Render("BLOGDECK")
	if m.session.InFlight() {
		title += " " + m.spinner.View()
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(m.pillBar())
	b.WriteString("\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n")
	b.WriteString(render.SectionTitle(m.session.Query(), m.session.Tag()))
	if m.session.SearchActive() && !m.searchFailed {
		b.WriteString("  ")
		b.WriteString(render.ResultCount(m.totalResults))
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(render.ErrorBanner(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

func (m BrowseModel) pillBar() string {
	pills := make([]string, 0, len(pillCategories))
	for i, slug := range pillCategories {
		label := "All"
		if slug != "" {
			label = models.TitleCase(slug)
		}
		style := pillStyle
		if i == m.pillIndex {
			style = pillActiveStyle
		}
		pills = append(pills, style.Render(label))
	}
	return strings.Join(pills, " ")
}

// splitFeatured carves page 1 into up to three featured posts plus the
// remainder as regular cards.
func splitFeatured(posts []models.Post) (featured, regular []models.Post) {
	if len(posts) <= featuredLimit {
		return posts, nil
	}
	return posts[:featuredLimit], posts[featuredLimit:]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func openURLInBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Run()
}
