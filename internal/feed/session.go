// ABOUTME: Paging state machines for the listing and search post streams.
// ABOUTME: Serializes fetches through one gate and discards stale responses.
package feed

import "strings"

// Cursor tracks one paging stream. The page field is always the next page
// to request; it advances only after a successful fetch.
type Cursor struct {
	page    int
	hasNext bool
}

// NewCursor returns a cursor positioned at page 1 with more pages assumed.
func NewCursor() Cursor {
	return Cursor{page: 1, hasNext: true}
}

// NextPage returns the page number the next fetch should request.
func (c *Cursor) NextPage() int {
	return c.page
}

// HasNext reports whether the stream may have more pages.
func (c *Cursor) HasNext() bool {
	return c.hasNext
}

// Complete records a successful fetch of the current page. Once the server
// says has_next=false the stream is exhausted and the cursor freezes.
func (c *Cursor) Complete(hasNext bool) {
	c.page++
	c.hasNext = hasNext
}

// Reset returns the cursor to page 1.
func (c *Cursor) Reset() {
	c.page = 1
	c.hasNext = true
}

// Session owns the listing and search cursors, the search mode, and the
// single in-flight gate shared by both streams. Fetch commands capture the
// generation returned by Begin*; responses carrying an old generation are
// ignored, which neutralizes responses that arrive after search was entered
// or cleared.
type Session struct {
	listing Cursor
	search  Cursor

	query        string
	tag          string
	searchActive bool

	inFlight bool
	gen      int
}

// NewSession creates a session at the start of the listing stream.
func NewSession() *Session {
	return &Session{
		listing: NewCursor(),
		search:  NewCursor(),
	}
}

// SearchActive reports whether the search stream is the current one.
func (s *Session) SearchActive() bool { return s.searchActive }

// Query returns the active search query, empty outside search mode.
func (s *Session) Query() string { return s.query }

// Tag returns the active tag filter, empty when searching by free text.
func (s *Session) Tag() string { return s.tag }

// InFlight reports whether a fetch is outstanding for either stream.
func (s *Session) InFlight() bool { return s.inFlight }

// Generation returns the current response-validity generation.
func (s *Session) Generation() int { return s.gen }

// Stale reports whether a response generation is no longer current.
func (s *Session) Stale(gen int) bool { return gen != s.gen }

// ListingPage returns the next listing page to request.
func (s *Session) ListingPage() int { return s.listing.NextPage() }

// SearchPage returns the next search page to request.
func (s *Session) SearchPage() int { return s.search.NextPage() }

// ListingHasNext reports whether the listing stream may have more pages.
func (s *Session) ListingHasNext() bool { return s.listing.HasNext() }

// SearchHasNext reports whether the search stream may have more pages.
func (s *Session) SearchHasNext() bool { return s.search.HasNext() }

// BeginListing acquires the gate for the next listing page. It refuses
// while any fetch is outstanding or the listing stream is exhausted.
func (s *Session) BeginListing() (page, gen int, ok bool) {
	if s.inFlight || !s.listing.HasNext() {
		return 0, 0, false
	}
	s.inFlight = true
	return s.listing.NextPage(), s.gen, true
}

// BeginSearch acquires the gate for the next search page. It refuses
// outside search mode, while any fetch is outstanding, or once the search
// stream is exhausted.
func (s *Session) BeginSearch() (query string, page, gen int, ok bool) {
	if !s.searchActive || s.inFlight || !s.search.HasNext() {
		return "", 0, 0, false
	}
	s.inFlight = true
	return s.query, s.search.NextPage(), s.gen, true
}

// CompleteListing applies a successful listing fetch. A stale generation
// leaves all state untouched and reports false.
func (s *Session) CompleteListing(gen int, hasNext bool) bool {
	if s.Stale(gen) {
		return false
	}
	s.inFlight = false
	s.listing.Complete(hasNext)
	return true
}

// CompleteSearch applies a successful search fetch.
func (s *Session) CompleteSearch(gen int, hasNext bool) bool {
	if s.Stale(gen) {
		return false
	}
	s.inFlight = false
	s.search.Complete(hasNext)
	return true
}

// Fail releases the gate after a failed fetch, leaving the cursor on the
// same page so the user can retry. Stale failures are ignored.
func (s *Session) Fail(gen int) bool {
	if s.Stale(gen) {
		return false
	}
	s.inFlight = false
	return true
}

// EnterSearch switches to the search stream for the given query. A blank
// query is equivalent to clearing search. A tag filter is a search whose
// query equals the tag name. Any outstanding fetch is disowned: its
// response will carry an old generation and be dropped.
func (s *Session) EnterSearch(query, tag string) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.ClearSearch()
		return
	}
	s.query = query
	s.tag = strings.TrimSpace(tag)
	s.searchActive = true
	s.search.Reset()
	s.disown()
}

// ClearSearch leaves search mode and restarts the listing stream from
// page 1.
func (s *Session) ClearSearch() {
	s.query = ""
	s.tag = ""
	s.searchActive = false
	s.search.Reset()
	s.listing.Reset()
	s.disown()
}

// disown bumps the generation and frees the gate. An in-flight request
// keeps running but can no longer complete, fail, or hold the gate.
func (s *Session) disown() {
	s.gen++
	s.inFlight = false
}
