package logic

import (
	"strings"

	"aelist/internal/domain"
)

// NoSelection marks a selection that doesn't point at any executable
const NoSelection = -1

// DefaultDisplayCap is the default number of matches rendered per keystroke
const DefaultDisplayCap = 30

// MaxQueryLen is the longest query accepted, in characters
const MaxQueryLen = 2047

// Result is the outcome of filtering the index with a query
type Result struct {
	MatchCount int   // records whose name contains the query
	Matches    []int // positions of the first cap matches, in index order
	Selected   int   // position of the selected record or NoSelection
	Exact      bool  // Selected names the query exactly
}

// Filter scans idx for records whose name contains query. The selection is
// the first record named exactly query, else the first substring match,
// else prev. At most limit matches are collected for display.
func Filter(idx *domain.Index, query string, limit int, prev int) Result {
	res := Result{Selected: prev}
	firstMatch := NoSelection
	exact := NoSelection

	for i, exe := range idx.Executables {
		if !strings.Contains(exe.Name, query) {
			continue
		}
		res.MatchCount++
		if firstMatch == NoSelection {
			firstMatch = i
		}
		if exact == NoSelection && exe.Name == query {
			exact = i
		}
		if len(res.Matches) < limit {
			res.Matches = append(res.Matches, i)
		}
	}

	switch {
	case exact != NoSelection:
		res.Selected = exact
		res.Exact = true
	case firstMatch != NoSelection:
		res.Selected = firstMatch
	}
	return res
}

// Selection tracks the query typed so far and the record it selects
type Selection struct {
	index  *domain.Index
	limit  int
	query  string
	result Result
}

// NewSelection creates a selection over idx showing at most limit matches.
// It starts filtered with the empty query.
func NewSelection(idx *domain.Index, limit int) *Selection {
	if limit < 1 {
		limit = DefaultDisplayCap
	}
	s := &Selection{index: idx, limit: limit}
	s.result = Filter(idx, "", limit, NoSelection)
	return s
}

// Update refilters the index if query changed. Queries longer than
// MaxQueryLen characters are truncated.
func (s *Selection) Update(query string) Result {
	query = truncate(query, MaxQueryLen)
	if query == s.query {
		return s.result
	}
	s.query = query
	s.result = Filter(s.index, query, s.limit, s.result.Selected)
	return s.result
}

// Query returns the current query
func (s *Selection) Query() string {
	return s.query
}

// Result returns the outcome of the last filter run
func (s *Selection) Result() Result {
	return s.result
}

// Current returns the selected executable, if any
func (s *Selection) Current() (domain.Executable, bool) {
	if s.result.Selected == NoSelection || s.result.Selected >= s.index.Len() {
		return domain.Executable{}, false
	}
	return s.index.At(s.result.Selected), true
}

// Matching returns every executable matching the current query, uncapped
func (s *Selection) Matching() []domain.Executable {
	var out []domain.Executable
	for _, exe := range s.index.Executables {
		if strings.Contains(exe.Name, s.query) {
			out = append(out, exe)
		}
	}
	return out
}

// Limit returns the display cap
func (s *Selection) Limit() int {
	return s.limit
}

func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
