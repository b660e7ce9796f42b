package ai

// Entry is a cached search result for one position: the best score found
// and the depth it was searched to.
type Entry struct {
	Score float64
	Depth int
}

// TranspositionTable maps position fingerprints to cached search results.
// It is not safe for concurrent use; the search engine is single-threaded
// per call and callers must serialize access.
type TranspositionTable struct {
	entries map[string]Entry
	maxSize int
}

// NewTranspositionTable creates a table with the given size cap.
func NewTranspositionTable(maxSize int) *TranspositionTable {
	return &TranspositionTable{
		entries: make(map[string]Entry),
		maxSize: maxSize,
	}
}

// Lookup returns the cached entry for a fingerprint, if present.
func (t *TranspositionTable) Lookup(key string) (Entry, bool) {
	entry, ok := t.entries[key]
	return entry, ok
}

// Store adds an entry if it holds more reliable information than the one
// already cached, i.e. it was searched at least as deep.
func (t *TranspositionTable) Store(key string, entry Entry) {
	if found, ok := t.entries[key]; ok && found.Depth > entry.Depth {
		return
	}
	t.entries[key] = entry
}

// Len returns the number of cached entries.
func (t *TranspositionTable) Len() int {
	return len(t.entries)
}

// MaxSize returns the configured size cap.
func (t *TranspositionTable) MaxSize() int {
	return t.maxSize
}

// OverCap reports whether the table has grown past its cap. The table is
// never evicted incrementally; it is cleared wholesale at the start of
// the next search.
func (t *TranspositionTable) OverCap() bool {
	return len(t.entries) > t.maxSize
}

// Clear removes all entries.
func (t *TranspositionTable) Clear() {
	t.entries = make(map[string]Entry)
}
