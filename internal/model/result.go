package model

// FetchResult is the outcome of downloading one item. Err is nil on
// success.
type FetchResult struct {
	Item *Item
	Err  error
}

// Succeeded reports whether the fetch completed without error.
func (r FetchResult) Succeeded() bool {
	return r.Err == nil
}

// Summary aggregates the outcomes of a whole run. Failures are listed
// in sequence order regardless of the order fetches completed in.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Failures  []FetchResult
}

// Ok reports whether every item in the run succeeded.
func (s Summary) Ok() bool {
	return s.Failed == 0
}
