package envelope

// Page is one normalized page of a paginated listing.
type Page[T any] struct {
	Items []T
	// After is the cursor of the next page, "" on the final page.
	After string
	// Raw is the normalized payload the page was built from.
	Raw map[string]any
}

// PageFunc fetches a single page. after is "" for the first page.
type PageFunc[T any] func(after string) (*Page[T], error)

// Iter lazily walks a paginated listing, fetching the next page only once
// the current one is exhausted. Stopping early simply means not calling
// Next again; no further pages are requested.
//
// Iter is not restartable: every walk re-hits the network.
type Iter[T any] struct {
	fetch   PageFunc[T]
	buf     []T
	after   string
	started bool
	done    bool
	err     error
}

// Iterate builds an Iter over fetch.
func Iterate[T any](fetch PageFunc[T]) *Iter[T] {
	return &Iter[T]{fetch: fetch}
}

// Next returns the next item in cross-page order. It returns ok=false once
// the listing is exhausted or a page fetch failed; check Err to tell the
// two apart. Items already returned are not retracted on failure.
func (it *Iter[T]) Next() (item T, ok bool) {
	for len(it.buf) == 0 {
		if it.done {
			return item, false
		}
		if it.started && it.after == "" {
			it.done = true
			return item, false
		}

		page, err := it.fetch(it.after)
		if err != nil {
			it.done = true
			it.err = err
			return item, false
		}
		it.started = true
		if page == nil {
			it.done = true
			return item, false
		}
		it.buf = page.Items
		it.after = page.After
	}

	item = it.buf[0]
	it.buf = it.buf[1:]
	return item, true
}

// Err reports the error that ended iteration, if any.
func (it *Iter[T]) Err() error {
	return it.err
}

// Collect drains the iterator into a slice.
func (it *Iter[T]) Collect() ([]T, error) {
	var items []T
	for {
		item, ok := it.Next()
		if !ok {
			return items, it.Err()
		}
		items = append(items, item)
	}
}
