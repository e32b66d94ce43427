// Package recent tracks the recently-viewed pages list: newest first,
// de-duplicated by page name, capped at five entries.
package recent

import (
	"strings"
	"time"

	"github.com/origintiles/storefront/internal/platform/models"
	"github.com/origintiles/storefront/internal/securestorage"
	"github.com/samber/lo"
)

// MaxEntries is the maximum number of tracked pages.
const MaxEntries = 5

// homePage is never tracked.
const homePage = "home"

// Option is custom configuration of Tracker.
type Option func(t *Tracker)

// Tracker records page visits in storage.
type Tracker struct {
	storage *securestorage.Storage
	now     func() time.Time
}

// NewTracker returns new Tracker over provided storage.
func NewTracker(storage *securestorage.Storage, ops ...Option) *Tracker {
	tracker := &Tracker{
		storage: storage,
		now:     func() time.Time { return time.Now().UTC() },
	}

	for _, op := range ops {
		op(tracker)
	}

	return tracker
}

// WithNow sets Tracker's time source.
func WithNow(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// Track records a visit to page. Re-visiting a tracked page moves it to
// the front with a fresh timestamp. Visits to the home page are ignored.
func (t *Tracker) Track(page string) {
	if page == "" || strings.EqualFold(page, homePage) {
		return
	}

	entries := t.List()

	entries = lo.Reject(entries, func(e models.RecentEntry, _ int) bool {
		return e.Page == page
	})

	entries = append([]models.RecentEntry{{
		Page:      page,
		Timestamp: t.now().UnixMilli(),
	}}, entries...)

	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	t.storage.SetItem(securestorage.RecentlyViewedKey, entries)
}

// List returns the tracked entries, newest first.
func (t *Tracker) List() []models.RecentEntry {
	return securestorage.GetItem(t.storage, securestorage.RecentlyViewedKey, []models.RecentEntry{})
}

// Clear removes the tracked entries.
func (t *Tracker) Clear() {
	t.storage.RemoveItem(securestorage.RecentlyViewedKey)
}
