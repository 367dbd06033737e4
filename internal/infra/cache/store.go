// Package cache holds the process-local mirror of the controller's voucher
// and guest state. It is an ephemeral, rebuildable projection: the
// controller stays the source of truth and the store is replaced wholesale
// on every successful synchronization.
package cache

import (
	"sync"
	"time"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/pkg/metrics"
)

// Snapshot is one self-consistent view of the mirrored state. Batches is
// always derived from the voucher list stored next to it; the two never come
// from different fetches.
type Snapshot struct {
	Vouchers []voucher.Voucher
	Guests   []voucher.Guest
	Batches  []voucher.Batch
	Updated  time.Time
}

type Store struct {
	mu       sync.RWMutex
	vouchers []voucher.Voucher
	guests   []voucher.Guest
	batches  []voucher.Batch
	updated  time.Time
}

func NewStore() *Store {
	return &Store{}
}

// SetVouchers replaces the voucher half of the cache as one unit. Batches
// must be derived from vs by the caller (the synchronizer recomputes them
// from scratch per refresh).
func (s *Store) SetVouchers(vs []voucher.Voucher, batches []voucher.Batch, now time.Time) {
	s.mu.Lock()
	s.vouchers = vs
	s.batches = batches
	s.updated = now
	s.mu.Unlock()

	metrics.CachedVouchers.Set(float64(len(vs)))
}

// SetGuests replaces the guest half of the cache. A failed voucher fetch in
// the same refresh cycle does not prevent this write, and vice versa.
func (s *Store) SetGuests(gs []voucher.Guest, now time.Time) {
	s.mu.Lock()
	s.guests = gs
	s.updated = now
	s.mu.Unlock()

	metrics.CachedGuests.Set(float64(len(gs)))
}

// Snapshot returns the current state. The returned slices are shared with
// the store and must be treated as immutable; writers always swap in fresh
// slices rather than mutating in place.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Vouchers: s.vouchers,
		Guests:   s.guests,
		Batches:  s.batches,
		Updated:  s.updated,
	}
}

// FindVoucher looks a voucher up by controller identity. Reading through the
// snapshot rather than the store keeps a detail view consistent with the
// guests and timestamp taken from the same snapshot.
func (sn Snapshot) FindVoucher(id string) (voucher.Voucher, bool) {
	for _, v := range sn.Vouchers {
		if v.ID == id {
			return v, true
		}
	}
	return voucher.Voucher{}, false
}

// GuestsForVoucher returns the guests authorized by the voucher.
func (sn Snapshot) GuestsForVoucher(id string) []voucher.Guest {
	var out []voucher.Guest
	for _, g := range sn.Guests {
		if g.VoucherID == id {
			out = append(out, g)
		}
	}
	return out
}
