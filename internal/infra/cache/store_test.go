//go:build unit

package cache_test

import (
	"testing"
	"time"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/infra/cache"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_EmptySnapshot(t *testing.T) {
	s := cache.NewStore()

	snap := s.Snapshot()
	assert.Empty(t, snap.Vouchers)
	assert.Empty(t, snap.Guests)
	assert.Empty(t, snap.Batches)
	assert.True(t, snap.Updated.IsZero())
}

func TestStore_SetVouchersReplacesWholeHalf(t *testing.T) {
	s := cache.NewStore()
	now := time.Now()

	first := []voucher.Voucher{{ID: "a"}, {ID: "b"}}
	s.SetVouchers(first, voucher.Batches(first), now)

	second := []voucher.Voucher{{ID: "c"}}
	later := now.Add(time.Minute)
	s.SetVouchers(second, voucher.Batches(second), later)

	snap := s.Snapshot()
	require.Len(t, snap.Vouchers, 1)
	assert.Equal(t, "c", snap.Vouchers[0].ID)
	assert.Equal(t, later, snap.Updated)
}

func TestStore_HalvesAreIndependent(t *testing.T) {
	s := cache.NewStore()
	now := time.Now()

	vs := []voucher.Voucher{{ID: "v1", Note: "staff"}}
	s.SetVouchers(vs, voucher.Batches(vs), now)
	s.SetGuests([]voucher.Guest{{ID: "g1", VoucherID: "v1"}}, now.Add(time.Second))

	snap := s.Snapshot()
	require.Len(t, snap.Vouchers, 1)
	require.Len(t, snap.Guests, 1)

	// A guest-only update leaves the voucher half and its batches untouched.
	s.SetGuests(nil, now.Add(2*time.Second))
	snap = s.Snapshot()
	require.Len(t, snap.Vouchers, 1)
	assert.Empty(t, snap.Guests)
	if diff := cmp.Diff([]voucher.Batch{{ID: "note_staff", Name: "staff"}}, snap.Batches); diff != "" {
		t.Errorf("batches mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_FindVoucher(t *testing.T) {
	s := cache.NewStore()
	vs := []voucher.Voucher{{ID: "a", Code: "111"}, {ID: "b", Code: "222"}}
	s.SetVouchers(vs, nil, time.Now())

	snap := s.Snapshot()
	got, ok := snap.FindVoucher("b")
	require.True(t, ok)
	assert.Equal(t, "222", got.Code)

	_, ok = snap.FindVoucher("missing")
	assert.False(t, ok)
}

func TestSnapshot_GuestsForVoucher(t *testing.T) {
	s := cache.NewStore()
	s.SetGuests([]voucher.Guest{
		{ID: "g1", VoucherID: "a"},
		{ID: "g2", VoucherID: "b"},
		{ID: "g3", VoucherID: "a"},
	}, time.Now())

	snap := s.Snapshot()
	got := snap.GuestsForVoucher("a")
	require.Len(t, got, 2)
	assert.Equal(t, "g1", got[0].ID)
	assert.Equal(t, "g3", got[1].ID)

	assert.Empty(t, snap.GuestsForVoucher("missing"))
}

func TestSnapshot_UnaffectedByLaterWrites(t *testing.T) {
	s := cache.NewStore()
	s.SetVouchers([]voucher.Voucher{{ID: "a"}}, nil, time.Now())
	s.SetGuests([]voucher.Guest{{ID: "g1", VoucherID: "a"}}, time.Now())

	snap := s.Snapshot()

	// A refresh landing after the snapshot was taken must not leak into
	// reads against it.
	s.SetVouchers([]voucher.Voucher{{ID: "b"}}, nil, time.Now())
	s.SetGuests(nil, time.Now())

	_, ok := snap.FindVoucher("a")
	assert.True(t, ok)
	assert.Len(t, snap.GuestsForVoucher("a"), 1)
}
