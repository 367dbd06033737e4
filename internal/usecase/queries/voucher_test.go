//go:build unit

package queries_test

import (
	"testing"
	"time"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/infra/cache"
	"voucher-hub/internal/pkg/errs"
	"voucher-hub/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededQueries(t *testing.T, vs []voucher.Voucher, gs []voucher.Guest) queries.VoucherQueries {
	t.Helper()
	store := cache.NewStore()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.SetVouchers(vs, voucher.Batches(vs), now)
	store.SetGuests(gs, now)
	return queries.NewVoucherQueries(store)
}

func ids(vs []voucher.Voucher) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func TestList_NoFiltersReturnsEverything(t *testing.T) {
	q := seededQueries(t, []voucher.Voucher{{ID: "a"}, {ID: "b"}}, nil)

	got := q.List(queries.VoucherFilters{})
	assert.Equal(t, []string{"a", "b"}, ids(got.Vouchers))
	assert.False(t, got.Updated.IsZero())
}

func TestList_StatusFilters(t *testing.T) {
	vs := []voucher.Voucher{
		{ID: "avail", Used: 0},
		{ID: "inuse", Used: 2},
		{ID: "gone", Used: 1, Status: voucher.StatusExpired},
		{ID: "gone-unused", Used: 0, Status: voucher.StatusExpired},
	}
	q := seededQueries(t, vs, nil)

	// available is exactly used == 0: an expired voucher nobody redeemed
	// still shows up.
	assert.Equal(t, []string{"avail", "gone-unused"}, ids(q.List(queries.VoucherFilters{Status: queries.StatusAvailable}).Vouchers))
	assert.Equal(t, []string{"inuse"}, ids(q.List(queries.VoucherFilters{Status: queries.StatusInUse}).Vouchers))
	assert.Equal(t, []string{"gone", "gone-unused"}, ids(q.List(queries.VoucherFilters{Status: queries.StatusExpired}).Vouchers))

	// Unknown status values are permissive.
	assert.Len(t, q.List(queries.VoucherFilters{Status: "bogus"}).Vouchers, 4)
}

func TestList_QuotaFilterSkipsExpired(t *testing.T) {
	vs := []voucher.Voucher{
		{ID: "multi", Quota: 0},
		{ID: "single", Quota: 1},
		{ID: "gone", Quota: 1, Status: voucher.StatusExpired},
	}
	q := seededQueries(t, vs, nil)

	// Expired vouchers pass the quota filter regardless of their quota.
	assert.Equal(t, []string{"multi", "gone"}, ids(q.List(queries.VoucherFilters{Quota: queries.QuotaMultiUse}).Vouchers))
	assert.Equal(t, []string{"single", "gone"}, ids(q.List(queries.VoucherFilters{Quota: queries.QuotaSingleUse}).Vouchers))
}

func TestList_BatchFilter(t *testing.T) {
	vs := []voucher.Voucher{
		{ID: "a", Note: "staff"},
		{ID: "b", Note: "guests"},
		{ID: "c", Note: "staff"},
		{ID: "d", CreateTime: 1700000000},
	}
	q := seededQueries(t, vs, nil)

	assert.Equal(t, []string{"a", "c"}, ids(q.List(queries.VoucherFilters{Batch: "note_staff"}).Vouchers))
	assert.Equal(t, []string{"d"}, ids(q.List(queries.VoucherFilters{Batch: "created_1700000000"}).Vouchers))
	assert.Len(t, q.List(queries.VoucherFilters{Batch: queries.BatchAll}).Vouchers, 4)
	assert.Len(t, q.List(queries.VoucherFilters{Batch: ""}).Vouchers, 4)
}

func TestList_SortDescending(t *testing.T) {
	vs := []voucher.Voucher{
		{ID: "a", Code: "111", Duration: 60, Used: 5},
		{ID: "b", Code: "333", Duration: 1440, Used: 0},
		{ID: "c", Code: "222", Duration: 480, Used: 9},
	}
	q := seededQueries(t, vs, nil)

	assert.Equal(t, []string{"b", "c", "a"}, ids(q.List(queries.VoucherFilters{Sort: queries.SortCode}).Vouchers))
	assert.Equal(t, []string{"b", "c", "a"}, ids(q.List(queries.VoucherFilters{Sort: queries.SortDuration}).Vouchers))
	assert.Equal(t, []string{"c", "a", "b"}, ids(q.List(queries.VoucherFilters{Sort: queries.SortUsed}).Vouchers))

	// Unknown sort keys keep the cache order.
	assert.Equal(t, []string{"a", "b", "c"}, ids(q.List(queries.VoucherFilters{Sort: "bogus"}).Vouchers))
}

func TestList_SortIsStable(t *testing.T) {
	vs := []voucher.Voucher{
		{ID: "a", Used: 1},
		{ID: "b", Used: 1},
		{ID: "c", Used: 1},
	}
	q := seededQueries(t, vs, nil)

	assert.Equal(t, []string{"a", "b", "c"}, ids(q.List(queries.VoucherFilters{Sort: queries.SortUsed}).Vouchers))
}

func TestList_CombinedFilters(t *testing.T) {
	vs := []voucher.Voucher{
		{ID: "a", Note: "staff", Quota: 1, Used: 0},
		{ID: "b", Note: "staff", Quota: 0, Used: 3},
		{ID: "c", Note: "other", Quota: 1, Used: 0},
	}
	q := seededQueries(t, vs, nil)

	got := q.List(queries.VoucherFilters{
		Status: queries.StatusAvailable,
		Quota:  queries.QuotaSingleUse,
		Batch:  "note_staff",
	})
	assert.Equal(t, []string{"a"}, ids(got.Vouchers))
}

func TestGet_ReturnsVoucherWithGuests(t *testing.T) {
	vs := []voucher.Voucher{{ID: "v1", Code: "0123456789"}}
	gs := []voucher.Guest{
		{ID: "g1", VoucherID: "v1"},
		{ID: "g2", VoucherID: "other"},
	}
	q := seededQueries(t, vs, gs)

	got, err := q.Get("v1")
	require.NoError(t, err)
	assert.Equal(t, "0123456789", got.Voucher.Code)
	require.Len(t, got.Guests, 1)
	assert.Equal(t, "g1", got.Guests[0].ID)
}

func TestGet_NotFound(t *testing.T) {
	q := seededQueries(t, nil, nil)

	_, err := q.Get("missing")
	assert.ErrorIs(t, err, errs.ErrVoucherNotFound)
}

func TestBatches_FromSnapshot(t *testing.T) {
	vs := []voucher.Voucher{
		{ID: "a", Note: "staff"},
		{ID: "b", CreateTime: 1700000000},
	}
	q := seededQueries(t, vs, nil)

	want := []voucher.Batch{
		{ID: "note_staff", Name: "staff"},
		voucher.BatchID(voucher.Voucher{CreateTime: 1700000000}),
	}
	if diff := cmp.Diff(want, q.Batches()); diff != "" {
		t.Errorf("batches mismatch (-want +got):\n%s", diff)
	}
}
