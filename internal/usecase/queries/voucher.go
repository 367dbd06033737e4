package queries

import (
	"sort"
	"time"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/infra/cache"
	"voucher-hub/internal/pkg/errs"
)

// Filter values recognized on the voucher list. Unknown values pass every
// voucher through, matching the permissive behavior of the query string.
const (
	StatusExpired   = "expired"
	StatusAvailable = "available"
	StatusInUse     = "in-use"

	QuotaMultiUse  = "multi-use"
	QuotaSingleUse = "single-use"

	BatchAll = "all"

	SortCode     = "code"
	SortDuration = "duration"
	SortUsed     = "used"
)

type VoucherFilters struct {
	Status string
	Quota  string
	Batch  string
	Sort   string
}

// VoucherList is a filtered view over one cache snapshot.
type VoucherList struct {
	Vouchers []voucher.Voucher
	Batches  []voucher.Batch
	Updated  time.Time
}

type VoucherDetail struct {
	Voucher voucher.Voucher
	Guests  []voucher.Guest
	Updated time.Time
}

type VoucherQueries interface {
	List(filters VoucherFilters) VoucherList
	Get(id string) (*VoucherDetail, error)
	Batches() []voucher.Batch
	Updated() time.Time
}

type voucherQueriesImpl struct {
	store *cache.Store
}

func NewVoucherQueries(store *cache.Store) VoucherQueries {
	return &voucherQueriesImpl{store: store}
}

// List applies the status, quota and batch filters in order and then the
// optional sort, all against a single snapshot. The snapshot itself is never
// mutated; filtering builds a fresh slice and sorting is stable.
func (q *voucherQueriesImpl) List(filters VoucherFilters) VoucherList {
	snap := q.store.Snapshot()

	out := make([]voucher.Voucher, 0, len(snap.Vouchers))
	for _, v := range snap.Vouchers {
		if matchStatus(v, filters.Status) && matchQuota(v, filters.Quota) && matchBatch(v, filters.Batch) {
			out = append(out, v)
		}
	}
	sortVouchers(out, filters.Sort)

	return VoucherList{Vouchers: out, Batches: snap.Batches, Updated: snap.Updated}
}

// Get reads voucher, guests and timestamp from one snapshot, so a refresh
// landing mid-call can never produce a mixed detail view.
func (q *voucherQueriesImpl) Get(id string) (*VoucherDetail, error) {
	snap := q.store.Snapshot()
	v, ok := snap.FindVoucher(id)
	if !ok {
		return nil, errs.ErrVoucherNotFound
	}
	return &VoucherDetail{
		Voucher: v,
		Guests:  snap.GuestsForVoucher(id),
		Updated: snap.Updated,
	}, nil
}

func (q *voucherQueriesImpl) Batches() []voucher.Batch {
	return q.store.Snapshot().Batches
}

func (q *voucherQueriesImpl) Updated() time.Time {
	return q.store.Snapshot().Updated
}

// matchStatus: available means never used, full stop. A voucher the
// controller expired before anyone redeemed it still counts as available;
// only in-use excludes expired.
func matchStatus(v voucher.Voucher, status string) bool {
	switch status {
	case StatusExpired:
		return v.IsExpired()
	case StatusAvailable:
		return v.Used == 0
	case StatusInUse:
		return v.Used > 0 && !v.IsExpired()
	default:
		return true
	}
}

// matchQuota applies only to non-expired vouchers: quota 0 means unlimited
// uses (multi-use), any bounded quota counts as single-use.
func matchQuota(v voucher.Voucher, quota string) bool {
	if v.IsExpired() {
		return true
	}
	switch quota {
	case QuotaMultiUse:
		return v.IsMultiUse()
	case QuotaSingleUse:
		return !v.IsMultiUse()
	default:
		return true
	}
}

func matchBatch(v voucher.Voucher, batch string) bool {
	if batch == "" || batch == BatchAll {
		return true
	}
	return voucher.BatchID(v).ID == batch
}

func sortVouchers(vs []voucher.Voucher, key string) {
	switch key {
	case SortCode:
		sort.SliceStable(vs, func(i, j int) bool { return vs[i].Code > vs[j].Code })
	case SortDuration:
		sort.SliceStable(vs, func(i, j int) bool { return vs[i].Duration > vs[j].Duration })
	case SortUsed:
		sort.SliceStable(vs, func(i, j int) bool { return vs[i].Used > vs[j].Used })
	}
}
