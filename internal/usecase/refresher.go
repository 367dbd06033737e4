package usecase

import (
	"context"
	"log/slog"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/infra/cache"
	"voucher-hub/internal/pkg/clock"
	"voucher-hub/internal/pkg/metrics"
)

// Refresher mirrors the controller's voucher and guest collections into the
// cache store. Refresh never fails to its caller: a fetch error leaves the
// previously cached half untouched, so a transient controller outage
// degrades to stale-but-present data instead of an empty cache.
type Refresher interface {
	Refresh(ctx context.Context)
}

type refresherImpl struct {
	client   ControllerClient
	store    *cache.Store
	clock    clock.Clock
	log      *slog.Logger
	notifier RefreshNotifier
}

func NewRefresher(client ControllerClient, store *cache.Store, clk clock.Clock, log *slog.Logger, notifier RefreshNotifier) Refresher {
	return &refresherImpl{
		client:   client,
		store:    store,
		clock:    clk,
		log:      log,
		notifier: notifier,
	}
}

// Refresh performs a full resync. The voucher and guest fetches are
// independent: failure of one never blocks or rolls back the other. Each
// successful fetch is written to the store as one unit, with batches always
// recomputed from the voucher list stored beside them.
func (r *refresherImpl) Refresh(ctx context.Context) {
	vouchers, err := r.client.List(ctx)
	if err != nil {
		r.log.Error("cache refresh: voucher fetch failed", "error", err)
		metrics.RefreshTotal.WithLabelValues("vouchers", metrics.OutcomeError).Inc()
	} else {
		r.store.SetVouchers(vouchers, voucher.Batches(vouchers), r.clock.Now())
		r.log.Debug("cache refresh: vouchers saved", "count", len(vouchers))
		metrics.RefreshTotal.WithLabelValues("vouchers", metrics.OutcomeOK).Inc()
	}

	guests, err := r.client.Guests(ctx)
	if err != nil {
		r.log.Error("cache refresh: guest fetch failed", "error", err)
		metrics.RefreshTotal.WithLabelValues("guests", metrics.OutcomeError).Inc()
	} else {
		r.store.SetGuests(guests, r.clock.Now())
		r.log.Debug("cache refresh: guests saved", "count", len(guests))
		metrics.RefreshTotal.WithLabelValues("guests", metrics.OutcomeOK).Inc()
	}

	if r.notifier != nil {
		snap := r.store.Snapshot()
		r.notifier.NotifyRefresh(RefreshEvent{
			Vouchers: len(snap.Vouchers),
			Guests:   len(snap.Guests),
			Batches:  len(snap.Batches),
			Updated:  snap.Updated.UnixMilli(),
		})
	}
}
