package usecase

import (
	"context"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/infra/unifi"
)

// ControllerClient is the remote controller surface the usecases depend on.
// All four operations share one authenticated session and the client's
// retry-once-on-expiry policy.
type ControllerClient interface {
	Create(ctx context.Context, t voucher.Type, amount int, note string) (unifi.CreateResult, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]voucher.Voucher, error)
	Guests(ctx context.Context) ([]voucher.Guest, error)
}

// RefreshEvent describes one completed cache refresh, published to live
// subscribers (the admin UI event stream).
type RefreshEvent struct {
	Vouchers int   `json:"vouchers"`
	Guests   int   `json:"guests"`
	Batches  int   `json:"batches"`
	Updated  int64 `json:"updated"`
}

// RefreshNotifier receives a RefreshEvent after every refresh pass. A nil
// notifier is allowed.
type RefreshNotifier interface {
	NotifyRefresh(ev RefreshEvent)
}
