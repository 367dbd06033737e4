package commands

import (
	"context"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/pkg/errs"
	"voucher-hub/internal/usecase"
)

type CreateVoucherRequest struct {
	Type   string
	Amount int
	Note   string

	// Custom preset fields, honored only when Type == "custom" and the
	// deployment allows custom vouchers.
	Duration      int64
	SingleUse     bool
	UploadLimit   int64
	DownloadLimit int64
	DataLimit     int64
}

type CreateVoucherResult struct {
	// Code is the display-formatted voucher code for single creations and
	// empty for bulk ones, where the controller only acknowledges success.
	Code   string
	Amount int
}

type VoucherCommands interface {
	Create(ctx context.Context, req CreateVoucherRequest) (*CreateVoucherResult, error)
	Revoke(ctx context.Context, id string) error
}

type voucherCommandsImpl struct {
	client      usecase.ControllerClient
	refresher   usecase.Refresher
	catalog     *voucher.Catalog
	allowCustom bool
}

func NewVoucherCommands(client usecase.ControllerClient, refresher usecase.Refresher, catalog *voucher.Catalog, allowCustom bool) VoucherCommands {
	return &voucherCommandsImpl{
		client:      client,
		refresher:   refresher,
		catalog:     catalog,
		allowCustom: allowCustom,
	}
}

// Create issues the voucher creation and then resynchronizes the cache so
// the caller immediately sees the effect of its own write.
func (uc *voucherCommandsImpl) Create(ctx context.Context, req CreateVoucherRequest) (*CreateVoucherResult, error) {
	t, err := uc.resolveType(req)
	if err != nil {
		return nil, err
	}

	created, err := uc.client.Create(ctx, t, req.Amount, req.Note)
	if err != nil {
		return nil, err
	}

	uc.refresher.Refresh(ctx)

	return &CreateVoucherResult{Code: created.Code, Amount: created.Amount}, nil
}

// Revoke removes a voucher on the controller and resynchronizes the cache.
func (uc *voucherCommandsImpl) Revoke(ctx context.Context, id string) error {
	if err := uc.client.Remove(ctx, id); err != nil {
		return err
	}

	uc.refresher.Refresh(ctx)
	return nil
}

func (uc *voucherCommandsImpl) resolveType(req CreateVoucherRequest) (voucher.Type, error) {
	if req.Type == "custom" {
		if !uc.allowCustom {
			return voucher.Type{}, errs.ErrUnknownType
		}
		if req.Duration <= 0 {
			return voucher.Type{}, errs.Mark(errs.New("custom voucher duration must be positive"), errs.ErrUnknownType)
		}
		return voucher.Type{
			Key:               "custom",
			ExpirationMinutes: req.Duration,
			SingleUse:         req.SingleUse,
			UploadLimitKbps:   req.UploadLimit,
			DownloadLimitKbps: req.DownloadLimit,
			DataLimitMB:       req.DataLimit,
		}, nil
	}

	t, ok := uc.catalog.Lookup(req.Type)
	if !ok {
		return voucher.Type{}, errs.ErrUnknownType
	}
	return t, nil
}
