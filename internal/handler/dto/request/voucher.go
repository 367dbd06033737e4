package request

import (
	"voucher-hub/internal/usecase/commands"
)

type CreateVoucherRequest struct {
	Type   string `json:"type" binding:"required"`
	Amount int    `json:"amount" binding:"omitempty,min=1,max=500"`
	Note   string `json:"note" binding:"omitempty,max=128"`

	// Custom preset fields, only honored for type "custom".
	Duration      int64 `json:"duration" binding:"omitempty,min=1"`
	SingleUse     bool  `json:"single_use"`
	UploadLimit   int64 `json:"upload_limit" binding:"omitempty,min=0"`
	DownloadLimit int64 `json:"download_limit" binding:"omitempty,min=0"`
	DataLimit     int64 `json:"data_limit" binding:"omitempty,min=0"`
}

func (r *CreateVoucherRequest) ToCommand() commands.CreateVoucherRequest {
	amount := r.Amount
	if amount == 0 {
		amount = 1
	}
	return commands.CreateVoucherRequest{
		Type:          r.Type,
		Amount:        amount,
		Note:          r.Note,
		Duration:      r.Duration,
		SingleUse:     r.SingleUse,
		UploadLimit:   r.UploadLimit,
		DownloadLimit: r.DownloadLimit,
		DataLimit:     r.DataLimit,
	}
}

type EmailVoucherRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Language string `json:"language" binding:"omitempty,len=2"`
}
