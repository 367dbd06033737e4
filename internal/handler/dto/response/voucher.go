package response

import (
	"github.com/jinzhu/copier"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/pkg/format"
	"voucher-hub/internal/usecase/queries"
)

type VoucherResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	CreateTime    int64  `json:"create_time"`
	Duration      int64  `json:"duration"`
	DurationText  string `json:"duration_text"`
	Quota         int    `json:"quota"`
	Used          int    `json:"used"`
	Note          string `json:"note,omitempty"`
	Status        string `json:"status"`
	MultiUse      bool   `json:"multi_use"`
	DataLimit     int64  `json:"data_limit,omitempty"`
	UploadLimit   int64  `json:"upload_limit,omitempty"`
	DownloadLimit int64  `json:"download_limit,omitempty"`
	Batch         string `json:"batch"`
}

type GuestResponse struct {
	ID        string `json:"id"`
	VoucherID string `json:"voucher_id"`
	MAC       string `json:"mac"`
	Name      string `json:"name,omitempty"`
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
	Download  string `json:"download"`
	Upload    string `json:"upload"`
}

type BatchResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type VoucherListResponse struct {
	Vouchers []VoucherResponse `json:"vouchers"`
	Batches  []BatchResponse   `json:"batches"`
	Updated  int64             `json:"updated"`
}

type VoucherDetailResponse struct {
	Voucher VoucherResponse `json:"voucher"`
	Guests  []GuestResponse `json:"guests"`
	Updated int64           `json:"updated"`
}

type CreateVoucherResponse struct {
	Code   string `json:"code,omitempty"`
	Amount int    `json:"amount"`
}

func FromVoucher(v voucher.Voucher) VoucherResponse {
	var resp VoucherResponse
	_ = copier.Copy(&resp, &v)
	resp.Code = v.DisplayCode()
	resp.DurationText = format.Duration(v.Duration)
	resp.MultiUse = v.IsMultiUse()
	resp.DataLimit = v.QosUsageQuota
	resp.UploadLimit = v.QosRateMaxUp
	resp.DownloadLimit = v.QosRateMaxDown
	resp.Batch = voucher.BatchID(v).ID
	return resp
}

func FromVoucherList(list queries.VoucherList) VoucherListResponse {
	resp := VoucherListResponse{
		Vouchers: make([]VoucherResponse, 0, len(list.Vouchers)),
		Batches:  FromBatches(list.Batches),
		Updated:  list.Updated.UnixMilli(),
	}
	for _, v := range list.Vouchers {
		resp.Vouchers = append(resp.Vouchers, FromVoucher(v))
	}
	return resp
}

func FromVoucherDetail(d *queries.VoucherDetail) VoucherDetailResponse {
	resp := VoucherDetailResponse{
		Voucher: FromVoucher(d.Voucher),
		Guests:  make([]GuestResponse, 0, len(d.Guests)),
		Updated: d.Updated.UnixMilli(),
	}
	for _, g := range d.Guests {
		resp.Guests = append(resp.Guests, FromGuest(g))
	}
	return resp
}

func FromGuest(g voucher.Guest) GuestResponse {
	var resp GuestResponse
	_ = copier.Copy(&resp, &g)
	resp.Download = format.Bytes(g.RxBytes)
	resp.Upload = format.Bytes(g.TxBytes)
	return resp
}

func FromBatches(bs []voucher.Batch) []BatchResponse {
	out := make([]BatchResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, BatchResponse{ID: b.ID, Name: b.Name})
	}
	return out
}
