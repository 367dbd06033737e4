package voucher

import (
	"strconv"
	"time"
)

// Status values reported by the controller. Anything other than EXPIRED is
// treated as active; the controller is the only writer of this field.
const StatusExpired = "EXPIRED"

// codeSplitOffset is where a raw ten-character voucher code is split for
// display (XXXXX-XXXXX).
const codeSplitOffset = 5

// Voucher mirrors one hotspot voucher as reported by the controller.
// Code is immutable once created; Used and Status are only ever mutated
// remotely, never by this application.
type Voucher struct {
	ID         string `json:"_id"`
	Code       string `json:"code"`
	CreateTime int64  `json:"create_time"`
	Duration   int64  `json:"duration"`
	Quota      int    `json:"quota"`
	Used       int    `json:"used"`
	Note       string `json:"note"`
	Status     string `json:"status"`

	QosOverwrite   bool  `json:"qos_overwrite"`
	QosUsageQuota  int64 `json:"qos_usage_quota"`
	QosRateMaxUp   int64 `json:"qos_rate_max_up"`
	QosRateMaxDown int64 `json:"qos_rate_max_down"`

	RxBytes int64 `json:"rx_bytes"`
	TxBytes int64 `json:"tx_bytes"`
}

// Guest links a connected client device to the voucher that authorized it.
// Read-only from this application's perspective.
type Guest struct {
	ID        string `json:"_id"`
	VoucherID string `json:"voucher_id"`
	MAC       string `json:"mac"`
	Name      string `json:"name"`
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
	RxBytes   int64  `json:"rx_bytes"`
	TxBytes   int64  `json:"tx_bytes"`
}

// Batch is a derived grouping of vouchers sharing a note or, absent a note,
// a creation moment. Batches are recomputed from scratch on every cache
// refresh and are never stored independently.
type Batch struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (v Voucher) IsExpired() bool {
	return v.Status == StatusExpired
}

// IsMultiUse reports the canonical quota reading: quota 0 means unlimited
// uses, anything else is a bounded (single or N-use) voucher.
func (v Voucher) IsMultiUse() bool {
	return v.Quota == 0
}

// DisplayCode returns the code split for printing, e.g. "01234-56789".
// Codes shorter than the split offset are returned as-is.
func (v Voucher) DisplayCode() string {
	return FormatCode(v.Code)
}

// FormatCode splits a raw voucher code at the fixed display offset.
func FormatCode(code string) string {
	if len(code) <= codeSplitOffset {
		return code
	}
	return code[:codeSplitOffset] + "-" + code[codeSplitOffset:]
}

// BatchID derives the stable batch grouping key for a voucher: vouchers
// sharing a non-empty note collapse into one note batch, the rest group by
// creation second.
func BatchID(v Voucher) Batch {
	if v.Note != "" {
		return Batch{ID: "note_" + v.Note, Name: v.Note}
	}
	created := time.Unix(v.CreateTime, 0).UTC()
	return Batch{
		ID:   "created_" + strconv.FormatInt(v.CreateTime, 10),
		Name: created.Format("2006-01-02 15:04:05"),
	}
}

// Batches returns one Batch per distinct batch id found in vs, preserving
// first-seen order. Dedup is by id through an index map, so the scan stays
// linear in the number of vouchers.
func Batches(vs []Voucher) []Batch {
	seen := make(map[string]struct{}, len(vs))
	batches := make([]Batch, 0, len(vs))
	for _, v := range vs {
		b := BatchID(v)
		if _, ok := seen[b.ID]; ok {
			continue
		}
		seen[b.ID] = struct{}{}
		batches = append(batches, b)
	}
	return batches
}
