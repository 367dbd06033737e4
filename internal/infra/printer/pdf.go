// Package printer renders cached vouchers into printable artifacts: PDF
// documents for regular printers and raw ESC/POS byte streams for thermal
// receipt printers. It consumes voucher records exactly as cached; it never
// talks to the controller.
package printer

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/pkg/errs"
	"voucher-hub/internal/pkg/format"
)

// VoucherPDF renders a single voucher as an A6 landscape card.
func VoucherPDF(v voucher.Voucher, siteName string) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A6", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	if siteName != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, "WiFi voucher - "+siteName, "", 1, "C", false, 0, "")
	}

	pdf.SetFont("Courier", "B", 28)
	pdf.CellFormat(0, 18, v.DisplayCode(), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	writeVoucherTerms(pdf, v)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "render voucher pdf")
	}
	return buf.Bytes(), nil
}

// VoucherListPDF renders an ordered voucher list, one row per voucher, for
// batch printing.
func VoucherListPDF(vs []voucher.Voucher, siteName string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	title := "WiFi vouchers"
	if siteName != "" {
		title += " - " + siteName
	}
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	listHeader(pdf)

	pdf.SetFont("Courier", "", 10)
	for _, v := range vs {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "B", 9)
			listHeader(pdf)
			pdf.SetFont("Courier", "", 10)
		}
		pdf.CellFormat(40, 7, v.DisplayCode(), "B", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, format.Duration(v.Duration), "B", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, usageLabel(v), "B", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, v.Note, "B", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "render voucher list pdf")
	}
	return buf.Bytes(), nil
}

func listHeader(pdf *fpdf.Fpdf) {
	pdf.CellFormat(40, 7, "Code", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Duration", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Usage", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Note", "B", 1, "L", false, 0, "")
}

func writeVoucherTerms(pdf *fpdf.Fpdf, v voucher.Voucher) {
	pdf.CellFormat(0, 6, "Valid for "+format.Duration(v.Duration)+" after first use", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, usageLabel(v), "", 1, "C", false, 0, "")
	if v.QosUsageQuota > 0 {
		pdf.CellFormat(0, 6, "Data limit: "+format.Megabytes(v.QosUsageQuota), "", 1, "C", false, 0, "")
	}
}

func usageLabel(v voucher.Voucher) string {
	if v.IsMultiUse() {
		return "Multi-use"
	}
	return "Single-use"
}
