package printer

import (
	"bytes"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/pkg/format"
)

// ESC/POS control sequences used for the thermal receipt layout.
var (
	escInit        = []byte{0x1b, 0x40}       // initialize
	escAlignCenter = []byte{0x1b, 0x61, 0x01} // center justification
	escAlignLeft   = []byte{0x1b, 0x61, 0x00}
	escDoubleOn    = []byte{0x1d, 0x21, 0x11} // double width and height
	escDoubleOff   = []byte{0x1d, 0x21, 0x00}
	escFeedCut     = []byte{0x1d, 0x56, 0x42, 0x03} // partial cut after feed
)

// VoucherEscpos renders a voucher as an ESC/POS command stream for thermal
// printers. The caller owns delivery to the printer socket.
func VoucherEscpos(v voucher.Voucher, siteName string) []byte {
	var buf bytes.Buffer
	buf.Write(escInit)
	buf.Write(escAlignCenter)

	if siteName != "" {
		buf.WriteString("WiFi voucher - " + siteName + "\n\n")
	}

	buf.Write(escDoubleOn)
	buf.WriteString(v.DisplayCode() + "\n")
	buf.Write(escDoubleOff)

	buf.WriteString("\nValid for " + format.Duration(v.Duration) + "\n")
	if v.IsMultiUse() {
		buf.WriteString("Multi-use\n")
	} else {
		buf.WriteString("Single-use\n")
	}
	if v.QosUsageQuota > 0 {
		buf.WriteString("Data limit: " + format.Megabytes(v.QosUsageQuota) + "\n")
	}

	buf.Write(escAlignLeft)
	buf.Write(escFeedCut)
	return buf.Bytes()
}
