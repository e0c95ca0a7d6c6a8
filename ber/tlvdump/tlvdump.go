// Package tlvdump renders BER-TLV data objects as indented text.
package tlvdump

import (
	"github.com/usnistgov/bertlv/core/logging"
)

var logger = logging.New("TlvDump")
