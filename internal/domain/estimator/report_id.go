package estimator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	reportIDPrefix = "NG"
	reportIDLow    = 100000
	reportIDSpan   = 900000
)

// NewRandomReportID returns NG-<year>-<six digits>. It is a display reference,
// not a unique key.
func NewRandomReportID(now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(reportIDSpan))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is gone; fall back
		// to the clock so the report still gets a number in range.
		return FormatReportID(now, reportIDLow+int(now.UnixNano()%reportIDSpan))
	}
	return FormatReportID(now, reportIDLow+int(n.Int64()))
}

func FormatReportID(now time.Time, number int) string {
	return fmt.Sprintf("%s-%d-%06d", reportIDPrefix, now.Year(), number)
}
