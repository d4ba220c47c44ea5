package num

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Byte sizes (base 1024)
// ─────────────────────────────────────────────────────────────────────────────

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes renders a byte count using base-1024 units, with decimals[0]
// fractional digits (default 2, negative treated as zero) and trailing
// zeros trimmed. Values below one byte render as "0 Bytes".
//
//	FormatBytes(1536)       // → "1.5 KB"
//	FormatBytes(1048576)    // → "1 MB"
//	FormatBytes(1234567, 1) // → "1.2 MB"
func FormatBytes(bytes float64, decimals ...int) string {
	if bytes < 1 {
		return "0 Bytes"
	}
	d := 2
	if len(decimals) > 0 {
		d = decimals[0]
	}
	if d < 0 {
		d = 0
	}
	exp := int(math.Floor(math.Log(bytes) / math.Log(1024)))
	exp = Clamp(exp, 0, len(byteUnits)-1)
	value := bytes / math.Pow(1024, float64(exp))
	s := strconv.FormatFloat(RoundTo(value, d), 'f', d, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s + " " + byteUnits[exp]
}

var bytePattern = regexp.MustCompile(`^([0-9]*\.?[0-9]+)\s*([A-Za-z]+)?$`)

// ToBytes parses a human-readable byte size back into a byte count. It is
// the approximate inverse of [FormatBytes], exact at unit boundaries:
// ToBytes(FormatBytes(1024)) == 1024. Malformed input returns (0, false).
//
//	ToBytes("1.5 KB") // → 1536, true
//	ToBytes("10")     // → 10, true (bare numbers are bytes)
//	ToBytes("oops")   // → 0, false
func ToBytes(s string) (float64, bool) {
	m := bytePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	unit := strings.ToUpper(m[2])
	if unit == "" || unit == "B" || unit == "BYTE" || unit == "BYTES" {
		return value, true
	}
	for i, u := range byteUnits[1:] {
		if unit == u {
			return value * math.Pow(1024, float64(i+1)), true
		}
	}
	return 0, false
}
