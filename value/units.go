package value

import (
	"strconv"
	"strings"
	"time"
)

// durationUnits maps every accepted duration suffix (spec.md §4.6: "ns,
// us, ms, s, m, h, d") to its time.Duration multiplier. The "period"
// long-hand format ("5 days", ISO-8601 periods) is out of scope
// (spec.md §1 Non-goals).
var durationUnits = map[string]time.Duration{
	"ns": time.Nanosecond,
	"us": time.Microsecond,
	"ms": time.Millisecond,
	"s":  time.Second,
	"m":  time.Minute,
	"h":  time.Hour,
	"d":  24 * time.Hour,
}

// sizeUnits maps every accepted size suffix to its byte multiplier: bare
// "B", the decimal (1000-based) kB..EB family, and the binary
// (1024-based) K/Ki/KiB..E/Ei/EiB family, per spec.md §4.6 "B and the
// 10-based and 2-based multiples up through E/Ei".
var sizeUnits = map[string]int64{
	"B": 1,

	"kB": 1_000, "KB": 1_000, "MB": 1_000_000, "GB": 1_000_000_000,
	"TB": 1_000_000_000_000, "PB": 1_000_000_000_000_000,
	"EB": 1_000_000_000_000_000_000,

	"K": 1 << 10, "Ki": 1 << 10, "KiB": 1 << 10,
	"M": 1 << 20, "Mi": 1 << 20, "MiB": 1 << 20,
	"G": 1 << 30, "Gi": 1 << 30, "GiB": 1 << 30,
	"T": 1 << 40, "Ti": 1 << 40, "TiB": 1 << 40,
	"P": 1 << 50, "Pi": 1 << 50, "PiB": 1 << 50,
	"E": 1 << 60, "Ei": 1 << 60, "EiB": 1 << 60,
}

// orderedDurationSuffixes and orderedSizeSuffixes are tried longest-first
// so that, e.g., "ms" is not mistaken for a bare "m" followed by
// trailing garbage "s".
var orderedDurationSuffixes = sortedSuffixes(durationUnits)
var orderedSizeSuffixes = sortedSizeSuffixes(sizeUnits)

func sortedSuffixes(m map[string]time.Duration) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sortByLenDesc(out)
	return out
}

func sortedSizeSuffixes(m map[string]int64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sortByLenDesc(out)
	return out
}

func sortByLenDesc(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && len(s[j-1]) < len(s[j]); j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// ParseDuration implements as_duration(s): "30s", "500ms", "1h", and so
// on. The numeric part may be any value strconv.ParseFloat accepts.
func ParseDuration(s string) (time.Duration, error) {
	trimmed := strings.TrimSpace(s)
	for _, suffix := range orderedDurationSuffixes {
		if strings.HasSuffix(trimmed, suffix) {
			numPart := strings.TrimSpace(strings.TrimSuffix(trimmed, suffix))
			n, err := strconv.ParseFloat(numPart, 64)
			if err != nil {
				continue
			}
			return time.Duration(n * float64(durationUnits[suffix])), nil
		}
	}
	return 0, invalidUnitErr(s)
}

// ParseSize implements as_size(s): "1KB", "2MiB", "500B", and so on.
func ParseSize(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	for _, suffix := range orderedSizeSuffixes {
		if strings.HasSuffix(trimmed, suffix) {
			numPart := strings.TrimSpace(strings.TrimSuffix(trimmed, suffix))
			n, err := strconv.ParseFloat(numPart, 64)
			if err != nil {
				continue
			}
			return int64(n * float64(sizeUnits[suffix])), nil
		}
	}
	return 0, invalidUnitErr(s)
}
