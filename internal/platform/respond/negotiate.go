package respond

import (
	"strconv"
	"strings"
)

type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges. A bare type is read as type/*,
// and missing or invalid q-values count as 1.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		params := strings.Split(part, ";")
		mediaType := strings.ToLower(strings.TrimSpace(params[0]))
		typ, subtype, found := strings.Cut(mediaType, "/")
		if !found {
			subtype = "*"
		}
		mr := mediaRange{typ: typ, subtype: subtype, q: 1.0}
		for _, p := range params[1:] {
			key, value, ok := strings.Cut(strings.TrimSpace(p), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
				continue
			}
			if q, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && q >= 0 && q <= 1 {
				mr.q = q
			}
		}
		ranges = append(ranges, mr)
	}
	return ranges
}

// specificity ranks how precisely mr names the given structured syntax suffix
// ("json" or "cbor"); -1 means no match.
func specificity(mr mediaRange, suffix string) int {
	switch {
	case mr.typ == "*" && mr.subtype == "*":
		return 0
	case mr.typ != "application":
		return -1
	case mr.subtype == "*":
		return 1
	case mr.subtype == "*+"+suffix:
		return 2
	case mr.subtype == suffix, mr.subtype == "problem+"+suffix:
		return 3
	}
	return -1
}

// quality returns the q-value of the most specific range matching suffix.
func quality(ranges []mediaRange, suffix string) float64 {
	q, best := 0.0, -1
	for _, mr := range ranges {
		s := specificity(mr, suffix)
		if s > best || (s == best && s >= 0 && mr.q > q) {
			q, best = mr.q, s
		}
	}
	return q
}

// selectFormat reports whether CBOR should be used. JSON wins ties and is the default.
func selectFormat(accept string) bool {
	ranges := parseAccept(accept)
	if len(ranges) == 0 {
		return false
	}
	return quality(ranges, "cbor") > quality(ranges, "json")
}
