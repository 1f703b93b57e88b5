package subject

import (
	"regexp"
	"strconv"
	"strings"
)

// Leading "[current/total]" counter at the very start of a subject.
var counterPattern = regexp.MustCompile(`^\[(\d+)/(\d+)\]`)

// SortKey derives a numeric ordering key from a subject's leading
// "[current/total]" counter so that parts sort in logical rather than
// lexicographic order ("[2/10]" before "[10/10]"). Returns false when the
// subject has no such counter or the numbers do not fit in 32 bits.
func SortKey(subj string) (current, total uint32, ok bool) {
	m := counterPattern.FindStringSubmatch(subj)
	if m == nil {
		return 0, 0, false
	}
	c, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return 0, 0, false
	}
	t, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return 0, 0, false
	}
	return uint32(c), uint32(t), true
}

// Compare defines a total order over subjects: by natural sort key first,
// subjects without a key ordering before keyed ones, with plain string
// comparison of the full subject as the tie-break in every case.
func Compare(a, b string) int {
	ac, at, aok := SortKey(a)
	bc, bt, bok := SortKey(b)
	switch {
	case !aok && bok:
		return -1
	case aok && !bok:
		return 1
	case aok && bok:
		if ac != bc {
			if ac < bc {
				return -1
			}
			return 1
		}
		if at != bt {
			if at < bt {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a, b)
}
