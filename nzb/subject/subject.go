// Package subject analyzes the free-text subject lines of Usenet postings.
// Subjects are produced by many incompatible posting tools, so filename
// extraction is a chain of ordered heuristics and the obfuscation check is a
// port of SABnzbd's deobfuscation classifier:
// https://github.com/sabnzbd/sabnzbd/blob/64034c5636563b66360aa9dfc1a0b624f4db5cc3/sabnzbd/deobfuscate_filenames.py#L105
package subject

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// Filename enclosed in double quotes. Matches from the first quote to
	// the last quote in the subject, not the innermost pair.
	quotedPattern = regexp.MustCompile(`"(.*)"`)

	// Structured multipart form: <counter> - <filename> yEnc <counter> <digits>
	// where <counter> is [n/m] or (n/m).
	// Example: [011/116] - [AC-FFF] Highschool DxD BorN - 02 [BD].mkv yEnc (1/2401) 1720916370
	yencPattern = regexp.MustCompile(`^(?:\[|\()(?:\d+/\d+)(?:\]|\))\s-\s(.*)\syEnc\s(?:\[|\()(?:\d+/\d+)(?:\]|\))\s\d+`)

	// Best-effort scan for something that looks like a filename, optionally
	// containing bracketed groups, ending in a dot and a 2-4 char suffix.
	tokenPattern = regexp.MustCompile(`\b([\w\-+()' .,]+(?:\[[\w\-/+()' .,]*][\w\-+()' .,]*)*\.[A-Za-z0-9]{2,4})\b`)

	// An extension is 1-8 ASCII alphanumerics after the final dot. Anything
	// longer or containing other characters is usually a false positive in
	// obfuscated or versioned names. Numeric-only extensions are accepted.
	extensionPattern = regexp.MustCompile(`\.([A-Za-z0-9]{1,8})$`)

	// Obfuscation patterns, most specific first.
	hex32Pattern    = regexp.MustCompile(`^[a-f0-9]{32}$`)
	hexDotsPattern  = regexp.MustCompile(`^[a-f0-9.]{40,}$`)
	hexRunPattern   = regexp.MustCompile(`[a-f0-9]{30}`)
	bracketsPattern = regexp.MustCompile(`\[\w+\]`)
)

// ExtractFilename extracts the complete name of a file, extension included,
// from a posting subject. The heuristics are tried in order from most
// specific to most general; the first non-empty trimmed match wins. Returns
// false if no heuristic matched; callers must treat that as "name unknown",
// never fall back to the raw subject.
func ExtractFilename(subj string) (string, bool) {
	for _, re := range []*regexp.Regexp{quotedPattern, yencPattern, tokenPattern} {
		if m := re.FindStringSubmatch(subj); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name, true
			}
		}
	}
	return "", false
}

// SplitExtension splits a filename into stem and extension. The extension is
// returned without the leading dot and is empty when the filename has no
// qualifying extension, in which case the stem is the whole filename.
func SplitExtension(filename string) (stem, ext string) {
	loc := extensionPattern.FindStringSubmatchIndex(filename)
	if loc == nil {
		return filename, ""
	}
	return filename[:loc[0]], filename[loc[2]:loc[3]]
}

// IsObfuscated reports whether a filename stem looks machine-generated
// rather than human-readable. The rule order and thresholds follow SABnzbd
// exactly; the first matching rule decides.
func IsObfuscated(stem string) bool {
	// Certainly obfuscated: 32 hex digits (an MD5-like hash).
	if hex32Pattern.MatchString(stem) {
		return true
	}

	// 40+ characters of hex digits and dots.
	// Example: 0675e29e9abfd2.f7d069dab0b853283cc1b069a25f82.6547
	if hexDotsPattern.MatchString(stem) {
		return true
	}

	// A run of 30+ hex digits combined with two or more bracket groups.
	// Example: [BlaBla] something 5937bc5e32146e.bef89a6...8a [More]
	if hexRunPattern.MatchString(stem) && len(bracketsPattern.FindAllString(stem, -1)) >= 2 {
		return true
	}

	// Common obfuscation prefix.
	if strings.HasPrefix(stem, "abc.xyz") {
		return true
	}

	// Statistical signals over character classes.
	var decimals, upper, lower, spacesDots int
	for _, r := range stem {
		switch {
		case r >= '0' && r <= '9':
			decimals++
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		case r == ' ' || r == '.' || r == '_':
			spacesDots++
		}
	}

	// Example: "Great Distro"
	if upper >= 2 && lower >= 2 && spacesDots >= 1 {
		return false
	}

	// Example: "this is a download"
	if spacesDots >= 3 {
		return false
	}

	// Example: "Beast 2020"
	if upper+lower >= 4 && decimals >= 4 && spacesDots >= 1 {
		return false
	}

	// Example: "Catullus" - starts with a capital, mostly lowercase.
	if first, _ := utf8.DecodeRuneInString(stem); unicode.IsUpper(first) && lower > 2 &&
		float64(upper)/float64(lower) <= 0.25 {
		return false
	}

	// Default to obfuscated.
	return true
}
