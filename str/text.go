package str

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ─────────────────────────────────────────────────────────────────────────────
// Truncation & slugs
// ─────────────────────────────────────────────────────────────────────────────

// DefaultSlugLength is the maximum slug length used by [Slugify] when no
// explicit limit is given.
const DefaultSlugLength = 64

// Truncate shortens s to at most max runes, appending suffix (default "...")
// when truncation occurs. The suffix counts toward max; when max is too
// small to fit the suffix, the bare cut is returned.
//
//	Truncate("hello world", 8)      // → "hello..."
//	Truncate("hello", 10)           // → "hello"
//	Truncate("hello world", 7, "…") // → "hello …"
func Truncate(s string, max int, suffix ...string) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	suf := "..."
	if len(suffix) > 0 {
		suf = suffix[0]
	}
	keep := max - len([]rune(suf))
	if keep < 0 {
		return string(r[:max])
	}
	return string(r[:keep]) + suf
}

var (
	nonSlugRuns   = regexp.MustCompile(`[^a-z0-9]+`)
	slugDeaccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify converts s into a URL-safe slug: diacritics are folded to their
// base letters, everything outside [a-z0-9] collapses to single hyphens, and
// leading/trailing hyphens are trimmed. The result is capped at maxLen[0]
// runes ([DefaultSlugLength] when omitted); a non-positive cap disables the
// limit.
//
//	Slugify("Crème Brûlée!")    // → "creme-brulee"
//	Slugify("Hello,   World—")  // → "hello-world"
func Slugify(s string, maxLen ...int) string {
	max := DefaultSlugLength
	if len(maxLen) > 0 {
		max = maxLen[0]
	}
	if folded, _, err := transform.String(slugDeaccents, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	s = nonSlugRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if max > 0 && len(s) > max {
		s = strings.TrimRight(s[:max], "-")
	}
	return s
}

// Mask replaces all but the last visible[0] runes of s (default 4) with
// asterisks. Strings no longer than the visible count are returned
// unchanged.
//
//	Mask("4111111111111111") // → "************1111"
//	Mask("secret", 2)        // → "****et"
func Mask(s string, visible ...int) string {
	keep := 4
	if len(visible) > 0 {
		keep = visible[0]
	}
	if keep < 0 {
		keep = 0
	}
	r := []rune(s)
	if len(r) <= keep {
		return s
	}
	return strings.Repeat("*", len(r)-keep) + string(r[len(r)-keep:])
}

// ─────────────────────────────────────────────────────────────────────────────
// Markup
// ─────────────────────────────────────────────────────────────────────────────

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes anything that looks like an HTML/XML tag from s.
// It is a textual strip, not an HTML parser: comments and malformed
// markup interleaved with quoted ">" are out of scope.
//
//	StripTags("<p>Hello <b>world</b></p>") // → "Hello world"
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// The five reserved characters and their entities. EscapeHTML and
// UnescapeHTML must stay exact inverses over this table, which is why
// stdlib html.UnescapeString (which accepts many more entity forms) is
// not used here.
var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	htmlUnescaper = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

// EscapeHTML replaces & < > " ' with their HTML entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// UnescapeHTML reverses [EscapeHTML], replacing the five entities with
// their literal characters.
func UnescapeHTML(s string) string {
	return htmlUnescaper.Replace(s)
}
