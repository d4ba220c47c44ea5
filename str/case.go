package str

import (
	"strings"
	"unicode"
)

// ─────────────────────────────────────────────────────────────────────────────
// Word splitting
// ─────────────────────────────────────────────────────────────────────────────

// splitWords breaks s into lowercase words at whitespace, hyphens,
// underscores, and camel boundaries. Acronym runs stay together until a
// lowercase letter follows: "getHTTPResponse" → [get, http, response].
func splitWords(s string) []string {
	runes := []rune(s)
	words := make([]string, 0, 8)
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			flush()
			continue
		}
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// upperFirst capitalizes the first rune of a lowercase word.
func upperFirst(word string) string {
	r := []rune(word)
	if len(r) == 0 {
		return word
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// ─────────────────────────────────────────────────────────────────────────────
// Case targets
// ─────────────────────────────────────────────────────────────────────────────

// CamelCase converts s to camelCase.
//
//	CamelCase("hello-world") // → "helloWorld"
//	CamelCase("HTTP server") // → "httpServer"
func CamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(words[0])
	for _, w := range words[1:] {
		b.WriteString(upperFirst(w))
	}
	return b.String()
}

// PascalCase converts s to PascalCase.
//
//	PascalCase("hello_world") // → "HelloWorld"
func PascalCase(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(upperFirst(w))
	}
	return b.String()
}

// SnakeCase converts s to snake_case.
//
//	SnakeCase("helloWorld")      // → "hello_world"
//	SnakeCase("getHTTPResponse") // → "get_http_response"
func SnakeCase(s string) string {
	return strings.Join(splitWords(s), "_")
}

// KebabCase converts s to kebab-case.
//
//	KebabCase("helloWorld") // → "hello-world"
func KebabCase(s string) string {
	return strings.Join(splitWords(s), "-")
}

// ConstantCase converts s to CONSTANT_CASE.
//
//	ConstantCase("helloWorld") // → "HELLO_WORLD"
func ConstantCase(s string) string {
	return strings.ToUpper(SnakeCase(s))
}

// TitleCase converts s to Title Case, capitalizing every word.
//
//	TitleCase("hello_world") // → "Hello World"
func TitleCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

// SentenceCase converts s to Sentence case: first word capitalized, the
// rest lowercase, space separated.
//
//	SentenceCase("helloWorld-again") // → "Hello world again"
func SentenceCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	words[0] = upperFirst(words[0])
	return strings.Join(words, " ")
}

// ToggleCase swaps the case of every letter in s, leaving other runes
// untouched.
//
//	ToggleCase("Hello World") // → "hELLO wORLD"
func ToggleCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}

// Capitalize uppercases the first rune of s and lowercases the rest.
//
//	Capitalize("hELLO") // → "Hello"
func Capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}
