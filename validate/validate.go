package validate

import (
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlPattern      = regexp.MustCompile(`^https?://[^\s/$.?#][^\s]*$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,18}[0-9]$`)
	hexPattern      = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	hexColorPattern = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	ipv4Pattern     = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])\.){3}(?:25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])$`)
	ipv6Pattern     = regexp.MustCompile(`^(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}$`)
	// RE2 has no backreferences, so the two separator styles are spelled out.
	macColonPattern  = regexp.MustCompile(`^(?:[0-9a-fA-F]{2}:){5}[0-9a-fA-F]{2}$`)
	macHyphenPattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{2}-){5}[0-9a-fA-F]{2}$`)
	uuidPattern      = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	cardPattern      = regexp.MustCompile(`^(?:4[0-9]{12}(?:[0-9]{3})?|5[1-5][0-9]{14}|3[47][0-9]{13}|6(?:011|5[0-9]{2})[0-9]{12})$`)
	domainPattern    = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
	postalPattern    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 -]{1,8}[A-Za-z0-9]$`)
	isoDatePattern   = regexp.MustCompile(`^[0-9]{4}-(?:0[1-9]|1[0-2])-(?:0[1-9]|[12][0-9]|3[01])$`)
	base64Pattern    = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{4}|[A-Za-z0-9+/]{3}=|[A-Za-z0-9+/]{2}==)$`)
	slugPattern      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// IsEmail reports whether s looks like an email address (one @, no
// whitespace, dotted domain).
func IsEmail(s string) bool { return emailPattern.MatchString(s) }

// IsURL reports whether s is a scheme-qualified http(s) URL.
func IsURL(s string) bool { return urlPattern.MatchString(s) }

// IsPhone reports whether s matches a loose international phone pattern:
// optional leading +, 7–20 digits with spaces, dots, hyphens, or
// parentheses in between.
func IsPhone(s string) bool { return phonePattern.MatchString(s) }

// IsHex reports whether s is a non-empty hexadecimal string.
func IsHex(s string) bool { return hexPattern.MatchString(s) }

// IsHexColor reports whether s is a 3- or 6-digit hex color, with or
// without a leading #.
func IsHexColor(s string) bool { return hexColorPattern.MatchString(s) }

// IsIPv4 reports whether s is a dotted-quad IPv4 address with every octet
// in [0, 255].
func IsIPv4(s string) bool { return ipv4Pattern.MatchString(s) }

// IsIPv6 reports whether s is an IPv6 address in the full 8-group form.
// The abbreviated "::" form is NOT recognized.
func IsIPv6(s string) bool { return ipv6Pattern.MatchString(s) }

// IsMAC reports whether s is a MAC address with six hex pairs separated
// consistently by colons or by hyphens.
func IsMAC(s string) bool {
	return macColonPattern.MatchString(s) || macHyphenPattern.MatchString(s)
}

// IsUUID reports whether s is an 8-4-4-4-12 hex UUID (any variant).
func IsUUID(s string) bool { return uuidPattern.MatchString(s) }

// IsCreditCard reports whether s matches a known brand prefix and length
// (Visa, Mastercard, Amex, Discover) after removing spaces and hyphens.
// No Luhn checksum is performed.
func IsCreditCard(s string) bool {
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	return cardPattern.MatchString(s)
}

// IsDomain reports whether s is a dotted domain name with a purely
// alphabetic top-level label of at least two characters.
func IsDomain(s string) bool { return domainPattern.MatchString(s) }

// IsPostalCode reports whether s is a loose postal code: 3–10 characters,
// alphanumeric with internal spaces or hyphens allowed.
func IsPostalCode(s string) bool { return postalPattern.MatchString(s) }

// IsISODate reports whether s is a YYYY-MM-DD calendar date with month in
// 01–12 and day in 01–31. Month lengths and leap years are not validated.
func IsISODate(s string) bool { return isoDatePattern.MatchString(s) }

// IsBase64 reports whether s is strict standard Base64: non-empty groups
// of four, padded with = or == in the final group only.
func IsBase64(s string) bool { return base64Pattern.MatchString(s) }

// IsSlug reports whether s is a lowercase alphanumeric slug with single
// internal hyphens and no leading or trailing hyphen.
func IsSlug(s string) bool { return slugPattern.MatchString(s) }
