package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-handy-utils/validate"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, validate.IsEmail("alice@example.com"))
	assert.True(t, validate.IsEmail("a.b+tag@sub.domain.co"))
	assert.False(t, validate.IsEmail("not-an-email"))
	assert.False(t, validate.IsEmail("two@@example.com"))
	assert.False(t, validate.IsEmail("spaces in@example.com"))
	assert.False(t, validate.IsEmail("alice@localhost"))
}

func TestIsURL(t *testing.T) {
	assert.True(t, validate.IsURL("https://example.com/path?q=1"))
	assert.True(t, validate.IsURL("http://example.com"))
	assert.False(t, validate.IsURL("example.com"))
	assert.False(t, validate.IsURL("ftp://example.com"))
	assert.False(t, validate.IsURL("https:// spaced.com"))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, validate.IsPhone("+44 20 7946 0958"))
	assert.True(t, validate.IsPhone("555-123-4567"))
	assert.True(t, validate.IsPhone("5551234567"))
	assert.False(t, validate.IsPhone("12345"))
	assert.False(t, validate.IsPhone("phone"))
}

func TestIsHex(t *testing.T) {
	assert.True(t, validate.IsHex("deadBEEF01"))
	assert.False(t, validate.IsHex(""))
	assert.False(t, validate.IsHex("0xff"))
	assert.False(t, validate.IsHex("xyz"))
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, validate.IsHexColor("#fff"))
	assert.True(t, validate.IsHexColor("#FF5733"))
	assert.True(t, validate.IsHexColor("ff5733"))
	assert.False(t, validate.IsHexColor("#ff573"))
	assert.False(t, validate.IsHexColor("#gggggg"))
}

func TestIsIPv4(t *testing.T) {
	assert.True(t, validate.IsIPv4("192.168.1.1"))
	assert.True(t, validate.IsIPv4("0.0.0.0"))
	assert.True(t, validate.IsIPv4("255.255.255.255"))
	assert.False(t, validate.IsIPv4("256.1.1.1"))
	assert.False(t, validate.IsIPv4("1.2.3"))
	assert.False(t, validate.IsIPv4("1.2.3.4.5"))
}

func TestIsIPv6(t *testing.T) {
	assert.True(t, validate.IsIPv6("2001:0db8:85a3:0000:0000:8a2e:0370:7334"))
	assert.True(t, validate.IsIPv6("fe80:0:0:0:0:0:0:1"))
	// abbreviated form is deliberately not recognized
	assert.False(t, validate.IsIPv6("::1"))
	assert.False(t, validate.IsIPv6("2001:db8::1"))
	assert.False(t, validate.IsIPv6("2001:db8"))
}

func TestIsMAC(t *testing.T) {
	assert.True(t, validate.IsMAC("00:1A:2b:3C:4d:5E"))
	assert.True(t, validate.IsMAC("00-1a-2b-3c-4d-5e"))
	assert.False(t, validate.IsMAC("00:1a-2b:3c:4d:5e"))
	assert.False(t, validate.IsMAC("001a2b3c4d5e"))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, validate.IsUUID("550e8400-e29b-41d4-a716-446655440000"))
	assert.False(t, validate.IsUUID("550e8400e29b41d4a716446655440000"))
	assert.False(t, validate.IsUUID("550e8400-e29b-41d4-a716-44665544000g"))
}

func TestIsCreditCard(t *testing.T) {
	assert.True(t, validate.IsCreditCard("4111111111111111"))      // Visa
	assert.True(t, validate.IsCreditCard("4111 1111 1111 1111"))   // separators ignored
	assert.True(t, validate.IsCreditCard("5500-0000-0000-0004"))   // Mastercard
	assert.True(t, validate.IsCreditCard("340000000000009"))       // Amex
	assert.True(t, validate.IsCreditCard("6011000000000004"))      // Discover
	assert.False(t, validate.IsCreditCard("1234567890123456"))     // unknown prefix
	assert.False(t, validate.IsCreditCard("41111111"))             // too short
}

func TestIsDomain(t *testing.T) {
	assert.True(t, validate.IsDomain("example.com"))
	assert.True(t, validate.IsDomain("sub.domain.co.uk"))
	assert.False(t, validate.IsDomain("example"))
	assert.False(t, validate.IsDomain("-bad.com"))
	assert.False(t, validate.IsDomain("example.c"))
}

func TestIsPostalCode(t *testing.T) {
	assert.True(t, validate.IsPostalCode("90210"))
	assert.True(t, validate.IsPostalCode("SW1A 1AA"))
	assert.True(t, validate.IsPostalCode("K1A-0B1"))
	assert.False(t, validate.IsPostalCode("ab"))
	assert.False(t, validate.IsPostalCode("12345678901"))
}

func TestIsISODate(t *testing.T) {
	assert.True(t, validate.IsISODate("2024-02-12"))
	assert.True(t, validate.IsISODate("1999-12-31"))
	assert.False(t, validate.IsISODate("2024-13-01"))
	assert.False(t, validate.IsISODate("2024-01-32"))
	assert.False(t, validate.IsISODate("2024-00-01"))
	assert.False(t, validate.IsISODate("2024-1-01"))
	assert.False(t, validate.IsISODate("12-01-2024"))
}

func TestIsBase64(t *testing.T) {
	assert.True(t, validate.IsBase64("aGVsbG8="))
	assert.True(t, validate.IsBase64("aGVsbG8gd29ybGQ="))
	assert.True(t, validate.IsBase64("YWJjZA=="))
	assert.False(t, validate.IsBase64(""))
	assert.False(t, validate.IsBase64("aGVsbG8"))  // not padded to a 4-group
	assert.False(t, validate.IsBase64("a==="))
}

func TestIsSlug(t *testing.T) {
	assert.True(t, validate.IsSlug("hello-world-123"))
	assert.True(t, validate.IsSlug("a"))
	assert.False(t, validate.IsSlug("-leading"))
	assert.False(t, validate.IsSlug("trailing-"))
	assert.False(t, validate.IsSlug("double--hyphen"))
	assert.False(t, validate.IsSlug("Upper-Case"))
}
