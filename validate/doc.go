// Package validate provides format predicates for common string shapes:
// email addresses, URLs, phone numbers, hex strings and colors, IP and MAC
// addresses, UUIDs, credit-card numbers, domains, postal codes, ISO dates,
// Base64, and slugs.
//
// Every predicate is a pure pattern match — a total function from string to
// bool with no side effects and no error path. The patterns are deliberately
// format checks, not semantic validation: IsCreditCard matches brand prefix
// and length without a Luhn check, IsISODate range-checks month and day but
// not leap years, and IsIPv6 accepts only the full 8-group form (the
// abbreviated "::" form is not recognized).
package validate
