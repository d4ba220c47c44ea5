// Package random generates identifiers: alphanumeric IDs and hex tokens
// backed by crypto/rand, RFC 4122 v4 UUIDs, and cheap stable string
// fingerprints.
//
//	random.ID()          // → "tZ3kQ9xWf0aB7mPc" (16 alphanumeric chars)
//	random.ID(8)         // → "Qf3kW9xZ"
//	random.Hex(4)        // → "9f86d081"
//	random.UUID()        // → "550e8400-e29b-41d4-a716-446655440000"
//	random.Fingerprint("key") // → stable uint64, suitable as a derived key
package random
