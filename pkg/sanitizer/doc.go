// Package sanitizer normalizes stored free-text values for display.
//
// Stored documents keep exactly what the operator typed; these functions are
// applied only when a value is shown, as in the cliente listing and the
// e-ticket. All functions are idempotent and never fail: input that cannot
// be normalized is returned trimmed.
//
// Normalization includes:
//   - Names: collapse whitespace, trim leading/trailing spaces
//   - Phone numbers: E.164 when the number parses, otherwise the trimmed input
package sanitizer
