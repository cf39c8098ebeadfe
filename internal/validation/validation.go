// Package validation checks request payloads before any store access.
//
// Struct tags (via the validator library) cover the generic rules. The
// field grammars specific to this API (price, booking date, booking time)
// live in this package so every handler applies them identically. Checks
// are order-sensitive and the first failure wins.
package validation
