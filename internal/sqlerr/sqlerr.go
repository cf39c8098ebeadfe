// Package sqlerr classifies database driver errors.
//
// It parses SQLSTATE codes reported by Postgres and converts them into the
// API's error shapes, e.g. a unique violation on services.name becomes the
// duplicate-service conflict rather than a generic 500. This is what closes
// the check-then-insert race: the loser of a concurrent create gets the
// same answer the pre-check would have given.
package sqlerr
