// Package repository handles all interactions with the database.
//
// It contains the SQL for services, bookings, support messages, and
// profiles, keeping query logic out of the service layer. Row absence is
// reported through the domain sentinel errors so callers can map it to the
// right client response.
package repository
