// Package errs defines the closed set of error shapes returned to API
// clients.
//
// Every failure a pipeline can produce is one of these variants, so the
// global error handler can serialize a consistent JSON body and callers can
// branch on the machine code.
package errs
