// Package handler is the HTTP entry point after the router.
//
// Handlers bind and validate request payloads via the validation package,
// call the matching service pipeline, and write the stored snapshot back as
// JSON. All failures are returned as errors for the global error funnel.
package handler
