// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers deliver
// validated payloads, services enforce the business invariants and
// lifecycle rules, and repositories perform the single persisted write.
// Each operation is a strictly sequential pipeline; the first failing
// stage produces the definitive client error and nothing after it runs.
package service
