// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS split.
// Queries never mutate the stores; handlers read straight from the
// repositories and return live aggregates.
package queries
