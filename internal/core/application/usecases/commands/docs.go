// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: a constructor-guarded command
// object validated at creation, and a handler that performs the mutation
// against the repositories.
//
// Handlers are the terminal stage of each request pipeline: no mutation
// happens before a command handler runs, so a request that fails validation
// leaves the stores untouched.
package commands
