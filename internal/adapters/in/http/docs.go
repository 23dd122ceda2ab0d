// Package http is the inbound HTTP adapter.
//
// Each route is served by a pipeline: an ordered chain of validation stages
// ending in a terminal stage that calls a command or query handler and
// shapes the response. The first stage to fail halts the chain and its
// typed failure is rendered by the single error translator; the stores are
// never touched before the terminal stage runs.
//
// Request payloads are decoded into loose DTOs (price, quantity and the
// dish list are dynamically typed) because the wire contract predates this
// service: field presence is truthiness-based and malformed values must
// produce the exact messages existing clients match on.
package http
