// Package service implements the recommendation logic for the Roomatch API.
//
// The pipeline is: preference filtering narrows the candidate listings, a
// weighted questionnaire compatibility score ranks the survivors against the
// searcher, and the ranking service sorts, truncates, and returns them in
// order.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with
//     repository dependencies
//   - Services define their own repository interfaces for easy mocking
//   - Context is passed through for cancellation and request-scoped values
//
// # Failure Contract
//
// Recommendations are a non-critical, best-effort feature: the public
// operations in this package are total. They never return an error to the
// caller; data-access or computation failures are logged and mapped to a
// documented fallback value (NeutralScore for compatibility, an empty set
// for filtering and ranking). Malformed optional preference fields are not
// failures at all, they simply mean "no constraint".
package service
