// Package model defines the core data structures for the Roomatch API.
//
// Models are plain structs with JSON tags, shared between the repository,
// service, and handler layers. Optional fields use pointer types so that
// "absent" is distinguishable from a zero value: an absent preference field
// means "no constraint", never "match nothing".
//
// The package also defines the fixed questionnaire policy constants
// (question types, default weight) and the RFC 9457 ProblemDetails error
// envelope used by handlers.
package model
