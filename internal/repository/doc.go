// Package repository implements the data access layer for the Roomatch API.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles read operations for a specific domain
// entity; the recommendation core never writes, so no mutation methods exist
// here.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Query Patterns
//
//   - Parameterized queries with $variable syntax for security
//   - Cross-entity references stored as plain string ids (user_id,
//     listing_id, question_id) so membership checks can use INSIDE with
//     string arrays
//
// # Freshness
//
// Nothing is cached: preference profiles and questionnaire answers are read
// fresh on every recommendation request.
package repository
