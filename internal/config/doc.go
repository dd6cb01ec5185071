// Package config provides environment-based configuration for the Roomatch API.
//
// Configuration is loaded from environment variables with sensible defaults
// for local development. Load never fails; Validate reports every invalid or
// missing value at once via errors.Join.
//
// The Matching section carries the questionnaire scoring policy constants
// (reserved/year/critical question ids, radio scale). They are configurable
// for test environments but their defaults are part of the scoring contract.
package config
