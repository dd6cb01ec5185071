// Package middleware provides HTTP middleware for the Roomatch API.
//
// The middleware package contains reusable components for request
// identification, logging, panic recovery, CORS, and caller identity.
//
// # Available Middleware
//
// Core middleware components:
//
//   - RequestID: unique id per request, propagated via X-Request-ID
//   - Logger: structured request logging with status and duration
//   - Recovery: panic recovery with a Problem Details 500 response
//   - CORS: cross-origin request handling
//   - Identity: caller identification from the X-User-ID header
//
// # Identity
//
// The identity middleware reads the caller's user id and stores it in the
// request context. Handlers access it with:
//
//	userID := middleware.GetUserID(r.Context())
//
// Middleware are composed with Chain, which applies them in order:
//
//	wrapped := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
package middleware
