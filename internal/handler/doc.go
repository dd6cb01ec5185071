// Package handler provides HTTP request handlers for the Roomatch API.
//
// Each handler struct encapsulates the service dependencies needed to serve
// requests for one feature area.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Caller Identity
//
// Handlers identify the caller through the identity middleware:
//
//	userID := middleware.GetUserID(r.Context())
//
// Requests without an identity receive a 401 Problem Details response.
package handler
