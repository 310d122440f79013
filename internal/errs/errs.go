// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the HTTP boundary is expressed as an
// *HTTPError so clients receive one consistent JSON shape:
//
//   - Return consistent error shapes to API clients (JSON).
//   - Support field-level errors (validation, uniqueness conflicts).
//   - Support "action hints" (like redirect) that frontends can interpret.
//   - Play nicely with Go's standard errors package.
package errs
