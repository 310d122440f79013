// Package handler is the first layer after the router.
//
// It binds and validates requests using the validation package,
// calls the service layer and wraps results in the response
// envelope. It is the interface between HTTP and the business logic.
package handler
