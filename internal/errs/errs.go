// Package errs defines the application error type.
//
// Every failure that leaves the data layer is an *Error with a
// kind (what went wrong), a machine-friendly code (what to switch on)
// and a human-readable message. Field-level validation problems ride
// along in Errors.
package errs
