// Package validate provides input validation for user-supplied search
// parameters before any provider request is issued.
//
// All functions are pure. Failures are reported as *Error so callers can
// distinguish bad user input from provider or transport failures.
package validate
