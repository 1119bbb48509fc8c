// Package validation contains the logic for validating
// request data.
//
// Request payloads are checked with `validator` struct tags and
// domain models with ozzo-validation rules; both kinds of failure are
// turned into a 400 errs.HTTPError with per-field messages.
package validation
