// Package errs defines the error types shared across the application.
//
// Two families live here:
//   - domain not-found errors (NotFoundError and its sentinels), returned by
//     the repository and matched by callers with errors.Is
//   - HTTPError, the consistent error shape returned to API clients
package errs
