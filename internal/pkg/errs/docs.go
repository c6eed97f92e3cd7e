// Package errs provides the generic error types shared by the domain, the repositories
// and the read side.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) matched with errors.Is
//   - a struct carrying the offending parameter and optional cause
//   - constructors with and without cause
//
// Entity-specific failures shown to back-office users (duplicate names, missing fields)
// live next to their aggregates, not here.
package errs
