// Package auth resolves the principal of a request and decides whether an
// operation may run for it.
//
// Authentication never fails a request: a missing, malformed, expired or
// unknown token simply leaves the request without a principal. Authorization
// is coarse and role based; per-order checks live in the order package.
package auth
