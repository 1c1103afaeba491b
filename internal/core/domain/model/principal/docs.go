// Package principal models the authenticated actors of the ordering service.
//
// A Principal is the read-only view attached to a request: an identifier, an
// email and one of three roles (CUSTOMER, OWNER, DELIVERY). An Account is the
// stored form that additionally holds the bcrypt password hash and is only
// handled by the account use cases and the principal repository.
package principal
