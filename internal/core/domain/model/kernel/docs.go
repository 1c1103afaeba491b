// Package kernel provides the primitives shared by every domain model of the
// ordering service:
//   - UUID: validated identifier wrapping github.com/google/uuid
//   - Entity: identity plus created/updated timestamps, embedded by value
package kernel
