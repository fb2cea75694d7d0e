// Package kernel provides core domain primitives for the fabrication backend.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for opaque external identifiers with validation
//     and comparison capabilities
//
// Production orders carry a database-assigned numeric id for internal
// references and a UUID as their external-facing identity; this package owns
// the latter. The primitives are immutable and thread-safe, making them
// suitable for concurrent use.
package kernel
