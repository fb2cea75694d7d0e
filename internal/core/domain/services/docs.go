// Package services provides domain services for the fabrication backend,
// implementing business logic that does not naturally belong to a single
// entity.
//
// The package includes:
//   - RequirementsCalculator: A pure, stateless service deriving material
//     requirements (profile length, glass area, hardware units) from line
//     items and aggregating them into an order summary
//
// The calculator never persists anything; summaries are recomputed from the
// current item set on every call so they cannot go stale.
package services
