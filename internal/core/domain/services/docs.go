// Package services provides domain services for the resume dispatch system.
// Domain services hold business logic that spans multiple aggregates and does
// not naturally belong to any single one.
//
// The package includes:
//   - PayloadAssembler: a pure service that shapes resolved assets into the
//     multipart delivery payload expected by the intake endpoint
package services
