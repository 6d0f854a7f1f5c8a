// Package dispatch contains the value objects produced and consumed by one
// dispatch cycle: the tagged outcome of resolving a user's assets, the
// delivery payload, the per-user delivery result, and the aggregate report
// returned to the invoker. Nothing in this package is persisted; a cycle is
// stateless with respect to prior cycles.
package dispatch
