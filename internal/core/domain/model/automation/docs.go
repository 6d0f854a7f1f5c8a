// Package automation contains the per-user automation setting aggregate.
// A setting decides whether, when, and with which resume the daily delivery
// fires for a user. Settings are written wholesale by the settings form and
// read-only to the dispatch cycle.
package automation
