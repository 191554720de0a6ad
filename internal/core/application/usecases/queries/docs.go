// Package queries contains the read operations of the order workflow:
// snapshots of the registry in creation order, optionally filtered by
// lifecycle status. Queries never mutate state.
package queries
