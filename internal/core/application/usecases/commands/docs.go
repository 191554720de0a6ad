// Package commands contains the write operations of the order workflow:
// order creation and cancellation. Handlers own the shared mutable state of
// the workflow (registry, quota tracker, per-key locks) through injected
// collaborators and follow a consistent pattern: command validation, a keyed
// critical section over validation and commit, and fire-and-forget
// notification dispatched only after the lock is released.
package commands
