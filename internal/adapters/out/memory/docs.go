// Package memory provides in-memory implementations of the workflow's
// outbound ports: the order registry required by the core, and reference
// collaborator adapters (inventory, payment, discount, notification) used by
// the composition root and by integration-style tests. All adapters are safe
// for concurrent use.
package memory
