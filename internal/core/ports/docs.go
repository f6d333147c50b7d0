// Package ports defines the persistence contracts of the order desk core.
// Adapters in internal/adapters/out implement them; command handlers depend
// only on these interfaces.
package ports
