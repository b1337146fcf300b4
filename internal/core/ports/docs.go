// Package ports defines the outbound contracts of the application core:
// the upstream order service client and the read cache in front of it.
// Adapters under internal/adapters/out implement them.
package ports
