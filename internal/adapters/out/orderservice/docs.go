// Package orderservice implements the outbound client port against the
// upstream order service's JSON REST API. The service is the sole source
// of truth for orders; this adapter only reconstructs its answers into
// validated domain aggregates.
package orderservice
