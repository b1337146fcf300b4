// Package menu holds the shop's fixed product catalog. The desk uses it to
// prefill new order drafts with known products and prices.
package menu
