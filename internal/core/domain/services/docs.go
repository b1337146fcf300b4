// Package services contains domain services operating across the order model.
// Pricing strategies estimate a pre-submission charge per fulfillment type
// without touching the order's own derived total.
package services
