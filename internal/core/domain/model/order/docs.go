// Package order provides domain entities and business logic for order
// management at the coffee shop desk. It implements the Order aggregate with
// lifecycle gating, the Draft composition model, and derived totals.
//
// The package includes:
//   - Order: The aggregate reconstructed from upstream state, with validated invariants
//   - Draft: A client-side order composition with a local submit gate
//   - Item: A product line whose total is always derived from quantity and unit price
//   - Address: An all-or-nothing delivery destination value object
//   - Status: A state machine describing which lifecycle actions are offered
//
// Key business rules:
//   - Order totals equal the sum of item totals; totals are derived, never stored
//   - Delivery orders carry a full address, dine-in orders carry none
//   - Action availability is a pure function of the current status:
//     Created offers cancel; Paid offers mark-ready and cancel; Preparing
//     offers mark-ready; Ready offers complete; Completed and Cancelled are terminal
//   - The upstream order service stays the authority on transitions; the
//     availability table only gates which requests the desk issues
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
