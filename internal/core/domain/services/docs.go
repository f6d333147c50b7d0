// Package services provides domain services for rules that span more than one
// order.
//
// The package includes:
//   - DeliveryQueue: reorders a day's delivery list by swapping neighbours
//
// Services here are pure: they take domain values in and hand new values back.
// Persisting the result is the job of the application layer.
package services
