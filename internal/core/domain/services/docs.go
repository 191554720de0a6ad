// Package services contains the domain services supporting order creation:
// the PricingEngine, which computes the final order price, and the
// DailyQuotaTracker, which bounds cumulative quantity per product per UTC day.
package services
