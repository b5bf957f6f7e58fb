// Package timezone centralizes time handling in the configured application
// timezone. Check-in, check-out and payment dates are calendar dates; parsing
// them through this package keeps them anchored to the hotel's local day
// rather than the server's.
package timezone
