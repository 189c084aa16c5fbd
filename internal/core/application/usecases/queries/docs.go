// Package queries contains the read side of the customer portal.
// Handlers read straight from the database through GORM and never load aggregates.
package queries
