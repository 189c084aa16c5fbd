// Package kernel holds the shared value objects of the tailoring domain:
// identifiers and currencies. Values here are immutable and are validated
// by their constructors; zero values fail Validate.
package kernel
