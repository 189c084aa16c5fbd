// Package services provides domain services for the tailoring order domain.
// They hold rules that belong to no single aggregate.
//
// The package includes:
//   - PhoneNormalizer: turns customer phone numbers into messaging addresses
//   - DeliveryReminderPolicy: decides which orders get a delivery-day reminder
package services
