// Package notifications sends customer notifications for order status
// changes and delivery reminders.
//
// Email and messaging are independent channels. A failure on one channel
// never prevents the other, and no notification failure is reported to the
// caller: problems are logged, counted and, for messaging, recorded as notes
// on the order.
package notifications
