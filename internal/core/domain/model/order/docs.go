// Package order provides the tailoring order aggregate.
//
// An Order tracks one tailoring job from intake to hand-over. It owns:
//   - the production Status (draft, received, measurement, cutting, sewing,
//     finishing, quality_check, ready, delivered, cancelled)
//   - the customer snapshot used for notifications
//   - garment details, flat body measurements and payment figures
//   - an append-only audit trail of status changes and activity notes
//
// Status changes go through ApplyStatus or one of the nine named transition
// methods that delegate to it. No adjacency rules apply: any status may
// follow any other, and delivered or cancelled orders can still be moved.
// Every change appends exactly one status-change entry to the audit trail.
//
// Payment figures are validated on every write: the advance must lie in
// [0, total], so the balance due is never negative.
package order
