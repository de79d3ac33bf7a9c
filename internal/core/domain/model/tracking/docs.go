// Package tracking implements the tracking record aggregate: the mutable
// status and permission shadow of a placed router order, keyed by the public
// reference number.
//
// A tracking record is created once, immediately after its order is
// persisted, in status PENDING with both customer permissions granted. From
// then on it is mutated only by status transitions, which recompute the
// canModify/canCancel flags from the status-to-permission mapping. The flags
// are a pure function of the status and are never set independently by
// callers. Records are never deleted; CANCELLED is a terminal status, not a
// deletion.
package tracking
