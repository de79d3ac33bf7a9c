// Package order implements the router order aggregate: a customer's request
// for router equipment provisioning, with its connection configuration, site
// contact bundle and ordering attributes.
//
// An order is created once with a generated reference number and is mutated
// only by status mirroring and explicit modification requests. The order's
// status field is a denormalized mirror of its tracking record, updated by
// the lifecycle manager inside the same transaction as the tracking write. A
// reorder creates a new order with a new reference number, copying the
// descriptive fields and resetting status, timestamp and owner email.
package order
