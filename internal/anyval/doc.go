// Package anyval provides a tagged dynamic value tree isomorphic to JSON.
//
// Value is the parse and serialize intermediate between the wire and the
// typed protocol structs. It distinguishes integer, unsigned-integer, and
// floating-point numbers, and its objects preserve key insertion order.
// Values own their children; Clone produces a structurally independent copy.
//
// Downstream code should not branch on Value kinds outside the codec; the
// codec package converts between Value trees and typed protocol structs.
package anyval
