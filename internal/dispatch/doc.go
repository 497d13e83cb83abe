// Package dispatch is the message pump of the server: it pulls raw
// payloads off the inbound queue, assigns each a monotonic send ordinal,
// parses and routes them to registered handlers on a request pool, and
// releases responses to the outbound queue in strict ordinal order.
//
// # Ordering
//
// The LSP specification requires responses in roughly the order their
// requests arrived; this dispatcher enforces the strict version. Every
// inbound message — notifications included — consumes one SendId at
// dequeue time. A response for SendId k is enqueued outbound only after
// all SendIds below k have been released; notifications release their
// slot without emitting. Release waits on a condition variable keyed to
// pendingSendID, which advances strictly by one.
//
// Relaxing the order for independent method families would need a
// dependency graph and is deliberately not implemented.
//
// # Termination
//
// Terminate flips a flag and wakes all waiters. In-flight tasks observe
// it at their next checkpoint and finish without emitting; slots released
// after termination produce no further outbound payloads.
package dispatch
