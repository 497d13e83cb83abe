// Package pool provides a named worker pool executing tagged tasks.
//
// Each worker is identified as <pool name>_<index>; a task that panics is
// recovered at the task boundary and logged with the worker identity, the
// task tag, and the stack, so one bad task never takes down a worker or
// the process.
package pool
