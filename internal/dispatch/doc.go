// Package dispatch runs blocking work on a bounded set of slots.
//
// The HTTP layer hands every extraction to a Pool so a burst of requests
// cannot spawn an unbounded number of engine processes. Callers submit a
// typed function and Await its result; waiting honours the caller's context,
// so a request that times out stops waiting even while the work is still
// queued or running.
package dispatch
