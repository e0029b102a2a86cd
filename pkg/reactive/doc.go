// Package reactive is a small single-threaded reactive runtime: signals,
// effects that re-run when the signals they read change, and actions that
// run asynchronous work and feed the result back into a signal.
//
// All signal reads and writes happen on the goroutine that calls
// Runtime.Tick. Work finishing on other goroutines hands its result back
// with Runtime.Post. Writes inside Tick never re-enter an effect
// synchronously; dirty effects are queued and run on the next Tick, so a
// self-triggering effect advances exactly one step per tick.
package reactive
