// Package comm dispatches roboclaw commands over a serial link.
package comm

// The controller answers with no sequence number or other correlation id,
// so a reply can only be matched to the last request written. Dispatcher
// keeps exactly one command on the link at a time: submissions are
// queued in order and a single worker (Dispatcher.Run) writes a request,
// reads its complete reply or times out, and only then takes the next.
//
// A timed out command may or may not have been executed by the
// controller. Nothing in this package retries.
