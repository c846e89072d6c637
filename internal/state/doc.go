// Package state hands log lines from the follower goroutine to the UI.
//
// The follower polls the log source on its own schedule and pushes what it
// found into an Inbox; the Bubble Tea loop drains the inbox on every tick.
// Only the UI loop touches the scrollback buffers, so the inbox mutex is the
// single synchronization point between the two goroutines.
//
//	follower:                 UI tick:
//	  batch, err := f.Poll()    b := inbox.Drain()
//	  inbox.Push(batch...)      append b.Lines to panes
//	  or inbox.Fail(err)        show b.LastError in the status bar
//
// A reset push (truncation or rotation) discards whatever was still pending,
// and Drain reports it so panes clear their buffers before appending. Limit
// bounds the backlog if the UI stalls; dropped lines are counted.
//
// Errors persist across drains until the next successful push, which also
// clears the consecutive failure count. The zero Inbox is ready to use.
package state
