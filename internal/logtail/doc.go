// Package logtail reads the log source flow displays.
//
// Tail scans a file once with a ring buffer and returns its last N complete
// lines using O(N) memory, together with the byte offset after the last
// complete line, which is where a Follower picks up.
//
// A Follower is polled for lines appended since the previous poll. It keeps
// an unterminated trailing line until the newline arrives, and reports
// Reset when the file shrinks or is replaced by rotation, in which case the
// file is read again from the start. Watch turns fsnotify events on the
// file into wake-ups so callers can poll promptly instead of waiting for
// their ticker.
//
// A missing file is not an error for Tail; it returns no lines.
// Poll reports it so the caller can back off and retry.
package logtail
