// Package session owns the card set a user is working on.
//
// A session's State is a value: every change builds a new State and stores
// it, nothing is patched in place. Uploads are decoded off the caller's
// goroutine and committed only if no newer upload or reset has happened in
// the meantime; a stale completion is dropped.
package session
