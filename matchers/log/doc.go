// Package log defines the minimal structured logging abstraction the
// assertion layer reports failures through. Applications plug in their own
// backend by implementing Logger; a zap-backed implementation lives in the
// sibling zap package and NewNop gives a silent default.
package log
