// +build !debug

//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package assert provides a debug-only invariant check. Builds tagged
// "debug" panic on a failed assertion; all other builds compile the
// check away to a no-op so production binaries pay nothing for it.
package assert

// DEBUG is true only in builds tagged "debug".
const DEBUG = false

// Assert is a no-op in non-debug builds. Callers should still guard
// expensive argument expressions with `if assert.DEBUG { ... }` since Go
// evaluates call arguments even when the call itself does nothing.
func Assert(test bool, msg string, a ...interface{}) {}
