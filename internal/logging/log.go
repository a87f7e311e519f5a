//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package logging provides a single shared logging backend so every
// package can obtain a named *logging.Logger with consistent formatting
// instead of configuring go-logging itself.
package logging

import (
	"os"
	"sync"

	. "github.com/op/go-logging"
)

var (
	once      sync.Once
	formatter Formatter
)

func setup() {
	formatter = MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
	)
	backend := NewLogBackend(os.Stderr, "", 0)
	backendFormatter := NewBackendFormatter(backend, formatter)
	leveled := AddModuleLevel(backendFormatter)
	leveled.SetLevel(INFO, "")
	SetBackend(leveled)
}

// GetLog returns a named logger backed by the shared stderr backend. The
// backend is installed once per process regardless of how many packages
// call GetLog.
func GetLog(name string) *Logger {
	once.Do(setup)
	return MustGetLogger(name)
}
