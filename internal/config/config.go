//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package config holds globally available configuration variables which
// are either set by defaults, read from a TOML config file, or set by
// command line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Mario-O123/chessgo/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working directory).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by cmd line options or config file.
	LogLevel = 5

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
	Cache  cacheConfiguration
}

// Setup reads the configuration file and applies settings from it over
// the package defaults. Safe to call more than once; only the first call
// has any effect.
func Setup() {
	if initialized {
		return
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	setupLogLvl()
	initialized = true
}

// String prints out the current configuration settings and values using
// reflection, matching the debug-report style used throughout this stack.
func (settings *conf) String() string {
	var c strings.Builder
	report := func(name string, v interface{}) {
		c.WriteString(name + ":\n")
		s := reflect.ValueOf(v).Elem()
		t := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
		}
	}
	report("Search Config", &settings.Search)
	c.WriteString("\n")
	report("Evaluation Config", &settings.Eval)
	c.WriteString("\n")
	report("Cache Config", &settings.Cache)
	return c.String()
}
