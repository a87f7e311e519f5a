//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupAppliesDefaultsWhenFileMissing(t *testing.T) {
	initialized = false
	ConfFile = "./nonexistent-config.toml"
	Setup()
	assert.Equal(t, 64, Settings.Search.TTSizeMb)
	assert.Equal(t, int16(10), Settings.Eval.Tempo)
	assert.Equal(t, LogLevels["info"], LogLevel)
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	Setup()
	Settings.Search.TTSizeMb = 999
	Setup()
	assert.Equal(t, 999, Settings.Search.TTSizeMb)
}
