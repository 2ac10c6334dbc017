package logger

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLevelAndFormat(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "warn"}, &out)
	t.Cleanup(func() { Init(NewConfig(), io.Discard) })

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	logged := out.String()
	assert.NotContains(t, logged, "hidden")
	assert.Contains(t, logged, `msg="shown 2"`)
	assert.Contains(t, logged, "logger_test.go", "source is reduced to the base file name")
}

func TestTagFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledTags: []string{"Event"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), io.Discard) })

	DebugTagf("event", "dropped")
	DebugTagf("search", "kept")
	Debugf("untagged")

	logged := out.String()
	assert.NotContains(t, logged, "dropped")
	assert.Contains(t, logged, "kept")
	assert.Contains(t, logged, "untagged")
}

func TestEnabledTagsOnlyAffectTaggedMessages(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledTags: []string{"search"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), io.Discard) })

	DebugTagf("config", "other tag")
	DebugTagf("search", "wanted tag")
	Errorf("plain error")

	logged := out.String()
	assert.NotContains(t, logged, "other tag")
	assert.Contains(t, logged, "wanted tag")
	assert.Contains(t, logged, "plain error")
}

func TestPackageFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledPackages: []string{"logger"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), io.Discard) })

	Errorf("from this package")
	assert.Empty(t, out.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("err"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
