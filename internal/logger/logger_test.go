package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyHandler(t *testing.T) {
	color.NoColor = true

	t.Run("filters below warn by default", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(Options{Output: &buf})

		l.Info("hidden")
		l.Warn("falling back", "reason", "no api key")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "[WARN]")
		assert.Contains(t, out, "falling back")
		assert.Contains(t, out, "reason=no api key")
	})

	t.Run("verbose enables info", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(Options{Output: &buf, Verbose: true})

		l.Info("scores computed", "craft", 90)

		assert.Contains(t, buf.String(), "craft=90")
	})

	t.Run("attributes and groups are prefixed", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(Options{Output: &buf, Verbose: true}).With("pr_number", 7).WithGroup("ai")

		l.Info("calling provider", "provider", "groq")

		out := buf.String()
		assert.Contains(t, out, "pr_number=7")
		assert.Contains(t, out, "ai.provider=groq")
	})
}

func TestJSONOption(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Output: &buf, JSON: true})

	l.Warn("analysis fell back", "source", "fallback")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "analysis fell back", line["msg"])
	assert.Equal(t, "fallback", line["source"])
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	color.NoColor = true
	ctx := WithLogger(context.Background(), New(Options{Output: &buf}))
	ctx = With(ctx, "repo", "acme/api")

	Error(ctx, "fetch failed", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "repo=acme/api")
	assert.Contains(t, out, "error=boom")
}

func TestFromContext_DefaultsToSlogDefault(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}
