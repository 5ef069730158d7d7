package log

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTimed(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := Timed(&logger, "work")
	assert.Contains(t, buf.String(), `"func":"work"`)
	assert.Contains(t, buf.String(), `"message":"enter"`)

	done()
	assert.Contains(t, buf.String(), `"message":"exit"`)
	assert.Contains(t, buf.String(), `"elapsed"`)
	assert.NotContains(t, buf.String(), `"level":"warn"`)
}

func TestTimed_InfoLevelHidesFastCalls(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	Timed(&logger, "fast")()
	assert.Empty(t, buf.String())
}
