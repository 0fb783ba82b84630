package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		log, err := Init(level, "text", false)
		require.NoError(t, err, "level %q", level)
		require.NotNil(t, log)
	}
}

func TestTUISinkReceivesLines(t *testing.T) {
	ch := make(chan string, 8)
	SetTUISink(ch)
	defer SetTUISink(nil)

	log, err := Init("info", "text", false)
	require.NoError(t, err)

	log.Info("horn sounded", "brand", "Ford")

	select {
	case line := <-ch:
		assert.True(t, strings.Contains(line, "horn sounded"))
	default:
		t.Fatal("no log line forwarded to TUI sink")
	}
}

func TestTUISinkNeverBlocks(t *testing.T) {
	ch := make(chan string) // unbuffered, nobody reading
	w := &tuiWriter{ch: ch}

	n, err := w.Write([]byte("dropped line\n"))
	require.NoError(t, err)
	assert.Equal(t, len("dropped line\n"), n)
}
