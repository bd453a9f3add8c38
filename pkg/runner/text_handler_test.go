package runner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_Output(t *testing.T) {
	ctx := context.Background()

	t.Run("Without Label", func(t *testing.T) {
		outBuf := &bytes.Buffer{}
		handler := NewTextHandler(strings.NewReader(""), outBuf)

		require.NoError(t, handler.Output(ctx, "", number(5)))
		assert.Equal(t, "NUMBER: 5\n", outBuf.String())
	})

	t.Run("With Label", func(t *testing.T) {
		outBuf := &bytes.Buffer{}
		handler := NewTextHandler(strings.NewReader(""), outBuf)

		require.NoError(t, handler.Output(ctx, "looping", text("hi")))
		assert.Equal(t, "(looping) TEXT: hi\n", outBuf.String())
	})

	t.Run("Write Error", func(t *testing.T) {
		handler := NewTextHandler(strings.NewReader(""), failingWriter{})
		assert.Error(t, handler.Output(ctx, "looping", number(1)))
	})
}

func TestTextHandler_Input(t *testing.T) {
	ctx := context.Background()

	t.Run("Prompt And Raw Line", func(t *testing.T) {
		outBuf := &bytes.Buffer{}
		handler := NewTextHandler(strings.NewReader("my user input\nnext\n"), outBuf)

		val, err := handler.Input(ctx, "branching 1")
		require.NoError(t, err)
		assert.Equal(t, "my user input\n", val)
		assert.Equal(t, "(branching 1) Type something:\n> ", outBuf.String())
	})

	t.Run("Unterminated Last Line", func(t *testing.T) {
		handler := NewTextHandler(strings.NewReader("tail"), io.Discard)

		val, err := handler.Input(ctx, "looping")
		require.NoError(t, err)
		assert.Equal(t, "tail", val)

		_, err = handler.Input(ctx, "looping")
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Empty Source", func(t *testing.T) {
		handler := NewTextHandler(strings.NewReader(""), io.Discard)
		_, err := handler.Input(ctx, "looping")
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Canceled Context", func(t *testing.T) {
		outBuf := &bytes.Buffer{}
		handler := NewTextHandler(strings.NewReader("1\n"), outBuf)

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := handler.Input(canceled, "looping")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, outBuf.String(), "no prompt after cancellation")
	})

	t.Run("Prompt Write Error", func(t *testing.T) {
		in := strings.NewReader("1\n2\n")
		handler := NewTextHandler(in, failingWriter{})

		_, err := handler.Input(ctx, "looping")
		assert.EqualError(t, err, "sink closed")

		handler.Writer = io.Discard
		line, err := handler.Input(ctx, "looping")
		require.NoError(t, err)
		assert.Equal(t, "1\n", line, "nothing is read when the prompt fails")
	})

	t.Run("Flushes Buffered Writer", func(t *testing.T) {
		outBuf := &bytes.Buffer{}
		w := bufio.NewWriter(outBuf)
		handler := NewTextHandler(strings.NewReader("1\n"), w)

		_, err := handler.Input(ctx, "looping")
		require.NoError(t, err)
		assert.Equal(t, "(looping) Type something:\n> ", outBuf.String())
	})
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}
