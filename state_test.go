package typestate_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/aretw0/typestate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNumber_Value(t *testing.T) {
	for _, n := range []uint32{0, 1, 1234, math.MaxUint32 - 1, math.MaxUint32} {
		num := typestate.New().ToNumber(n)
		assert.Equal(t, n, num.Value())
	}
}

func TestNumber_Print(t *testing.T) {
	var buf bytes.Buffer
	typestate.New().ToNumber(1234).Print(&buf)
	assert.Equal(t, "NUMBER: 1234\n", buf.String())
}

func TestText_Print(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"Plain", "hello", "TEXT: hello\n"},
		{"Empty", "", "TEXT: \n"},
		{"Raw Line", "abc\n", "TEXT: abc\n\n"},
		{"Whitespace", "  spaced  ", "TEXT:   spaced  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			typestate.New().ToText(tt.payload).Print(&buf)
			assert.Equal(t, tt.want, buf.String())
			assert.Contains(t, buf.String(), "TEXT: "+tt.payload)
		})
	}
}

func TestPrint_Repeatable(t *testing.T) {
	var first, second bytes.Buffer

	num := typestate.New().ToNumber(7)
	num.Print(&first)
	num.Print(&second)
	assert.Equal(t, first.String(), second.String())

	first.Reset()
	second.Reset()

	text := typestate.New().ToText("again")
	text.Print(&first)
	text.Print(&second)
	assert.Equal(t, first.String(), second.String())
}

func TestInitial_ConsumedOnce(t *testing.T) {
	t.Run("Text then Number", func(t *testing.T) {
		one := typestate.New()
		_ = one.ToText("first")
		assert.PanicsWithValue(t, typestate.ErrConsumed, func() {
			_ = one.ToNumber(1)
		})
	})

	t.Run("Number then Number", func(t *testing.T) {
		one := typestate.New()
		_ = one.ToNumber(1)
		assert.PanicsWithValue(t, typestate.ErrConsumed, func() {
			_ = one.ToNumber(2)
		})
	})

	t.Run("Nil handle", func(t *testing.T) {
		var one *typestate.Initial
		assert.PanicsWithValue(t, typestate.ErrConsumed, func() {
			_ = one.ToText("x")
		})
	})

	t.Run("Fresh handles are independent", func(t *testing.T) {
		require.NotPanics(t, func() {
			_ = typestate.New().ToText("a")
			_ = typestate.New().ToText("b")
		})
	})
}
