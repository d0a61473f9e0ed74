package convo_test

import (
	"testing"

	"github.com/fwojciec/convo"
	"github.com/stretchr/testify/assert"
)

func TestNewButton(t *testing.T) {
	t.Parallel()

	b := convo.NewButton("Delete", nil)
	assert.Equal(t, "Delete", b.Label())
	assert.Equal(t, convo.ButtonColorB, b.Color())
}

func TestButton_Activate(t *testing.T) {
	t.Parallel()

	t.Run("cycles with period two", func(t *testing.T) {
		t.Parallel()
		b := convo.NewButton("Delete", nil)
		b.Activate()
		assert.Equal(t, convo.ButtonColorA, b.Color())
		b.Activate()
		assert.Equal(t, convo.ButtonColorB, b.Color())
	})

	t.Run("parity of activations selects color", func(t *testing.T) {
		t.Parallel()
		for n := range 9 {
			b := convo.NewButton("Delete", nil)
			for range n {
				b.Activate()
			}
			want := convo.ButtonColorB
			if n%2 == 1 {
				want = convo.ButtonColorA
			}
			assert.Equal(t, want, b.Color(), "after %d activations", n)
		}
	})

	t.Run("calls action once per activation", func(t *testing.T) {
		t.Parallel()
		calls := 0
		b := convo.NewButton("Delete", func() { calls++ })
		b.Activate()
		b.Activate()
		b.Activate()
		assert.Equal(t, 3, calls)
	})

	t.Run("action runs before the color flips", func(t *testing.T) {
		t.Parallel()
		var b *convo.Button
		var seen convo.ButtonColor
		b = convo.NewButton("Delete", func() { seen = b.Color() })
		b.Activate()
		assert.Equal(t, convo.ButtonColorB, seen)
		assert.Equal(t, convo.ButtonColorA, b.Color())
	})

	t.Run("panicking action propagates and keeps color", func(t *testing.T) {
		t.Parallel()
		b := convo.NewButton("Delete", func() { panic("boom") })
		assert.PanicsWithValue(t, "boom", b.Activate)
		assert.Equal(t, convo.ButtonColorB, b.Color())
	})
}

func TestButtonColor_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", convo.ButtonColorA.String())
	assert.Equal(t, "B", convo.ButtonColorB.String())
	assert.Equal(t, "unknown", convo.ButtonColor(-1).String())
}
