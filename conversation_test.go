package convo_test

import (
	"testing"

	"github.com/fwojciec/convo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversation(t *testing.T) {
	t.Parallel()

	t.Run("single message yields one collapsed row", func(t *testing.T) {
		t.Parallel()
		store := convo.NewStore(convo.Message{Author: "Android", Body: "Jetpack compose"})
		c := convo.NewConversation(store, nil)
		require.Equal(t, 1, c.Len())
		row := c.Row(0)
		assert.Equal(t, convo.DefaultMessage, row.Message)
		assert.False(t, row.Card.Expanded())
		assert.Equal(t, convo.ButtonColorB, row.Button.Color())
		assert.Equal(t, convo.DeleteLabel, row.Button.Label())
	})

	t.Run("empty store yields no rows", func(t *testing.T) {
		t.Parallel()
		c := convo.NewConversation(convo.Store{}, nil)
		assert.Equal(t, 0, c.Len())
		assert.Empty(t, c.Rows())
	})

	t.Run("preserves store order", func(t *testing.T) {
		t.Parallel()
		store := convo.NewStore(
			convo.Message{Author: "a", Body: "1"},
			convo.Message{Author: "b", Body: "2"},
			convo.Message{Author: "a", Body: "1"},
		)
		c := convo.NewConversation(store, nil)
		require.Equal(t, 3, c.Len())
		for i, row := range c.Rows() {
			assert.Equal(t, store.At(i), row.Message)
		}
	})

	t.Run("rows do not share state", func(t *testing.T) {
		t.Parallel()
		store := convo.NewStore(
			convo.Message{Author: "a", Body: "1"},
			convo.Message{Author: "b", Body: "2"},
		)
		c := convo.NewConversation(store, nil)
		c.Row(0).Card.Toggle()
		c.Row(1).Button.Activate()

		assert.True(t, c.Row(0).Card.Expanded())
		assert.False(t, c.Row(1).Card.Expanded())
		assert.Equal(t, convo.ButtonColorB, c.Row(0).Button.Color())
		assert.Equal(t, convo.ButtonColorA, c.Row(1).Button.Color())
		assert.Equal(t, 1, c.ExpandedCount())
	})

	t.Run("card toggle leaves button alone", func(t *testing.T) {
		t.Parallel()
		c := convo.NewConversation(convo.NewStore(convo.DefaultMessage), nil)
		row := c.Row(0)
		row.Card.Toggle()
		assert.Equal(t, convo.ButtonColorB, row.Button.Color())
		row.Button.Activate()
		assert.True(t, row.Card.Expanded())
	})

	t.Run("builds one action per row", func(t *testing.T) {
		t.Parallel()
		store := convo.NewStore(
			convo.Message{Author: "a", Body: "1"},
			convo.Message{Author: "b", Body: "2"},
		)
		var activated []string
		c := convo.NewConversation(store, func(i int, m convo.Message) convo.ActionFunc {
			return func() { activated = append(activated, m.Author) }
		})
		c.Row(1).Button.Activate()
		c.Row(0).Button.Activate()
		assert.Equal(t, []string{"b", "a"}, activated)
	})
}
