package convo

import "github.com/samber/lo"

// DeleteLabel is the label of the button attached to every row.
const DeleteLabel = "Delete"

// Row is one rendered list entry: a message with its own card and button
// state. Rows never share state.
type Row struct {
	Message Message
	Card    *CardState
	Button  *Button
}

// Conversation maps a Store to rows, one per message, in store order.
type Conversation struct {
	rows []Row
}

// NewConversation creates a Conversation for store. newAction, if non-nil,
// is called once per row to build that row's button action.
func NewConversation(store Store, newAction func(i int, m Message) ActionFunc) *Conversation {
	rows := lo.Map(store.Messages(), func(m Message, i int) Row {
		var action ActionFunc
		if newAction != nil {
			action = newAction(i, m)
		}
		return Row{
			Message: m,
			Card:    &CardState{},
			Button:  NewButton(DeleteLabel, action),
		}
	})
	return &Conversation{rows: rows}
}

// Len returns the number of rows.
func (c *Conversation) Len() int { return len(c.rows) }

// Row returns the row at index i. It panics if i is out of range.
func (c *Conversation) Row(i int) Row { return c.rows[i] }

// Rows returns a copy of the rows. Card and Button pointers are shared with
// the Conversation.
func (c *Conversation) Rows() []Row {
	return append([]Row(nil), c.rows...)
}

// ExpandedCount returns the number of expanded cards.
func (c *Conversation) ExpandedCount() int {
	return lo.CountBy(c.rows, func(r Row) bool { return r.Card.Expanded() })
}
