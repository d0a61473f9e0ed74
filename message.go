package convo

import "github.com/samber/lo"

// Message is a single chat entry shown as a card.
type Message struct {
	Author string
	Body   string
}

// Store is an ordered, immutable sequence of messages fixed at startup.
// The zero value is an empty store.
type Store struct {
	messages []Message
}

// NewStore creates a Store holding a copy of msgs in the given order.
func NewStore(msgs ...Message) Store {
	return Store{messages: append([]Message(nil), msgs...)}
}

// Len returns the number of messages.
func (s Store) Len() int { return len(s.messages) }

// At returns the message at index i. It panics if i is out of range.
func (s Store) At(i int) Message { return s.messages[i] }

// Messages returns a copy of the stored messages.
func (s Store) Messages() []Message {
	return append([]Message(nil), s.messages...)
}

// Authors returns the distinct authors in order of first appearance.
func (s Store) Authors() []string {
	return lo.Uniq(lo.Map(s.messages, func(m Message, _ int) string {
		return m.Author
	}))
}
