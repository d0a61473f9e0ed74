package json

import (
	"encoding/json"

	"github.com/fwojciec/convo"
)

// MarshalConversation encodes msgs as a v1 envelope for fixtures.
func MarshalConversation(msgs []convo.Message) ([]byte, error) {
	env := envelope{
		Version:  1,
		Messages: make([]messageDTO, len(msgs)),
	}
	for i, m := range msgs {
		env.Messages[i] = messageDTO{Author: m.Author, Body: m.Body}
	}
	return json.MarshalIndent(env, "", "  ")
}
