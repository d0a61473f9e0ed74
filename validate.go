package convo

import (
	"fmt"
	"strings"
)

// ValidateMessage checks that a message can be shown as a card. The author
// must not be blank; an empty body is allowed.
func ValidateMessage(m Message) error {
	if strings.TrimSpace(m.Author) == "" {
		return fmt.Errorf("author must not be blank: %w", ErrValidation)
	}
	return nil
}

// ValidateStore validates every message in s.
func ValidateStore(s Store) error {
	for i, m := range s.messages {
		if err := ValidateMessage(m); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
	}
	return nil
}
