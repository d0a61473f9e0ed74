// Package json reads conversations from JSON files.
package json

import (
	"encoding/json"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/convo"
)

// envelope is the v1 wire format for a conversation file.
type envelope struct {
	Version  int          `json:"version"`
	Messages []messageDTO `json:"messages"`
}

// messageDTO is the JSON representation of a Message.
type messageDTO struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

// UnmarshalConversation decodes a v1 envelope into messages. Every message
// is validated.
func UnmarshalConversation(data []byte) ([]convo.Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("envelope version %d: %w", env.Version, convo.ErrUnsupportedVersion)
	}
	msgs := make([]convo.Message, len(env.Messages))
	for i, dto := range env.Messages {
		m := convo.Message{Author: dto.Author, Body: dto.Body}
		if err := convo.ValidateMessage(m); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		msgs[i] = m
	}
	return msgs, nil
}

// LoadGlob reads every file in fsys matching pattern and returns their
// messages concatenated in lexical path order. Patterns support ** for
// recursive matching and are relative to the root of fsys. No matches
// yields an empty store and no error.
func LoadGlob(fsys iofs.FS, pattern string) (convo.Store, error) {
	if strings.HasPrefix(pattern, "/") || filepath.IsAbs(pattern) {
		return convo.Store{}, fmt.Errorf("glob pattern %q must be relative: %w", pattern, convo.ErrValidation)
	}
	if !doublestar.ValidatePattern(pattern) {
		return convo.Store{}, fmt.Errorf("invalid glob pattern %q: %w", pattern, convo.ErrValidation)
	}
	var paths []string
	err := doublestar.GlobWalk(fsys, pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return convo.Store{}, fmt.Errorf("match %q: %w", pattern, err)
	}
	slices.Sort(paths)

	var all []convo.Message
	for _, path := range paths {
		data, err := iofs.ReadFile(fsys, path)
		if err != nil {
			return convo.Store{}, fmt.Errorf("read %s: %w", filepath.FromSlash(path), err)
		}
		msgs, err := UnmarshalConversation(data)
		if err != nil {
			return convo.Store{}, fmt.Errorf("%s: %w", filepath.FromSlash(path), err)
		}
		all = append(all, msgs...)
	}
	return convo.NewStore(all...), nil
}
