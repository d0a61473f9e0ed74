package json_test

import (
	"testing"
	"testing/fstest"

	"github.com/fwojciec/convo"
	convojson "github.com/fwojciec/convo/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalConversation(t *testing.T) {
	t.Parallel()

	t.Run("decodes messages in order", func(t *testing.T) {
		t.Parallel()
		data := []byte(`{"version":1,"messages":[
			{"author":"Android","body":"Jetpack compose"},
			{"author":"Messi","body":"Hey, Hello world"}
		]}`)
		msgs, err := convojson.UnmarshalConversation(data)
		require.NoError(t, err)
		assert.Equal(t, []convo.Message{
			{Author: "Android", Body: "Jetpack compose"},
			{Author: "Messi", Body: "Hey, Hello world"},
		}, msgs)
	})

	t.Run("empty message list", func(t *testing.T) {
		t.Parallel()
		msgs, err := convojson.UnmarshalConversation([]byte(`{"version":1,"messages":[]}`))
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("rejects unknown version", func(t *testing.T) {
		t.Parallel()
		_, err := convojson.UnmarshalConversation([]byte(`{"version":2,"messages":[]}`))
		assert.ErrorIs(t, err, convo.ErrUnsupportedVersion)
	})

	t.Run("missing version is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := convojson.UnmarshalConversation([]byte(`{"messages":[]}`))
		assert.ErrorIs(t, err, convo.ErrUnsupportedVersion)
	})

	t.Run("rejects blank author", func(t *testing.T) {
		t.Parallel()
		data := []byte(`{"version":1,"messages":[{"author":"a","body":"x"},{"author":"","body":"y"}]}`)
		_, err := convojson.UnmarshalConversation(data)
		assert.ErrorIs(t, err, convo.ErrValidation)
		assert.ErrorContains(t, err, "message 1")
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		_, err := convojson.UnmarshalConversation([]byte(`{`))
		assert.ErrorContains(t, err, "unmarshal envelope")
	})
}

func TestUnmarshalConversation_IndentedEnvelope(t *testing.T) {
	t.Parallel()

	msgs := []convo.Message{convo.DefaultMessage}
	data, err := convojson.MarshalConversation(msgs)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": 1`)
	assert.Contains(t, string(data), `"author": "Android"`)

	got, err := convojson.UnmarshalConversation(data)
	require.NoError(t, err)
	assert.Equal(t, msgs, got)
}

func TestLoadGlob(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"b.json":        {Data: []byte(`{"version":1,"messages":[{"author":"b","body":"2"}]}`)},
		"a.json":        {Data: []byte(`{"version":1,"messages":[{"author":"a","body":"1"}]}`)},
		"nested/c.json": {Data: []byte(`{"version":1,"messages":[{"author":"c","body":"3"}]}`)},
		"notes.txt":     {Data: []byte(`not json`)},
		"bad/bad.json":  {Data: []byte(`{"version":9}`)},
	}

	t.Run("concatenates matches in path order", func(t *testing.T) {
		t.Parallel()
		store, err := convojson.LoadGlob(fsys, "*.json")
		require.NoError(t, err)
		assert.Equal(t, []convo.Message{
			{Author: "a", Body: "1"},
			{Author: "b", Body: "2"},
		}, store.Messages())
	})

	t.Run("double star recurses", func(t *testing.T) {
		t.Parallel()
		nested := fstest.MapFS{
			"a.json":          fsys["a.json"],
			"nested/c.json":   fsys["nested/c.json"],
			"nested/d/b.json": fsys["b.json"],
		}
		store, err := convojson.LoadGlob(nested, "**/*.json")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c", "b"}, store.Authors())
	})

	t.Run("no matches is empty", func(t *testing.T) {
		t.Parallel()
		store, err := convojson.LoadGlob(fsys, "*.yaml")
		require.NoError(t, err)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("bad file names the path", func(t *testing.T) {
		t.Parallel()
		_, err := convojson.LoadGlob(fsys, "**/*.json")
		assert.ErrorIs(t, err, convo.ErrUnsupportedVersion)
		assert.ErrorContains(t, err, "bad.json")
	})

	t.Run("rooted pattern is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := convojson.LoadGlob(fsys, "/tmp/chats/*.json")
		assert.ErrorIs(t, err, convo.ErrValidation)
		assert.ErrorContains(t, err, "must be relative")
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()
		_, err := convojson.LoadGlob(fsys, "[")
		assert.ErrorIs(t, err, convo.ErrValidation)
	})
}
