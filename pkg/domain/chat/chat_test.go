package chat_test

import (
	"testing"

	"github.com/agrosphere/backend/pkg/domain/chat"
	"github.com/agrosphere/backend/pkg/domain/connection"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBetween(t *testing.T) {
	t.Parallel()
	a := uuid.New()
	b := uuid.New()

	t.Run("distinct users", func(t *testing.T) {
		c, err := chat.NewBetween(a, b)
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, connection.PairKey(a, b), c.PairKey)
		assert.Nil(t, c.LastMessageAt)
	})

	t.Run("same pair key regardless of order", func(t *testing.T) {
		c1, err := chat.NewBetween(a, b)
		require.NoError(t, err)
		c2, err := chat.NewBetween(b, a)
		require.NoError(t, err)
		assert.Equal(t, c1.PairKey, c2.PairKey)
	})

	t.Run("self conversation rejected", func(t *testing.T) {
		_, err := chat.NewBetween(a, a)
		assert.ErrorIs(t, err, chat.ErrSelfConversation)
	})
}

func TestNewMessage(t *testing.T) {
	t.Parallel()
	convID := uuid.New()
	sender := uuid.New()

	testCases := []struct {
		desc    string
		content string
		want    string
		wantErr bool
	}{
		{desc: "plain content", content: "Hello", want: "Hello"},
		{desc: "surrounding whitespace trimmed", content: "  how are the maize doing?\n", want: "how are the maize doing?"},
		{desc: "empty rejected", content: "", wantErr: true},
		{desc: "whitespace only rejected", content: " \t\n ", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			m, err := chat.NewMessage(convID, sender, tc.content)
			if tc.wantErr {
				assert.ErrorIs(t, err, chat.ErrEmptyContent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Content)
			assert.False(t, m.Read, "new messages start unread")
			assert.Equal(t, convID, m.ConversationID)
			assert.Equal(t, sender, m.SenderID)
		})
	}
}
