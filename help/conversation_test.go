package help

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkme/linkme-api/mocks"
	"github.com/linkme/linkme-api/schema"
	"github.com/linkme/linkme-api/store"
)

func TestGetOrCreateConversationIsSymmetric(t *testing.T) {
	f := newFixture(t)
	a, b := f.owner.Participant(), f.volunteer.Participant()
	requestID := "help-1"

	first, err := f.service.GetOrCreateConversation(f.ctx, f.owner, a, b, &requestID)
	require.NoError(t, err)

	other := "help-2"
	second, err := f.service.GetOrCreateConversation(f.ctx, f.volunteer, b, a, &other)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.HelpRequestID)
	assert.Equal(t, "help-1", *second.HelpRequestID)

	list, err := f.service.ListConversations(f.ctx, f.owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGetOrCreateConversationValidation(t *testing.T) {
	f := newFixture(t)
	a := f.owner.Participant()

	_, err := f.service.GetOrCreateConversation(f.ctx, f.owner, a, a, nil)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = f.service.GetOrCreateConversation(f.ctx, f.owner, a, schema.Participant{ID: "x"}, nil)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = f.service.GetOrCreateConversation(f.ctx, f.other, a, f.volunteer.Participant(), nil)
	assert.True(t, errors.Is(err, ErrNotPermitted))
}

func TestGetOrCreateConversationLostRace(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockLinkCore(ctl)
	s := newTestService(core, nil)

	a := schema.Participant{ID: "alice", Name: "Alice"}
	b := schema.Participant{ID: "bob", Name: "Bob"}
	winner := &schema.Conversation{
		ID:               "winner",
		Participant1ID:   "bob",
		Participant1Name: "Bob",
		Participant2ID:   "alice",
		Participant2Name: "Alice",
		PairKey:          schema.PairKey("alice", "bob"),
	}

	gomock.InOrder(
		core.EXPECT().GetConversationByParticipants(gomock.Any(), "alice", "bob").Return(nil, store.ErrRecordNotFound),
		core.EXPECT().CreateConversation(gomock.Any(), gomock.Any()).Return(store.ErrConversationExists),
		core.EXPECT().GetConversationByParticipants(gomock.Any(), "alice", "bob").Return(winner, nil),
	)

	c, err := s.GetOrCreateConversation(context.Background(), Session{UserID: "alice", Name: "Alice"}, a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, "winner", c.ID)
}

func TestMessages(t *testing.T) {
	f := newFixture(t)
	c, err := f.service.GetOrCreateConversation(f.ctx, f.owner, f.owner.Participant(), f.volunteer.Participant(), nil)
	require.NoError(t, err)

	_, err = f.service.SendMessage(f.ctx, f.owner, c.ID, "  ")
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = f.service.SendMessage(f.ctx, f.other, c.ID, "hello")
	assert.True(t, errors.Is(err, ErrNotPermitted))

	_, err = f.service.SendMessage(f.ctx, f.owner, "missing", "hello")
	assert.True(t, errors.Is(err, ErrNotFound))

	for _, m := range []struct {
		from Session
		text string
	}{
		{f.owner, " Zdravo! "},
		{f.volunteer, "Stižem za 10 minuta"},
		{f.owner, "Hvala"},
	} {
		_, err := f.service.SendMessage(f.ctx, m.from, c.ID, m.text)
		require.NoError(t, err)
	}

	messages, err := f.service.ListMessages(f.ctx, f.volunteer, c.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "Zdravo!", messages[0].Text)
	assert.Equal(t, "Amra", messages[0].SenderName)
	assert.Equal(t, "Hvala", messages[2].Text)

	conversations, err := f.service.ListConversations(f.ctx, f.volunteer)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, 2, conversations[0].UnreadCount)
	require.NotNil(t, conversations[0].LastMessage)
	assert.Equal(t, "Hvala", conversations[0].LastMessage.Text)
	assert.Equal(t, messages[2].CreatedAt, conversations[0].UpdatedAt)

	// the volunteer reads what the owner sent, not their own messages
	count, err := f.service.MarkConversationRead(f.ctx, f.volunteer, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	conversations, err = f.service.ListConversations(f.ctx, f.volunteer)
	require.NoError(t, err)
	assert.Equal(t, 0, conversations[0].UnreadCount)

	conversations, err = f.service.ListConversations(f.ctx, f.owner)
	require.NoError(t, err)
	assert.Equal(t, 1, conversations[0].UnreadCount)

	_, err = f.service.MarkConversationRead(f.ctx, f.other, c.ID)
	assert.True(t, errors.Is(err, ErrNotPermitted))
}

func TestListConversationsOrder(t *testing.T) {
	f := newFixture(t)
	withVolunteer, err := f.service.GetOrCreateConversation(f.ctx, f.owner, f.owner.Participant(), f.volunteer.Participant(), nil)
	require.NoError(t, err)
	withOther, err := f.service.GetOrCreateConversation(f.ctx, f.owner, f.owner.Participant(), f.other.Participant(), nil)
	require.NoError(t, err)

	list, err := f.service.ListConversations(f.ctx, f.owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, withOther.ID, list[0].ID)

	_, err = f.service.SendMessage(f.ctx, f.volunteer, withVolunteer.ID, "hej")
	require.NoError(t, err)

	list, err = f.service.ListConversations(f.ctx, f.owner)
	require.NoError(t, err)
	assert.Equal(t, withVolunteer.ID, list[0].ID)

	_, err = f.service.GetConversation(f.ctx, f.volunteer, withOther.ID)
	assert.True(t, errors.Is(err, ErrNotPermitted))
}
