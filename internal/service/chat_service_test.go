package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"copilot-be/internal/constant"
	"copilot-be/internal/entity"
	"copilot-be/internal/pkg/logger"
	"copilot-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService(store *fakeStore, publisher *fakePublisher) IChatService {
	return NewChatService(&fakeRepositoryFactory{store: store}, publisher, logger.NewNopLogger())
}

func seedSession(store *fakeStore, mode string) uuid.UUID {
	id := uuid.New()
	store.sessions = append(store.sessions, &entity.Session{
		Id:        id,
		Mode:      mode,
		Status:    constant.SessionStatusActive,
		CreatedAt: time.Now(),
	})
	return id
}

func TestChatServiceSendChat(t *testing.T) {
	store := &fakeStore{}
	publisher := &fakePublisher{}
	svc := newChatService(store, publisher)
	sessionId := seedSession(store, constant.ModeResume)

	res, err := svc.SendChat(context.Background(), sessionId,
		chatReq("backend engineer with five years of Go experience"))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, sessionId.String(), res.SessionId)

	// User message then assistant message, in send order.
	require.Len(t, res.Messages, 2)
	assert.Equal(t, constant.MessageRoleUser, res.Messages[0].Role)
	assert.Equal(t, "backend engineer with five years of Go experience", res.Messages[0].Content)
	assert.Equal(t, constant.MessageRoleAssistant, res.Messages[1].Role)
	assert.NotEmpty(t, res.Messages[1].Content)
	assert.Equal(t, constant.ModeResume, res.Messages[1].Meta["mode"])

	require.NotNil(t, res.Preview)
	require.NotNil(t, res.Preview.Resume)

	// Preview is persisted alongside the exchange.
	require.Len(t, store.previews, 1)
	assert.Equal(t, sessionId, store.previews[0].SessionId)
	assert.Equal(t, constant.ModeResume, store.previews[0].Mode)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.TopicPreviewGenerated, publisher.published[0].Topic)
	event, ok := publisher.published[0].Payload.(events.PreviewGenerated)
	require.True(t, ok)
	assert.Equal(t, "resume", event.PreviewType)
}

// Empty content is a valid prompt; the generator falls back to the Role
// keyword instead of the request being rejected.
func TestChatServiceSendChatEmptyContent(t *testing.T) {
	store := &fakeStore{}
	svc := newChatService(store, &fakePublisher{})
	sessionId := seedSession(store, constant.ModeJobs)

	res, err := svc.SendChat(context.Background(), sessionId, chatReq(""))
	require.NoError(t, err)

	require.Len(t, res.Messages, 2)
	assert.Equal(t, "", res.Messages[0].Content)

	require.NotNil(t, res.Preview)
	require.NotNil(t, res.Preview.Jobs)
	assert.Equal(t, "Role Specialist", res.Preview.Jobs.Results[0].Title)
}

func TestChatServiceSendChatStampsExchangeInOrder(t *testing.T) {
	store := &fakeStore{}
	svc := newChatService(store, &fakePublisher{})
	sessionId := seedSession(store, constant.ModeResume)

	_, err := svc.SendChat(context.Background(), sessionId, chatReq("golang"))
	require.NoError(t, err)

	require.Len(t, store.messages, 2)
	user, assistant := store.messages[0], store.messages[1]
	assert.Equal(t, constant.MessageRoleUser, user.Role)
	assert.Equal(t, constant.MessageRoleAssistant, assistant.Role)
	assert.True(t, assistant.CreatedAt.After(user.CreatedAt),
		"assistant stamp must strictly follow the user stamp")
}

func TestChatServiceSendChatUnknownSession(t *testing.T) {
	store := &fakeStore{}
	svc := newChatService(store, &fakePublisher{})

	_, err := svc.SendChat(context.Background(), uuid.New(), chatReq("hello"))
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// No partial writes on a failed lookup.
	assert.Empty(t, store.messages)
	assert.Empty(t, store.previews)
}

func TestChatServiceSendChatAccumulatesHistory(t *testing.T) {
	store := &fakeStore{}
	svc := newChatService(store, &fakePublisher{})
	sessionId := seedSession(store, constant.ModeJobs)

	first, err := svc.SendChat(context.Background(), sessionId, chatReq("golang remote"))
	require.NoError(t, err)
	require.Len(t, first.Messages, 2)

	second, err := svc.SendChat(context.Background(), sessionId, chatReq("prefer startups"))
	require.NoError(t, err)
	require.Len(t, second.Messages, 4, "history accumulates across exchanges")
	assert.Len(t, store.previews, 2)
}

func TestChatServiceGetMessages(t *testing.T) {
	store := &fakeStore{}
	svc := newChatService(store, &fakePublisher{})
	sessionId := seedSession(store, constant.ModeInterview)

	t.Run("unknown session yields empty list", func(t *testing.T) {
		res, err := svc.GetMessages(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Empty(t, res.Items)
	})

	t.Run("messages in chronological order", func(t *testing.T) {
		_, err := svc.SendChat(context.Background(), sessionId, chatReq("kubernetes leadership"))
		require.NoError(t, err)

		res, err := svc.GetMessages(context.Background(), sessionId)
		require.NoError(t, err)
		require.Len(t, res.Items, 2)
		assert.Equal(t, constant.MessageRoleUser, res.Items[0].Role)
		assert.Equal(t, constant.MessageRoleAssistant, res.Items[1].Role)
	})
}

func TestChatServiceGetPreview(t *testing.T) {
	store := &fakeStore{}
	svc := newChatService(store, &fakePublisher{})
	sessionId := seedSession(store, constant.ModeJobs)

	t.Run("null before any exchange", func(t *testing.T) {
		res, err := svc.GetPreview(context.Background(), sessionId)
		require.NoError(t, err)
		assert.Equal(t, sessionId.String(), res.SessionId)
		assert.Nil(t, res.Preview)
	})

	t.Run("latest preview after exchanges", func(t *testing.T) {
		_, err := svc.SendChat(context.Background(), sessionId, chatReq("golang remote"))
		require.NoError(t, err)

		// Backdate the first preview so ordering decides the winner.
		store.previews[0].CreatedAt = store.previews[0].CreatedAt.Add(-time.Minute)

		_, err = svc.SendChat(context.Background(), sessionId, chatReq("rust onsite"))
		require.NoError(t, err)

		res, err := svc.GetPreview(context.Background(), sessionId)
		require.NoError(t, err)
		require.NotNil(t, res.Preview)

		var decoded struct {
			Type    string `json:"type"`
			Results []struct {
				Title string `json:"title"`
			} `json:"results"`
		}
		require.NoError(t, json.Unmarshal(res.Preview, &decoded))
		assert.Equal(t, "jobs", decoded.Type)
		require.NotEmpty(t, decoded.Results)
		assert.Equal(t, "Rust Specialist", decoded.Results[0].Title)
	})
}

func TestChatServiceWithoutStore(t *testing.T) {
	svc := NewChatService(nil, &fakePublisher{}, logger.NewNopLogger())
	sessionId := uuid.New()

	_, err := svc.GetMessages(context.Background(), sessionId)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.SendChat(context.Background(), sessionId, chatReq("hello"))
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.GetPreview(context.Background(), sessionId)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
