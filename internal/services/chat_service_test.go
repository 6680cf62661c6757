package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"sekahub/internal/models/db_models"
	"sekahub/internal/models/request_models"
	"sekahub/internal/repositories"
	"sekahub/pkg/utils"
)

type fakeCompletionClient struct {
	reply    string
	err      error
	received []utils.ChatMessage
}

func (f *fakeCompletionClient) Complete(ctx context.Context, messages []utils.ChatMessage) (string, error) {
	f.received = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeChatHistoryRepo struct {
	byID      map[string]*db_models.ChatHistory
	insertErr error
}

func newFakeChatHistoryRepo() *fakeChatHistoryRepo {
	return &fakeChatHistoryRepo{byID: map[string]*db_models.ChatHistory{}}
}

func (f *fakeChatHistoryRepo) Insert(ctx context.Context, history *db_models.ChatHistory) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if history.ID == uuid.Nil {
		history.ID = uuid.New()
	}
	f.byID[history.ID.String()] = history
	return nil
}

func (f *fakeChatHistoryRepo) Update(ctx context.Context, history *db_models.ChatHistory) error {
	f.byID[history.ID.String()] = history
	return nil
}

func (f *fakeChatHistoryRepo) FindById(ctx context.Context, id string) (*db_models.ChatHistory, error) {
	return f.byID[id], nil
}

func (f *fakeChatHistoryRepo) ListByAccount(ctx context.Context, accountID string, limit int) ([]db_models.ChatHistory, error) {
	var out []db_models.ChatHistory
	for _, h := range f.byID {
		if h.AccountID.String() == accountID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeChatHistoryRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

var _ repositories.ChatHistoryRepository = (*fakeChatHistoryRepo)(nil)

func newTestChatService(client utils.CompletionClientInterface, repo repositories.ChatHistoryRepository) *ChatService {
	svc := &ChatService{
		historyRepo: repo,
		keys:        &fakeKeys{},
	}
	svc.client = client
	return svc
}

func TestSendMessage_InjectsSystemPersona(t *testing.T) {
	client := &fakeCompletionClient{reply: "hello there"}
	repo := newFakeChatHistoryRepo()
	svc := newTestChatService(client, repo)
	accountID := uuid.NewString()

	response, err := svc.SendMessage(context.Background(), accountID, request_models.ChatRequest{
		Messages: []utils.ChatMessage{{Role: "user", Content: "hi"}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "hello there", response.Reply)
	if assert.GreaterOrEqual(t, len(client.received), 2) {
		assert.Equal(t, "system", client.received[0].Role)
		assert.Contains(t, client.received[0].Content, "Seka")
		assert.Equal(t, "hi", client.received[len(client.received)-1].Content)
	}
}

func TestSendMessage_EmptyPromptRejected(t *testing.T) {
	svc := newTestChatService(&fakeCompletionClient{}, newFakeChatHistoryRepo())

	_, err := svc.SendMessage(context.Background(), uuid.NewString(), request_models.ChatRequest{})

	assert.ErrorIs(t, err, utils.ErrEmptyPrompt)
}

func TestSendMessage_ProviderFailureSurfaced(t *testing.T) {
	client := &fakeCompletionClient{err: errors.New("rate limited")}
	svc := newTestChatService(client, newFakeChatHistoryRepo())

	_, err := svc.SendMessage(context.Background(), uuid.NewString(), request_models.ChatRequest{
		Messages: []utils.ChatMessage{{Role: "user", Content: "hi"}},
	})

	assert.ErrorIs(t, err, utils.ErrCompletionFailed)
}

func TestSendMessage_PersistsConversation(t *testing.T) {
	client := &fakeCompletionClient{reply: "42"}
	repo := newFakeChatHistoryRepo()
	svc := newTestChatService(client, repo)
	accountID := uuid.NewString()

	response, err := svc.SendMessage(context.Background(), accountID, request_models.ChatRequest{
		Messages: []utils.ChatMessage{{Role: "user", Content: "what is the answer"}},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.ConversationID)
	stored := repo.byID[response.ConversationID]
	if assert.NotNil(t, stored) {
		assert.Equal(t, accountID, stored.AccountID.String())
		assert.Equal(t, "what is the answer", stored.Title)
	}
}

func TestSendMessage_HistoryFailureDoesNotLoseReply(t *testing.T) {
	client := &fakeCompletionClient{reply: "still here"}
	repo := newFakeChatHistoryRepo()
	repo.insertErr = errors.New("disk full")
	svc := newTestChatService(client, repo)

	response, err := svc.SendMessage(context.Background(), uuid.NewString(), request_models.ChatRequest{
		Messages: []utils.ChatMessage{{Role: "user", Content: "hi"}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "still here", response.Reply)
}

func TestGetConversation_EnforcesOwnership(t *testing.T) {
	repo := newFakeChatHistoryRepo()
	owner := uuid.New()
	history := &db_models.ChatHistory{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		AccountID: owner,
		Messages:  []byte(`[{"role":"user","content":"hi"}]`),
	}
	repo.byID[history.ID.String()] = history
	svc := newTestChatService(&fakeCompletionClient{}, repo)

	_, err := svc.GetConversation(context.Background(), uuid.NewString(), history.ID.String())
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)

	messages, err := svc.GetConversation(context.Background(), owner.String(), history.ID.String())
	assert.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestSendMessage_MultibyteTitleStaysValidUTF8(t *testing.T) {
	client := &fakeCompletionClient{reply: "ok"}
	repo := newFakeChatHistoryRepo()
	svc := newTestChatService(client, repo)

	// Long enough that both the title and last-message caps kick in.
	prompt := strings.Repeat("日本語のメッセージ", 20)
	response, err := svc.SendMessage(context.Background(), uuid.NewString(), request_models.ChatRequest{
		Messages: []utils.ChatMessage{{Role: "user", Content: prompt}},
	})

	assert.NoError(t, err)
	stored := repo.byID[response.ConversationID]
	if assert.NotNil(t, stored) {
		assert.True(t, utf8.ValidString(stored.Title))
		assert.True(t, utf8.ValidString(stored.LastMessage))
		assert.Equal(t, 60, utf8.RuneCountInString(stored.Title))
		assert.Equal(t, 120, utf8.RuneCountInString(stored.LastMessage))
	}
}

func TestTruncate_CutsOnRuneBoundary(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo", 10))
	assert.Equal(t, "日本", truncate("日本語", 2))
	assert.True(t, utf8.ValidString(truncate("résumé", 2)))
}
