package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"sekahub/internal/models/db_models"
	"sekahub/internal/models/request_models"
	"sekahub/internal/models/response_models"
	"sekahub/internal/repositories"
	"sekahub/pkg/utils"
)

// System prompt for the assistant persona. Subscribers only; the entitlement
// gate runs before any request reaches this service.
const sekaSystemPrompt = "You are Seka, a smart, professional, and witty virtual assistant designed to help subscribed users of this website. Always provide short, relevant, and accurate answers. Your tone should be friendly yet efficient, with a touch of humor when appropriate. Prioritize clarity and usefulness. You're here to make things easier, faster, and a little more fun for users who rely on your help."

const maxHistoryItems = 50

type ChatServiceInterface interface {
	SendMessage(ctx context.Context, accountID string, request request_models.ChatRequest) (*response_models.ChatResponse, error)
	ListHistory(ctx context.Context, accountID string) ([]response_models.ChatHistoryItem, error)
	GetConversation(ctx context.Context, accountID, conversationID string) ([]utils.ChatMessage, error)
	DeleteConversation(ctx context.Context, accountID, conversationID string) error
}

type ChatService struct {
	historyRepo repositories.ChatHistoryRepository
	keys        ApiKeyService
	provider    string

	mu     sync.Mutex
	client utils.CompletionClientInterface
}

func NewChatService(historyRepo repositories.ChatHistoryRepository, keys ApiKeyService) ChatServiceInterface {
	return &ChatService{
		historyRepo: historyRepo,
		keys:        keys,
		provider:    os.Getenv("COMPLETION_PROVIDER"),
	}
}

// completionClient builds the provider client on first use with the API key
// from the key store and reuses it afterwards.
func (c *ChatService) completionClient(ctx context.Context) (utils.CompletionClientInterface, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	keyName := db_models.KeyOpenAI
	if c.provider == "gemini" {
		keyName = db_models.KeyGemini
	}

	apiKey, err := c.keys.Resolve(ctx, keyName)
	if err != nil {
		return nil, err
	}

	client, err := utils.NewCompletionClient(c.provider, apiKey, os.Getenv("COMPLETION_MODEL"))
	if err != nil {
		return nil, err
	}

	c.client = client
	return client, nil
}

func (c *ChatService) SendMessage(ctx context.Context, accountID string, request request_models.ChatRequest) (*response_models.ChatResponse, error) {
	if len(request.Messages) == 0 || request.Messages[len(request.Messages)-1].Content == "" {
		return nil, utils.ErrEmptyPrompt
	}

	client, err := c.completionClient(ctx)
	if err != nil {
		return nil, err
	}

	conversation := append([]utils.ChatMessage{{Role: "system", Content: sekaSystemPrompt}}, request.Messages...)

	reply, err := client.Complete(ctx, conversation)
	if err != nil {
		log.Printf("chat: completion failed for account %s: %v", accountID, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrCompletionFailed, err)
	}

	conversationID, err := c.persistTurn(ctx, accountID, request, reply)
	if err != nil {
		// History is a convenience; losing one turn must not lose the reply.
		log.Printf("chat: failed to persist history for account %s: %v", accountID, err)
		conversationID = request.ConversationID
	}

	return &response_models.ChatResponse{
		ConversationID: conversationID,
		Reply:          reply,
	}, nil
}

func (c *ChatService) persistTurn(ctx context.Context, accountID string, request request_models.ChatRequest, reply string) (string, error) {
	transcript := append(request.Messages, utils.ChatMessage{Role: "assistant", Content: reply})
	raw, err := json.Marshal(transcript)
	if err != nil {
		return "", err
	}

	lastUser := request.Messages[len(request.Messages)-1].Content

	if request.ConversationID != "" {
		history, err := c.historyRepo.FindById(ctx, request.ConversationID)
		if err != nil {
			return "", err
		}
		if history != nil && history.AccountID.String() == accountID {
			history.Messages = raw
			history.LastMessage = truncate(lastUser, 120)
			if err := c.historyRepo.Update(ctx, history); err != nil {
				return "", err
			}
			return history.ID.String(), nil
		}
	}

	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return "", err
	}

	history := &db_models.ChatHistory{
		AccountID:   accountUUID,
		Title:       truncate(lastUser, 60),
		LastMessage: truncate(lastUser, 120),
		Messages:    raw,
	}
	if err := c.historyRepo.Insert(ctx, history); err != nil {
		return "", err
	}
	return history.ID.String(), nil
}

// truncate caps s at max runes. Cutting by bytes could split a
// multi-byte character and store invalid UTF-8.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func (c *ChatService) ListHistory(ctx context.Context, accountID string) ([]response_models.ChatHistoryItem, error) {
	histories, err := c.historyRepo.ListByAccount(ctx, accountID, maxHistoryItems)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.ChatHistoryItem, 0, len(histories))
	for _, h := range histories {
		items = append(items, response_models.ChatHistoryItem{
			ID:          h.ID.String(),
			Title:       h.Title,
			LastMessage: h.LastMessage,
			CreatedAt:   h.CreatedAt,
		})
	}
	return items, nil
}

func (c *ChatService) GetConversation(ctx context.Context, accountID, conversationID string) ([]utils.ChatMessage, error) {
	history, err := c.historyRepo.FindById(ctx, conversationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if history == nil || history.AccountID.String() != accountID {
		return nil, utils.ErrRecordNotFound
	}

	var messages []utils.ChatMessage
	if err := json.Unmarshal(history.Messages, &messages); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return messages, nil
}

func (c *ChatService) DeleteConversation(ctx context.Context, accountID, conversationID string) error {
	history, err := c.historyRepo.FindById(ctx, conversationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if history == nil || history.AccountID.String() != accountID {
		return utils.ErrRecordNotFound
	}

	if err := c.historyRepo.Delete(ctx, conversationID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
