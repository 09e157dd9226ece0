package companion

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/utility"

	"github.com/cloudwego/eino/schema"
	"github.com/labstack/echo/v4"
)

const (
	historyLimit   = 20
	titleMaxLength = 50
)

var (
	queries        database.Querier
	companion      Streamer
	referralDoctor string
)

// InitCompanionPackage wires the handlers. st may be nil when no chat model
// is configured; chat requests then fail with 503.
func InitCompanionPackage(q database.Querier, st Streamer, referral string) {
	queries = q
	companion = st
	referralDoctor = referral
}

type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

type ConversationDetail struct {
	database.Conversation
	Messages []database.Message `json:"messages"`
}

// ChatHandler screens the message, records it and relays the model's reply
// as a plain-text stream.
func ChatHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Message is required"})
	}

	// Screen before touching storage or the model.
	if DetectEmergency(message) {
		utility.Logger(c).Warn().Str("user_id", userID).Msg("Emergency keywords detected in chat message")
		return c.JSON(http.StatusOK, map[string]interface{}{
			"emergency": true,
			"message":   EmergencyMessage,
		})
	}

	if companion == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Chat is not configured"})
	}

	ctx := c.Request().Context()
	logger := utility.Logger(c)

	user, err := queries.GetUserByID(ctx, userID)
	if err != nil {
		if database.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		logger.Error().Err(err).Msg("Failed to load user for chat")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "An error occurred processing your message"})
	}

	conv, history, err := openConversation(ctx, userID, req.ConversationID, message)
	if err != nil {
		if errors.Is(err, ErrConversationNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Conversation not found"})
		}
		logger.Error().Err(err).Msg("Failed to open conversation")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "An error occurred processing your message"})
	}

	if _, err := queries.CreateMessage(ctx, database.CreateMessageParams{
		ConversationID: conv.ID,
		Role:           "user",
		Content:        message,
	}); err != nil {
		logger.Error().Err(err).Msg("Failed to save user message")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "An error occurred processing your message"})
	}

	system := BuildSystemPrompt(ProfileFromUser(user), referralDoctor)
	stream, err := companion.Stream(ctx, system, HistoryMessages(history), message)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to start chat stream")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "An error occurred processing your message"})
	}
	defer stream.Close()

	convID, _ := utility.PgtypeUUIDToString(conv.ID)
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/plain; charset=utf-8")
	res.Header().Set("X-Conversation-Id", convID)
	res.Header().Set("Cache-Control", "no-cache")
	res.WriteHeader(http.StatusOK)

	chunks := make([]*schema.Message, 0, 16)
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			// Headers are gone; all we can do is stop and keep what we have.
			logger.Error().Err(recvErr).Str("conversation_id", convID).Msg("Chat stream interrupted")
			break
		}
		if chunk == nil {
			continue
		}
		chunks = append(chunks, chunk)
		if chunk.Content == "" {
			continue
		}
		if _, err := io.WriteString(res, chunk.Content); err != nil {
			logger.Warn().Err(err).Msg("Client went away during chat stream")
			break
		}
		res.Flush()
	}

	saveReply(context.WithoutCancel(ctx), c, conv, chunks)
	return nil
}

// saveReply stores the assembled assistant message and bumps the
// conversation. Failures are logged only; the reply was already delivered.
func saveReply(ctx context.Context, c echo.Context, conv database.Conversation, chunks []*schema.Message) {
	if len(chunks) == 0 {
		return
	}
	full, err := schema.ConcatMessages(chunks)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to assemble chat reply")
		return
	}
	if strings.TrimSpace(full.Content) == "" {
		return
	}

	if _, err := queries.CreateMessage(ctx, database.CreateMessageParams{
		ConversationID: conv.ID,
		Role:           "assistant",
		Content:        full.Content,
	}); err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to save assistant message")
		return
	}
	if err := queries.TouchConversation(ctx, conv.ID); err != nil {
		utility.Logger(c).Warn().Err(err).Msg("Failed to update conversation timestamp")
	}
}

// ErrConversationNotFound covers both missing and foreign conversations.
var ErrConversationNotFound = errors.New("conversation not found")

// openConversation loads the user's conversation with its recent messages,
// or starts a new one titled after the message when id is empty.
func openConversation(ctx context.Context, userID, id, message string) (database.Conversation, []database.Message, error) {
	if id == "" {
		conv, err := queries.CreateConversation(ctx, database.CreateConversationParams{
			UserID: userID,
			Title:  Title(message),
		})
		return conv, nil, err
	}

	convID, err := utility.StringToPgtypeUUID(id)
	if err != nil {
		return database.Conversation{}, nil, ErrConversationNotFound
	}
	conv, err := queries.GetConversationForUser(ctx, database.GetConversationForUserParams{ID: convID, UserID: userID})
	if err != nil {
		if database.IsNotFound(err) {
			return database.Conversation{}, nil, ErrConversationNotFound
		}
		return database.Conversation{}, nil, err
	}

	history, err := queries.ListRecentMessages(ctx, database.ListRecentMessagesParams{
		ConversationID: conv.ID,
		Limit:          historyLimit,
	})
	if err != nil {
		return database.Conversation{}, nil, err
	}
	return conv, history, nil
}

// Title is the first 50 characters of the opening message.
func Title(message string) string {
	r := []rune(message)
	if len(r) > titleMaxLength {
		r = r[:titleMaxLength]
	}
	return string(r)
}

// ListConversationsHandler returns the user's conversations, newest first.
func ListConversationsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	convs, err := queries.ListConversations(c.Request().Context(), userID)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to list conversations")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch conversations"})
	}
	if convs == nil {
		convs = []database.Conversation{}
	}
	return c.JSON(http.StatusOK, convs)
}

// GetConversationHandler returns one conversation with every message.
func GetConversationHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	ctx := c.Request().Context()

	convID, err := utility.StringToPgtypeUUID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Conversation not found"})
	}
	conv, err := queries.GetConversationForUser(ctx, database.GetConversationForUserParams{ID: convID, UserID: userID})
	if err != nil {
		if database.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Conversation not found"})
		}
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch conversation")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch conversation"})
	}

	msgs, err := queries.ListMessages(ctx, conv.ID)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch messages")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch conversation"})
	}
	if msgs == nil {
		msgs = []database.Message{}
	}
	return c.JSON(http.StatusOK, ConversationDetail{Conversation: conv, Messages: msgs})
}

// DeleteConversationHandler removes a conversation and its messages.
func DeleteConversationHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	convID, err := utility.StringToPgtypeUUID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Conversation not found"})
	}
	n, err := queries.DeleteConversation(c.Request().Context(), database.DeleteConversationParams{ID: convID, UserID: userID})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to delete conversation")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete conversation"})
	}
	if n == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Conversation not found"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
