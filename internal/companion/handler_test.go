package companion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/utility"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStreamer struct {
	chunks  []string
	system  string
	history []*schema.Message
	query   string
	calls   int
}

func (f *fakeStreamer) Stream(_ context.Context, system string, history []*schema.Message, query string) (*schema.StreamReader[*schema.Message], error) {
	f.calls++
	f.system, f.history, f.query = system, history, query
	msgs := make([]*schema.Message, len(f.chunks))
	for i, c := range f.chunks {
		msgs[i] = schema.AssistantMessage(c, nil)
	}
	return schema.StreamReaderFromArray(msgs), nil
}

type fakeQueries struct {
	database.Querier

	mu       sync.Mutex
	convs    map[pgtype.UUID]database.Conversation
	messages []database.Message
	touched  int
	userErr  error
}

func newFakeQueries() *fakeQueries {
	return &fakeQueries{convs: map[pgtype.UUID]database.Conversation{}}
}

func newUUID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func (f *fakeQueries) GetUserByID(_ context.Context, id string) (database.User, error) {
	return database.User{UserID: id, Name: pgtype.Text{String: "Ada", Valid: true}}, f.userErr
}

func (f *fakeQueries) CreateConversation(_ context.Context, arg database.CreateConversationParams) (database.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	conv := database.Conversation{ID: newUUID(), UserID: arg.UserID, Title: arg.Title}
	f.convs[conv.ID] = conv
	return conv, nil
}

func (f *fakeQueries) GetConversationForUser(_ context.Context, arg database.GetConversationForUserParams) (database.Conversation, error) {
	conv, ok := f.convs[arg.ID]
	if !ok || conv.UserID != arg.UserID {
		return database.Conversation{}, pgx.ErrNoRows
	}
	return conv, nil
}

func (f *fakeQueries) ListRecentMessages(_ context.Context, arg database.ListRecentMessagesParams) ([]database.Message, error) {
	msgs, _ := f.ListMessages(context.Background(), arg.ConversationID)
	if len(msgs) > int(arg.Limit) {
		msgs = msgs[len(msgs)-int(arg.Limit):]
	}
	return msgs, nil
}

func (f *fakeQueries) ListMessages(_ context.Context, id pgtype.UUID) ([]database.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []database.Message
	for _, m := range f.messages {
		if m.ConversationID == id {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeQueries) CreateMessage(_ context.Context, arg database.CreateMessageParams) (database.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := database.Message{ID: newUUID(), ConversationID: arg.ConversationID, Role: arg.Role, Content: arg.Content}
	f.messages = append(f.messages, m)
	return m, nil
}

func (f *fakeQueries) TouchConversation(context.Context, pgtype.UUID) error {
	f.touched++
	return nil
}

func (f *fakeQueries) ListConversations(_ context.Context, userID string) ([]database.Conversation, error) {
	var out []database.Conversation
	for _, c := range f.convs {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeQueries) DeleteConversation(_ context.Context, arg database.DeleteConversationParams) (int64, error) {
	conv, ok := f.convs[arg.ID]
	if !ok || conv.UserID != arg.UserID {
		return 0, nil
	}
	delete(f.convs, arg.ID)
	return 1, nil
}

func chatRequest(t *testing.T, userID, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	return c, rec
}

func TestChatHandlerEmergencyShortCircuits(t *testing.T) {
	st := &fakeStreamer{}
	q := newFakeQueries()
	InitCompanionPackage(q, st, "Dr. Roe")

	c, rec := chatRequest(t, "user-1", `{"message":"I have severe CHEST PAIN"}`)
	require.NoError(t, ChatHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["emergency"])
	assert.Equal(t, EmergencyMessage, body["message"])
	assert.Zero(t, st.calls, "model never called")
	assert.Empty(t, q.convs, "nothing persisted")
}

func TestChatHandlerRequiresMessage(t *testing.T) {
	InitCompanionPackage(newFakeQueries(), &fakeStreamer{}, "")

	c, rec := chatRequest(t, "user-1", `{"message":"   "}`)
	require.NoError(t, ChatHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandlerNotConfigured(t *testing.T) {
	InitCompanionPackage(newFakeQueries(), nil, "")

	c, rec := chatRequest(t, "user-1", `{"message":"hello"}`)
	require.NoError(t, ChatHandler(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestChatHandlerStreamsAndPersists(t *testing.T) {
	st := &fakeStreamer{chunks: []string{"Drink ", "", "more water."}}
	q := newFakeQueries()
	InitCompanionPackage(q, st, "Dr. Roe")

	c, rec := chatRequest(t, "user-1", `{"message":"How can I sleep better?"}`)
	require.NoError(t, ChatHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "Drink more water.", rec.Body.String())

	convID := rec.Header().Get("X-Conversation-Id")
	require.NotEmpty(t, convID)
	id, err := utility.StringToPgtypeUUID(convID)
	require.NoError(t, err)
	assert.Equal(t, "How can I sleep better?", q.convs[id].Title)

	require.Len(t, q.messages, 2)
	assert.Equal(t, "user", q.messages[0].Role)
	assert.Equal(t, "assistant", q.messages[1].Role)
	assert.Equal(t, "Drink more water.", q.messages[1].Content)
	assert.Equal(t, 1, q.touched)

	assert.Empty(t, st.history, "new conversation has no history")
	assert.Equal(t, "How can I sleep better?", st.query)
	assert.Contains(t, st.system, "Patient Name: Ada")
	assert.Contains(t, st.system, "Dr. Roe")

	// A follow-up in the same conversation sees the earlier turn.
	c, rec = chatRequest(t, "user-1", `{"message":"And naps?","conversation_id":"`+convID+`"}`)
	require.NoError(t, ChatHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, st.history, 2)
	assert.Equal(t, "How can I sleep better?", st.history[0].Content)
	assert.Equal(t, "And naps?", st.query)
	assert.Len(t, q.messages, 4)
}

func TestChatHandlerForeignConversation(t *testing.T) {
	q := newFakeQueries()
	conv, _ := q.CreateConversation(context.Background(), database.CreateConversationParams{UserID: "owner", Title: "x"})
	id, _ := utility.PgtypeUUIDToString(conv.ID)
	st := &fakeStreamer{}
	InitCompanionPackage(q, st, "")

	for _, cid := range []string{id, "not-a-uuid", uuid.NewString()} {
		c, rec := chatRequest(t, "intruder", `{"message":"hi","conversation_id":"`+cid+`"}`)
		require.NoError(t, ChatHandler(c))
		assert.Equal(t, http.StatusNotFound, rec.Code, cid)
	}
	assert.Zero(t, st.calls)
	assert.Empty(t, q.messages)
}

func conversationRequest(method, userID, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, "/api/conversations/"+id, nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	c.Set("user_id", userID)
	return c, rec
}

func TestConversationHandlers(t *testing.T) {
	q := newFakeQueries()
	InitCompanionPackage(q, &fakeStreamer{}, "")
	ctx := context.Background()

	conv, _ := q.CreateConversation(ctx, database.CreateConversationParams{UserID: "user-1", Title: "Sleep"})
	_, _ = q.CreateMessage(ctx, database.CreateMessageParams{ConversationID: conv.ID, Role: "user", Content: "hi"})
	id, _ := utility.PgtypeUUIDToString(conv.ID)

	c, rec := conversationRequest(http.MethodGet, "user-1", "")
	require.NoError(t, ListConversationsHandler(c))
	assert.Contains(t, rec.Body.String(), `"title":"Sleep"`)

	c, rec = conversationRequest(http.MethodGet, "user-1", id)
	require.NoError(t, GetConversationHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var detail ConversationDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Sleep", detail.Title)
	assert.Len(t, detail.Messages, 1)

	c, rec = conversationRequest(http.MethodGet, "user-2", id)
	require.NoError(t, GetConversationHandler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = conversationRequest(http.MethodDelete, "user-2", id)
	require.NoError(t, DeleteConversationHandler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = conversationRequest(http.MethodDelete, "user-1", id)
	require.NoError(t, DeleteConversationHandler(c))
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
