package companion

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"HealthCompanion/internal/database"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEmergency(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"I have CHEST PAIN since this morning", true},
		{"i think i'm having a Heart Attack", true},
		{"I can't breathe properly", true},
		{"my dad had a stroke last year", true},
		{"I feel like I want to die", true},
		{"How much water should I drink?", false},
		{"I have a mild headache", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectEmergency(tt.msg), tt.msg)
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	p := Profile{
		Name:       "Ada",
		Age:        36,
		Conditions: []string{"asthma", "hypertension"},
	}
	got := BuildSystemPrompt(p, "Dr. Jane Roe, Internal Medicine")

	assert.Contains(t, got, "Patient Name: Ada\nAge: 36\nMedical Conditions: asthma, hypertension\n")
	assert.NotContains(t, got, "Sex:")
	assert.NotContains(t, got, "Allergies:")
	assert.NotContains(t, got, "Health Goals:")
	assert.Equal(t, 2, strings.Count(got, "Dr. Jane Roe, Internal Medicine"))
	assert.NotContains(t, got, "%!", "no formatting verbs left behind")
}

func TestProfileFromUser(t *testing.T) {
	u := database.User{
		Name:      pgtype.Text{String: "Ada", Valid: true},
		Age:       pgtype.Int4{Int32: 36, Valid: true},
		Allergies: []string{"penicillin"},
	}
	p := ProfileFromUser(u)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, int32(36), p.Age)
	assert.Empty(t, p.Sex)
	assert.Equal(t, []string{"penicillin"}, p.Allergies)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "short", Title("short"))
	long := strings.Repeat("é", 60)
	assert.Equal(t, strings.Repeat("é", 50), Title(long))
}

func TestHistoryMessages(t *testing.T) {
	h := HistoryMessages([]database.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
		{Role: "system", Content: "ignored"},
	})
	require.Len(t, h, 2)
	assert.Equal(t, schema.User, h[0].Role)
	assert.Equal(t, schema.Assistant, h[1].Role)
}

type scriptedModel struct {
	input []*schema.Message
}

func (m *scriptedModel) Generate(_ context.Context, in []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	m.input = in
	return schema.AssistantMessage("hello there", nil), nil
}

func (m *scriptedModel) Stream(_ context.Context, in []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	m.input = in
	return schema.StreamReaderFromArray([]*schema.Message{
		schema.AssistantMessage("hello ", nil),
		schema.AssistantMessage("there", nil),
	}), nil
}

func TestServiceStream(t *testing.T) {
	m := &scriptedModel{}
	svc, err := newService(context.Background(), m)
	require.NoError(t, err)

	history := []*schema.Message{schema.UserMessage("earlier"), schema.AssistantMessage("reply", nil)}
	stream, err := svc.Stream(context.Background(), "be kind", history, "how are you?")
	require.NoError(t, err)
	defer stream.Close()

	var parts []*schema.Message
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		parts = append(parts, chunk)
	}
	full, err := schema.ConcatMessages(parts)
	require.NoError(t, err)
	assert.Equal(t, "hello there", full.Content)

	require.Len(t, m.input, 4)
	assert.Equal(t, schema.System, m.input[0].Role)
	assert.Equal(t, "be kind", m.input[0].Content)
	assert.Equal(t, "earlier", m.input[1].Content)
	assert.Equal(t, schema.User, m.input[3].Role)
	assert.Equal(t, "how are you?", m.input[3].Content)
}
