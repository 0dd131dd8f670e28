package classifier

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/mood-mirror/backend/internal/model/mood"
)

type fakeChatModel struct {
	reply string
	err   error
	block bool
	input []*schema.Message
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.input = input
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := f.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

const validReply = "```json\n" + `{
  "mood": "Happy",
  "energy": "high",
  "intent": "uplift",
  "confidence": 0.93,
  "recommendations": {
    "outfit": ["Yellow Tee", "Denim Jacket", "White Sneakers"],
    "playlist": "37i9dQZF1DXdPec7aLTmlC",
    "workout": "Dance Cardio",
    "food": "Mango Smoothie",
    "affirmation": "Joy is contagious.",
    "productivity": "Brainstorm new ideas"
  }
}` + "\n```"

func newService(t *testing.T, fake *fakeChatModel, timeout time.Duration) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), fake, Config{Timeout: timeout}, nil)
	require.NoError(t, err)
	return svc
}

func TestClassifyDisabledWithoutModel(t *testing.T) {
	svc, err := NewService(context.Background(), nil, Config{}, nil)
	require.NoError(t, err)

	assert.False(t, svc.Enabled())
	assert.Equal(t, Outcome{Reason: ReasonDisabled}, svc.Classify(context.Background(), "happy", mood.MethodSelf))
}

func TestClassifyParsesFencedResponse(t *testing.T) {
	fake := &fakeChatModel{reply: validReply}
	svc := newService(t, fake, time.Second)

	got := svc.Classify(context.Background(), "great day", mood.MethodSelf)
	require.True(t, got.Available)
	assert.Equal(t, mood.Assessment{Mood: mood.Happy, Energy: mood.EnergyHigh, Intent: mood.IntentUplift, Confidence: 0.93}, got.Assessment)
	assert.Equal(t, []string{"Yellow Tee", "Denim Jacket", "White Sneakers"}, got.Recommendations.Outfit)
	assert.Equal(t, "37i9dQZF1DXdPec7aLTmlC", got.Recommendations.Playlist)

	require.Len(t, fake.input, 2)
	assert.Contains(t, fake.input[0].Content, `"recommendations"`)
	assert.Contains(t, fake.input[1].Content, `"great day" (Method: self)`)
}

func TestClassifyUnknownMoodClampsToCalm(t *testing.T) {
	reply := strings.Replace(validReply, `"Happy"`, `"ecstatic"`, 1)
	svc := newService(t, &fakeChatModel{reply: reply}, time.Second)

	got := svc.Classify(context.Background(), "wow", mood.MethodSelf)
	require.True(t, got.Available)
	assert.Equal(t, mood.Calm, got.Assessment.Mood)
}

func TestClassifyLeavesInvalidEnergyAndIntentEmpty(t *testing.T) {
	reply := strings.Replace(validReply, `"high"`, `"extreme"`, 1)
	reply = strings.Replace(reply, `"uplift"`, `"party"`, 1)
	svc := newService(t, &fakeChatModel{reply: reply}, time.Second)

	got := svc.Classify(context.Background(), "wow", mood.MethodSelf)
	require.True(t, got.Available)
	assert.Empty(t, got.Assessment.Energy)
	assert.Empty(t, got.Assessment.Intent)
}

func TestClassifyClampsConfidence(t *testing.T) {
	reply := strings.Replace(validReply, `0.93`, `1.7`, 1)
	svc := newService(t, &fakeChatModel{reply: reply}, time.Second)

	got := svc.Classify(context.Background(), "wow", mood.MethodSelf)
	require.True(t, got.Available)
	assert.Equal(t, 1.0, got.Assessment.Confidence)
}

func TestClassifyUnavailableReasons(t *testing.T) {
	cases := []struct {
		name string
		fake *fakeChatModel
		want Reason
	}{
		{"upstream error", &fakeChatModel{err: errors.New("connection refused")}, ReasonUpstream},
		{"empty reply", &fakeChatModel{reply: "   "}, ReasonMalformed},
		{"prose only", &fakeChatModel{reply: "I think you are happy"}, ReasonMalformed},
		{"broken json", &fakeChatModel{reply: `{"mood": "happy",}`}, ReasonMalformed},
		{"missing confidence", &fakeChatModel{reply: strings.Replace(validReply, `"confidence": 0.93,`, "", 1)}, ReasonSchema},
		{"missing recommendations", &fakeChatModel{reply: `{"mood":"happy","confidence":0.9}`}, ReasonSchema},
		{"incomplete bundle", &fakeChatModel{reply: strings.Replace(validReply, `"Dance Cardio"`, `""`, 1)}, ReasonSchema},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService(t, tc.fake, time.Second)
			got := svc.Classify(context.Background(), "text", mood.MethodSelf)
			assert.False(t, got.Available)
			assert.Equal(t, tc.want, got.Reason)
		})
	}
}

func TestClassifyTimeout(t *testing.T) {
	svc := newService(t, &fakeChatModel{block: true}, 20*time.Millisecond)

	start := time.Now()
	got := svc.Classify(context.Background(), "text", mood.MethodSelf)
	assert.Equal(t, Outcome{Reason: ReasonTimeout}, got)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestResponseSchemaListsVocabulary(t *testing.T) {
	text, err := responseSchema()
	require.NoError(t, err)

	for _, m := range mood.Vocabulary {
		assert.Contains(t, text, `"`+string(m)+`"`)
	}
	assert.Contains(t, text, `"additionalProperties": false`)
}
