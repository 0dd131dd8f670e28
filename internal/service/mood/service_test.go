package mood

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analysis "github.com/zhouzirui/mood-mirror/backend/internal/analysis/mood"
	"github.com/zhouzirui/mood-mirror/backend/internal/model/catalog"
	moodmodel "github.com/zhouzirui/mood-mirror/backend/internal/model/mood"
	"github.com/zhouzirui/mood-mirror/backend/internal/random"
	"github.com/zhouzirui/mood-mirror/backend/internal/service/classifier"
	"github.com/zhouzirui/mood-mirror/backend/internal/store/memory"
)

type stubRemote struct {
	outcome classifier.Outcome
	calls   int
}

func (s *stubRemote) Classify(context.Context, string, moodmodel.Method) classifier.Outcome {
	s.calls++
	return s.outcome
}

type failingLogs struct {
	moodmodel.LogStore
}

func (failingLogs) CreateMoodLog(context.Context, moodmodel.NewLog) (moodmodel.LogRecord, error) {
	return moodmodel.LogRecord{}, errors.New("database is locked")
}

func newService(remote RemoteClassifier, logs moodmodel.LogStore) *Service {
	rnd := random.New(7)
	return NewService(remote, analysis.NewClassifier(rnd), catalog.NewSeededRecommender(rnd), logs, nil)
}

func strPtr(s string) *string { return &s }

func TestAnalyzeHeuristicTired(t *testing.T) {
	svc := newService(&stubRemote{outcome: classifier.Outcome{Reason: classifier.ReasonDisabled}}, memory.New())

	res, err := svc.Analyze(context.Background(), Submission{Method: moodmodel.MethodSelf, Data: strPtr("I feel so tired today")})
	require.NoError(t, err)

	assert.Equal(t, moodmodel.Tired, res.Mood)
	assert.Equal(t, moodmodel.EnergyLow, res.Energy)
	assert.Equal(t, moodmodel.IntentRelax, res.Intent)
	assert.Equal(t, "Restorative Yoga", res.Recommendations.Workout)
	assert.Equal(t, "Warm Tea & Soup", res.Recommendations.Food)
	assert.Equal(t, SourceHeuristic, res.Source)
	assert.Len(t, res.Games, 5)
	assert.NotEmpty(t, res.Outfits)
	assert.NotEmpty(t, res.Playlists)
}

func TestAnalyzeWithoutDataIsWeakCalm(t *testing.T) {
	svc := newService(nil, memory.New())

	res, err := svc.Analyze(context.Background(), Submission{Method: moodmodel.MethodSelf})
	require.NoError(t, err)
	assert.Equal(t, moodmodel.Calm, res.Mood)
	assert.Equal(t, 0.60, res.Confidence)
	assert.Equal(t, moodmodel.EnergyLow, res.Energy)
	assert.Equal(t, moodmodel.IntentFocus, res.Intent)
}

func TestAnalyzeUsesRemoteVerbatim(t *testing.T) {
	rec := moodmodel.Recommendations{
		Outfit:       []string{"a", "b", "c"},
		Playlist:     "pl",
		Workout:      "Swim",
		Food:         "Salad",
		Affirmation:  "You got this.",
		Productivity: "Inbox zero",
	}
	remote := &stubRemote{outcome: classifier.Outcome{
		Available:       true,
		Assessment:      moodmodel.Assessment{Mood: moodmodel.Confident, Confidence: 0.81},
		Recommendations: rec,
	}}
	svc := newService(remote, memory.New())

	res, err := svc.Analyze(context.Background(), Submission{Method: moodmodel.MethodSelf, Data: strPtr("nailed the interview")})
	require.NoError(t, err)

	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, moodmodel.Confident, res.Mood)
	assert.Equal(t, 0.81, res.Confidence)
	assert.Equal(t, moodmodel.EnergyMedium, res.Energy)
	assert.Equal(t, moodmodel.IntentDistract, res.Intent)
	assert.Equal(t, rec, res.Recommendations)
	assert.Equal(t, SourceRemote, res.Source)
	assert.NotEmpty(t, res.Outfits)
	assert.NotEmpty(t, res.Playlists)
}

func TestAnalyzeRejectsUnknownMethod(t *testing.T) {
	svc := newService(nil, memory.New())

	_, err := svc.Analyze(context.Background(), Submission{Method: "voice"})
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestAnalyzeLogRoundTrip(t *testing.T) {
	store := memory.New()
	svc := newService(nil, store)

	res, err := svc.Analyze(context.Background(), Submission{Method: moodmodel.MethodSelf, Data: strPtr("so worried")})
	require.NoError(t, err)

	history, err := svc.History(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, res.Mood, history[0].Mood)
	assert.Equal(t, moodmodel.MethodSelf, history[0].Method)
	require.NotNil(t, history[0].InputData)
	assert.Equal(t, "so worried", *history[0].InputData)
	assert.Equal(t, res.Recommendations, history[0].Recommendations)
}

func TestAnalyzeSurvivesLogFailure(t *testing.T) {
	svc := newService(nil, failingLogs{})

	res, err := svc.Analyze(context.Background(), Submission{Method: moodmodel.MethodSelf, Data: strPtr("happy")})
	require.NoError(t, err)
	assert.Equal(t, moodmodel.Happy, res.Mood)
}

func TestAnalyzeFaceUsesStandIn(t *testing.T) {
	svc := newService(nil, memory.New())

	res, err := svc.Analyze(context.Background(), Submission{Method: moodmodel.MethodFace})
	require.NoError(t, err)
	assert.Contains(t, []moodmodel.Mood{moodmodel.Calm, moodmodel.Energized, moodmodel.Happy, moodmodel.Tired, moodmodel.Anxious}, res.Mood)
	assert.GreaterOrEqual(t, res.Confidence, 0.70)
	assert.LessOrEqual(t, res.Confidence, 0.95)
}
