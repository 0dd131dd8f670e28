package mood

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	analysis "github.com/zhouzirui/mood-mirror/backend/internal/analysis/mood"
	"github.com/zhouzirui/mood-mirror/backend/internal/model/catalog"
	moodmodel "github.com/zhouzirui/mood-mirror/backend/internal/model/mood"
	"github.com/zhouzirui/mood-mirror/backend/internal/service/classifier"
)

// ErrInvalidMethod is returned for a check-in method other than face or self.
var ErrInvalidMethod = errors.New("method must be one of: face, self")

// Source tells which classifier produced a result.
type Source string

const (
	SourceRemote    Source = "remote"
	SourceHeuristic Source = "heuristic"
)

// RemoteClassifier is the primary classifier. A nil RemoteClassifier behaves
// like a disabled one.
type RemoteClassifier interface {
	Classify(ctx context.Context, text string, method moodmodel.Method) classifier.Outcome
}

// Submission is one check-in.
type Submission struct {
	Method moodmodel.Method
	Data   *string
}

// Result is the unified answer to a check-in.
type Result struct {
	Mood            moodmodel.Mood            `json:"mood"`
	Energy          moodmodel.Energy          `json:"energy"`
	Intent          moodmodel.Intent          `json:"intent"`
	Confidence      float64                   `json:"confidence"`
	Recommendations moodmodel.Recommendations `json:"recommendations"`
	Games           []catalog.Game            `json:"games"`
	Outfits         []catalog.Outfit          `json:"outfits"`
	Playlists       []catalog.Playlist        `json:"playlists"`
	Source          Source                    `json:"source"`
}

// Service aggregates classification, recommendations and catalog picks for a
// check-in and records it in the log.
type Service struct {
	remote      RemoteClassifier
	heuristic   *analysis.Classifier
	recommender *catalog.Recommender
	logs        moodmodel.LogStore
	logger      *slog.Logger
}

// NewService wires the orchestrator. remote may be nil.
func NewService(remote RemoteClassifier, heuristic *analysis.Classifier, recommender *catalog.Recommender, logs moodmodel.LogStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		remote:      remote,
		heuristic:   heuristic,
		recommender: recommender,
		logs:        logs,
		logger:      logger.With("component", "mood"),
	}
}

// Analyze classifies sub, falling back to the heuristic path when the remote
// classifier is unavailable. A failed log write is logged and does not fail
// the check-in.
func (s *Service) Analyze(ctx context.Context, sub Submission) (Result, error) {
	if !sub.Method.Valid() {
		return Result{}, ErrInvalidMethod
	}

	text := ""
	if sub.Data != nil {
		text = *sub.Data
	}

	assessment, rec, source := s.classify(ctx, sub.Method, text)

	result := Result{
		Mood:            assessment.Mood,
		Energy:          assessment.Energy,
		Intent:          assessment.Intent,
		Confidence:      assessment.Confidence,
		Recommendations: rec,
		Source:          source,
	}

	query := catalog.Query{Mood: assessment.Mood, Energy: assessment.Energy, Intent: assessment.Intent}
	var g errgroup.Group
	g.Go(func() error {
		result.Games = s.recommender.Games(query)
		return nil
	})
	g.Go(func() error {
		result.Outfits = s.recommender.Outfits(assessment.Mood)
		return nil
	})
	g.Go(func() error {
		result.Playlists = s.recommender.Playlists(assessment.Mood)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("catalog lookup: %w", err)
	}

	record, err := s.logs.CreateMoodLog(ctx, moodmodel.NewLog{
		Mood:            assessment.Mood,
		Confidence:      assessment.Confidence,
		Method:          sub.Method,
		InputData:       sub.Data,
		Recommendations: rec,
	})
	if err != nil {
		s.logger.Error("mood log write failed", "mood", assessment.Mood, "error", err)
	} else {
		s.logger.Info("mood check-in recorded", "log_id", record.ID, "mood", assessment.Mood, "source", source)
	}

	return result, nil
}

func (s *Service) classify(ctx context.Context, method moodmodel.Method, text string) (moodmodel.Assessment, moodmodel.Recommendations, Source) {
	if s.remote != nil {
		outcome := s.remote.Classify(ctx, text, method)
		if outcome.Available {
			a := outcome.Assessment
			if a.Energy == "" {
				a.Energy = analysis.DefaultEnergy
			}
			if a.Intent == "" {
				a.Intent = analysis.DefaultIntent
			}
			return a, outcome.Recommendations, SourceRemote
		}
		s.logger.Debug("remote classifier unavailable, using heuristic", "reason", outcome.Reason)
	}

	a := s.heuristic.Classify(method, text)
	a.Energy, a.Intent = analysis.Profile(a.Mood)
	return a, analysis.Recommend(a.Mood), SourceHeuristic
}

// History returns logged check-ins newest first. limit <= 0 returns all.
func (s *Service) History(ctx context.Context, limit int) ([]moodmodel.LogRecord, error) {
	records, err := s.logs.ListMoodLogs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list mood logs: %w", err)
	}
	return records, nil
}
