package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/zhouzirui/mood-mirror/backend/internal/model/mood"
)

var (
	errMalformed = errors.New("malformed classifier response")
	errSchema    = errors.New("classifier response does not match schema")
)

// Config 控制远程情绪分类的行为。
type Config struct {
	// Timeout bounds a single remote call. Zero disables the bound.
	Timeout time.Duration
}

// Service 调用大模型对用户输入做情绪分类，并校验返回的 JSON。
type Service struct {
	runnable compose.Runnable[map[string]any, *schema.Message]
	system   string
	timeout  time.Duration
	logger   *slog.Logger
}

// NewService 创建远程分类服务。chatModel 为 nil 时服务处于禁用状态。
func NewService(ctx context.Context, chatModel model.BaseChatModel, cfg Config, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	svc := &Service{
		timeout: cfg.Timeout,
		logger:  logger.With("component", "classifier"),
	}
	if chatModel == nil {
		return svc, nil
	}

	system, err := buildSystemPrompt()
	if err != nil {
		return nil, err
	}
	svc.system = system

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage(userPrompt),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile mood classifier chain: %w", err)
	}

	svc.runnable = runnable
	return svc, nil
}

// Enabled 返回远程分类是否可用。
func (s *Service) Enabled() bool {
	return s != nil && s.runnable != nil
}

// Classify asks the remote model for an assessment of text. It never returns
// an error: every failure is reported as an unavailable Outcome.
func (s *Service) Classify(ctx context.Context, text string, method mood.Method) Outcome {
	if !s.Enabled() {
		return unavailable(ReasonDisabled)
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	msg, err := s.runnable.Invoke(callCtx, map[string]any{
		"system": s.system,
		"input":  strings.TrimSpace(text),
		"method": string(method),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			s.logger.Warn("remote classifier timed out", "timeout", s.timeout)
			return unavailable(ReasonTimeout)
		}
		s.logger.Warn("remote classifier invoke failed", "error", err)
		return unavailable(ReasonUpstream)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		s.logger.Warn("remote classifier returned empty content")
		return unavailable(ReasonMalformed)
	}

	payload, err := parseResponse(msg.Content)
	if err != nil {
		s.logger.Warn("remote classifier output rejected", "error", err)
		if errors.Is(err, errSchema) {
			return unavailable(ReasonSchema)
		}
		return unavailable(ReasonMalformed)
	}

	resolved, ok := mood.Parse(payload.Mood)
	if !ok {
		s.logger.Warn("remote classifier returned unknown mood, using calm", "mood", payload.Mood)
		resolved = mood.Calm
	}

	assessment := mood.Assessment{
		Mood:       resolved,
		Confidence: mood.ClampConfidence(*payload.Confidence),
	}
	if energy := mood.Energy(normalize(payload.Energy)); energy.Valid() {
		assessment.Energy = energy
	}
	if intent := mood.Intent(normalize(payload.Intent)); intent.Valid() {
		assessment.Intent = intent
	}

	rec := payload.Recommendations
	return available(assessment, mood.Recommendations{
		Outfit:       trimAll(rec.Outfit),
		Playlist:     strings.TrimSpace(rec.Playlist),
		Workout:      strings.TrimSpace(rec.Workout),
		Food:         strings.TrimSpace(rec.Food),
		Affirmation:  strings.TrimSpace(rec.Affirmation),
		Productivity: strings.TrimSpace(rec.Productivity),
	})
}

// parseResponse strips markdown fences and decodes the first JSON object in
// content.
func parseResponse(content string) (*remotePayload, error) {
	cleaned := strings.ReplaceAll(content, "```json", "")
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "```", ""))

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("%w: missing json object", errMalformed)
	}

	payload := &remotePayload{}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), payload); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformed, err)
	}

	switch {
	case strings.TrimSpace(payload.Mood) == "":
		return nil, fmt.Errorf("%w: mood missing", errSchema)
	case payload.Confidence == nil:
		return nil, fmt.Errorf("%w: confidence missing", errSchema)
	case payload.Recommendations == nil:
		return nil, fmt.Errorf("%w: recommendations missing", errSchema)
	}

	rec := payload.Recommendations
	bundle := mood.Recommendations{
		Outfit:       rec.Outfit,
		Playlist:     rec.Playlist,
		Workout:      rec.Workout,
		Food:         rec.Food,
		Affirmation:  rec.Affirmation,
		Productivity: rec.Productivity,
	}
	if !bundle.Complete() {
		return nil, fmt.Errorf("%w: recommendations incomplete", errSchema)
	}
	return payload, nil
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
