package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	journalmodel "github.com/zhouzirui/mood-mirror/backend/internal/model/journal"
)

var (
	ErrMessageRequired = errors.New("message is required")
	ErrUserRequired    = errors.New("userId is required")
)

// Status classifies how a reply was produced.
type Status string

const (
	StatusOK            Status = "ok"
	StatusOffline       Status = "offline"
	StatusRateLimited   Status = "rate_limited"
	StatusUpstreamError Status = "upstream_error"
)

// Config 控制日记对话服务。
type Config struct {
	// HistoryLimit caps how many of the most recent client turns reach the model.
	HistoryLimit int
	Timeout      time.Duration
}

// Request is one user message plus the transcript the client has kept so far.
type Request struct {
	Message string
	History []journalmodel.Turn
	UserID  string
}

// Reply always carries a user-facing Response. Entry is set only when the
// assistant embedded a saved entry and it was persisted.
type Reply struct {
	Response string
	Entry    *journalmodel.SavedEntry
	Status   Status
}

// Service 驱动日记对话，并在模型给出 saved_entry 时写入日记。
type Service struct {
	chain        compose.Runnable[map[string]any, *schema.Message]
	store        journalmodel.Store
	historyLimit int
	timeout      time.Duration
	logger       *slog.Logger
}

// NewService 创建日记对话服务。chatModel 为 nil 时进入离线模式。
func NewService(ctx context.Context, chatModel model.BaseChatModel, store journalmodel.Store, cfg Config, logger *slog.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("journal store is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	historyLimit := cfg.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = 20
	}

	svc := &Service{
		store:        store,
		historyLimit: historyLimit,
		timeout:      cfg.Timeout,
		logger:       logger.With("component", "journal"),
	}
	if chatModel == nil {
		return svc, nil
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile journal chain: %w", err)
	}

	svc.chain = runnable
	return svc, nil
}

// Enabled reports whether a chat model is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.chain != nil
}

// Converse sends req to the model and returns the user-facing reply. Upstream
// failures are folded into the reply; the only error returned is a failure to
// persist a detected entry, or a request missing its message or user.
func (s *Service) Converse(ctx context.Context, req Request) (Reply, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return Reply{}, ErrMessageRequired
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return Reply{}, ErrUserRequired
	}

	if !s.Enabled() {
		return Reply{Response: OfflineReply, Status: StatusOffline}, nil
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	msg, err := s.chain.Invoke(callCtx, map[string]any{
		"system":  systemPrompt,
		"history": s.buildHistoryMessages(req.History),
		"query":   message,
	})
	if err != nil {
		if isRateLimitError(err) {
			s.logger.Warn("journal model rate limited", "user_id", userID, "error", err)
			return Reply{Response: RateLimitedReply, Status: StatusRateLimited}, nil
		}
		s.logger.Error("journal model invoke failed", "user_id", userID, "error", err)
		return Reply{Response: UpstreamErrorReply, Status: StatusUpstreamError}, nil
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		s.logger.Warn("journal model returned empty content", "user_id", userID)
		return Reply{Response: UpstreamErrorReply, Status: StatusUpstreamError}, nil
	}

	saved, text, found, err := extractSavedEntry(msg.Content)
	if err != nil {
		s.logger.Warn("saved entry ignored", "user_id", userID, "error", err)
	}
	reply := Reply{Response: strings.TrimSpace(text), Status: StatusOK}
	if !found || saved == nil {
		return reply, nil
	}

	var summary *string
	if saved.Summary != "" {
		summary = &saved.Summary
	}
	created, err := s.store.CreateJournalEntry(ctx, journalmodel.NewEntry{
		UserID:  userID,
		Content: saved.Content,
		Mood:    saved.Mood,
		Summary: summary,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("save journal entry: %w", err)
	}

	s.logger.Info("journal entry saved", "user_id", userID, "entry_id", created.ID, "mood", created.Mood)
	reply.Entry = saved
	return reply, nil
}

// Entries lists a user's saved entries, newest first.
func (s *Service) Entries(ctx context.Context, userID string, limit int) ([]journalmodel.Entry, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUserRequired
	}
	entries, err := s.store.ListJournalEntries(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return entries, nil
}

func (s *Service) buildHistoryMessages(turns []journalmodel.Turn) []*schema.Message {
	if len(turns) == 0 {
		return nil
	}

	startIdx := 0
	if len(turns) > s.historyLimit {
		startIdx = len(turns) - s.historyLimit
	}

	history := make([]*schema.Message, 0, len(turns)-startIdx)
	for _, turn := range turns[startIdx:] {
		text := strings.TrimSpace(turn.Text)
		if text == "" {
			continue
		}
		switch turn.Role {
		case journalmodel.RoleUser:
			history = append(history, schema.UserMessage(text))
		case journalmodel.RoleModel:
			history = append(history, schema.AssistantMessage(text, nil))
		}
	}
	return history
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "resource_exhausted") ||
		strings.Contains(errStr, "resource exhausted") ||
		strings.Contains(errStr, "too many requests")
}
