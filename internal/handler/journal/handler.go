package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	journalmodel "github.com/zhouzirui/mood-mirror/backend/internal/model/journal"
	journalservice "github.com/zhouzirui/mood-mirror/backend/internal/service/journal"
	"github.com/zhouzirui/mood-mirror/backend/pkg/utils"
)

// Service is the part of the journaling engine the handler needs.
type Service interface {
	Converse(ctx context.Context, req journalservice.Request) (journalservice.Reply, error)
	Entries(ctx context.Context, userID string, limit int) ([]journalmodel.Entry, error)
}

// Handler 日记对话的HTTP处理器
type Handler struct {
	svc      Service
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// New 创建日记处理器
func New(svc Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		svc:    svc,
		logger: logger.With("component", "handler.journal"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes 注册日记相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/journal/chat", h.handleChat)
	r.Get("/journal/entries/{userID}", h.handleEntries)
	r.Get("/journal/ws", h.handleWebSocket)
}

// wireTurn accepts parts either as a plain string or as a list of
// {"text": "..."} objects.
type wireTurn struct {
	Role  string          `json:"role"`
	Parts json.RawMessage `json:"parts"`
}

type chatRequest struct {
	Message string     `json:"message"`
	History []wireTurn `json:"history"`
	UserID  string     `json:"userId"`
}

type chatResponse struct {
	Response string                   `json:"response"`
	Entry    *journalmodel.SavedEntry `json:"entry,omitempty"`
}

// handleChat 处理一轮日记对话
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := payload.toRequest()
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := h.svc.Converse(r.Context(), req)
	if err != nil {
		if isValidationError(err) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("journal chat failed", "user_id", req.UserID, "error", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to process journal chat")
		return
	}

	utils.RespondJSON(w, http.StatusOK, chatResponse{Response: reply.Response, Entry: reply.Entry})
}

// handleEntries 返回用户的日记，最新的在前
func (h *Handler) handleEntries(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		utils.RespondError(w, http.StatusBadRequest, journalservice.ErrUserRequired.Error())
		return
	}

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries, err := h.svc.Entries(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error("fetch journal entries failed", "user_id", userID, "error", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch journal entries")
		return
	}

	utils.RespondJSON(w, http.StatusOK, entries)
}

func (p chatRequest) toRequest() (journalservice.Request, error) {
	if strings.TrimSpace(p.Message) == "" {
		return journalservice.Request{}, journalservice.ErrMessageRequired
	}
	if strings.TrimSpace(p.UserID) == "" {
		return journalservice.Request{}, journalservice.ErrUserRequired
	}

	history, err := decodeHistory(p.History)
	if err != nil {
		return journalservice.Request{}, err
	}

	return journalservice.Request{
		Message: p.Message,
		History: history,
		UserID:  p.UserID,
	}, nil
}

func decodeHistory(turns []wireTurn) ([]journalmodel.Turn, error) {
	history := make([]journalmodel.Turn, 0, len(turns))
	for i, t := range turns {
		role, ok := journalmodel.ParseRole(t.Role)
		if !ok {
			return nil, fmt.Errorf("history[%d].role must be one of: user, model", i)
		}
		text, err := decodeParts(t.Parts)
		if err != nil {
			return nil, fmt.Errorf("history[%d].parts: %w", i, err)
		}
		history = append(history, journalmodel.Turn{Role: role, Text: text})
	}
	return history, nil
}

func decodeParts(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text, nil
	}

	var parts []struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &parts); err != nil {
		return "", errors.New("must be a string or a list of {text} objects")
	}
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, "\n"), nil
}

func isValidationError(err error) bool {
	return errors.Is(err, journalservice.ErrMessageRequired) || errors.Is(err, journalservice.ErrUserRequired)
}
