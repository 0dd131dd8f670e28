package mood

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	moodmodel "github.com/zhouzirui/mood-mirror/backend/internal/model/mood"
	moodservice "github.com/zhouzirui/mood-mirror/backend/internal/service/mood"
	"github.com/zhouzirui/mood-mirror/backend/pkg/utils"
)

// Service is the part of the mood orchestrator the handler needs.
type Service interface {
	Analyze(ctx context.Context, sub moodservice.Submission) (moodservice.Result, error)
	History(ctx context.Context, limit int) ([]moodmodel.LogRecord, error)
}

// Handler 心情打卡的HTTP处理器
type Handler struct {
	svc    Service
	logger *slog.Logger
}

// New 创建心情处理器
func New(svc Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger.With("component", "handler.mood")}
}

// RegisterRoutes 注册心情相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/mood", h.handleAnalyze)
	r.Get("/mood/history", h.handleHistory)
}

type analyzeRequest struct {
	Method string          `json:"method"`
	Data   json.RawMessage `json:"data"`
}

var errDataNotString = errors.New("data must be a string when provided")

// parseData 解析可选的 data 字段：缺省为 nil，显式 null 或非字符串均视为无效
func parseData(raw json.RawMessage) (*string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, errDataNotString
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil, errDataNotString
	}
	return &text, nil
}

// handleAnalyze 分析一次打卡
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var payload analyzeRequest
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	method := moodmodel.Method(strings.TrimSpace(payload.Method))
	if !method.Valid() {
		utils.RespondError(w, http.StatusBadRequest, moodservice.ErrInvalidMethod.Error())
		return
	}

	data, err := parseData(payload.Data)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.Analyze(r.Context(), moodservice.Submission{Method: method, Data: data})
	if err != nil {
		if errors.Is(err, moodservice.ErrInvalidMethod) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("mood analysis failed", "error", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

// handleHistory 返回打卡历史，最新的在前
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	logs, err := h.svc.History(r.Context(), limit)
	if err != nil {
		h.logger.Error("fetch mood history failed", "error", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch mood history")
		return
	}

	utils.RespondJSON(w, http.StatusOK, logs)
}

var errInvalidLimit = errors.New("limit must be a positive integer")

func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, errInvalidLimit
	}
	return limit, nil
}
