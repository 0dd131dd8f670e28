package journal

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zhouzirui/mood-mirror/backend/pkg/utils"
)

const (
	readDeadline = 60 * time.Second
	pingInterval = 54 * time.Second
)

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type chatFrame struct {
	Message string     `json:"message"`
	History []wireTurn `json:"history"`
}

type outgoingMessage struct {
	Type      string `json:"type"`
	Data      any    `json:"data,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// handleWebSocket 为同一用户保持一个日记对话连接，每条 chat 帧走一次 Converse。
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	h.logger.Info("journal websocket connected", "user_id", userID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	go h.pingLoop(ctx, conn)

	h.send(conn, "connected", map[string]string{"userId": userID})

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read failed", "user_id", userID, "error", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(readDeadline))

		switch msg.Type {
		case "chat":
			h.handleChatFrame(ctx, conn, userID, msg.Data)
		default:
			h.sendError(conn, "unsupported message type: "+msg.Type)
		}
	}
}

func (h *Handler) handleChatFrame(ctx context.Context, conn *websocket.Conn, userID string, raw json.RawMessage) {
	var frame chatFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		h.sendError(conn, "invalid chat payload")
		return
	}

	req, err := chatRequest{Message: frame.Message, History: frame.History, UserID: userID}.toRequest()
	if err != nil {
		h.sendError(conn, err.Error())
		return
	}

	reply, err := h.svc.Converse(ctx, req)
	if err != nil {
		h.logger.Error("journal chat failed", "user_id", userID, "error", err)
		h.sendError(conn, "Failed to process journal chat")
		return
	}

	h.send(conn, "reply", chatResponse{Response: reply.Response, Entry: reply.Entry})
}

func (h *Handler) send(conn *websocket.Conn, msgType string, data any) {
	msg := outgoingMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
	if err := conn.WriteJSON(msg); err != nil {
		h.logger.Warn("websocket write failed", "type", msgType, "error", err)
	}
}

func (h *Handler) sendError(conn *websocket.Conn, message string) {
	h.send(conn, "error", map[string]string{"message": message})
}

// pingLoop 定期发送ping消息
func (h *Handler) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				return
			}
		}
	}
}
