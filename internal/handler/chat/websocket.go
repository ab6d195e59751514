package chat

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/ugochukwu16henry/foundationprototype/internal/observability"
	"github.com/ugochukwu16henry/foundationprototype/internal/service/assistant"
	chatService "github.com/ugochukwu16henry/foundationprototype/internal/service/chat"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 54 * time.Second
	writeTimeout = 10 * time.Second
)

// WebSocketHandler 聊天组件的WebSocket处理器
type WebSocketHandler struct {
	assistant *assistant.Service
	chatSvc   *chatService.Service
	upgrader  websocket.Upgrader
}

// NewWebSocketHandler 创建WebSocket处理器
func NewWebSocketHandler(assistantSvc *assistant.Service, chatSvc *chatService.Service) *WebSocketHandler {
	return &WebSocketHandler{
		assistant: assistantSvc,
		chatSvc:   chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterWebSocketRoutes 注册WebSocket路由
func (h *WebSocketHandler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type outgoingMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId,omitempty"`
	Text      string `json:"text,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// wsConn serialises writes; gorilla allows a single concurrent writer.
type wsConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (c *wsConn) send(msg outgoingMessage) error {
	msg.Timestamp = time.Now().Unix()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.WriteJSON(msg)
}

// handleWebSocket 处理WebSocket连接
func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if _, err := h.chatSvc.GetSession(r.Context(), sessionID); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	raw, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	conn := &wsConn{Conn: raw}
	defer conn.Close()

	observability.ChatConnections.Inc()
	defer observability.ChatConnections.Dec()

	log.Printf("[ws] new connection for session=%s", sessionID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	go pingLoop(ctx, conn)

	// Replies are produced one at a time so bot turns keep the order of user turns.
	var pending sync.WaitGroup
	defer pending.Wait()
	queue := make(chan string, 8)
	defer close(queue)

	pending.Add(1)
	go func() {
		defer pending.Done()
		for text := range queue {
			h.reply(ctx, conn, sessionID, text)
		}
	}()

	if err := conn.send(outgoingMessage{Type: "connected", SessionID: sessionID}); err != nil {
		log.Printf("[ws] write connected failed session=%s: %v", sessionID, err)
		return
	}

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read error session=%s: %v", sessionID, err)
			}
			cancel()
			return
		}

		conn.SetReadDeadline(time.Now().Add(readTimeout))

		if msg.Type != "message" {
			h.sendError(conn, sessionID, "unsupported message type: "+msg.Type)
			continue
		}

		select {
		case queue <- msg.Text:
		default:
			h.sendError(conn, sessionID, "too many pending messages")
		}
	}
}

func (h *WebSocketHandler) reply(ctx context.Context, conn *wsConn, sessionID, text string) {
	if ctx.Err() != nil || strings.TrimSpace(text) == "" {
		return
	}

	if err := conn.send(outgoingMessage{Type: "typing", SessionID: sessionID}); err != nil {
		log.Printf("[ws] write typing failed session=%s: %v", sessionID, err)
	}

	reply, err := h.assistant.Send(ctx, sessionID, text)
	switch {
	case errors.Is(err, context.Canceled):
		return
	case err != nil:
		log.Printf("[ws] reply failed session=%s: %v", sessionID, err)
		h.sendError(conn, sessionID, err.Error())
		return
	}

	if err := conn.send(outgoingMessage{Type: "reply", SessionID: sessionID, Text: reply.Bot.Content}); err != nil {
		log.Printf("[ws] write reply failed session=%s: %v", sessionID, err)
	}
}

func (h *WebSocketHandler) sendError(conn *wsConn, sessionID, message string) {
	if err := conn.send(outgoingMessage{Type: "error", SessionID: sessionID, Error: message}); err != nil {
		log.Printf("[ws] write error frame failed session=%s: %v", sessionID, err)
	}
}

// pingLoop 定期发送ping消息
func pingLoop(ctx context.Context, conn *wsConn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}
