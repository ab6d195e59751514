package chat

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ugochukwu16henry/foundationprototype/internal/service/assistant"
	chatService "github.com/ugochukwu16henry/foundationprototype/internal/service/chat"
	"github.com/ugochukwu16henry/foundationprototype/pkg/utils"
)

// Handler 聊天组件的HTTP处理器
type Handler struct {
	assistant *assistant.Service
	chatSvc   *chatService.Service
}

// New 创建聊天处理器
func New(assistantSvc *assistant.Service, chatSvc *chatService.Service) *Handler {
	return &Handler{
		assistant: assistantSvc,
		chatSvc:   chatSvc,
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Get("/session/{sessionID}/messages", h.handleTranscript)
	r.Delete("/session/{sessionID}", h.handleDeleteSession)
	r.Post("/chat/{sessionID}", h.handleSend)
	r.Get("/respond", h.handleRespond)
}

// handleCreateSession 创建会话，欢迎语作为第一条机器人消息写入
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.assistant.Start(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	transcript, err := h.chatSvc.LoadTranscript(r.Context(), session.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"session":       session,
		"messages":      transcript,
		"typingDelayMs": h.assistant.TypingDelay().Milliseconds(),
	})
}

// handleTranscript 返回会话消息记录
func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	transcript, err := h.chatSvc.LoadTranscript(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, transcript)
}

// handleDeleteSession 关闭会话
func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.chatSvc.DeleteSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSend 发送用户消息并返回机器人回复
func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}

	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.assistant.Send(r.Context(), chi.URLParam(r, "sessionID"), payload.Message)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, reply)
}

// handleRespond 直接调用规则引擎，不写入记录也不延迟
func (h *Handler) handleRespond(w http.ResponseWriter, r *http.Request) {
	reply := h.assistant.Respond(r.URL.Query().Get("q"))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, chatService.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chatService.ErrInvalidSender):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}
