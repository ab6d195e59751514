package events

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ugochukwu16henry/foundationprototype/internal/middleware"
	"github.com/ugochukwu16henry/foundationprototype/internal/observability"
	"github.com/ugochukwu16henry/foundationprototype/internal/service/analytics"
	"github.com/ugochukwu16henry/foundationprototype/pkg/utils"
)

// Handler 埋点事件的HTTP处理器
type Handler struct {
	svc     *analytics.Service
	limiter *analytics.Limiter
}

// New 创建埋点处理器；limiter 为空时不限流
func New(svc *analytics.Service, limiter *analytics.Limiter) *Handler {
	return &Handler{svc: svc, limiter: limiter}
}

// RegisterRoutes 注册埋点相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Post("/events/click", h.handleClick)
		r.Post("/events/pageview", h.handlePageView)
	})
}

func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter != nil && !h.limiter.Allow(middleware.PeerHost(r)) {
			observability.RateLimitRejectedTotal.Inc()
			utils.RespondError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleClick 记录点击事件，事件异步上报
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	var click analytics.Click
	if err := utils.DecodeJSON(w, r, &click); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, _ := h.svc.TrackClick(click)
	utils.RespondJSON(w, http.StatusAccepted, event)
}

// handlePageView 记录页面浏览事件
func (h *Handler) handlePageView(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Path string `json:"path"`
	}
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Path == "" {
		utils.RespondError(w, http.StatusBadRequest, "path is required")
		return
	}

	event, _ := h.svc.TrackPageView(payload.Path)
	utils.RespondJSON(w, http.StatusAccepted, event)
}
