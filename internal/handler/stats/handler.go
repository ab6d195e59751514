package stats

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ugochukwu16henry/foundationprototype/internal/analysis/counter"
	"github.com/ugochukwu16henry/foundationprototype/pkg/utils"
)

// Handler 统计数字及计数动画的HTTP处理器
type Handler struct {
	stats []counter.Stat
	tick  time.Duration
}

// New 创建统计处理器
func New(stats []counter.Stat, tick time.Duration) *Handler {
	return &Handler{
		stats: append([]counter.Stat(nil), stats...),
		tick:  tick,
	}
}

// RegisterRoutes 注册统计相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stats", h.handleList)
	r.Get("/stats/{name}/animate", h.handleAnimate)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.stats)
}

func (h *Handler) find(name string) (counter.Stat, bool) {
	for _, stat := range h.stats {
		if stat.Name == name {
			return stat, true
		}
	}
	return counter.Stat{}, false
}

// handleAnimate 通过SSE逐帧推送计数动画
func (h *Handler) handleAnimate(w http.ResponseWriter, r *http.Request) {
	stat, ok := h.find(chi.URLParam(r, "name"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "stat not found")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)

	err := counter.Animate(r.Context(), stat.Count, stat.Suffix, h.tick, func(frame string) error {
		return utils.SendSSEEvent(w, flusher, "frame", map[string]string{"text": frame})
	})
	if err != nil {
		log.Printf("[stats] animation for %s stopped: %v", stat.Name, err)
		return
	}

	if err := utils.SendSSEEvent(w, flusher, "end", map[string]string{"text": stat.Text()}); err != nil {
		log.Printf("[stats] failed to send end event: %v", err)
	}
}
