package giving

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ugochukwu16henry/foundationprototype/internal/model/giving"
	"github.com/ugochukwu16henry/foundationprototype/pkg/utils"
)

// Handler 捐赠档位的HTTP处理器
type Handler struct {
	levels giving.Store
}

// New 创建捐赠档位处理器
func New(levels giving.Store) *Handler {
	return &Handler{levels: levels}
}

// RegisterRoutes 注册捐赠档位相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/giving-levels", h.handleList)
	r.Post("/giving/select", h.handleSelect)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.levels.List())
}

// handleSelect 返回所选档位的金额，用于预填捐赠表单
func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		LevelID string `json:"levelId"`
	}

	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.LevelID == "" {
		utils.RespondError(w, http.StatusBadRequest, "levelId is required")
		return
	}

	level, ok := h.levels.FindByID(payload.LevelID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "giving level not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"levelId": level.ID,
		"amount":  level.Amount,
	})
}
