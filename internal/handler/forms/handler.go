package forms

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ugochukwu16henry/foundationprototype/internal/observability"
	"github.com/ugochukwu16henry/foundationprototype/internal/validation"
	"github.com/ugochukwu16henry/foundationprototype/pkg/utils"
)

// Handler 表单校验的HTTP处理器
type Handler struct{}

// New 创建表单校验处理器
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes 注册表单相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/forms/validate", h.handleValidate)
}

// handleValidate 校验表单字段，失败时返回 422 和逐字段原因
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Fields []validation.Field `json:"fields"`
	}

	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := validation.Validate(payload.Fields)
	if !result.Valid {
		observability.FormValidationsTotal.WithLabelValues("invalid").Inc()
		utils.RespondJSON(w, http.StatusUnprocessableEntity, result)
		return
	}

	observability.FormValidationsTotal.WithLabelValues("valid").Inc()
	utils.RespondJSON(w, http.StatusOK, result)
}
