package consent

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	consentService "github.com/ugochukwu16henry/foundationprototype/internal/service/consent"
	"github.com/ugochukwu16henry/foundationprototype/pkg/utils"
)

// Handler cookie同意的HTTP处理器
type Handler struct {
	svc *consentService.Service
}

// New 创建cookie同意处理器
func New(svc *consentService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 注册cookie同意相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/consent/{visitorID}", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Post("/", h.handleAccept)
		r.Delete("/", h.handleRevoke)
	})
}

type consentResponse struct {
	consentService.Record
	ShowBanner    bool  `json:"showBanner"`
	BannerDelayMs int64 `json:"bannerDelayMs"`
}

func (h *Handler) view(record consentService.Record) consentResponse {
	return consentResponse{
		Record:        record,
		ShowBanner:    !record.Accepted,
		BannerDelayMs: h.svc.BannerDelay().Milliseconds(),
	}
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	record := h.svc.Lookup(chi.URLParam(r, "visitorID"))
	utils.RespondJSON(w, http.StatusOK, h.view(record))
}

func (h *Handler) handleAccept(w http.ResponseWriter, r *http.Request) {
	record, err := h.svc.Accept(chi.URLParam(r, "visitorID"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, consentService.ErrVisitorRequired) {
			status = http.StatusBadRequest
		}
		utils.RespondError(w, status, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.view(record))
}

func (h *Handler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	h.svc.Revoke(chi.URLParam(r, "visitorID"))
	w.WriteHeader(http.StatusNoContent)
}
