package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/NITHINPOLI04/VMEW/internal/models"
	"github.com/NITHINPOLI04/VMEW/internal/services"
	"github.com/NITHINPOLI04/VMEW/pkg/utils"
)

type TemplateHandler struct {
	Service *services.TemplateService
}

func NewTemplateHandler(s *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{Service: s}
}

// GetTemplate serves GET /api/templates/{type}. Unsaved templates come back
// as empty shapes, not 404s, so the settings forms always render.
func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	switch mux.Vars(r)["type"] {
	case models.TemplateLetterhead:
		lh, err := h.Service.GetLetterhead(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, lh)
	case models.TemplateDefaultInfo:
		di, err := h.Service.GetDefaultInfo(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, di)
	default:
		utils.Error(w, http.StatusNotFound, "Unknown template type")
	}
}

func (h *TemplateHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	switch mux.Vars(r)["type"] {
	case models.TemplateLetterhead:
		var lh models.Letterhead
		if err := json.NewDecoder(r.Body).Decode(&lh); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := h.Service.UpdateLetterhead(r.Context(), &lh); err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, lh)
	case models.TemplateDefaultInfo:
		var di models.DefaultInfo
		if err := json.NewDecoder(r.Body).Decode(&di); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := h.Service.UpdateDefaultInfo(r.Context(), &di); err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, di)
	default:
		utils.Error(w, http.StatusNotFound, "Unknown template type")
	}
}
