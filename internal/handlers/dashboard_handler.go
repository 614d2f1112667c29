package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/NITHINPOLI04/VMEW/internal/services"
	"github.com/NITHINPOLI04/VMEW/pkg/utils"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

// GetSummary serves GET /api/dashboard/{year}?month=N. Month is a calendar
// month (1-12); omitted or invalid values mean the whole financial year.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	year := mux.Vars(r)["year"]

	month := 0
	if m := r.URL.Query().Get("month"); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			month = n
		}
	}

	summary, err := h.Service.Summary(r.Context(), year, month)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, summary)
}
