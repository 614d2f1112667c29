package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/NITHINPOLI04/VMEW/internal/finance"
	"github.com/NITHINPOLI04/VMEW/pkg/utils"
)

type UtilsHandler struct{}

func NewUtilsHandler() *UtilsHandler {
	return &UtilsHandler{}
}

type numberToWordsRequest struct {
	Amount float64 `json:"amount"`
}

type numberToWordsResponse struct {
	Words string `json:"words"`
}

// NumberToWords serves POST /api/utils/number-to-words: the standalone
// amount-in-words conversion the preview screen uses for ad-hoc figures.
func (h *UtilsHandler) NumberToWords(w http.ResponseWriter, r *http.Request) {
	var req numberToWordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	utils.JSON(w, http.StatusOK, numberToWordsResponse{
		Words: finance.ConvertToWords(req.Amount),
	})
}
