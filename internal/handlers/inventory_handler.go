package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/NITHINPOLI04/VMEW/internal/models"
	"github.com/NITHINPOLI04/VMEW/internal/services"
	"github.com/NITHINPOLI04/VMEW/pkg/utils"
)

type InventoryHandler struct {
	Service *services.InventoryService
	Export  *services.ExportService
}

func NewInventoryHandler(s *services.InventoryService, export *services.ExportService) *InventoryHandler {
	return &InventoryHandler{Service: s, Export: export}
}

func (h *InventoryHandler) inventoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		utils.Error(w, http.StatusNotFound, "Inventory item not found")
	case errors.Is(err, services.ErrInvalidTransaction):
		utils.Error(w, http.StatusBadRequest, "Transaction type must be Sales or Purchase")
	case errors.Is(err, services.ErrInvalidTaxType):
		utils.Error(w, http.StatusBadRequest, "Tax type must be sgstcgst or igst")
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item models.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.Create(r.Context(), &item); err != nil {
		h.inventoryError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, item)
}

func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var item models.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.Update(r.Context(), id, &item); err != nil {
		h.inventoryError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	item, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.inventoryError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	year := mux.Vars(r)["year"]

	items, err := h.Service.ListByYear(r.Context(), year)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if items == nil {
		items = []*models.InventoryItem{}
	}
	utils.JSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.inventoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *InventoryHandler) ExportYear(w http.ResponseWriter, r *http.Request) {
	year := mux.Vars(r)["year"]

	data, filename, err := h.Export.ExportInventoryYear(r.Context(), year)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
