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

type InvoiceHandler struct {
	Service *services.InvoiceService
	PDF     *services.PDFService
}

func NewInvoiceHandler(s *services.InvoiceService, pdf *services.PDFService) *InvoiceHandler {
	return &InvoiceHandler{Service: s, PDF: pdf}
}

func (h *InvoiceHandler) invoiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvoiceNotFound):
		utils.Error(w, http.StatusNotFound, "Invoice not found")
	case errors.Is(err, services.ErrInvalidTaxType):
		utils.Error(w, http.StatusBadRequest, "Tax type must be sgstcgst or igst")
	case errors.Is(err, services.ErrInvalidStatus):
		utils.Error(w, http.StatusBadRequest, "Invalid payment status")
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req services.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inv, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		h.invoiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, inv)
}

func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req services.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inv, err := h.Service.Update(r.Context(), id, &req)
	if err != nil {
		h.invoiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	inv, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.invoiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	year := mux.Vars(r)["year"]

	invoices, err := h.Service.ListByYear(r.Context(), year)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if invoices == nil {
		invoices = []*models.Invoice{}
	}
	utils.JSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inv, err := h.Service.UpdatePaymentStatus(r.Context(), id, req.Status)
	if err != nil {
		h.invoiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) UpdateReceivedAmount(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateReceivedAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inv, err := h.Service.UpdateReceivedAmount(r.Context(), id, req.Amount)
	if err != nil {
		h.invoiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.invoiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *InvoiceHandler) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	data, filename, err := h.PDF.GenerateInvoicePDF(r.Context(), id)
	if err != nil {
		h.invoiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
