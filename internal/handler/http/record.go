package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RecordHandler interface {
	GetRecord(w http.ResponseWriter, r *http.Request)
	GetAllRecords(w http.ResponseWriter, r *http.Request)
	AddRecord(w http.ResponseWriter, r *http.Request)
	UpdateData(w http.ResponseWriter, r *http.Request)
	DeleteData(w http.ResponseWriter, r *http.Request)
}

type recordHandlerImpl struct {
	recordService record.RecordService
}

func NewRecordHandler(recordService record.RecordService) RecordHandler {
	return &recordHandlerImpl{recordService: recordService}
}

// GetRecord implements RecordHandler
func (h *recordHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rec, err := h.recordService.GetRecord(r.Context(), chi.URLParam(r, "table"), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]any{"record": rec})
}

// GetAllRecords implements RecordHandler
func (h *recordHandlerImpl) GetAllRecords(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.recordService.GetAllRecords(r.Context(), chi.URLParam(r, "table"), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, map[string]any{"records": records})
}

// AddRecord implements RecordHandler
func (h *recordHandlerImpl) AddRecord(w http.ResponseWriter, r *http.Request) {
	var req record.AddRecordRequest
	if err := record.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("AddRecord decode error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp, err := h.recordService.AddRecord(r.Context(), chi.URLParam(r, "table"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, resp)
}

// UpdateData implements RecordHandler
func (h *recordHandlerImpl) UpdateData(w http.ResponseWriter, r *http.Request) {
	var req record.UpdateDataRequest
	if err := record.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("UpdateData decode error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp, err := h.recordService.UpdateData(r.Context(), chi.URLParam(r, "table"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, resp)
}

// DeleteData implements RecordHandler
func (h *recordHandlerImpl) DeleteData(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.recordService.DeleteData(r.Context(), chi.URLParam(r, "table"), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, resp)
}
