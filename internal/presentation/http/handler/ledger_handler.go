package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eggmandi/ledger-api/internal/application/service"
	"github.com/eggmandi/ledger-api/internal/domain/entity"
	"github.com/eggmandi/ledger-api/internal/presentation/http/dto/request"
	"github.com/eggmandi/ledger-api/internal/presentation/http/dto/response"
	"github.com/eggmandi/ledger-api/pkg/apperror"
)

// LedgerHandler handles the daily-ledger HTTP requests.
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler.
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// ListDates returns every saved date, most recent first.
func (h *LedgerHandler) ListDates(c *gin.Context) {
	dates, err := h.ledgerService.ListDates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// GetEntries returns the record for a date, optionally filtered to a single
// location. A date with no saved record yields the full default record.
func (h *LedgerHandler) GetEntries(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, apperror.ErrMissingDate)
		return
	}

	record, err := h.ledgerService.Get(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	if location := c.Query("location"); location != "" {
		c.JSON(http.StatusOK, entity.DateRecord{
			Date: record.Date,
			NECC: record.NECC,
			Rows: record.RowsFor(location),
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// SaveEntries reconciles the posted rows against the stored record for the
// date and persists the merged result.
func (h *LedgerHandler) SaveEntries(c *gin.Context) {
	var req request.SaveEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewValidationError("invalid_body", err.Error()))
		return
	}
	if req.Date == "" {
		response.Error(c, apperror.ErrMissingDate)
		return
	}

	input := &service.SaveEntriesInput{
		Date: req.Date,
		Rows: make([]service.RowPatch, 0, len(req.Rows)),
	}
	if req.NECC.Set {
		input.NECC = &req.NECC.Value
	}
	for _, row := range req.Rows {
		input.Rows = append(input.Rows, service.RowPatch{
			Location: row.Location,
			Opening:  row.Opening,
			Qty:      row.Qty,
			Closing:  row.Closing,
			NECCRate: row.NECCRate,
			PhonePe:  row.PhonePe,
			Cash:     row.Cash,
		})
	}

	record, err := h.ledgerService.Save(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"date":    record.Date,
		"rows":    len(record.Rows),
	})
}
