package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eggmandi/ledger-api/internal/application/service"
)

// RevenueHandler handles the myBillBook revenue lookups.
type RevenueHandler struct {
	revenueService *service.RevenueService
}

// NewRevenueHandler creates a new revenue handler.
func NewRevenueHandler(revenueService *service.RevenueService) *RevenueHandler {
	return &RevenueHandler{revenueService: revenueService}
}

// GetRevenue returns the revenue figure for a location. The date query
// parameter is accepted for when the real billing integration lands; the
// current figures are synthetic.
func (h *RevenueHandler) GetRevenue(c *gin.Context) {
	location, revenue := h.revenueService.Lookup(c.Query("location"))
	c.JSON(http.StatusOK, gin.H{
		"location": location,
		"revenue":  revenue,
	})
}
