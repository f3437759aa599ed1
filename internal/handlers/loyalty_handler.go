package handlers

import (
	"net/http"
	"strconv"

	"pos_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type LoyaltyHandler struct {
	loyaltyService services.LoyaltyService
}

func NewLoyaltyHandler(loyaltyService services.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyService: loyaltyService}
}

func (h *LoyaltyHandler) GetBalance(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}

	balance, err := h.loyaltyService.CheckBalance(customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "balance": balance})
}

func (h *LoyaltyHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.loyaltyService.GetAllAccounts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "accounts": accounts})
}

func (h *LoyaltyHandler) TopMembers(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	members, err := h.loyaltyService.GetTopMembers(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "top_members": members, "count": len(members)})
}
