package handlers

import (
	"net/http"

	"pos_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService services.InventoryService
}

func NewInventoryHandler(inventoryService services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) ListAll(c *gin.Context) {
	inventory, err := h.inventoryService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "inventory": inventory})
}

func (h *InventoryHandler) ListByBranch(c *gin.Context) {
	branchID, ok := parseIDParam(c, "branchId")
	if !ok {
		return
	}

	inventory, err := h.inventoryService.GetByBranch(branchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "inventory": inventory})
}

func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.inventoryService.GetLowStock()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "low_stock_items": items, "count": len(items)})
}

func (h *InventoryHandler) Restock(c *gin.Context) {
	var req struct {
		MenuItemID uint `json:"menu_item_id"`
		BranchID   uint `json:"branch_id"`
		Quantity   int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.MenuItemID == 0 || req.BranchID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "menu_item_id, branch_id and quantity are required"})
		return
	}

	record, err := h.inventoryService.Restock(req.MenuItemID, req.BranchID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"quantity_added": req.Quantity,
		"new_stock":      record.Quantity,
	})
}

func (h *InventoryHandler) UpdateThreshold(c *gin.Context) {
	var req struct {
		MenuItemID uint `json:"menu_item_id"`
		BranchID   uint `json:"branch_id"`
		Threshold  int  `json:"threshold"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.MenuItemID == 0 || req.BranchID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "menu_item_id and branch_id are required"})
		return
	}

	if err := h.inventoryService.UpdateThreshold(req.MenuItemID, req.BranchID, req.Threshold); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Stock threshold updated"})
}
