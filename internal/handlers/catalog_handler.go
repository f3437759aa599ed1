package handlers

import (
	"net/http"

	"pos_manager/internal/models"
	"pos_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	menuService     services.MenuService
	branchService   services.BranchService
	customerService services.CustomerService
}

func NewCatalogHandler(menuService services.MenuService, branchService services.BranchService, customerService services.CustomerService) *CatalogHandler {
	return &CatalogHandler{menuService: menuService, branchService: branchService, customerService: customerService}
}

func (h *CatalogHandler) GetMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.menuService.GetMenuItem(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "menu_item": item})
}

func (h *CatalogHandler) ListMenuItems(c *gin.Context) {
	items, err := h.menuService.GetAllMenuItems()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "menu_items": items})
}

func (h *CatalogHandler) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request format"})
		return
	}
	if err := h.menuService.CreateMenuItem(&item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "menu_item": item})
}

func (h *CatalogHandler) ListBranches(c *gin.Context) {
	branches, err := h.branchService.GetAllBranches()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "branches": branches})
}

func (h *CatalogHandler) CreateBranch(c *gin.Context) {
	var branch models.Branch
	if err := c.ShouldBindJSON(&branch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request format"})
		return
	}
	if err := h.branchService.CreateBranch(&branch); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "branch": branch})
}

func (h *CatalogHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.GetAllCustomers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customers": customers})
}

func (h *CatalogHandler) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request format"})
		return
	}
	if err := h.customerService.CreateCustomer(&customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "customer": customer})
}
