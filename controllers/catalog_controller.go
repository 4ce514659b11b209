package controllers

import (
	"net/http"

	"hotel-pms/services"
	"hotel-pms/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogSvc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{CatalogSvc: svc}
}

type ServiceItemPayload struct {
	ItemName string `json:"itemName"`
	Price    int64  `json:"price"`
}

func (ctl *CatalogController) ListItems(c *gin.Context) {
	items, err := ctl.CatalogSvc.ListItems()
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (ctl *CatalogController) CreateItem(c *gin.Context) {
	var payload ServiceItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid item payload")
		return
	}

	item, err := ctl.CatalogSvc.CreateItem(payload.ItemName, payload.Price)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

func (ctl *CatalogController) UpdateItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload ServiceItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid item payload")
		return
	}

	item, err := ctl.CatalogSvc.UpdateItem(id, payload.ItemName, payload.Price)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

func (ctl *CatalogController) DeleteItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctl.CatalogSvc.DeleteItem(id); err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

type ChargePayload struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity"`
}

// AddCharge posts a catalog item onto an occupied stay.
func (ctl *CatalogController) AddCharge(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var payload ChargePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid charge payload")
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	charge, err := ctl.CatalogSvc.AddCharge(id, payload.ItemID, payload.Quantity)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, charge)
}

func (ctl *CatalogController) ListCharges(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	charges, err := ctl.CatalogSvc.ChargesFor(id)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, charges)
}
