// controllers/item_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"Gin_redis_rental_registry/app"
	"Gin_redis_rental_registry/models"
	"Gin_redis_rental_registry/registry"

	"github.com/gin-gonic/gin"
)

type ItemController struct{ *Srv }

func NewItemController(s *Srv) *ItemController { return &ItemController{Srv: s} }

// POST /api/items
// 管理员上架一件物品（registry 内部还会再校验一次身份）
func (ic *ItemController) CreateItem(c *gin.Context) {
	var in struct {
		Category  string `json:"category" binding:"required"`
		DailyRate int64  `json:"dailyRate" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	cat, ok := models.ParseCategory(in.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, app.H{"error": "unknown category"})
		return
	}

	idx, err := ic.Reg.ListItem(app.Identity(c), cat, in.DailyRate)
	if err != nil {
		if errors.Is(err, registry.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, app.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	it, _ := ic.Reg.GetItem(idx)
	c.JSON(http.StatusCreated, app.H{"index": idx, "item": it})
}

// GET /api/items
func (ic *ItemController) ListItems(c *gin.Context) {
	items := ic.Reg.Items()
	c.JSON(http.StatusOK, app.H{"total": len(items), "items": items})
}

// GET /api/items/:index
func (ic *ItemController) GetItem(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid index"})
		return
	}
	it, err := ic.Reg.GetItem(idx)
	if err != nil {
		c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"index": idx, "item": it})
}

// GET /api/availability?category=
func (ic *ItemController) Availability(c *gin.Context) {
	cat, ok := models.ParseCategory(c.Query("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, app.H{"error": "unknown category"})
		return
	}
	c.JSON(http.StatusOK, app.H{
		"category":  cat,
		"available": ic.Reg.IsAvailable(cat),
	})
}

// POST /api/rentals
// 租下某类目下最靠前的可用物品
func (ic *ItemController) Rent(c *gin.Context) {
	var in struct {
		Category string `json:"category" binding:"required"`
		Days     int    `json:"days" binding:"required,gte=1"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	cat, ok := models.ParseCategory(in.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, app.H{"error": "unknown category"})
		return
	}

	idx, err := ic.Reg.RentItem(app.Identity(c), cat, in.Days)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrDurationExceeded):
			c.JSON(http.StatusUnprocessableEntity, app.H{"error": err.Error()})
		case errors.Is(err, registry.ErrNoAvailability):
			c.JSON(http.StatusConflict, app.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		}
		return
	}
	it, _ := ic.Reg.GetItem(idx)
	c.JSON(http.StatusCreated, app.H{"index": idx, "item": it})
}

// POST /api/items/:index/expire
// 任何登录用户都能触发过期回收，不是管理员特权
func (ic *ItemController) Expire(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid index"})
		return
	}
	if err := ic.Reg.ExpireItem(idx); err != nil {
		switch {
		case errors.Is(err, registry.ErrIndexOutOfRange):
			c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
		case errors.Is(err, registry.ErrNotRented):
			c.JSON(http.StatusConflict, app.H{"error": err.Error()})
		case errors.Is(err, registry.ErrNotYetEligible):
			c.JSON(http.StatusUnprocessableEntity, app.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		}
		return
	}
	it, _ := ic.Reg.GetItem(idx)
	c.JSON(http.StatusOK, app.H{"index": idx, "item": it})
}
