package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/services"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

// OrderController serves the Kanban board.
type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// GetAllOrders -> GET /pedidos?q=<id, name or phone>
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of orders", oc.Service.ListOrders(c.Query("q")))
}

// GetBoard -> GET /pedidos/board?q=, the orders split into the three columns.
func (oc *OrderController) GetBoard(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Order board", oc.Service.Board(c.Query("q")))
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	card, err := oc.Service.GetOrder(c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", card)
}

// UpdateOrderStatus -> PATCH /pedidos/:id/status. Any known status is accepted.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	status, err := models.ParseStatus(body.Status)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	card, notice, err := oc.Service.MoveOrder(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondWithNotice(c, http.StatusOK, "Order status updated", card, notice)
}

// AdvanceOrder -> POST /pedidos/:id/advance, moves the order one column right.
func (oc *OrderController) AdvanceOrder(c *gin.Context) {
	card, notice, err := oc.Service.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondWithNotice(c, http.StatusOK, "Order advanced", card, notice)
}

// PrintReceipt -> POST /pedidos/:id/receipt. Printing happens in the background.
func (oc *OrderController) PrintReceipt(c *gin.Context) {
	receipt, err := oc.Service.PrintReceipt(c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusAccepted, "Receipt sent to printer", receipt)
}
