package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lachapa-pdv/cart"
	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/services"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

// PDVController serves the order-entry screen. Each register works on its own
// cart, addressed by the :session route parameter.
type PDVController struct {
	Service *services.OrderService
}

func NewPDVController(svc *services.OrderService) *PDVController {
	return &PDVController{Service: svc}
}

func (pc *PDVController) engine(c *gin.Context) *cart.Engine {
	return pc.Service.Carts.Session(c.Param("session"))
}

func (pc *PDVController) respondCart(c *gin.Context, message string) {
	utils.RespondJSON(c, http.StatusOK, message, pc.Service.Cart(c.Param("session")))
}

// openLine returns the session engine when it holds the line.
// Unknown sessions are not opened.
func (pc *PDVController) openLine(c *gin.Context) (*cart.Engine, bool) {
	e, ok := pc.Service.Carts.Lookup(c.Param("session"))
	if !ok || !hasLine(e, c.Param("line_id")) {
		respondDomainError(c, fmt.Errorf("%w: %s", errLineNotFound, c.Param("line_id")))
		return nil, false
	}
	return e, true
}

func hasLine(e *cart.Engine, lineID string) bool {
	for _, l := range e.Snapshot().Lines {
		if l.ID == lineID {
			return true
		}
	}
	return false
}

func (pc *PDVController) GetCart(c *gin.Context) {
	pc.respondCart(c, "Cart detail")
}

// AddItem -> POST /pdv/:session/items
func (pc *PDVController) AddItem(c *gin.Context) {
	var body struct {
		ProductID int    `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if _, err := pc.Service.AddItem(c.Param("session"), body.ProductID, body.Quantity, body.Notes); err != nil {
		respondDomainError(c, err)
		return
	}
	pc.respondCart(c, "Item added")
}

// UpdateItem -> PATCH /pdv/:session/items/:line_id with {"quantity": n}.
// Quantities below 1 leave the line unchanged.
func (pc *PDVController) UpdateItem(c *gin.Context) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	e, ok := pc.openLine(c)
	if !ok {
		return
	}
	if !e.SetQuantity(c.Param("line_id"), body.Quantity) {
		pc.respondCart(c, "Quantity unchanged")
		return
	}
	pc.respondCart(c, "Quantity updated")
}

func (pc *PDVController) IncrementItem(c *gin.Context) {
	pc.step(c, (*cart.Engine).Increment)
}

func (pc *PDVController) DecrementItem(c *gin.Context) {
	pc.step(c, (*cart.Engine).Decrement)
}

func (pc *PDVController) step(c *gin.Context, apply func(*cart.Engine, string) bool) {
	e, ok := pc.openLine(c)
	if !ok {
		return
	}
	if !apply(e, c.Param("line_id")) {
		pc.respondCart(c, "Quantity unchanged")
		return
	}
	pc.respondCart(c, "Quantity updated")
}

// RemoveItem is idempotent, removing an unknown line succeeds.
func (pc *PDVController) RemoveItem(c *gin.Context) {
	if e, ok := pc.Service.Carts.Lookup(c.Param("session")); ok {
		e.RemoveItem(c.Param("line_id"))
	}
	pc.respondCart(c, "Item removed")
}

// SetCustomer -> PUT /pdv/:session/customer. An empty customer clears it.
func (pc *PDVController) SetCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if customer == (models.Customer{}) {
		pc.engine(c).SetCustomer(nil)
		pc.respondCart(c, "Customer cleared")
		return
	}
	pc.engine(c).SetCustomer(&customer)
	pc.respondCart(c, "Customer updated")
}

func (pc *PDVController) ClearCustomer(c *gin.Context) {
	if e, ok := pc.Service.Carts.Lookup(c.Param("session")); ok {
		e.SetCustomer(nil)
	}
	pc.respondCart(c, "Customer cleared")
}

func (pc *PDVController) SetPaymentMethod(c *gin.Context) {
	var body struct {
		PaymentMethod models.PaymentMethod `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.PaymentMethod != models.PaymentNone && !body.PaymentMethod.Valid() {
		respondDomainError(c, fmt.Errorf("%w: %q", errInvalidPayment, body.PaymentMethod))
		return
	}
	pc.engine(c).SetPaymentMethod(body.PaymentMethod)
	pc.respondCart(c, "Payment method updated")
}

func (pc *PDVController) SetNotes(c *gin.Context) {
	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	pc.engine(c).SetNotes(body.Notes)
	pc.respondCart(c, "Notes updated")
}

// Submit -> POST /pdv/:session/submit. Answers 422 while the cart is empty or
// has no payment method.
func (pc *PDVController) Submit(c *gin.Context) {
	order, notice, err := pc.Service.Submit(c.Request.Context(), c.Param("session"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondWithNotice(c, http.StatusCreated, "Order submitted", order, notice)
}

// ClearCart -> DELETE /pdv/:session/cart. Discards the cart and closes the session.
func (pc *PDVController) ClearCart(c *gin.Context) {
	pc.Service.CloseSession(c.Param("session"))
	pc.respondCart(c, "Cart cleared")
}
