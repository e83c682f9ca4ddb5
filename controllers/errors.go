package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lachapa-pdv/cart"
	"github.com/yeremiapane/lachapa-pdv/catalog"
	"github.com/yeremiapane/lachapa-pdv/lifecycle"
	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/store"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

var (
	errLineNotFound   = errors.New("cart line not found")
	errInvalidPayment = errors.New("invalid payment method")
)

// statusFor maps domain errors onto HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, cart.ErrEmptyCart), errors.Is(err, cart.ErrNoPaymentMethod):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrOrderNotFound), errors.Is(err, catalog.ErrProductNotFound), errors.Is(err, errLineNotFound):
		return http.StatusNotFound
	case errors.Is(err, lifecycle.ErrInvalidTransition), errors.Is(err, lifecycle.ErrFinalStatus):
		return http.StatusConflict
	case errors.Is(err, models.ErrUnknownStatus), errors.Is(err, errInvalidPayment):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondDomainError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		utils.ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	utils.RespondError(c, code, err)
}
