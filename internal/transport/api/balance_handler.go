package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BalanceHandler struct {
	svs      UserServicer
	currency string
}

func NewBalanceHandler(svs UserServicer, currency string) *BalanceHandler {
	return &BalanceHandler{
		svs:      svs,
		currency: currency,
	}
}

type BalanceResponse struct {
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

func (b *BalanceHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.svs.GetBalance(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Balance:  balance,
		Currency: b.currency,
	})
}
