package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type PackHandler struct {
	svs      PackServicer
	currency string
}

func NewPackHandler(svs PackServicer, currency string) *PackHandler {
	return &PackHandler{
		svs:      svs,
		currency: currency,
	}
}

type PackResponseItem struct {
	Name        string  `json:"name"`
	Cost        int64   `json:"cost"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	EndDate     *string `json:"endDate,omitempty"`
}

func (p *PackHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	packs, err := p.svs.ListPacks(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]PackResponseItem, len(packs))
	for i, pack := range packs {
		item := PackResponseItem{
			Name:        pack.Name,
			Cost:        pack.Cost,
			Currency:    p.currency,
			Description: pack.Description,
		}
		if pack.EndDate != nil {
			endDate := pack.EndDate.Format(time.DateOnly)
			item.EndDate = &endDate
		}
		response[i] = item
	}

	c.JSON(http.StatusOK, response)
}
