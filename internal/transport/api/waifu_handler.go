package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WaifuHandler struct {
	svs WaifuServicer
}

func NewWaifuHandler(svs WaifuServicer) *WaifuHandler {
	return &WaifuHandler{svs: svs}
}

type WaifuResponseItem struct {
	Name     string  `json:"name"`
	Series   string  `json:"series"`
	Rarity   string  `json:"rarity"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

func (w *WaifuHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	waifus, err := w.svs.List(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]WaifuResponseItem, len(waifus))
	for i, waifu := range waifus {
		response[i] = WaifuResponseItem{
			Name:     waifu.Character.Name,
			Series:   waifu.Character.Series,
			Rarity:   waifu.Rarity.Name,
			ImageURL: waifu.Character.ImageURL,
		}
	}

	c.JSON(http.StatusOK, response)
}
