package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/funketh/shinobu-bot/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup   = "/api"
	BalanceRoute = "/user/balance"
	WaifusRoute  = "/user/waifus"
	PacksRoute   = "/packs"
)

type RouterArgs struct {
	Logger       *logrus.Logger
	UserService  UserServicer
	WaifuService WaifuServicer
	PackService  PackServicer
	Currency     string
	JWTSecretKey []byte
}

// New собирает read-only API для просмотра баланса и коллекции в браузере.
// Токены выдает бот, все роуты требуют авторизации.
func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	balanceHandler := NewBalanceHandler(args.UserService, args.Currency)
	waifuHandler := NewWaifuHandler(args.WaifuService)
	packHandler := NewPackHandler(args.PackService, args.Currency)

	apiGroup := r.Group(RouteGroup)
	apiGroup.Use(middlewares.AuthRequired(args.JWTSecretKey))

	apiGroup.GET(BalanceRoute, balanceHandler.Index)
	apiGroup.GET(WaifusRoute, waifuHandler.Index)
	apiGroup.GET(PacksRoute, packHandler.Index)
	return r
}
