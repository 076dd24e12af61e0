package service

import (
	"fmt"

	"github.com/funketh/shinobu-bot/pkg/uow"
)

type AppServices struct {
	UserService  *UserService
	PackService  *PackService
	WaifuService *WaifuService
	TradeService *TradeService
}

type FactoryArgs struct {
	Currency string
	Income   int64
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, args.Income)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	packService, packServiceErr := NewPackService(unitOfWork)
	if packServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", packServiceErr.Error())
	}

	waifuService, waifuServiceErr := NewWaifuService(unitOfWork)
	if waifuServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", waifuServiceErr.Error())
	}

	tradeService := NewTradeService(unitOfWork, args.Currency)

	return &AppServices{
		UserService:  userService,
		PackService:  packService,
		WaifuService: waifuService,
		TradeService: tradeService,
	}, nil
}
