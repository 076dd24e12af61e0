package api

import (
	"context"

	"github.com/funketh/shinobu-bot/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserServicer interface {
	GetBalance(ctx context.Context, userID int64) (int64, error)
}

type WaifuServicer interface {
	List(ctx context.Context, userID int64) ([]domain.Waifu, error)
}

type PackServicer interface {
	ListPacks(ctx context.Context) ([]domain.Pack, error)
}
