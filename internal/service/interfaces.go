package service

import (
	"context"
	"time"

	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	Find(ctx context.Context, id int64) (*domain.User, error)
	CreateIfMissing(ctx context.Context, id int64) error
	AddBalance(ctx context.Context, id int64, amount int64) error
	SetLastWithdrawal(ctx context.Context, id int64, at time.Time) error
}

type RarityRepository interface {
	All(ctx context.Context) ([]domain.Rarity, error)
	FindByValue(ctx context.Context, value int) (*domain.Rarity, error)
}

type PackRepository interface {
	FindAvailableByName(ctx context.Context, name string) (*domain.Pack, error)
	AllAvailable(ctx context.Context) ([]domain.Pack, error)
}

type CharacterRepository interface {
	EligibleForPack(ctx context.Context, packID int64, rarityValue int) ([]domain.PackCharacter, error)
}

type WaifuRepository interface {
	FindByUserAndCharacter(ctx context.Context, userID, characterID int64) (*domain.Waifu, error)
	Create(ctx context.Context, args repoargs.WaifuCreate) (int64, error)
	UpdateRarity(ctx context.Context, id int64, rarityValue int) error
	UpdateOwner(ctx context.Context, id, newOwnerID int64) error
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Waifu, error)
}
