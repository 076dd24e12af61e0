package service

import (
	"context"
	"errors"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/internal/repository/repoargs"
	"github.com/funketh/shinobu-bot/pkg/uow"
)

type WaifuService struct {
	uow       uow.UOW
	waifuRepo WaifuRepository
}

func NewWaifuService(u uow.UOW) (*WaifuService, error) {
	waifuRepo, err := uow.GetRepositoryAs[WaifuRepository](u, uow.RepositoryName(repoargs.WaifuRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &WaifuService{
		uow:       u,
		waifuRepo: waifuRepo,
	}, nil
}

// List возвращает коллекцию юзера, сначала самые редкие.
func (s *WaifuService) List(ctx context.Context, userID int64) ([]domain.Waifu, error) {
	waifus, err := s.waifuRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return waifus, nil
}

// Find ищет вайфу юзера по неточному запросу (имя персонажа). Возвращает
// лучшее совпадение или domain.ErrNoMatchingItem, если не подошло ничего.
func (s *WaifuService) Find(ctx context.Context, userID int64, query string) (*domain.Waifu, error) {
	waifus, err := s.waifuRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	names := make([]string, len(waifus))
	for i, w := range waifus {
		names[i] = w.Character.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return nil, domain.ErrNoMatchingItem
	}
	sort.Sort(ranks)

	best := waifus[ranks[0].OriginalIndex]
	return &best, nil
}

// SellBack продает вайфу обратно боту: юзеру зачисляется refund текущей
// редкости, строка владения удаляется. Оба действия в одной транзакции.
func (s *WaifuService) SellBack(ctx context.Context, waifu *domain.Waifu) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		waifuRepo, err := uow.GetAs[WaifuRepository](tx, uow.RepositoryName(repoargs.WaifuRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		if creditErr := userRepo.AddBalance(c, waifu.UserID, waifu.Rarity.Refund); creditErr != nil {
			return creditErr //nolint:wrapcheck
		}
		return waifuRepo.Delete(c, waifu.ID) //nolint:wrapcheck
	})
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}
	return nil
}

// Upgrade платно повышает редкость вайфы на один ранг. Если у текущей
// редкости нет цены апгрейда или следующего ранга не существует,
// возвращается domain.ErrNotUpgradable; если не хватает денег -
// *domain.NotEnoughMoneyError (транзакция откатывается).
func (s *WaifuService) Upgrade(ctx context.Context, waifu *domain.Waifu) (*domain.Rarity, error) {
	if waifu.Rarity.UpgradeCost == nil {
		return nil, domain.ErrNotUpgradable
	}
	cost := *waifu.Rarity.UpgradeCost

	var next *domain.Rarity
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		waifuRepo, err := uow.GetAs[WaifuRepository](tx, uow.RepositoryName(repoargs.WaifuRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		rarityRepo, err := uow.GetAs[RarityRepository](tx, uow.RepositoryName(repoargs.RarityRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		var nextErr error
		next, nextErr = rarityRepo.FindByValue(c, waifu.Rarity.Value+1)
		if nextErr != nil {
			if errors.Is(nextErr, domain.ErrRecordNotFound) {
				return domain.ErrNotUpgradable
			}
			return nextErr //nolint:wrapcheck
		}

		if debitErr := userRepo.AddBalance(c, waifu.UserID, -cost); debitErr != nil {
			return debitErr //nolint:wrapcheck
		}
		return waifuRepo.UpdateRarity(c, waifu.ID, next.Value) //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return next, nil
}
