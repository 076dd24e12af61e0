package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/internal/repository/repoargs"
	"github.com/funketh/shinobu-bot/pkg/uow"
)

// Duplicate - исход разрешения дубликата при покупке пака. Закрытое
// множество: Upgrade либо Refund; nil означает, что персонаж выпал впервые.
type Duplicate interface {
	isDuplicate()
}

// Upgrade - у юзера уже была эта вайфа той же редкости с авто-апгрейдом,
// строка повышена на один ранг.
type Upgrade struct {
	To domain.Rarity
}

// Refund - дубликат компенсирован деньгами: на строке остается старшая из
// двух редкостей, юзеру возвращается refund младшей.
type Refund struct {
	Amount int64
}

func (Upgrade) isDuplicate() {}
func (Refund) isDuplicate()  {}

type PackService struct {
	uow      uow.UOW
	packRepo PackRepository
	rnd      func() float64
}

func NewPackService(u uow.UOW) (*PackService, error) {
	packRepo, err := uow.GetRepositoryAs[PackRepository](u, uow.RepositoryName(repoargs.PackRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &PackService{
		uow:      u,
		packRepo: packRepo,
		rnd:      defaultRand,
	}, nil
}

// ListPacks возвращает доступные сейчас паки.
func (s *PackService) ListPacks(ctx context.Context) ([]domain.Pack, error) {
	packs, err := s.packRepo.AllAvailable(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return packs, nil
}

// BuyPack покупает и открывает пак: списывает стоимость, бросает редкость и
// персонажа взвешенным жребием и разрешает конфликт владения. Все шаги
// выполняются в одной транзакции - при любой ошибке не остается ни списания,
// ни частичных строк.
//
// Возможные ошибки: domain.ErrUnknownPackName (нет доступного пака с таким
// именем), *domain.NotEnoughMoneyError (не хватает на стоимость пака),
// domain.ErrEmptyPack (для выпавшей редкости в паке нет персонажей - покупка
// отменяется целиком).
func (s *PackService) BuyPack(ctx context.Context, userID int64, packName string) (*domain.Waifu, Duplicate, error) {
	var waifu *domain.Waifu
	var duplicate Duplicate

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		packRepo, err := uow.GetAs[PackRepository](tx, uow.RepositoryName(repoargs.PackRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		pack, packErr := packRepo.FindAvailableByName(c, packName)
		if packErr != nil {
			if errors.Is(packErr, domain.ErrRecordNotFound) {
				return domain.ErrUnknownPackName
			}
			return packErr //nolint:wrapcheck
		}

		if debitErr := userRepo.AddBalance(c, userID, -pack.Cost); debitErr != nil {
			return debitErr //nolint:wrapcheck
		}

		character, rarity, pickErr := s.pickFromPack(c, tx, pack.ID)
		if pickErr != nil {
			return pickErr
		}

		waifu, duplicate, err = s.resolveOwnership(c, tx, userID, character, rarity)
		return err
	})

	if txErr != nil {
		return nil, nil, txErr //nolint:wrapcheck
	}
	return waifu, duplicate, nil
}

// pickFromPack бросает редкость по весам всех редкостей, затем персонажа по
// весам подходящих для пака и выпавшей редкости.
func (s *PackService) pickFromPack(
	ctx context.Context,
	tx uow.TX,
	packID int64,
) (*domain.Character, *domain.Rarity, error) {
	rarityRepo, err := uow.GetAs[RarityRepository](tx, uow.RepositoryName(repoargs.RarityRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	characterRepo, err := uow.GetAs[CharacterRepository](tx, uow.RepositoryName(repoargs.CharacterRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	rarities, rarityErr := rarityRepo.All(ctx)
	if rarityErr != nil {
		return nil, nil, rarityErr //nolint:wrapcheck
	}
	rarity, pickErr := pickWeighted(rarities, func(r domain.Rarity) float64 { return r.Weight }, s.rnd)
	if pickErr != nil {
		return nil, nil, fmt.Errorf("picking rarity: %w", pickErr)
	}

	characters, charErr := characterRepo.EligibleForPack(ctx, packID, rarity.Value)
	if charErr != nil {
		return nil, nil, charErr //nolint:wrapcheck
	}
	picked, pickErr := pickWeighted(characters, func(pc domain.PackCharacter) float64 { return pc.Weight }, s.rnd)
	if pickErr != nil {
		// Для выпавшей редкости в паке нет ни одного персонажа - покупку
		// честнее отменить целиком, чем молча перебрасывать жребий.
		return nil, nil, domain.ErrEmptyPack
	}

	return &picked.Character, &rarity, nil
}

// resolveOwnership вставляет новую строку владения либо разрешает дубликат.
// Инвариант: на пару (юзер, персонаж) никогда не появляется второй строки.
func (s *PackService) resolveOwnership(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	character *domain.Character,
	rarity *domain.Rarity,
) (*domain.Waifu, Duplicate, error) {
	waifuRepo, err := uow.GetAs[WaifuRepository](tx, uow.RepositoryName(repoargs.WaifuRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	rarityRepo, err := uow.GetAs[RarityRepository](tx, uow.RepositoryName(repoargs.RarityRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	existing, findErr := waifuRepo.FindByUserAndCharacter(ctx, userID, character.ID)
	if findErr != nil {
		if !errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, nil, findErr //nolint:wrapcheck
		}
		// Первое выпадение персонажа: новая строка на выпавшей редкости.
		id, createErr := waifuRepo.Create(ctx, repoargs.WaifuCreate{
			UserID:      userID,
			CharacterID: character.ID,
			RarityValue: rarity.Value,
		})
		if createErr != nil {
			return nil, nil, createErr //nolint:wrapcheck
		}
		return &domain.Waifu{ID: id, UserID: userID, Character: *character, Rarity: *rarity}, nil, nil
	}

	old := existing.Rarity

	if old.Value == rarity.Value && old.AutoUpgrade {
		next, nextErr := rarityRepo.FindByValue(ctx, old.Value+1)
		switch {
		case nextErr == nil:
			if updErr := waifuRepo.UpdateRarity(ctx, existing.ID, next.Value); updErr != nil {
				return nil, nil, updErr //nolint:wrapcheck
			}
			existing.Rarity = *next
			return existing, Upgrade{To: *next}, nil
		case !errors.Is(nextErr, domain.ErrRecordNotFound):
			return nil, nil, nextErr //nolint:wrapcheck
		}
		// Выше редкости нет - дубликат обрабатывается как обычный возврат.
	}

	// На строке остается старшая из двух редкостей, возврат - за младшую.
	lower, higher := old, *rarity
	if higher.Value < lower.Value {
		lower, higher = higher, lower
	}
	if higher.Value > old.Value {
		if updErr := waifuRepo.UpdateRarity(ctx, existing.ID, higher.Value); updErr != nil {
			return nil, nil, updErr //nolint:wrapcheck
		}
		existing.Rarity = higher
	}
	if creditErr := userRepo.AddBalance(ctx, userID, lower.Refund); creditErr != nil {
		return nil, nil, creditErr //nolint:wrapcheck
	}
	return existing, Refund{Amount: lower.Refund}, nil
}
