package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/internal/repository/repoargs"
	"github.com/funketh/shinobu-bot/internal/service/mocks"
	"github.com/funketh/shinobu-bot/pkg/uow"
	uowmocks "github.com/funketh/shinobu-bot/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type PackServiceTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockUOW           *uowmocks.MockUOW
	mockTX            *uowmocks.MockTX
	mockPackRepo      *mocks.MockPackRepository
	mockUserRepo      *mocks.MockUserRepository
	mockRarityRepo    *mocks.MockRarityRepository
	mockCharacterRepo *mocks.MockCharacterRepository
	mockWaifuRepo     *mocks.MockWaifuRepository
	service           *PackService

	pack      domain.Pack
	common    domain.Rarity
	rare      domain.Rarity
	legendary domain.Rarity
	character domain.Character
}

func TestPackServiceSuite(t *testing.T) {
	suite.Run(t, new(PackServiceTestSuite))
}

func (s *PackServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockPackRepo = mocks.NewMockPackRepository(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockRarityRepo = mocks.NewMockRarityRepository(s.mockCtrl)
	s.mockCharacterRepo = mocks.NewMockCharacterRepository(s.mockCtrl)
	s.mockWaifuRepo = mocks.NewMockWaifuRepository(s.mockCtrl)

	// Настроить возврат PackRepository в сервисе при инициализации
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.PackRepoName)).
		Return(s.mockPackRepo, nil).AnyTimes()

	var err error
	s.service, err = NewPackService(s.mockUOW)
	s.Require().NoError(err)

	// Детерминированный жребий: всегда первый элемент с положительным весом.
	s.service.rnd = func() float64 { return 0 }

	upgradeCost := int64(100)
	s.common = domain.Rarity{Value: 0, Name: "Common", Weight: 70, Refund: 5, UpgradeCost: &upgradeCost, AutoUpgrade: true}
	s.rare = domain.Rarity{Value: 1, Name: "Rare", Weight: 25, Refund: 20, UpgradeCost: &upgradeCost, AutoUpgrade: true}
	s.legendary = domain.Rarity{Value: 2, Name: "Legendary", Weight: 5, Refund: 80, AutoUpgrade: false}
	s.pack = domain.Pack{ID: 1, Name: "starter", Cost: 30}
	s.character = domain.Character{ID: 42, Name: gofakeit.Name(), Series: gofakeit.BookTitle()}
}

func (s *PackServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTx прокидывает fn из UOW.Do в мок-транзакцию и настраивает выдачу
// всех репозиториев.
func (s *PackServiceTestSuite) expectTx() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	)

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.PackRepoName)).Return(s.mockPackRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.RarityRepoName)).Return(s.mockRarityRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.CharacterRepoName)).Return(s.mockCharacterRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.WaifuRepoName)).Return(s.mockWaifuRepo, nil).AnyTimes()
}

// expectDraw настраивает жребий так, чтобы выпала редкость drawn и персонаж
// s.character.
func (s *PackServiceTestSuite) expectDraw(drawn domain.Rarity) {
	s.mockRarityRepo.EXPECT().All(gomock.Any()).Return([]domain.Rarity{drawn}, nil)
	s.mockCharacterRepo.EXPECT().
		EligibleForPack(gomock.Any(), s.pack.ID, drawn.Value).
		Return([]domain.PackCharacter{{Character: s.character, Weight: 1}}, nil)
}

func (s *PackServiceTestSuite) TestBuyPackFirstDrop() {
	const userID = int64(123)

	s.expectTx()
	s.mockPackRepo.EXPECT().FindAvailableByName(gomock.Any(), "starter").Return(&s.pack, nil)
	s.mockUserRepo.EXPECT().AddBalance(gomock.Any(), userID, -s.pack.Cost).Return(nil)
	s.expectDraw(s.rare)

	s.mockWaifuRepo.EXPECT().
		FindByUserAndCharacter(gomock.Any(), userID, s.character.ID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockWaifuRepo.EXPECT().
		Create(gomock.Any(), repoargs.WaifuCreate{UserID: userID, CharacterID: s.character.ID, RarityValue: s.rare.Value}).
		Return(int64(500), nil)

	waifu, duplicate, err := s.service.BuyPack(s.T().Context(), userID, "starter")
	s.Require().NoError(err)
	s.Nil(duplicate)
	s.Equal(int64(500), waifu.ID)
	s.Equal(s.character.Name, waifu.Character.Name)
	s.Equal(s.rare.Value, waifu.Rarity.Value)
}

func (s *PackServiceTestSuite) TestBuyPackDuplicateRefundLowerDrawn() {
	const userID = int64(123)

	// Выпал дубликат младшей редкости: строка остается на старшей, юзеру
	// возвращается refund младшей. Баланс за покупку: -30 +5.
	existing := &domain.Waifu{ID: 500, UserID: userID, Character: s.character, Rarity: s.rare}

	s.expectTx()
	s.mockPackRepo.EXPECT().FindAvailableByName(gomock.Any(), "starter").Return(&s.pack, nil)
	s.mockUserRepo.EXPECT().AddBalance(gomock.Any(), userID, -s.pack.Cost).Return(nil)
	s.expectDraw(s.common)

	s.mockWaifuRepo.EXPECT().
		FindByUserAndCharacter(gomock.Any(), userID, s.character.ID).
		Return(existing, nil)
	s.mockUserRepo.EXPECT().AddBalance(gomock.Any(), userID, s.common.Refund).Return(nil)

	waifu, duplicate, err := s.service.BuyPack(s.T().Context(), userID, "starter")
	s.Require().NoError(err)

	refund, ok := duplicate.(Refund)
	s.Require().True(ok)
	s.Equal(s.common.Refund, refund.Amount)
	// Редкость строки не понижается.
	s.Equal(s.rare.Value, waifu.Rarity.Value)
}

func (s *PackServiceTestSuite) TestBuyPackDuplicateDrawnHigher() {
	const userID = int64(123)

	// Выпала более редкая копия: строка повышается до выпавшей редкости,
	// возврат считается за прежнюю (младшую).
	existing := &domain.Waifu{ID: 500, UserID: userID, Character: s.character, Rarity: s.rare}

	s.expectTx()
	s.mockPackRepo.EXPECT().FindAvailableByName(gomock.Any(), "starter").Return(&s.pack, nil)
	s.mockUserRepo.EXPECT().AddBalance(gomock.Any(), userID, -s.pack.Cost).Return(nil)
	s.expectDraw(s.legendary)

	s.mockWaifuRepo.EXPECT().
		FindByUserAndCharacter(gomock.Any(), userID, s.character.ID).
		Return(existing, nil)
	s.mockWaifuRepo.EXPECT().UpdateRarity(gomock.Any(), existing.ID, s.legendary.Value).Return(nil)
	s.mockUserRepo.EXPECT().AddBalance(gomock.Any(), userID, s.rare.Refund).Return(nil)

	waifu, duplicate, err := s.service.BuyPack(s.T().Context(), userID, "starter")
	s.Require().NoError(err)

	refund, ok := duplicate.(Refund)
	s.Require().True(ok)
	s.Equal(s.rare.Refund, refund.Amount)
	s.Equal(s.legendary.Value, waifu.Rarity.Value)
}

func (s *PackServiceTestSuite) TestBuyPackDuplicateAutoUpgrade() {
	const userID = int64(123)

	// Та же редкость с авто-апгрейдом: строка повышается ровно на один ранг,
	// денег юзер не получает.
	existing := &domain.Waifu{ID: 500, UserID: userID, Character: s.character, Rarity: s.rare}

	s.expectTx()
	s.mockPackRepo.EXPECT().FindAvailableByName(gomock.Any(), "starter").Return(&s.pack, nil)
	s.mockUserRepo.EXPECT().AddBalance(gomock.Any(), userID, -s.pack.Cost).Return(nil)
	s.expectDraw(s.rare)

	s.mockWaifuRepo.EXPECT().
		FindByUserAndCharacter(gomock.Any(), userID, s.character.ID).
		Return(existing, nil)
	s.mockRarityRepo.EXPECT().FindByValue(gomock.Any(), s.rare.Value+1).Return(&s.legendary, nil)
	s.mockWaifuRepo.EXPECT().UpdateRarity(gomock.Any(), existing.ID, s.legendary.Value).Return(nil)

	waifu, duplicate, err := s.service.BuyPack(s.T().Context(), userID, "starter")
	s.Require().NoError(err)

	upgrade, ok := duplicate.(Upgrade)
	s.Require().True(ok)
	s.Equal(s.legendary.Value, upgrade.To.Value)
	s.Equal(s.legendary.Value, waifu.Rarity.Value)
}

func (s *PackServiceTestSuite) TestBuyPackDuplicateAutoUpgradeAtTopRarity() {
	const userID = int64(123)

	// Следующего ранга нет - дубликат обрабатывается как обычный возврат
	// за свою же редкость.
	top := s.legendary
	top.AutoUpgrade = true
	existing := &domain.Waifu{ID: 500, UserID: userID, Character: s.character, Rarity: top}

	s.expectTx()
	s.mockPackRepo.EXPECT().FindAvailableByName(gomock.Any(), "starter").Return(&s.pack, nil)
	s.mockUserRepo.EXPECT().AddBalance(gomock.Any(), userID, -s.pack.Cost).Return(nil)
	s.expectDraw(top)

	s.mockWaifuRepo.EXPECT().
		FindByUserAndCharacter(gomock.Any(), userID, s.character.ID).
		Return(existing, nil)
	s.mockRarityRepo.EXPECT().FindByValue(gomock.Any(), top.Value+1).Return(nil, domain.ErrRecordNotFound)
	s.mockUserRepo.EXPECT().AddBalance(gomock.Any(), userID, top.Refund).Return(nil)

	_, duplicate, err := s.service.BuyPack(s.T().Context(), userID, "starter")
	s.Require().NoError(err)

	refund, ok := duplicate.(Refund)
	s.Require().True(ok)
	s.Equal(top.Refund, refund.Amount)
}

func (s *PackServiceTestSuite) TestBuyPackUnknownName() {
	s.expectTx()
	s.mockPackRepo.EXPECT().
		FindAvailableByName(gomock.Any(), "missing").
		Return(nil, domain.ErrRecordNotFound)

	_, _, err := s.service.BuyPack(s.T().Context(), 123, "missing")
	s.Require().ErrorIs(err, domain.ErrUnknownPackName)
}

func (s *PackServiceTestSuite) TestBuyPackNotEnoughMoney() {
	s.expectTx()
	s.mockPackRepo.EXPECT().FindAvailableByName(gomock.Any(), "starter").Return(&s.pack, nil)
	s.mockUserRepo.EXPECT().
		AddBalance(gomock.Any(), int64(123), -s.pack.Cost).
		Return(&domain.NotEnoughMoneyError{Amount: s.pack.Cost})

	_, _, err := s.service.BuyPack(s.T().Context(), 123, "starter")

	var moneyErr *domain.NotEnoughMoneyError
	s.Require().ErrorAs(err, &moneyErr)
	s.Equal(s.pack.Cost, moneyErr.Amount)
}

func (s *PackServiceTestSuite) TestBuyPackEmptyPack() {
	s.expectTx()
	s.mockPackRepo.EXPECT().FindAvailableByName(gomock.Any(), "starter").Return(&s.pack, nil)
	s.mockUserRepo.EXPECT().AddBalance(gomock.Any(), int64(123), -s.pack.Cost).Return(nil)

	s.mockRarityRepo.EXPECT().All(gomock.Any()).Return([]domain.Rarity{s.legendary}, nil)
	// Для выпавшей редкости в паке нет ни одного персонажа.
	s.mockCharacterRepo.EXPECT().
		EligibleForPack(gomock.Any(), s.pack.ID, s.legendary.Value).
		Return(nil, nil)

	_, _, err := s.service.BuyPack(s.T().Context(), 123, "starter")
	s.Require().ErrorIs(err, domain.ErrEmptyPack)
}

func (s *PackServiceTestSuite) TestListPacks() {
	packs := []domain.Pack{s.pack}
	s.mockPackRepo.EXPECT().AllAvailable(gomock.Any()).Return(packs, nil)

	got, err := s.service.ListPacks(s.T().Context())
	s.Require().NoError(err)
	s.Equal(packs, got)
}
