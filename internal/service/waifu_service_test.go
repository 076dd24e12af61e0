package service

import (
	"context"
	"testing"

	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/internal/repository/repoargs"
	"github.com/funketh/shinobu-bot/internal/service/mocks"
	"github.com/funketh/shinobu-bot/pkg/uow"
	uowmocks "github.com/funketh/shinobu-bot/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type WaifuServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	mockUserRepo   *mocks.MockUserRepository
	mockWaifuRepo  *mocks.MockWaifuRepository
	mockRarityRepo *mocks.MockRarityRepository
	service        *WaifuService
}

func TestWaifuServiceSuite(t *testing.T) {
	suite.Run(t, new(WaifuServiceTestSuite))
}

func (s *WaifuServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockWaifuRepo = mocks.NewMockWaifuRepository(s.mockCtrl)
	s.mockRarityRepo = mocks.NewMockRarityRepository(s.mockCtrl)

	// Настроить возврат WaifuRepository в сервисе при инициализации
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.WaifuRepoName)).
		Return(s.mockWaifuRepo, nil).AnyTimes()

	var err error
	s.service, err = NewWaifuService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *WaifuServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *WaifuServiceTestSuite) expectTx() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	)
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.WaifuRepoName)).Return(s.mockWaifuRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.RarityRepoName)).Return(s.mockRarityRepo, nil).AnyTimes()
}

func (s *WaifuServiceTestSuite) collection() []domain.Waifu {
	return []domain.Waifu{
		{ID: 1, UserID: 123, Character: domain.Character{ID: 10, Name: "Shinobu Oshino"}},
		{ID: 2, UserID: 123, Character: domain.Character{ID: 11, Name: "Hitagi Senjougahara"}},
		{ID: 3, UserID: 123, Character: domain.Character{ID: 12, Name: "Mayoi Hachikuji"}},
	}
}

func (s *WaifuServiceTestSuite) TestFind() {
	cases := []struct {
		name   string
		query  string
		wantID int64
	}{
		{name: "exact name", query: "Shinobu Oshino", wantID: 1},
		{name: "partial", query: "hitagi", wantID: 2},
		{name: "fuzzy", query: "mayoi hach", wantID: 3},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockWaifuRepo.EXPECT().
				ListByUser(gomock.Any(), int64(123)).
				Return(s.collection(), nil)

			got, err := s.service.Find(s.T().Context(), 123, t.query)
			s.Require().NoError(err)
			s.Equal(t.wantID, got.ID)
		})
	}
}

func (s *WaifuServiceTestSuite) TestFindNoMatch() {
	s.mockWaifuRepo.EXPECT().
		ListByUser(gomock.Any(), int64(123)).
		Return(s.collection(), nil)

	_, err := s.service.Find(s.T().Context(), 123, "zzzzzzzz")
	s.Require().ErrorIs(err, domain.ErrNoMatchingItem)
}

func (s *WaifuServiceTestSuite) TestSellBack() {
	waifu := &domain.Waifu{
		ID:     7,
		UserID: 123,
		Rarity: domain.Rarity{Value: 1, Refund: 20},
	}

	s.expectTx()
	// Зачисление возврата и удаление строки - одна транзакция.
	s.mockUserRepo.EXPECT().AddBalance(gomock.Any(), int64(123), int64(20)).Return(nil)
	s.mockWaifuRepo.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

	s.Require().NoError(s.service.SellBack(s.T().Context(), waifu))
}

func (s *WaifuServiceTestSuite) TestUpgrade() {
	cost := int64(100)
	next := domain.Rarity{Value: 2, Name: "Legendary"}
	waifu := &domain.Waifu{
		ID:     7,
		UserID: 123,
		Rarity: domain.Rarity{Value: 1, UpgradeCost: &cost},
	}

	s.expectTx()
	s.mockRarityRepo.EXPECT().FindByValue(gomock.Any(), 2).Return(&next, nil)
	s.mockUserRepo.EXPECT().AddBalance(gomock.Any(), int64(123), int64(-100)).Return(nil)
	s.mockWaifuRepo.EXPECT().UpdateRarity(gomock.Any(), int64(7), 2).Return(nil)

	got, err := s.service.Upgrade(s.T().Context(), waifu)
	s.Require().NoError(err)
	s.Equal(next.Value, got.Value)
}

func (s *WaifuServiceTestSuite) TestUpgradeNoCost() {
	// У редкости нет цены апгрейда - отказ до открытия транзакции.
	waifu := &domain.Waifu{ID: 7, UserID: 123, Rarity: domain.Rarity{Value: 2}}

	_, err := s.service.Upgrade(s.T().Context(), waifu)
	s.Require().ErrorIs(err, domain.ErrNotUpgradable)
}

func (s *WaifuServiceTestSuite) TestUpgradeNoNextRarity() {
	cost := int64(100)
	waifu := &domain.Waifu{
		ID:     7,
		UserID: 123,
		Rarity: domain.Rarity{Value: 2, UpgradeCost: &cost},
	}

	s.expectTx()
	s.mockRarityRepo.EXPECT().FindByValue(gomock.Any(), 3).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Upgrade(s.T().Context(), waifu)
	s.Require().ErrorIs(err, domain.ErrNotUpgradable)
}

func (s *WaifuServiceTestSuite) TestUpgradeNotEnoughMoney() {
	cost := int64(100)
	next := domain.Rarity{Value: 2}
	waifu := &domain.Waifu{
		ID:     7,
		UserID: 123,
		Rarity: domain.Rarity{Value: 1, UpgradeCost: &cost},
	}

	s.expectTx()
	s.mockRarityRepo.EXPECT().FindByValue(gomock.Any(), 2).Return(&next, nil)
	s.mockUserRepo.EXPECT().
		AddBalance(gomock.Any(), int64(123), int64(-100)).
		Return(&domain.NotEnoughMoneyError{Amount: 100})

	_, err := s.service.Upgrade(s.T().Context(), waifu)

	var moneyErr *domain.NotEnoughMoneyError
	s.Require().ErrorAs(err, &moneyErr)
	s.Equal(int64(100), moneyErr.Amount)
}

func (s *WaifuServiceTestSuite) TestList() {
	waifus := s.collection()
	s.mockWaifuRepo.EXPECT().ListByUser(gomock.Any(), int64(123)).Return(waifus, nil)

	got, err := s.service.List(s.T().Context(), 123)
	s.Require().NoError(err)
	s.Equal(waifus, got)
}
