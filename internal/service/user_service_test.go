package service

import (
	"context"
	"testing"
	"time"

	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/internal/repository/repoargs"
	"github.com/funketh/shinobu-bot/internal/service/mocks"
	"github.com/funketh/shinobu-bot/pkg/uow"
	uowmocks "github.com/funketh/shinobu-bot/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockTX       *uowmocks.MockTX
	mockUserRepo *mocks.MockUserRepository
	service      *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)

	// Настроить возврат UserRepository в сервисе при инициализации
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	var err error
	s.service, err = NewUserService(s.mockUOW, 50)
	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *UserServiceTestSuite) expectTx() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	)
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).Return(s.mockUserRepo, nil).AnyTimes()
}

func (s *UserServiceTestSuite) TestEnsureUser() {
	s.mockUserRepo.EXPECT().CreateIfMissing(gomock.Any(), int64(123)).Return(nil)
	s.Require().NoError(s.service.EnsureUser(s.T().Context(), 123))
}

func (s *UserServiceTestSuite) TestGetBalance() {
	s.mockUserRepo.EXPECT().
		Find(gomock.Any(), int64(123)).
		Return(&domain.User{ID: 123, Balance: 77}, nil)

	balance, err := s.service.GetBalance(s.T().Context(), 123)
	s.Require().NoError(err)
	s.Equal(int64(77), balance)
}

func (s *UserServiceTestSuite) TestWithdraw() {
	longAgo := time.Now().Add(-25 * time.Hour)
	justNow := time.Now().Add(-time.Hour)

	cases := []struct {
		name           string
		lastWithdrawal *time.Time
		wantErr        error
	}{
		{name: "first withdrawal", lastWithdrawal: nil, wantErr: nil},
		{name: "interval passed", lastWithdrawal: &longAgo, wantErr: nil},
		{name: "too early", lastWithdrawal: &justNow, wantErr: domain.ErrWithdrawalNotReady},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.expectTx()
			s.mockUserRepo.EXPECT().
				Find(gomock.Any(), int64(123)).
				Return(&domain.User{ID: 123, LastWithdrawal: t.lastWithdrawal}, nil)

			if t.wantErr == nil {
				s.mockUserRepo.EXPECT().AddBalance(gomock.Any(), int64(123), int64(50)).Return(nil)
				s.mockUserRepo.EXPECT().SetLastWithdrawal(gomock.Any(), int64(123), gomock.Any()).Return(nil)
			}

			income, err := s.service.Withdraw(s.T().Context(), 123)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(int64(50), income)
		})
	}
}
