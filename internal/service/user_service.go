package service

import (
	"context"
	"time"

	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/internal/repository/repoargs"
	"github.com/funketh/shinobu-bot/pkg/uow"
)

// withdrawInterval - минимальный интервал между получениями дохода.
const withdrawInterval = 24 * time.Hour

type UserService struct {
	uow      uow.UOW
	userRepo UserRepository
	income   int64
}

func NewUserService(u uow.UOW, income int64) (*UserService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &UserService{
		uow:      u,
		userRepo: userRepo,
		income:   income,
	}, nil
}

// EnsureUser создает строку юзера с нулевым балансом, если ее еще нет.
// Вызывается на первом взаимодействии юзера с ботом.
func (s *UserService) EnsureUser(ctx context.Context, userID int64) error {
	return s.userRepo.CreateIfMissing(ctx, userID) //nolint:wrapcheck
}

// GetBalance возвращает текущий баланс юзера.
func (s *UserService) GetBalance(ctx context.Context, userID int64) (int64, error) {
	user, err := s.userRepo.Find(ctx, userID)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	return user.Balance, nil
}

// Withdraw выдает юзеру периодический доход. Если с прошлого получения не
// прошло withdrawInterval, возвращает domain.ErrWithdrawalNotReady.
// Проверка отметки и зачисление выполняются в одной транзакции.
func (s *UserService) Withdraw(ctx context.Context, userID int64) (int64, error) {
	now := time.Now()

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		user, findErr := userRepo.Find(c, userID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if user.LastWithdrawal != nil && now.Sub(*user.LastWithdrawal) < withdrawInterval {
			return domain.ErrWithdrawalNotReady
		}

		if creditErr := userRepo.AddBalance(c, userID, s.income); creditErr != nil {
			return creditErr //nolint:wrapcheck
		}
		return userRepo.SetLastWithdrawal(c, userID, now) //nolint:wrapcheck
	})
	if txErr != nil {
		return 0, txErr //nolint:wrapcheck
	}
	return s.income, nil
}
