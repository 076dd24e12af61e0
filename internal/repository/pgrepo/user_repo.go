package pgrepo

import (
	"context"
	"time"

	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/pkg/uow"
)

// balanceCheckConstraint - имя check-ограничения, запрещающего отрицательный баланс.
const balanceCheckConstraint = "users_balance_nonnegative"

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, created_at, updated_at, balance, last_withdrawal, birthday, mal_username`

// Find ищет юзера по id. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) Find(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user %d", id)
	}
	return user, nil
}

// CreateIfMissing создает строку юзера с нулевым балансом, если ее еще нет.
// Повторный вызов для существующего юзера ничего не меняет.
func (u *UserRepository) CreateIfMissing(ctx context.Context, id int64) error {
	_, err := u.db.Exec(ctx, `INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, id)
	return convertErr(err, "creating user %d", id)
}

// AddBalance изменяет баланс юзера на amount (может быть отрицательным).
// Если списание опустило бы баланс ниже нуля, база отклонит запрос по
// check-ограничению, а метод вернет *domain.NotEnoughMoneyError.
func (u *UserRepository) AddBalance(ctx context.Context, id int64, amount int64) error {
	tag, err := u.db.Exec(ctx, `UPDATE users SET balance = balance + $1, updated_at = now() WHERE id = $2`, amount, id)
	if err != nil {
		if isCheckViolationErr(err, balanceCheckConstraint) {
			return &domain.NotEnoughMoneyError{Amount: -amount}
		}
		return convertErr(err, "adding %d to balance of user %d", amount, id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "adding %d to balance of user %d", amount, id)
	}
	return nil
}

// SetLastWithdrawal запоминает момент последнего получения дохода.
func (u *UserRepository) SetLastWithdrawal(ctx context.Context, id int64, at time.Time) error {
	_, err := u.db.Exec(ctx, `UPDATE users SET last_withdrawal = $1, updated_at = now() WHERE id = $2`, at, id)
	return convertErr(err, "setting last withdrawal of user %d", id)
}

func scanUser(row scannable) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Balance,
		&user.LastWithdrawal,
		&user.Birthday,
		&user.MALUsername,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
