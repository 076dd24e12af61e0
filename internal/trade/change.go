// Package trade содержит отложенные изменения (переводы денег и вайф) и
// реестр несовершенных транзакций. Изменение живет только в памяти процесса:
// в базу оно попадает единственным способом - через подписание всеми
// участниками и коммит всей пачки в одной транзакции.
package trade

import (
	"context"
	"fmt"

	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/internal/repository/repoargs"
	"github.com/funketh/shinobu-bot/pkg/uow"
)

// Change - одно отложенное изменение. Закрытое множество реализаций:
// MoneyTransfer и WaifuTransfer.
type Change interface {
	// Execute применяет изменение внутри открытой транзакции.
	Execute(ctx context.Context, tx uow.TX) error
	// Describe возвращает человекочитаемое описание для сводки подписания.
	Describe(currency string) string
}

// MoneyTransfer - перевод денег от одного юзера другому.
type MoneyTransfer struct {
	Amount int64
	FromID int64
	ToID   int64
}

// NewMoneyTransfer валидирует и создает перевод денег. Перевод самому себе и
// неположительная сумма отклоняются с *domain.InvalidChangeError еще до
// постановки в очередь.
func NewMoneyTransfer(amount, fromID, toID int64) (*MoneyTransfer, error) {
	if fromID == toID {
		return nil, &domain.InvalidChangeError{Reason: "you can't give something to yourself"}
	}
	if amount <= 0 {
		return nil, &domain.InvalidChangeError{Reason: "you can only transfer positive amounts"}
	}
	return &MoneyTransfer{Amount: amount, FromID: fromID, ToID: toID}, nil
}

func (t *MoneyTransfer) Execute(ctx context.Context, tx uow.TX) error {
	userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	if err := userRepo.AddBalance(ctx, t.FromID, -t.Amount); err != nil {
		return err //nolint:wrapcheck
	}
	return userRepo.AddBalance(ctx, t.ToID, t.Amount) //nolint:wrapcheck
}

func (t *MoneyTransfer) Describe(currency string) string {
	return fmt.Sprintf("<@%d> gives %d %s to <@%d>", t.FromID, t.Amount, currency, t.ToID)
}

// WaifuTransfer - передача вайфы другому юзеру.
type WaifuTransfer struct {
	Waifu  domain.Waifu
	FromID int64
	ToID   int64
}

// NewWaifuTransfer валидирует и создает передачу вайфы.
func NewWaifuTransfer(waifu domain.Waifu, fromID, toID int64) (*WaifuTransfer, error) {
	if fromID == toID {
		return nil, &domain.InvalidChangeError{Reason: "you can't give something to yourself"}
	}
	return &WaifuTransfer{Waifu: waifu, FromID: fromID, ToID: toID}, nil
}

// Execute переносит владение. Если получатель уже владеет этим персонажем,
// база отклонит перенос и вся пачка откатится с domain.ErrOwnershipConflict.
func (t *WaifuTransfer) Execute(ctx context.Context, tx uow.TX) error {
	waifuRepo, err := uow.GetAs[WaifuRepository](tx, uow.RepositoryName(repoargs.WaifuRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	return waifuRepo.UpdateOwner(ctx, t.Waifu.ID, t.ToID) //nolint:wrapcheck
}

func (t *WaifuTransfer) Describe(_ string) string {
	return fmt.Sprintf("<@%d> gives ***%s*** **%s** [%s] to <@%d>",
		t.FromID, t.Waifu.Rarity.Name, t.Waifu.Character.Name, t.Waifu.Character.Series, t.ToID)
}

// UserRepository и WaifuRepository - срезы репозиториев, достаточные для
// применения изменений. Полные интерфейсы живут в сервисном слое.
type UserRepository interface {
	AddBalance(ctx context.Context, id int64, amount int64) error
}

type WaifuRepository interface {
	UpdateOwner(ctx context.Context, id, newOwnerID int64) error
}
