package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrUnknownPackName   = errors.New("unknown pack name")
	ErrEmptyPack         = errors.New("no characters available in pack")
	ErrOwnershipConflict = errors.New("item already owned by receiver")
	ErrNoMatchingItem    = errors.New("no matching item")
	ErrNotUpgradable     = errors.New("rarity is not upgradable")

	ErrInTransaction    = errors.New("pending transaction is open")
	ErrNotInTransaction = errors.New("no pending transaction")

	ErrWithdrawalNotReady = errors.New("income already collected")
)

// NotEnoughMoneyError возвращается, когда списание опустило бы баланс юзера
// ниже нуля. Определяется по нарушению check-ограничения в базе.
type NotEnoughMoneyError struct {
	Amount int64
}

func (e *NotEnoughMoneyError) Error() string {
	return fmt.Sprintf("not enough money: missing %d", e.Amount)
}

// InvalidChangeError возвращается при попытке поставить в очередь перевод,
// нарушающий инварианты (перевод самому себе, неположительная сумма).
type InvalidChangeError struct {
	Reason string
}

func (e *InvalidChangeError) Error() string {
	return "invalid change: " + e.Reason
}
