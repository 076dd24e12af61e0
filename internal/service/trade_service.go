package service

import (
	"context"
	"strings"

	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/internal/trade"
	"github.com/funketh/shinobu-bot/pkg/uow"
)

// ConfirmFunc запрашивает у всех подписантов одновременное подтверждение
// сводки summary. Возвращает true только при единогласном согласии до
// истечения таймаута; false - при любом отказе или таймауте.
type ConfirmFunc func(ctx context.Context, summary string, signers []int64) (bool, error)

// TradeService держит реестр отложенных изменений и выполняет протокол
// множественного подписания.
type TradeService struct {
	uow      uow.UOW
	ledger   *trade.Ledger
	currency string
}

func NewTradeService(u uow.UOW, currency string) *TradeService {
	return &TradeService{
		uow:      u,
		ledger:   trade.NewLedger(),
		currency: currency,
	}
}

// Ledger открывает реестр для ограждающих проверок других команд.
func (s *TradeService) Ledger() *trade.Ledger {
	return s.ledger
}

// QueueMoney ставит в очередь юзера fromID перевод денег юзеру toID.
// Невалидный перевод (*domain.InvalidChangeError) очередь не трогает.
func (s *TradeService) QueueMoney(fromID, toID, amount int64) (trade.Change, error) {
	transfer, err := trade.NewMoneyTransfer(amount, fromID, toID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	s.ledger.Enqueue(fromID, transfer)
	return transfer, nil
}

// QueueWaifu ставит в очередь юзера fromID передачу вайфы юзеру toID.
func (s *TradeService) QueueWaifu(waifu domain.Waifu, fromID, toID int64) (trade.Change, error) {
	transfer, err := trade.NewWaifuTransfer(waifu, fromID, toID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	s.ledger.Enqueue(fromID, transfer)
	return transfer, nil
}

// Cancel очищает очередь юзера. domain.ErrNotInTransaction если очередь пуста.
func (s *TradeService) Cancel(userID int64) error {
	return s.ledger.Cancel(userID) //nolint:wrapcheck
}

// Describe возвращает описание изменения с символом валюты из конфигурации.
func (s *TradeService) Describe(c trade.Change) string {
	return c.Describe(s.currency)
}

// Sign выполняет раунд подписания для инициатора и названных им подписантов.
//
// Протокол:
//  1. Локи очередей всех подписантов захватываются в порядке возрастания id
//     и держатся до конца раунда.
//  2. Очереди склеиваются в одну пачку: подписанты в порядке возрастания id,
//     внутри подписанта - порядок постановки в очередь.
//  3. confirm запрашивает единогласное подтверждение сводки.
//  4. Согласие: вся пачка выполняется в одной транзакции базы, очереди всех
//     подписантов очищаются. Ошибка любого изменения (нехватка денег,
//     конфликт владения) откатывает пачку целиком, очереди при этом
//     сохраняются.
//  5. Отказ или таймаут: ничего не выполняется, очереди сохраняются для
//     следующей попытки.
//
// Возвращает committed=true только если пачка применена.
func (s *TradeService) Sign(
	ctx context.Context,
	invokerID int64,
	signerIDs []int64,
	confirm ConfirmFunc,
) (committed bool, err error) {
	if requireErr := s.ledger.RequireOpen(invokerID); requireErr != nil {
		return false, requireErr //nolint:wrapcheck
	}

	ids := append([]int64{invokerID}, signerIDs...)

	lockErr := s.ledger.WithLocked(ids, func(batches []trade.UserChanges, clear func()) error {
		var batch []trade.Change
		signers := make([]int64, 0, len(batches))
		for _, b := range batches {
			signers = append(signers, b.UserID)
			batch = append(batch, b.Changes...)
		}

		ok, confirmErr := confirm(ctx, s.summary(batch), signers)
		if confirmErr != nil {
			return confirmErr
		}
		if !ok {
			// Раунд подтверждения отменен, содержимое очередей сохраняется.
			return nil
		}

		txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			for _, change := range batch {
				if execErr := change.Execute(c, tx); execErr != nil {
					return execErr
				}
			}
			return nil
		})
		if txErr != nil {
			return txErr
		}

		clear()
		committed = true
		return nil
	})
	if lockErr != nil {
		return false, lockErr //nolint:wrapcheck
	}
	return committed, nil
}

func (s *TradeService) summary(batch []trade.Change) string {
	lines := make([]string, len(batch))
	for i, change := range batch {
		lines[i] = change.Describe(s.currency)
	}
	return strings.Join(lines, "\n")
}
