package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/funketh/shinobu-bot/internal/chat"
)

func (b *Bot) transactionCmd(ctx context.Context, in chat.Incoming, args []string) error {
	if len(args) == 0 {
		b.inform(ctx, in, "Subcommands: `t money <user> <amount>`, `t waifu <user> <search>`, `t cancel`, `t sign [users...]`")
		return nil
	}

	switch args[0] {
	case "money", "m":
		return b.transactionMoney(ctx, in, args[1:])
	case "waifu", "w":
		return b.transactionWaifu(ctx, in, args[1:])
	case "cancel", "c":
		return b.transactionCancel(ctx, in)
	case "sign", "s":
		return b.transactionSign(ctx, in, args[1:])
	default:
		return nil
	}
}

func (b *Bot) transactionMoney(ctx context.Context, in chat.Incoming, args []string) error {
	if len(args) < 2 {
		b.error(ctx, in, "Usage: `t money <user> <amount>`")
		return nil
	}

	partnerID, err := b.gw.ResolveMention(ctx, args[0])
	if err != nil {
		return err //nolint:wrapcheck
	}
	amount, parseErr := strconv.ParseInt(args[1], 10, 64)
	if parseErr != nil {
		b.error(ctx, in, "The amount has to be a whole number!")
		return nil
	}

	transfer, queueErr := b.svs.TradeService.QueueMoney(in.AuthorID, partnerID, amount)
	if queueErr != nil {
		return queueErr //nolint:wrapcheck
	}
	b.inform(ctx, in, "Queued action: "+b.svs.TradeService.Describe(transfer))
	return nil
}

func (b *Bot) transactionWaifu(ctx context.Context, in chat.Incoming, args []string) error {
	if len(args) < 2 {
		b.error(ctx, in, "Usage: `t waifu <user> <search>`")
		return nil
	}

	partnerID, err := b.gw.ResolveMention(ctx, args[0])
	if err != nil {
		return err //nolint:wrapcheck
	}

	waifu, findErr := b.svs.WaifuService.Find(ctx, in.AuthorID, strings.Join(args[1:], " "))
	if findErr != nil {
		return findErr //nolint:wrapcheck
	}

	transfer, queueErr := b.svs.TradeService.QueueWaifu(*waifu, in.AuthorID, partnerID)
	if queueErr != nil {
		return queueErr //nolint:wrapcheck
	}
	b.inform(ctx, in, "Queued action: "+b.svs.TradeService.Describe(transfer))
	return nil
}

func (b *Bot) transactionCancel(ctx context.Context, in chat.Incoming) error {
	if err := b.svs.TradeService.Cancel(in.AuthorID); err != nil {
		return err //nolint:wrapcheck
	}
	b.inform(ctx, in, fmt.Sprintf("Cancelled <@%d>'s transaction.", in.AuthorID))
	return nil
}

// transactionSign запускает раунд подписания: сводка всех отложенных
// изменений названных подписантов отправляется в чат, и пачка выполняется
// только при единогласном 👍 до таймаута.
func (b *Bot) transactionSign(ctx context.Context, in chat.Incoming, mentions []string) error {
	signerIDs := make([]int64, 0, len(mentions))
	for _, mention := range mentions {
		id, err := b.gw.ResolveMention(ctx, mention)
		if err != nil {
			return err //nolint:wrapcheck
		}
		signerIDs = append(signerIDs, id)
	}

	committed, signErr := b.svs.TradeService.Sign(ctx, in.AuthorID, signerIDs,
		func(c context.Context, summary string, signers []int64) (bool, error) {
			var sb strings.Builder
			for i, id := range signers {
				if i > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprintf(&sb, "<@%d>", id)
			}
			sb.WriteString(": Do you accept the following changes?\n")
			sb.WriteString(summary)

			ref, sendErr := b.gw.Send(c, in.Message.ChannelID, chat.Message{Content: sb.String()})
			if sendErr != nil {
				return false, sendErr //nolint:wrapcheck
			}
			return b.react.ConfirmAll(c, ref, signers, b.timeout) //nolint:wrapcheck
		})
	if signErr != nil {
		return signErr //nolint:wrapcheck
	}

	if committed {
		b.inform(ctx, in, "Successfully executed transaction.")
	} else {
		b.error(ctx, in, "Cancelled execution! (Transaction contents are kept)")
	}
	return nil
}
