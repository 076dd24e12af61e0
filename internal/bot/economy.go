package bot

import (
	"context"
	"fmt"

	"github.com/funketh/shinobu-bot/internal/chat"
)

func (b *Bot) balanceCmd(ctx context.Context, in chat.Incoming, args []string) error {
	userID := in.AuthorID
	if len(args) > 0 {
		resolved, err := b.gw.ResolveMention(ctx, args[0])
		if err != nil {
			return err //nolint:wrapcheck
		}
		userID = resolved
		if ensureErr := b.svs.UserService.EnsureUser(ctx, userID); ensureErr != nil {
			return ensureErr //nolint:wrapcheck
		}
	}

	balance, err := b.svs.UserService.GetBalance(ctx, userID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	b.inform(ctx, in, fmt.Sprintf("<@%d>'s balance: %d %s", userID, balance, b.currency))
	return nil
}

func (b *Bot) withdrawCmd(ctx context.Context, in chat.Incoming) error {
	amount, err := b.svs.UserService.Withdraw(ctx, in.AuthorID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	b.inform(ctx, in, fmt.Sprintf("You received your income of %d %s!", amount, b.currency))
	return nil
}
