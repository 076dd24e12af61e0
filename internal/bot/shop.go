package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/funketh/shinobu-bot/internal/chat"
	"github.com/funketh/shinobu-bot/internal/service"
)

func (b *Bot) packCmd(ctx context.Context, in chat.Incoming, args []string) error {
	if len(args) == 0 {
		b.inform(ctx, in, "Subcommands: `pack list`, `pack buy <name>`")
		return nil
	}

	switch args[0] {
	case "list", "l":
		return b.packList(ctx, in)
	case "buy", "b":
		if len(args) < 2 {
			b.error(ctx, in, "Which pack? Usage: `pack buy <name>`")
			return nil
		}
		return b.packBuy(ctx, in, args[1])
	default:
		return nil
	}
}

func (b *Bot) packList(ctx context.Context, in chat.Incoming) error {
	packs, err := b.svs.PackService.ListPacks(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	embed := &chat.Embed{Colour: colourGold, Title: "Available Packs"}
	for _, p := range packs {
		name := fmt.Sprintf("%s - %d %s", p.Name, p.Cost, b.currency)
		if p.EndDate != nil {
			name += fmt.Sprintf(" (Available until %s)", p.EndDate.Format("2006-01-02"))
		}
		embed.Fields = append(embed.Fields, chat.EmbedField{Name: name, Value: p.Description})
	}
	b.sendEmbed(ctx, in, embed)
	return nil
}

// packBuy покупает и открывает пак. Запрещено при открытой транзакции:
// выигрыш не должен попасть в полусобранную пачку обмена.
func (b *Bot) packBuy(ctx context.Context, in chat.Incoming, packName string) error {
	if err := b.svs.TradeService.Ledger().ForbidOpen(in.AuthorID); err != nil {
		return err //nolint:wrapcheck
	}

	waifu, duplicate, err := b.svs.PackService.BuyPack(ctx, in.AuthorID, packName)
	if err != nil {
		return err //nolint:wrapcheck
	}

	embed := waifuEmbed(waifu)
	switch d := duplicate.(type) {
	case service.Refund:
		embed.Fields = append(embed.Fields, chat.EmbedField{
			Name:  "Duplicate",
			Value: fmt.Sprintf("Your duplicate waifu got refunded for %d %s", d.Amount, b.currency),
		})
	case service.Upgrade:
		embed.Fields = append(embed.Fields, chat.EmbedField{
			Name:  "Duplicate",
			Value: fmt.Sprintf("Your waifu got upgraded to **%s**!", d.To.Name),
		})
	}

	b.sendEmbed(ctx, in, embed)
	return nil
}

func (b *Bot) waifuCmd(ctx context.Context, in chat.Incoming, args []string) error {
	if len(args) == 0 {
		b.inform(ctx, in, "Subcommands: `waifu list`, `waifu info <search>`, `waifu refund <search>`, `waifu upgrade <search>`")
		return nil
	}

	switch args[0] {
	case "list", "l":
		return b.waifuList(ctx, in, args[1:])
	case "info", "i":
		return b.waifuInfo(ctx, in, strings.Join(args[1:], " "))
	case "refund", "r":
		return b.waifuRefund(ctx, in, strings.Join(args[1:], " "))
	case "upgrade", "u", "up":
		return b.waifuUpgrade(ctx, in, strings.Join(args[1:], " "))
	default:
		return nil
	}
}

func (b *Bot) waifuList(ctx context.Context, in chat.Incoming, args []string) error {
	userID := in.AuthorID
	if len(args) > 0 {
		resolved, err := b.gw.ResolveMention(ctx, args[0])
		if err != nil {
			return err //nolint:wrapcheck
		}
		userID = resolved
	}

	waifus, err := b.svs.WaifuService.List(ctx, userID)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if len(waifus) == 0 {
		b.inform(ctx, in, "No waifus yet. Try `pack buy`!")
		return nil
	}

	var sb strings.Builder
	for _, w := range waifus {
		fmt.Fprintf(&sb, "%s - %s\n", w.Character.Name, w.Rarity.Name)
	}
	b.sendEmbed(ctx, in, &chat.Embed{Colour: colourGold, Description: sb.String()})
	return nil
}

func (b *Bot) waifuInfo(ctx context.Context, in chat.Incoming, query string) error {
	waifu, err := b.svs.WaifuService.Find(ctx, in.AuthorID, query)
	if err != nil {
		return err //nolint:wrapcheck
	}
	b.sendEmbed(ctx, in, waifuEmbed(waifu))
	return nil
}

// waifuRefund продает вайфу обратно за refund ее редкости, после
// подтверждения реакцией. Запрещено при открытой транзакции.
func (b *Bot) waifuRefund(ctx context.Context, in chat.Incoming, query string) error {
	if err := b.svs.TradeService.Ledger().ForbidOpen(in.AuthorID); err != nil {
		return err //nolint:wrapcheck
	}

	waifu, err := b.svs.WaifuService.Find(ctx, in.AuthorID, query)
	if err != nil {
		return err //nolint:wrapcheck
	}

	prompt := fmt.Sprintf("Do you really want to get a refund for this waifu for %d %s?",
		waifu.Rarity.Refund, b.currency)
	ok, confirmErr := b.confirmPrompt(ctx, in, prompt, waifuEmbed(waifu))
	if confirmErr != nil {
		return confirmErr
	}
	if !ok {
		b.error(ctx, in, "Cancelled refund.")
		return nil
	}

	if sellErr := b.svs.WaifuService.SellBack(ctx, waifu); sellErr != nil {
		return sellErr //nolint:wrapcheck
	}
	b.inform(ctx, in, fmt.Sprintf("Successfully refunded %s for %d %s",
		waifu.Character.Name, waifu.Rarity.Refund, b.currency))
	return nil
}

// waifuUpgrade платно повышает редкость вайфы, после подтверждения реакцией.
// Запрещено при открытой транзакции.
func (b *Bot) waifuUpgrade(ctx context.Context, in chat.Incoming, query string) error {
	if err := b.svs.TradeService.Ledger().ForbidOpen(in.AuthorID); err != nil {
		return err //nolint:wrapcheck
	}

	waifu, err := b.svs.WaifuService.Find(ctx, in.AuthorID, query)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if waifu.Rarity.UpgradeCost == nil {
		b.error(ctx, in, fmt.Sprintf("This rarity is not upgradable: **%s** (%s)",
			waifu.Rarity.Name, waifu.Character.Name))
		return nil
	}

	prompt := fmt.Sprintf("Do you really want to upgrade this waifu for %d %s?",
		*waifu.Rarity.UpgradeCost, b.currency)
	ok, confirmErr := b.confirmPrompt(ctx, in, prompt, waifuEmbed(waifu))
	if confirmErr != nil {
		return confirmErr
	}
	if !ok {
		b.error(ctx, in, "Cancelled upgrade.")
		return nil
	}

	next, upgradeErr := b.svs.WaifuService.Upgrade(ctx, waifu)
	if upgradeErr != nil {
		return upgradeErr //nolint:wrapcheck
	}
	b.inform(ctx, in, fmt.Sprintf("Upgraded %s to **%s**!", waifu.Character.Name, next.Name))
	return nil
}

// confirmPrompt отправляет вопрос и ждет 👍/👎 от автора команды.
func (b *Bot) confirmPrompt(ctx context.Context, in chat.Incoming, prompt string, embed *chat.Embed) (bool, error) {
	ref, sendErr := b.gw.Send(ctx, in.Message.ChannelID, chat.Message{Content: prompt, Embed: embed})
	if sendErr != nil {
		return false, sendErr //nolint:wrapcheck
	}
	return b.react.Confirm(ctx, ref, in.AuthorID, b.timeout) //nolint:wrapcheck
}
