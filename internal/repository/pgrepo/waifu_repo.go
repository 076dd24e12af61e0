package pgrepo

import (
	"context"

	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/internal/repository/repoargs"
	"github.com/funketh/shinobu-bot/pkg/uow"
)

// waifuOwnerConstraint - уникальный индекс (user_id, character_id): у юзера
// не может быть двух строк владения одним персонажем.
const waifuOwnerConstraint = "waifus_user_id_character_id_key"

type WaifuRepository struct {
	db uow.DBTX
}

func NewWaifuRepository(db uow.DBTX) *WaifuRepository {
	return &WaifuRepository{db: db}
}

const waifuSelect = `
	SELECT w.id, w.user_id,
	       ch.id, ch.name, ch.image_url, ch.series, ch.min_rarity,
	       r.value, r.name, r.colour, r.weight, r.refund, r.upgrade_cost, r.auto_upgrade
	FROM waifus w
	JOIN characters ch ON ch.id = w.character_id
	JOIN rarities r ON r.value = w.rarity
`

// FindByUserAndCharacter ищет строку владения для пары (юзер, персонаж).
// Возвращает domain.ErrRecordNotFound если юзер персонажем не владеет.
func (w *WaifuRepository) FindByUserAndCharacter(
	ctx context.Context,
	userID, characterID int64,
) (*domain.Waifu, error) {
	row := w.db.QueryRow(ctx, waifuSelect+` WHERE w.user_id = $1 AND w.character_id = $2`, userID, characterID)
	waifu, err := scanWaifu(row)
	if err != nil {
		return nil, convertErr(err, "finding waifu of user %d for character %d", userID, characterID)
	}
	return waifu, nil
}

// Create создает новую строку владения.
func (w *WaifuRepository) Create(ctx context.Context, args repoargs.WaifuCreate) (int64, error) {
	var id int64
	err := w.db.QueryRow(ctx,
		`INSERT INTO waifus (user_id, character_id, rarity) VALUES ($1, $2, $3) RETURNING id`,
		args.UserID, args.CharacterID, args.RarityValue,
	).Scan(&id)
	if err != nil {
		return 0, convertErr(err, "creating waifu for user %d", args.UserID)
	}
	return id, nil
}

// UpdateRarity меняет редкость существующей строки владения.
func (w *WaifuRepository) UpdateRarity(ctx context.Context, id int64, rarityValue int) error {
	_, err := w.db.Exec(ctx, `UPDATE waifus SET rarity = $1 WHERE id = $2`, rarityValue, id)
	return convertErr(err, "updating rarity of waifu %d", id)
}

// UpdateOwner переносит строку владения на другого юзера. Если у получателя
// уже есть этот персонаж, возвращает domain.ErrOwnershipConflict.
func (w *WaifuRepository) UpdateOwner(ctx context.Context, id, newOwnerID int64) error {
	_, err := w.db.Exec(ctx, `UPDATE waifus SET user_id = $1 WHERE id = $2`, newOwnerID, id)
	if err != nil {
		if isUniqueViolationOn(err, waifuOwnerConstraint) {
			return domain.ErrOwnershipConflict
		}
		return convertErr(err, "transferring waifu %d to user %d", id, newOwnerID)
	}
	return nil
}

// Delete удаляет строку владения (добровольный возврат за refund).
func (w *WaifuRepository) Delete(ctx context.Context, id int64) error {
	_, err := w.db.Exec(ctx, `DELETE FROM waifus WHERE id = $1`, id)
	return convertErr(err, "deleting waifu %d", id)
}

// ListByUser возвращает всех вайф юзера, сначала самые редкие.
func (w *WaifuRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Waifu, error) {
	rows, err := w.db.Query(ctx, waifuSelect+` WHERE w.user_id = $1 ORDER BY r.value DESC, ch.name ASC`, userID)
	if err != nil {
		return nil, convertErr(err, "listing waifus of user %d", userID)
	}
	defer rows.Close()

	var waifus []domain.Waifu
	for rows.Next() {
		waifu, scanErr := scanWaifu(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning waifu")
		}
		waifus = append(waifus, *waifu)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing waifus of user %d", userID)
	}
	return waifus, nil
}

func scanWaifu(row scannable) (*domain.Waifu, error) {
	var waifu domain.Waifu
	err := row.Scan(
		&waifu.ID,
		&waifu.UserID,
		&waifu.Character.ID,
		&waifu.Character.Name,
		&waifu.Character.ImageURL,
		&waifu.Character.Series,
		&waifu.Character.MinRarity,
		&waifu.Rarity.Value,
		&waifu.Rarity.Name,
		&waifu.Rarity.Colour,
		&waifu.Rarity.Weight,
		&waifu.Rarity.Refund,
		&waifu.Rarity.UpgradeCost,
		&waifu.Rarity.AutoUpgrade,
	)
	if err != nil {
		return nil, err
	}
	return &waifu, nil
}
