package pgrepo

import (
	"context"

	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/pkg/uow"
)

type CharacterRepository struct {
	db uow.DBTX
}

func NewCharacterRepository(db uow.DBTX) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// EligibleForPack возвращает персонажей, которые могут выпасть из пака packID
// при выброшенной редкости rarityValue: персонаж входит хотя бы в один батч
// пака, а его минимальная редкость не превышает выброшенную. Вес персонажа -
// максимальный вес среди его батчей в этом паке.
func (c *CharacterRepository) EligibleForPack(
	ctx context.Context,
	packID int64,
	rarityValue int,
) ([]domain.PackCharacter, error) {
	rows, err := c.db.Query(ctx, `
		SELECT ch.id, ch.name, ch.image_url, ch.series, ch.min_rarity,
		       MAX(pb.weight) AS weight
		FROM characters ch
		JOIN batch_characters bc ON bc.character_id = ch.id
		JOIN pack_batches pb ON pb.batch_id = bc.batch_id
		WHERE pb.pack_id = $1 AND ch.min_rarity <= $2
		GROUP BY ch.id
	`, packID, rarityValue)
	if err != nil {
		return nil, convertErr(err, "listing characters for pack %d", packID)
	}
	defer rows.Close()

	var characters []domain.PackCharacter
	for rows.Next() {
		var pc domain.PackCharacter
		scanErr := rows.Scan(
			&pc.Character.ID,
			&pc.Character.Name,
			&pc.Character.ImageURL,
			&pc.Character.Series,
			&pc.Character.MinRarity,
			&pc.Weight,
		)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning character")
		}
		characters = append(characters, pc)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing characters for pack %d", packID)
	}
	return characters, nil
}
