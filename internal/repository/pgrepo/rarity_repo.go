package pgrepo

import (
	"context"

	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/pkg/uow"
)

type RarityRepository struct {
	db uow.DBTX
}

func NewRarityRepository(db uow.DBTX) *RarityRepository {
	return &RarityRepository{db: db}
}

const rarityColumns = `value, name, colour, weight, refund, upgrade_cost, auto_upgrade`

// All возвращает все редкости, отсортированные по возрастанию ранга.
func (r *RarityRepository) All(ctx context.Context) ([]domain.Rarity, error) {
	rows, err := r.db.Query(ctx, `SELECT `+rarityColumns+` FROM rarities ORDER BY value`)
	if err != nil {
		return nil, convertErr(err, "listing rarities")
	}
	defer rows.Close()

	var rarities []domain.Rarity
	for rows.Next() {
		rarity, scanErr := scanRarity(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning rarity")
		}
		rarities = append(rarities, *rarity)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing rarities")
	}
	return rarities, nil
}

// FindByValue ищет редкость по рангу. Возвращает domain.ErrRecordNotFound
// если редкости с таким рангом нет (например, выше апгрейдить некуда).
func (r *RarityRepository) FindByValue(ctx context.Context, value int) (*domain.Rarity, error) {
	row := r.db.QueryRow(ctx, `SELECT `+rarityColumns+` FROM rarities WHERE value = $1`, value)
	rarity, err := scanRarity(row)
	if err != nil {
		return nil, convertErr(err, "finding rarity %d", value)
	}
	return rarity, nil
}

func scanRarity(row scannable) (*domain.Rarity, error) {
	var rarity domain.Rarity
	err := row.Scan(
		&rarity.Value,
		&rarity.Name,
		&rarity.Colour,
		&rarity.Weight,
		&rarity.Refund,
		&rarity.UpgradeCost,
		&rarity.AutoUpgrade,
	)
	if err != nil {
		return nil, err
	}
	return &rarity, nil
}
