package pgrepo

import (
	"context"

	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/pkg/uow"
)

// currentPredicate отбирает паки, доступные на текущую дату.
const currentPredicate = `(start_date <= CURRENT_DATE AND (end_date IS NULL OR end_date >= CURRENT_DATE))`

type PackRepository struct {
	db uow.DBTX
}

func NewPackRepository(db uow.DBTX) *PackRepository {
	return &PackRepository{db: db}
}

const packColumns = `id, name, cost, description, start_date, end_date`

// FindAvailableByName ищет доступный сейчас пак по имени (без учета регистра).
// Возвращает domain.ErrRecordNotFound если подходящего пака нет.
func (p *PackRepository) FindAvailableByName(ctx context.Context, name string) (*domain.Pack, error) {
	row := p.db.QueryRow(ctx,
		`SELECT `+packColumns+` FROM packs WHERE `+currentPredicate+` AND name ILIKE $1`, name)
	pack, err := scanPack(row)
	if err != nil {
		return nil, convertErr(err, "finding pack %q", name)
	}
	return pack, nil
}

// AllAvailable возвращает все доступные на текущую дату паки.
func (p *PackRepository) AllAvailable(ctx context.Context) ([]domain.Pack, error) {
	rows, err := p.db.Query(ctx,
		`SELECT `+packColumns+` FROM packs WHERE `+currentPredicate+` ORDER BY cost`)
	if err != nil {
		return nil, convertErr(err, "listing packs")
	}
	defer rows.Close()

	var packs []domain.Pack
	for rows.Next() {
		pack, scanErr := scanPack(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning pack")
		}
		packs = append(packs, *pack)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing packs")
	}
	return packs, nil
}

func scanPack(row scannable) (*domain.Pack, error) {
	var pack domain.Pack
	err := row.Scan(
		&pack.ID,
		&pack.Name,
		&pack.Cost,
		&pack.Description,
		&pack.StartDate,
		&pack.EndDate,
	)
	if err != nil {
		return nil, err
	}
	return &pack, nil
}
