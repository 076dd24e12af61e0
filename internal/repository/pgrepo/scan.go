package pgrepo

import "errors"

// scannable - общий интерфейс pgx.Row и pgx.Rows для переиспользования скан-функций.
type scannable interface {
	Scan(dest ...any) error
}

var errNoRowsAffected = errors.New("no rows affected")
