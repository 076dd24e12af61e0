package service

import (
	"errors"
	"math/rand/v2"
)

var errEmptyPick = errors.New("nothing to pick from")

// pickWeighted выбирает один элемент пропорционально его весу: кумулятивная
// сумма весов, равномерный бросок, поиск попавшего интервала. Элементы с
// нулевым весом выпасть не могут. Пустой набор и нулевая суммарная масса -
// ошибка errEmptyPick, решение о том, что с ней делать, остается за
// вызывающим.
func pickWeighted[T any](items []T, weight func(T) float64, rnd func() float64) (T, error) {
	var zero T
	var total float64
	for _, item := range items {
		w := weight(item)
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return zero, errEmptyPick
	}

	target := rnd() * total
	var cumulative float64
	for _, item := range items {
		w := weight(item)
		if w <= 0 {
			continue
		}
		cumulative += w
		if target < cumulative {
			return item, nil
		}
	}
	// Из-за погрешности плавающей точки target может оказаться равным сумме.
	for i := len(items) - 1; i >= 0; i-- {
		if weight(items[i]) > 0 {
			return items[i], nil
		}
	}
	return zero, errEmptyPick
}

func defaultRand() float64 {
	return rand.Float64() //nolint:gosec
}
