package domain

import (
	"time"
)

type User struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Balance        int64
	LastWithdrawal *time.Time
	Birthday       *time.Time
	MALUsername    *string
}

type Rarity struct {
	Value       int
	Name        string
	Colour      int
	Weight      float64
	Refund      int64
	UpgradeCost *int64
	AutoUpgrade bool
}

type Character struct {
	ID        int64
	Name      string
	ImageURL  *string
	Series    string
	MinRarity int
}

type Batch struct {
	ID   int64
	Name string
}

type Pack struct {
	ID          int64
	Name        string
	Cost        int64
	Description string
	StartDate   time.Time
	EndDate     *time.Time
}

type Waifu struct {
	ID        int64
	UserID    int64
	Character Character
	Rarity    Rarity
}

// PackCharacter - персонаж, который может выпасть из конкретного пака,
// вместе с его итоговым весом (максимальный вес среди батчей пака).
type PackCharacter struct {
	Character Character
	Weight    float64
}
