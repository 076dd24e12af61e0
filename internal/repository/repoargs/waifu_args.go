package repoargs

type WaifuCreate struct {
	UserID      int64
	CharacterID int64
	RarityValue int
}
