package repoargs

type RepositoryName string

const (
	UserRepoName      RepositoryName = "user"
	RarityRepoName    RepositoryName = "rarity"
	PackRepoName      RepositoryName = "pack"
	CharacterRepoName RepositoryName = "character"
	WaifuRepoName     RepositoryName = "waifu"
)
