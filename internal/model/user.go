package model

type User struct {
	Name          string
	IsHost        bool
	RoundScore    int
	OverallScore  int
	CurrentAnswer string
}

type LeaderboardEntry struct {
	Name         string
	OverallScore int
}
