package dto

// UserResponse represents basic user information. The password hash is never
// included here.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role" example:"student"`
	Karma int    `json:"karma" example:"200"`
}

// LeaderboardEntry is a single row of the karma leaderboard
type LeaderboardEntry struct {
	Rank  int    `json:"rank" example:"1"`
	Name  string `json:"name" example:"Alice Student"`
	Role  string `json:"role" example:"student"`
	Karma int    `json:"karma" example:"205"`
}

// LeaderboardResponse wraps the leaderboard rows
type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}
