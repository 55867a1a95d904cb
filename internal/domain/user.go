package domain

import (
	"context"
	"time"
)

// User is identified by a unique, case-sensitive username.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}

// QuizMetadata is the quiz configuration an attempt was played with, stored
// verbatim on the score record.
type QuizMetadata struct {
	Amount     int
	Category   string
	Difficulty string
	Type       string
}

// ScoreRecord is one completed attempt. It is immutable once created.
type ScoreRecord struct {
	ID     string
	UserID string
	Score  int
	// Time is the elapsed time in seconds.
	Time      float64
	Quiz      QuizMetadata
	CreatedAt time.Time
}

// LeaderboardFilter selects score records. A zero-valued field is not applied,
// so Score: 0 cannot express "at least zero".
type LeaderboardFilter struct {
	Username   string
	Score      int     // at least
	Time       float64 // at most
	Amount     int
	Category   string
	Difficulty string
	Type       string
}

// LeaderboardRow is a score record flattened with its owner's username.
type LeaderboardRow struct {
	ID         string
	Username   string
	Score      int
	Time       float64
	Amount     int
	Category   string
	Difficulty string
	Type       string
}

// UserRepository persists users. GetUserByUsername returns (nil, nil) when no user matches.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
}

// ScoreRepository persists score records and answers leaderboard queries,
// ordered by score descending then time ascending.
type ScoreRepository interface {
	CreateScore(ctx context.Context, score *ScoreRecord) error
	Leaderboard(ctx context.Context, filter LeaderboardFilter) ([]LeaderboardRow, error)
}
