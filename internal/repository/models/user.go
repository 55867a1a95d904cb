package models

import (
	"database/sql"
	"time"
)

// User represents a row of the USERS table.
type User struct {
	ID        string    `db:"ID"`       // ULID
	Username  string    `db:"USERNAME"` // unique, case-sensitive
	CreatedAt time.Time `db:"CREATED_AT"`
}

// Score represents a row of the SCORES table. Quiz parameters are copied onto
// every row rather than referencing a quiz definition.
type Score struct {
	ID          string         `db:"ID"`      // ULID
	UserID      string         `db:"USER_ID"` // Foreign key to users table
	Score       int            `db:"SCORE"`
	ElapsedTime float64        `db:"ELAPSED_TIME"` // seconds
	Amount      int            `db:"AMOUNT"`
	Category    sql.NullString `db:"CATEGORY"`
	Difficulty  sql.NullString `db:"DIFFICULTY"`
	QuizType    sql.NullString `db:"QUIZ_TYPE"`
	CreatedAt   time.Time      `db:"CREATED_AT"`
}

// LeaderboardRow is a SCORES row joined with its owner's USERNAME.
type LeaderboardRow struct {
	ID          string         `db:"ID"`
	Username    string         `db:"USERNAME"`
	Score       int            `db:"SCORE"`
	ElapsedTime float64        `db:"ELAPSED_TIME"`
	Amount      int            `db:"AMOUNT"`
	Category    sql.NullString `db:"CATEGORY"`
	Difficulty  sql.NullString `db:"DIFFICULTY"`
	QuizType    sql.NullString `db:"QUIZ_TYPE"`
}
