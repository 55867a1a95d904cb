package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trivia-board/internal/domain"
	"trivia-board/internal/repository/models"
	"trivia-board/internal/util"

	"github.com/jmoiron/sqlx"
)

const leaderboardSelect = `SELECT s.ID, u.USERNAME, s.SCORE, s.ELAPSED_TIME, s.AMOUNT, s.CATEGORY, s.DIFFICULTY, s.QUIZ_TYPE
FROM SCORES s JOIN USERS u ON s.USER_ID = u.ID`

// Highest score first, ties broken by the fastest time. Not client configurable.
const leaderboardOrder = `ORDER BY s.SCORE DESC, s.ELAPSED_TIME ASC`

// sqlxScoreRepository implements domain.ScoreRepository using sqlx.
type sqlxScoreRepository struct {
	db DBTX
}

// NewSQLXScoreRepository creates a new instance of sqlxScoreRepository.
func NewSQLXScoreRepository(db *sqlx.DB) domain.ScoreRepository {
	return &sqlxScoreRepository{db: db}
}

func fromDomainScore(s *domain.ScoreRecord) *models.Score {
	return &models.Score{
		ID:          s.ID,
		UserID:      s.UserID,
		Score:       s.Score,
		ElapsedTime: s.Time,
		Amount:      s.Quiz.Amount,
		Category:    util.StringToNullString(s.Quiz.Category),
		Difficulty:  util.StringToNullString(s.Quiz.Difficulty),
		QuizType:    util.StringToNullString(s.Quiz.Type),
		CreatedAt:   s.CreatedAt,
	}
}

func toDomainLeaderboardRow(m *models.LeaderboardRow) domain.LeaderboardRow {
	return domain.LeaderboardRow{
		ID:         m.ID,
		Username:   m.Username,
		Score:      m.Score,
		Time:       m.ElapsedTime,
		Amount:     m.Amount,
		Category:   m.Category.String,
		Difficulty: m.Difficulty.String,
		Type:       m.QuizType.String,
	}
}

// CreateScore inserts a score record. CreatedAt is set when zero.
func (r *sqlxScoreRepository) CreateScore(ctx context.Context, score *domain.ScoreRecord) error {
	if score.CreatedAt.IsZero() {
		score.CreatedAt = time.Now()
	}
	m := fromDomainScore(score)

	query := `INSERT INTO SCORES (ID, USER_ID, SCORE, ELAPSED_TIME, AMOUNT, CATEGORY, DIFFICULTY, QUIZ_TYPE, CREATED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.UserID,
		m.Score,
		m.ElapsedTime,
		m.Amount,
		m.Category,
		m.Difficulty,
		m.QuizType,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create score: %w", err)
	}
	return nil
}

// Leaderboard returns the score rows matching filter in leaderboard order.
func (r *sqlxScoreRepository) Leaderboard(ctx context.Context, filter domain.LeaderboardFilter) ([]domain.LeaderboardRow, error) {
	query, args := buildLeaderboardQuery(filter)

	var rows []models.LeaderboardRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to execute leaderboard query: %w. Query: %s, Args: %+v", err, query, args)
	}

	result := make([]domain.LeaderboardRow, len(rows))
	for i := range rows {
		result[i] = toDomainLeaderboardRow(&rows[i])
	}
	return result, nil
}

// buildLeaderboardQuery adds one AND-ed predicate per non-zero filter field and
// returns the query with Oracle positional parameters and its ordered arguments.
func buildLeaderboardQuery(filter domain.LeaderboardFilter) (string, []interface{}) {
	var args []interface{}
	var whereClauses []string

	add := func(clause string, arg interface{}) {
		args = append(args, arg)
		whereClauses = append(whereClauses, fmt.Sprintf(clause, len(args)))
	}

	if filter.Username != "" {
		add("u.USERNAME = :%d", filter.Username)
	}
	if filter.Score != 0 {
		add("s.SCORE >= :%d", filter.Score)
	}
	if filter.Time != 0 {
		add("s.ELAPSED_TIME <= :%d", filter.Time)
	}
	if filter.Amount != 0 {
		add("s.AMOUNT = :%d", filter.Amount)
	}
	if filter.Category != "" {
		add("s.CATEGORY = :%d", filter.Category)
	}
	if filter.Difficulty != "" {
		add("s.DIFFICULTY = :%d", filter.Difficulty)
	}
	if filter.Type != "" {
		add("s.QUIZ_TYPE = :%d", filter.Type)
	}

	query := leaderboardSelect
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}
	query += " " + leaderboardOrder
	return query, args
}
