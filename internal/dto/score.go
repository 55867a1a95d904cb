package dto

import "trivia-board/internal/domain"

// QuizData is the quiz configuration a score was earned with. Values are
// stored as sent by the client.
type QuizData struct {
	Amount     int    `json:"amount" example:"10"`
	Category   string `json:"category" example:"science: computers"`
	Difficulty string `json:"difficulty" example:"easy"`
	Type       string `json:"type" example:"multiple"`
}

// SubmitScoreRequest represents a completed attempt in the API request
// @Description Request body for submitting a score
type SubmitScoreRequest struct {
	Username string   `json:"username" example:"alice"`
	QuizData QuizData `json:"quiz_data"`
	Score    int      `json:"score" example:"8"`
	Time     float64  `json:"time" example:"73.5"`
}

func (q QuizData) ToDomain() domain.QuizMetadata {
	return domain.QuizMetadata{
		Amount:     q.Amount,
		Category:   q.Category,
		Difficulty: q.Difficulty,
		Type:       q.Type,
	}
}

// SubmitScoreResponse reports a successful submission. The record ID is not exposed.
// @Description Score submission result
type SubmitScoreResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LeaderboardQuery holds the optional leaderboard filters from the query string.
type LeaderboardQuery struct {
	Username   string  `query:"username"`
	Score      int     `query:"score"`
	Time       float64 `query:"time"`
	Amount     int     `query:"amount"`
	Category   string  `query:"category"`
	Difficulty string  `query:"difficulty"`
	Type       string  `query:"type"`
}

func (q LeaderboardQuery) ToDomain() domain.LeaderboardFilter {
	return domain.LeaderboardFilter{
		Username:   q.Username,
		Score:      q.Score,
		Time:       q.Time,
		Amount:     q.Amount,
		Category:   q.Category,
		Difficulty: q.Difficulty,
		Type:       q.Type,
	}
}

// LeaderboardEntry is one leaderboard row in the API response
// @Description Leaderboard entry
type LeaderboardEntry struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Score      int     `json:"score"`
	Time       float64 `json:"time"`
	Amount     int     `json:"amount"`
	Category   string  `json:"category"`
	Difficulty string  `json:"difficulty"`
	Type       string  `json:"type"`
}

// LeaderboardResponse wraps the ordered leaderboard rows.
type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

func NewLeaderboardResponse(rows []domain.LeaderboardRow) *LeaderboardResponse {
	entries := make([]LeaderboardEntry, len(rows))
	for i, r := range rows {
		entries[i] = LeaderboardEntry{
			ID:         r.ID,
			Username:   r.Username,
			Score:      r.Score,
			Time:       r.Time,
			Amount:     r.Amount,
			Category:   r.Category,
			Difficulty: r.Difficulty,
			Type:       r.Type,
		}
	}
	return &LeaderboardResponse{Entries: entries}
}
