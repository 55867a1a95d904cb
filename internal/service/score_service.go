package service

import (
	"context"

	"trivia-board/internal/domain"
	"trivia-board/internal/dto"
	"trivia-board/internal/logger"
	"trivia-board/internal/metrics"
	"trivia-board/internal/util"

	"go.uber.org/zap"
)

// ScoreSubmittedMessage is returned to clients after a score is recorded.
const ScoreSubmittedMessage = "Score submitted successfully"

// ScoreService records quiz attempts and serves the leaderboard.
type ScoreService interface {
	SubmitScore(ctx context.Context, req *dto.SubmitScoreRequest) (*dto.SubmitScoreResponse, error)
	Leaderboard(ctx context.Context, query *dto.LeaderboardQuery) (*dto.LeaderboardResponse, error)
}

type scoreService struct {
	userRepo  domain.UserRepository
	scoreRepo domain.ScoreRepository
}

func NewScoreService(userRepo domain.UserRepository, scoreRepo domain.ScoreRepository) ScoreService {
	return &scoreService{
		userRepo:  userRepo,
		scoreRepo: scoreRepo,
	}
}

// SubmitScore resolves the user first and only then creates the record.
// Concurrent submissions for one user each create their own record.
func (s *scoreService) SubmitScore(ctx context.Context, req *dto.SubmitScoreRequest) (*dto.SubmitScoreResponse, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, domain.NewPersistenceUnavailableError("Failed to look up user.", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(req.Username)
	}

	record := &domain.ScoreRecord{
		ID:     util.NewULID(),
		UserID: user.ID,
		Score:  req.Score,
		Time:   req.Time,
		Quiz:   req.QuizData.ToDomain(),
	}
	if err := s.scoreRepo.CreateScore(ctx, record); err != nil {
		logger.Get().Error("Failed to create score record",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		return nil, domain.NewScoreSubmissionFailedError(err)
	}
	metrics.ScoresSubmitted.Inc()

	return &dto.SubmitScoreResponse{
		Success: true,
		Message: ScoreSubmittedMessage,
	}, nil
}

// Leaderboard returns matching records, best score first and faster time on ties.
func (s *scoreService) Leaderboard(ctx context.Context, query *dto.LeaderboardQuery) (*dto.LeaderboardResponse, error) {
	rows, err := s.scoreRepo.Leaderboard(ctx, query.ToDomain())
	if err != nil {
		return nil, domain.NewPersistenceUnavailableError("Failed to load leaderboard.", err)
	}
	return dto.NewLeaderboardResponse(rows), nil
}
