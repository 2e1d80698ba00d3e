package repositories

import (
	"context"
	"fmt"
	"soloq/pkg/database/models"

	"gorm.io/gorm"
)

// MatchRepository is the gateway for the match_data table and the
// transactional write of a freshly assembled match.
type MatchRepository interface {
	CreateMatch(ctx context.Context, match *models.MatchData) (int64, error)
	GetMatches(ctx context.Context) ([]models.MatchData, error)
	UpdateMatch(ctx context.Context, matchId string, fields map[string]any) (int64, error)
	DeleteMatch(ctx context.Context, matchId string) (int64, error)
	SaveAssembledMatch(ctx context.Context, match *models.MatchData, players []*models.PlayerData, bans *models.ChampionBans) error
}

// Match repository structure.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a match repository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// CreateMatch inserts a single match row.
func (mr *matchRepository) CreateMatch(ctx context.Context, match *models.MatchData) (int64, error) {
	result := mr.db.WithContext(ctx).Create(match)
	return result.RowsAffected, translateError("create match", "match_data", result.Error)
}

// GetMatches returns every stored match.
func (mr *matchRepository) GetMatches(ctx context.Context) ([]models.MatchData, error) {
	var matches []models.MatchData
	result := mr.db.WithContext(ctx).Find(&matches)
	return matches, translateError("get matches", "match_data", result.Error)
}

// UpdateMatch applies a partial field set to one match.
// The key is pulled out of the fields to build the WHERE clause.
func (mr *matchRepository) UpdateMatch(ctx context.Context, matchId string, fields map[string]any) (int64, error) {
	delete(fields, "match_id")
	if len(fields) == 0 {
		return 0, ErrEmptyUpdate
	}

	result := mr.db.WithContext(ctx).
		Model(&models.MatchData{}).
		Where("match_id = ?", matchId).
		Updates(fields)

	return result.RowsAffected, translateError("update match", "match_data", result.Error)
}

// DeleteMatch removes a match. Dependent rows cascade on the store side.
func (mr *matchRepository) DeleteMatch(ctx context.Context, matchId string) (int64, error) {
	result := mr.db.WithContext(ctx).
		Where("match_id = ?", matchId).
		Delete(&models.MatchData{})

	return result.RowsAffected, translateError("delete match", "match_data", result.Error)
}

// SaveAssembledMatch writes match, players and bans in that order inside
// one transaction, so dependents are never visible before their parent.
// Re-running the same match id trips the primary key and rolls back
// without touching anything, which makes re-invocation idempotent.
func (mr *matchRepository) SaveAssembledMatch(
	ctx context.Context,
	match *models.MatchData,
	players []*models.PlayerData,
	bans *models.ChampionBans,
) error {
	return mr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Create(match)
		if result.Error != nil {
			return translateError("create match", "match_data", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("match %s: %w", match.MatchId, ErrNoRowsAffected)
		}

		result = tx.Create(&players)
		if result.Error != nil {
			return translateError("create players", "player_data", result.Error)
		}
		if result.RowsAffected != int64(len(players)) {
			return fmt.Errorf("match %s players: %w", match.MatchId, ErrNoRowsAffected)
		}

		result = tx.Create(bans)
		if result.Error != nil {
			return translateError("create bans", "champion_bans", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("match %s bans: %w", match.MatchId, ErrNoRowsAffected)
		}

		return nil
	})
}
