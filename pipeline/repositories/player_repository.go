package repositories

import (
	"context"
	"soloq/pkg/database/models"

	"gorm.io/gorm"
)

// PlayerRepository is the gateway for the player_data table.
type PlayerRepository interface {
	CreatePlayerData(ctx context.Context, players []*models.PlayerData) (int64, error)
	GetPlayerData(ctx context.Context) ([]models.PlayerData, error)
	GetPlayerDataByMatch(ctx context.Context, matchId string) ([]models.PlayerData, error)
	UpdatePlayerData(ctx context.Context, id uint64, fields map[string]any) (int64, error)
	DeletePlayerData(ctx context.Context, id uint64) (int64, error)
}

// Player repository structure.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// CreatePlayerData inserts a batch of player rows.
// The match row must already exist, the foreign key enforces it.
func (pr *playerRepository) CreatePlayerData(ctx context.Context, players []*models.PlayerData) (int64, error) {
	result := pr.db.WithContext(ctx).Create(&players)
	return result.RowsAffected, translateError("create players", "player_data", result.Error)
}

// GetPlayerData returns every stored player row.
func (pr *playerRepository) GetPlayerData(ctx context.Context) ([]models.PlayerData, error) {
	var players []models.PlayerData
	result := pr.db.WithContext(ctx).Find(&players)
	return players, translateError("get players", "player_data", result.Error)
}

// GetPlayerDataByMatch returns the player rows of one match in insertion order.
func (pr *playerRepository) GetPlayerDataByMatch(ctx context.Context, matchId string) ([]models.PlayerData, error) {
	var players []models.PlayerData
	result := pr.db.WithContext(ctx).
		Where("match_id = ?", matchId).
		Order("id").
		Find(&players)

	return players, translateError("get players", "player_data", result.Error)
}

// UpdatePlayerData applies a partial field set to one player row.
func (pr *playerRepository) UpdatePlayerData(ctx context.Context, id uint64, fields map[string]any) (int64, error) {
	delete(fields, "id")
	if len(fields) == 0 {
		return 0, ErrEmptyUpdate
	}

	result := pr.db.WithContext(ctx).
		Model(&models.PlayerData{}).
		Where("id = ?", id).
		Updates(fields)

	return result.RowsAffected, translateError("update player", "player_data", result.Error)
}

// DeletePlayerData removes a single player row.
func (pr *playerRepository) DeletePlayerData(ctx context.Context, id uint64) (int64, error) {
	result := pr.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.PlayerData{})

	return result.RowsAffected, translateError("delete player", "player_data", result.Error)
}
