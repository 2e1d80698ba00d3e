package repositories

import (
	"context"
	"soloq/pkg/database/models"

	"gorm.io/gorm"
)

// BanRepository is the gateway for the champion_bans table.
type BanRepository interface {
	CreateChampionBans(ctx context.Context, bans *models.ChampionBans) (int64, error)
	GetChampionBans(ctx context.Context) ([]models.ChampionBans, error)
	GetChampionBansByMatch(ctx context.Context, matchId string) (*models.ChampionBans, error)
	UpdateChampionBans(ctx context.Context, matchId string, fields map[string]any) (int64, error)
	DeleteChampionBans(ctx context.Context, matchId string) (int64, error)
}

// Ban repository structure.
type banRepository struct {
	db *gorm.DB
}

// NewBanRepository creates a ban repository.
func NewBanRepository(db *gorm.DB) BanRepository {
	return &banRepository{db: db}
}

// CreateChampionBans inserts the 10 slot ban row of a match.
func (br *banRepository) CreateChampionBans(ctx context.Context, bans *models.ChampionBans) (int64, error) {
	result := br.db.WithContext(ctx).Create(bans)
	return result.RowsAffected, translateError("create bans", "champion_bans", result.Error)
}

// GetChampionBans returns every stored ban row.
func (br *banRepository) GetChampionBans(ctx context.Context) ([]models.ChampionBans, error) {
	var bans []models.ChampionBans
	result := br.db.WithContext(ctx).Find(&bans)
	return bans, translateError("get bans", "champion_bans", result.Error)
}

// GetChampionBansByMatch returns the ban row of one match.
func (br *banRepository) GetChampionBansByMatch(ctx context.Context, matchId string) (*models.ChampionBans, error) {
	var bans models.ChampionBans
	result := br.db.WithContext(ctx).
		Where("match_id = ?", matchId).
		First(&bans)
	if result.Error != nil {
		return nil, translateError("get bans", "champion_bans", result.Error)
	}

	return &bans, nil
}

// UpdateChampionBans applies a partial field set to one ban row.
func (br *banRepository) UpdateChampionBans(ctx context.Context, matchId string, fields map[string]any) (int64, error) {
	delete(fields, "match_id")
	if len(fields) == 0 {
		return 0, ErrEmptyUpdate
	}

	result := br.db.WithContext(ctx).
		Model(&models.ChampionBans{}).
		Where("match_id = ?", matchId).
		Updates(fields)

	return result.RowsAffected, translateError("update bans", "champion_bans", result.Error)
}

// DeleteChampionBans removes the ban row of a match.
func (br *banRepository) DeleteChampionBans(ctx context.Context, matchId string) (int64, error) {
	result := br.db.WithContext(ctx).
		Where("match_id = ?", matchId).
		Delete(&models.ChampionBans{})

	return result.RowsAffected, translateError("delete bans", "champion_bans", result.Error)
}
