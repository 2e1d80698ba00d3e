package repositories

import (
	"context"
	"fmt"
	"soloq/pkg/database/models"
	"strings"

	"gorm.io/gorm"
)

// ChampionRepository is the gateway for the champions reference table.
type ChampionRepository interface {
	CreateChampion(ctx context.Context, champion *models.Champion) (int64, error)
	BulkUpsertChampions(ctx context.Context, champions []models.Champion) (int64, error)
	GetChampions(ctx context.Context) ([]models.Champion, error)
	UpdateChampion(ctx context.Context, championId int, fields map[string]any) (int64, error)
	DeleteChampion(ctx context.Context, championId int) (int64, error)
}

// Champion repository structure.
type championRepository struct {
	db *gorm.DB
}

// NewChampionRepository creates a champion repository.
func NewChampionRepository(db *gorm.DB) ChampionRepository {
	return &championRepository{db: db}
}

// CreateChampion inserts a single champion through parameter binding.
func (cr *championRepository) CreateChampion(ctx context.Context, champion *models.Champion) (int64, error) {
	result := cr.db.WithContext(ctx).Create(champion)
	return result.RowsAffected, translateError("create champion", "champions", result.Error)
}

// BulkUpsertChampions writes the whole reference table in one statement.
// The names are embedded as SQL literals, so they go through escapeLiteral.
// An existing champion gets its name refreshed, patches rename champions.
func (cr *championRepository) BulkUpsertChampions(ctx context.Context, champions []models.Champion) (int64, error) {
	if len(champions) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO champions (champion_id, champion_name) VALUES ")

	for i, champion := range champions {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%d, '%s')", champion.ChampionId, escapeLiteral(champion.ChampionName))
	}

	sb.WriteString(" ON CONFLICT (champion_id) DO UPDATE SET champion_name = EXCLUDED.champion_name")

	result := cr.db.WithContext(ctx).Exec(sb.String())
	return result.RowsAffected, translateError("bulk upsert champions", "champions", result.Error)
}

// GetChampions returns the whole reference table.
func (cr *championRepository) GetChampions(ctx context.Context) ([]models.Champion, error) {
	var champions []models.Champion
	result := cr.db.WithContext(ctx).Order("champion_id").Find(&champions)
	return champions, translateError("get champions", "champions", result.Error)
}

// UpdateChampion applies a partial field set to one champion.
func (cr *championRepository) UpdateChampion(ctx context.Context, championId int, fields map[string]any) (int64, error) {
	delete(fields, "champion_id")
	if len(fields) == 0 {
		return 0, ErrEmptyUpdate
	}

	result := cr.db.WithContext(ctx).
		Model(&models.Champion{}).
		Where("champion_id = ?", championId).
		Updates(fields)

	return result.RowsAffected, translateError("update champion", "champions", result.Error)
}

// DeleteChampion removes a champion from the reference table.
func (cr *championRepository) DeleteChampion(ctx context.Context, championId int) (int64, error) {
	result := cr.db.WithContext(ctx).
		Where("champion_id = ?", championId).
		Delete(&models.Champion{})

	return result.RowsAffected, translateError("delete champion", "champions", result.Error)
}

// escapeLiteral makes a string safe for literal embedding by doubling
// embedded quotes, the SQL standard escape. Quotes are never stripped:
// champion names legitimately contain apostrophes.
func escapeLiteral(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}
