package repositories

import (
	"context"
	"errors"
	"soloq/pipeline/repositories/testutil"
	"soloq/pkg/database/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestChampionRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping champion repository test in short mode")
	}

	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repo := NewChampionRepository(db)
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		rows, err := repo.CreateChampion(ctx, &models.Champion{ChampionId: 157, ChampionName: "Yasuo"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		champions, err := repo.GetChampions(ctx)
		require.NoError(t, err)
		require.Len(t, champions, 1)
		assert.Equal(t, "Yasuo", champions[0].ChampionName)
	})

	t.Run("DuplicateCreateIsAnIntegrityError", func(t *testing.T) {
		_, err := repo.CreateChampion(ctx, &models.Champion{ChampionId: 157, ChampionName: "Yasuo"})
		require.Error(t, err)

		var integrity *IntegrityError
		require.True(t, errors.As(err, &integrity))
		assert.Equal(t, "champions", integrity.Table)
		assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
	})

	t.Run("BulkUpsertWithQuotedNames", func(t *testing.T) {
		champions := []models.Champion{
			{ChampionId: 145, ChampionName: "Kai'Sa"},
			{ChampionId: 121, ChampionName: "Kha'Zix"},
			{ChampionId: 901, ChampionName: "O'Brien's Blade"},
		}

		rows, err := repo.BulkUpsertChampions(ctx, champions)
		require.NoError(t, err)
		assert.Equal(t, int64(3), rows)

		stored, err := repo.GetChampions(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 4)

		// Sorted by champion id, names preserved with their quotes.
		assert.Equal(t, "Kha'Zix", stored[0].ChampionName)
		assert.Equal(t, "Kai'Sa", stored[1].ChampionName)
		assert.Equal(t, "Yasuo", stored[2].ChampionName)
		assert.Equal(t, "O'Brien's Blade", stored[3].ChampionName)
	})

	t.Run("UpsertRefreshesTheName", func(t *testing.T) {
		_, err := repo.BulkUpsertChampions(ctx, []models.Champion{
			{ChampionId: 901, ChampionName: "O'Brien's Edge"},
		})
		require.NoError(t, err)

		stored, err := repo.GetChampions(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 4)
		assert.Equal(t, "O'Brien's Edge", stored[3].ChampionName)
	})

	t.Run("EmptyBulkUpsertIsANoOp", func(t *testing.T) {
		rows, err := repo.BulkUpsertChampions(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, rows)
	})

	t.Run("Update", func(t *testing.T) {
		rows, err := repo.UpdateChampion(ctx, 157, map[string]any{"champion_name": "Yasuo, the Unforgiven"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("EmptyUpdateIsRejected", func(t *testing.T) {
		_, err := repo.UpdateChampion(ctx, 157, map[string]any{"champion_id": 158})
		assert.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("Delete", func(t *testing.T) {
		rows, err := repo.DeleteChampion(ctx, 121)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})
}

func TestSaveAssembledMatch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping match persistence test in short mode")
	}

	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	matchRepo := NewMatchRepository(db)
	playerRepo := NewPlayerRepository(db)
	banRepo := NewBanRepository(db)
	championRepo := NewChampionRepository(db)
	ctx := context.Background()

	// The player rows reference the champion table.
	_, err := championRepo.BulkUpsertChampions(ctx, getTestChampions())
	require.NoError(t, err)

	t.Run("RoundTrip", func(t *testing.T) {
		match := getTestMatch("EUW1_1000000001")
		players := getTestPlayers(match.MatchId)
		bans := getTestBans(match.MatchId)

		require.NoError(t, matchRepo.SaveAssembledMatch(ctx, match, players, bans))

		matches, err := matchRepo.GetMatches(ctx)
		require.NoError(t, err)
		require.Len(t, matches, 1)

		stored := matches[0]
		assert.Equal(t, match.MatchId, stored.MatchId)
		assert.InDelta(t, 31.8, stored.GameDuration, 1e-9)
		assert.Equal(t, "BLUE", stored.Win)
		assert.Equal(t, "RED", stored.FirstDrake)
		assert.Equal(t, 4, stored.DragonKills)
		assert.Equal(t, "NONE", stored.FirstBaron)
		assert.False(t, stored.Surrender)

		storedPlayers, err := playerRepo.GetPlayerDataByMatch(ctx, match.MatchId)
		require.NoError(t, err)
		require.Len(t, storedPlayers, 10)

		// Insertion order is preserved by the serial key.
		for i, player := range storedPlayers {
			assert.Equal(t, i+1, player.ChampionId)
		}

		first := storedPlayers[0]
		assert.Equal(t, 1, first.FirstBlood)
		require.NotNil(t, first.Rank)
		require.NotNil(t, first.Division)
		assert.Equal(t, "GOLD", *first.Rank)
		assert.Equal(t, 2, *first.Division)
		assert.InDelta(t, 612.5, first.DmgPerMin, 1e-9)
		assert.InDelta(t, 415.25, first.DmgTakenPerMin, 1e-9)
		assert.InDelta(t, 7.4, first.CsPerMin, 1e-9)

		// The unranked players keep both columns null.
		assert.Nil(t, storedPlayers[9].Rank)
		assert.Nil(t, storedPlayers[9].Division)

		storedBans, err := banRepo.GetChampionBansByMatch(ctx, match.MatchId)
		require.NoError(t, err)
		assert.Equal(t, 11, storedBans.Ban1)
		assert.Equal(t, 0, storedBans.Ban7)
		assert.Equal(t, 20, storedBans.Ban10)
	})

	t.Run("DuplicateMatchIdRollsBack", func(t *testing.T) {
		match := getTestMatch("EUW1_1000000001")
		players := getTestPlayers(match.MatchId)
		bans := getTestBans(match.MatchId)

		err := matchRepo.SaveAssembledMatch(ctx, match, players, bans)
		require.Error(t, err)

		var integrity *IntegrityError
		require.True(t, errors.As(err, &integrity))
		assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

		// The first ingestion stays untouched.
		storedPlayers, err := playerRepo.GetPlayerDataByMatch(ctx, match.MatchId)
		require.NoError(t, err)
		assert.Len(t, storedPlayers, 10)
	})

	t.Run("UnknownChampionRollsBackTheWholeMatch", func(t *testing.T) {
		match := getTestMatch("EUW1_1000000002")
		players := getTestPlayers(match.MatchId)
		players[4].ChampionId = 9999
		bans := getTestBans(match.MatchId)

		err := matchRepo.SaveAssembledMatch(ctx, match, players, bans)
		require.Error(t, err)

		var integrity *IntegrityError
		require.True(t, errors.As(err, &integrity))

		// The match row must not survive its failed dependents.
		matches, err := matchRepo.GetMatches(ctx)
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})
}

func TestMatchRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping match repository test in short mode")
	}

	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	matchRepo := NewMatchRepository(db)
	playerRepo := NewPlayerRepository(db)
	banRepo := NewBanRepository(db)
	championRepo := NewChampionRepository(db)
	ctx := context.Background()

	_, err := championRepo.BulkUpsertChampions(ctx, getTestChampions())
	require.NoError(t, err)

	match := getTestMatch("EUW1_2000000001")
	require.NoError(t, matchRepo.SaveAssembledMatch(ctx, match, getTestPlayers(match.MatchId), getTestBans(match.MatchId)))

	t.Run("Update", func(t *testing.T) {
		rows, err := matchRepo.UpdateMatch(ctx, match.MatchId, map[string]any{"surrender": true})
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		matches, err := matchRepo.GetMatches(ctx)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.True(t, matches[0].Surrender)
	})

	t.Run("EmptyUpdateIsRejected", func(t *testing.T) {
		_, err := matchRepo.UpdateMatch(ctx, match.MatchId, map[string]any{"match_id": "EUW1_X"})
		assert.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("UpdateMissingMatchAffectsNothing", func(t *testing.T) {
		rows, err := matchRepo.UpdateMatch(ctx, "EUW1_404", map[string]any{"surrender": true})
		require.NoError(t, err)
		assert.Zero(t, rows)
	})

	t.Run("PlayerUpdate", func(t *testing.T) {
		players, err := playerRepo.GetPlayerDataByMatch(ctx, match.MatchId)
		require.NoError(t, err)
		require.Len(t, players, 10)

		rows, err := playerRepo.UpdatePlayerData(ctx, players[0].ID, map[string]any{"kills": 11})
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("BanUpdate", func(t *testing.T) {
		rows, err := banRepo.UpdateChampionBans(ctx, match.MatchId, map[string]any{"ban_7": 42})
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		bans, err := banRepo.GetChampionBansByMatch(ctx, match.MatchId)
		require.NoError(t, err)
		assert.Equal(t, 42, bans.Ban7)
	})

	t.Run("DeleteCascadesToDependents", func(t *testing.T) {
		rows, err := matchRepo.DeleteMatch(ctx, match.MatchId)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		players, err := playerRepo.GetPlayerDataByMatch(ctx, match.MatchId)
		require.NoError(t, err)
		assert.Empty(t, players)

		_, err = banRepo.GetChampionBansByMatch(ctx, match.MatchId)
		require.Error(t, err)
	})
}
