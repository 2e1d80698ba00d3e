package jobs

import (
	"context"
	"fmt"
	"soloq/pipeline/repositories"
	"soloq/pipeline/requests"
	"soloq/pkg/config"
	"soloq/pkg/database"
	"soloq/pkg/ddragon"
	"soloq/pkg/logger"
	"soloq/pkg/redis"
	"time"
)

// Prefix of the champion name keys on Redis.
const championKeyPrefix = "champion:"

// SyncChampions refreshes the champions reference table from Data Dragon
// and mirrors the names into Redis. Patches add and rename champions, so
// the sync upserts instead of inserting blindly.
func SyncChampions(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ProcessTimeout)
	defer cancel()

	log, err := logger.CreateLogger(&cfg.Bucket)
	if err != nil {
		return fmt.Errorf("couldn't create the logger: %w", err)
	}

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("couldn't get database connection: %w", err)
	}

	client := requests.NewClient(&cfg.Riot, cfg.RequestTimeout)
	dragon := ddragon.NewClient(client, ddragon.DefaultBaseUrl)

	version, err := dragon.GetLatestVersion(ctx)
	if err != nil {
		return fmt.Errorf("couldn't get the latest version: %w", err)
	}

	champions, err := dragon.GetChampions(ctx, version, ddragon.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("couldn't get the champions: %w", err)
	}

	championRepository := repositories.NewChampionRepository(db)
	affected, err := championRepository.BulkUpsertChampions(ctx, champions)
	if err != nil {
		return fmt.Errorf("couldn't upsert the champions: %w", err)
	}

	// Mirror the names so other services can resolve ids without the database.
	rdb := redis.NewClient(&cfg.Redis)
	defer rdb.Close()

	for _, champion := range champions {
		key := fmt.Sprint(championKeyPrefix, champion.ChampionId)
		if err := rdb.Set(ctx, key, champion.ChampionName, 0); err != nil {
			log.Errorf("couldn't cache champion %d: %v", champion.ChampionId, err)
		}
	}

	log.Infof("champion sync on version %s: %d champions, %d rows affected", version, len(champions), affected)

	objectKey := fmt.Sprintf("championsync/%s.log", time.Now().Format("2006-01-02T15-04-05"))
	if err := log.UploadToS3Bucket(ctx, objectKey); err != nil {
		return fmt.Errorf("couldn't upload the sync log: %w", err)
	}

	return nil
}
