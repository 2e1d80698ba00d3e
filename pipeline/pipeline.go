package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	leaguefetcher "soloq/pipeline/data/league"
	matchfetcher "soloq/pipeline/data/match"
	"soloq/pipeline/extractor"
	"soloq/pipeline/repositories"
	"soloq/pipeline/requests"
	"soloq/pkg/config"
	"soloq/pkg/database"
	"soloq/pkg/logger"
	"soloq/pkg/redis"
	"time"
)

func main() {
	matchId := flag.String("match", "", "process a single match by its id")
	count := flag.Int("count", 20, "how many recent matches to process in batch mode")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}

	// Runs the migrations.
	rawDb, err := db.DB()
	if err != nil {
		log.Fatalf("Couldn't get raw db connection: %v", err)
	}

	if err := database.RunMigrations(rawDb, cfg.Database.Database); err != nil {
		log.Fatal(err)
	}

	runLog, err := logger.CreateLogger(&cfg.Bucket)
	if err != nil {
		log.Fatalf("Couldn't create the logger: %v", err)
	}

	// One request client, so every fetcher shares the rate limiter.
	client := requests.NewClient(&cfg.Riot, cfg.RequestTimeout)

	matches := matchfetcher.NewMatchFetcher(
		client,
		fmt.Sprintf("https://%s.api.riotgames.com", cfg.Riot.MainRegion),
	)
	leagues := leaguefetcher.NewLeagueFetcher(
		client,
		fmt.Sprintf("https://%s.api.riotgames.com", cfg.Riot.SubRegion),
	)

	assembler := extractor.NewAssembler(
		matches,
		extractor.NewNormalizer(extractor.NewRankResolver(leagues)),
	)

	redisClient := redis.NewClient(&cfg.Redis)
	defer redisClient.Close()

	processor := NewProcessor(
		assembler,
		matches,
		leagues,
		repositories.NewMatchRepository(db),
		redisClient,
		runLog,
		cfg,
	)

	ctx := context.Background()

	if *matchId != "" {
		// Single match mode: the exit code reflects this one match.
		if err := processor.ProcessMatch(ctx, *matchId); err != nil {
			uploadLog(ctx, runLog)
			log.Fatalf("Match %s failed: %v", *matchId, err)
		}
	} else if err := processor.RunBatch(ctx, *count); err != nil {
		uploadLog(ctx, runLog)
		log.Fatalf("Batch run failed: %v", err)
	}

	uploadLog(ctx, runLog)
}

// uploadLog pushes the run log to the bucket when one is configured.
func uploadLog(ctx context.Context, runLog *logger.Logger) {
	objectKey := fmt.Sprintf("pipeline/%s.log", time.Now().Format("2006-01-02T15-04-05"))
	if err := runLog.UploadToS3Bucket(ctx, objectKey); err != nil {
		log.Printf("Couldn't upload the run log: %v", err)
	}
}
