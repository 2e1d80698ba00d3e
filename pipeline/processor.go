package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	leaguefetcher "soloq/pipeline/data/league"
	matchfetcher "soloq/pipeline/data/match"
	"soloq/pipeline/extractor"
	"soloq/pipeline/repositories"
	"soloq/pkg/config"
	"soloq/pkg/logger"
	"soloq/pkg/messages"
	"soloq/pkg/redis"
	tiervalues "soloq/pkg/riotvalues/tier"
	"sync"

	"gorm.io/gorm"
)

// Prefix of the in-flight match locks on Redis.
const matchLockPrefix = "match:lock:"

// Processor drives matches through assemble and persist.
type Processor struct {
	assembler *extractor.Assembler
	matches   *matchfetcher.MatchFetcher
	leagues   *leaguefetcher.LeagueFetcher
	matchRepo repositories.MatchRepository
	redis     *redis.RedisClient
	log       *logger.Logger
	cfg       *config.Config
}

// NewProcessor wires the processor dependencies.
func NewProcessor(
	assembler *extractor.Assembler,
	matches *matchfetcher.MatchFetcher,
	leagues *leaguefetcher.LeagueFetcher,
	matchRepo repositories.MatchRepository,
	redisClient *redis.RedisClient,
	log *logger.Logger,
	cfg *config.Config,
) *Processor {
	return &Processor{
		assembler: assembler,
		matches:   matches,
		leagues:   leagues,
		matchRepo: matchRepo,
		redis:     redisClient,
		log:       log,
		cfg:       cfg,
	}
}

// ProcessMatch runs one match end to end under its own deadline.
// Any error aborts only this match, the caller decides whether to go on.
func (p *Processor) ProcessMatch(ctx context.Context, matchId string) error {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.ProcessTimeout)
	defer cancel()

	// In-flight lock so two workers never race on the same match id.
	// The primary key still guards correctness if Redis is unavailable.
	lockKey := matchLockPrefix + matchId
	locked, err := p.redis.AcquireLock(ctx, lockKey, p.cfg.ProcessTimeout)
	if err != nil {
		p.log.Errorf("couldn't acquire the lock for match %s: %v", matchId, err)
	} else if !locked {
		p.log.Infof(messages.MatchSkippedMsg, matchId, "already in flight")
		return nil
	} else {
		defer p.redis.ReleaseLock(context.WithoutCancel(ctx), lockKey)
	}

	assembled, err := p.assembler.Assemble(ctx, matchId)
	if err != nil {
		p.log.Errorf(messages.MatchSkippedMsg, matchId, err)
		return err
	}

	// Wrong queue or not normally concluded. Frequent and fine.
	if assembled == nil {
		p.log.Infof(messages.MatchSkippedMsg, matchId, "filtered out")
		return nil
	}

	if err := p.matchRepo.SaveAssembledMatch(ctx, assembled.Match, assembled.Players, assembled.Bans); err != nil {
		// The unique key firing means the match was already ingested.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			p.log.Infof(messages.MatchSkippedMsg, matchId, "already stored")
			return nil
		}

		p.log.Errorf(messages.MatchSkippedMsg, matchId, err)
		return err
	}

	p.log.Infof(messages.MatchStoredMsg, matchId, len(assembled.Players))
	return nil
}

// RunBatch samples a random ranked player and processes their recent
// ranked matches through a bounded worker pool.
func (p *Processor) RunBatch(ctx context.Context, count int) error {
	tier := tiervalues.TrackedTiers[rand.IntN(len(tiervalues.TrackedTiers))]
	division := tiervalues.DivisionNames[rand.IntN(len(tiervalues.DivisionNames))]

	entries, err := p.leagues.GetLeagueEntries(ctx, tier, division, 1)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return fmt.Errorf("no league entries on %s %s", tier, division)
	}

	player := entries[rand.IntN(len(entries))]

	matchIds, err := p.matches.GetMatchList(ctx, player.Puuid, count)
	if err != nil {
		return err
	}

	p.log.Infof("processing %d matches from a %s %s player", len(matchIds), tier, division)

	// Bounded worker pool. Each match is atomic against the store,
	// so two matches in flight can't interleave dependents.
	ids := make(chan string)
	var wg sync.WaitGroup

	workers := max(p.cfg.Workers, 1)
	for range workers {
		go func() {
			for matchId := range ids {
				// Failures are logged per match, the batch keeps going.
				_ = p.ProcessMatch(ctx, matchId)
				wg.Done()
			}
		}()
	}

	for _, matchId := range matchIds {
		wg.Add(1)
		ids <- matchId
	}

	close(ids)
	wg.Wait()

	return nil
}
