package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tupyy/achievement-tracker/internal/metrics"
	"github.com/tupyy/achievement-tracker/internal/models"
	"github.com/tupyy/achievement-tracker/internal/store"
	srvErrors "github.com/tupyy/achievement-tracker/pkg/errors"
	"github.com/tupyy/achievement-tracker/pkg/scheduler"
)

const (
	DefaultFreshnessWindow = 10 * time.Minute

	tracerName = "github.com/tupyy/achievement-tracker/internal/services"
)

// LibraryClient is the upstream API as seen by the aggregation.
type LibraryClient interface {
	GetOwnedGames(ctx context.Context, creds models.Credentials) ([]models.Game, error)
	GetSchema(ctx context.Context, creds models.Credentials, appID int) ([]models.AchievementDefinition, error)
	GetPlayerAchievements(ctx context.Context, creds models.Credentials, appID int) ([]models.PlayerAchievementState, error)
}

// LibraryService aggregates the library, merges achievements and caches the snapshot.
type LibraryService struct {
	store           *store.Store
	client          LibraryClient
	scheduler       *scheduler.Scheduler
	freshnessWindow time.Duration
	locale          language.Tag
	now             func() time.Time
	tracer          trace.Tracer

	// runs holds the aggregation in flight per Steam id.
	runs singleflight.Group

	mu         sync.Mutex
	generation uint64
}

func NewLibraryService(st *store.Store, client LibraryClient, s *scheduler.Scheduler, freshnessWindow time.Duration) *LibraryService {
	if freshnessWindow <= 0 {
		freshnessWindow = DefaultFreshnessWindow
	}
	return &LibraryService{
		store:           st,
		client:          client,
		scheduler:       s,
		freshnessWindow: freshnessWindow,
		locale:          language.English,
		now:             time.Now,
		tracer:          otel.Tracer(tracerName),
	}
}

func (s *LibraryService) WithClock(now func() time.Time) *LibraryService {
	s.now = now
	return s
}

// WithTracerProvider replaces the global tracer provider for this service.
func (s *LibraryService) WithTracerProvider(tp trace.TracerProvider) *LibraryService {
	s.tracer = tp.Tracer(tracerName)
	return s
}

// WithLocale sets the collation used to sort games by name.
func (s *LibraryService) WithLocale(tag language.Tag) *LibraryService {
	s.locale = tag
	return s
}

// LoadLibrary returns the cached snapshot while it is fresh, otherwise it aggregates
// the library again and replaces the cache.
func (s *LibraryService) LoadLibrary(ctx context.Context, creds models.Credentials, policy models.CachePolicy) (*models.LibrarySnapshot, error) {
	if !creds.IsComplete() {
		return nil, srvErrors.NewCredentialsMissingError()
	}

	window := s.freshnessWindow
	if policy.FreshnessWindow > 0 {
		window = policy.FreshnessWindow
	}

	if !policy.ForceRefresh {
		if snapshot, ok := s.fresh(ctx, creds, window); ok {
			metrics.LibraryCache.WithLabelValues("hit").Inc()
			return snapshot, nil
		}
		metrics.LibraryCache.WithLabelValues("miss").Inc()
	} else {
		metrics.LibraryCache.WithLabelValues("forced").Inc()
	}

	return s.run(ctx, creds, policy.ForceRefresh)
}

// ForceRefresh drops the cached snapshot and aggregates the library again.
func (s *LibraryService) ForceRefresh(ctx context.Context, creds models.Credentials) (*models.LibrarySnapshot, error) {
	return s.LoadLibrary(ctx, creds, models.CachePolicy{ForceRefresh: true})
}

// GameAchievements returns the merged achievements of one game of the current snapshot.
func (s *LibraryService) GameAchievements(ctx context.Context, creds models.Credentials, appID int) (models.Game, []models.MergedAchievement, error) {
	snapshot, err := s.LoadLibrary(ctx, creds, models.CachePolicy{})
	if err != nil {
		return models.Game{}, nil, err
	}
	for _, g := range snapshot.Games {
		if g.AppID == appID {
			return g, snapshot.AchievementsByGame[appID], nil
		}
	}
	return models.Game{}, nil, srvErrors.NewGameNotFoundError(appID)
}

// fresh returns the cached snapshot when it belongs to creds and is younger than window.
// Missing or corrupt values count as a miss.
func (s *LibraryService) fresh(ctx context.Context, creds models.Credentials, window time.Duration) (*models.LibrarySnapshot, bool) {
	snapshot, err := s.store.Snapshots().Get(ctx)
	if err != nil {
		if !srvErrors.IsResourceNotFoundError(err) {
			zap.S().Named("library_service").Warnw("ignoring cached snapshot", "error", err)
		}
		return nil, false
	}
	if snapshot.SteamID != creds.SteamID {
		zap.S().Named("library_service").Debugw("cached snapshot belongs to another account", "cached", snapshot.SteamID)
		return nil, false
	}
	age := s.now().Sub(snapshot.FetchedAt)
	if age < 0 {
		zap.S().Named("library_service").Warnw("cached snapshot is dated in the future, refetching", "fetched_at", snapshot.FetchedAt)
		return nil, false
	}
	if age >= window {
		zap.S().Named("library_service").Debugw("cached snapshot is stale", "age", age, "window", window)
		return nil, false
	}
	return snapshot, true
}

// run aggregates the library once per Steam id at a time: callers missing the cache
// while a run is in flight wait for that run instead of superseding it. A forced
// refresh always starts a new run, and later misses join it.
//
// The run is detached from the caller's cancellation so one caller leaving does not
// fail the others; a caller whose context ends stops waiting and gets ctx.Err().
func (s *LibraryService) run(ctx context.Context, creds models.Credentials, force bool) (*models.LibrarySnapshot, error) {
	key := creds.SteamID
	if force {
		s.runs.Forget(key)
	}

	runCtx := context.WithoutCancel(ctx)
	ch := s.runs.DoChan(key, func() (any, error) {
		gen, err := s.begin(runCtx, force)
		if err != nil {
			return nil, err
		}
		return s.aggregate(runCtx, creds, gen)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			zap.S().Named("library_service").Debugw("joined aggregation in flight", "steam_id", key)
		}
		snapshot := *res.Val.(*models.LibrarySnapshot)
		return &snapshot, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// begin starts a new generation. A forced refresh clears the cache in the same
// critical section so no older run can persist after the clear.
func (s *LibraryService) begin(ctx context.Context, clear bool) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if clear {
		if err := s.store.Snapshots().Clear(ctx); err != nil {
			return 0, fmt.Errorf("failed to clear cached snapshot: %w", err)
		}
	}
	return s.generation, nil
}

type gameFetch struct {
	game   models.Game
	schema *scheduler.Future[scheduler.Result[any]]
	state  *scheduler.Future[scheduler.Result[any]]
}

func (s *LibraryService) aggregate(ctx context.Context, creds models.Credentials, gen uint64) (*models.LibrarySnapshot, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := zap.S().Named("library_service").With("run_id", runID, "generation", gen)

	ctx, span := s.tracer.Start(ctx, "library.aggregate", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.Int64("run.generation", int64(gen)),
	))
	defer span.End()

	games, err := s.client.GetOwnedGames(ctx, creds)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch library")
		logger.Errorw("failed to fetch game library", "error", err)
		return nil, fmt.Errorf("failed to fetch game library: %w", err)
	}
	games = uniqueGames(games)
	span.SetAttributes(attribute.Int("library.games", len(games)))
	logger.Infow("aggregating library", "games", len(games))

	fetches := make([]gameFetch, 0, len(games))
	for _, g := range games {
		fetches = append(fetches, gameFetch{
			game:   g,
			schema: s.scheduler.AddWork(s.schemaWork(span, creds, g.AppID)),
			state:  s.scheduler.AddWork(s.stateWork(span, creds, g.AppID)),
		})
	}

	kept := make([]models.Game, 0, len(fetches))
	byGame := make(map[int][]models.MergedAchievement, len(fetches))
	for i, f := range fetches {
		defs, states, err := s.join(ctx, logger, f)
		if err != nil {
			for _, rest := range fetches[i+1:] {
				rest.schema.Stop()
				rest.state.Stop()
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, "aggregation cancelled")
			return nil, err
		}

		merged := Merge(f.game.AppID, defs, states)
		if len(merged) == 0 {
			continue
		}
		kept = append(kept, f.game)
		byGame[f.game.AppID] = merged
	}

	sortGames(kept, s.locale)

	snapshot := models.LibrarySnapshot{
		RunID:              runID,
		SteamID:            creds.SteamID,
		Games:              kept,
		AchievementsByGame: byGame,
		FetchedAt:          s.now().UTC().Round(0),
	}

	s.persist(ctx, logger, gen, snapshot)

	metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.Int("library.games_with_achievements", len(kept)))
	logger.Infow("library aggregated", "games", len(kept), "duration", time.Since(start))

	return &snapshot, nil
}

// join waits for both fetches of a game. Fetch failures degrade the game;
// only the caller's context ending is returned as an error.
func (s *LibraryService) join(ctx context.Context, logger *zap.SugaredLogger, f gameFetch) ([]models.AchievementDefinition, []models.PlayerAchievementState, error) {
	schemaResult, err := f.schema.Await(ctx)
	if err != nil {
		f.state.Stop()
		return nil, nil, err
	}
	stateResult, err := f.state.Await(ctx)
	if err != nil {
		return nil, nil, err
	}

	var defs []models.AchievementDefinition
	if schemaResult.Err != nil {
		metrics.DegradedGames.WithLabelValues("schema").Inc()
		logger.Debugw("schema unavailable, game has no achievements", "appid", f.game.AppID, "error", schemaResult.Err)
	} else if d, ok := schemaResult.Data.([]models.AchievementDefinition); ok {
		defs = d
	}

	var states []models.PlayerAchievementState
	if stateResult.Err != nil {
		metrics.DegradedGames.WithLabelValues("state").Inc()
		logger.Debugw("player state unavailable, treating game as locked", "appid", f.game.AppID, "error", stateResult.Err)
	} else if st, ok := stateResult.Data.([]models.PlayerAchievementState); ok {
		states = st
	}

	return defs, states, nil
}

// persist writes the snapshot unless a newer run started meanwhile.
func (s *LibraryService) persist(ctx context.Context, logger *zap.SugaredLogger, gen uint64, snapshot models.LibrarySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		metrics.DiscardedRuns.Inc()
		logger.Infow("discarding snapshot of superseded run", "current_generation", s.generation)
		return
	}

	if err := s.store.Snapshots().Save(ctx, snapshot); err != nil {
		logger.Errorw("failed to persist snapshot", "error", err)
	}
}

func (s *LibraryService) schemaWork(parent trace.Span, creds models.Credentials, appID int) scheduler.Work[any] {
	return func(ctx context.Context) (any, error) {
		ctx, span := s.tracer.Start(trace.ContextWithSpan(ctx, parent), "library.fetch_schema",
			trace.WithAttributes(attribute.Int("game.appid", appID)))
		defer span.End()

		defs, err := s.client.GetSchema(ctx, creds, appID)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		return defs, nil
	}
}

func (s *LibraryService) stateWork(parent trace.Span, creds models.Credentials, appID int) scheduler.Work[any] {
	return func(ctx context.Context) (any, error) {
		ctx, span := s.tracer.Start(trace.ContextWithSpan(ctx, parent), "library.fetch_state",
			trace.WithAttributes(attribute.Int("game.appid", appID)))
		defer span.End()

		states, err := s.client.GetPlayerAchievements(ctx, creds, appID)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		return states, nil
	}
}

// sortGames orders games by name, case-insensitively for the given locale.
// Equal names keep their library order.
func sortGames(games []models.Game, tag language.Tag) {
	c := collate.New(tag, collate.IgnoreCase)
	slices.SortStableFunc(games, func(a, b models.Game) int {
		return c.CompareString(a.Name, b.Name)
	})
}

func uniqueGames(games []models.Game) []models.Game {
	seen := make(map[int]struct{}, len(games))
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if _, ok := seen[g.AppID]; ok {
			continue
		}
		seen[g.AppID] = struct{}{}
		out = append(out, g)
	}
	return out
}
