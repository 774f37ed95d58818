package services_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tupyy/achievement-tracker/internal/models"
	"github.com/tupyy/achievement-tracker/internal/services"
	"github.com/tupyy/achievement-tracker/internal/store"
	srvErrors "github.com/tupyy/achievement-tracker/pkg/errors"
	"github.com/tupyy/achievement-tracker/pkg/scheduler"
)

var _ = Describe("LibraryService", func() {
	var (
		ctx    context.Context
		kv     *store.MemoryKV
		st     *store.Store
		sched  *scheduler.Scheduler
		client *fakeClient
		now    time.Time
		srv    *services.LibraryService
		creds  models.Credentials
	)

	BeforeEach(func() {
		ctx = context.Background()
		kv = store.NewMemoryKV()
		st = store.NewStore(kv)
		sched = scheduler.NewScheduler(4)
		client = newFakeClient()
		now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		srv = services.NewLibraryService(st, client, sched, 10*time.Minute).
			WithClock(func() time.Time { return now })
		creds = models.Credentials{APIKey: "key", SteamID: "7656"}
	})

	AfterEach(func() {
		sched.Close()
	})

	Context("aggregation", func() {
		// Given a library with one game with achievements and one without
		// When the library is loaded
		// Then only the game with achievements is kept
		It("should exclude games without achievements", func() {
			// Arrange
			client.addGame(10, "Zeta", def("a1", "A1"), def("a2", "A2"))
			client.addGame(20, "Alpha")

			// Act
			snapshot, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.Games).To(Equal([]models.Game{{AppID: 10, Name: "Zeta", IconRef: "hash"}}))
			Expect(snapshot.AchievementsByGame).To(HaveKey(10))
			Expect(snapshot.AchievementsByGame).NotTo(HaveKey(20))
			Expect(snapshot.AchievementsByGame[10]).To(HaveLen(2))
			Expect(snapshot.SteamID).To(Equal("7656"))
			Expect(snapshot.RunID).NotTo(BeEmpty())
			Expect(snapshot.FetchedAt).To(BeTemporally("==", now))
		})

		It("should sort games by name ignoring case", func() {
			client.addGame(1, "beta", def("x", "X"))
			client.addGame(2, "Charlie", def("x", "X"))
			client.addGame(3, "alpha", def("x", "X"))
			client.addGame(4, "Bravo", def("x", "X"))

			snapshot, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})

			Expect(err).NotTo(HaveOccurred())
			names := []string{}
			for _, g := range snapshot.Games {
				names = append(names, g.Name)
			}
			Expect(names).To(Equal([]string{"alpha", "beta", "Bravo", "Charlie"}))
		})

		It("should keep library order for equal names", func() {
			client.addGame(30, "Portal", def("x", "X"))
			client.addGame(5, "Portal", def("y", "Y"))

			snapshot, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})

			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.Games).To(HaveLen(2))
			Expect(snapshot.Games[0].AppID).To(Equal(30))
			Expect(snapshot.Games[1].AppID).To(Equal(5))
		})

		It("should fetch a duplicated game once", func() {
			client.addGame(1, "Dup", def("x", "X"))
			client.addGame(1, "Dup", def("x", "X"))

			snapshot, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})

			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.Games).To(HaveLen(1))
			Expect(client.schemaCalls.Load()).To(BeEquivalentTo(1))
		})

		It("should merge player state into the game achievements", func() {
			client.addGame(10, "Zeta", def("a1", "A1"), def("a2", "A2"))
			client.unlock(10, "a2")

			snapshot, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})

			Expect(err).NotTo(HaveOccurred())
			merged := snapshot.AchievementsByGame[10]
			Expect(merged[0].Achieved).To(Equal(0))
			Expect(merged[0].Icon).To(Equal("gray-a1"))
			Expect(merged[1].Achieved).To(Equal(1))
			Expect(merged[1].Icon).To(Equal("icon-a2"))

			summaries := snapshot.Summaries()
			Expect(summaries).To(HaveLen(1))
			Expect(summaries[0].Total).To(Equal(2))
			Expect(summaries[0].Unlocked).To(Equal(1))
		})
	})

	Context("degraded fetches", func() {
		// Given a game whose schema cannot be fetched
		// When the library is loaded
		// Then the game is dropped and the rest is returned
		It("should drop a game whose schema fetch fails", func() {
			// Arrange
			client.addGame(10, "Zeta", def("a1", "A1"))
			client.addGame(20, "Alpha", def("b1", "B1"))
			client.schemaErrs[20] = errUpstream

			// Act
			snapshot, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.Games).To(HaveLen(1))
			Expect(snapshot.Games[0].AppID).To(Equal(10))
		})

		It("should lock every achievement of a game whose state fetch fails", func() {
			client.addGame(10, "Zeta", def("a1", "A1"), def("a2", "A2"))
			client.unlock(10, "a1", "a2")
			client.stateErrs[10] = srvErrors.NewMalformedResponseError("test", errors.New("bad"))

			snapshot, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})

			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.Games).To(HaveLen(1))
			for _, m := range snapshot.AchievementsByGame[10] {
				Expect(m.Achieved).To(Equal(0))
			}
		})

		It("should surface a failing library fetch", func() {
			client.gamesErr = errUpstream

			snapshot, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsNetworkFailureError(err)).To(BeTrue())
			Expect(snapshot).To(BeNil())

			_, err = st.Snapshots().Get(ctx)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should require credentials", func() {
			_, err := srv.LoadLibrary(ctx, models.Credentials{SteamID: "1"}, models.CachePolicy{})

			Expect(srvErrors.IsCredentialsMissingError(err)).To(BeTrue())
			Expect(client.calls()).To(BeZero())
		})
	})

	Context("cache", func() {
		BeforeEach(func() {
			client.addGame(10, "Zeta", def("a1", "A1"))
		})

		// Given a snapshot loaded moments ago
		// When the library is loaded again inside the window
		// Then no network call is made and the same snapshot is returned
		It("should serve a fresh snapshot without network calls", func() {
			// Arrange
			first, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})
			Expect(err).NotTo(HaveOccurred())
			callsAfterFirst := client.calls()
			now = now.Add(9 * time.Minute)

			// Act
			second, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(client.calls()).To(Equal(callsAfterFirst))
			Expect(second.RunID).To(Equal(first.RunID))
			Expect(second.Games).To(Equal(first.Games))
			Expect(second.AchievementsByGame).To(Equal(first.AchievementsByGame))
			Expect(second.FetchedAt).To(BeTemporally("==", first.FetchedAt))
		})

		It("should refetch once the window has passed", func() {
			first, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})
			Expect(err).NotTo(HaveOccurred())
			now = now.Add(10 * time.Minute)

			second, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})

			Expect(err).NotTo(HaveOccurred())
			Expect(client.gamesCalls.Load()).To(BeEquivalentTo(2))
			Expect(second.RunID).NotTo(Equal(first.RunID))
		})

		It("should honor a per-call freshness window", func() {
			_, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})
			Expect(err).NotTo(HaveOccurred())
			now = now.Add(2 * time.Minute)

			_, err = srv.LoadLibrary(ctx, creds, models.CachePolicy{FreshnessWindow: time.Minute})

			Expect(err).NotTo(HaveOccurred())
			Expect(client.gamesCalls.Load()).To(BeEquivalentTo(2))
		})

		It("should refetch when the snapshot belongs to another account", func() {
			_, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})
			Expect(err).NotTo(HaveOccurred())

			other := models.Credentials{APIKey: "key", SteamID: "9999"}
			snapshot, err := srv.LoadLibrary(ctx, other, models.CachePolicy{})

			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.SteamID).To(Equal("9999"))
			Expect(client.gamesCalls.Load()).To(BeEquivalentTo(2))
		})

		It("should treat a corrupt snapshot as a miss", func() {
			Expect(kv.Set(ctx, "library_snapshot", []byte("{"))).To(Succeed())

			snapshot, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})

			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.Games).To(HaveLen(1))
			Expect(client.gamesCalls.Load()).To(BeEquivalentTo(1))
		})

		It("should refetch on a forced refresh inside the window", func() {
			first, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})
			Expect(err).NotTo(HaveOccurred())

			second, err := srv.ForceRefresh(ctx, creds)

			Expect(err).NotTo(HaveOccurred())
			Expect(client.gamesCalls.Load()).To(BeEquivalentTo(2))
			Expect(second.RunID).NotTo(Equal(first.RunID))

			cached, err := st.Snapshots().Get(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(cached.RunID).To(Equal(second.RunID))
		})

		// Given a snapshot whose timestamp is ahead of the clock
		// When the library is loaded
		// Then the snapshot is treated as stale and refetched
		It("should refetch a snapshot dated in the future", func() {
			// Arrange
			_, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})
			Expect(err).NotTo(HaveOccurred())
			now = now.Add(-time.Hour)

			// Act
			snapshot, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(client.gamesCalls.Load()).To(BeEquivalentTo(2))
			Expect(snapshot.FetchedAt).To(BeTemporally("==", now))
		})

		It("should leave the cache empty when a forced refresh fails", func() {
			_, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})
			Expect(err).NotTo(HaveOccurred())
			client.gamesErr = errUpstream

			_, err = srv.ForceRefresh(ctx, creds)

			Expect(err).To(HaveOccurred())
			_, err = st.Snapshots().Get(ctx)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("overlapping runs", func() {
		BeforeEach(func() {
			client.addGame(10, "Zeta", def("a1", "A1"))
		})

		loadAsync := func(load func() (*models.LibrarySnapshot, error)) chan *models.LibrarySnapshot {
			out := make(chan *models.LibrarySnapshot, 1)
			go func() {
				defer GinkgoRecover()
				snapshot, err := load()
				Expect(err).NotTo(HaveOccurred())
				out <- snapshot
			}()
			return out
		}

		// Given a slow aggregation in flight
		// When more loads miss the cache before it finishes
		// Then they wait for that aggregation, which fills the cache once
		It("should join cache misses to the run in flight", func() {
			// Arrange
			gate := make(chan struct{})
			client.gamesGate = gate
			results := []chan *models.LibrarySnapshot{}
			for range 5 {
				results = append(results, loadAsync(func() (*models.LibrarySnapshot, error) {
					return srv.LoadLibrary(ctx, creds, models.CachePolicy{})
				}))
			}
			Eventually(client.gamesCalls.Load).Should(BeEquivalentTo(1))
			Consistently(client.gamesCalls.Load, 100*time.Millisecond).Should(BeEquivalentTo(1))

			// Act
			close(gate)

			// Assert
			runIDs := map[string]struct{}{}
			for _, r := range results {
				var snapshot *models.LibrarySnapshot
				Eventually(r).Should(Receive(&snapshot))
				runIDs[snapshot.RunID] = struct{}{}
			}
			Expect(runIDs).To(HaveLen(1))
			Expect(client.gamesCalls.Load()).To(BeEquivalentTo(1))

			cached, err := st.Snapshots().Get(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(runIDs).To(HaveKey(cached.RunID))
		})

		It("should join a cache miss to a forced refresh in flight", func() {
			gate := make(chan struct{})
			client.gamesGate = gate
			forced := loadAsync(func() (*models.LibrarySnapshot, error) { return srv.ForceRefresh(ctx, creds) })
			Eventually(client.gamesCalls.Load).Should(BeEquivalentTo(1))
			missed := loadAsync(func() (*models.LibrarySnapshot, error) {
				return srv.LoadLibrary(ctx, creds, models.CachePolicy{})
			})
			Consistently(client.gamesCalls.Load, 100*time.Millisecond).Should(BeEquivalentTo(1))

			close(gate)

			var a, b *models.LibrarySnapshot
			Eventually(forced).Should(Receive(&a))
			Eventually(missed).Should(Receive(&b))
			Expect(b.RunID).To(Equal(a.RunID))
			Expect(client.gamesCalls.Load()).To(BeEquivalentTo(1))
		})

		// Given two callers sharing a run
		// When the first caller gives up
		// Then the run still completes for the other caller and fills the cache
		It("should keep a shared run going when one caller leaves", func() {
			// Arrange
			gate := make(chan struct{})
			client.gamesGate = gate
			leaving, cancel := context.WithCancel(ctx)
			left := make(chan error, 1)
			go func() {
				_, err := srv.LoadLibrary(leaving, creds, models.CachePolicy{})
				left <- err
			}()
			Eventually(client.gamesCalls.Load).Should(BeEquivalentTo(1))
			staying := loadAsync(func() (*models.LibrarySnapshot, error) {
				return srv.LoadLibrary(ctx, creds, models.CachePolicy{})
			})

			// Act
			cancel()
			Eventually(left).Should(Receive(MatchError(context.Canceled)))
			close(gate)

			// Assert
			var snapshot *models.LibrarySnapshot
			Eventually(staying).Should(Receive(&snapshot))
			cached, err := st.Snapshots().Get(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(cached.RunID).To(Equal(snapshot.RunID))
		})

		// Given a slow run started before a forced refresh
		// When the slow run finishes after the refresh
		// Then the refresh's snapshot stays cached
		It("should not persist a superseded run", func() {
			// Arrange
			gate := make(chan struct{})
			client.gamesGate = gate

			slow := make(chan *models.LibrarySnapshot, 1)
			go func() {
				defer GinkgoRecover()
				snapshot, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})
				Expect(err).NotTo(HaveOccurred())
				slow <- snapshot
			}()
			Eventually(client.gamesCalls.Load).Should(BeEquivalentTo(1))

			// Act
			fresh, err := srv.ForceRefresh(ctx, creds)
			Expect(err).NotTo(HaveOccurred())
			close(gate)

			var obsolete *models.LibrarySnapshot
			Eventually(slow).Should(Receive(&obsolete))

			// Assert
			Expect(obsolete.RunID).NotTo(Equal(fresh.RunID))
			cached, err := st.Snapshots().Get(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(cached.RunID).To(Equal(fresh.RunID))
		})
	})

	Context("tracing", func() {
		// Given a service with a recording tracer provider
		// When the library is aggregated
		// Then one aggregation span is recorded with a fetch span per call as its children
		It("should record the aggregation and per-game fetch spans", func() {
			// Arrange
			recorder := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
			DeferCleanup(tp.Shutdown, context.Background())
			srv.WithTracerProvider(tp)
			client.addGame(10, "Zeta", def("a1", "A1"))
			client.addGame(20, "Alpha", def("b1", "B1"))

			// Act
			_, err := srv.LoadLibrary(ctx, creds, models.CachePolicy{})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			byName := map[string][]sdktrace.ReadOnlySpan{}
			for _, span := range recorder.Ended() {
				byName[span.Name()] = append(byName[span.Name()], span)
			}
			Expect(byName["library.aggregate"]).To(HaveLen(1))
			Expect(byName["library.fetch_schema"]).To(HaveLen(2))
			Expect(byName["library.fetch_state"]).To(HaveLen(2))

			root := byName["library.aggregate"][0].SpanContext()
			for _, span := range append(byName["library.fetch_schema"], byName["library.fetch_state"]...) {
				Expect(span.Parent().SpanID()).To(Equal(root.SpanID()))
				Expect(span.SpanContext().TraceID()).To(Equal(root.TraceID()))
			}
		})
	})

	Context("GameAchievements", func() {
		BeforeEach(func() {
			client.addGame(10, "Zeta", def("a1", "A1"))
		})

		It("should return the merged list of a game", func() {
			game, achievements, err := srv.GameAchievements(ctx, creds, 10)

			Expect(err).NotTo(HaveOccurred())
			Expect(game.Name).To(Equal("Zeta"))
			Expect(achievements).To(HaveLen(1))
		})

		It("should report an unknown game", func() {
			_, _, err := srv.GameAchievements(ctx, creds, 99)

			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})
})
