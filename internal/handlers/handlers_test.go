package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	v1 "github.com/tupyy/achievement-tracker/api/v1"
	"github.com/tupyy/achievement-tracker/internal/handlers"
	"github.com/tupyy/achievement-tracker/internal/models"
	"github.com/tupyy/achievement-tracker/internal/services"
	"github.com/tupyy/achievement-tracker/internal/store"
	srvErrors "github.com/tupyy/achievement-tracker/pkg/errors"
	"github.com/tupyy/achievement-tracker/pkg/scheduler"
)

type stubClient struct {
	gamesErr error
	calls    int
}

func (s *stubClient) GetOwnedGames(context.Context, models.Credentials) ([]models.Game, error) {
	s.calls++
	if s.gamesErr != nil {
		return nil, s.gamesErr
	}
	return []models.Game{
		{AppID: 20, Name: "Zeta", IconRef: "zeta"},
		{AppID: 10, Name: "alpha", IconRef: "alpha"},
		{AppID: 30, Name: "Empty"},
	}, nil
}

func (s *stubClient) GetSchema(_ context.Context, _ models.Credentials, appID int) ([]models.AchievementDefinition, error) {
	if appID == 30 {
		return nil, nil
	}
	return []models.AchievementDefinition{
		{APIName: "a1", DisplayName: "First", IconRef: "on1", IconGrayRef: "off1"},
		{APIName: "a2", DisplayName: "Second", IconRef: "on2", IconGrayRef: "off2"},
	}, nil
}

func (s *stubClient) GetPlayerAchievements(_ context.Context, _ models.Credentials, appID int) ([]models.PlayerAchievementState, error) {
	return []models.PlayerAchievementState{{APIName: "a1", Achieved: 1, UnlockTime: 1700000000}}, nil
}

var _ = Describe("Handlers", func() {
	var (
		router         *gin.Engine
		client         *stubClient
		sched          *scheduler.Scheduler
		credentialsSrv *services.CredentialsService
		ctx            context.Context
	)

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body != nil {
			data, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewReader(data)
		} else {
			reader = bytes.NewReader(nil)
		}
		req := httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder, out any) {
		Expect(json.Unmarshal(w.Body.Bytes(), out)).To(Succeed())
	}

	BeforeEach(func() {
		ctx = context.Background()
		st := store.NewStore(store.NewMemoryKV())
		client = &stubClient{}
		sched = scheduler.NewScheduler(2)
		credentialsSrv = services.NewCredentialsService(st)
		h := handlers.New(
			services.NewLibraryService(st, client, sched, time.Minute),
			services.NewCollectionService(st),
			credentialsSrv,
		)

		router = gin.New()
		v1.RegisterHandlersWithOptions(router.Group("/api/v1"), h, v1.GinServerOptions{ErrorHandler: handlers.ErrorHandler})
	})

	AfterEach(func() {
		sched.Close()
	})

	Context("without credentials", func() {
		It("should answer 412 for the library", func() {
			w := do(http.MethodGet, "/api/v1/library", nil)

			Expect(w.Code).To(Equal(http.StatusPreconditionFailed))
			var e v1.Error
			decode(w, &e)
			Expect(e.Error).To(ContainSubstring("not configured"))
		})

		It("should answer 412 for stored credentials", func() {
			w := do(http.MethodGet, "/api/v1/settings/credentials", nil)

			Expect(w.Code).To(Equal(http.StatusPreconditionFailed))
		})

		It("should reject blank credentials", func() {
			w := do(http.MethodPut, "/api/v1/settings/credentials", v1.CredentialsRequest{ApiKey: "k"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("with credentials", func() {
		BeforeEach(func() {
			w := do(http.MethodPut, "/api/v1/settings/credentials", v1.CredentialsRequest{ApiKey: "secret-key-1234", SteamId: "7656"})
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("should return masked credentials", func() {
			w := do(http.MethodGet, "/api/v1/settings/credentials", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var creds v1.Credentials
			decode(w, &creds)
			Expect(creds.SteamId).To(Equal("7656"))
			Expect(creds.ApiKey).To(HaveSuffix("1234"))
			Expect(creds.ApiKey).NotTo(ContainSubstring("secret"))
		})

		It("should forget deleted credentials", func() {
			Expect(do(http.MethodDelete, "/api/v1/settings/credentials", nil).Code).To(Equal(http.StatusNoContent))

			_, err := credentialsSrv.Get(ctx)
			Expect(srvErrors.IsCredentialsMissingError(err)).To(BeTrue())
		})

		// Given a library with two games with achievements and one without
		// When the library is requested
		// Then the games with achievements are returned sorted with their completion
		It("should return the sorted library", func() {
			// Act
			w := do(http.MethodGet, "/api/v1/library", nil)

			// Assert
			Expect(w.Code).To(Equal(http.StatusOK))
			var lib v1.Library
			decode(w, &lib)
			Expect(lib.Games).To(HaveLen(2))
			Expect(lib.Games[0].Name).To(Equal("alpha"))
			Expect(lib.Games[1].Name).To(Equal("Zeta"))
			Expect(lib.Games[0].Total).To(Equal(2))
			Expect(lib.Games[0].Unlocked).To(Equal(1))
			Expect(lib.Games[0].Completion).To(Equal(50.0))
			Expect(lib.Games[0].Icon).To(HaveSuffix("/10/alpha.jpg"))
		})

		It("should serve the cache unless a refresh is asked", func() {
			Expect(do(http.MethodGet, "/api/v1/library", nil).Code).To(Equal(http.StatusOK))
			Expect(do(http.MethodGet, "/api/v1/library", nil).Code).To(Equal(http.StatusOK))
			Expect(client.calls).To(Equal(1))

			Expect(do(http.MethodGet, "/api/v1/library?refresh=true", nil).Code).To(Equal(http.StatusOK))
			Expect(do(http.MethodPost, "/api/v1/library/refresh", nil).Code).To(Equal(http.StatusOK))
			Expect(client.calls).To(Equal(3))
		})

		It("should reject a malformed refresh flag", func() {
			w := do(http.MethodGet, "/api/v1/library?refresh=maybe", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should answer 502 when the library cannot be fetched", func() {
			client.gamesErr = srvErrors.NewNetworkStatusError("get owned games", 503)

			w := do(http.MethodGet, "/api/v1/library", nil)

			Expect(w.Code).To(Equal(http.StatusBadGateway))
		})

		It("should return the achievements of a game", func() {
			w := do(http.MethodGet, "/api/v1/library/games/20/achievements", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var ga v1.GameAchievements
			decode(w, &ga)
			Expect(ga.Game.Name).To(Equal("Zeta"))
			Expect(ga.Achievements).To(HaveLen(2))
			Expect(ga.Achievements[0].Achieved).To(BeTrue())
			Expect(ga.Achievements[0].UnlockedAt).NotTo(BeNil())
			Expect(ga.Achievements[0].Icon).To(HaveSuffix("/20/on1.jpg"))
			Expect(ga.Achievements[1].Achieved).To(BeFalse())
			Expect(ga.Achievements[1].Icon).To(HaveSuffix("/20/off2.jpg"))
		})

		It("should answer 404 for a game outside the library", func() {
			Expect(do(http.MethodGet, "/api/v1/library/games/30/achievements", nil).Code).To(Equal(http.StatusNotFound))
		})

		It("should answer 400 for a non numeric appid", func() {
			Expect(do(http.MethodGet, "/api/v1/library/games/abc/achievements", nil).Code).To(Equal(http.StatusBadRequest))
		})

		Context("collections", func() {
			It("should create and list collections", func() {
				w := do(http.MethodPost, "/api/v1/collections", v1.CollectionRequest{Name: "Speedruns"})
				Expect(w.Code).To(Equal(http.StatusCreated))

				w = do(http.MethodGet, "/api/v1/collections", nil)
				Expect(w.Code).To(Equal(http.StatusOK))
				var list v1.CollectionList
				decode(w, &list)
				Expect(list.Collections).To(HaveLen(1))
				Expect(list.Collections[0].Name).To(Equal("Speedruns"))
				Expect(list.Collections[0].Entries).To(BeEmpty())
			})

			It("should reject a blank name", func() {
				Expect(do(http.MethodPost, "/api/v1/collections", v1.CollectionRequest{Name: " "}).Code).To(Equal(http.StatusBadRequest))
			})

			// Given no collection named Speedruns
			// When the same achievement is added twice
			// Then the collection is created with a single denormalized entry
			It("should add entries once with display fields", func() {
				// Act
				Expect(do(http.MethodPost, "/api/v1/collections/Speedruns/entries", v1.CollectionEntryRequest{Appid: 20, Apiname: "a2"}).Code).To(Equal(http.StatusOK))
				w := do(http.MethodPost, "/api/v1/collections/Speedruns/entries", v1.CollectionEntryRequest{Appid: 20, Apiname: "a2"})

				// Assert
				Expect(w.Code).To(Equal(http.StatusOK))
				var col v1.Collection
				decode(w, &col)
				Expect(col.Entries).To(HaveLen(1))
				Expect(col.Entries[0].DisplayName).To(Equal("Second"))
				Expect(*col.Entries[0].GameName).To(Equal("Zeta"))
				Expect(col.Entries[0].Icon).To(HaveSuffix("/20/off2.jpg"))
			})

			It("should answer 404 for an unknown achievement", func() {
				w := do(http.MethodPost, "/api/v1/collections/Speedruns/entries", v1.CollectionEntryRequest{Appid: 20, Apiname: "nope"})

				Expect(w.Code).To(Equal(http.StatusNotFound))
			})

			It("should remove entries by index and reject bad indexes", func() {
				Expect(do(http.MethodPost, "/api/v1/collections/Speedruns/entries", v1.CollectionEntryRequest{Appid: 20, Apiname: "a1"}).Code).To(Equal(http.StatusOK))

				Expect(do(http.MethodDelete, "/api/v1/collections/Speedruns/entries/5", nil).Code).To(Equal(http.StatusBadRequest))

				w := do(http.MethodDelete, "/api/v1/collections/Speedruns/entries/0", nil)
				Expect(w.Code).To(Equal(http.StatusOK))
				var col v1.Collection
				decode(w, &col)
				Expect(col.Entries).To(BeEmpty())
			})

			It("should delete collections idempotently", func() {
				Expect(do(http.MethodDelete, "/api/v1/collections/Nonexistent", nil).Code).To(Equal(http.StatusNoContent))
			})

			It("should export an xlsx workbook", func() {
				Expect(do(http.MethodPost, "/api/v1/collections/Speedruns/entries", v1.CollectionEntryRequest{Appid: 20, Apiname: "a1"}).Code).To(Equal(http.StatusOK))

				w := do(http.MethodGet, "/api/v1/collections/export", nil)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Header().Get("Content-Type")).To(ContainSubstring("spreadsheetml"))
				f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
				Expect(err).NotTo(HaveOccurred())
				defer f.Close()
				Expect(f.GetSheetList()).To(Equal([]string{"Speedruns"}))
			})
		})
	})
})
