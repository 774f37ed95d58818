package test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
)

// FakeAchievement is one achievement of a FakeGame with the player's state.
type FakeAchievement struct {
	APIName     string
	DisplayName string
	Description string
	Icon        string
	IconGray    string
	Hidden      bool
	Unlocked    bool
	UnlockTime  int64
}

type FakeGame struct {
	AppID        int
	Name         string
	Icon         string
	Achievements []FakeAchievement
}

// FakeProxy serves the backend proxy endpoints from an in-memory library.
type FakeProxy struct {
	*httptest.Server

	mu         sync.Mutex
	games      []FakeGame
	apiKey     string
	failures   map[string]map[int]int
	requests   map[string]int
	gamesFails int
}

// NewFakeProxy starts a proxy accepting apiKey. Call Close when done.
func NewFakeProxy(apiKey string, games ...FakeGame) *FakeProxy {
	p := &FakeProxy{
		games:    games,
		apiKey:   apiKey,
		failures: map[string]map[int]int{"schema": {}, "achievements": {}},
		requests: map[string]int{},
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(p.count, p.authorize)
	router.GET("/api/games", p.ownedGames)
	router.GET("/api/schema", p.schema)
	router.GET("/api/achievements", p.achievements)

	p.Server = httptest.NewServer(router)
	return p
}

// FailSchema makes schema requests for appID answer status.
func (p *FakeProxy) FailSchema(appID, status int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures["schema"][appID] = status
}

// FailAchievements makes player achievement requests for appID answer status.
func (p *FakeProxy) FailAchievements(appID, status int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures["achievements"][appID] = status
}

// FailGames makes the next n library requests answer 503.
func (p *FakeProxy) FailGames(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gamesFails = n
}

// SetGames replaces the library.
func (p *FakeProxy) SetGames(games ...FakeGame) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.games = games
}

// Requests returns how many requests hit path.
func (p *FakeProxy) Requests(path string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests[path]
}

// TotalRequests returns how many requests hit the proxy.
func (p *FakeProxy) TotalRequests() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0
	for _, n := range p.requests {
		total += n
	}
	return total
}

func (p *FakeProxy) count(c *gin.Context) {
	p.mu.Lock()
	p.requests[c.Request.URL.Path]++
	p.mu.Unlock()
	c.Next()
}

func (p *FakeProxy) authorize(c *gin.Context) {
	if c.Query("key") != p.apiKey {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "invalid key"})
		return
	}
	c.Next()
}

func (p *FakeProxy) ownedGames(c *gin.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.gamesFails > 0 {
		p.gamesFails--
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "unavailable"})
		return
	}

	games := make([]gin.H, 0, len(p.games))
	for _, g := range p.games {
		games = append(games, gin.H{"appid": g.AppID, "name": g.Name, "img_icon_url": g.Icon})
	}
	c.JSON(http.StatusOK, gin.H{"response": gin.H{"game_count": len(games), "games": games}})
}

func (p *FakeProxy) schema(c *gin.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	g, status := p.lookup("schema", c.Query("appid"))
	if status != http.StatusOK {
		c.JSON(status, gin.H{"detail": http.StatusText(status)})
		return
	}

	achievements := make([]gin.H, 0, len(g.Achievements))
	for _, a := range g.Achievements {
		hidden := 0
		if a.Hidden {
			hidden = 1
		}
		achievements = append(achievements, gin.H{
			"name": a.APIName, "displayName": a.DisplayName, "description": a.Description,
			"icon": a.Icon, "icongray": a.IconGray, "hidden": hidden,
		})
	}
	c.JSON(http.StatusOK, gin.H{"game": gin.H{"gameName": g.Name, "availableGameStats": gin.H{"achievements": achievements}}})
}

func (p *FakeProxy) achievements(c *gin.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	g, status := p.lookup("achievements", c.Query("appid"))
	if status != http.StatusOK {
		c.JSON(status, gin.H{"detail": http.StatusText(status)})
		return
	}

	states := make([]gin.H, 0, len(g.Achievements))
	for _, a := range g.Achievements {
		achieved := 0
		if a.Unlocked {
			achieved = 1
		}
		states = append(states, gin.H{"apiname": a.APIName, "achieved": achieved, "unlocktime": a.UnlockTime})
	}
	c.JSON(http.StatusOK, gin.H{"playerstats": gin.H{
		"steamID": c.Query("steamid"), "gameName": g.Name, "achievements": states, "success": true,
	}})
}

func (p *FakeProxy) lookup(kind, rawAppID string) (FakeGame, int) {
	appID, err := strconv.Atoi(rawAppID)
	if err != nil {
		return FakeGame{}, http.StatusBadRequest
	}
	if status, ok := p.failures[kind][appID]; ok {
		return FakeGame{}, status
	}
	for _, g := range p.games {
		if g.AppID == appID {
			return g, http.StatusOK
		}
	}
	return FakeGame{}, http.StatusNotFound
}
