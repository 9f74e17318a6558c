// Package odds fetches current point spreads from the-odds-api.com.
package odds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/beaverbray/office-football-pool/internal/models"
)

const (
	defaultBaseURL = "https://api.the-odds-api.com/v4"

	SportNFL   = "americanfootball_nfl"
	SportNCAAF = "americanfootball_ncaaf"

	marketSpreads = "spreads"
	regionUS      = "us"

	cacheDuration      = 5 * time.Minute
	minRequestInterval = time.Second
	lowQuotaWarning    = 100
)

// Event is one upstream game with its bookmaker lines.
type Event struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	CommenceTime string      `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

type Bookmaker struct {
	Key        string   `json:"key"`
	Title      string   `json:"title"`
	LastUpdate string   `json:"last_update"`
	Markets    []Market `json:"markets"`
}

type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

type Outcome struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

type cacheEntry struct {
	events []Event
	stored time.Time
}

// Client fetches spreads with a short response cache and a one request
// per second ceiling across all calls.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *logrus.Logger

	mu          sync.Mutex
	cache       map[string]cacheEntry
	lastRequest time.Time
	now         func() time.Time
}

func NewClient(apiKey string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
		cache:   make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// SetBaseURL overrides the API endpoint, for tests.
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

// GetSpreads fetches the current spreads board for one sport key.
func (c *Client) GetSpreads(ctx context.Context, sport string) ([]Event, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("odds API key is not configured")
	}

	cacheKey := "odds-" + sport + "-" + marketSpreads
	if events, ok := c.getCached(cacheKey); ok {
		return events, nil
	}

	c.waitRateLimit(ctx)

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", regionUS)
	params.Set("markets", marketSpreads)
	params.Set("oddsFormat", "american")

	reqURL := fmt.Sprintf("%s/sports/%s/odds?%s", c.baseURL, sport, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching odds for %s: %w", sport, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("odds API rejected the API key")
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("odds API rate limit exceeded")
	default:
		return nil, fmt.Errorf("odds API returned status %d", resp.StatusCode)
	}

	c.logQuota(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var events []Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("decoding odds response: %w", err)
	}

	c.setCached(cacheKey, events)
	return events, nil
}

// GetMarketGames fetches spreads for both leagues and flattens them to
// the matcher's input shape. A league whose fetch fails is skipped; the
// call errors only when both fail.
func (c *Client) GetMarketGames(ctx context.Context) ([]models.MarketGame, error) {
	var games []models.MarketGame
	var firstErr error

	for _, s := range []struct {
		sport  string
		league models.League
	}{
		{SportNFL, models.NFL},
		{SportNCAAF, models.NCAAF},
	} {
		events, err := c.GetSpreads(ctx, s.sport)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if c.logger != nil {
				c.logger.WithField("sport", s.sport).WithError(err).Warn("odds fetch failed")
			}
			continue
		}
		games = append(games, EventsToMarketGames(events, s.league)...)
	}

	if len(games) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return games, nil
}

// BestSpread extracts the home spread from the first bookmaker carrying
// a spreads market with points for both sides.
func BestSpread(e Event) (homeSpread float64, bookmaker string, ok bool) {
	for _, b := range e.Bookmakers {
		for _, m := range b.Markets {
			if m.Key != marketSpreads {
				continue
			}
			var home, away *float64
			for _, o := range m.Outcomes {
				switch o.Name {
				case e.HomeTeam:
					home = o.Point
				case e.AwayTeam:
					away = o.Point
				}
			}
			if home != nil && away != nil {
				return *home, b.Title, true
			}
		}
	}
	return 0, "", false
}

// EventsToMarketGames flattens events to market games, dropping events
// with no usable spread.
func EventsToMarketGames(events []Event, league models.League) []models.MarketGame {
	games := make([]models.MarketGame, 0, len(events))
	for _, e := range events {
		spread, _, ok := BestSpread(e)
		if !ok {
			continue
		}
		games = append(games, models.MarketGame{
			GameID:     e.ID,
			HomeTeam:   e.HomeTeam,
			AwayTeam:   e.AwayTeam,
			HomeSpread: spread,
			GameTime:   e.CommenceTime,
			League:     league,
		})
	}
	return games
}

func (c *Client) getCached(key string) ([]Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[key]
	if !ok || c.now().Sub(entry.stored) >= cacheDuration {
		return nil, false
	}
	return entry.events, true
}

func (c *Client) setCached(key string, events []Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{events: events, stored: c.now()}
}

func (c *Client) waitRateLimit(ctx context.Context) {
	c.mu.Lock()
	wait := minRequestInterval - c.now().Sub(c.lastRequest)
	c.lastRequest = c.now()
	c.mu.Unlock()

	if wait <= 0 {
		return
	}
	select {
	case <-time.After(wait):
	case <-ctx.Done():
	}
}

func (c *Client) logQuota(resp *http.Response) {
	if c.logger == nil {
		return
	}
	remaining := resp.Header.Get("x-requests-remaining")
	used := resp.Header.Get("x-requests-used")
	c.logger.WithFields(logrus.Fields{
		"requests_used":      used,
		"requests_remaining": remaining,
	}).Debug("odds API quota")
	if n, err := strconv.Atoi(remaining); err == nil && n < lowQuotaWarning {
		c.logger.WithField("requests_remaining", n).Warn("odds API quota running low")
	}
}
