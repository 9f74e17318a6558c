package models

// GameComparison annotates one matched picksheet/market pair with the
// spread delta and its risk flags. Derived entirely from the two source
// games; immutable once created.
type GameComparison struct {
	GameID            string  `json:"gameId"`
	HomeTeam          string  `json:"homeTeam"`
	AwayTeam          string  `json:"awayTeam"`
	GameTime          string  `json:"gameTime"`
	League            League  `json:"league,omitempty"`
	PicksheetSpread   float64 `json:"picksheetSpread"`
	MarketSpread      float64 `json:"marketSpread"`
	SpreadDelta       float64 `json:"spreadDelta"`
	CrossesKeyNumber  bool    `json:"crossesKeyNumber"`
	KeyNumbersCrossed []int   `json:"keyNumbersCrossed"`
	FavoriteFlipped   bool    `json:"favoriteFlipped"`
	Confidence        float64 `json:"confidence"`
	Matched           bool    `json:"matched"`
}

// LargestDelta identifies the single matched game with the greatest
// absolute spread delta in a run.
type LargestDelta struct {
	GameID string  `json:"gameId"`
	Teams  string  `json:"teams"`
	Delta  float64 `json:"delta"`
}

// ComparisonKPIs aggregates one comparison run. Delta statistics operate
// on the absolute spread delta and are reported to two decimal places;
// rates to three.
type ComparisonKPIs struct {
	TotalGames            int           `json:"totalGames"`
	MatchedGames          int           `json:"matchedGames"`
	UnmatchedGames        int           `json:"unmatchedGames"`
	MatchRate             float64       `json:"matchRate"`
	AvgSpreadDelta        float64       `json:"avgSpreadDelta"`
	MedianSpreadDelta     float64       `json:"medianSpreadDelta"`
	P95SpreadDelta        float64       `json:"p95SpreadDelta"`
	StdDevSpreadDelta     float64       `json:"stdDevSpreadDelta"`
	KeyNumberCrossings    int           `json:"keyNumberCrossings"`
	KeyNumberCrossingRate float64       `json:"keyNumberCrossingRate"`
	FavoriteFlips         int           `json:"favoriteFlips"`
	FavoriteFlipRate      float64       `json:"favoriteFlipRate"`
	LargestDelta          *LargestDelta `json:"largestDelta"`
	Timestamp             string        `json:"timestamp"`
}

// UnmatchedGame records a game from either side that no match claimed.
type UnmatchedGame struct {
	Source   string `json:"source"` // "picksheet" or "market"
	GameInfo string `json:"gameInfo"`
	Reason   string `json:"reason"`
	GameTime string `json:"gameTime,omitempty"`
}
