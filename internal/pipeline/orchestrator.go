// Package pipeline sequences the four reconciliation stages: parse the
// picksheet, retrieve market odds, match games, compare spreads.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/beaverbray/office-football-pool/internal/compare"
	"github.com/beaverbray/office-football-pool/internal/models"
	"github.com/beaverbray/office-football-pool/internal/picksheet"
)

// Status is the overall outcome of one run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

// Config selects optional behavior for one run.
type Config struct {
	UseOddsAPI     bool    `json:"useOddsAPI,omitempty"`
	IncludeLogs    bool    `json:"includeLogs,omitempty"`
	MatchThreshold float64 `json:"matchingThreshold,omitempty"`
}

// Input carries the run's source data. PicksheetText is parsed only
// when PicksheetGames is absent; MarketGames, when present, suppresses
// the odds retrieval stage.
type Input struct {
	PicksheetText  string              `json:"picksheetText,omitempty"`
	PicksheetGames []models.RawGame    `json:"picksheetGames,omitempty"`
	MarketGames    []models.MarketGame `json:"marketGames,omitempty"`
}

// ParsingStage records the picksheet extraction stage.
type ParsingStage struct {
	Success    bool             `json:"success"`
	GamesFound int              `json:"gamesFound"`
	Games      []models.RawGame `json:"games,omitempty"`
	Error      string           `json:"error,omitempty"`
	DurationMS int64            `json:"duration,omitempty"`
}

// OddsStage records the market odds retrieval stage.
type OddsStage struct {
	Success    bool                `json:"success"`
	NFLGames   int                 `json:"nflGames"`
	NCAAFGames int                 `json:"ncaafGames"`
	Games      []models.MarketGame `json:"games,omitempty"`
	Error      string              `json:"error,omitempty"`
	DurationMS int64               `json:"duration,omitempty"`
}

// MatchingStage records the game matching stage.
type MatchingStage struct {
	Success    bool    `json:"success"`
	MatchRate  float64 `json:"matchRate"`
	Matches    int     `json:"matches"`
	TotalGames int     `json:"totalGames"`
	Error      string  `json:"error,omitempty"`
	DurationMS int64   `json:"duration,omitempty"`

	// matches feeds the comparison stage; it is not part of the
	// reported result.
	matches []models.GameMatchCandidate
}

// ComparisonStage records the comparison stage.
type ComparisonStage struct {
	Success     bool                    `json:"success"`
	KPIs        *models.ComparisonKPIs  `json:"kpis,omitempty"`
	Comparisons []models.GameComparison `json:"comparisons,omitempty"`
	Unmatched   []models.UnmatchedGame  `json:"unmatched,omitempty"`
	Error       string                  `json:"error,omitempty"`
	DurationMS  int64                   `json:"duration,omitempty"`
}

// Result is one complete pipeline run. Stage is the last stage reached.
type Result struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Status    Status `json:"status"`
	Stage     string `json:"stage"`
	Config    Config `json:"config"`

	Parsing       *ParsingStage    `json:"parsing,omitempty"`
	OddsRetrieval *OddsStage       `json:"oddsRetrieval,omitempty"`
	Matching      *MatchingStage   `json:"matching,omitempty"`
	Comparison    *ComparisonStage `json:"comparison,omitempty"`

	Logs            []string `json:"logs,omitempty"`
	TotalDurationMS int64    `json:"totalDuration"`
}

// PicksheetParser extracts games from raw picksheet text.
type PicksheetParser interface {
	Parse(ctx context.Context, text string) (*picksheet.ParsedPicksheet, error)
}

// OddsProvider fetches the current market board.
type OddsProvider interface {
	GetMarketGames(ctx context.Context) ([]models.MarketGame, error)
}

// GameMatcher pairs picksheet games with market games.
type GameMatcher interface {
	MatchGames(source []models.RawGame, target []models.MarketGame, threshold float64) ([]models.GameMatchCandidate, error)
}

// RunSaver persists a finished run. A nil RunSaver disables persistence.
type RunSaver interface {
	SaveRun(ctx context.Context, runID, status string, payload []byte) error
}

// Orchestrator runs pipelines and keeps finished results in memory for
// status lookups.
type Orchestrator struct {
	parser   PicksheetParser
	odds     OddsProvider
	matcher  GameMatcher
	comparer *compare.Engine
	saver    RunSaver
	logger   *logrus.Logger

	mu      sync.RWMutex
	results map[string]*Result
}

func NewOrchestrator(parser PicksheetParser, odds OddsProvider, matcher GameMatcher, comparer *compare.Engine, saver RunSaver, logger *logrus.Logger) *Orchestrator {
	return &Orchestrator{
		parser:   parser,
		odds:     odds,
		matcher:  matcher,
		comparer: comparer,
		saver:    saver,
		logger:   logger,
		results:  make(map[string]*Result),
	}
}

// Run executes the pipeline. The returned Result is always populated
// and registered, including on failure; the error restates why a failed
// run stopped.
func (o *Orchestrator) Run(ctx context.Context, input Input, cfg Config) (*Result, error) {
	start := time.Now()
	run := &runLog{stage: "initializing"}

	result := &Result{
		ID:        uuid.NewString(),
		Timestamp: start.UTC().Format(time.RFC3339),
		Status:    StatusSuccess,
		Stage:     "initializing",
		Config:    cfg,
	}
	run.log(o.logger, "starting pipeline %s", result.ID)

	err := o.execute(ctx, input, cfg, result, run)
	if err != nil {
		result.Status = StatusFailed
		run.log(o.logger, "pipeline %s failed: %v", result.ID, err)
	} else {
		result.Stage = "completed"
		run.log(o.logger, "pipeline %s completed", result.ID)
	}

	result.TotalDurationMS = time.Since(start).Milliseconds()
	if cfg.IncludeLogs {
		result.Logs = run.entries
	}

	o.register(result)
	o.persist(ctx, result)
	return result, err
}

func (o *Orchestrator) execute(ctx context.Context, input Input, cfg Config, result *Result, run *runLog) error {
	picksheetGames := input.PicksheetGames
	if input.PicksheetText != "" && len(picksheetGames) == 0 {
		result.Parsing = o.parseStage(ctx, input.PicksheetText, run)
		if !result.Parsing.Success {
			result.Stage = "parsing"
			return fmt.Errorf("parsing failed: %s", result.Parsing.Error)
		}
		picksheetGames = result.Parsing.Games
	}
	if len(picksheetGames) == 0 {
		return fmt.Errorf("no picksheet games to process")
	}

	marketGames := input.MarketGames
	if cfg.UseOddsAPI && len(marketGames) == 0 {
		result.OddsRetrieval = o.oddsStage(ctx, run)
		if !result.OddsRetrieval.Success {
			result.Status = StatusPartial
			result.Stage = "odds_retrieval"
			run.log(o.logger, "warning: odds retrieval failed: %s", result.OddsRetrieval.Error)
		} else {
			marketGames = result.OddsRetrieval.Games
		}
	}
	if len(marketGames) == 0 {
		return fmt.Errorf("no market games available for comparison")
	}

	result.Matching = o.matchStage(picksheetGames, marketGames, cfg.MatchThreshold, run)
	if !result.Matching.Success {
		result.Stage = "matching"
		return fmt.Errorf("matching failed: %s", result.Matching.Error)
	}
	if result.Matching.MatchRate == 0 {
		result.Stage = "matching"
		return fmt.Errorf("no games could be matched")
	}
	if result.Matching.MatchRate < 0.5 {
		result.Status = StatusPartial
		run.log(o.logger, "warning: low match rate: %.1f%%", result.Matching.MatchRate*100)
	}

	result.Comparison = o.compareStage(picksheetGames, marketGames, result.Matching.matches, run)
	if !result.Comparison.Success {
		result.Status = StatusPartial
		result.Stage = "comparison"
	}
	return nil
}

func (o *Orchestrator) parseStage(ctx context.Context, text string, run *runLog) *ParsingStage {
	start := time.Now()
	run.stage = "parsing"
	run.log(o.logger, "starting picksheet parsing")

	stage := &ParsingStage{}
	defer func() { stage.DurationMS = time.Since(start).Milliseconds() }()

	if o.parser == nil {
		stage.Error = "no picksheet parser configured"
		return stage
	}
	parsed, err := o.parser.Parse(ctx, text)
	if err != nil {
		stage.Error = err.Error()
		return stage
	}

	stage.Success = true
	stage.Games = parsed.RawGames()
	stage.GamesFound = len(stage.Games)
	run.log(o.logger, "parsed %d games from picksheet", stage.GamesFound)
	return stage
}

func (o *Orchestrator) oddsStage(ctx context.Context, run *runLog) *OddsStage {
	start := time.Now()
	run.stage = "odds_retrieval"
	run.log(o.logger, "retrieving odds from API")

	stage := &OddsStage{}
	defer func() { stage.DurationMS = time.Since(start).Milliseconds() }()

	if o.odds == nil {
		stage.Error = "no odds provider configured"
		return stage
	}
	games, err := o.odds.GetMarketGames(ctx)
	if err != nil {
		stage.Error = err.Error()
		return stage
	}

	for _, g := range games {
		switch g.League {
		case models.NFL:
			stage.NFLGames++
		case models.NCAAF:
			stage.NCAAFGames++
		}
	}
	stage.Success = true
	stage.Games = games
	run.log(o.logger, "retrieved %d NFL and %d NCAAF games", stage.NFLGames, stage.NCAAFGames)
	return stage
}

func (o *Orchestrator) matchStage(source []models.RawGame, target []models.MarketGame, threshold float64, run *runLog) *MatchingStage {
	start := time.Now()
	run.stage = "matching"
	run.log(o.logger, "matching games between picksheet and market")

	stage := &MatchingStage{TotalGames: len(source)}
	defer func() { stage.DurationMS = time.Since(start).Milliseconds() }()

	matches, err := o.matcher.MatchGames(source, target, threshold)
	if err != nil {
		stage.Error = err.Error()
		return stage
	}

	stage.Success = true
	stage.Matches = len(matches)
	stage.MatchRate = float64(len(matches)) / float64(len(source))
	stage.matches = matches
	run.log(o.logger, "matched %d of %d games (%.1f%%)", len(matches), len(source), stage.MatchRate*100)
	return stage
}

func (o *Orchestrator) compareStage(source []models.RawGame, target []models.MarketGame, matches []models.GameMatchCandidate, run *runLog) *ComparisonStage {
	start := time.Now()
	run.stage = "comparison"
	run.log(o.logger, "comparing games and calculating KPIs")

	stage := &ComparisonStage{}
	res := o.comparer.CompareGames(source, target, matches)
	stage.Success = true
	stage.KPIs = &res.KPIs
	stage.Comparisons = res.Comparisons
	stage.Unmatched = res.Unmatched
	stage.DurationMS = time.Since(start).Milliseconds()
	run.log(o.logger, "calculated KPIs: avg delta %v, key crossings %d", res.KPIs.AvgSpreadDelta, res.KPIs.KeyNumberCrossings)
	return stage
}

// GetResult returns a registered run by id.
func (o *Orchestrator) GetResult(id string) (*Result, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	r, ok := o.results[id]
	return r, ok
}

// AllResults returns every registered run, newest first.
func (o *Orchestrator) AllResults() []*Result {
	o.mu.RLock()
	defer o.mu.RUnlock()
	all := make([]*Result, 0, len(o.results))
	for _, r := range o.results {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Timestamp > all[j].Timestamp })
	return all
}

// ClearResults drops every registered run.
func (o *Orchestrator) ClearResults() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.results = make(map[string]*Result)
}

func (o *Orchestrator) register(result *Result) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.results[result.ID] = result
}

func (o *Orchestrator) persist(ctx context.Context, result *Result) {
	if o.saver == nil {
		return
	}
	payload, err := json.Marshal(result)
	if err == nil {
		err = o.saver.SaveRun(ctx, result.ID, string(result.Status), payload)
	}
	if err != nil && o.logger != nil {
		o.logger.WithField("run_id", result.ID).WithError(err).Warn("failed to persist pipeline run")
	}
}

// runLog accumulates per-run log lines tagged with the current stage.
type runLog struct {
	stage   string
	entries []string
}

func (r *runLog) log(logger *logrus.Logger, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.entries = append(r.entries, fmt.Sprintf("[%s] [%s] %s", time.Now().UTC().Format(time.RFC3339), r.stage, msg))
	if logger != nil {
		logger.WithField("stage", r.stage).Info(msg)
	}
}
