package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"nifinova/internal/config"
	"nifinova/internal/dto"
	"nifinova/internal/entity"
	"nifinova/internal/repository"
	"nifinova/pkg/common"
	"nifinova/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSignal_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	quote := &dto.Quote{
		LastPrice:     19845.30,
		Change:        120.5,
		ChangePercent: 0.61,
		Volume:        1500000,
		MarketStatus:  common.MarketStatusOpen,
	}

	for i := 0; i < 500; i++ {
		ind := synthesizeIndicators(quote, rng)
		cond := analyzeConditions(ind)
		signal := buildSignal(quote.LastPrice, ind, cond, nil, rng)

		assert.GreaterOrEqual(t, signal.Confidence, confidenceFloor)
		assert.LessOrEqual(t, signal.Confidence, confidenceCeiling)
		assert.Contains(t, []entity.SignalType{entity.SignalCall, entity.SignalPut}, signal.Type)
		assert.Zero(t, int(signal.StrikePrice)%50, "strike must land on the 50-point ladder")
		assert.Greater(t, signal.TargetPrice, signal.StopLoss)
		assert.Greater(t, signal.StopLoss, 0.0)
		assert.NotEmpty(t, signal.Reasoning)

		expiry, err := time.Parse("2006-01-02", signal.ExpiryDate)
		require.NoError(t, err)
		assert.Equal(t, time.Thursday, expiry.Weekday())
	}
}

func TestBuildSignal_PrefersChainPremium(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	quote := &dto.Quote{
		LastPrice:     19850,
		Change:        250,
		ChangePercent: 1.27,
		Volume:        2000000,
		MarketStatus:  common.MarketStatusOpen,
	}
	chain := []entity.OptionsData{
		{StrikePrice: 19800, CallLTP: 120, PutLTP: 40},
		{StrikePrice: 19850, CallLTP: 95, PutLTP: 55},
		{StrikePrice: 19900, CallLTP: 70, PutLTP: 80},
	}

	ind := synthesizeIndicators(quote, rng)
	cond := analyzeConditions(ind)
	signal := buildSignal(quote.LastPrice, ind, cond, chain, rng)

	var ltp float64
	for _, opt := range chain {
		if opt.StrikePrice == signal.StrikePrice {
			if signal.Type == entity.SignalCall {
				ltp = opt.CallLTP
			} else {
				ltp = opt.PutLTP
			}
		}
	}
	if ltp > 0 {
		// Target derives from LTP scaled by at most 5% plus the volatility
		// multiplier, so it stays in a band around the traded premium.
		assert.Less(t, signal.TargetPrice, ltp*1.05*(1.8+ind.Volatility/50)+0.01)
	}
}

func TestSynthesizeIndicators_Consistency(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	quote := &dto.Quote{
		LastPrice:     19900,
		Change:        -150,
		ChangePercent: -0.75,
		Volume:        900000,
		MarketStatus:  common.MarketStatusOpen,
	}

	for i := 0; i < 200; i++ {
		ind := synthesizeIndicators(quote, rng)
		assert.GreaterOrEqual(t, ind.High, ind.Close)
		assert.GreaterOrEqual(t, ind.High, ind.Open)
		assert.LessOrEqual(t, ind.Low, ind.Close)
		assert.LessOrEqual(t, ind.Low, ind.Open)
		assert.GreaterOrEqual(t, ind.RSI, 10.0)
		assert.LessOrEqual(t, ind.RSI, 90.0)
		assert.Greater(t, ind.Resistance1, ind.Support1)
	}
}

type fakeMarketDataSvc struct {
	quote *dto.Quote
	chain []entity.OptionsData
}

func (f *fakeMarketDataSvc) GetNiftyQuote(context.Context) *dto.Quote { return f.quote }
func (f *fakeMarketDataSvc) GetOptionsChain(context.Context) []entity.OptionsData {
	return f.chain
}

type fakeSentimentSvc struct {
	analysis *dto.SentimentAnalysis
}

func (f *fakeSentimentSvc) AnalyzeMarket(context.Context, *dto.Quote, []entity.OptionsData) *dto.SentimentAnalysis {
	return f.analysis
}

type fakeNotificationSvc struct {
	signalAlerts int
	marketAlerts int
}

func (f *fakeNotificationSvc) NotifyHighConfidenceSignal(context.Context, *entity.TradingSignal) {
	f.signalAlerts++
}
func (f *fakeNotificationSvc) NotifyMarketAlert(context.Context, *entity.MarketData) {
	f.marketAlerts++
}

type fakeBroadcaster struct {
	updates []*dto.MarketUpdate
}

func (f *fakeBroadcaster) BroadcastMarketUpdate(update *dto.MarketUpdate) {
	f.updates = append(f.updates, update)
}

func newTestGenerator(t *testing.T, quote *dto.Quote, analysis *dto.SentimentAnalysis) (SignalGenerator, repository.SignalRepository, repository.MarketRepository, *fakeNotificationSvc, *fakeBroadcaster) {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Generator.Interval = time.Minute
	cfg.Generator.InitialDelay = time.Millisecond

	signalRepo := repository.NewSignalRepository()
	marketRepo := repository.NewMarketRepository()
	notifications := &fakeNotificationSvc{}
	broadcaster := &fakeBroadcaster{}

	gen := NewSignalGenerator(
		cfg,
		&fakeMarketDataSvc{quote: quote},
		&fakeSentimentSvc{analysis: analysis},
		notifications,
		signalRepo,
		marketRepo,
		broadcaster,
		log,
	)
	return gen, signalRepo, marketRepo, notifications, broadcaster
}

func TestRunCycle_OpenMarketCreatesSignals(t *testing.T) {
	quote := &dto.Quote{
		LastPrice:     19845.30,
		Change:        180,
		ChangePercent: 0.92,
		Volume:        1600000,
		MarketStatus:  common.MarketStatusOpen,
	}
	analysis := &dto.SentimentAnalysis{
		Sentiment:      common.SentimentBullish,
		Recommendation: common.RecommendationBuyCall,
		Reasoning:      "momentum",
	}

	gen, signalRepo, marketRepo, _, broadcaster := newTestGenerator(t, quote, analysis)
	ctx := context.Background()

	gen.RunCycle(ctx)

	signals, err := signalRepo.FindActive(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(signals), 1)
	assert.LessOrEqual(t, len(signals), 3)

	snapshot, err := marketRepo.GetSnapshot(ctx, common.SymbolNifty50)
	require.NoError(t, err)
	assert.Equal(t, quote.LastPrice, snapshot.Price)
	assert.Equal(t, common.SentimentBullish, snapshot.Sentiment)

	require.Len(t, broadcaster.updates, 1)
	assert.Len(t, broadcaster.updates[0].NewSignals, len(signals))
}

func TestRunCycle_ClosedMarketSendsAlertOnly(t *testing.T) {
	quote := &dto.Quote{
		LastPrice:     19700,
		Change:        -210,
		ChangePercent: -1.05,
		Volume:        0,
		MarketStatus:  common.MarketStatusClosed,
	}
	analysis := &dto.SentimentAnalysis{
		Sentiment:      common.SentimentBearish,
		Recommendation: common.RecommendationMonitor,
		Reasoning:      "gap down",
	}

	gen, signalRepo, _, notifications, broadcaster := newTestGenerator(t, quote, analysis)
	ctx := context.Background()

	gen.RunCycle(ctx)

	signals, err := signalRepo.FindActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, signals)
	assert.Equal(t, 1, notifications.marketAlerts)
	assert.Zero(t, notifications.signalAlerts)
	require.Len(t, broadcaster.updates, 1)
}

func TestRunCycle_ClosedNeutralStaysQuiet(t *testing.T) {
	quote := &dto.Quote{
		LastPrice:     19845.30,
		Change:        12,
		ChangePercent: 0.06,
		MarketStatus:  common.MarketStatusClosed,
	}
	analysis := &dto.SentimentAnalysis{
		Sentiment:      common.SentimentNeutral,
		Recommendation: common.RecommendationMonitor,
		Reasoning:      "flat",
	}

	gen, _, _, notifications, _ := newTestGenerator(t, quote, analysis)
	gen.RunCycle(context.Background())

	assert.Zero(t, notifications.marketAlerts)
	assert.Zero(t, notifications.signalAlerts)
}
