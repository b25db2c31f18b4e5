package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"nifinova/internal/config"
	"nifinova/internal/dto"
	"nifinova/internal/entity"
	"nifinova/internal/repository"
	"nifinova/pkg/common"
	"nifinova/pkg/logger"
	"nifinova/pkg/utils"

	"github.com/robfig/cron/v3"
)

// Confidence bounds for generated signals.
const (
	confidenceFloor   = 60
	confidenceCeiling = 98
	notifyThreshold   = 90
)

// Broadcaster pushes market updates to connected streaming clients.
type Broadcaster interface {
	BroadcastMarketUpdate(update *dto.MarketUpdate)
}

// SignalGenerator runs the periodic analysis cycle: refresh market data,
// classify sentiment, and emit trading signals. High-confidence signals are
// fanned out to subscribers.
type SignalGenerator interface {
	Start(ctx context.Context)
	RunCycle(ctx context.Context)
}

// NewSignalGenerator creates the signal generator.
func NewSignalGenerator(
	cfg *config.Config,
	marketDataSvc MarketDataService,
	sentimentSvc SentimentService,
	notificationSvc NotificationService,
	signalRepo repository.SignalRepository,
	marketRepo repository.MarketRepository,
	broadcaster Broadcaster,
	log *logger.Logger,
) SignalGenerator {
	return &signalGenerator{
		cfg:             cfg,
		marketDataSvc:   marketDataSvc,
		sentimentSvc:    sentimentSvc,
		notificationSvc: notificationSvc,
		signalRepo:      signalRepo,
		marketRepo:      marketRepo,
		broadcaster:     broadcaster,
		log:             log,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type signalGenerator struct {
	cfg             *config.Config
	marketDataSvc   MarketDataService
	sentimentSvc    SentimentService
	notificationSvc NotificationService
	signalRepo      repository.SignalRepository
	marketRepo      repository.MarketRepository
	broadcaster     Broadcaster
	log             *logger.Logger
	rng             *rand.Rand
}

// Start schedules the generation cycle at the configured interval, runs one
// delayed initial cycle, and blocks until the context is canceled. The cron
// runner is drained before returning so shutdown is deterministic.
func (s *signalGenerator) Start(ctx context.Context) {
	c := cron.New()
	c.Schedule(cron.Every(s.cfg.Generator.Interval), cron.FuncJob(func() {
		s.RunCycle(ctx)
	}))
	c.Start()

	select {
	case <-time.After(s.cfg.Generator.InitialDelay):
		s.RunCycle(ctx)
	case <-ctx.Done():
	}

	<-ctx.Done()
	<-c.Stop().Done()
	s.log.Info("Signal generator stopped")
}

// RunCycle executes one full generation cycle. Errors abandon the cycle; the
// next tick starts fresh.
func (s *signalGenerator) RunCycle(ctx context.Context) {
	quote := s.marketDataSvc.GetNiftyQuote(ctx)
	chain := s.marketDataSvc.GetOptionsChain(ctx)

	sentiment := s.sentimentSvc.AnalyzeMarket(ctx, quote, chain)

	snapshot := BuildMarketSnapshot(quote, sentiment)
	if err := s.marketRepo.SetSnapshot(ctx, snapshot); err != nil {
		s.log.ErrorContext(ctx, "Failed to store market snapshot", logger.ErrorField(err))
		return
	}

	var newSignals []entity.TradingSignal
	switch quote.MarketStatus {
	case common.MarketStatusOpen:
		ind := synthesizeIndicators(quote, s.rng)
		cond := analyzeConditions(ind)

		count := 1 + s.rng.Intn(3)
		for i := 0; i < count; i++ {
			signal := buildSignal(quote.LastPrice, ind, cond, chain, s.rng)
			if err := s.signalRepo.Create(ctx, signal); err != nil {
				s.log.ErrorContext(ctx, "Failed to store signal", logger.ErrorField(err))
				continue
			}
			newSignals = append(newSignals, *signal)

			if signal.Confidence >= notifyThreshold {
				s.notificationSvc.NotifyHighConfidenceSignal(ctx, signal)
			}
		}
	case common.MarketStatusClosed:
		if sentiment.Sentiment != common.SentimentNeutral {
			s.notificationSvc.NotifyMarketAlert(ctx, snapshot)
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastMarketUpdate(&dto.MarketUpdate{
			NiftyData:    snapshot,
			NewSignals:   newSignals,
			OptionsChain: chain,
		})
	}

	s.log.InfoContext(ctx, "Generation cycle complete",
		logger.StringField("market_status", quote.MarketStatus),
		logger.Float64Field("nifty", quote.LastPrice),
		logger.StringField("sentiment", sentiment.Sentiment),
		logger.IntField("new_signals", len(newSignals)),
	)
}

// indicators holds one cycle's synthesized technical values. They are derived
// from the current quote plus uniform randomness only; no state survives
// between cycles.
type indicators struct {
	Open, High, Low, Close   float64
	RSI                      float64
	SMA20, SMA50, EMA20      float64
	BBUpper, BBLower         float64
	BBPosition               float64
	MACDLine, MACDSignal     float64
	MACDHistogram            float64
	ATR, Volatility          float64
	VolumeRatio              float64
	Support1, Support2       float64
	Resistance1, Resistance2 float64
}

// conditions is the trend classification over one cycle's indicators.
type conditions struct {
	Trend      string
	Strength   float64
	Momentum   float64
	CandleType string
	BodySize   float64
}

const avgNiftyVolume = 1200000

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func synthesizeIndicators(quote *dto.Quote, rng *rand.Rand) indicators {
	price := quote.LastPrice
	volatilityFactor := math.Abs(quote.ChangePercent)/100 + 0.005

	open := price - quote.Change
	if open <= 0 {
		open = price * (1 - volatilityFactor)
	}

	dailyRange := price * volatilityFactor
	high := math.Max(price, open) + dailyRange*uniform(rng, 0.3, 0.7)
	low := math.Min(price, open) - dailyRange*uniform(rng, 0.3, 0.7)
	high = math.Max(high, math.Max(price, open))
	low = math.Min(low, math.Min(price, open))

	priceMomentum := 0.0
	if open > 0 {
		priceMomentum = (price - open) / open * 100
	}
	rsi := clamp(50+priceMomentum*2+uniform(rng, -10, 10), 10, 90)

	sma20 := price * (0.995 + uniform(rng, 0, 0.01))
	sma50 := price * (0.99 + uniform(rng, 0, 0.02))
	ema20 := price * (0.998 + uniform(rng, 0, 0.004))

	bbUpper := sma20 * 1.02
	bbLower := sma20 * 0.98
	bbPosition := (price - bbLower) / (bbUpper - bbLower) * 100

	macdLine := (ema20 - sma20) / price * 1000
	macdSignal := macdLine * 0.8
	macdHistogram := macdLine - macdSignal

	atr := (high - low) / price * 100
	volatility := math.Abs(quote.ChangePercent)*2 + atr

	volumeRatio := 0.5
	if quote.Volume > 0 {
		volumeRatio = float64(quote.Volume) / avgNiftyVolume
	}

	return indicators{
		Open: open, High: high, Low: low, Close: price,
		RSI:   rsi,
		SMA20: sma20, SMA50: sma50, EMA20: ema20,
		BBUpper: bbUpper, BBLower: bbLower, BBPosition: bbPosition,
		MACDLine: macdLine, MACDSignal: macdSignal, MACDHistogram: macdHistogram,
		ATR: atr, Volatility: volatility,
		VolumeRatio: volumeRatio,
		Support1:    low, Support2: low - (high-low)*0.5,
		Resistance1: high, Resistance2: high + (high-low)*0.5,
	}
}

func analyzeConditions(ind indicators) conditions {
	bodySize := 0.0
	if ind.Open > 0 {
		bodySize = math.Abs(ind.Close-ind.Open) / ind.Open * 100
	}

	trend := "sideways"
	switch {
	case ind.SMA20 > ind.SMA50 && ind.Close > ind.SMA20:
		if ind.RSI > 50 {
			trend = "strong_bullish"
		} else {
			trend = "bullish"
		}
	case ind.SMA20 < ind.SMA50 && ind.Close < ind.SMA20:
		if ind.RSI < 50 {
			trend = "strong_bearish"
		} else {
			trend = "bearish"
		}
	case ind.Close > ind.Open && bodySize > 0.5:
		trend = "bullish"
	case ind.Close < ind.Open && bodySize > 0.5:
		trend = "bearish"
	}

	strength := 50.0
	switch {
	case ind.RSI > 70:
		strength += 20
	case ind.RSI > 60:
		strength += 10
	case ind.RSI < 30:
		strength += 20 // oversold bounce potential
	case ind.RSI < 40:
		strength += 10
	}
	switch {
	case ind.VolumeRatio > 1.5:
		strength += 15
	case ind.VolumeRatio > 1.2:
		strength += 10
	}
	if ind.MACDHistogram > 0 {
		strength += 10
	}
	switch {
	case ind.BBPosition > 80:
		strength += 5
	case ind.BBPosition < 20:
		strength += 10
	}
	switch {
	case ind.Volatility < 15:
		strength -= 5
	case ind.Volatility > 25:
		strength += 5
	}
	strength = clamp(strength, 30, 95)

	momentum := 50.0
	if ind.Open > 0 {
		momentum += (ind.Close - ind.Open) / ind.Open * 100 * 10
	}
	if ind.MACDLine > ind.MACDSignal {
		momentum += 10
	} else {
		momentum -= 10
	}
	if ind.VolumeRatio > 1.0 {
		momentum += ind.VolumeRatio * 5
	}
	momentum = clamp(momentum, 20, 90)

	candleType := "doji"
	if ind.Close > ind.Open {
		candleType = "bullish"
	} else if ind.Close < ind.Open {
		candleType = "bearish"
	}

	return conditions{
		Trend:      trend,
		Strength:   strength,
		Momentum:   momentum,
		CandleType: candleType,
		BodySize:   bodySize,
	}
}

func buildSignal(price float64, ind indicators, cond conditions, chain []entity.OptionsData, rng *rand.Rand) *entity.TradingSignal {
	bullishVotes, bearishVotes := 0, 0

	switch cond.Trend {
	case "bullish", "strong_bullish":
		bullishVotes += 2
	case "bearish", "strong_bearish":
		bearishVotes += 2
	}
	if price > ind.Open {
		bullishVotes++
	} else {
		bearishVotes++
	}
	switch {
	case ind.RSI < 35:
		bullishVotes += 2
	case ind.RSI > 65:
		bearishVotes += 2
	}
	if ind.MACDHistogram > 0 {
		bullishVotes++
	} else {
		bearishVotes++
	}
	switch {
	case ind.BBPosition < 25:
		bullishVotes++
	case ind.BBPosition > 75:
		bearishVotes++
	}
	if ind.VolumeRatio > 1.2 {
		if price > ind.Open {
			bullishVotes++
		} else {
			bearishVotes++
		}
	}

	isCall := bullishVotes > bearishVotes
	signalType := entity.SignalPut
	if isCall {
		signalType = entity.SignalCall
	}

	baseStrike := math.Round(price/50) * 50
	strike := baseStrike
	if isCall {
		if price > ind.Resistance1*0.995 {
			strike = baseStrike + 50
		}
	} else {
		if price < ind.Support1*1.005 {
			strike = baseStrike - 50
		}
	}

	confidence := float64(confidenceFloor)
	confidence += math.Abs(float64(bullishVotes-bearishVotes)) * 8
	if cond.Strength > 75 {
		confidence += 10
	}
	if cond.Momentum > 70 {
		confidence += 8
	}
	if ind.VolumeRatio > 1.5 {
		confidence += 5
	}
	if math.Abs(ind.MACDHistogram) > 0.5 {
		confidence += 5
	}
	confidence += uniform(rng, -3, 3)
	confidence = clamp(confidence, confidenceFloor, confidenceCeiling)

	premium := basePremium(price, strike, isCall, ind, chain, rng)
	targetMultiplier := 1.8 + ind.Volatility/50
	stopMultiplier := 0.3 + ind.Volatility/100
	target := math.Round(premium*targetMultiplier*100) / 100
	stop := math.Round(premium*stopMultiplier*100) / 100

	return &entity.TradingSignal{
		Type:        signalType,
		StrikePrice: strike,
		TargetPrice: target,
		StopLoss:    stop,
		Confidence:  int(confidence),
		Reasoning:   buildReasoning(signalType, price, ind, cond),
		ExpiryDate:  utils.NextThursday(utils.TimeNowIST()).Format("2006-01-02"),
		CreatedAt:   time.Now(),
	}
}

// basePremium picks a base option price for target/stop derivation: the
// traded LTP of the chosen strike when the chain has one, otherwise an
// intrinsic-plus-time-value estimate.
func basePremium(price, strike float64, isCall bool, ind indicators, chain []entity.OptionsData, rng *rand.Rand) float64 {
	for _, opt := range chain {
		if opt.StrikePrice != strike {
			continue
		}
		ltp := opt.PutLTP
		if isCall {
			ltp = opt.CallLTP
		}
		if ltp > 0 {
			return ltp * uniform(rng, 0.95, 1.05)
		}
	}

	intrinsic := math.Max(0, strike-price)
	if isCall {
		intrinsic = math.Max(0, price-strike)
	}
	timeValue := 15 + ind.Volatility*2
	distance := math.Abs(strike - price)
	return intrinsic + timeValue + distance*0.1 + ind.Volatility*1.5
}

func buildReasoning(signalType entity.SignalType, price float64, ind indicators, cond conditions) string {
	var reasons []string

	if signalType == entity.SignalCall {
		if ind.RSI < 40 {
			reasons = append(reasons, fmt.Sprintf("RSI oversold at %.1f", ind.RSI))
		}
		if price > ind.SMA20 {
			reasons = append(reasons, "Price above SMA20")
		}
		if ind.MACDHistogram > 0 {
			reasons = append(reasons, "MACD bullish crossover")
		}
		if ind.BBPosition < 30 {
			reasons = append(reasons, "Near Bollinger lower band")
		}
	} else {
		if ind.RSI > 60 {
			reasons = append(reasons, fmt.Sprintf("RSI overbought at %.1f", ind.RSI))
		}
		if price < ind.SMA20 {
			reasons = append(reasons, "Price below SMA20")
		}
		if ind.MACDHistogram < 0 {
			reasons = append(reasons, "MACD bearish momentum")
		}
		if ind.BBPosition > 70 {
			reasons = append(reasons, "Near Bollinger upper band")
		}
	}

	if ind.VolumeRatio > 1.3 {
		reasons = append(reasons, "High volume confirmation")
	}
	if ind.Volatility > 20 {
		reasons = append(reasons, "Elevated volatility")
	}
	if cond.BodySize > 1 {
		reasons = append(reasons, fmt.Sprintf("Strong %s candle", cond.CandleType))
	}

	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "Mixed technical picture")
	}

	return strings.Join(reasons, ". ") + fmt.Sprintf(". ATR: %.1f%%, Vol: %.1f%%", ind.ATR, ind.Volatility)
}
