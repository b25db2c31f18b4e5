package common

// Market session status values.
const (
	MarketStatusOpen      = "OPEN"
	MarketStatusClosed    = "CLOSED"
	MarketStatusPreMarket = "PRE_MARKET"
	MarketStatusWeekend   = "WEEKEND"
)

// Sentiment classifications.
const (
	SentimentBullish = "BULLISH"
	SentimentBearish = "BEARISH"
	SentimentNeutral = "NEUTRAL"
)

// Trading recommendations attached to a sentiment analysis.
const (
	RecommendationBuyCall   = "BUY_CALL"
	RecommendationBuyPut    = "BUY_PUT"
	RecommendationDontTrade = "DONT_TRADE"
	RecommendationMonitor   = "MONITOR"
)

// SymbolNifty50 is the only tracked index symbol.
const SymbolNifty50 = "NIFTY50"
