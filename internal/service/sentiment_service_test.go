package service

import (
	"context"
	"testing"

	"nifinova/internal/config"
	"nifinova/internal/dto"
	"nifinova/pkg/common"
	"nifinova/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeuristicSentimentService(t *testing.T) SentimentService {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	cfg := &config.Config{}
	cfg.Gemini.MaxRequestPerMinute = 10
	return NewSentimentService(cfg, log, nil)
}

func TestSentimentService_HeuristicOpenMarket(t *testing.T) {
	svc := newHeuristicSentimentService(t)
	ctx := context.Background()

	testCases := []struct {
		name           string
		changePercent  float64
		change         float64
		sentiment      string
		recommendation string
	}{
		{"strong gain", 1.4, 280, common.SentimentBullish, common.RecommendationBuyCall},
		{"strong loss", -1.2, -240, common.SentimentBearish, common.RecommendationBuyPut},
		{"moderate gain", 0.7, 140, common.SentimentBullish, common.RecommendationBuyCall},
		{"moderate loss", -0.7, -140, common.SentimentBearish, common.RecommendationBuyPut},
		{"flat", 0.1, 20, common.SentimentNeutral, common.RecommendationDontTrade},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quote := &dto.Quote{
				LastPrice:     19900,
				Change:        tc.change,
				ChangePercent: tc.changePercent,
				MarketStatus:  common.MarketStatusOpen,
			}
			analysis := svc.AnalyzeMarket(ctx, quote, nil)
			assert.Equal(t, tc.sentiment, analysis.Sentiment)
			assert.Equal(t, tc.recommendation, analysis.Recommendation)
			assert.NotEmpty(t, analysis.Reasoning)
		})
	}
}

func TestSentimentService_HeuristicClosedMarket(t *testing.T) {
	svc := newHeuristicSentimentService(t)
	ctx := context.Background()

	quote := &dto.Quote{
		LastPrice:     19900,
		Change:        200,
		ChangePercent: 1.1,
		MarketStatus:  common.MarketStatusClosed,
	}
	analysis := svc.AnalyzeMarket(ctx, quote, nil)
	assert.Equal(t, common.SentimentBullish, analysis.Sentiment)
	assert.Equal(t, common.RecommendationMonitor, analysis.Recommendation)

	quote.Change = 10
	quote.ChangePercent = 0.05
	analysis = svc.AnalyzeMarket(ctx, quote, nil)
	assert.Equal(t, common.SentimentNeutral, analysis.Sentiment)
	assert.Equal(t, common.RecommendationMonitor, analysis.Recommendation)
}

func TestFormatFlashMessage(t *testing.T) {
	assert.Contains(t, FormatFlashMessage(common.RecommendationBuyCall, common.MarketStatusOpen), "BUY CALL")
	assert.Contains(t, FormatFlashMessage(common.RecommendationBuyPut, common.MarketStatusOpen), "BUY PUT")
	assert.Contains(t, FormatFlashMessage(common.RecommendationDontTrade, common.MarketStatusOpen), "HOLD")
	assert.Contains(t, FormatFlashMessage(common.RecommendationBuyCall, common.MarketStatusClosed), common.MarketStatusClosed)
}
