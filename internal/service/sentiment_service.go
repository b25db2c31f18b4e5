package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"nifinova/internal/config"
	"nifinova/internal/dto"
	"nifinova/internal/entity"
	"nifinova/pkg/common"
	"nifinova/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// SentimentService classifies the current market mood and produces a trading
// recommendation. With a Gemini API key configured the analysis is delegated
// to the model; otherwise a threshold heuristic on the quote is used. The
// result is always usable; AI failures fall back to the heuristic.
type SentimentService interface {
	AnalyzeMarket(ctx context.Context, quote *dto.Quote, chain []entity.OptionsData) *dto.SentimentAnalysis
}

// NewSentimentService creates a sentiment service. genAIClient may be nil,
// which disables the AI path entirely.
func NewSentimentService(cfg *config.Config, log *logger.Logger, genAIClient *genai.Client) SentimentService {
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	return &sentimentService{
		cfg:            cfg,
		log:            log,
		genAIClient:    genAIClient,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

type sentimentService struct {
	cfg            *config.Config
	log            *logger.Logger
	genAIClient    *genai.Client
	requestLimiter *rate.Limiter
}

// AnalyzeMarket returns a sentiment analysis for the given quote.
func (s *sentimentService) AnalyzeMarket(ctx context.Context, quote *dto.Quote, chain []entity.OptionsData) *dto.SentimentAnalysis {
	if s.genAIClient == nil {
		return s.heuristicAnalysis(quote)
	}

	analysis, err := s.aiAnalysis(ctx, quote, chain)
	if err != nil {
		s.log.WarnContext(ctx, "AI sentiment analysis failed, using heuristic", logger.ErrorField(err))
		return s.heuristicAnalysis(quote)
	}
	return analysis
}

func (s *sentimentService) aiAnalysis(ctx context.Context, quote *dto.Quote, chain []entity.OptionsData) (*dto.SentimentAnalysis, error) {
	if err := s.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	prompt := buildSentimentPrompt(quote, chain)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}

	resp, err := s.genAIClient.Models.GenerateContent(ctx, s.cfg.Gemini.Model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var analysis dto.SentimentAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse sentiment response: %w", err)
	}
	if analysis.Sentiment == "" || analysis.Recommendation == "" {
		return nil, fmt.Errorf("incomplete sentiment response: %q", text)
	}
	return &analysis, nil
}

func buildSentimentPrompt(quote *dto.Quote, chain []entity.OptionsData) string {
	var sb strings.Builder
	sb.WriteString("Analyze the current Nifty 50 market data and provide sentiment analysis.\n\n")
	sb.WriteString("Market Data:\n")
	sb.WriteString(fmt.Sprintf("- Current Price: %.2f\n", quote.LastPrice))
	sb.WriteString(fmt.Sprintf("- Change: %+.2f (%+.2f%%)\n", quote.Change, quote.ChangePercent))
	sb.WriteString(fmt.Sprintf("- Volume: %d\n", quote.Volume))
	sb.WriteString(fmt.Sprintf("- Market Status: %s\n\n", quote.MarketStatus))

	if len(chain) > 0 {
		sample := chain
		if len(sample) > 3 {
			sample = sample[:3]
		}
		sb.WriteString("Options Data Sample:\n")
		for _, opt := range sample {
			sb.WriteString(fmt.Sprintf("- Strike %.0f: call LTP %.2f (vol %d), put LTP %.2f (vol %d)\n",
				opt.StrikePrice, opt.CallLTP, opt.CallVolume, opt.PutLTP, opt.PutVolume))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Respond with JSON only, no markdown, in this exact format:\n")
	sb.WriteString(`{"sentiment": "BULLISH|BEARISH|NEUTRAL", "recommendation": "BUY_CALL|BUY_PUT|DONT_TRADE", "reasoning": "max 100 words"}`)
	return sb.String()
}

// heuristicAnalysis mirrors the thresholds used when no AI provider is
// configured.
func (s *sentimentService) heuristicAnalysis(quote *dto.Quote) *dto.SentimentAnalysis {
	change := quote.Change
	changePercent := quote.ChangePercent

	if quote.MarketStatus != common.MarketStatusOpen {
		if math.Abs(changePercent) > 0.5 {
			sentiment := common.SentimentBearish
			direction := "loss"
			if change > 0 {
				sentiment = common.SentimentBullish
				direction = "gain"
			}
			return &dto.SentimentAnalysis{
				Sentiment:      sentiment,
				Recommendation: common.RecommendationMonitor,
				Reasoning:      fmt.Sprintf("Market closed with %.1f%% %s - monitor for next session", math.Abs(changePercent), direction),
			}
		}
		return &dto.SentimentAnalysis{
			Sentiment:      common.SentimentNeutral,
			Recommendation: common.RecommendationMonitor,
			Reasoning:      "Market closed with minimal movement - wait for next session",
		}
	}

	switch {
	case changePercent > 1:
		return &dto.SentimentAnalysis{
			Sentiment:      common.SentimentBullish,
			Recommendation: common.RecommendationBuyCall,
			Reasoning:      "Strong positive momentum with over 1% gain",
		}
	case changePercent < -1:
		return &dto.SentimentAnalysis{
			Sentiment:      common.SentimentBearish,
			Recommendation: common.RecommendationBuyPut,
			Reasoning:      "Significant decline with over 1% loss",
		}
	case math.Abs(changePercent) > 0.5:
		sentiment := common.SentimentBearish
		recommendation := common.RecommendationBuyPut
		direction := "downward"
		if change > 0 {
			sentiment = common.SentimentBullish
			recommendation = common.RecommendationBuyCall
			direction = "upward"
		}
		return &dto.SentimentAnalysis{
			Sentiment:      sentiment,
			Recommendation: recommendation,
			Reasoning:      fmt.Sprintf("Moderate %s movement", direction),
		}
	default:
		return &dto.SentimentAnalysis{
			Sentiment:      common.SentimentNeutral,
			Recommendation: common.RecommendationDontTrade,
			Reasoning:      "Low volatility, range-bound movement",
		}
	}
}

// FormatFlashMessage turns a recommendation into the dashboard flash banner.
func FormatFlashMessage(recommendation, marketStatus string) string {
	if marketStatus != common.MarketStatusOpen {
		return fmt.Sprintf("📴 MARKET NOT LIVE - %s", marketStatus)
	}

	switch recommendation {
	case common.RecommendationBuyCall:
		return "🚀 BUY CALL - Bullish momentum detected!"
	case common.RecommendationBuyPut:
		return "📉 BUY PUT - Bearish pressure building!"
	case common.RecommendationDontTrade:
		return "⏸️ HOLD - Wait for clear direction"
	default:
		return "⏸️ HOLD - Monitor market"
	}
}
