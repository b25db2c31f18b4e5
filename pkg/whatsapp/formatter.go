package whatsapp

import (
	"fmt"
	"strings"
	"time"

	"nifinova/internal/entity"
	"nifinova/pkg/common"
)

// FormatTradingSignal formats a trading signal into the WhatsApp alert
// template.
func FormatTradingSignal(signal *entity.TradingSignal) string {
	var builder strings.Builder

	builder.WriteString("🚨 NIFINOVA AI SIGNAL 🚨\n\n")
	builder.WriteString(fmt.Sprintf("📈 %s Signal Alert\n", signal.Type))
	builder.WriteString(fmt.Sprintf("🎯 Strike: %.0f\n", signal.StrikePrice))
	builder.WriteString(fmt.Sprintf("💪 Confidence: %d%%\n\n", signal.Confidence))

	builder.WriteString("📊 Trade Details:\n")
	builder.WriteString(fmt.Sprintf("• Target: ₹%.2f\n", signal.TargetPrice))
	builder.WriteString(fmt.Sprintf("• Stop Loss: ₹%.2f\n\n", signal.StopLoss))

	builder.WriteString("💡 AI Analysis:\n")
	builder.WriteString(signal.Reasoning)
	builder.WriteString("\n\n")

	builder.WriteString("⚠️ Risk Disclaimer: Trading involves risk. Please trade responsibly.\n\n")
	builder.WriteString("🔥 Powered by NIFINOVA\n")
	builder.WriteString("💼 PKR SOLUTION © 2025")

	return builder.String()
}

// FormatMarketAlert formats a market sentiment alert.
func FormatMarketAlert(data *entity.MarketData) string {
	var statusIcon string
	switch data.Sentiment {
	case common.SentimentBullish:
		statusIcon = "🟢"
	case common.SentimentBearish:
		statusIcon = "🔴"
	default:
		statusIcon = "🟡"
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%s MARKET ALERT %s\n\n", statusIcon, statusIcon))
	builder.WriteString(fmt.Sprintf("📊 Nifty 50: ₹%.2f\n", data.Price))
	builder.WriteString(fmt.Sprintf("📈 Change: %+.2f (%+.2f%%)\n", data.Change, data.ChangePercent))
	builder.WriteString(fmt.Sprintf("🎯 Sentiment: %s\n\n", data.Sentiment))
	builder.WriteString(fmt.Sprintf("💡 Flash Signal: %s\n\n", data.FlashMessage))
	builder.WriteString(fmt.Sprintf("🕐 Status: %s\n", data.MarketStatus))
	builder.WriteString(fmt.Sprintf("⏰ Updated: %s\n\n", time.Now().Format("15:04:05")))
	builder.WriteString("🔥 NIFINOVA AI")

	return builder.String()
}
