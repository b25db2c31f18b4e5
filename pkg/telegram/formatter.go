package telegram

import (
	"fmt"
	"strings"

	"nifinova/internal/entity"
	"nifinova/pkg/utils"
)

// FormatTradingSignal formats a high-confidence trading signal into a
// Markdown message for the broadcast chat.
func FormatTradingSignal(signal *entity.TradingSignal) string {
	var builder strings.Builder

	var icon string
	switch signal.Type {
	case entity.SignalCall:
		icon = "🟢"
	default:
		icon = "🔴"
	}

	builder.WriteString(fmt.Sprintf("%s *NIFTY %s Signal*\n\n", icon, signal.Type))
	builder.WriteString(fmt.Sprintf("🎯 *Strike:* %.0f\n", signal.StrikePrice))
	builder.WriteString(fmt.Sprintf("💵 *Target:* ₹%.2f\n", signal.TargetPrice))
	builder.WriteString(fmt.Sprintf("🛡 *Stop Loss:* ₹%.2f\n", signal.StopLoss))
	builder.WriteString(fmt.Sprintf("📊 *Confidence:* %d%%\n", signal.Confidence))
	builder.WriteString(fmt.Sprintf("📅 *Expiry:* %s\n\n", signal.ExpiryDate))
	builder.WriteString("🧠 *Reasoning:*\n")
	builder.WriteString(fmt.Sprintf("_%s_\n\n", signal.Reasoning))
	builder.WriteString(fmt.Sprintf("%s\n", utils.PrettyDate(signal.CreatedAt)))

	return builder.String()
}
