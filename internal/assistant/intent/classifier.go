// Package intent turns raw user text into a typed Intent. Classification is
// a pure function; rule order is fixed and the first match wins.
package intent

import (
	"regexp"
	"strings"

	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/model"
	"github.com/merkaba-entertainment/m1a-assistant/internal/assistant/screens"
)

// Inquiry prefix families. Navigation phrasing ("show me", "take me to")
// yields a Navigate intent when a screen resolves; question phrasing yields
// ServiceInquiry.
var (
	navInquiryRe = regexp.MustCompile(`^(show me|take me( to)?|open|go to)\b`)
	askInquiryRe = regexp.MustCompile(`^(what('s| is| are)?|how (do|can|does)|where('s| is| are| can)?)\b`)
)

var purchaseKeywords = []string{"buy", "purchase", "order", "checkout", "pay", "cart"}

var bookingKeywords = []string{"book", "reserve", "schedule", "create event", "ticket"}

var questionKeywords = []string{"how", "what", "where", "when", "why", "help", "guide"}

var salesKeywords = []string{"sell", "sales", "revenue", "profit"}

// Classify detects the intent of a single user turn. Empty or whitespace
// input classifies as a low-confidence question.
func Classify(query string) model.Intent {
	lower := strings.ToLower(strings.TrimSpace(query))
	if lower == "" {
		return model.Intent{Kind: model.IntentQuestion, Confidence: 0.5}
	}

	// Service-inquiry families run before the direct keyword scan so that
	// "show me the menu" navigates with higher confidence than a bare
	// keyword hit would.
	if navInquiryRe.MatchString(lower) {
		if screen, ok := screens.Resolve(lower); ok {
			return model.Intent{Kind: model.IntentNavigate, Confidence: 0.95, TargetScreen: screen, RawQuery: lower}
		}
		return model.Intent{Kind: model.IntentServiceInquiry, Confidence: 0.9, RawQuery: lower}
	}
	if askInquiryRe.MatchString(lower) {
		if screen, ok := screens.Resolve(lower); ok {
			return model.Intent{Kind: model.IntentServiceInquiry, Confidence: 0.95, TargetScreen: screen, RawQuery: lower}
		}
		return model.Intent{Kind: model.IntentServiceInquiry, Confidence: 0.9, RawQuery: lower}
	}

	if screen, ok := screens.Resolve(lower); ok {
		return model.Intent{Kind: model.IntentNavigate, Confidence: 0.9, TargetScreen: screen, RawQuery: lower}
	}

	if containsAny(lower, purchaseKeywords) {
		return model.Intent{Kind: model.IntentPurchase, Confidence: 0.85, RawQuery: lower}
	}

	if containsAny(lower, bookingKeywords) {
		return model.Intent{Kind: model.IntentBooking, Confidence: 0.9, TargetScreen: model.ScreenEventBooking, RawQuery: lower}
	}

	if containsAny(lower, questionKeywords) {
		return model.Intent{Kind: model.IntentQuestion, Confidence: 0.8, RawQuery: lower}
	}

	if containsAny(lower, salesKeywords) {
		return model.Intent{Kind: model.IntentSales, Confidence: 0.85, RawQuery: lower}
	}

	return model.Intent{Kind: model.IntentGeneral, Confidence: 0.5, RawQuery: lower}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
