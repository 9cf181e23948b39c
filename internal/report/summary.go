// Package report turns ledger rows into monthly summaries, health bands and
// yearly overviews. Everything here is pure; callers load the rows.
package report

import (
	"strings"

	"cofre/internal/dates"
	"cofre/internal/models"
	"cofre/internal/money"
)

// NoEmotion is reported when no expense carries an emotion.
const NoEmotion = "none"

// Alert thresholds, in percent.
const (
	NonEssentialThreshold    = 30.0
	CardThreshold            = 50.0
	NegativeEmotionThreshold = 50.0
)

// Alert kinds.
const (
	AlertNonEssential    = "non_essential_spending"
	AlertCardDependency  = "card_dependency"
	AlertEmotionalSpends = "emotional_spending"
)

const (
	uncategorized = "Uncategorized"
	unspecified   = "Unspecified"
)

var (
	cardMarkers      = []string{"cartão", "cartao", "card", "crédito", "credito"}
	negativeEmotions = map[string]bool{
		"culpa": true, "estresse": true, "impulso": true, "ansiedade": true, "raiva": true,
		"guilt": true, "stress": true, "impulse": true, "anxiety": true, "anger": true,
	}
)

// Alert is an informational warning attached to a summary.
type Alert struct {
	Kind    string  `json:"kind"`
	Message string  `json:"message"`
	Percent float64 `json:"percent"`
}

// Summary describes one month of expenses.
type Summary struct {
	Period                 dates.Period `json:"period"`
	Count                  int          `json:"count"`
	Total                  int64        `json:"total"`
	TotalText              string       `json:"total_text"`
	Essential              int64        `json:"essential"`
	NonEssential           int64        `json:"non_essential"`
	EssentialPercent       float64      `json:"essential_percent"`
	NonEssentialPercent    float64      `json:"non_essential_percent"`
	CardTotal              int64        `json:"card_total"`
	CardPercent            float64      `json:"card_percent"`
	NegativeEmotionPercent float64      `json:"negative_emotion_percent"`
	PredominantEmotion     string       `json:"predominant_emotion"`
	ByCategory             []Slice      `json:"by_category"`
	ByPaymentMethod        []Slice      `json:"by_payment_method"`
	ByEmotion              []Slice      `json:"by_emotion"`
	Alerts                 []Alert      `json:"alerts"`
}

// IsCard reports whether a payment method is a card.
func IsCard(paymentMethod string) bool {
	pm := strings.ToLower(paymentMethod)
	for _, m := range cardMarkers {
		if strings.Contains(pm, m) {
			return true
		}
	}
	return false
}

// IsNegativeEmotion reports whether emotion is one of the tracked negative states.
func IsNegativeEmotion(emotion string) bool {
	return negativeEmotions[strings.ToLower(strings.TrimSpace(emotion))]
}

// Summarize aggregates the expenses that fall within period. Rows outside
// the period are ignored. Input order decides the order of breakdowns and
// breaks ties for the predominant emotion.
func Summarize(expenses []models.Expense, period dates.Period) Summary {
	s := Summary{
		Period:             period,
		PredominantEmotion: NoEmotion,
		Alerts:             []Alert{},
	}

	categories := NewTotals()
	methods := NewTotals()
	emotions := NewTotals()
	negative := 0

	for _, e := range expenses {
		if !period.Contains(e.Date) {
			continue
		}
		s.Count++
		s.Total += e.Amount
		if e.Essential {
			s.Essential += e.Amount
		} else {
			s.NonEssential += e.Amount
		}
		if IsCard(e.PaymentMethod) {
			s.CardTotal += e.Amount
		}

		categories.Add(labelOr(e.Category, uncategorized), e.Amount)
		methods.Add(labelOr(e.PaymentMethod, unspecified), e.Amount)
		if emotion := strings.TrimSpace(e.Emotion); emotion != "" {
			emotions.Add(emotion, e.Amount)
			if IsNegativeEmotion(emotion) {
				negative++
			}
		}
	}

	s.TotalText = money.Format(s.Total)
	s.ByCategory = categories.Slices(s.Total)
	s.ByPaymentMethod = methods.Slices(s.Total)
	s.ByEmotion = emotions.Slices(s.Total)
	if top, ok := emotions.MostFrequent(); ok {
		s.PredominantEmotion = top
	}

	nonEssential := money.Percent(s.NonEssential, s.Total)
	card := money.Percent(s.CardTotal, s.Total)
	var negativeShare float64
	if s.Count > 0 {
		negativeShare = float64(negative) / float64(s.Count) * 100
	}

	s.EssentialPercent = money.Round(money.Percent(s.Essential, s.Total), 1)
	s.NonEssentialPercent = money.Round(nonEssential, 1)
	s.CardPercent = money.Round(card, 1)
	s.NegativeEmotionPercent = money.Round(negativeShare, 1)

	if nonEssential > NonEssentialThreshold {
		s.Alerts = append(s.Alerts, Alert{
			Kind:    AlertNonEssential,
			Message: "Non-essential spending is above 30% of the month's expenses",
			Percent: s.NonEssentialPercent,
		})
	}
	if card > CardThreshold {
		s.Alerts = append(s.Alerts, Alert{
			Kind:    AlertCardDependency,
			Message: "More than half of the month's expenses were paid by card",
			Percent: s.CardPercent,
		})
	}
	if negativeShare > NegativeEmotionThreshold {
		s.Alerts = append(s.Alerts, Alert{
			Kind:    AlertEmotionalSpends,
			Message: "Most purchases this month were made under negative emotions",
			Percent: s.NegativeEmotionPercent,
		})
	}

	return s
}

// IncomeSummary describes one month of incomes.
type IncomeSummary struct {
	Period    dates.Period `json:"period"`
	Count     int          `json:"count"`
	Total     int64        `json:"total"`
	TotalText string       `json:"total_text"`
	Recurring int64        `json:"recurring"`
	ByType    []Slice      `json:"by_type"`
}

// SummarizeIncomes aggregates the incomes that fall within period by income type.
func SummarizeIncomes(incomes []models.Income, period dates.Period) IncomeSummary {
	s := IncomeSummary{Period: period}
	types := NewTotals()
	for _, in := range incomes {
		if !period.Contains(in.Date) {
			continue
		}
		s.Count++
		s.Total += in.Amount
		if in.Recurring || in.GroupID != nil {
			s.Recurring += in.Amount
		}
		types.Add(labelOr(in.IncomeType, unspecified), in.Amount)
	}
	s.TotalText = money.Format(s.Total)
	s.ByType = types.Slices(s.Total)
	return s
}

func labelOr(s, fallback string) string {
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return s
}
