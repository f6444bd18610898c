package services

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/svarno/svarno_backend/internal/core/domain"
)

// Sample dashboard sections served when their source cannot be read.

func placeholderPortfolio(userID string) domain.Portfolio {
	holding := func(symbol, name string, shares, value int64, change string) domain.Holding {
		return domain.Holding{
			HoldingID: "placeholder-" + symbol,
			UserID:    userID,
			Symbol:    symbol,
			Name:      name,
			Shares:    decimal.NewFromInt(shares),
			Value:     decimal.NewFromInt(value),
			DayChange: decimal.RequireFromString(change),
		}
	}
	return domain.Portfolio{
		TotalValue:       decimal.NewFromInt(125000),
		DayChange:        decimal.NewFromInt(1250),
		DayChangePercent: decimal.RequireFromString("1.01"),
		Holdings: []domain.Holding{
			holding("AAPL", "Apple Inc.", 50, 8750, "87.5"),
			holding("MSFT", "Microsoft Corp.", 30, 12000, "120"),
			holding("GOOGL", "Alphabet Inc.", 20, 2800, "28"),
		},
	}
}

func placeholderLearningProgress(userID string, now time.Time) domain.LearningProgress {
	return domain.LearningProgress{
		UserID:           userID,
		Level:            5,
		Experience:       750,
		ExperienceToNext: 250,
		Streak:           7,
		NextLesson:       "Understanding Market Volatility",
		Achievements: []domain.Achievement{
			{Name: "First Trade", Icon: "target", EarnedAt: now},
			{Name: "Budget Master", Icon: "money-bag", EarnedAt: now},
		},
	}
}

func placeholderInsights(userID string, now time.Time) []domain.Insight {
	action := func(s string) *string { return &s }
	return []domain.Insight{
		{
			InsightID:   "placeholder-1",
			UserID:      userID,
			Type:        domain.InsightOpportunity,
			Title:       "Diversification Opportunity",
			Description: "Consider adding international stocks to diversify your portfolio",
			ActionText:  action("Explore ETFs"),
			Priority:    domain.PriorityMedium,
			Category:    "investing",
			CreatedAt:   now,
		},
		{
			InsightID:   "placeholder-2",
			UserID:      userID,
			Type:        domain.InsightAlert,
			Title:       "Budget Alert",
			Description: "You're approaching your entertainment budget limit",
			ActionText:  action("Review Spending"),
			Priority:    domain.PriorityHigh,
			Category:    "budget",
			CreatedAt:   now,
		},
		{
			InsightID:   "placeholder-3",
			UserID:      userID,
			Type:        domain.InsightTip,
			Title:       "Learning Tip",
			Description: `Complete the "Risk Management" module to unlock advanced trading features`,
			ActionText:  action("Start Learning"),
			Priority:    domain.PriorityLow,
			Category:    "learning",
			CreatedAt:   now,
		},
	}
}
