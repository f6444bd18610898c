package mapping

import (
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/models"
)

// ToDomainHolding converts a model Holding to a domain Holding
func ToDomainHolding(m models.Holding) domain.Holding {
	return domain.Holding{
		HoldingID: m.HoldingID,
		UserID:    m.UserID,
		Symbol:    m.Symbol,
		Name:      m.Name,
		Shares:    m.Shares,
		Value:     m.Value,
		DayChange: m.DayChange,
	}
}

// ToDomainLearningProgress converts a model LearningProgress to its domain form
func ToDomainLearningProgress(m models.LearningProgress) domain.LearningProgress {
	achievements := make([]domain.Achievement, len(m.Achievements))
	for i, a := range m.Achievements {
		achievements[i] = domain.Achievement{Name: a.Name, Icon: a.Icon, EarnedAt: a.EarnedAt}
	}
	return domain.LearningProgress{
		UserID:           m.UserID,
		Level:            m.Level,
		Experience:       m.Experience,
		ExperienceToNext: m.ExperienceToNext,
		Streak:           m.Streak,
		NextLesson:       m.NextLesson,
		Achievements:     achievements,
	}
}

// ToModelInsight converts a domain Insight to a model Insight
func ToModelInsight(d domain.Insight) models.Insight {
	return models.Insight{
		InsightID:   d.InsightID,
		UserID:      d.UserID,
		Type:        string(d.Type),
		Title:       d.Title,
		Description: d.Description,
		ActionText:  nullStringPtr(d.ActionText),
		Priority:    string(d.Priority),
		Category:    d.Category,
		DedupeKey:   nullString(d.DedupeKey),
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainInsight converts a model Insight to a domain Insight
func ToDomainInsight(m models.Insight) domain.Insight {
	return domain.Insight{
		InsightID:   m.InsightID,
		UserID:      m.UserID,
		Type:        domain.InsightType(m.Type),
		Title:       m.Title,
		Description: m.Description,
		ActionText:  stringPtr(m.ActionText),
		Priority:    domain.InsightPriority(m.Priority),
		Category:    m.Category,
		DedupeKey:   m.DedupeKey.String,
		CreatedAt:   m.CreatedAt,
	}
}
