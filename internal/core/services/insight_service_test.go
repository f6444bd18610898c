package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/svarno/svarno_backend/internal/apperrors"
	"github.com/svarno/svarno_backend/internal/core/domain"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
	"github.com/svarno/svarno_backend/internal/core/services"
)

type InsightServiceTestSuite struct {
	suite.Suite
	txRepo     *MockTransactionRepository
	budgetRepo *MockBudgetRepository
	dashRepo   *MockDashboardRepository
	service    portssvc.InsightSvc
}

func (s *InsightServiceTestSuite) SetupTest() {
	s.txRepo = new(MockTransactionRepository)
	s.budgetRepo = new(MockBudgetRepository)
	s.dashRepo = new(MockDashboardRepository)
	s.service = services.NewInsightService(s.txRepo, s.budgetRepo, s.dashRepo)
}

func TestInsightServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InsightServiceTestSuite))
}

func (s *InsightServiceTestSuite) TestRefreshBudgetInsights_RaisesAndClears() {
	s.budgetRepo.On("ListBudgetsByUser", mock.Anything, "user-1").Return([]domain.Budget{
		{BudgetID: "b1", Category: "Entertainment", Limit: decimal.NewFromInt(100), Spent: decimal.NewFromInt(85)},
		{BudgetID: "b2", Category: "Shopping", Limit: decimal.NewFromInt(100), Spent: decimal.NewFromInt(10)},
		{BudgetID: "b3", Category: "Food & Dining", Limit: decimal.NewFromInt(100), Spent: decimal.Zero},
	}, nil)
	s.txRepo.On("ListTransactionsByUser", mock.Anything, "user-1").Return([]domain.Transaction{
		{TransactionID: "t1", UserID: "user-1", Type: domain.TransactionExpense, Amount: decimal.NewFromInt(120), Description: "Feast", Category: "Food & Dining", Date: time.Now()},
	}, nil)

	s.dashRepo.On("UpsertInsight", mock.Anything, mock.MatchedBy(func(i domain.Insight) bool {
		return i.DedupeKey == "budget:Entertainment" && i.Priority == domain.PriorityMedium && i.Type == domain.InsightAlert
	})).Return(nil).Once()
	s.dashRepo.On("UpsertInsight", mock.Anything, mock.MatchedBy(func(i domain.Insight) bool {
		return i.DedupeKey == "budget:Food & Dining" && i.Priority == domain.PriorityHigh
	})).Return(nil).Once()
	s.dashRepo.On("DeleteInsightByKey", mock.Anything, "user-1", "budget:Shopping").Return(nil).Once()

	s.Require().NoError(s.service.RefreshBudgetInsights(context.Background(), "user-1"))
	s.dashRepo.AssertExpectations(s.T())
}

func (s *InsightServiceTestSuite) TestRefreshBudgetInsights_BandsUseUnroundedUsage() {
	s.budgetRepo.On("ListBudgetsByUser", mock.Anything, "user-1").Return([]domain.Budget{
		{BudgetID: "b1", Category: "Games", Limit: decimal.NewFromInt(100), Spent: decimal.RequireFromString("99.96")},
		{BudgetID: "b2", Category: "Shopping", Limit: decimal.NewFromInt(100), Spent: decimal.RequireFromString("79.96")},
	}, nil)
	s.txRepo.On("ListTransactionsByUser", mock.Anything, "user-1").Return([]domain.Transaction{}, nil)

	s.dashRepo.On("UpsertInsight", mock.Anything, mock.MatchedBy(func(i domain.Insight) bool {
		return i.DedupeKey == "budget:Games" && i.Priority == domain.PriorityMedium &&
			i.Description == "You're approaching your Games budget limit (99% used)"
	})).Return(nil).Once()
	s.dashRepo.On("DeleteInsightByKey", mock.Anything, "user-1", "budget:Shopping").Return(nil).Once()

	s.Require().NoError(s.service.RefreshBudgetInsights(context.Background(), "user-1"))
	s.dashRepo.AssertExpectations(s.T())
}

func (s *InsightServiceTestSuite) TestRefreshBudgetInsights_BudgetsUnavailable() {
	s.budgetRepo.On("ListBudgetsByUser", mock.Anything, "user-1").Return(nil, errRemoteDown)

	err := s.service.RefreshBudgetInsights(context.Background(), "user-1")

	s.True(errors.Is(err, apperrors.ErrUnavailable))
	s.dashRepo.AssertNotCalled(s.T(), "UpsertInsight", mock.Anything, mock.Anything)
}

func (s *InsightServiceTestSuite) TestRefreshBudgetInsights_EmptyUser() {
	err := s.service.RefreshBudgetInsights(context.Background(), "")
	s.True(errors.Is(err, apperrors.ErrValidation))
}
