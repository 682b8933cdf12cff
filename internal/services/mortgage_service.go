package services

import (
	"context"
	"fmt"

	"github.com/sjperalta/mortgagekit-api/internal/calculator"
	"github.com/sjperalta/mortgagekit-api/internal/models"
	"github.com/sjperalta/mortgagekit-api/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// CalculatorFactory resolves the calculator of a repayment type
type CalculatorFactory func(t models.RepaymentType) (calculator.Calculator, error)

// MortgageService validates loan input and runs the matching calculator
type MortgageService struct {
	calculatorFor CalculatorFactory
}

// NewMortgageService creates a new mortgage service
func NewMortgageService(factory CalculatorFactory) *MortgageService {
	return &MortgageService{calculatorFor: factory}
}

func (s *MortgageService) resolve(in models.LoanInput) (calculator.Calculator, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	calc, err := s.calculatorFor(in.RepaymentType)
	if err != nil {
		return nil, fmt.Errorf("resolve calculator: %w", err)
	}
	return calc, nil
}

// Calculate returns the full amortization schedule
func (s *MortgageService) Calculate(ctx context.Context, in models.LoanInput) (*models.MortgageSchedule, error) {
	calc, err := s.resolve(in)
	if err != nil {
		return nil, err
	}

	schedule, err := calc.Schedule(in)
	if err != nil {
		return nil, err
	}

	logger.Debug("Calculated mortgage schedule",
		"repayment_type", in.RepaymentType,
		"payments", schedule.PaymentCount(),
		"monthly_payment", schedule.MonthlyPayment.String(),
	)
	return schedule, nil
}

// Summarize returns the headline figures of the schedule
func (s *MortgageService) Summarize(ctx context.Context, in models.LoanInput) (*models.MortgageSummary, error) {
	calc, err := s.resolve(in)
	if err != nil {
		return nil, err
	}

	summary, err := calc.Summary(in)
	if err != nil {
		return nil, err
	}

	logger.Debug("Calculated mortgage summary",
		"repayment_type", in.RepaymentType,
		"total_interest", summary.TotalInterest.String(),
	)
	return summary, nil
}

// Compare summarizes the same loan under every repayment type. The balloon
// variant is only included when a balloon percentage is given. Summaries are
// returned in catalog order.
func (s *MortgageService) Compare(ctx context.Context, in models.LoanInput) ([]*models.MortgageSummary, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var types []models.RepaymentType
	for _, t := range models.AllRepaymentTypes() {
		if t.RequiresBalloonPercentage() && in.BalloonPaymentPercentage.IsZero() {
			continue
		}
		types = append(types, t)
	}

	summaries := make([]*models.MortgageSummary, len(types))
	g, ctx := errgroup.WithContext(ctx)
	for i, t := range types {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			calc, err := s.calculatorFor(t)
			if err != nil {
				return fmt.Errorf("resolve calculator: %w", err)
			}
			variant := in
			variant.RepaymentType = t
			summary, err := calc.Summary(variant)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("Compared repayment types", "variants", len(summaries))
	return summaries, nil
}

// RepaymentTypes returns the repayment type catalog
func (s *MortgageService) RepaymentTypes() []models.RepaymentTypeInfo {
	return models.RepaymentTypeCatalog()
}
