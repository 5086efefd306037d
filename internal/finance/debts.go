package finance

import (
	"sort"

	"example.com/finance-advisor/backend/internal/profile"
)

type PayoffMethod string

const (
	MethodAvalanche PayoffMethod = "avalanche"
	MethodSnowball  PayoffMethod = "snowball"
)

type DebtPayoffPlan struct {
	Method            PayoffMethod   `json:"method"`
	Order             []profile.Debt `json:"order"`
	TotalInterestPaid float64        `json:"total_interest_paid"`
	PayoffMonths      int            `json:"payoff_months"`
	MonthlySavings    float64        `json:"monthly_savings"`
}

// DebtPlans строит планы погашения методом лавины и снежного кома.
func DebtPlans(debts []profile.Debt) []DebtPayoffPlan {
	if len(debts) == 0 {
		return nil
	}

	avalanche := make([]profile.Debt, len(debts))
	copy(avalanche, debts)
	sort.SliceStable(avalanche, func(i, j int) bool {
		return avalanche[i].AnnualRate > avalanche[j].AnnualRate
	})

	snowball := make([]profile.Debt, len(debts))
	copy(snowball, debts)
	sort.SliceStable(snowball, func(i, j int) bool {
		return snowball[i].Balance < snowball[j].Balance
	})

	return []DebtPayoffPlan{
		buildPayoffPlan(MethodAvalanche, avalanche),
		buildPayoffPlan(MethodSnowball, snowball),
	}
}

// DebtInterest оценивает проценты за остаток срока упрощенно, без графика амортизации.
func DebtInterest(debt profile.Debt) float64 {
	return debt.Balance * debt.AnnualRate / 100 * float64(debt.RemainingMonths) / 12
}

func buildPayoffPlan(method PayoffMethod, order []profile.Debt) DebtPayoffPlan {
	var interest float64
	months := 0
	for _, debt := range order {
		interest += DebtInterest(debt)
		if debt.RemainingMonths > months {
			months = debt.RemainingMonths
		}
	}

	var savings float64
	if len(order) > 0 {
		savings = order[0].Balance * order[0].AnnualRate / 100 / 12
	}

	return DebtPayoffPlan{
		Method:            method,
		Order:             order,
		TotalInterestPaid: interest,
		PayoffMonths:      months,
		MonthlySavings:    savings,
	}
}
