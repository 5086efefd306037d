package finance

import (
	"example.com/finance-advisor/backend/internal/profile"
)

const (
	bondFundHaircut   = 0.95
	equityFundHaircut = 0.90
)

type Aggregates struct {
	MonthlyIncome         float64 `json:"monthly_income"`
	MonthlyExpenses       float64 `json:"monthly_expenses"`
	MonthlyDebtPayments   float64 `json:"monthly_debt_payments"`
	MonthlySurplus        float64 `json:"monthly_surplus"`
	TotalAssets           float64 `json:"total_assets"`
	LiquidAssets          float64 `json:"liquid_assets"`
	TotalLiabilities      float64 `json:"total_liabilities"`
	NetWorth              float64 `json:"net_worth"`
	EmergencyFundNeed     float64 `json:"emergency_fund_need"`
	EmergencyFundCoverage float64 `json:"emergency_fund_coverage"`
}

// Aggregate сводит профиль к месячным потокам, активам и обязательствам.
func Aggregate(p profile.FinancialProfile) Aggregates {
	var debtPayments, liabilities float64
	for _, debt := range p.Debts {
		debtPayments += debt.MonthlyPayment
		liabilities += debt.Balance
	}

	income := p.Income.MonthlyTotal()
	expenses := p.Expenses.MonthlyTotal() + p.Insurance.MonthlyPremiums() + debtPayments

	totalAssets := p.Assets.Total()
	liquid := p.Assets.Liquid.Total() +
		p.Assets.Investment.BondFunds*bondFundHaircut +
		p.Assets.Investment.EquityFunds*equityFundHaircut

	need := float64(EmergencyFundMonths(p.Personal)) * expenses
	coverage := 1.0
	if need > 0 {
		coverage = p.EmergencyFund.Current / need
	}

	return Aggregates{
		MonthlyIncome:         income,
		MonthlyExpenses:       expenses,
		MonthlyDebtPayments:   debtPayments,
		MonthlySurplus:        income - expenses,
		TotalAssets:           totalAssets,
		LiquidAssets:          liquid,
		TotalLiabilities:      liabilities,
		NetWorth:              totalAssets - liabilities,
		EmergencyFundNeed:     need,
		EmergencyFundCoverage: coverage,
	}
}

// EmergencyFundMonths возвращает целевой резерв в месяцах расходов.
func EmergencyFundMonths(personal profile.PersonalInfo) int {
	switch {
	case personal.Dependents >= 3:
		return 12
	case personal.Dependents >= 1:
		return 9
	case personal.MaritalStatus == profile.MaritalMarried:
		return 6
	default:
		return 3
	}
}
