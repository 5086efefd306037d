package finance

import (
	"example.com/finance-advisor/backend/internal/profile"
)

const (
	emergencyShareCap       = 0.30
	insuranceShareCap       = 0.15
	premiumTargetShare      = 0.10
	crisisEmergencyShareCap = 0.10
	subscriptionAllowance   = 0.02
	lifestyleCutShare       = 0.5

	crisisLiabilityMultiple = 6
	severeLiabilityMultiple = 12
)

type Allocation struct {
	Surplus         float64 `json:"surplus"`
	EmergencyFund   float64 `json:"emergency_fund"`
	Insurance       float64 `json:"insurance"`
	Goals           float64 `json:"goals"`
	Investment      float64 `json:"investment"`
	DebtExtra       float64 `json:"debt_extra"`
	LifestyleCut    float64 `json:"lifestyle_cut"`
	SubscriptionCut float64 `json:"subscription_cut"`
	CrisisMode      bool    `json:"crisis_mode"`
	SevereCrisis    bool    `json:"severe_crisis"`
}

// Allocate распределяет месячный профицит по приоритетам.
func Allocate(p profile.FinancialProfile, agg Aggregates) Allocation {
	surplus := agg.MonthlySurplus
	if surplus < 0 {
		surplus = 0
	}

	crisis := agg.NetWorth < 0 || agg.TotalLiabilities > crisisLiabilityMultiple*agg.MonthlyIncome
	if crisis {
		severe := agg.NetWorth < 0 && agg.TotalLiabilities > severeLiabilityMultiple*agg.MonthlyIncome
		return allocateCrisis(p, agg, surplus, severe)
	}
	return allocateNormal(p, agg, surplus)
}

func allocateNormal(p profile.FinancialProfile, agg Aggregates, surplus float64) Allocation {
	alloc := Allocation{Surplus: surplus}
	remaining := surplus

	if agg.EmergencyFundCoverage < 1 {
		shortfall := agg.EmergencyFundNeed - p.EmergencyFund.Current
		alloc.EmergencyFund = min(shortfall/12, emergencyShareCap*surplus)
		remaining -= alloc.EmergencyFund
	}

	if gap := insuranceGap(p, agg); gap > 0 {
		alloc.Insurance = min(gap, insuranceShareCap*surplus)
		remaining -= alloc.Insurance
	}

	if remaining > 0 {
		if need := PlanGoals(p.Goals).TotalMonthlyNeed; need > 0 {
			alloc.Goals = min(need, remaining)
			remaining -= alloc.Goals
		}
	}

	if remaining > 0 {
		alloc.Investment = remaining
	}

	return alloc
}

func allocateCrisis(p profile.FinancialProfile, agg Aggregates, surplus float64, severe bool) Allocation {
	alloc := Allocation{Surplus: surplus, CrisisMode: true, SevereCrisis: severe}

	if p.EmergencyFund.Current < agg.MonthlyExpenses {
		shortfall := agg.MonthlyExpenses - p.EmergencyFund.Current
		alloc.EmergencyFund = min(shortfall/12, crisisEmergencyShareCap*surplus)
	}
	alloc.DebtExtra = surplus - alloc.EmergencyFund

	if severe {
		alloc.LifestyleCut = lifestyleCutShare * p.Expenses.Lifestyle.Monthly()
		subscriptions := p.Expenses.ActiveSubscriptions()
		if allowed := subscriptionAllowance * agg.MonthlyIncome; subscriptions > allowed {
			alloc.SubscriptionCut = subscriptions - allowed
		}
		alloc.DebtExtra += alloc.LifestyleCut + alloc.SubscriptionCut
	}

	return alloc
}

func insuranceGap(p profile.FinancialProfile, agg Aggregates) float64 {
	missingHealth := !p.Insurance.HasHealthCover()
	missingLife := p.Personal.Dependents > 0 && !p.Insurance.HasPolicy(profile.PolicyLife)
	missingCritical := !p.Insurance.HasPolicy(profile.PolicyCriticalIllness)
	if !missingHealth && !missingLife && !missingCritical {
		return 0
	}

	gap := premiumTargetShare*agg.MonthlyIncome - p.Insurance.MonthlyPremiums()
	if gap < 0 {
		return 0
	}
	return gap
}
