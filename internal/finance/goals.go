package finance

import (
	"math"

	"example.com/finance-advisor/backend/internal/profile"
)

type GoalProjection struct {
	Goal            profile.Goal `json:"goal"`
	Shortfall       float64      `json:"shortfall"`
	MonthlyRequired float64      `json:"monthly_required"`
	AnnualReturn    float64      `json:"annual_return"`
	Instrument      string       `json:"instrument"`
}

type GoalPlan struct {
	Goals            []GoalProjection `json:"goals,omitempty"`
	TotalMonthlyNeed float64          `json:"total_monthly_need"`
}

// PlanGoals рассчитывает ежемесячный взнос и инструмент для каждой цели.
func PlanGoals(goals []profile.Goal) GoalPlan {
	var plan GoalPlan
	for _, goal := range goals {
		projection := projectGoal(goal)
		plan.Goals = append(plan.Goals, projection)
		plan.TotalMonthlyNeed += projection.MonthlyRequired
	}
	return plan
}

func projectGoal(goal profile.Goal) GoalProjection {
	tier := profile.NormalizeRiskTier(goal.RiskTier)
	annualReturn := returnForTier(tier)

	shortfall := goal.Target - goal.Collected
	if shortfall < 0 {
		shortfall = 0
	}

	return GoalProjection{
		Goal:            goal,
		Shortfall:       shortfall,
		MonthlyRequired: sinkingFundPayment(shortfall, annualReturn, goal.Months),
		AnnualReturn:    annualReturn,
		Instrument:      goalInstrument(goal.Months, tier),
	}
}

func returnForTier(tier profile.RiskTier) float64 {
	switch tier {
	case profile.RiskConservative:
		return 5
	case profile.RiskAggressive:
		return 12
	default:
		return 8
	}
}

// sinkingFundPayment возвращает месячный взнос для накопления суммы к сроку.
func sinkingFundPayment(shortfall, annualReturn float64, months int) float64 {
	if shortfall <= 0 {
		return 0
	}
	if months <= 0 {
		return shortfall
	}

	monthlyRate := annualReturn / 12 / 100
	if monthlyRate == 0 {
		return shortfall / float64(months)
	}

	factor := math.Pow(1+monthlyRate, float64(months)) - 1
	if factor == 0 {
		return shortfall / float64(months)
	}
	return shortfall * monthlyRate / factor
}

func goalInstrument(months int, tier profile.RiskTier) string {
	switch {
	case months <= 12:
		if tier == profile.RiskConservative {
			return "Deposito"
		}
		return "Reksa Dana Pasar Uang"
	case months <= 36:
		switch tier {
		case profile.RiskConservative:
			return "Reksa Dana Pasar Uang"
		case profile.RiskAggressive:
			return "Reksa Dana Campuran"
		default:
			return "Reksa Dana Obligasi"
		}
	default:
		switch tier {
		case profile.RiskConservative:
			return "Reksa Dana Obligasi"
		case profile.RiskAggressive:
			return "Reksa Dana Saham / Indeks"
		default:
			return "Reksa Dana Campuran"
		}
	}
}
