package advisor

import (
	"time"

	"example.com/finance-advisor/backend/internal/finance"
	"example.com/finance-advisor/backend/internal/narrative"
	"example.com/finance-advisor/backend/internal/profile"
)

type Report struct {
	GeneratedAt time.Time                            `json:"generated_at"`
	Aggregates  finance.Aggregates                   `json:"aggregates"`
	Metrics     []finance.HealthMetric               `json:"metrics"`
	Score       finance.HealthScore                  `json:"score"`
	Diagnosis   Diagnosis                            `json:"diagnosis"`
	Priorities  []PriorityIssue                      `json:"priorities,omitempty"`
	Allocation  finance.Allocation                   `json:"allocation"`
	DebtPlans   []finance.DebtPayoffPlan             `json:"debt_plans,omitempty"`
	Investments []finance.InvestmentRecommendation   `json:"investments"`
	GoalPlan    finance.GoalPlan                     `json:"goal_plan"`
	Strategies  []Strategy                           `json:"strategies,omitempty"`
	ActionPlan  ActionPlan                           `json:"action_plan"`
	Intents     narrative.Intents                    `json:"intents"`
	Feasibility *narrative.FeasibilityAssessment     `json:"feasibility,omitempty"`
	Conclusion  string                               `json:"conclusion"`
}

// BuildReport строит полный консультационный отчет по профилю.
func BuildReport(p profile.FinancialProfile, now time.Time) Report {
	agg := finance.Aggregate(p)
	alloc := finance.Allocate(p, agg)
	findings := finance.Findings(p, agg)
	score := finance.ScoreFindings(findings)
	intents := narrative.ExtractIntents(p.Narrative)

	var feasibility *narrative.FeasibilityAssessment
	if intents.Lifestyle != nil {
		assessment := narrative.Assess(*intents.Lifestyle, p.Expenses.Housing.Rent, agg.MonthlySurplus, agg.MonthlyIncome)
		feasibility = &assessment
	}

	debtPlans := finance.DebtPlans(p.Debts)
	goalPlan := finance.PlanGoals(p.Goals)

	diagnosis := buildDiagnosis(p, agg, findings, score, intents, alloc)
	priorities := buildPriorities(p, agg, findings)
	strategies := buildStrategies(p, agg, alloc, intents, debtPlans, goalPlan, feasibility)
	actionPlan := buildActionPlan(p, agg, alloc, goalPlan)

	report := Report{
		GeneratedAt: now,
		Aggregates:  agg,
		Metrics:     finance.HealthMetrics(agg),
		Score:       score,
		Diagnosis:   diagnosis,
		Priorities:  priorities,
		Allocation:  alloc,
		DebtPlans:   debtPlans,
		Investments: finance.InvestmentRecommendations(p, agg),
		GoalPlan:    goalPlan,
		Strategies:  strategies,
		ActionPlan:  actionPlan,
		Intents:     intents,
		Feasibility: feasibility,
	}
	report.Conclusion = buildConclusion(p, report)

	return report
}

// TopFocus возвращает главный фокус отчета для сводок и журнала использования.
func TopFocus(report Report) string {
	if len(report.Priorities) > 0 {
		return report.Priorities[0].Title
	}
	if report.Allocation.Investment > 0 {
		return "Optimalisasi investasi rutin"
	}
	return "Pertahankan kondisi keuangan sehat"
}
