package finance

import (
	"strings"

	"example.com/finance-advisor/backend/internal/profile"
)

type Severity string

type IssueCode string

const (
	SeverityCritical Severity = "kritis"
	SeveritySerious  Severity = "serius"
	SeverityModerate Severity = "moderat"
	SeverityLight    Severity = "ringan"
)

const (
	IssueNegativeCashflow  IssueCode = "negative_cashflow"
	IssueEmergencyCritical IssueCode = "emergency_fund_critical"
	IssueNegativeNetWorth  IssueCode = "negative_net_worth"
	IssueDebtOverload      IssueCode = "debt_overload"
	IssueNoLifeCover       IssueCode = "no_life_cover"
	IssueEmergencyLow      IssueCode = "emergency_fund_low"
	IssueDebtHigh          IssueCode = "debt_high"
	IssueNoHealthCover     IssueCode = "no_health_cover"
	IssueSavingsLow        IssueCode = "savings_low"
	IssueSavingsThin       IssueCode = "savings_thin"
	IssueUnitLinkDrag      IssueCode = "unit_link_drag"
	IssueIdleCash          IssueCode = "idle_cash"
	IssueNoRetirementTrack IssueCode = "no_retirement_track"
	IssueSubscriptionCreep IssueCode = "subscription_creep"
)

type Finding struct {
	Code     IssueCode `json:"code"`
	Severity Severity  `json:"severity"`
	Weight   int       `json:"weight"`
}

type HealthScore struct {
	Value int    `json:"value"`
	Grade string `json:"grade"`
}

// Findings собирает проблемы профиля в фиксированном порядке проверок.
func Findings(p profile.FinancialProfile, agg Aggregates) []Finding {
	var findings []Finding
	add := func(code IssueCode, severity Severity, weight int) {
		findings = append(findings, Finding{Code: code, Severity: severity, Weight: weight})
	}

	if agg.MonthlySurplus < 0 {
		add(IssueNegativeCashflow, SeverityCritical, 1)
	}

	if agg.EmergencyFundCoverage < 0.25 {
		add(IssueEmergencyCritical, SeverityCritical, 1)
	} else if agg.EmergencyFundCoverage < 0.5 {
		add(IssueEmergencyLow, SeveritySerious, 1)
	}

	if agg.NetWorth < 0 {
		add(IssueNegativeNetWorth, SeverityCritical, 2)
	}

	dsr := debtServiceRate(agg)
	if dsr > dsrWarningMax {
		add(IssueDebtOverload, SeverityCritical, 1)
	} else if dsr > dsrHealthyMax {
		add(IssueDebtHigh, SeveritySerious, 1)
	}

	if p.Personal.Dependents > 0 && !p.Insurance.HasPolicy(profile.PolicyLife) {
		add(IssueNoLifeCover, SeverityCritical, 1)
	}

	if !p.Insurance.HasHealthCover() {
		add(IssueNoHealthCover, SeveritySerious, 1)
	}

	if agg.MonthlyIncome > 0 && agg.MonthlySurplus >= 0 {
		savings := savingsRate(agg)
		if savings < savingsWarningMin {
			add(IssueSavingsLow, SeveritySerious, 1)
		} else if savings < savingsHealthyMin {
			add(IssueSavingsThin, SeverityModerate, 1)
		}
	}

	if p.Insurance.HasPolicy(profile.PolicyUnitLink) {
		add(IssueUnitLinkDrag, SeverityModerate, 1)
	}

	idle := p.Assets.Liquid.Cash + p.Assets.Liquid.Savings
	if agg.EmergencyFundNeed > 0 && idle > 1.5*agg.EmergencyFundNeed && p.Assets.Investment.Total() == 0 {
		add(IssueIdleCash, SeverityModerate, 1)
	}

	if p.Personal.Age >= 30 && p.Assets.Investment.Total() == 0 && !hasRetirementGoal(p.Goals) {
		add(IssueNoRetirementTrack, SeverityLight, 1)
	}

	if agg.MonthlyIncome > 0 && p.Expenses.ActiveSubscriptions() > 0.05*agg.MonthlyIncome {
		add(IssueSubscriptionCreep, SeverityLight, 1)
	}

	return findings
}

// ScoreFindings переводит список проблем в итоговый балл и буквенную оценку.
func ScoreFindings(findings []Finding) HealthScore {
	var critical, serious, moderate int
	for _, finding := range findings {
		weight := finding.Weight
		if weight < 1 {
			weight = 1
		}
		switch finding.Severity {
		case SeverityCritical:
			critical += weight
		case SeveritySerious:
			serious += weight
		default:
			moderate += weight
		}
	}

	var value int
	switch {
	case critical >= 2:
		value = max(35-5*critical-2*serious, 0)
	case critical == 1:
		value = max(54-4*serious-2*moderate, 40)
	case serious >= 2:
		value = max(69-4*serious-2*moderate, 55)
	case serious == 1 || moderate >= 2:
		value = max(84-5*serious-3*moderate, 70)
	default:
		value = 100 - 5*moderate
	}

	return HealthScore{Value: value, Grade: GradeFor(value)}
}

// GradeFor возвращает буквенную оценку для балла.
func GradeFor(value int) string {
	switch {
	case value >= 85:
		return "A"
	case value >= 70:
		return "B"
	case value >= 55:
		return "C"
	case value >= 40:
		return "D"
	default:
		return "F"
	}
}

func hasRetirementGoal(goals []profile.Goal) bool {
	for _, goal := range goals {
		name := strings.ToLower(goal.Name)
		if strings.Contains(name, "pensiun") || strings.Contains(name, "hari tua") || strings.Contains(name, "masa tua") {
			return true
		}
	}
	return false
}
