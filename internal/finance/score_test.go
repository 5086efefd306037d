package finance

import (
	"testing"

	"example.com/finance-advisor/backend/internal/profile"
)

func findingCodes(findings []Finding) map[IssueCode]Finding {
	byCode := make(map[IssueCode]Finding, len(findings))
	for _, finding := range findings {
		byCode[finding.Code] = finding
	}
	return byCode
}

// TestFindingsCoveredProfile проверяет, что закрытый профиль не дает проблем.
func TestFindingsCoveredProfile(t *testing.T) {
	p := profile.FinancialProfile{
		Personal: profile.PersonalInfo{Age: 28, MaritalStatus: profile.MaritalSingle},
		Income:   profile.Income{Salary: 10000000},
		Expenses: profile.Expenses{Housing: profile.Housing{Rent: 7000000}},
		Insurance: profile.Insurance{
			PublicHealth: profile.HealthCover{Held: true},
		},
		EmergencyFund: profile.EmergencyFund{Current: 25000000},
		Assets: profile.Assets{
			Liquid:     profile.LiquidAssets{Savings: 25000000},
			Investment: profile.InvestmentAssets{EquityFunds: 10000000},
		},
	}

	agg := Aggregate(p)
	findings := Findings(p, agg)
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}

	score := ScoreFindings(findings)
	if score.Value != 100 || score.Grade != "A" {
		t.Fatalf("expected 100 A, got %d %s", score.Value, score.Grade)
	}
}

// TestFindingsNegativeNetWorthWeight проверяет двойной вес отрицательного капитала.
func TestFindingsNegativeNetWorthWeight(t *testing.T) {
	p := profile.FinancialProfile{
		Income: profile.Income{Salary: 5000000},
		Debts: []profile.Debt{
			{Name: "KTA", Balance: 30000000, MonthlyPayment: 1000000},
		},
		Insurance: profile.Insurance{PublicHealth: profile.HealthCover{Held: true}},
	}

	findings := Findings(p, Aggregate(p))
	byCode := findingCodes(findings)

	networth, ok := byCode[IssueNegativeNetWorth]
	if !ok {
		t.Fatalf("expected negative net worth finding, got %+v", findings)
	}
	if networth.Severity != SeverityCritical || networth.Weight != 2 {
		t.Fatalf("expected critical weight 2, got %+v", networth)
	}
}

// TestFindingsDebtBands проверяет пороги долговой нагрузки.
func TestFindingsDebtBands(t *testing.T) {
	base := profile.FinancialProfile{
		Income:    profile.Income{Salary: 10000000},
		Insurance: profile.Insurance{PublicHealth: profile.HealthCover{Held: true}},
		Assets:    profile.Assets{Real: profile.RealAssets{Property: 500000000}},
		EmergencyFund: profile.EmergencyFund{
			Current: 100000000,
		},
	}

	high := base
	high.Debts = []profile.Debt{{Balance: 10000000, MonthlyPayment: 4000000}}
	byCode := findingCodes(Findings(high, Aggregate(high)))
	if _, ok := byCode[IssueDebtHigh]; !ok {
		t.Fatalf("expected debt_high at 40%%, got %+v", byCode)
	}

	overload := base
	overload.Debts = []profile.Debt{{Balance: 10000000, MonthlyPayment: 5500000}}
	byCode = findingCodes(Findings(overload, Aggregate(overload)))
	if _, ok := byCode[IssueDebtOverload]; !ok {
		t.Fatalf("expected debt_overload at 55%%, got %+v", byCode)
	}
}

// TestFindingsLifeCoverRequiresDependents проверяет условие по иждивенцам.
func TestFindingsLifeCoverRequiresDependents(t *testing.T) {
	p := profile.FinancialProfile{
		Personal:      profile.PersonalInfo{Age: 35, MaritalStatus: profile.MaritalMarried, Dependents: 2},
		Income:        profile.Income{Salary: 12000000},
		Expenses:      profile.Expenses{Housing: profile.Housing{Rent: 6000000}},
		Insurance:     profile.Insurance{PublicHealth: profile.HealthCover{Held: true}},
		EmergencyFund: profile.EmergencyFund{Current: 60000000},
		Assets:        profile.Assets{Investment: profile.InvestmentAssets{EquityFunds: 5000000}},
	}

	byCode := findingCodes(Findings(p, Aggregate(p)))
	if _, ok := byCode[IssueNoLifeCover]; !ok {
		t.Fatalf("expected no_life_cover with dependents")
	}

	p.Insurance.Policies = []profile.Policy{{Name: "Term", Type: profile.PolicyLife, MonthlyPremium: 200000}}
	byCode = findingCodes(Findings(p, Aggregate(p)))
	if _, ok := byCode[IssueNoLifeCover]; ok {
		t.Fatalf("expected finding to clear with life policy")
	}
}

// TestScoreFindingsBands проверяет полосы итогового балла.
func TestScoreFindingsBands(t *testing.T) {
	cases := []struct {
		name      string
		findings  []Finding
		wantValue int
		wantGrade string
	}{
		{"none", nil, 100, "A"},
		{"one moderate", []Finding{{Severity: SeverityModerate, Weight: 1}}, 95, "A"},
		{"one light", []Finding{{Severity: SeverityLight, Weight: 1}}, 95, "A"},
		{"one serious", []Finding{{Severity: SeveritySerious, Weight: 1}}, 79, "B"},
		{"two moderate", []Finding{{Severity: SeverityModerate, Weight: 1}, {Severity: SeverityLight, Weight: 1}}, 78, "B"},
		{"two serious", []Finding{{Severity: SeveritySerious, Weight: 1}, {Severity: SeveritySerious, Weight: 1}}, 61, "C"},
		{"one critical", []Finding{{Severity: SeverityCritical, Weight: 1}}, 54, "D"},
		{"critical floor", []Finding{{Severity: SeverityCritical, Weight: 1}, {Severity: SeveritySerious, Weight: 1}, {Severity: SeveritySerious, Weight: 1}, {Severity: SeveritySerious, Weight: 1}, {Severity: SeveritySerious, Weight: 1}}, 40, "D"},
		{"weighted critical", []Finding{{Severity: SeverityCritical, Weight: 2}, {Severity: SeverityCritical, Weight: 1}}, 20, "F"},
	}

	for _, tc := range cases {
		got := ScoreFindings(tc.findings)
		if got.Value != tc.wantValue || got.Grade != tc.wantGrade {
			t.Fatalf("%s: expected %d %s, got %d %s", tc.name, tc.wantValue, tc.wantGrade, got.Value, got.Grade)
		}
	}
}

// TestGradeFor проверяет границы буквенных оценок.
func TestGradeFor(t *testing.T) {
	cases := []struct {
		value int
		want  string
	}{
		{100, "A"}, {85, "A"}, {84, "B"}, {70, "B"}, {69, "C"}, {55, "C"}, {54, "D"}, {40, "D"}, {39, "F"}, {0, "F"},
	}

	for _, tc := range cases {
		if got := GradeFor(tc.value); got != tc.want {
			t.Fatalf("GradeFor(%d): expected %s, got %s", tc.value, tc.want, got)
		}
	}
}
