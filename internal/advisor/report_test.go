package advisor

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"example.com/finance-advisor/backend/internal/finance"
	"example.com/finance-advisor/backend/internal/narrative"
	"example.com/finance-advisor/backend/internal/profile"
)

func sampleProfile() profile.FinancialProfile {
	return profile.FinancialProfile{
		Personal: profile.PersonalInfo{Name: "Budi", Age: 31, MaritalStatus: profile.MaritalMarried, Dependents: 1},
		Income:   profile.Income{Salary: 12000000},
		Expenses: profile.Expenses{
			Housing:   profile.Housing{Rent: 2500000, Electricity: 300000, Internet: 300000},
			Food:      profile.Food{DailyMeals: 60000, Groceries: 800000},
			Transport: profile.Transport{Fuel: 400000},
			Lifestyle: profile.Lifestyle{Entertainment: 300000, DiningOut: 400000},
		},
		Debts: []profile.Debt{
			{Name: "Kartu Kredit", Type: profile.DebtCreditCard, Balance: 8000000, AnnualRate: 30, MonthlyPayment: 800000, RemainingMonths: 12},
		},
		EmergencyFund: profile.EmergencyFund{Current: 5000000},
		Assets:        profile.Assets{Liquid: profile.LiquidAssets{Cash: 3000000, Savings: 7000000}},
		Insurance:     profile.Insurance{PublicHealth: profile.HealthCover{Held: true, MonthlyPremium: 150000}},
		Goals: []profile.Goal{
			{Name: "DP Rumah", Target: 60000000, Collected: 10000000, Months: 30, Priority: profile.GoalPriorityHigh, RiskTier: profile.RiskModerate},
		},
		Risk:      profile.RiskProfile{Tolerance: profile.RiskModerate, Score: 55},
		Narrative: "Saya bingung mulai investasi dari mana, masih ada cicilan kartu kredit dan belum paham asuransi",
	}
}

// TestBuildReportIdempotent проверяет детерминизм отчета при равных входах.
func TestBuildReportIdempotent(t *testing.T) {
	p := sampleProfile()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	first := BuildReport(p, now)
	second := BuildReport(p, now)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical reports for identical input")
	}
}

// TestBuildReportGradeConsistency проверяет единый балл в метриках и диагнозе.
func TestBuildReportGradeConsistency(t *testing.T) {
	p := sampleProfile()
	report := BuildReport(p, time.Now())

	if report.Diagnosis.Score != report.Score.Value || report.Diagnosis.Grade != report.Score.Grade {
		t.Fatalf("diagnosis %d %s does not match score %d %s",
			report.Diagnosis.Score, report.Diagnosis.Grade, report.Score.Value, report.Score.Grade)
	}

	agg := finance.Aggregate(p)
	want := finance.ScoreFindings(finance.Findings(p, agg))
	if report.Score != want {
		t.Fatalf("expected score %+v, got %+v", want, report.Score)
	}
}

// TestBuildReportAllocationConsistency проверяет, что стратегии берут числа из одного распределения.
func TestBuildReportAllocationConsistency(t *testing.T) {
	p := sampleProfile()
	report := BuildReport(p, time.Now())

	agg := finance.Aggregate(p)
	want := finance.Allocate(p, agg)
	if report.Allocation != want {
		t.Fatalf("expected allocation %+v, got %+v", want, report.Allocation)
	}

	for _, strategy := range report.Strategies {
		if strategy.Name == "Bangun dana darurat" && strategy.TargetAmount != want.EmergencyFund {
			t.Fatalf("emergency strategy target %v differs from allocation %v", strategy.TargetAmount, want.EmergencyFund)
		}
		if strategy.Name == "Investasi rutin" && strategy.TargetAmount != want.Investment {
			t.Fatalf("investment strategy target %v differs from allocation %v", strategy.TargetAmount, want.Investment)
		}
	}
}

// TestBuildReportPriorityOrdering проверяет убывание срочности и сквозные ранги.
func TestBuildReportPriorityOrdering(t *testing.T) {
	report := BuildReport(sampleProfile(), time.Now())

	rank := func(level PriorityLevel) int {
		switch level {
		case PriorityCritical:
			return 0
		case PriorityImportant:
			return 1
		default:
			return 2
		}
	}

	prev := 0
	for i, issue := range report.Priorities {
		if issue.Rank != i+1 {
			t.Fatalf("expected rank %d, got %d", i+1, issue.Rank)
		}
		if rank(issue.Level) < prev {
			t.Fatalf("priority order broken at %d: %+v", i, report.Priorities)
		}
		prev = rank(issue.Level)
	}
}

// TestBuildReportZeroProfile проверяет полный отчет на пустом профиле.
func TestBuildReportZeroProfile(t *testing.T) {
	report := BuildReport(profile.FinancialProfile{}, time.Now())

	if report.Conclusion == "" {
		t.Fatalf("expected conclusion for empty profile")
	}
	if !strings.Contains(report.Conclusion, "Kawan") {
		t.Fatalf("expected fallback greeting, got %q", report.Conclusion)
	}
	if len(report.Metrics) != 4 {
		t.Fatalf("expected 4 metrics, got %d", len(report.Metrics))
	}
}

// TestBuildReportPurchaseFeasibility проверяет сквозную оценку желания покупки.
func TestBuildReportPurchaseFeasibility(t *testing.T) {
	p := profile.FinancialProfile{
		Personal:  profile.PersonalInfo{Name: "Sari", Age: 27, MaritalStatus: profile.MaritalSingle},
		Income:    profile.Income{Salary: 10000000},
		Expenses:  profile.Expenses{Housing: profile.Housing{Rent: 8000000}},
		Insurance: profile.Insurance{PublicHealth: profile.HealthCover{Held: true}},
		Narrative: "saya mau beli iPhone 20 juta",
	}

	report := BuildReport(p, time.Now())

	if report.Feasibility == nil {
		t.Fatalf("expected feasibility assessment")
	}
	if report.Feasibility.Status != narrative.StatusMarginal {
		t.Fatalf("expected MARGINAL, got %s", report.Feasibility.Status)
	}
	if report.Feasibility.MonthsToSave != 10 {
		t.Fatalf("expected 10 months, got %d", report.Feasibility.MonthsToSave)
	}
	if !strings.Contains(report.Conclusion, "beli iphone") {
		t.Fatalf("expected conclusion to mention the wish, got %q", report.Conclusion)
	}
}

// TestBuildReportSevereCrisis проверяет кризисный отчет с заморозкой целей.
func TestBuildReportSevereCrisis(t *testing.T) {
	p := profile.FinancialProfile{
		Personal: profile.PersonalInfo{Name: "Andi", Age: 35, MaritalStatus: profile.MaritalSingle},
		Income:   profile.Income{Salary: 5000000},
		Expenses: profile.Expenses{
			Housing:   profile.Housing{Rent: 1500000},
			Food:      profile.Food{Groceries: 1000000},
			Lifestyle: profile.Lifestyle{Entertainment: 600000, DiningOut: 400000},
			Subscriptions: []profile.Subscription{
				{Name: "Streaming", Amount: 300000, Active: true},
			},
		},
		Debts: []profile.Debt{
			{Name: "Pinjol", Type: profile.DebtPersonalLoan, Balance: 65000000, AnnualRate: 36, MonthlyPayment: 1000000, RemainingMonths: 48},
		},
		EmergencyFund: profile.EmergencyFund{Current: 6000000},
		Goals: []profile.Goal{
			{Name: "Umroh", Target: 30000000, Months: 24},
		},
		Narrative: "hutang pinjol sudah menumpuk, bingung harus mulai dari mana",
	}

	report := BuildReport(p, time.Now())

	if !report.Allocation.SevereCrisis {
		t.Fatalf("expected severe crisis, got %+v", report.Allocation)
	}
	if report.Allocation.Goals != 0 || report.Allocation.Investment != 0 {
		t.Fatalf("expected goals and investment frozen, got %+v", report.Allocation)
	}
	if len(report.Strategies) == 0 || report.Strategies[0].Name != "Percepatan pelunasan utang" {
		t.Fatalf("expected debt acceleration first, got %+v", report.Strategies)
	}
	if report.Strategies[0].TargetAmount != report.Allocation.DebtExtra {
		t.Fatalf("expected strategy target %v, got %v", report.Allocation.DebtExtra, report.Strategies[0].TargetAmount)
	}
	if report.Score.Grade != "F" {
		t.Fatalf("expected grade F, got %s", report.Score.Grade)
	}
}

// TestBuildReportTimelineBuckets проверяет раскладку целей по горизонтам.
func TestBuildReportTimelineBuckets(t *testing.T) {
	p := profile.FinancialProfile{
		Personal:      profile.PersonalInfo{Name: "Rina", MaritalStatus: profile.MaritalSingle},
		Income:        profile.Income{Salary: 15000000},
		Expenses:      profile.Expenses{Housing: profile.Housing{Rent: 5000000}},
		Insurance:     profile.Insurance{PublicHealth: profile.HealthCover{Held: true}},
		EmergencyFund: profile.EmergencyFund{Current: 15000000},
		Goals: []profile.Goal{
			{Name: "Servis motor", Target: 2000000, Months: 2},
			{Name: "Liburan", Target: 12000000, Months: 10},
			{Name: "DP Rumah", Target: 90000000, Months: 24},
		},
	}

	report := BuildReport(p, time.Now())

	contains := func(actions []TimedAction, goal string) bool {
		for _, action := range actions {
			if strings.Contains(action.Action, goal) {
				return true
			}
		}
		return false
	}

	if !contains(report.ActionPlan.ShortTerm, "Servis motor") {
		t.Fatalf("expected short term goal, got %+v", report.ActionPlan.ShortTerm)
	}
	if !contains(report.ActionPlan.MidTerm, "Liburan") {
		t.Fatalf("expected mid term goal, got %+v", report.ActionPlan.MidTerm)
	}
	if !contains(report.ActionPlan.LongTerm, "DP Rumah") {
		t.Fatalf("expected long term goal, got %+v", report.ActionPlan.LongTerm)
	}
}

// TestTopFocus проверяет выбор главного фокуса для сводки.
func TestTopFocus(t *testing.T) {
	crisis := BuildReport(sampleProfile(), time.Now())
	if len(crisis.Priorities) == 0 {
		t.Fatalf("expected priorities in fixture")
	}
	if got := TopFocus(crisis); got != crisis.Priorities[0].Title {
		t.Fatalf("expected top priority title, got %q", got)
	}

	healthy := profile.FinancialProfile{
		Personal:      profile.PersonalInfo{Name: "Tono", Age: 28, MaritalStatus: profile.MaritalSingle},
		Income:        profile.Income{Salary: 20000000},
		Expenses:      profile.Expenses{Housing: profile.Housing{Rent: 8000000}},
		Insurance:     profile.Insurance{PublicHealth: profile.HealthCover{Held: true}},
		EmergencyFund: profile.EmergencyFund{Current: 30000000},
		Assets:        profile.Assets{Investment: profile.InvestmentAssets{EquityFunds: 50000000}},
	}
	report := BuildReport(healthy, time.Now())
	if len(report.Priorities) != 0 {
		t.Fatalf("expected clean profile, got %+v", report.Priorities)
	}
	if got := TopFocus(report); got != "Optimalisasi investasi rutin" {
		t.Fatalf("expected investment focus, got %q", got)
	}
}
