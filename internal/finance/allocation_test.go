package finance

import (
	"math"
	"testing"

	"example.com/finance-advisor/backend/internal/profile"
)

// TestAllocateNormalWaterfall проверяет порядок и лимиты обычного распределения.
func TestAllocateNormalWaterfall(t *testing.T) {
	p := profile.FinancialProfile{
		Personal: profile.PersonalInfo{MaritalStatus: profile.MaritalSingle},
		Income:   profile.Income{Salary: 10000000},
		Expenses: profile.Expenses{Housing: profile.Housing{Rent: 6000000}},
		Goals: []profile.Goal{
			{Name: "DP Rumah", Target: 12000000, Months: 12, RiskTier: profile.RiskModerate},
		},
	}

	agg := Aggregate(p)
	alloc := Allocate(p, agg)

	if alloc.CrisisMode {
		t.Fatalf("expected normal mode, got crisis")
	}
	if alloc.Surplus != 4000000 {
		t.Fatalf("expected surplus 4000000, got %v", alloc.Surplus)
	}
	if alloc.EmergencyFund != 1200000 {
		t.Fatalf("expected emergency capped at 1200000, got %v", alloc.EmergencyFund)
	}
	if alloc.Insurance != 600000 {
		t.Fatalf("expected insurance capped at 600000, got %v", alloc.Insurance)
	}

	wantGoals := PlanGoals(p.Goals).TotalMonthlyNeed
	if alloc.Goals != wantGoals {
		t.Fatalf("expected goals %v, got %v", wantGoals, alloc.Goals)
	}

	total := alloc.EmergencyFund + alloc.Insurance + alloc.Goals + alloc.Investment
	if math.Abs(total-alloc.Surplus) > 1e-6 {
		t.Fatalf("expected allocation to exhaust surplus, got %v of %v", total, alloc.Surplus)
	}
}

// TestAllocateFullCoverage проверяет пропуск резерва и страховки при полном покрытии.
func TestAllocateFullCoverage(t *testing.T) {
	p := profile.FinancialProfile{
		Personal:      profile.PersonalInfo{MaritalStatus: profile.MaritalSingle},
		Income:        profile.Income{Salary: 10000000},
		Expenses:      profile.Expenses{Housing: profile.Housing{Rent: 5000000}},
		EmergencyFund: profile.EmergencyFund{Current: 20000000},
		Insurance: profile.Insurance{
			PublicHealth:  profile.HealthCover{Held: true, MonthlyPremium: 150000},
			PrivateHealth: profile.HealthCover{Held: true, MonthlyPremium: 600000},
			Policies: []profile.Policy{
				{Name: "CI", Type: profile.PolicyCriticalIllness, MonthlyPremium: 300000},
			},
		},
	}

	agg := Aggregate(p)
	alloc := Allocate(p, agg)

	if alloc.EmergencyFund != 0 {
		t.Fatalf("expected no emergency allocation, got %v", alloc.EmergencyFund)
	}
	if alloc.Insurance != 0 {
		t.Fatalf("expected no insurance allocation, got %v", alloc.Insurance)
	}
	if alloc.Investment != alloc.Surplus {
		t.Fatalf("expected full surplus to investment, got %v of %v", alloc.Investment, alloc.Surplus)
	}
}

// TestAllocateCrisis проверяет кризисный режим с ограниченным резервом.
func TestAllocateCrisis(t *testing.T) {
	p := profile.FinancialProfile{
		Personal: profile.PersonalInfo{MaritalStatus: profile.MaritalSingle},
		Income:   profile.Income{Salary: 5000000},
		Expenses: profile.Expenses{Housing: profile.Housing{Rent: 3000000}},
		Debts: []profile.Debt{
			{Name: "KTA", Balance: 30000000, MonthlyPayment: 1000000},
		},
		Goals: []profile.Goal{
			{Name: "Liburan", Target: 10000000, Months: 12},
		},
	}

	agg := Aggregate(p)
	alloc := Allocate(p, agg)

	if !alloc.CrisisMode || alloc.SevereCrisis {
		t.Fatalf("expected plain crisis mode, got %+v", alloc)
	}
	if alloc.Goals != 0 || alloc.Insurance != 0 || alloc.Investment != 0 {
		t.Fatalf("expected goals and insurance frozen, got %+v", alloc)
	}

	wantEmergency := 0.10 * alloc.Surplus
	if math.Abs(alloc.EmergencyFund-wantEmergency) > 1e-6 {
		t.Fatalf("expected emergency %v, got %v", wantEmergency, alloc.EmergencyFund)
	}
	if math.Abs(alloc.DebtExtra-(alloc.Surplus-alloc.EmergencyFund)) > 1e-6 {
		t.Fatalf("expected remainder to debt, got %+v", alloc)
	}
}

// TestAllocateSevereCrisis проверяет урезание образа жизни и подписок.
func TestAllocateSevereCrisis(t *testing.T) {
	p := profile.FinancialProfile{
		Personal: profile.PersonalInfo{MaritalStatus: profile.MaritalSingle},
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
			{Name: "Pinjol", Balance: 65000000, MonthlyPayment: 1000000},
		},
		EmergencyFund: profile.EmergencyFund{Current: 6000000},
		Goals: []profile.Goal{
			{Name: "Umroh", Target: 30000000, Months: 24},
		},
	}

	agg := Aggregate(p)
	alloc := Allocate(p, agg)

	if !alloc.SevereCrisis {
		t.Fatalf("expected severe crisis, got %+v", alloc)
	}
	if alloc.Goals != 0 || alloc.Investment != 0 {
		t.Fatalf("expected goals and investment frozen, got %+v", alloc)
	}
	if alloc.EmergencyFund != 0 {
		t.Fatalf("expected no emergency top-up above one month reserve, got %v", alloc.EmergencyFund)
	}
	if alloc.LifestyleCut != 500000 {
		t.Fatalf("expected lifestyle cut 500000, got %v", alloc.LifestyleCut)
	}
	if alloc.SubscriptionCut != 200000 {
		t.Fatalf("expected subscription cut 200000, got %v", alloc.SubscriptionCut)
	}

	wantDebt := alloc.Surplus + alloc.LifestyleCut + alloc.SubscriptionCut
	if math.Abs(alloc.DebtExtra-wantDebt) > 1e-6 {
		t.Fatalf("expected debt extra %v, got %v", wantDebt, alloc.DebtExtra)
	}
}

// TestAllocateNegativeSurplus проверяет нулевое распределение при дефиците.
func TestAllocateNegativeSurplus(t *testing.T) {
	p := profile.FinancialProfile{
		Income:   profile.Income{Salary: 4000000},
		Expenses: profile.Expenses{Housing: profile.Housing{Rent: 5000000}},
		Assets:   profile.Assets{Liquid: profile.LiquidAssets{Savings: 10000000}},
	}

	alloc := Allocate(p, Aggregate(p))

	if alloc.Surplus != 0 {
		t.Fatalf("expected surplus floored at 0, got %v", alloc.Surplus)
	}
	if alloc.EmergencyFund != 0 || alloc.Investment != 0 || alloc.Goals != 0 {
		t.Fatalf("expected nothing to allocate, got %+v", alloc)
	}
}
