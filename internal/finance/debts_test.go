package finance

import (
	"testing"

	"example.com/finance-advisor/backend/internal/profile"
)

// TestDebtPlansOrdering проверяет порядок долгов в обоих методах.
func TestDebtPlansOrdering(t *testing.T) {
	debts := []profile.Debt{
		{Name: "KTA", Type: profile.DebtPersonalLoan, Balance: 5000000, AnnualRate: 18, RemainingMonths: 12},
		{Name: "Kartu Kredit", Type: profile.DebtCreditCard, Balance: 10000000, AnnualRate: 30, RemainingMonths: 6},
	}

	plans := DebtPlans(debts)
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(plans))
	}

	avalanche := plans[0]
	if avalanche.Method != MethodAvalanche {
		t.Fatalf("expected avalanche first, got %s", avalanche.Method)
	}
	if avalanche.Order[0].Name != "Kartu Kredit" || avalanche.Order[1].Name != "KTA" {
		t.Fatalf("unexpected avalanche order: %+v", avalanche.Order)
	}

	snowball := plans[1]
	if snowball.Method != MethodSnowball {
		t.Fatalf("expected snowball second, got %s", snowball.Method)
	}
	if snowball.Order[0].Name != "KTA" || snowball.Order[1].Name != "Kartu Kredit" {
		t.Fatalf("unexpected snowball order: %+v", snowball.Order)
	}
}

// TestDebtPlansStableTies проверяет сохранение исходного порядка при равных ставках.
func TestDebtPlansStableTies(t *testing.T) {
	debts := []profile.Debt{
		{Name: "Paylater A", AnnualRate: 24, Balance: 2000000},
		{Name: "Paylater B", AnnualRate: 24, Balance: 1000000},
	}

	avalanche := DebtPlans(debts)[0]
	if avalanche.Order[0].Name != "Paylater A" || avalanche.Order[1].Name != "Paylater B" {
		t.Fatalf("expected input order on tie, got %+v", avalanche.Order)
	}
}

// TestDebtPlanNumbers проверяет проценты, срок и высвобождаемый платеж.
func TestDebtPlanNumbers(t *testing.T) {
	debts := []profile.Debt{
		{Name: "Kartu Kredit", Balance: 10000000, AnnualRate: 30, RemainingMonths: 6},
		{Name: "KTA", Balance: 20000000, AnnualRate: 12, RemainingMonths: 24},
	}

	avalanche := DebtPlans(debts)[0]

	wantInterest := 10000000*0.30*0.5 + 20000000*0.12*2
	if avalanche.TotalInterestPaid != wantInterest {
		t.Fatalf("expected interest %v, got %v", wantInterest, avalanche.TotalInterestPaid)
	}
	if avalanche.PayoffMonths != 24 {
		t.Fatalf("expected payoff months 24, got %d", avalanche.PayoffMonths)
	}

	wantSavings := 10000000.0 * 30 / 100 / 12
	if avalanche.MonthlySavings != wantSavings {
		t.Fatalf("expected monthly savings %v, got %v", wantSavings, avalanche.MonthlySavings)
	}
}

// TestDebtInterest проверяет оценку процентов на остаток.
func TestDebtInterest(t *testing.T) {
	debt := profile.Debt{Balance: 10000000, AnnualRate: 12, RemainingMonths: 24}
	if got := DebtInterest(debt); got != 2400000 {
		t.Fatalf("expected 2400000, got %v", got)
	}

	zero := profile.Debt{Balance: 10000000, AnnualRate: 12}
	if got := DebtInterest(zero); got != 0 {
		t.Fatalf("expected 0 for zero term, got %v", got)
	}
}

// TestDebtPlansEmpty проверяет пустой портфель долгов.
func TestDebtPlansEmpty(t *testing.T) {
	if plans := DebtPlans(nil); plans != nil {
		t.Fatalf("expected nil, got %+v", plans)
	}
}
