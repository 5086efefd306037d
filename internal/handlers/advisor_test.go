package handlers

import (
	"strings"
	"testing"
	"time"

	"example.com/finance-advisor/backend/internal/profile"
)

// TestSessionName проверяет подстановку имени по умолчанию и обрезку.
func TestSessionName(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	if got := sessionName("  Dana Darurat  ", now); got != "Dana Darurat" {
		t.Fatalf("expected trimmed name, got %q", got)
	}

	if got := sessionName("", now); got != "Analisis 2024-03-15" {
		t.Fatalf("unexpected default name: %q", got)
	}
	if got := sessionName("   ", now); got != "Analisis 2024-03-15" {
		t.Fatalf("unexpected default name for blank input: %q", got)
	}

	long := strings.Repeat("я", maxSessionNameRunes+40)
	got := sessionName(long, now)
	if runes := []rune(got); len(runes) != maxSessionNameRunes {
		t.Fatalf("expected %d runes, got %d", maxSessionNameRunes, len(runes))
	}
}

// TestClampProfile проверяет обнуление отрицательных значений профиля.
func TestClampProfile(t *testing.T) {
	p := profile.FinancialProfile{}
	p.Personal.Age = -5
	p.Income.Salary = -8_000_000
	p.Income.Sources = []profile.IncomeSource{{Name: "Freelance", Amount: -500_000}}
	p.Expenses.Food.DailyMeals = -50_000
	p.Expenses.Subscriptions = []profile.Subscription{{Name: "Netflix", Amount: -54_000, Active: true}}
	p.Debts = []profile.Debt{{Name: "KTA", Balance: -1_000_000, AnnualRate: -10, MonthlyPayment: 250_000, RemainingMonths: -3}}
	p.Assets.Liquid.Cash = 2_000_000
	p.Goals = []profile.Goal{{Name: "Umroh", Target: -35_000_000, Collected: 5_000_000, Months: -12}}

	clampProfile(&p)

	if p.Personal.Age != 0 {
		t.Fatalf("expected age clamped to 0, got %d", p.Personal.Age)
	}
	if p.Income.Salary != 0 {
		t.Fatalf("expected salary clamped to 0, got %v", p.Income.Salary)
	}
	if p.Income.Sources[0].Amount != 0 {
		t.Fatalf("expected source amount clamped to 0, got %v", p.Income.Sources[0].Amount)
	}
	if p.Expenses.Food.DailyMeals != 0 {
		t.Fatalf("expected meals clamped to 0, got %v", p.Expenses.Food.DailyMeals)
	}
	if p.Expenses.Subscriptions[0].Amount != 0 {
		t.Fatalf("expected subscription clamped to 0, got %v", p.Expenses.Subscriptions[0].Amount)
	}
	if p.Debts[0].Balance != 0 || p.Debts[0].AnnualRate != 0 || p.Debts[0].RemainingMonths != 0 {
		t.Fatalf("expected debt fields clamped, got %+v", p.Debts[0])
	}
	if p.Debts[0].MonthlyPayment != 250_000 {
		t.Fatalf("expected positive payment kept, got %v", p.Debts[0].MonthlyPayment)
	}
	if p.Assets.Liquid.Cash != 2_000_000 {
		t.Fatalf("expected positive cash kept, got %v", p.Assets.Liquid.Cash)
	}
	if p.Goals[0].Target != 0 || p.Goals[0].Months != 0 {
		t.Fatalf("expected goal fields clamped, got %+v", p.Goals[0])
	}
	if p.Goals[0].Collected != 5_000_000 {
		t.Fatalf("expected collected kept, got %v", p.Goals[0].Collected)
	}
}
