package finance

import (
	"testing"

	"example.com/finance-advisor/backend/internal/profile"
)

// TestSinkingFundPayment проверяет формулу взноса и запасные ветки.
func TestSinkingFundPayment(t *testing.T) {
	if got := sinkingFundPayment(12000000, 0, 12); got != 1000000 {
		t.Fatalf("expected straight line 1000000, got %v", got)
	}
	if got := sinkingFundPayment(12000000, 5, 0); got != 12000000 {
		t.Fatalf("expected full shortfall for zero months, got %v", got)
	}
	if got := sinkingFundPayment(0, 5, 12); got != 0 {
		t.Fatalf("expected 0 for zero shortfall, got %v", got)
	}

	withReturn := sinkingFundPayment(12000000, 5, 12)
	if withReturn <= 0 || withReturn >= 1000000 {
		t.Fatalf("expected payment below straight line, got %v", withReturn)
	}

	aggressive := sinkingFundPayment(12000000, 12, 12)
	if aggressive >= withReturn {
		t.Fatalf("expected higher return to lower the payment: %v >= %v", aggressive, withReturn)
	}
}

// TestPlanGoals проверяет проекции целей и общую месячную потребность.
func TestPlanGoals(t *testing.T) {
	goals := []profile.Goal{
		{Name: "DP Rumah", Target: 60000000, Collected: 12000000, Months: 36, RiskTier: profile.RiskModerate},
		{Name: "Liburan", Target: 10000000, Collected: 12000000, Months: 6, RiskTier: profile.RiskConservative},
	}

	plan := PlanGoals(goals)
	if len(plan.Goals) != 2 {
		t.Fatalf("expected 2 projections, got %d", len(plan.Goals))
	}

	house := plan.Goals[0]
	if house.Shortfall != 48000000 {
		t.Fatalf("expected shortfall 48000000, got %v", house.Shortfall)
	}
	if house.AnnualReturn != 8 {
		t.Fatalf("expected 8%% return, got %v", house.AnnualReturn)
	}
	if house.MonthlyRequired <= 0 || house.MonthlyRequired >= 48000000.0/36 {
		t.Fatalf("expected payment below straight line, got %v", house.MonthlyRequired)
	}

	trip := plan.Goals[1]
	if trip.Shortfall != 0 || trip.MonthlyRequired != 0 {
		t.Fatalf("expected collected goal to need nothing, got %+v", trip)
	}

	if plan.TotalMonthlyNeed != house.MonthlyRequired {
		t.Fatalf("expected total %v, got %v", house.MonthlyRequired, plan.TotalMonthlyNeed)
	}
}

// TestGoalInstrumentMatrix проверяет выбор инструмента по сроку и риску.
func TestGoalInstrumentMatrix(t *testing.T) {
	cases := []struct {
		months int
		tier   profile.RiskTier
		want   string
	}{
		{6, profile.RiskConservative, "Deposito"},
		{12, profile.RiskAggressive, "Reksa Dana Pasar Uang"},
		{24, profile.RiskConservative, "Reksa Dana Pasar Uang"},
		{24, profile.RiskModerate, "Reksa Dana Obligasi"},
		{24, profile.RiskAggressive, "Reksa Dana Campuran"},
		{60, profile.RiskConservative, "Reksa Dana Obligasi"},
		{60, profile.RiskModerate, "Reksa Dana Campuran"},
		{60, profile.RiskAggressive, "Reksa Dana Saham / Indeks"},
	}

	for _, tc := range cases {
		goal := profile.Goal{Name: "Tes", Target: 10000000, Months: tc.months, RiskTier: tc.tier}
		got := projectGoal(goal).Instrument
		if got != tc.want {
			t.Fatalf("%d months %s: expected %q, got %q", tc.months, tc.tier, tc.want, got)
		}
	}
}
