package finance

import "testing"

func metricByName(t *testing.T, metrics []HealthMetric, name string) HealthMetric {
	t.Helper()
	for _, metric := range metrics {
		if metric.Name == name {
			return metric
		}
	}
	t.Fatalf("metric %q not found", name)
	return HealthMetric{}
}

// TestHealthMetricsHealthyProfile проверяет значения и статусы на здоровом профиле.
func TestHealthMetricsHealthyProfile(t *testing.T) {
	agg := Aggregates{
		MonthlyIncome:       10000000,
		MonthlyExpenses:     7000000,
		MonthlyDebtPayments: 2000000,
		MonthlySurplus:      3000000,
		TotalAssets:         100000000,
		TotalLiabilities:    30000000,
	}

	metrics := HealthMetrics(agg)
	if len(metrics) != 4 {
		t.Fatalf("expected 4 metrics, got %d", len(metrics))
	}

	expense := metricByName(t, metrics, "Rasio Pengeluaran")
	if expense.Value != 50 || expense.Status != StatusHealthy {
		t.Fatalf("expected expense 50 healthy, got %v %s", expense.Value, expense.Status)
	}

	savings := metricByName(t, metrics, "Rasio Tabungan")
	if savings.Value != 30 || savings.Status != StatusHealthy {
		t.Fatalf("expected savings 30 healthy, got %v %s", savings.Value, savings.Status)
	}

	dsr := metricByName(t, metrics, "Rasio Cicilan Utang")
	if dsr.Value != 20 || dsr.Status != StatusHealthy {
		t.Fatalf("expected dsr 20 healthy, got %v %s", dsr.Value, dsr.Status)
	}

	solvency := metricByName(t, metrics, "Rasio Solvabilitas")
	if solvency.Value != 70 || solvency.Status != StatusHealthy {
		t.Fatalf("expected solvency 70 healthy, got %v %s", solvency.Value, solvency.Status)
	}
}

// TestHealthMetricsStatusBands проверяет границы предупреждения и опасности.
func TestHealthMetricsStatusBands(t *testing.T) {
	agg := Aggregates{
		MonthlyIncome:       10000000,
		MonthlyExpenses:     9500000,
		MonthlyDebtPayments: 4000000,
		MonthlySurplus:      500000,
		TotalAssets:         50000000,
		TotalLiabilities:    40000000,
	}

	metrics := HealthMetrics(agg)

	if got := metricByName(t, metrics, "Rasio Pengeluaran").Status; got != StatusWarning {
		t.Fatalf("expected expense warning, got %s", got)
	}
	if got := metricByName(t, metrics, "Rasio Tabungan").Status; got != StatusDanger {
		t.Fatalf("expected savings danger, got %s", got)
	}
	if got := metricByName(t, metrics, "Rasio Cicilan Utang").Status; got != StatusWarning {
		t.Fatalf("expected dsr warning, got %s", got)
	}
	if got := metricByName(t, metrics, "Rasio Solvabilitas").Status; got != StatusDanger {
		t.Fatalf("expected solvency danger, got %s", got)
	}
}

// TestHealthMetricsZeroIncome проверяет нулевые значения без дохода.
func TestHealthMetricsZeroIncome(t *testing.T) {
	metrics := HealthMetrics(Aggregates{MonthlyExpenses: 3000000, MonthlySurplus: -3000000})

	if got := metricByName(t, metrics, "Rasio Pengeluaran").Value; got != 0 {
		t.Fatalf("expected expense 0, got %v", got)
	}
	if got := metricByName(t, metrics, "Rasio Tabungan").Value; got != 0 {
		t.Fatalf("expected savings 0, got %v", got)
	}
	if got := metricByName(t, metrics, "Rasio Cicilan Utang").Value; got != 0 {
		t.Fatalf("expected dsr 0, got %v", got)
	}
}

// TestSolvencySentinels проверяет особые случаи нулевых активов.
func TestSolvencySentinels(t *testing.T) {
	clean := metricByName(t, HealthMetrics(Aggregates{}), "Rasio Solvabilitas")
	if clean.Value != 100 || clean.Status != StatusHealthy {
		t.Fatalf("expected 100 healthy without assets and debts, got %v %s", clean.Value, clean.Status)
	}

	indebted := metricByName(t, HealthMetrics(Aggregates{TotalLiabilities: 5000000}), "Rasio Solvabilitas")
	if indebted.Value != 0 || indebted.Status != StatusDanger {
		t.Fatalf("expected 0 danger with debts only, got %v %s", indebted.Value, indebted.Status)
	}
}
