package finance

type MetricStatus string

const (
	StatusHealthy MetricStatus = "healthy"
	StatusWarning MetricStatus = "warning"
	StatusDanger  MetricStatus = "danger"
)

const (
	expenseHealthyMax = 50
	expenseWarningMax = 70

	savingsHealthyMin = 20
	savingsWarningMin = 10

	dsrHealthyMax = 35
	dsrWarningMax = 50

	solvencyHealthyMin = 50
	solvencyWarningMin = 30
)

type HealthMetric struct {
	Name   string       `json:"name"`
	Value  float64      `json:"value"`
	Status MetricStatus `json:"status"`
	Target string       `json:"target"`
}

// HealthMetrics вычисляет четыре коэффициента финансового здоровья.
func HealthMetrics(agg Aggregates) []HealthMetric {
	expense := expenseRate(agg)
	savings := savingsRate(agg)
	dsr := debtServiceRate(agg)
	solvency := solvencyRate(agg)

	return []HealthMetric{
		{
			Name:   "Rasio Pengeluaran",
			Value:  expense,
			Status: statusMax(expense, expenseHealthyMax, expenseWarningMax),
			Target: "Maksimal 50% dari penghasilan bulanan",
		},
		{
			Name:   "Rasio Tabungan",
			Value:  savings,
			Status: statusMin(savings, savingsHealthyMin, savingsWarningMin),
			Target: "Minimal 20% dari penghasilan bulanan",
		},
		{
			Name:   "Rasio Cicilan Utang",
			Value:  dsr,
			Status: statusMax(dsr, dsrHealthyMax, dsrWarningMax),
			Target: "Maksimal 35% dari penghasilan bulanan",
		},
		{
			Name:   "Rasio Solvabilitas",
			Value:  solvency,
			Status: statusMin(solvency, solvencyHealthyMin, solvencyWarningMin),
			Target: "Minimal 50% dari total aset",
		},
	}
}

func expenseRate(agg Aggregates) float64 {
	if agg.MonthlyIncome <= 0 {
		return 0
	}
	return (agg.MonthlyExpenses - agg.MonthlyDebtPayments) / agg.MonthlyIncome * 100
}

func savingsRate(agg Aggregates) float64 {
	if agg.MonthlyIncome <= 0 || agg.MonthlySurplus <= 0 {
		return 0
	}
	return agg.MonthlySurplus / agg.MonthlyIncome * 100
}

func debtServiceRate(agg Aggregates) float64 {
	if agg.MonthlyIncome <= 0 {
		return 0
	}
	return agg.MonthlyDebtPayments / agg.MonthlyIncome * 100
}

func solvencyRate(agg Aggregates) float64 {
	if agg.TotalAssets <= 0 {
		if agg.TotalLiabilities > 0 {
			return 0
		}
		return 100
	}
	return (agg.TotalAssets - agg.TotalLiabilities) / agg.TotalAssets * 100
}

func statusMax(value, healthyMax, warningMax float64) MetricStatus {
	switch {
	case value <= healthyMax:
		return StatusHealthy
	case value <= warningMax:
		return StatusWarning
	default:
		return StatusDanger
	}
}

func statusMin(value, healthyMin, warningMin float64) MetricStatus {
	switch {
	case value >= healthyMin:
		return StatusHealthy
	case value >= warningMin:
		return StatusWarning
	default:
		return StatusDanger
	}
}
