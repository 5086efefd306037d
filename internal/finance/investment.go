package finance

import (
	"example.com/finance-advisor/backend/internal/profile"
)

type InvestmentRecommendation struct {
	Instrument     string  `json:"instrument"`
	AllocationPct  float64 `json:"allocation_pct"`
	Description    string  `json:"description"`
	RiskLevel      string  `json:"risk_level"`
	ExpectedReturn string  `json:"expected_return"`
}

// ResolveRiskTier определяет уровень риска с поправкой на возраст.
func ResolveRiskTier(p profile.FinancialProfile) profile.RiskTier {
	tier := profile.NormalizeRiskTier(p.Risk.Tolerance)
	switch {
	case p.Personal.Age > 50:
		return profile.RiskConservative
	case p.Personal.Age > 40 && tier == profile.RiskAggressive:
		return profile.RiskModerate
	default:
		return tier
	}
}

// InvestmentRecommendations подбирает распределение инструментов по профилю.
func InvestmentRecommendations(p profile.FinancialProfile, agg Aggregates) []InvestmentRecommendation {
	if agg.EmergencyFundCoverage < 1 {
		return []InvestmentRecommendation{
			{
				Instrument:     "Reksa Dana Pasar Uang",
				AllocationPct:  70,
				Description:    "Dana darurat belum penuh, parkir dana di instrumen yang bisa dicairkan kapan saja",
				RiskLevel:      "rendah",
				ExpectedReturn: "4-5% per tahun",
			},
			{
				Instrument:     "Deposito",
				AllocationPct:  30,
				Description:    "Kunci sebagian dana agar tidak terpakai untuk konsumsi",
				RiskLevel:      "rendah",
				ExpectedReturn: "4-6% per tahun",
			},
		}
	}

	switch ResolveRiskTier(p) {
	case profile.RiskConservative:
		return []InvestmentRecommendation{
			{
				Instrument:     "Reksa Dana Pasar Uang",
				AllocationPct:  50,
				Description:    "Basis portofolio yang stabil dan likuid",
				RiskLevel:      "rendah",
				ExpectedReturn: "4-5% per tahun",
			},
			{
				Instrument:     "Deposito",
				AllocationPct:  30,
				Description:    "Pendapatan tetap dengan jaminan LPS",
				RiskLevel:      "rendah",
				ExpectedReturn: "4-6% per tahun",
			},
			{
				Instrument:     "Obligasi Negara (SBN Ritel)",
				AllocationPct:  20,
				Description:    "Kupon rutin dengan risiko gagal bayar sangat rendah",
				RiskLevel:      "rendah",
				ExpectedReturn: "6-7% per tahun",
			},
		}
	case profile.RiskAggressive:
		return []InvestmentRecommendation{
			{
				Instrument:     "Reksa Dana Pasar Uang",
				AllocationPct:  20,
				Description:    "Penyangga likuiditas portofolio",
				RiskLevel:      "rendah",
				ExpectedReturn: "4-5% per tahun",
			},
			{
				Instrument:     "Reksa Dana Obligasi",
				AllocationPct:  30,
				Description:    "Peredam fluktuasi pasar saham",
				RiskLevel:      "sedang",
				ExpectedReturn: "6-8% per tahun",
			},
			{
				Instrument:     "Reksa Dana Saham / Indeks",
				AllocationPct:  50,
				Description:    "Mesin pertumbuhan jangka panjang",
				RiskLevel:      "tinggi",
				ExpectedReturn: "10-12% per tahun",
			},
		}
	default:
		return []InvestmentRecommendation{
			{
				Instrument:     "Reksa Dana Pasar Uang",
				AllocationPct:  30,
				Description:    "Penyangga likuiditas portofolio",
				RiskLevel:      "rendah",
				ExpectedReturn: "4-5% per tahun",
			},
			{
				Instrument:     "Reksa Dana Obligasi",
				AllocationPct:  40,
				Description:    "Pendapatan tetap menengah dengan fluktuasi terkendali",
				RiskLevel:      "sedang",
				ExpectedReturn: "6-8% per tahun",
			},
			{
				Instrument:     "Reksa Dana Saham / Indeks",
				AllocationPct:  30,
				Description:    "Pertumbuhan jangka panjang di atas inflasi",
				RiskLevel:      "tinggi",
				ExpectedReturn: "10-12% per tahun",
			},
		}
	}
}
