package narrative

import (
	"fmt"
	"math"
)

type FeasibilityStatus string

const (
	StatusFeasible    FeasibilityStatus = "FEASIBLE"
	StatusMarginal    FeasibilityStatus = "MARGINAL"
	StatusNotFeasible FeasibilityStatus = "NOT_FEASIBLE"
)

const (
	projectedRateFloor    = 10
	projectedRateComfort  = 20
	quickPurchaseMonths   = 3
	stretchPurchaseMonths = 12
	maxPurchaseMonths     = 24
)

type FeasibilityAssessment struct {
	Status               FeasibilityStatus `json:"status"`
	Message              string            `json:"message"`
	CurrentSurplus       float64           `json:"current_surplus"`
	ProjectedSurplus     float64           `json:"projected_surplus"`
	ProjectedSavingsRate float64           `json:"projected_savings_rate"`
	MonthsToSave         int               `json:"months_to_save"`
	Alternatives         []string          `json:"alternatives,omitempty"`
}

// Assess оценивает выполнимость желания при текущем профиците.
func Assess(intent LifestyleIntent, currentSpend, surplus, income float64) FeasibilityAssessment {
	if intent.Type == LifestyleRecurring {
		return assessRecurring(intent, currentSpend, surplus, income)
	}
	return assessPurchase(intent, surplus, income)
}

func assessRecurring(intent LifestyleIntent, currentSpend, surplus, income float64) FeasibilityAssessment {
	additional := intent.Amount - currentSpend
	if additional < 0 {
		additional = 0
	}

	projected := surplus - additional
	var rate float64
	if income > 0 {
		rate = projected / income * 100
	}

	result := FeasibilityAssessment{
		CurrentSurplus:       surplus,
		ProjectedSurplus:     projected,
		ProjectedSavingsRate: rate,
	}

	switch {
	case projected <= 0 || rate < projectedRateFloor:
		result.Status = StatusNotFeasible
		result.Message = "Kenaikan biaya bulanan ini akan menghabiskan ruang menabung kamu, sebaiknya ditunda dulu."
		result.Alternatives = []string{
			"Cari hunian dengan selisih sewa yang lebih kecil",
			"Naikkan penghasilan dulu sebelum pindah",
			"Tunda kepindahan sampai dana darurat aman",
		}
	case rate < projectedRateComfort:
		result.Status = StatusMarginal
		result.Message = "Masih bisa, tapi rasio tabungan kamu akan turun ke zona tipis setelah pindah."
		result.Alternatives = []string{
			"Uji coba dulu dengan menyisihkan selisih sewa ke rekening terpisah selama 3 bulan",
			"Negosiasikan harga sewa atau cari lokasi sedikit lebih jauh",
		}
	default:
		result.Status = StatusFeasible
		result.Message = "Kenaikan biaya ini masih aman untuk arus kas bulanan kamu."
	}

	return result
}

func assessPurchase(intent LifestyleIntent, surplus, income float64) FeasibilityAssessment {
	result := FeasibilityAssessment{CurrentSurplus: surplus, ProjectedSurplus: surplus}
	if income > 0 {
		result.ProjectedSavingsRate = surplus / income * 100
	}

	if surplus <= 0 {
		result.Status = StatusNotFeasible
		result.Message = "Tidak ada surplus bulanan untuk menabung, pembelian ini belum realistis sekarang."
		result.Alternatives = []string{
			"Rapikan pengeluaran dulu sampai ada surplus rutin",
			"Cari alternatif dengan harga jauh lebih rendah",
		}
		return result
	}

	months := int(math.Ceil(intent.Amount / surplus))
	if months < 0 {
		months = 0
	}
	result.MonthsToSave = months

	switch {
	case months <= quickPurchaseMonths:
		result.Status = StatusFeasible
		result.Message = fmt.Sprintf("Dengan surplus sekarang, target ini tercapai dalam %d bulan menabung.", months)
	case months <= stretchPurchaseMonths:
		result.Status = StatusMarginal
		result.Message = fmt.Sprintf("Butuh sekitar %d bulan menabung penuh, pastikan dana darurat tidak terpakai.", months)
		result.Alternatives = []string{
			"Buat pos khusus dan autodebit setiap gajian",
			"Cari versi bekas atau model tahun sebelumnya",
		}
	case months <= maxPurchaseMonths:
		result.Status = StatusMarginal
		result.Message = fmt.Sprintf("Perlu %d bulan menabung, terlalu lama untuk barang konsumtif, pertimbangkan ulang.", months)
		result.Alternatives = []string{
			"Turunkan target harga minimal setengahnya",
			"Prioritaskan dana darurat dan proteksi dulu",
			"Manfaatkan momen promo tanpa memaksakan cicilan",
		}
	default:
		result.Status = StatusNotFeasible
		result.Message = "Dengan surplus sekarang, target ini butuh lebih dari dua tahun menabung, tunda dulu."
		result.Alternatives = []string{
			"Tunda pembelian besar sampai surplus membaik",
			"Cari alternatif dengan harga jauh lebih rendah",
		}
	}

	return result
}
