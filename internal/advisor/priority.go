package advisor

import (
	"fmt"

	"example.com/finance-advisor/backend/internal/finance"
	"example.com/finance-advisor/backend/internal/profile"
)

type PriorityLevel string

const (
	PriorityCritical     PriorityLevel = "KRITIS"
	PriorityImportant    PriorityLevel = "PENTING"
	PriorityOptimization PriorityLevel = "OPTIMISASI"
)

type PriorityIssue struct {
	Rank          int               `json:"rank"`
	Level         PriorityLevel     `json:"level"`
	Code          finance.IssueCode `json:"code"`
	Title         string            `json:"title"`
	Summary       string            `json:"summary"`
	ImpactAmount  float64           `json:"impact_amount"`
	Window        string            `json:"window"`
	Justification string            `json:"justification"`
}

// buildPriorities ранжирует проблемы по уровню срочности, сохраняя порядок внутри уровня.
func buildPriorities(p profile.FinancialProfile, agg finance.Aggregates, findings []finance.Finding) []PriorityIssue {
	var critical, important, optimization []PriorityIssue

	for _, finding := range findings {
		issue := priorityIssue(finding, p, agg)
		switch issue.Level {
		case PriorityCritical:
			critical = append(critical, issue)
		case PriorityImportant:
			important = append(important, issue)
		default:
			optimization = append(optimization, issue)
		}
	}

	ordered := make([]PriorityIssue, 0, len(critical)+len(important)+len(optimization))
	ordered = append(ordered, critical...)
	ordered = append(ordered, important...)
	ordered = append(ordered, optimization...)
	for i := range ordered {
		ordered[i].Rank = i + 1
	}
	return ordered
}

func levelForSeverity(severity finance.Severity) PriorityLevel {
	switch severity {
	case finance.SeverityCritical:
		return PriorityCritical
	case finance.SeveritySerious:
		return PriorityImportant
	default:
		return PriorityOptimization
	}
}

func windowForLevel(level PriorityLevel) string {
	switch level {
	case PriorityCritical:
		return "0-1 bulan"
	case PriorityImportant:
		return "1-3 bulan"
	default:
		return "3-12 bulan"
	}
}

func priorityIssue(finding finance.Finding, p profile.FinancialProfile, agg finance.Aggregates) PriorityIssue {
	issue := PriorityIssue{
		Level: levelForSeverity(finding.Severity),
		Code:  finding.Code,
	}
	issue.Window = windowForLevel(issue.Level)

	switch finding.Code {
	case finance.IssueNegativeCashflow:
		issue.Title = "Hentikan defisit bulanan"
		issue.Summary = "Arus kas negatif harus ditutup sebelum rencana lain berjalan"
		issue.ImpactAmount = 12 * -agg.MonthlySurplus
		issue.Justification = fmt.Sprintf("Dibiarkan setahun, defisit ini menumpuk jadi %s", FormatRupiah(issue.ImpactAmount))

	case finance.IssueEmergencyCritical, finance.IssueEmergencyLow:
		issue.Title = "Isi dana darurat"
		issue.Summary = "Penyangga darurat adalah fondasi semua rencana lainnya"
		shortfall := agg.EmergencyFundNeed - p.EmergencyFund.Current
		if shortfall < 0 {
			shortfall = 0
		}
		issue.ImpactAmount = shortfall
		issue.Justification = fmt.Sprintf("Dengan %d tanggungan, targetmu %d bulan pengeluaran, masih kurang %s",
			p.Personal.Dependents, finance.EmergencyFundMonths(p.Personal), FormatRupiah(shortfall))

	case finance.IssueNegativeNetWorth:
		issue.Title = "Pulihkan kekayaan bersih"
		issue.Summary = "Total kewajiban melebihi seluruh aset yang dimiliki"
		issue.ImpactAmount = -agg.NetWorth
		issue.Justification = fmt.Sprintf("Posisi bersih minus %s, setiap pelunasan memperbaikinya langsung", FormatRupiah(issue.ImpactAmount))

	case finance.IssueDebtOverload, finance.IssueDebtHigh:
		issue.Title = "Turunkan beban cicilan"
		issue.Summary = "Porsi cicilan terhadap penghasilan melewati ambang aman"
		issue.ImpactAmount = 12 * agg.MonthlyDebtPayments
		issue.Justification = fmt.Sprintf("Setahun ke depan %s penghasilan sudah terikat untuk cicilan", FormatRupiah(issue.ImpactAmount))

	case finance.IssueNoLifeCover:
		issue.Title = "Aktifkan proteksi jiwa"
		issue.Summary = "Pencari nafkah dengan tanggungan wajib punya polis jiwa"
		issue.ImpactAmount = 120 * agg.MonthlyIncome
		issue.Justification = fmt.Sprintf("Uang pertanggungan yang layak sekitar 10 tahun penghasilan, yaitu %s", FormatRupiah(issue.ImpactAmount))

	case finance.IssueNoHealthCover:
		issue.Title = "Aktifkan jaminan kesehatan"
		issue.Summary = "Minimal BPJS Kesehatan harus aktif sebelum menabung apa pun"
		issue.ImpactAmount = 6 * agg.MonthlyIncome
		issue.Justification = fmt.Sprintf("Satu rawat inap besar mudah mencapai %s tanpa jaminan", FormatRupiah(issue.ImpactAmount))

	case finance.IssueSavingsLow, finance.IssueSavingsThin:
		issue.Title = "Naikkan rasio tabungan"
		issue.Summary = "Sisa bulanan belum memenuhi target 20% penghasilan"
		gap := (0.20*agg.MonthlyIncome - agg.MonthlySurplus) * 12
		if gap < 0 {
			gap = 0
		}
		issue.ImpactAmount = gap
		issue.Justification = fmt.Sprintf("Selisih ke target 20%% setara %s per tahun", FormatRupiah(gap))

	case finance.IssueUnitLinkDrag:
		issue.Title = "Evaluasi polis unit link"
		issue.Summary = "Pisahkan kebutuhan proteksi dari investasi"
		issue.ImpactAmount = 12 * unitLinkPremium(p)
		issue.Justification = fmt.Sprintf("Premi %s per tahun layak dibandingkan dengan term life murni", FormatRupiah(issue.ImpactAmount))

	case finance.IssueIdleCash:
		issue.Title = "Putar uang yang menganggur"
		issue.Summary = "Kelebihan kas di atas dana darurat sebaiknya mulai bekerja"
		excess := p.Assets.Liquid.Cash + p.Assets.Liquid.Savings - agg.EmergencyFundNeed
		if excess < 0 {
			excess = 0
		}
		issue.ImpactAmount = 0.04 * excess
		issue.Justification = fmt.Sprintf("Di instrumen rendah risiko saja, kelebihan ini bisa menghasilkan %s per tahun", FormatRupiah(issue.ImpactAmount))

	case finance.IssueNoRetirementTrack:
		issue.Title = "Mulai menabung untuk pensiun"
		issue.Summary = "Belum ada aset atau tujuan yang menyiapkan masa tua"
		issue.ImpactAmount = 1.2 * agg.MonthlyIncome
		issue.Justification = fmt.Sprintf("Mulai dari 10%% penghasilan, sekitar %s per tahun, selagi waktu masih panjang", FormatRupiah(issue.ImpactAmount))

	case finance.IssueSubscriptionCreep:
		issue.Title = "Pangkas langganan digital"
		issue.Summary = "Langganan aktif melebihi 5% penghasilan bulanan"
		excess := (p.Expenses.ActiveSubscriptions() - 0.05*agg.MonthlyIncome) * 12
		if excess < 0 {
			excess = 0
		}
		issue.ImpactAmount = excess
		issue.Justification = fmt.Sprintf("Merapikan langganan membebaskan %s per tahun", FormatRupiah(excess))

	default:
		issue.Title = string(finding.Code)
		issue.Summary = "Perlu ditinjau lebih lanjut"
	}

	return issue
}
