package advisor

import (
	"fmt"

	"example.com/finance-advisor/backend/internal/finance"
	"example.com/finance-advisor/backend/internal/narrative"
	"example.com/finance-advisor/backend/internal/profile"
)

type DiagnosisItem struct {
	Code     finance.IssueCode `json:"code,omitempty"`
	Issue    string            `json:"issue"`
	Severity finance.Severity  `json:"severity"`
	Impact   string            `json:"impact"`
	Evidence string            `json:"evidence,omitempty"`
}

type Diagnosis struct {
	Score           int             `json:"score"`
	Grade           string          `json:"grade"`
	Weaknesses      []DiagnosisItem `json:"weaknesses,omitempty"`
	HiddenRisks     []DiagnosisItem `json:"hidden_risks,omitempty"`
	FalseSecurities []DiagnosisItem `json:"false_securities,omitempty"`
}

type diagnosisBucket int

const (
	bucketWeakness diagnosisBucket = iota
	bucketHiddenRisk
	bucketFalseSecurity
)

func buildDiagnosis(
	p profile.FinancialProfile,
	agg finance.Aggregates,
	findings []finance.Finding,
	score finance.HealthScore,
	intents narrative.Intents,
	alloc finance.Allocation,
) Diagnosis {
	diagnosis := Diagnosis{Score: score.Value, Grade: score.Grade}

	appendItem := func(item DiagnosisItem, bucket diagnosisBucket) {
		switch bucket {
		case bucketHiddenRisk:
			diagnosis.HiddenRisks = append(diagnosis.HiddenRisks, item)
		case bucketFalseSecurity:
			diagnosis.FalseSecurities = append(diagnosis.FalseSecurities, item)
		default:
			diagnosis.Weaknesses = append(diagnosis.Weaknesses, item)
		}
	}

	for _, finding := range findings {
		item, bucket := diagnosisItem(finding, p, agg)
		appendItem(item, bucket)
	}

	for _, extra := range narrativeRisks(intents, alloc) {
		appendItem(extra.item, extra.bucket)
	}

	return diagnosis
}

type narrativeRisk struct {
	item   DiagnosisItem
	bucket diagnosisBucket
}

// narrativeRisks дополняет диагноз темами из рассказа, не влияя на балл.
func narrativeRisks(intents narrative.Intents, alloc finance.Allocation) []narrativeRisk {
	var risks []narrativeRisk

	if intents.Insurance && intents.Confusion {
		risks = append(risks, narrativeRisk{
			item: DiagnosisItem{
				Issue:    "Kebingungan soal asuransi membuat keputusan tertunda",
				Severity: finance.SeverityModerate,
				Impact:   "Selama belum memutuskan, risiko besar tetap tidak terlindungi",
				Evidence: "Kamu sendiri menyebut masih bingung memilih proteksi",
			},
			bucket: bucketHiddenRisk,
		})
	}

	if intents.JobLoss {
		risks = append(risks, narrativeRisk{
			item: DiagnosisItem{
				Issue:    "Kekhawatiran kehilangan pekerjaan",
				Severity: finance.SeveritySerious,
				Impact:   "Tanpa penghasilan, seluruh rencana bergantung pada dana darurat",
				Evidence: "Kamu menyebut risiko PHK atau kontrak yang akan habis",
			},
			bucket: bucketHiddenRisk,
		})
	}

	if intents.Debt && alloc.CrisisMode {
		risks = append(risks, narrativeRisk{
			item: DiagnosisItem{
				Issue:    "Beban utang yang kamu rasakan memang nyata di angka",
				Severity: finance.SeveritySerious,
				Impact:   "Fokus bulan-bulan ke depan harus ke pelunasan, bukan penambahan komitmen baru",
				Evidence: "Mode pemulihan utang aktif pada rencana alokasi",
			},
			bucket: bucketWeakness,
		})
	}

	return risks
}

func diagnosisItem(finding finance.Finding, p profile.FinancialProfile, agg finance.Aggregates) (DiagnosisItem, diagnosisBucket) {
	item := DiagnosisItem{Code: finding.Code, Severity: finding.Severity}

	switch finding.Code {
	case finance.IssueNegativeCashflow:
		item.Issue = "Pengeluaran melebihi penghasilan"
		item.Impact = fmt.Sprintf("Defisit %s setiap bulan menggerus tabungan atau menambah utang baru", FormatRupiah(-agg.MonthlySurplus))
		item.Evidence = fmt.Sprintf("Penghasilan %s vs pengeluaran %s per bulan", FormatRupiah(agg.MonthlyIncome), FormatRupiah(agg.MonthlyExpenses))
		return item, bucketWeakness

	case finance.IssueEmergencyCritical:
		item.Issue = "Dana darurat nyaris kosong"
		item.Impact = "Satu kejadian tak terduga bisa langsung memaksa berutang"
		item.Evidence = fmt.Sprintf("Terkumpul %s dari kebutuhan %s", FormatRupiah(p.EmergencyFund.Current), FormatRupiah(agg.EmergencyFundNeed))
		return item, bucketHiddenRisk

	case finance.IssueEmergencyLow:
		item.Issue = "Dana darurat baru terisi sebagian"
		item.Impact = "Guncangan lebih dari satu-dua bulan tetap berbahaya"
		item.Evidence = fmt.Sprintf("Terkumpul %s dari kebutuhan %s", FormatRupiah(p.EmergencyFund.Current), FormatRupiah(agg.EmergencyFundNeed))
		return item, bucketHiddenRisk

	case finance.IssueNegativeNetWorth:
		item.Issue = "Kewajiban melebihi seluruh aset"
		item.Impact = fmt.Sprintf("Posisi bersih minus %s harus dipulihkan sebelum bicara investasi", FormatRupiah(-agg.NetWorth))
		item.Evidence = fmt.Sprintf("Aset %s vs kewajiban %s", FormatRupiah(agg.TotalAssets), FormatRupiah(agg.TotalLiabilities))
		return item, bucketWeakness

	case finance.IssueDebtOverload:
		item.Issue = "Cicilan utang di zona bahaya"
		item.Impact = "Lebih dari setengah penghasilan habis untuk cicilan, ruang hidup semakin sempit"
		item.Evidence = fmt.Sprintf("Cicilan %s per bulan dari penghasilan %s", FormatRupiah(agg.MonthlyDebtPayments), FormatRupiah(agg.MonthlyIncome))
		return item, bucketWeakness

	case finance.IssueDebtHigh:
		item.Issue = "Cicilan utang melewati batas aman"
		item.Impact = "Di atas 35% penghasilan, cicilan mulai mendesak kebutuhan pokok"
		item.Evidence = fmt.Sprintf("Cicilan %s per bulan dari penghasilan %s", FormatRupiah(agg.MonthlyDebtPayments), FormatRupiah(agg.MonthlyIncome))
		return item, bucketWeakness

	case finance.IssueNoLifeCover:
		item.Issue = "Tidak ada proteksi jiwa padahal ada tanggungan"
		item.Impact = fmt.Sprintf("%d orang kehilangan sumber nafkah jika terjadi risiko terburuk", p.Personal.Dependents)
		item.Evidence = "Tidak ditemukan polis jiwa aktif pada profil"
		return item, bucketHiddenRisk

	case finance.IssueNoHealthCover:
		item.Issue = "Tidak ada jaminan kesehatan aktif"
		item.Impact = "Satu rawat inap besar bisa menghapus tabungan bertahun-tahun"
		item.Evidence = "BPJS Kesehatan dan asuransi swasta sama-sama tidak aktif"
		return item, bucketHiddenRisk

	case finance.IssueSavingsLow:
		item.Issue = "Rasio tabungan di bawah 10%"
		item.Impact = "Kekayaan praktis tidak bertumbuh, semua target besar akan tertunda"
		item.Evidence = fmt.Sprintf("Sisa %s dari penghasilan %s per bulan", FormatRupiah(agg.MonthlySurplus), FormatRupiah(agg.MonthlyIncome))
		return item, bucketWeakness

	case finance.IssueSavingsThin:
		item.Issue = "Rasio tabungan belum mencapai target 20%"
		item.Impact = "Akumulasi berjalan, tapi lebih lambat dari kebutuhan tujuan finansial"
		item.Evidence = fmt.Sprintf("Sisa %s dari penghasilan %s per bulan", FormatRupiah(agg.MonthlySurplus), FormatRupiah(agg.MonthlyIncome))
		return item, bucketWeakness

	case finance.IssueUnitLinkDrag:
		item.Issue = "Premi unit link berjalan tanpa evaluasi"
		item.Impact = "Sebagian besar premi menjadi biaya, bukan proteksi atau hasil investasi"
		item.Evidence = fmt.Sprintf("Premi unit link %s per bulan", FormatRupiah(unitLinkPremium(p)))
		return item, bucketFalseSecurity

	case finance.IssueIdleCash:
		item.Issue = "Uang menganggur jauh melebihi kebutuhan darurat"
		item.Impact = "Terasa aman, padahal nilai riilnya tergerus inflasi setiap tahun"
		item.Evidence = fmt.Sprintf("Kas dan tabungan %s, kebutuhan darurat %s", FormatRupiah(p.Assets.Liquid.Cash+p.Assets.Liquid.Savings), FormatRupiah(agg.EmergencyFundNeed))
		return item, bucketFalseSecurity

	case finance.IssueNoRetirementTrack:
		item.Issue = "Belum ada persiapan masa pensiun"
		item.Impact = "Semakin ditunda, semakin besar setoran bulanan yang dibutuhkan nanti"
		item.Evidence = "Tidak ada aset investasi maupun tujuan pensiun pada profil"
		return item, bucketHiddenRisk

	case finance.IssueSubscriptionCreep:
		item.Issue = "Langganan digital di atas 5% penghasilan"
		item.Impact = "Pengeluaran kecil berulang ini diam-diam memakan porsi tabungan"
		item.Evidence = fmt.Sprintf("Total langganan aktif %s per bulan", FormatRupiah(p.Expenses.ActiveSubscriptions()))
		return item, bucketWeakness

	default:
		item.Issue = string(finding.Code)
		item.Impact = "Perlu ditinjau bersama perencana"
		return item, bucketWeakness
	}
}

func unitLinkPremium(p profile.FinancialProfile) float64 {
	var total float64
	for _, policy := range p.Insurance.Policies {
		if policy.Type == profile.PolicyUnitLink {
			total += policy.MonthlyPremium
		}
	}
	return total
}
