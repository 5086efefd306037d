package advisor

import (
	"fmt"

	"example.com/finance-advisor/backend/internal/finance"
	"example.com/finance-advisor/backend/internal/profile"
)

type TimedAction struct {
	Action    string  `json:"action"`
	Amount    float64 `json:"amount,omitempty"`
	Deadline  string  `json:"deadline"`
	Frequency string  `json:"frequency"`
	Rationale string  `json:"rationale,omitempty"`
}

type ActionPlan struct {
	ShortTerm []TimedAction `json:"short_term,omitempty"`
	MidTerm   []TimedAction `json:"mid_term,omitempty"`
	LongTerm  []TimedAction `json:"long_term,omitempty"`
}

// buildActionPlan раскладывает шаги по горизонтам: до 3, до 12 и свыше 12 месяцев.
func buildActionPlan(p profile.FinancialProfile, agg finance.Aggregates, alloc finance.Allocation, goalPlan finance.GoalPlan) ActionPlan {
	var plan ActionPlan

	if !p.Insurance.HasHealthCover() {
		plan.ShortTerm = append(plan.ShortTerm, TimedAction{
			Action:    "Aktifkan BPJS Kesehatan untuk seluruh keluarga",
			Deadline:  "bulan ini",
			Frequency: "sekali",
			Rationale: "Proteksi dasar harus aktif sebelum pos keuangan lain",
		})
	}

	if alloc.SubscriptionCut > 0 {
		plan.ShortTerm = append(plan.ShortTerm, TimedAction{
			Action:    "Batalkan langganan yang tidak esensial",
			Amount:    alloc.SubscriptionCut,
			Deadline:  "minggu ini",
			Frequency: "sekali",
			Rationale: "Penghematan langsung tanpa menurunkan kebutuhan pokok",
		})
	}

	if alloc.EmergencyFund > 0 {
		plan.ShortTerm = append(plan.ShortTerm, TimedAction{
			Action:    "Pasang autodebit dana darurat ke rekening terpisah",
			Amount:    alloc.EmergencyFund,
			Deadline:  "gajian berikutnya",
			Frequency: "bulanan",
			Rationale: "Menabung di awal bulan, bukan dari sisa",
		})
	}

	if alloc.CrisisMode && alloc.DebtExtra > 0 {
		plan.ShortTerm = append(plan.ShortTerm, TimedAction{
			Action:    "Bayar ekstra ke utang berbunga paling tinggi",
			Amount:    alloc.DebtExtra,
			Deadline:  "bulan ini",
			Frequency: "bulanan",
			Rationale: "Setiap bulan ekstra memangkas bunga berjalan",
		})
	}

	if alloc.Insurance > 0 {
		plan.MidTerm = append(plan.MidTerm, TimedAction{
			Action:    "Lengkapi polis proteksi yang masih kosong",
			Amount:    alloc.Insurance,
			Deadline:  "3 bulan ke depan",
			Frequency: "bulanan",
			Rationale: "Anggaran premi sudah disediakan di rencana alokasi",
		})
	}

	if alloc.EmergencyFund > 0 {
		plan.MidTerm = append(plan.MidTerm, TimedAction{
			Action:    "Capai separuh target dana darurat",
			Amount:    0.5 * agg.EmergencyFundNeed,
			Deadline:  "6-12 bulan",
			Frequency: "sekali",
			Rationale: "Titik tengah yang membuat guncangan kecil tidak lagi berbahaya",
		})
		plan.LongTerm = append(plan.LongTerm, TimedAction{
			Action:    "Penuhi dana darurat sampai target",
			Amount:    agg.EmergencyFundNeed,
			Deadline:  "di atas 12 bulan",
			Frequency: "sekali",
			Rationale: "Setelah penuh, seluruh setoran beralih ke investasi",
		})
	}

	for _, projection := range goalPlan.Goals {
		if projection.MonthlyRequired <= 0 {
			continue
		}
		action := TimedAction{
			Action:    fmt.Sprintf("Setor rutin untuk %s", projection.Goal.Name),
			Amount:    projection.MonthlyRequired,
			Frequency: "bulanan",
			Rationale: fmt.Sprintf("Ditempatkan di %s sesuai tenor", projection.Instrument),
		}
		switch {
		case projection.Goal.Months <= 3:
			action.Deadline = "mulai bulan ini"
			plan.ShortTerm = append(plan.ShortTerm, action)
		case projection.Goal.Months <= 12:
			action.Deadline = fmt.Sprintf("selesai dalam %d bulan", projection.Goal.Months)
			plan.MidTerm = append(plan.MidTerm, action)
		default:
			action.Deadline = fmt.Sprintf("selesai dalam %d bulan", projection.Goal.Months)
			plan.LongTerm = append(plan.LongTerm, action)
		}
	}

	if alloc.Investment > 0 {
		plan.LongTerm = append(plan.LongTerm, TimedAction{
			Action:    "Jalankan investasi rutin sesuai profil risiko",
			Amount:    alloc.Investment,
			Deadline:  "berkelanjutan",
			Frequency: "bulanan",
			Rationale: "Akumulasi jangka panjang di atas inflasi",
		})
	}

	return plan
}
