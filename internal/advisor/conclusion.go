package advisor

import (
	"fmt"
	"strings"

	"example.com/finance-advisor/backend/internal/narrative"
	"example.com/finance-advisor/backend/internal/profile"
)

// buildConclusion составляет заключение отчета в формате Markdown.
func buildConclusion(p profile.FinancialProfile, report Report) string {
	var b strings.Builder

	name := strings.TrimSpace(p.Personal.Name)
	if name == "" {
		name = "Kawan"
	}

	fmt.Fprintf(&b, "## Halo, %s!\n\n", name)
	fmt.Fprintf(&b, "Skor kesehatan keuanganmu **%d dari 100 (grade %s)**. ", report.Score.Value, report.Score.Grade)
	switch {
	case report.Allocation.SevereCrisis:
		b.WriteString("Kondisi sekarang memang berat, tapi jalur keluarnya jelas kalau rencana ini dijalankan disiplin.")
	case report.Allocation.CrisisMode:
		b.WriteString("Beban utang sedang menekan, jadi semua energi kita arahkan ke pemulihan dulu.")
	case report.Score.Value >= 85:
		b.WriteString("Fondasimu sudah kuat, sisanya tinggal optimasi kecil.")
	default:
		b.WriteString("Ada beberapa hal penting yang perlu dibereskan, semuanya bisa dikerjakan bertahap.")
	}
	b.WriteString("\n\n")

	if acks := intentAcknowledgments(report.Intents); len(acks) > 0 {
		b.WriteString("Dari ceritamu, aku menangkap beberapa hal:\n\n")
		for _, ack := range acks {
			fmt.Fprintf(&b, "- %s\n", ack)
		}
		b.WriteString("\n")
	}

	if report.Feasibility != nil && report.Intents.Lifestyle != nil {
		fmt.Fprintf(&b, "Soal %s: status **%s**. %s\n\n",
			report.Intents.Lifestyle.Description, report.Feasibility.Status, report.Feasibility.Message)
	}

	b.WriteString("### Fokus utama\n\n")
	if len(report.Priorities) > 0 {
		top := report.Priorities[0]
		fmt.Fprintf(&b, "**%s** (%s, jendela %s). %s.\n\n", top.Title, top.Level, top.Window, top.Summary)
	} else {
		b.WriteString("Tidak ada masalah mendesak. Pertahankan pola sekarang dan biarkan investasimu bekerja.\n\n")
	}

	if report.Aggregates.MonthlySurplus > 0 && !report.Allocation.CrisisMode {
		fmt.Fprintf(&b, "Kabar baiknya, ada surplus %s setiap bulan yang bisa langsung dialokasikan sesuai rencana di atas.\n\n",
			FormatRupiah(report.Aggregates.MonthlySurplus))
	}

	steps := report.ActionPlan.ShortTerm
	if len(steps) == 0 {
		steps = report.ActionPlan.MidTerm
	}
	if len(steps) > 0 {
		b.WriteString("### Langkah 30 hari ke depan\n\n")
		for i, step := range steps {
			if i == 4 {
				break
			}
			if step.Amount > 0 {
				fmt.Fprintf(&b, "%d. %s (%s).\n", i+1, step.Action, FormatRupiah(step.Amount))
			} else {
				fmt.Fprintf(&b, "%d. %s.\n", i+1, step.Action)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("Kamu tidak harus sempurna, cukup konsisten. Tinjau ulang angka-angka ini setiap kali penghasilan atau pengeluaranmu berubah ya.\n")

	return b.String()
}

func intentAcknowledgments(intents narrative.Intents) []string {
	var acks []string

	if intents.Marriage {
		acks = append(acks, "Rencana menikah kita jadikan tujuan dengan anggaran yang jelas")
	}
	if intents.HomePurchase {
		acks = append(acks, "Keinginan punya rumah diarahkan lewat jalur DP yang sehat, bukan cicilan dadakan")
	}
	if intents.Education {
		acks = append(acks, "Biaya pendidikan anak diamankan lewat pos tujuan terpisah")
	}
	if intents.Retirement {
		acks = append(acks, "Kekhawatiran soal masa tua dijawab dengan pos pensiun rutin")
	}
	if intents.JobLoss {
		acks = append(acks, "Risiko kehilangan pekerjaan membuat dana darurat naik ke prioritas teratas")
	}
	if intents.Debt {
		acks = append(acks, "Beban utang yang kamu sebut menjadi pusat strategi laporan ini")
	}
	if intents.Insurance {
		acks = append(acks, "Soal asuransi, mulai dari proteksi murni yang sederhana dulu")
	}
	if intents.Emergency {
		acks = append(acks, "Kesadaranmu soal dana darurat sudah tepat, tinggal konsisten mengisi")
	}
	if intents.SideIncome {
		acks = append(acks, "Niat mencari penghasilan tambahan akan mempercepat semua target di sini")
	}
	if intents.Confusion {
		acks = append(acks, "Wajar kalau bingung, laporan ini memecah semuanya jadi langkah kecil")
	}

	return acks
}
