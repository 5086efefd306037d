package advisor

import (
	"fmt"
	"math"

	"example.com/finance-advisor/backend/internal/finance"
	"example.com/finance-advisor/backend/internal/narrative"
	"example.com/finance-advisor/backend/internal/profile"
)

type Strategy struct {
	Priority     int      `json:"priority"`
	Name         string   `json:"name"`
	Objective    string   `json:"objective"`
	TargetAmount float64  `json:"target_amount,omitempty"`
	Timeframe    string   `json:"timeframe"`
	Actions      []string `json:"actions"`
	Tradeoffs    []string `json:"tradeoffs,omitempty"`
	Outcome      string   `json:"outcome"`
}

// buildStrategies собирает стратегии, используя только числа из готового распределения.
func buildStrategies(
	p profile.FinancialProfile,
	agg finance.Aggregates,
	alloc finance.Allocation,
	intents narrative.Intents,
	debtPlans []finance.DebtPayoffPlan,
	goalPlan finance.GoalPlan,
	feasibility *narrative.FeasibilityAssessment,
) []Strategy {
	var strategies []Strategy
	if alloc.CrisisMode {
		strategies = crisisStrategies(p, agg, alloc, debtPlans)
	} else {
		strategies = normalStrategies(p, agg, alloc, debtPlans, goalPlan)
	}

	strategies = append(strategies, intentStrategies(p, agg, alloc, intents, feasibility)...)

	for i := range strategies {
		strategies[i].Priority = i + 1
	}
	return strategies
}

func crisisStrategies(p profile.FinancialProfile, agg finance.Aggregates, alloc finance.Allocation, debtPlans []finance.DebtPayoffPlan) []Strategy {
	var strategies []Strategy

	acceleration := Strategy{
		Name:         "Percepatan pelunasan utang",
		Objective:    "Keluar dari zona krisis dengan menyerang utang paling mahal",
		TargetAmount: alloc.DebtExtra,
		Timeframe:    "mulai bulan ini",
		Actions: []string{
			fmt.Sprintf("Arahkan %s per bulan sebagai pembayaran ekstra di atas cicilan wajib", FormatRupiah(alloc.DebtExtra)),
			"Jangan tambah pinjaman atau paylater baru dalam bentuk apa pun",
		},
		Tradeoffs: []string{"Tujuan dan investasi lain dibekukan sampai beban utang turun"},
		Outcome:   "Beban bunga berhenti bertambah dan arus kas pulih bertahap",
	}
	if len(debtPlans) > 0 && len(debtPlans[0].Order) > 0 {
		first := debtPlans[0].Order[0]
		acceleration.Actions = append(acceleration.Actions,
			fmt.Sprintf("Lunasi %s (bunga %s per tahun) paling dulu", first.Name, FormatPercent(first.AnnualRate)))
		acceleration.Outcome = fmt.Sprintf("Melunasi %s membebaskan sekitar %s per bulan", first.Name, FormatRupiah(debtPlans[0].MonthlySavings))
	}
	strategies = append(strategies, acceleration)

	if alloc.SevereCrisis {
		strategies = append(strategies, Strategy{
			Name:         "Pemangkasan pengeluaran darurat",
			Objective:    "Membebaskan uang tunai secepat mungkin dari pos yang bisa ditunda",
			TargetAmount: alloc.LifestyleCut + alloc.SubscriptionCut,
			Timeframe:    "bulan ini",
			Actions: []string{
				fmt.Sprintf("Pangkas pos hiburan dan jajan 50%%, setara %s per bulan", FormatRupiah(alloc.LifestyleCut)),
				fmt.Sprintf("Sisakan langganan maksimal 2%% penghasilan, hemat %s per bulan", FormatRupiah(alloc.SubscriptionCut)),
			},
			Tradeoffs: []string{"Gaya hidup turun sementara, sampai posisi bersih kembali positif"},
			Outcome:   "Seluruh penghematan langsung memperbesar pembayaran utang",
		})
	}

	strategies = append(strategies, Strategy{
		Name:         "Tambahan penghasilan",
		Objective:    "Memperbesar kapasitas pelunasan tanpa memotong kebutuhan pokok lebih dalam",
		TargetAmount: 0.2 * agg.MonthlyIncome,
		Timeframe:    "1-3 bulan",
		Actions: []string{
			"Tawarkan jasa atau lembur dari keahlian yang sudah ada",
			"Jual aset yang tidak produktif untuk mengurangi pokok utang",
		},
		Outcome: "Setiap tambahan penghasilan memperpendek masa krisis",
	})

	if agg.MonthlyIncome > 0 && agg.MonthlyDebtPayments > 0.35*agg.MonthlyIncome {
		strategies = append(strategies, Strategy{
			Name:      "Restrukturisasi utang",
			Objective: "Menurunkan cicilan bulanan ke porsi yang bisa dibayar",
			Timeframe: "1-2 bulan",
			Actions: []string{
				"Ajukan keringanan bunga atau perpanjangan tenor ke setiap kreditur",
				"Prioritaskan negosiasi pada utang berbunga paling tinggi",
			},
			Tradeoffs: []string{"Tenor lebih panjang berarti total bunga bisa bertambah"},
			Outcome:   "Cicilan bulanan turun ke bawah 35% penghasilan",
		})
	}

	return strategies
}

func normalStrategies(p profile.FinancialProfile, agg finance.Aggregates, alloc finance.Allocation, debtPlans []finance.DebtPayoffPlan, goalPlan finance.GoalPlan) []Strategy {
	var strategies []Strategy

	if alloc.EmergencyFund > 0 {
		shortfall := agg.EmergencyFundNeed - p.EmergencyFund.Current
		months := int(math.Ceil(shortfall / alloc.EmergencyFund))
		strategies = append(strategies, Strategy{
			Name:         "Bangun dana darurat",
			Objective:    fmt.Sprintf("Mencapai cadangan %d bulan pengeluaran", finance.EmergencyFundMonths(p.Personal)),
			TargetAmount: alloc.EmergencyFund,
			Timeframe:    fmt.Sprintf("sekitar %d bulan", months),
			Actions: []string{
				fmt.Sprintf("Autodebit %s setiap tanggal gajian ke rekening terpisah", FormatRupiah(alloc.EmergencyFund)),
				"Parkir dana di reksa dana pasar uang atau deposito yang mudah dicairkan",
			},
			Tradeoffs: []string{"Porsi investasi jangka panjang menunggu sampai penyangga aman"},
			Outcome:   fmt.Sprintf("Penyangga penuh %s memberi napas saat penghasilan terganggu", FormatRupiah(agg.EmergencyFundNeed)),
		})
	}

	if alloc.Insurance > 0 {
		actions := []string{}
		if !p.Insurance.HasHealthCover() {
			actions = append(actions, "Aktifkan BPJS Kesehatan sebagai lapisan pertama")
		}
		if p.Personal.Dependents > 0 && !p.Insurance.HasPolicy(profile.PolicyLife) {
			actions = append(actions, "Ambil term life murni dengan uang pertanggungan 10 tahun penghasilan")
		}
		if !p.Insurance.HasPolicy(profile.PolicyCriticalIllness) {
			actions = append(actions, "Bandingkan asuransi penyakit kritis murni, hindari produk campuran")
		}
		strategies = append(strategies, Strategy{
			Name:         "Lengkapi proteksi dasar",
			Objective:    "Menutup risiko besar sebelum memperbesar aset",
			TargetAmount: alloc.Insurance,
			Timeframe:    "1-3 bulan",
			Actions:      actions,
			Tradeoffs:    []string{"Premi mengurangi surplus, tapi memindahkan risiko katastrofik"},
			Outcome:      fmt.Sprintf("Anggaran premi %s per bulan menutup celah proteksi utama", FormatRupiah(alloc.Insurance)),
		})
	}

	if len(debtPlans) > 0 {
		avalanche := debtPlans[0]
		strategy := Strategy{
			Name:         "Optimalkan pelunasan utang",
			Objective:    "Mengurangi total bunga dengan urutan pelunasan yang benar",
			TargetAmount: avalanche.MonthlySavings,
			Timeframe:    fmt.Sprintf("sisa tenor %d bulan", avalanche.PayoffMonths),
			Actions: []string{
				"Pertahankan semua cicilan wajib tepat waktu",
			},
			Outcome: fmt.Sprintf("Metode avalanche menghemat bunga dan membebaskan %s per bulan setelah utang pertama lunas", FormatRupiah(avalanche.MonthlySavings)),
		}
		if len(avalanche.Order) > 0 {
			first := avalanche.Order[0]
			strategy.Actions = append(strategy.Actions,
				fmt.Sprintf("Arahkan setiap dana lebih ke %s (bunga %s per tahun)", first.Name, FormatPercent(first.AnnualRate)))
		}
		strategies = append(strategies, strategy)
	}

	if alloc.Goals > 0 && len(goalPlan.Goals) > 0 {
		actions := make([]string, 0, 3)
		for i, projection := range goalPlan.Goals {
			if i == 3 {
				break
			}
			if projection.MonthlyRequired <= 0 {
				continue
			}
			actions = append(actions, fmt.Sprintf("Sisihkan %s per bulan untuk %s di %s",
				FormatRupiah(projection.MonthlyRequired), projection.Goal.Name, projection.Instrument))
		}
		strategies = append(strategies, Strategy{
			Name:         "Danai tujuan finansial",
			Objective:    "Menjalankan tujuan dengan setoran terukur, bukan sisa uang",
			TargetAmount: alloc.Goals,
			Timeframe:    "sesuai tenor masing-masing tujuan",
			Actions:      actions,
			Outcome:      fmt.Sprintf("Total %s per bulan membuat setiap tujuan punya tanggal selesai", FormatRupiah(alloc.Goals)),
		})
	}

	if alloc.Investment > 0 {
		strategies = append(strategies, Strategy{
			Name:         "Investasi rutin",
			Objective:    "Menumbuhkan aset di atas inflasi sesuai profil risiko",
			TargetAmount: alloc.Investment,
			Timeframe:    "berkelanjutan",
			Actions: []string{
				fmt.Sprintf("Autodebit %s per bulan mengikuti alokasi profil %s", FormatRupiah(alloc.Investment), finance.ResolveRiskTier(p)),
				"Evaluasi portofolio setahun sekali, bukan setiap pergerakan pasar",
			},
			Tradeoffs: []string{"Nilai investasi berfluktuasi, horizon panjang adalah syaratnya"},
			Outcome:   "Mesin akumulasi berjalan otomatis tanpa menunggu sisa uang",
		})
	}

	return strategies
}

func intentStrategies(p profile.FinancialProfile, agg finance.Aggregates, alloc finance.Allocation, intents narrative.Intents, feasibility *narrative.FeasibilityAssessment) []Strategy {
	var strategies []Strategy

	if feasibility != nil && intents.Lifestyle != nil {
		strategy := Strategy{
			Name:         fmt.Sprintf("Rencana keinginan: %s", intents.Lifestyle.Description),
			Objective:    "Menjawab keinginan yang kamu sebut tanpa merusak fondasi",
			TargetAmount: intents.Lifestyle.Amount,
			Timeframe:    "lihat hasil kelayakan",
			Outcome:      feasibility.Message,
		}
		switch feasibility.Status {
		case narrative.StatusFeasible:
			strategy.Actions = []string{"Jalankan, tapi tetap lewat pos tabungan khusus, bukan kartu kredit"}
		default:
			strategy.Actions = feasibility.Alternatives
		}
		strategies = append(strategies, strategy)
	}

	if intents.Marriage {
		strategies = append(strategies, Strategy{
			Name:      "Siapkan dana pernikahan",
			Objective: "Menikah tanpa memulai rumah tangga dengan utang",
			Timeframe: "sesuai tanggal rencana",
			Actions: []string{
				"Sepakati anggaran total dengan pasangan sejak awal",
				"Buka rekening bersama khusus untuk dana pernikahan",
			},
			Outcome: "Biaya pernikahan terkumpul tanpa paylater dan pinjaman",
		})
	}

	if intents.SideIncome {
		strategies = append(strategies, Strategy{
			Name:      "Bangun penghasilan sampingan",
			Objective: "Menambah kapasitas menabung dari sisi pemasukan",
			Timeframe: "1-6 bulan",
			Actions: []string{
				"Mulai dari keahlian yang sudah menghasilkan di pekerjaan utama",
				"Pisahkan rekening usaha sejak pemasukan pertama",
			},
			Outcome: "Penghasilan tambahan mempercepat semua target di rencana ini",
		})
	}

	if intents.HomePurchase {
		strategies = append(strategies, Strategy{
			Name:      "Siapkan DP rumah",
			Objective: "Masuk KPR dengan cicilan yang tidak mencekik",
			Timeframe: "12-36 bulan",
			Actions: []string{
				"Kumpulkan DP minimal 20% harga rumah incaran",
				fmt.Sprintf("Jaga total cicilan nanti tetap di bawah 35%% penghasilan (%s)", FormatRupiah(0.35*agg.MonthlyIncome)),
			},
			Outcome: "Rumah dibeli dengan struktur cicilan yang aman",
		})
	}

	return strategies
}
