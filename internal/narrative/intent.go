package narrative

import "strings"

type LifestyleType string

const (
	LifestyleRecurring LifestyleType = "recurring_cost"
	LifestyleOneTime   LifestyleType = "one_time_purchase"
)

type Intents struct {
	Insurance     bool `json:"insurance"`
	Marriage      bool `json:"marriage"`
	Confusion     bool `json:"confusion"`
	Investment    bool `json:"investment"`
	Debt          bool `json:"debt"`
	Emergency     bool `json:"emergency"`
	RentalUpgrade bool `json:"rental_upgrade"`
	HomePurchase  bool `json:"home_purchase"`
	Education     bool `json:"education"`
	Retirement    bool `json:"retirement"`
	Dependents    bool `json:"dependents"`
	SideIncome    bool `json:"side_income"`
	JobLoss       bool `json:"job_loss"`

	Lifestyle *LifestyleIntent `json:"lifestyle,omitempty"`
	Matched   []string         `json:"matched,omitempty"`
}

type LifestyleIntent struct {
	Type        LifestyleType `json:"type"`
	Description string        `json:"description"`
	Amount      float64       `json:"amount"`
}

var topicRules = []struct {
	keywords []string
	set      func(*Intents)
}{
	{[]string{"asuransi", "proteksi", "bpjs"}, func(i *Intents) { i.Insurance = true }},
	{[]string{"menikah", "pernikahan", "tunangan", "nikah"}, func(i *Intents) { i.Marriage = true }},
	{[]string{"bingung", "tidak tahu", "gak tau", "tidak paham", "tidak mengerti"}, func(i *Intents) { i.Confusion = true }},
	{[]string{"investasi", "reksa dana", "reksadana", "saham", "crypto", "kripto"}, func(i *Intents) { i.Investment = true }},
	{[]string{"hutang", "utang", "cicilan", "pinjaman", "paylater", "pinjol"}, func(i *Intents) { i.Debt = true }},
	{[]string{"dana darurat", "uang darurat", "tabungan darurat"}, func(i *Intents) { i.Emergency = true }},
	{[]string{"pendidikan", "sekolah anak", "biaya sekolah", "kuliah"}, func(i *Intents) { i.Education = true }},
	{[]string{"pensiun", "masa tua", "hari tua"}, func(i *Intents) { i.Retirement = true }},
	{[]string{"orang tua", "tanggungan", "menafkahi", "anak"}, func(i *Intents) { i.Dependents = true }},
	{[]string{"penghasilan tambahan", "usaha sampingan", "bisnis sampingan", "kerja sampingan", "freelance"}, func(i *Intents) { i.SideIncome = true }},
	{[]string{"phk", "kehilangan pekerjaan", "dipecat", "kontrak habis"}, func(i *Intents) { i.JobLoss = true }},
}

var homePurchasePhrases = []string{"beli rumah", "dp rumah", "kredit rumah", "punya rumah sendiri", "kpr"}

var rentalUpgradePhrases = []string{"kontrakan yang lebih", "sewa yang lebih", "ngontrak yang lebih"}

var rentalMovePlaces = []string{"kontrakan", "kos", "sewa"}

var purchaseItems = []string{"iphone", "handphone", "hp", "laptop", "mobil", "motor", "gadget", "kamera", "konsol", "sepeda", "tas"}

// ExtractIntents распознает темы и желания в свободном тексте пользователя.
func ExtractIntents(text string) Intents {
	var intents Intents
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return intents
	}

	for _, rule := range topicRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				rule.set(&intents)
				intents.Matched = append(intents.Matched, keyword)
				break
			}
		}
	}

	for _, phrase := range homePurchasePhrases {
		if strings.Contains(lower, phrase) {
			intents.HomePurchase = true
			intents.Matched = append(intents.Matched, phrase)
			break
		}
	}

	if phrase, ok := matchRentalUpgrade(lower); ok {
		intents.RentalUpgrade = true
		intents.Matched = append(intents.Matched, phrase)
	}

	intents.Lifestyle = extractLifestyle(lower, intents)

	return intents
}

func matchRentalUpgrade(lower string) (string, bool) {
	for _, phrase := range rentalUpgradePhrases {
		if strings.Contains(lower, phrase) {
			return phrase, true
		}
	}
	if strings.Contains(lower, "pindah") {
		for _, place := range rentalMovePlaces {
			if strings.Contains(lower, place) {
				return "pindah " + place, true
			}
		}
	}
	return "", false
}

func extractLifestyle(lower string, intents Intents) *LifestyleIntent {
	if intents.RentalUpgrade {
		amount, _ := ExtractAmount(lower)
		return &LifestyleIntent{
			Type:        LifestyleRecurring,
			Description: "pindah ke hunian sewa yang lebih baik",
			Amount:      amount,
		}
	}

	if intents.HomePurchase || !strings.Contains(lower, "beli") {
		return nil
	}

	for _, item := range purchaseItems {
		if !strings.Contains(lower, item) {
			continue
		}
		amount, _ := ExtractAmount(lower)
		return &LifestyleIntent{
			Type:        LifestyleOneTime,
			Description: "beli " + item,
			Amount:      amount,
		}
	}
	return nil
}
