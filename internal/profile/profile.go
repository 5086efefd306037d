package profile

type Frequency string

type MaritalStatus string

type DebtType string

type PolicyType string

type RiskTier string

type GoalPriority string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"

	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"

	DebtMortgage     DebtType = "mortgage"
	DebtVehicle      DebtType = "vehicle"
	DebtCreditCard   DebtType = "credit_card"
	DebtPaylater     DebtType = "paylater"
	DebtPersonalLoan DebtType = "personal_loan"
	DebtOther        DebtType = "other"

	PolicyLife            PolicyType = "life"
	PolicyCriticalIllness PolicyType = "critical_illness"
	PolicyUnitLink        PolicyType = "unit_link"
	PolicyVehicle         PolicyType = "vehicle"
	PolicyProperty        PolicyType = "property"
	PolicyEducation       PolicyType = "education"
	PolicyOther           PolicyType = "other"

	RiskConservative RiskTier = "conservative"
	RiskModerate     RiskTier = "moderate"
	RiskAggressive   RiskTier = "aggressive"

	GoalPriorityHigh   GoalPriority = "high"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityLow    GoalPriority = "low"
)

type FinancialProfile struct {
	Personal      PersonalInfo  `json:"personal"`
	Income        Income        `json:"income"`
	Expenses      Expenses      `json:"expenses"`
	Debts         []Debt        `json:"debts,omitempty"`
	EmergencyFund EmergencyFund `json:"emergency_fund"`
	Assets        Assets        `json:"assets"`
	Insurance     Insurance     `json:"insurance"`
	Goals         []Goal        `json:"goals,omitempty"`
	Risk          RiskProfile   `json:"risk_profile"`
	Narrative     string        `json:"narrative,omitempty"`
}

type PersonalInfo struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	MaritalStatus MaritalStatus `json:"marital_status"`
	Dependents    int           `json:"dependents"`
	Employment    string        `json:"employment,omitempty"`
}

type Income struct {
	Salary  float64        `json:"salary"`
	Spouse  float64        `json:"spouse"`
	Side    float64        `json:"side"`
	Sources []IncomeSource `json:"sources,omitempty"`
}

type IncomeSource struct {
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
}

type Expenses struct {
	Housing       Housing         `json:"housing"`
	Food          Food            `json:"food"`
	Transport     Transport       `json:"transport"`
	Household     Household       `json:"household"`
	Health        Health          `json:"health"`
	Family        Family          `json:"family"`
	Lifestyle     Lifestyle       `json:"lifestyle"`
	Subscriptions []Subscription  `json:"subscriptions,omitempty"`
	Custom        []CustomExpense `json:"custom,omitempty"`
}

type Housing struct {
	Rent        float64 `json:"rent"`
	Electricity float64 `json:"electricity"`
	Water       float64 `json:"water"`
	Internet    float64 `json:"internet"`
}

type Food struct {
	DailyMeals  float64 `json:"daily_meals"`
	DailySnacks float64 `json:"daily_snacks"`
	Groceries   float64 `json:"groceries"`
}

type Transport struct {
	Fuel          float64 `json:"fuel"`
	PublicTransit float64 `json:"public_transit"`
	RideHailing   float64 `json:"ride_hailing"`
	Parking       float64 `json:"parking"`
}

type Household struct {
	Essentials float64 `json:"essentials"`
	Laundry    float64 `json:"laundry"`
	Helper     float64 `json:"helper"`
}

type Health struct {
	Medication float64 `json:"medication"`
	Checkups   float64 `json:"checkups"`
}

type Family struct {
	ChildCare     float64 `json:"child_care"`
	Education     float64 `json:"education"`
	ParentSupport float64 `json:"parent_support"`
}

type Lifestyle struct {
	Entertainment float64 `json:"entertainment"`
	DiningOut     float64 `json:"dining_out"`
	Shopping      float64 `json:"shopping"`
	Hobbies       float64 `json:"hobbies"`
}

type Subscription struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Active bool    `json:"active"`
}

type CustomExpense struct {
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
}

type Debt struct {
	Name            string   `json:"name"`
	Type            DebtType `json:"type"`
	Balance         float64  `json:"balance"`
	AnnualRate      float64  `json:"annual_rate"`
	MonthlyPayment  float64  `json:"monthly_payment"`
	RemainingMonths int      `json:"remaining_months"`
}

type EmergencyFund struct {
	Current float64 `json:"current"`
}

type Assets struct {
	Liquid     LiquidAssets     `json:"liquid"`
	Investment InvestmentAssets `json:"investment"`
	Real       RealAssets       `json:"real"`
}

type LiquidAssets struct {
	Cash        float64 `json:"cash"`
	Savings     float64 `json:"savings"`
	Deposit     float64 `json:"deposit"`
	MoneyMarket float64 `json:"money_market"`
}

type InvestmentAssets struct {
	BondFunds   float64 `json:"bond_funds"`
	EquityFunds float64 `json:"equity_funds"`
	Stocks      float64 `json:"stocks"`
	Gold        float64 `json:"gold"`
}

type RealAssets struct {
	Property float64 `json:"property"`
	Vehicle  float64 `json:"vehicle"`
	Other    float64 `json:"other"`
}

type Insurance struct {
	PublicHealth  HealthCover `json:"public_health"`
	PrivateHealth HealthCover `json:"private_health"`
	Policies      []Policy    `json:"policies,omitempty"`
}

type HealthCover struct {
	Held           bool     `json:"held"`
	MonthlyPremium float64  `json:"monthly_premium"`
	Benefits       []string `json:"benefits,omitempty"`
}

type Policy struct {
	Name           string     `json:"name"`
	Type           PolicyType `json:"type"`
	MonthlyPremium float64    `json:"monthly_premium"`
	CoverageAmount float64    `json:"coverage_amount"`
}

type Goal struct {
	Name      string       `json:"name"`
	Target    float64      `json:"target"`
	Collected float64      `json:"collected"`
	Months    int          `json:"months"`
	Priority  GoalPriority `json:"priority"`
	RiskTier  RiskTier     `json:"risk_tier"`
}

type RiskProfile struct {
	Tolerance RiskTier `json:"tolerance"`
	Score     int      `json:"score"`
}

var debtTypeLabels = map[DebtType]string{
	DebtMortgage:     "KPR",
	DebtVehicle:      "Kredit Kendaraan",
	DebtCreditCard:   "Kartu Kredit",
	DebtPaylater:     "Paylater",
	DebtPersonalLoan: "Pinjaman Pribadi",
	DebtOther:        "Pinjaman Lain",
}

// Label возвращает отображаемое название типа долга.
func (t DebtType) Label() string {
	if label, ok := debtTypeLabels[t]; ok {
		return label
	}
	return debtTypeLabels[DebtOther]
}

// NormalizeRiskTier приводит профиль риска к одному из трех уровней.
func NormalizeRiskTier(tier RiskTier) RiskTier {
	switch tier {
	case RiskConservative, RiskModerate, RiskAggressive:
		return tier
	default:
		return RiskModerate
	}
}
