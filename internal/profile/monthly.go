package profile

// daysPerMonth задает плановый месяц для всех дневных сумм.
const daysPerMonth = 30

const weeksPerMonth = 4

// MonthlyAmount приводит сумму с указанной периодичностью к месячной.
func MonthlyAmount(amount float64, freq Frequency) float64 {
	switch freq {
	case FrequencyDaily:
		return amount * daysPerMonth
	case FrequencyWeekly:
		return amount * weeksPerMonth
	case FrequencyYearly:
		return amount / 12
	default:
		return amount
	}
}

// MonthlyTotal суммирует все источники дохода за месяц.
func (i Income) MonthlyTotal() float64 {
	total := i.Salary + i.Spouse + i.Side
	for _, source := range i.Sources {
		total += MonthlyAmount(source.Amount, source.Frequency)
	}
	return total
}

// MonthlyTotal суммирует расходы всех категорий, активные подписки и дополнительные статьи.
func (e Expenses) MonthlyTotal() float64 {
	total := e.Housing.Rent + e.Housing.Electricity + e.Housing.Water + e.Housing.Internet
	total += e.Food.DailyMeals*daysPerMonth + e.Food.DailySnacks*daysPerMonth + e.Food.Groceries
	total += e.Transport.Fuel + e.Transport.PublicTransit + e.Transport.RideHailing + e.Transport.Parking
	total += e.Household.Essentials + e.Household.Laundry + e.Household.Helper
	total += e.Health.Medication + e.Health.Checkups
	total += e.Family.ChildCare + e.Family.Education + e.Family.ParentSupport
	total += e.Lifestyle.Monthly()
	total += e.ActiveSubscriptions()
	for _, custom := range e.Custom {
		total += MonthlyAmount(custom.Amount, custom.Frequency)
	}
	return total
}

// ActiveSubscriptions суммирует только действующие подписки.
func (e Expenses) ActiveSubscriptions() float64 {
	var total float64
	for _, sub := range e.Subscriptions {
		if sub.Active {
			total += sub.Amount
		}
	}
	return total
}

// Monthly суммирует траты на образ жизни за месяц.
func (l Lifestyle) Monthly() float64 {
	return l.Entertainment + l.DiningOut + l.Shopping + l.Hobbies
}

// Total суммирует ликвидные активы.
func (a LiquidAssets) Total() float64 {
	return a.Cash + a.Savings + a.Deposit + a.MoneyMarket
}

// Total суммирует инвестиционные активы.
func (a InvestmentAssets) Total() float64 {
	return a.BondFunds + a.EquityFunds + a.Stocks + a.Gold
}

// Total суммирует материальные активы.
func (a RealAssets) Total() float64 {
	return a.Property + a.Vehicle + a.Other
}

// Total суммирует все группы активов.
func (a Assets) Total() float64 {
	return a.Liquid.Total() + a.Investment.Total() + a.Real.Total()
}

// MonthlyPremiums суммирует страховые взносы за месяц.
func (ins Insurance) MonthlyPremiums() float64 {
	var total float64
	if ins.PublicHealth.Held {
		total += ins.PublicHealth.MonthlyPremium
	}
	if ins.PrivateHealth.Held {
		total += ins.PrivateHealth.MonthlyPremium
	}
	for _, policy := range ins.Policies {
		total += policy.MonthlyPremium
	}
	return total
}

// HasHealthCover сообщает, есть ли хоть одна действующая медицинская защита.
func (ins Insurance) HasHealthCover() bool {
	return ins.PublicHealth.Held || ins.PrivateHealth.Held
}

// HasPolicy сообщает, есть ли полис указанного типа.
func (ins Insurance) HasPolicy(policyType PolicyType) bool {
	for _, policy := range ins.Policies {
		if policy.Type == policyType {
			return true
		}
	}
	return false
}
