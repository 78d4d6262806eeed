// Package calc holds the calculator implementations: pure, stateless
// functions from validated inputs to closed-form numeric results.
package calc

import "math"

// LoanResult is the outcome of a fixed-rate amortized loan.
type LoanResult struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
}

// Loan computes the fixed monthly payment for a principal at an annual
// interest rate (percent) over a term in years.
func Loan(principal, annualRatePct float64, years int) LoanResult {
	n := float64(years * 12)
	monthlyRate := annualRatePct / 100 / 12

	var payment float64
	if monthlyRate == 0 {
		payment = principal / n
	} else {
		growth := math.Pow(1+monthlyRate, n)
		payment = principal * (monthlyRate * growth) / (growth - 1)
	}

	total := payment * n
	return LoanResult{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - principal,
	}
}

// Mortgage computes the monthly payment on a home price minus down payment.
func Mortgage(homePrice, downPayment, annualRatePct float64, years int) LoanResult {
	return Loan(homePrice-downPayment, annualRatePct, years)
}

// AutoLoan computes the payment on a vehicle price after trade-in value.
func AutoLoan(vehiclePrice, tradeIn, annualRatePct float64, years int) LoanResult {
	return Loan(vehiclePrice-tradeIn, annualRatePct, years)
}

// AmortizationRow is one month of an amortization schedule.
type AmortizationRow struct {
	Month     int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// Amortization produces the full month-by-month schedule for a loan.
func Amortization(principal, annualRatePct float64, years int) []AmortizationRow {
	res := Loan(principal, annualRatePct, years)
	monthlyRate := annualRatePct / 100 / 12
	months := years * 12

	rows := make([]AmortizationRow, 0, months)
	balance := principal
	for m := 1; m <= months; m++ {
		interest := balance * monthlyRate
		paid := res.MonthlyPayment - interest
		balance -= paid
		if m == months || balance < 0 {
			// Absorb rounding drift into the final row.
			paid += balance
			balance = 0
		}
		rows = append(rows, AmortizationRow{
			Month:     m,
			Payment:   res.MonthlyPayment,
			Principal: paid,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return rows
}

// SimpleInterest returns the interest accrued and final amount for a
// principal at an annual rate (percent) over a period in years.
func SimpleInterest(principal, annualRatePct, years float64) (interest, total float64) {
	interest = principal * annualRatePct / 100 * years
	return interest, principal + interest
}

// Investment projects growth with monthly compounding and a recurring
// monthly contribution.
func Investment(initial, monthlyContribution, annualRatePct float64, years int) (finalValue, totalContributed, totalGrowth float64) {
	monthlyRate := annualRatePct / 100 / 12
	months := years * 12

	value := initial
	for m := 0; m < months; m++ {
		value = value*(1+monthlyRate) + monthlyContribution
	}
	totalContributed = initial + monthlyContribution*float64(months)
	return value, totalContributed, value - totalContributed
}

// Retirement estimates the nest egg at retirement age given current savings
// and a monthly contribution, then the sustainable monthly income over the
// payout years at the same return rate.
func Retirement(currentAge, retireAge int, currentSavings, monthlyContribution, annualRatePct float64, payoutYears int) (nestEgg, monthlyIncome float64) {
	years := retireAge - currentAge
	if years < 0 {
		years = 0
	}
	nestEgg, _, _ = Investment(currentSavings, monthlyContribution, annualRatePct, years)

	monthlyRate := annualRatePct / 100 / 12
	n := float64(payoutYears * 12)
	if n == 0 {
		return nestEgg, 0
	}
	if monthlyRate == 0 {
		return nestEgg, nestEgg / n
	}
	growth := math.Pow(1+monthlyRate, n)
	return nestEgg, nestEgg * (monthlyRate * growth) / (growth - 1)
}

// Inflation returns what an amount today is worth after years of inflation
// at an annual rate (percent), and the equivalent future cost of the same
// purchasing power.
func Inflation(amount, annualRatePct float64, years int) (futureCost, presentValue float64) {
	factor := math.Pow(1+annualRatePct/100, float64(years))
	return amount * factor, amount / factor
}

// SalesTax splits a pre-tax price into tax and total.
func SalesTax(price, ratePct float64) (tax, total float64) {
	tax = price * ratePct / 100
	return tax, price + tax
}

// Tip computes the tip, total, and per-person share for a bill.
func Tip(bill, tipPct float64, people int) (tip, total, perPerson float64) {
	if people < 1 {
		people = 1
	}
	tip = bill * tipPct / 100
	total = bill + tip
	return tip, total, total / float64(people)
}

// Convert applies a fixed exchange rate.
func Convert(amount, rate float64) float64 {
	return amount * rate
}
