package ui

import (
	"fmt"
	"strconv"
	"time"

	"omnicalc/internal/calc"
)

// usdToPKRRate is the fixed conversion rate used by the currency converter.
const usdToPKRRate = 278.50

var sexOptions = []selectOption{
	{Value: "male", Label: "Male"},
	{Value: "female", Label: "Female"},
}

// calcForms maps a calculator slug to its form definition. Every seeded
// calculator has an entry here; slugs without one render a not-found page.
var calcForms = map[string]calcForm{
	"simple-interest": {
		Fields: []formField{
			{Name: "principal", Label: "Principal", Kind: fieldNumber},
			{Name: "rate", Label: "Annual interest rate (%)", Kind: fieldNumber},
			{Name: "years", Label: "Time (years)", Kind: fieldNumber},
		},
		Compute: func(v formValues) (calcResult, error) {
			principal, err := v.float("principal")
			if err != nil {
				return calcResult{}, err
			}
			rate, err := v.float("rate")
			if err != nil {
				return calcResult{}, err
			}
			years, err := v.float("years")
			if err != nil {
				return calcResult{}, err
			}
			interest, total := calc.SimpleInterest(principal, rate, years)
			return calcResult{Rows: []resultRow{
				{Label: "Interest earned", Value: money(interest)},
				{Label: "Total amount", Value: money(total)},
			}}, nil
		},
	},

	"mortgage-calculator": {
		Fields: []formField{
			{Name: "homePrice", Label: "Home price", Kind: fieldNumber},
			{Name: "downPayment", Label: "Down payment", Kind: fieldNumber, Default: "0"},
			{Name: "rate", Label: "Annual interest rate (%)", Kind: fieldNumber},
			{Name: "years", Label: "Loan term (years)", Kind: fieldInteger, Default: "30"},
		},
		Compute: func(v formValues) (calcResult, error) {
			price, err := v.float("homePrice")
			if err != nil {
				return calcResult{}, err
			}
			down, err := v.float("downPayment")
			if err != nil {
				return calcResult{}, err
			}
			rate, err := v.float("rate")
			if err != nil {
				return calcResult{}, err
			}
			years, err := v.integer("years")
			if err != nil {
				return calcResult{}, err
			}
			if years <= 0 {
				return calcResult{}, fmt.Errorf("loan term must be positive")
			}
			res := calc.Mortgage(price, down, rate, years)
			return calcResult{Rows: loanRows(res)}, nil
		},
	},

	"loan-calculator": {
		Fields: []formField{
			{Name: "principal", Label: "Loan amount", Kind: fieldNumber},
			{Name: "rate", Label: "Annual interest rate (%)", Kind: fieldNumber},
			{Name: "years", Label: "Loan term (years)", Kind: fieldInteger},
		},
		Compute: func(v formValues) (calcResult, error) {
			principal, err := v.float("principal")
			if err != nil {
				return calcResult{}, err
			}
			rate, err := v.float("rate")
			if err != nil {
				return calcResult{}, err
			}
			years, err := v.integer("years")
			if err != nil {
				return calcResult{}, err
			}
			if years <= 0 {
				return calcResult{}, fmt.Errorf("loan term must be positive")
			}
			return calcResult{Rows: loanRows(calc.Loan(principal, rate, years))}, nil
		},
	},

	"auto-loan-calculator": {
		Fields: []formField{
			{Name: "vehiclePrice", Label: "Vehicle price", Kind: fieldNumber},
			{Name: "tradeIn", Label: "Trade-in value", Kind: fieldNumber, Default: "0"},
			{Name: "rate", Label: "Annual interest rate (%)", Kind: fieldNumber},
			{Name: "years", Label: "Loan term (years)", Kind: fieldInteger, Default: "5"},
		},
		Compute: func(v formValues) (calcResult, error) {
			price, err := v.float("vehiclePrice")
			if err != nil {
				return calcResult{}, err
			}
			tradeIn, err := v.float("tradeIn")
			if err != nil {
				return calcResult{}, err
			}
			rate, err := v.float("rate")
			if err != nil {
				return calcResult{}, err
			}
			years, err := v.integer("years")
			if err != nil {
				return calcResult{}, err
			}
			if years <= 0 {
				return calcResult{}, fmt.Errorf("loan term must be positive")
			}
			return calcResult{Rows: loanRows(calc.AutoLoan(price, tradeIn, rate, years))}, nil
		},
	},

	"amortization-calculator": {
		Fields: []formField{
			{Name: "principal", Label: "Loan amount", Kind: fieldNumber},
			{Name: "rate", Label: "Annual interest rate (%)", Kind: fieldNumber},
			{Name: "years", Label: "Loan term (years)", Kind: fieldInteger},
		},
		Compute: func(v formValues) (calcResult, error) {
			principal, err := v.float("principal")
			if err != nil {
				return calcResult{}, err
			}
			rate, err := v.float("rate")
			if err != nil {
				return calcResult{}, err
			}
			years, err := v.integer("years")
			if err != nil {
				return calcResult{}, err
			}
			if years <= 0 || years > 50 {
				return calcResult{}, fmt.Errorf("loan term must be between 1 and 50 years")
			}
			schedule := calc.Amortization(principal, rate, years)
			table := &resultTable{Headers: []string{"Month", "Payment", "Principal", "Interest", "Balance"}}
			for _, row := range schedule {
				table.Rows = append(table.Rows, []string{
					strconv.Itoa(row.Month),
					money(row.Payment),
					money(row.Principal),
					money(row.Interest),
					money(row.Balance),
				})
			}
			res := calc.Loan(principal, rate, years)
			return calcResult{Rows: loanRows(res), Table: table}, nil
		},
	},

	"investment-calculator": {
		Fields: []formField{
			{Name: "initial", Label: "Initial investment", Kind: fieldNumber},
			{Name: "monthly", Label: "Monthly contribution", Kind: fieldNumber, Default: "0"},
			{Name: "rate", Label: "Annual return rate (%)", Kind: fieldNumber},
			{Name: "years", Label: "Years to grow", Kind: fieldInteger},
		},
		Compute: func(v formValues) (calcResult, error) {
			initial, err := v.float("initial")
			if err != nil {
				return calcResult{}, err
			}
			monthly, err := v.float("monthly")
			if err != nil {
				return calcResult{}, err
			}
			rate, err := v.float("rate")
			if err != nil {
				return calcResult{}, err
			}
			years, err := v.integer("years")
			if err != nil {
				return calcResult{}, err
			}
			final, contributed, growth := calc.Investment(initial, monthly, rate, years)
			return calcResult{Rows: []resultRow{
				{Label: "Final value", Value: money(final)},
				{Label: "Total contributed", Value: money(contributed)},
				{Label: "Total growth", Value: money(growth)},
			}}, nil
		},
	},

	"retirement-calculator": {
		Fields: []formField{
			{Name: "currentAge", Label: "Current age", Kind: fieldInteger},
			{Name: "retireAge", Label: "Retirement age", Kind: fieldInteger, Default: "65"},
			{Name: "savings", Label: "Current savings", Kind: fieldNumber, Default: "0"},
			{Name: "monthly", Label: "Monthly contribution", Kind: fieldNumber},
			{Name: "rate", Label: "Annual return rate (%)", Kind: fieldNumber, Default: "7"},
			{Name: "payoutYears", Label: "Years of retirement income", Kind: fieldInteger, Default: "25"},
		},
		Compute: func(v formValues) (calcResult, error) {
			currentAge, err := v.integer("currentAge")
			if err != nil {
				return calcResult{}, err
			}
			retireAge, err := v.integer("retireAge")
			if err != nil {
				return calcResult{}, err
			}
			savings, err := v.float("savings")
			if err != nil {
				return calcResult{}, err
			}
			monthly, err := v.float("monthly")
			if err != nil {
				return calcResult{}, err
			}
			rate, err := v.float("rate")
			if err != nil {
				return calcResult{}, err
			}
			payoutYears, err := v.integer("payoutYears")
			if err != nil {
				return calcResult{}, err
			}
			if retireAge <= currentAge {
				return calcResult{}, fmt.Errorf("retirement age must be greater than current age")
			}
			nestEgg, income := calc.Retirement(currentAge, retireAge, savings, monthly, rate, payoutYears)
			return calcResult{Rows: []resultRow{
				{Label: "Savings at retirement", Value: money(nestEgg)},
				{Label: "Monthly retirement income", Value: money(income)},
			}}, nil
		},
	},

	"inflation-calculator": {
		Fields: []formField{
			{Name: "amount", Label: "Amount today", Kind: fieldNumber},
			{Name: "rate", Label: "Annual inflation rate (%)", Kind: fieldNumber, Default: "3"},
			{Name: "years", Label: "Years", Kind: fieldInteger},
		},
		Compute: func(v formValues) (calcResult, error) {
			amount, err := v.float("amount")
			if err != nil {
				return calcResult{}, err
			}
			rate, err := v.float("rate")
			if err != nil {
				return calcResult{}, err
			}
			years, err := v.integer("years")
			if err != nil {
				return calcResult{}, err
			}
			futureCost, presentValue := calc.Inflation(amount, rate, years)
			return calcResult{Rows: []resultRow{
				{Label: "Future cost of the same basket", Value: money(futureCost)},
				{Label: "Future purchasing power of the amount", Value: money(presentValue)},
			}}, nil
		},
	},

	"usd-to-pkr-converter": {
		Fields: []formField{
			{Name: "amount", Label: "Amount (USD)", Kind: fieldNumber},
		},
		Compute: func(v formValues) (calcResult, error) {
			amount, err := v.float("amount")
			if err != nil {
				return calcResult{}, err
			}
			return calcResult{Rows: []resultRow{
				{Label: "Pakistani Rupees", Value: money(calc.Convert(amount, usdToPKRRate))},
				{Label: "Exchange rate", Value: fmt.Sprintf("1 USD = %.2f PKR", usdToPKRRate)},
			}}, nil
		},
	},

	"sales-tax-calculator": {
		Fields: []formField{
			{Name: "price", Label: "Price before tax", Kind: fieldNumber},
			{Name: "rate", Label: "Tax rate (%)", Kind: fieldNumber},
		},
		Compute: func(v formValues) (calcResult, error) {
			price, err := v.float("price")
			if err != nil {
				return calcResult{}, err
			}
			rate, err := v.float("rate")
			if err != nil {
				return calcResult{}, err
			}
			tax, total := calc.SalesTax(price, rate)
			return calcResult{Rows: []resultRow{
				{Label: "Sales tax", Value: money(tax)},
				{Label: "Total price", Value: money(total)},
			}}, nil
		},
	},

	"bmi-calculator": {
		Fields: []formField{
			{Name: "weight", Label: "Weight (kg)", Kind: fieldNumber},
			{Name: "height", Label: "Height (cm)", Kind: fieldNumber},
		},
		Compute: func(v formValues) (calcResult, error) {
			weight, err := v.float("weight")
			if err != nil {
				return calcResult{}, err
			}
			height, err := v.float("height")
			if err != nil {
				return calcResult{}, err
			}
			if weight <= 0 || height <= 0 {
				return calcResult{}, fmt.Errorf("weight and height must be positive")
			}
			res := calc.BMI(weight, height)
			return calcResult{Rows: []resultRow{
				{Label: "BMI", Value: rounded(res.BMI, 1)},
				{Label: "Category", Value: res.Category},
			}}, nil
		},
	},

	"period-calculator": {
		Fields: []formField{
			{Name: "lastPeriod", Label: "First day of last period", Kind: fieldDate},
			{Name: "cycle", Label: "Cycle length (days)", Kind: fieldInteger, Default: "28"},
		},
		Compute: func(v formValues) (calcResult, error) {
			last, err := v.date("lastPeriod")
			if err != nil {
				return calcResult{}, err
			}
			cycle, err := v.integer("cycle")
			if err != nil {
				return calcResult{}, err
			}
			if cycle < 20 || cycle > 45 {
				return calcResult{}, fmt.Errorf("cycle length must be between 20 and 45 days")
			}
			res := calc.Period(last, cycle)
			return calcResult{Rows: []resultRow{
				{Label: "Next period", Value: dateOnly(res.NextPeriod)},
				{Label: "Estimated ovulation", Value: dateOnly(res.OvulationDate)},
				{Label: "Fertile window", Value: dateOnly(res.FertileWindowStart) + " – " + dateOnly(res.FertileWindowEnd)},
			}}, nil
		},
	},

	"calorie-calculator": {
		Fields: []formField{
			{Name: "sex", Label: "Sex", Kind: fieldSelect, Options: sexOptions},
			{Name: "weight", Label: "Weight (kg)", Kind: fieldNumber},
			{Name: "height", Label: "Height (cm)", Kind: fieldNumber},
			{Name: "age", Label: "Age (years)", Kind: fieldInteger},
			{Name: "activity", Label: "Activity level", Kind: fieldSelect, Options: []selectOption{
				{Value: calc.ActivitySedentary, Label: "Sedentary (little or no exercise)"},
				{Value: calc.ActivityLight, Label: "Light (1-3 days/week)"},
				{Value: calc.ActivityModerate, Label: "Moderate (3-5 days/week)"},
				{Value: calc.ActivityActive, Label: "Active (6-7 days/week)"},
				{Value: calc.ActivityExtra, Label: "Extra active (physical job)"},
			}},
		},
		Compute: func(v formValues) (calcResult, error) {
			weight, err := v.float("weight")
			if err != nil {
				return calcResult{}, err
			}
			height, err := v.float("height")
			if err != nil {
				return calcResult{}, err
			}
			age, err := v.integer("age")
			if err != nil {
				return calcResult{}, err
			}
			male := v.choice("sex") == "male"
			res := calc.Calories(male, weight, height, age, v.choice("activity"))
			return calcResult{Rows: []resultRow{
				{Label: "Maintenance", Value: fmt.Sprintf("%d kcal/day", res.Maintenance)},
				{Label: "Mild weight loss (-0.25 kg/week)", Value: fmt.Sprintf("%d kcal/day", res.MildLoss)},
				{Label: "Weight loss (-0.5 kg/week)", Value: fmt.Sprintf("%d kcal/day", res.WeightLoss)},
				{Label: "Extreme weight loss (-1 kg/week)", Value: fmt.Sprintf("%d kcal/day", res.ExtremeLoss)},
			}}, nil
		},
	},

	"due-date-calculator": {
		Fields: []formField{
			{Name: "lastPeriod", Label: "First day of last period", Kind: fieldDate},
		},
		Compute: func(v formValues) (calcResult, error) {
			last, err := v.date("lastPeriod")
			if err != nil {
				return calcResult{}, err
			}
			due, weeks := calc.DueDate(last, time.Now())
			return calcResult{Rows: []resultRow{
				{Label: "Estimated due date", Value: dateOnly(due)},
				{Label: "Current gestational age", Value: fmt.Sprintf("%d weeks", weeks)},
			}}, nil
		},
	},

	"body-fat-calculator": {
		Fields: []formField{
			{Name: "sex", Label: "Sex", Kind: fieldSelect, Options: sexOptions},
			{Name: "height", Label: "Height (cm)", Kind: fieldNumber},
			{Name: "neck", Label: "Neck circumference (cm)", Kind: fieldNumber},
			{Name: "waist", Label: "Waist circumference (cm)", Kind: fieldNumber},
			{Name: "hip", Label: "Hip circumference (cm, women only)", Kind: fieldNumber, Default: "0"},
		},
		Compute: func(v formValues) (calcResult, error) {
			male := v.choice("sex") == "male"
			height, err := v.float("height")
			if err != nil {
				return calcResult{}, err
			}
			neck, err := v.float("neck")
			if err != nil {
				return calcResult{}, err
			}
			waist, err := v.float("waist")
			if err != nil {
				return calcResult{}, err
			}
			hip, err := v.float("hip")
			if err != nil {
				return calcResult{}, err
			}
			if male && waist <= neck {
				return calcResult{}, fmt.Errorf("waist must be larger than neck")
			}
			if !male && waist+hip <= neck {
				return calcResult{}, fmt.Errorf("waist plus hip must be larger than neck")
			}
			pct := calc.BodyFat(male, height, neck, waist, hip)
			return calcResult{Rows: []resultRow{
				{Label: "Estimated body fat", Value: rounded(pct, 1) + " %"},
			}}, nil
		},
	},

	"bmr-calculator": {
		Fields: []formField{
			{Name: "sex", Label: "Sex", Kind: fieldSelect, Options: sexOptions},
			{Name: "weight", Label: "Weight (kg)", Kind: fieldNumber},
			{Name: "height", Label: "Height (cm)", Kind: fieldNumber},
			{Name: "age", Label: "Age (years)", Kind: fieldInteger},
		},
		Compute: func(v formValues) (calcResult, error) {
			weight, err := v.float("weight")
			if err != nil {
				return calcResult{}, err
			}
			height, err := v.float("height")
			if err != nil {
				return calcResult{}, err
			}
			age, err := v.integer("age")
			if err != nil {
				return calcResult{}, err
			}
			bmr := calc.BMR(v.choice("sex") == "male", weight, height, age)
			return calcResult{Rows: []resultRow{
				{Label: "Basal Metabolic Rate", Value: fmt.Sprintf("%.0f kcal/day", bmr)},
			}}, nil
		},
	},

	"ideal-weight-calculator": {
		Fields: []formField{
			{Name: "sex", Label: "Sex", Kind: fieldSelect, Options: sexOptions},
			{Name: "height", Label: "Height (cm)", Kind: fieldNumber},
		},
		Compute: func(v formValues) (calcResult, error) {
			height, err := v.float("height")
			if err != nil {
				return calcResult{}, err
			}
			res := calc.IdealWeight(v.choice("sex") == "male", height)
			return calcResult{Rows: []resultRow{
				{Label: "Robinson formula", Value: rounded(res.RobinsonKg, 1) + " kg"},
				{Label: "Devine formula", Value: rounded(res.DevineKg, 1) + " kg"},
			}}, nil
		},
	},

	"percentage-calculator": {
		Fields: []formField{
			{Name: "mode", Label: "What do you want to find?", Kind: fieldSelect, Options: []selectOption{
				{Value: "percent-of", Label: "X % of Y"},
				{Value: "what-percent", Label: "X is what % of Y"},
				{Value: "percent-change", Label: "% change from X to Y"},
			}},
			{Name: "x", Label: "X", Kind: fieldNumber},
			{Name: "y", Label: "Y", Kind: fieldNumber},
		},
		Compute: func(v formValues) (calcResult, error) {
			x, err := v.float("x")
			if err != nil {
				return calcResult{}, err
			}
			y, err := v.float("y")
			if err != nil {
				return calcResult{}, err
			}
			switch v.choice("mode") {
			case "what-percent":
				pct, err := calc.WhatPercent(x, y)
				if err != nil {
					return calcResult{}, err
				}
				return calcResult{Rows: []resultRow{
					{Label: fmt.Sprintf("%s is", number(x)), Value: rounded(pct, 2) + " % of " + number(y)},
				}}, nil
			case "percent-change":
				pct, err := calc.PercentChange(x, y)
				if err != nil {
					return calcResult{}, err
				}
				return calcResult{Rows: []resultRow{
					{Label: "Change", Value: rounded(pct, 2) + " %"},
				}}, nil
			default:
				return calcResult{Rows: []resultRow{
					{Label: fmt.Sprintf("%s %% of %s", number(x), number(y)), Value: number(calc.PercentOf(x, y))},
				}}, nil
			}
		},
	},

	"fraction-calculator": {
		Fields: []formField{
			{Name: "num1", Label: "First numerator", Kind: fieldInteger},
			{Name: "den1", Label: "First denominator", Kind: fieldInteger},
			{Name: "op", Label: "Operation", Kind: fieldSelect, Options: []selectOption{
				{Value: "+", Label: "Add"},
				{Value: "-", Label: "Subtract"},
				{Value: "*", Label: "Multiply"},
				{Value: "/", Label: "Divide"},
			}},
			{Name: "num2", Label: "Second numerator", Kind: fieldInteger},
			{Name: "den2", Label: "Second denominator", Kind: fieldInteger},
		},
		Compute: func(v formValues) (calcResult, error) {
			num1, err := v.int64Val("num1")
			if err != nil {
				return calcResult{}, err
			}
			den1, err := v.int64Val("den1")
			if err != nil {
				return calcResult{}, err
			}
			num2, err := v.int64Val("num2")
			if err != nil {
				return calcResult{}, err
			}
			den2, err := v.int64Val("den2")
			if err != nil {
				return calcResult{}, err
			}
			res, err := calc.FractionOp(
				calc.Fraction{Num: num1, Den: den1},
				calc.Fraction{Num: num2, Den: den2},
				v.choice("op"),
			)
			if err != nil {
				return calcResult{}, err
			}
			return calcResult{Rows: []resultRow{
				{Label: "Result", Value: res.String()},
			}}, nil
		},
	},

	"random-number-generator": {
		Fields: []formField{
			{Name: "min", Label: "Minimum", Kind: fieldInteger, Default: "1"},
			{Name: "max", Label: "Maximum", Kind: fieldInteger, Default: "100"},
		},
		Compute: func(v formValues) (calcResult, error) {
			min, err := v.int64Val("min")
			if err != nil {
				return calcResult{}, err
			}
			max, err := v.int64Val("max")
			if err != nil {
				return calcResult{}, err
			}
			n, err := calc.RandomInt(min, max)
			if err != nil {
				return calcResult{}, err
			}
			return calcResult{Rows: []resultRow{
				{Label: fmt.Sprintf("Random number between %d and %d", min, max), Value: strconv.FormatInt(n, 10)},
			}}, nil
		},
	},

	"gcd-calculator": {
		Fields: []formField{
			{Name: "a", Label: "First integer", Kind: fieldInteger},
			{Name: "b", Label: "Second integer", Kind: fieldInteger},
		},
		Compute: func(v formValues) (calcResult, error) {
			a, err := v.int64Val("a")
			if err != nil {
				return calcResult{}, err
			}
			b, err := v.int64Val("b")
			if err != nil {
				return calcResult{}, err
			}
			return calcResult{Rows: []resultRow{
				{Label: "Greatest common divisor", Value: strconv.FormatInt(calc.GCD(a, b), 10)},
			}}, nil
		},
	},

	"pace-calculator": {
		Fields: []formField{
			{Name: "distance", Label: "Distance (km)", Kind: fieldNumber},
			{Name: "hours", Label: "Hours", Kind: fieldInteger, Default: "0"},
			{Name: "minutes", Label: "Minutes", Kind: fieldInteger, Default: "0"},
			{Name: "seconds", Label: "Seconds", Kind: fieldInteger, Default: "0"},
		},
		Compute: func(v formValues) (calcResult, error) {
			distance, err := v.float("distance")
			if err != nil {
				return calcResult{}, err
			}
			hours, err := v.integer("hours")
			if err != nil {
				return calcResult{}, err
			}
			minutes, err := v.integer("minutes")
			if err != nil {
				return calcResult{}, err
			}
			seconds, err := v.integer("seconds")
			if err != nil {
				return calcResult{}, err
			}
			duration := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
			res, err := calc.Pace(distance, duration)
			if err != nil {
				return calcResult{}, err
			}
			return calcResult{Rows: []resultRow{
				{Label: "Pace", Value: calc.FormatPace(res.SecondsPerKm)},
				{Label: "Speed", Value: rounded(res.KmPerHour, 2) + " km/h"},
			}}, nil
		},
	},

	"concrete-calculator": {
		Fields: []formField{
			{Name: "length", Label: "Length (m)", Kind: fieldNumber},
			{Name: "width", Label: "Width (m)", Kind: fieldNumber},
			{Name: "thickness", Label: "Thickness (m)", Kind: fieldNumber, Default: "0.1"},
			{Name: "waste", Label: "Waste margin (%)", Kind: fieldNumber, Default: "10"},
		},
		Compute: func(v formValues) (calcResult, error) {
			length, err := v.float("length")
			if err != nil {
				return calcResult{}, err
			}
			width, err := v.float("width")
			if err != nil {
				return calcResult{}, err
			}
			thickness, err := v.float("thickness")
			if err != nil {
				return calcResult{}, err
			}
			waste, err := v.float("waste")
			if err != nil {
				return calcResult{}, err
			}
			if length <= 0 || width <= 0 || thickness <= 0 {
				return calcResult{}, fmt.Errorf("dimensions must be positive")
			}
			volume := calc.ConcreteSlab(length, width, thickness, waste)
			return calcResult{Rows: []resultRow{
				{Label: "Concrete needed", Value: rounded(volume, 2) + " m³"},
			}}, nil
		},
	},

	"password-generator": {
		Fields: []formField{
			{Name: "length", Label: "Length", Kind: fieldInteger, Default: "16"},
			{Name: "upper", Label: "Include uppercase letters", Kind: fieldCheckbox, Default: "1"},
			{Name: "digits", Label: "Include digits", Kind: fieldCheckbox, Default: "1"},
			{Name: "symbols", Label: "Include symbols", Kind: fieldCheckbox},
		},
		Compute: func(v formValues) (calcResult, error) {
			length, err := v.integer("length")
			if err != nil {
				return calcResult{}, err
			}
			pw, err := calc.Password(calc.PasswordOptions{
				Length:  length,
				Upper:   v.boolean("upper"),
				Digits:  v.boolean("digits"),
				Symbols: v.boolean("symbols"),
			})
			if err != nil {
				return calcResult{}, err
			}
			return calcResult{Rows: []resultRow{
				{Label: "Generated password", Value: pw},
			}}, nil
		},
	},

	"tip-calculator": {
		Fields: []formField{
			{Name: "bill", Label: "Bill amount", Kind: fieldNumber},
			{Name: "tip", Label: "Tip (%)", Kind: fieldNumber, Default: "15"},
			{Name: "people", Label: "Number of people", Kind: fieldInteger, Default: "1"},
		},
		Compute: func(v formValues) (calcResult, error) {
			bill, err := v.float("bill")
			if err != nil {
				return calcResult{}, err
			}
			tipPct, err := v.float("tip")
			if err != nil {
				return calcResult{}, err
			}
			people, err := v.integer("people")
			if err != nil {
				return calcResult{}, err
			}
			tip, total, perPerson := calc.Tip(bill, tipPct, people)
			return calcResult{Rows: []resultRow{
				{Label: "Tip", Value: money(tip)},
				{Label: "Total with tip", Value: money(total)},
				{Label: "Per person", Value: money(perPerson)},
			}}, nil
		},
	},

	"dob-calculator": {
		Fields: []formField{
			{Name: "dob", Label: "Date of birth", Kind: fieldDate},
		},
		Compute: func(v formValues) (calcResult, error) {
			dob, err := v.date("dob")
			if err != nil {
				return calcResult{}, err
			}
			now := time.Now()
			if dob.After(now) {
				return calcResult{}, fmt.Errorf("date of birth must be in the past")
			}
			age := calc.Age(dob, now)
			return calcResult{Rows: []resultRow{
				{Label: "Age", Value: fmt.Sprintf("%d years, %d months, %d days", age.Years, age.Months, age.Days)},
				{Label: "Total days lived", Value: strconv.Itoa(age.TotalDays)},
				{Label: "Next birthday in", Value: fmt.Sprintf("%d days", age.NextBirthdayIn)},
			}}, nil
		},
	},
}

func loanRows(res calc.LoanResult) []resultRow {
	return []resultRow{
		{Label: "Monthly payment", Value: money(res.MonthlyPayment)},
		{Label: "Total payment", Value: money(res.TotalPayment)},
		{Label: "Total interest", Value: money(res.TotalInterest)},
	}
}
