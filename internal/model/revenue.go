package model

import "github.com/shopspring/decimal"

// RevenueType 計價模式，決定佣金如何推導
type RevenueType string

const (
	RevenueTypeStandard RevenueType = "standard"
	RevenueTypePackage  RevenueType = "package"
	RevenueTypeBuyout   RevenueType = "buyout"
)

func (r RevenueType) IsValid() bool {
	switch r {
	case RevenueTypeStandard, RevenueTypePackage, RevenueTypeBuyout:
		return true
	}
	return false
}

// Revenue is the money derived for one booking under a tee time's pricing.
type Revenue struct {
	TotalPrice          int64 `json:"total_price"`
	OnsiteTotal         int64 `json:"onsite_total"`
	Commission          int64 `json:"commission"`
	CommissionPerPerson int64 `json:"commission_per_person"`
}

// CalculateRevenue derives total price and commission.
//
//	standard: commission = prepayment
//	package:  commission = prepayment - cost
//	buyout:   commission = prepayment + onsite*people - cost
//
// Commission may be negative (a loss). CommissionPerPerson is 0 when peopleCount is 0.
func CalculateRevenue(mode RevenueType, prepayment, onsitePerPerson, cost int64, peopleCount int) Revenue {
	onsiteTotal := onsitePerPerson * int64(peopleCount)
	commission := commissionFor(mode, prepayment, onsiteTotal, cost)
	return Revenue{
		TotalPrice:          prepayment + onsiteTotal,
		OnsiteTotal:         onsiteTotal,
		Commission:          commission,
		CommissionPerPerson: PerPerson(commission, peopleCount),
	}
}

func commissionFor(mode RevenueType, prepayment, onsiteTotal, cost int64) int64 {
	switch mode {
	case RevenueTypePackage:
		return prepayment - cost
	case RevenueTypeBuyout:
		return prepayment + onsiteTotal - cost
	default:
		// standard: 預付款全額視為利潤
		return prepayment
	}
}

// PerPerson splits amount across peopleCount. Halves round up toward +inf,
// so -2.5 becomes -2 and 2.5 becomes 3.
func PerPerson(amount int64, peopleCount int) int64 {
	if peopleCount <= 0 {
		return 0
	}
	return decimal.NewFromInt(amount).
		Div(decimal.NewFromInt(int64(peopleCount))).
		Add(half).
		Floor().
		IntPart()
}

var half = decimal.New(5, -1)
