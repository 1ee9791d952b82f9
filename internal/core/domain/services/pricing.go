package services

import (
	"fulfillment/internal/core/domain/model/earnings"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// Pricer computes a writer's pay breakdown for a completed order.
// Implementations must be pure: the same order always prices the same.
type Pricer interface {
	Price(o *order.Order) (earnings.Breakdown, error)
}

// StaticPricer prices orders from fixed rates: a flat base pay per
// order, a bonus per ordered unit beyond the first, and a penalty per
// rework round the draft went through.
type StaticPricer struct {
	basePay       kernel.Money
	perUnitBonus  kernel.Money
	reworkPenalty kernel.Money
}

// NewStaticPricer creates a pricer with the given fixed rates.
func NewStaticPricer(basePay, perUnitBonus, reworkPenalty kernel.Money) StaticPricer {
	return StaticPricer{
		basePay:       basePay,
		perUnitBonus:  perUnitBonus,
		reworkPenalty: reworkPenalty,
	}
}

// Price computes the breakdown for o. The first unit is covered by the
// base pay; every additional unit earns the per-unit bonus. Each rework
// round deducts the rework penalty, never below zero in total.
func (p StaticPricer) Price(o *order.Order) (earnings.Breakdown, error) {
	if err := o.Validate(); err != nil {
		return earnings.Breakdown{}, err
	}

	units := 0
	for _, li := range o.LineItems() {
		units += li.Quantity()
	}

	bonus := kernel.Money{}
	if units > 1 {
		bonus = p.perUnitBonus.MulInt(units - 1)
	}

	return earnings.Breakdown{
		BasePay: p.basePay,
		Bonus:   bonus,
		Penalty: p.reworkPenalty.MulInt(o.ReworkCount()),
	}, nil
}
