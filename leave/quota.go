package leave

// =============================================================================
// PER-TYPE QUOTA
// =============================================================================

// split applies the per-request allowance of the leave type to the requested
// days. Whatever the allowance does not cover is Unpaid.
//
//   Paid:                 PaidAllowance days (1)
//   Half Paid/Half Unpaid: 1 half day
//   Sick:                 up to SickAllowance days (2)
//   Unpaid:               nothing
func (o Options) split(t Type, requested int) Breakdown {
	var b Breakdown
	payable := min(o.Allowance(t), requested)
	switch t {
	case TypePaid:
		b.PaidDays = payable
	case TypeHalfPaid:
		b.HalfPaidDays = payable
	case TypeHalfUnpaid:
		b.HalfUnpaidDays = payable
	case TypeSick:
		b.SickDays = payable
	}
	b.UnpaidDays = requested - b.Total()
	return b
}

// Allowance returns how many days of a request are paid out as type t
// before the rest turns Unpaid.
func (o Options) Allowance(t Type) int {
	o = o.withDefaults()
	switch t {
	case TypePaid:
		return o.PaidAllowance
	case TypeHalfPaid, TypeHalfUnpaid:
		return 1
	case TypeSick:
		return o.SickAllowance
	}
	return 0
}

// gates holds the quota-driven disable flags before clubbing is applied.
type gates struct {
	paid     bool
	halfPaid bool
	sick     bool
}

// quotaGates decides which leave types the balance still allows.
//
// Paid and half-paid are mutually exclusive within a month: a single
// half-paid day already closes Paid. The remaining couplings depend on the
// configured CouplingMode.
func (o Options) quotaGates(b Balance) gates {
	paidExhausted := b.AvailablePaid <= 0 ||
		b.PaidLeaveThisMonth ||
		b.HalfPaidCountThisMonth >= 1
	halfPaidCapped := b.HalfPaidCountThisMonth >= o.HalfPaidMonthlyCap

	g := gates{
		paid:     paidExhausted,
		halfPaid: halfPaidCapped,
		sick:     b.AvailableSick < 1,
	}
	if o.Coupling == CouplingStrict {
		g.halfPaid = g.halfPaid || paidExhausted
		g.sick = g.sick || halfPaidCapped
	}
	return g
}
