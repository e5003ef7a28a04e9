package leave

import (
	"fmt"
	"strings"
)

// =============================================================================
// CROSS-TYPE COUPLING
// =============================================================================

// CouplingMode selects how strongly the quota gates of different leave types
// depend on each other. The leave screens disagreed on this, so both
// behaviours are kept and the choice is a configuration decision.
type CouplingMode string

const (
	// CouplingStrict gates Half Paid on Paid exhaustion and Sick on the
	// half-paid monthly cap (manager/admin screens).
	CouplingStrict CouplingMode = "strict"

	// CouplingIndependent gates Half Paid only by its own counter and Sick
	// only by its own balance (HR screen).
	CouplingIndependent CouplingMode = "independent"
)

// ParseCouplingMode accepts "strict" or "independent" (case-insensitive).
// An empty string selects CouplingStrict.
func ParseCouplingMode(s string) (CouplingMode, error) {
	switch CouplingMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", CouplingStrict:
		return CouplingStrict, nil
	case CouplingIndependent:
		return CouplingIndependent, nil
	}
	return "", fmt.Errorf("unknown coupling mode %q (want strict or independent)", s)
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options are the policy constants of the engine.
// Zero fields fall back to DefaultOptions.
type Options struct {
	Coupling CouplingMode

	// PaidAllowance is the number of days payable as Paid per request.
	PaidAllowance int
	// SickAllowance is the number of days payable as Sick per request.
	SickAllowance int
	// HalfPaidMonthlyCap is the number of half-paid days allowed per month.
	HalfPaidMonthlyCap int
}

// DefaultOptions returns the observed production policy.
func DefaultOptions() Options {
	return Options{
		Coupling:           CouplingStrict,
		PaidAllowance:      1,
		SickAllowance:      2,
		HalfPaidMonthlyCap: 2,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Coupling == "" {
		o.Coupling = def.Coupling
	}
	if o.PaidAllowance <= 0 {
		o.PaidAllowance = def.PaidAllowance
	}
	if o.SickAllowance <= 0 {
		o.SickAllowance = def.SickAllowance
	}
	if o.HalfPaidMonthlyCap <= 0 {
		o.HalfPaidMonthlyCap = def.HalfPaidMonthlyCap
	}
	return o
}
