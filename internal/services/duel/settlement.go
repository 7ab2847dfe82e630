package duel

// computeSettlement splits a pot between the vault fee and the winner's
// payout. The fee floors toward zero and the payout saturates at zero, so
// a 100% fee on a small pot pays nothing rather than underflowing.
func computeSettlement(pot int64, feePercent int) (fee, payout int64) {
	if pot <= 0 {
		return 0, 0
	}

	fee = pot * int64(feePercent) / 100
	if fee >= pot {
		return pot, 0
	}

	return fee, pot - fee
}
