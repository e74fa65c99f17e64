package models

// IsForeignDonation reports if a transaction is a foreign donation: an income
// from a donor that is neither a member nor internal.
//
// The donor must be loaded into t.Donor. This is the only place where the
// rule is implemented, every other component calls it.
func IsForeignDonation(t Transaction) bool {
	if t.Type != TypeIncome || t.DonorID == nil {
		return false
	}

	return t.Donor.ID == *t.DonorID && t.Donor.IsExternal()
}
