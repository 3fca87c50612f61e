package model

// AccountKind classifies the behavior variant of an account.
type AccountKind string

const (
	AccountKindStandard     AccountKind = "standard"
	AccountKindGiftCard     AccountKind = "gift-card"
	AccountKindLineOfCredit AccountKind = "line-of-credit"
)

// Valid reports whether k is one of the known kinds.
func (k AccountKind) Valid() bool {
	switch k {
	case AccountKindStandard, AccountKindGiftCard, AccountKindLineOfCredit:
		return true
	}
	return false
}
