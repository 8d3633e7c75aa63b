package domain

// Currency is a supported currency code (e.g. "USD"). Two currencies are
// equal iff their codes are equal.
type Currency string

const (
	RUB Currency = "RUB"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

func (c Currency) String() string {
	return string(c)
}
