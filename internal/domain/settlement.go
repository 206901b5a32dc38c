package domain

// Settlement represents a suggested transfer that pays down debt.
// Settlements are a derived view of the balance map and are never persisted.
type Settlement struct {
	FromID string
	ToID   string
	Amount float64
}
