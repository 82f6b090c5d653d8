package domain

// Customer is the subset of the customer directory record consumed by reports.
type Customer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
