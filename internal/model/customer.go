package model

// Customer is a directory record. Accounts reference it by CustomerID and
// never embed it.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
