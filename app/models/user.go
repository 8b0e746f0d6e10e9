package models

// User is a registered showroom account. The built-in administrator is
// never persisted; the directory synthesizes it on read (id 0).
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birthDate"`
	PostalCode string `json:"postalCode"`
	Password   string `json:"password,omitempty"`
	Admin      bool   `json:"admin"`
	Photo      string `json:"photo,omitempty"`
}
