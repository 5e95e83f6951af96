package user

// User is an account that owns carts and orders. Email is the external
// identity key carried in access tokens.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}
