package responses

type Login struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RegisterUser struct {
	UserID string `json:"user_id"`
}
