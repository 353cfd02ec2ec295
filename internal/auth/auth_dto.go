package auth

type RegisterRequest struct {
	FirstName string `json:"FirstName" binding:"required"`
	LastName  string `json:"LastName" binding:"required"`
	Email     string `json:"Email" binding:"required,email"`
	Password  string `json:"Password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"Email" binding:"required,email"`
	Password string `json:"Password" binding:"required"`
}

type RefreshRequest struct {
	Token        string `json:"Token"`
	RefreshToken string `json:"RefreshToken" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"RefreshToken" binding:"required"`
}

type TokenResponse struct {
	Token        string `json:"Token"`
	RefreshToken string `json:"RefreshToken"`
	UserId       string `json:"UserId"`
	Expiration   string `json:"Expiration"`
}

type UserResponse struct {
	ID        string `json:"ID"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Email     string `json:"Email"`
}
