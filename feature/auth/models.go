package auth

// Account roles accepted by the platform.
const (
	RoleAthlete = "athlete"
	RoleCoach   = "coach"
	RoleAdmin   = "admin"
)

// DemoUser is one entry of the fixed demo account table.
type DemoUser struct {
	Email    string
	Password string
	Role     string
	Name     string
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserInfo is the user object embedded in successful auth responses.
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResult is the response body of the login endpoint. Failed logins are
// carried in the body with Success=false; the HTTP status stays 200.
type LoginResult struct {
	Success bool      `json:"success"`
	User    *UserInfo `json:"user,omitempty"`
	Token   string    `json:"token,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// RegisterResult is the response body of the register endpoint.
type RegisterResult struct {
	Success bool      `json:"success"`
	User    *UserInfo `json:"user,omitempty"`
	Error   string    `json:"error,omitempty"`
}
