package auth

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// demoUsers is the fixed account table consulted by the login endpoint.
// Read-only after process start, safe for concurrent reads.
var demoUsers = map[string]DemoUser{
	"athlete@demo.com": {Email: "athlete@demo.com", Password: "password123", Role: RoleAthlete, Name: "Demo Athlete"},
	"coach@demo.com":   {Email: "coach@demo.com", Password: "password123", Role: RoleCoach, Name: "Demo Coach"},
	"admin@demo.com":   {Email: "admin@demo.com", Password: "password123", Role: RoleAdmin, Name: "Demo Admin"},
}

// DemoAccounts returns the demo account table in role order
// (athlete, coach, admin).
func DemoAccounts() []DemoUser {
	return []DemoUser{
		demoUsers["athlete@demo.com"],
		demoUsers["coach@demo.com"],
		demoUsers["admin@demo.com"],
	}
}

// Service implements the demo authentication flows.
type Service struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new auth service.
func NewService(logger *zap.Logger) *Service {
	return &Service{
		logger: logger,
		now:    time.Now,
	}
}

// Authenticate matches the credentials against the demo table. Unknown
// emails and wrong passwords both yield the same "Invalid credentials"
// result; only the body distinguishes success from failure.
func (s *Service) Authenticate(email, password string) *LoginResult {
	user, ok := demoUsers[email]
	if !ok || user.Password != password {
		s.logger.Info("Login rejected", zap.String("email", email))
		return &LoginResult{Success: false, Error: "Invalid credentials"}
	}

	local := strings.SplitN(email, "@", 2)[0]
	s.logger.Info("Login accepted", zap.String("email", email), zap.String("role", user.Role))

	return &LoginResult{
		Success: true,
		User: &UserInfo{
			ID:    "user_" + local,
			Email: email,
			Name:  user.Name,
			Role:  user.Role,
		},
		Token: fmt.Sprintf("demo_token_%d", s.now().Unix()),
	}
}

// Register validates the request and echoes it back with a generated id.
// Nothing is stored; the demo table is not consulted, so registering an
// existing demo email succeeds.
func (s *Service) Register(req *RegisterRequest) *RegisterResult {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return &RegisterResult{Success: false, Error: "Missing required fields"}
	}

	role := req.Role
	if role == "" {
		role = RoleAthlete
	}

	s.logger.Info("Registration accepted", zap.String("email", req.Email), zap.String("role", role))

	return &RegisterResult{
		Success: true,
		User: &UserInfo{
			ID:    fmt.Sprintf("user_%d", s.now().Unix()),
			Email: req.Email,
			Name:  req.Name,
			Role:  role,
		},
	}
}
