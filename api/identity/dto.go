package identity

// AuthRequest carries credentials for registration and login.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful login.
type AuthResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	LevelsCleared int    `json:"levelsCleared"`
	BestDepth     int    `json:"bestDepth"`
	Token         string `json:"token"`
}
