package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SetPasswordRequest struct {
	UserID         int64  `json:"user_id" binding:"required"`
	Password       string `json:"password" binding:"required"`
	ResetRequestID *int64 `json:"reset_request_id"`
}
