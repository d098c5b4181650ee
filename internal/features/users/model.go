package users

type UpdateProfileRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=20"`
	Phone    *string `json:"phone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// StatsResponse summarizes a user's activity.
type StatsResponse struct {
	TotalPosts    int64 `json:"totalPosts"`
	ActivePosts   int64 `json:"activePosts"`
	ResolvedPosts int64 `json:"resolvedPosts"`
}
