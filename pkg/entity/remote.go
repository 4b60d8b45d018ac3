package entity

// Shapes exchanged with the remote Place Between API.

type RemoteCompletionRequest struct {
	ExternalID    string `json:"external_id"`
	SessionType   Phase  `json:"session_type"`
	Source        Source `json:"source"`
	IsRecommended bool   `json:"is_recommended"`
}

type RemoteResult struct {
	PointsAwarded    *int `json:"points_awarded,omitempty"`
	AlreadyCompleted bool `json:"already_completed,omitempty"`
}

type RemoteCategory struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

type RemoteActivity struct {
	ID           int             `json:"id"`
	ExternalID   string          `json:"external_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	ActivityType string          `json:"activity_type"`
	IsActive     *bool           `json:"is_active,omitempty"`
	Category     *RemoteCategory `json:"category,omitempty"`
}

type Emotion struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Value       *int   `json:"value,omitempty"`
	URLMusic    string `json:"url_music,omitempty"`
}

type CheckinRequest struct {
	EmotionID int    `json:"emotion_id" validate:"required,gt=0"`
	Intensity int    `json:"intensity" validate:"min=1,max=10"`
	Note      string `json:"note" validate:"max=300"`
}

type EmotionCheckin struct {
	ID             int    `json:"id"`
	DailySessionID int    `json:"daily_session_id"`
	EmotionID      int    `json:"emotion_id"`
	Intensity      int    `json:"intensity"`
	Note           string `json:"note,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

type SessionSummary struct {
	ID           int    `json:"id"`
	SessionDate  string `json:"session_date"`
	SessionType  Phase  `json:"session_type"`
	PointsEarned int    `json:"points_earned"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type CompletedActivitySummary struct {
	ID          int    `json:"id"`
	ExternalID  string `json:"external_id,omitempty"`
	Name        string `json:"name"`
	SessionType Phase  `json:"session_type"`
	Points      int    `json:"points"`
	CompletedAt string `json:"completed_at"`
}

type EmotionSummary struct {
	Name      string `json:"name"`
	Value     *int   `json:"value,omitempty"`
	Intensity *int   `json:"intensity,omitempty"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// DailySummary is the Mirror payload, consumed read-only.
type DailySummary struct {
	Date             string                     `json:"date"`
	PointsToday      int                        `json:"points_today"`
	Sessions         []SessionSummary           `json:"sessions"`
	Activities       []CompletedActivitySummary `json:"activities"`
	Emotion          *EmotionSummary            `json:"emotion"`
	PointsByCategory map[string]int             `json:"points_by_category"`
}
