package models

type DashboardLimits struct {
	RecentUsers       int
	RecentEvents      int
	RecentMemberships int
}

type DashboardStats struct {
	TotalUsers       int `json:"total_users"`
	TotalClubs       int `json:"total_clubs"`
	TotalEvents      int `json:"total_events"`
	TotalMemberships int `json:"total_memberships"`
	TotalAttendances int `json:"total_attendances"`
}

type ClubSummary struct {
	Club
	President *Member `json:"president,omitempty"`
}

type MembershipDetail struct {
	Membership
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	ClubName  string `json:"club_name"`
}

type Dashboard struct {
	Stats       DashboardStats     `json:"stats"`
	RecentUsers []User             `json:"recent_users"`
	Clubs       []ClubSummary      `json:"clubs"`
	Events      []Event            `json:"events"`
	Memberships []MembershipDetail `json:"memberships"`
}
