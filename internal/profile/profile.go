// Package profile provides cached, structured access to the user profile and
// settings toggles stored in the key/value table.
package profile

// Profile is the local user record. There is no real account behind it; the
// name and email exist only for personalizing the product.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Settings holds the notification and privacy toggles.
type Settings struct {
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
}

type NotificationSettings struct {
	DailyReminders bool `json:"dailyReminders"`
	WeeklyReports  bool `json:"weeklyReports"`
	MoodAlerts     bool `json:"moodAlerts"`
}

type PrivacySettings struct {
	DataSharing bool `json:"dataSharing"`
	Analytics   bool `json:"analytics"`
}

// DefaultSettings mirror the product's out-of-the-box toggles.
func DefaultSettings() Settings {
	return Settings{
		Notifications: NotificationSettings{
			DailyReminders: true,
			WeeklyReports:  true,
			MoodAlerts:     false,
		},
		Privacy: PrivacySettings{
			DataSharing: false,
			Analytics:   true,
		},
	}
}
