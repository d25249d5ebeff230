package model

// Settings is the singleton preferences record.
type Settings struct {
	DarkMode    bool   `json:"darkMode"`
	Reminders   bool   `json:"reminders"`
	AccentColor string `json:"accentColor"`
}

// DefaultSettings are the values used when no settings were persisted
// or the persisted record is unreadable.
func DefaultSettings() Settings {
	return Settings{DarkMode: false, Reminders: true, AccentColor: "teal"}
}
