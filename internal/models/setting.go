package models

// Setting represents one toggleable platform preference
type Setting struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Enabled     bool   `json:"enabled"`
}

// SettingDarkMode is the title of the toggle mirrored into the darkMode
// store key.
const SettingDarkMode = "Dark Mode"
