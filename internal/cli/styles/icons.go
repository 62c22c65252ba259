package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "" //  browser/web
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconHeart     = "" //  heart
	IconGo        = "" //  go gopher
	IconSearch    = "" //  magnifier

	// Status
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	// Config / storage
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconZoom     = "" // magnifier-plus

	// UI
	IconCursor = "" // chevron-right
)
