package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe    = "" // web
	IconSearch   = "" // magnifier
	IconHistory  = "" // history
	IconBookmark = "" // bookmark
	IconBolt     = "" // quick action
	IconPlus     = "" // new tab
	IconLink     = "" // literal url
	IconTab      = "" // table
	IconIncog    = "" // user-secret
	IconCheck    = "" // check
	IconX        = "" // x
	IconCursor   = "" // chevron-right
	IconConfig   = "" // config
)
