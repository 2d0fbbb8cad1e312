package data

import (
	_ "embed"
)

//go:embed defaults/services.json
var DefaultServices string

//go:embed defaults/footer_settings.json
var DefaultFooterSettings string
