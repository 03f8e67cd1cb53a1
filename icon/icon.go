// Package icon renders status symbols in the variant picked by icons.variant.
package icon

import (
	"github.com/catchup-cli/catchup/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Episode
	Playlist
	Link
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "\uf00c", plain: "✓", squares: "🟩"},
	Fail:     {emoji: "💥", nerd: "\uf00d", plain: "✗", squares: "🟥"},
	Progress: {emoji: "⏳", nerd: "\uf110", plain: "...", squares: "🟦"},
	Episode:  {emoji: "📺", nerd: "\uf26c", plain: ">", squares: "🟨"},
	Playlist: {emoji: "🗂️", nerd: "\uf03a", plain: "#", squares: "🟪"},
	Link:     {emoji: "🔗", nerd: "\uf0c1", plain: "@", squares: "🟫"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the symbol for i in the configured variant.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}
