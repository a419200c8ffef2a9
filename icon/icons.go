package icon

// Icon identifies a renderable UI symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Skip
	Progress
	Download
	Link
)

// icons is the global registry mapping identifiers to their per-variant representations.
var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		squares: "🟥",
	},
	Skip: {
		emoji:   "⏭️",
		nerd:    "",
		plain:   "-",
		squares: "🟨",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		squares: "🟦",
	},
	Download: {
		emoji:   "⬇️",
		nerd:    "",
		plain:   "v",
		squares: "🟪",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "@",
		squares: "⬜",
	},
}
