// Package settings defines application-level configuration data.
package settings

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up              string `yaml:"up" kong:"help='Up key',default='k'"`
	Down            string `yaml:"down" kong:"help='Down key',default='j'"`
	Left            string `yaml:"left" kong:"help='Left/Back key',default='h'"`
	Right           string `yaml:"right" kong:"help='Right/Open key',default='l'"`
	UpPage          string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u'"`
	DownPage        string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d'"`
	Top             string `yaml:"top" kong:"help='Top key',default='g'"`
	Bottom          string `yaml:"bottom" kong:"help='Bottom key',default='G'"`
	Open            string `yaml:"open" kong:"help='Open key',default='enter'"`
	Back            string `yaml:"back" kong:"help='Back key',default='esc'"`
	Quit            string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Refresh         string `yaml:"refresh" kong:"help='Refresh key',default='r'"`
	Subjects        string `yaml:"subjects" kong:"help='Focus subject filter key',default='m'"`
	FilterAll       string `yaml:"filter_all" kong:"help='Show everything key',default='1'"`
	FilterHomework  string `yaml:"filter_homework" kong:"help='Homework filter key',default='2'"`
	FilterTest      string `yaml:"filter_test" kong:"help='Test filter key',default='3'"`
	FilterOther     string `yaml:"filter_other" kong:"help='Other/announcement filter key',default='4'"`
	FilterCancelled string `yaml:"filter_cancelled" kong:"help='Cancelled filter key',default='5'"`
	CycleFilter     string `yaml:"cycle_filter" kong:"help='Cycle category filter key',default='f'"`
}

// ThemeConfig defines the color theme configuration. Tones carry the visual
// classification of entries; the remaining colors style the chrome.
type ThemeConfig struct {
	Blue      string `yaml:"blue" kong:"help='Homework tone color',default='39'"`
	Red       string `yaml:"red" kong:"help='Test tone color',default='196'"`
	Yellow    string `yaml:"yellow" kong:"help='Announcement tone color',default='220'"`
	Neutral   string `yaml:"neutral" kong:"help='Neutral tone color',default='245'"`
	Accent    string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Separator string `yaml:"separator" kong:"help='Date separator color',default='63'"`
	Subject   string `yaml:"subject" kong:"help='Subject list color',default='244'"`
}

// ToneColor resolves a tone name to its configured terminal color. Unknown
// tone names pass through unchanged so explicit per-record overrides can name
// any color the terminal understands.
func (t ThemeConfig) ToneColor(tone string) string {
	switch tone {
	case "blue":
		return t.Blue
	case "red":
		return t.Red
	case "yellow":
		return t.Yellow
	case "neutral":
		return t.Neutral
	default:
		return tone
	}
}

// Settings represents the application configuration.
type Settings struct {
	FeedURL    string       `yaml:"feed_url" kong:"help='Agenda feed URL',default='https://ecole.example/dev.json'"`
	KeyMap     KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme      ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	DebounceMS int          `yaml:"debounce_ms" kong:"help='Render debounce in milliseconds',default='160'"`
}
