package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/osintui/internal/app"
	"github.com/gravitrone/osintui/internal/config"
)

// KeyBindings is the resolved key map used by the router and the status bar.
// Navigation keys are fixed; the rest come from the config file.
type KeyBindings struct {
	Back       key.Binding
	Home       key.Binding
	Search     key.Binding
	Submit     key.Binding
	Censys     key.Binding
	Shodan     key.Binding
	VirusTotal key.Binding

	Escape key.Binding
	Quit   key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
}

// NewKeyBindings builds the key map from the configured bindings.
func NewKeyBindings(cfg config.KeyBindings) KeyBindings {
	return KeyBindings{
		Back:       key.NewBinding(key.WithKeys(cfg.Back), key.WithHelp(cfg.Back, "back")),
		Home:       key.NewBinding(key.WithKeys(cfg.Home), key.WithHelp(cfg.Home, "home")),
		Search:     key.NewBinding(key.WithKeys(cfg.Search), key.WithHelp(cfg.Search, "search")),
		Submit:     key.NewBinding(key.WithKeys(cfg.Submit), key.WithHelp(cfg.Submit, "select")),
		Censys:     key.NewBinding(key.WithKeys(cfg.Censys), key.WithHelp(cfg.Censys, "censys")),
		Shodan:     key.NewBinding(key.WithKeys(cfg.Shodan), key.WithHelp(cfg.Shodan, "shodan")),
		VirusTotal: key.NewBinding(key.WithKeys(cfg.VirusTotal), key.WithHelp(cfg.VirusTotal, "virustotal")),

		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "unfocus")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Up:     key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h", "ctrl+b"), key.WithHelp("←", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "ctrl+f"), key.WithHelp("→/l", "right")),
	}
}

// DefaultKeyBindings is the key map for the stock config.
func DefaultKeyBindings() KeyBindings {
	return NewKeyBindings(config.DefaultKeyBindings())
}

// ProviderBinding returns the shortcut that opens p.
func (kb KeyBindings) ProviderBinding(p app.Provider) key.Binding {
	switch p {
	case app.ProviderCensys:
		return kb.Censys
	case app.ProviderShodan:
		return kb.Shodan
	}
	return kb.VirusTotal
}

func isEscape(msg tea.KeyMsg, kb KeyBindings) bool {
	return msg.Type == tea.KeyEsc || key.Matches(msg, kb.Escape)
}
