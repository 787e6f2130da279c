package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Config is the on-disk configuration at $XDG_CONFIG_HOME/osintui/config.toml.
type Config struct {
	Keys        Keys        `koanf:"keys"`
	KeyBindings KeyBindings `koanf:"keybindings"`
	Theme       Theme       `koanf:"theme"`
}

// Keys holds provider credentials. An empty value disables the provider.
type Keys struct {
	VirusTotal   string `koanf:"virustotal"`
	Shodan       string `koanf:"shodan"`
	CensysID     string `koanf:"censys_id"`
	CensysSecret string `koanf:"censys_secret"`
}

// KeyBindings maps actions to bubbletea key strings ("q", "ctrl+s", "enter").
type KeyBindings struct {
	Back       string `koanf:"back"`
	Home       string `koanf:"home"`
	Search     string `koanf:"search"`
	Submit     string `koanf:"submit"`
	Censys     string `koanf:"censys"`
	Shodan     string `koanf:"shodan"`
	VirusTotal string `koanf:"virustotal"`
}

// Theme holds hex colors for the dashboard.
type Theme struct {
	Accent   string `koanf:"accent"`
	Border   string `koanf:"border"`
	Text     string `koanf:"text"`
	Muted    string `koanf:"muted"`
	Error    string `koanf:"error"`
	Success  string `koanf:"success"`
	Selected string `koanf:"selected"`
}

// DefaultKeyBindings returns the stock bindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Back:       "q",
		Home:       "h",
		Search:     "/",
		Submit:     "enter",
		Censys:     "c",
		Shodan:     "s",
		VirusTotal: "v",
	}
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	return Theme{
		Accent:   "#7f57b4",
		Border:   "#273540",
		Text:     "#d7d9da",
		Muted:    "#9ba0bf",
		Error:    "#e06c75",
		Success:  "#98c379",
		Selected: "#1f2530",
	}
}

// Default returns a config with no credentials and stock bindings and theme.
func Default() *Config {
	return &Config{
		KeyBindings: DefaultKeyBindings(),
		Theme:       DefaultTheme(),
	}
}

// CensysConfigured reports whether both Censys credentials are set.
func (k Keys) CensysConfigured() bool {
	return k.CensysID != "" && k.CensysSecret != ""
}

// ShodanConfigured reports whether the Shodan key is set.
func (k Keys) ShodanConfigured() bool {
	return k.Shodan != ""
}

// VirusTotalConfigured reports whether the VirusTotal key is set.
func (k Keys) VirusTotalConfigured() bool {
	return k.VirusTotal != ""
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "osintui", "config.toml")
}

// Load reads the config at path, or at Path() when path is empty. A missing
// file is created with defaults first. The file must not be readable by
// anyone but its owner.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := Default().Save(path); err != nil {
			return nil, fmt.Errorf("write default config: %w", err)
		}
		info, err = os.Stat(path)
	}
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm&0o077 != 0 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize trims values, lowercases named keys ("Enter" -> "enter") and
// restores defaults for blank bindings and invalid colors.
func (c *Config) normalize() {
	c.Keys.VirusTotal = strings.TrimSpace(c.Keys.VirusTotal)
	c.Keys.Shodan = strings.TrimSpace(c.Keys.Shodan)
	c.Keys.CensysID = strings.TrimSpace(c.Keys.CensysID)
	c.Keys.CensysSecret = strings.TrimSpace(c.Keys.CensysSecret)

	kb, def := &c.KeyBindings, DefaultKeyBindings()
	for _, b := range []struct {
		val *string
		def string
	}{
		{&kb.Back, def.Back},
		{&kb.Home, def.Home},
		{&kb.Search, def.Search},
		{&kb.Submit, def.Submit},
		{&kb.Censys, def.Censys},
		{&kb.Shodan, def.Shodan},
		{&kb.VirusTotal, def.VirusTotal},
	} {
		*b.val = strings.TrimSpace(*b.val)
		if utf8.RuneCountInString(*b.val) > 1 {
			*b.val = strings.ToLower(*b.val)
		}
		if *b.val == "" {
			*b.val = b.def
		}
	}

	th, defTheme := &c.Theme, DefaultTheme()
	for _, col := range []struct {
		val *string
		def string
	}{
		{&th.Accent, defTheme.Accent},
		{&th.Border, defTheme.Border},
		{&th.Text, defTheme.Text},
		{&th.Muted, defTheme.Muted},
		{&th.Error, defTheme.Error},
		{&th.Success, defTheme.Success},
		{&th.Selected, defTheme.Selected},
	} {
		*col.val = validColor(*col.val, col.def)
	}
}

// validColor returns value in canonical #rrggbb form, or fallback when value
// is not a hex color.
func validColor(value, fallback string) string {
	c, err := colorful.Hex(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return c.Hex()
}

// Save writes the config to path (or Path()) with owner-only permissions.
func (c *Config) Save(path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	k := koanf.New(".")
	values := map[string]string{
		"keys.virustotal":        c.Keys.VirusTotal,
		"keys.shodan":            c.Keys.Shodan,
		"keys.censys_id":         c.Keys.CensysID,
		"keys.censys_secret":     c.Keys.CensysSecret,
		"keybindings.back":       c.KeyBindings.Back,
		"keybindings.home":       c.KeyBindings.Home,
		"keybindings.search":     c.KeyBindings.Search,
		"keybindings.submit":     c.KeyBindings.Submit,
		"keybindings.censys":     c.KeyBindings.Censys,
		"keybindings.shodan":     c.KeyBindings.Shodan,
		"keybindings.virustotal": c.KeyBindings.VirusTotal,
		"theme.accent":           c.Theme.Accent,
		"theme.border":           c.Theme.Border,
		"theme.text":             c.Theme.Text,
		"theme.muted":            c.Theme.Muted,
		"theme.error":            c.Theme.Error,
		"theme.success":          c.Theme.Success,
		"theme.selected":         c.Theme.Selected,
	}
	for key, val := range values {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}

	data, err := k.Marshal(toml.Parser())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return os.Chmod(path, 0o600)
}
