package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gravitrone/osintui/internal/app"
	"github.com/gravitrone/osintui/internal/cmd"
	"github.com/gravitrone/osintui/internal/config"
	"github.com/gravitrone/osintui/internal/handlers"
	"github.com/gravitrone/osintui/internal/logging"
	"github.com/gravitrone/osintui/internal/network"
	"github.com/gravitrone/osintui/internal/ui"
)

var errNotTerminal = errors.New("osintui needs an interactive terminal (try 'osintui lookup <ip>')")

type options struct {
	configPath string
	ip         string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:   "osintui",
		Short: "osintui - IP intelligence dashboard",
		Long:  "osintui looks up IP addresses on Censys, Shodan and VirusTotal and browses the results in the terminal.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, cmd.ConfigFlag, "", "config file (default $XDG_CONFIG_HOME/osintui/config.toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (default $"+logging.LogLevelEnvVar+")")
	root.Flags().StringVar(&opts.ip, "ip", "", "search for this address on startup")

	root.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return logging.Initialize(opts.logLevel, "")
	}

	root.AddCommand(cmd.ConfigCmd())
	root.AddCommand(cmd.LookupCmd())
	return root
}

// session is everything the dashboard needs besides the terminal.
type session struct {
	state  *app.State
	queue  *app.Queue
	worker *network.Worker
	keys   handlers.KeyBindings
}

// newSession wires config into state, queue and worker. A non-empty ip is
// submitted as if typed into the search box.
func newSession(cfg *config.Config, ip string) *session {
	clients := network.NewClients(cfg.Keys, network.EndpointsFromEnv())
	enabled := clients.Enabled()
	queue := app.NewQueue()
	st := app.NewState(queue, enabled...)
	logging.Info("session ready", zap.Int("providers", len(enabled)), zap.String("ip", ip))

	if ip != "" {
		st.Update(func(s *app.State) {
			s.Input.SetString(ip)
			handlers.Submit(s)
		})
	}

	return &session{
		state:  st,
		queue:  queue,
		worker: network.NewWorker(st, queue, clients),
		keys:   handlers.NewKeyBindings(cfg.KeyBindings),
	}
}

func runTUI(opts options) error {
	defer logging.Sync()

	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return errNotTerminal
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	ui.ApplyTheme(cfg.Theme)

	s := newSession(cfg, opts.ip)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer s.queue.Close()
	go s.worker.Run(ctx)

	p := tea.NewProgram(ui.NewApp(s.state, s.keys), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
