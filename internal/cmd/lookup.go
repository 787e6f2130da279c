package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/netip"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/jmespath/go-jmespath"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/osintui/internal/api"
	"github.com/gravitrone/osintui/internal/config"
	"github.com/gravitrone/osintui/internal/handlers"
	"github.com/gravitrone/osintui/internal/logging"
	"github.com/gravitrone/osintui/internal/network"
)

// lookupDocument is what `osintui lookup` prints. Providers that are not
// configured or have no record for the address stay null.
type lookupDocument struct {
	Censys     *api.CensysHost  `json:"censys"`
	Shodan     *api.ShodanHost  `json:"shodan"`
	VirusTotal *virusTotalEntry `json:"virustotal"`
}

type virusTotalEntry struct {
	Report   *api.VirusTotalIP       `json:"report"`
	Comments []api.VirusTotalComment `json:"comments"`
}

type lookupOptions struct {
	output string
	query  string
	color  string
}

func (o lookupOptions) validate() error {
	switch o.output {
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", o.output)
	}
	switch o.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", o.color)
	}
	if o.query != "" {
		if _, err := jmespath.Compile(o.query); err != nil {
			return fmt.Errorf("invalid query %q: %w", o.query, err)
		}
	}
	return nil
}

// LookupCmd returns `osintui lookup`, which queries every configured
// provider once and prints the combined result.
func LookupCmd() *cobra.Command {
	opts := lookupOptions{}
	cmd := &cobra.Command{
		Use:   "lookup <ip>",
		Short: "Look up an IP address without starting the dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			addr, err := netip.ParseAddr(handlers.Refang(args[0]))
			if err != nil {
				return fmt.Errorf("%q is not a valid IP address", args[0])
			}

			cfg, err := config.Load(configPath(cmd))
			if err != nil {
				return err
			}
			clients := network.NewClients(cfg.Keys, network.EndpointsFromEnv())
			if len(clients.Enabled()) == 0 {
				return fmt.Errorf("no providers configured: add API keys to %s", resolvedConfigPath(cmd))
			}

			doc, err := lookup(cmd.Context(), clients, addr.String())
			if err != nil {
				return err
			}
			data, err := encodeLookup(doc, opts)
			if err != nil {
				return err
			}
			return writeLookup(cmd.OutOrStdout(), data, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "json", "output format: json or yaml")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "JMESPath expression applied to the result")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "highlight output: auto, always or never")
	return cmd
}

// lookup runs every configured provider concurrently. A 404 leaves the
// provider's entry null; any other failure cancels the rest.
func lookup(ctx context.Context, clients network.Clients, ip string) (*lookupDocument, error) {
	doc := &lookupDocument{}
	g, ctx := errgroup.WithContext(ctx)

	if clients.Censys != nil {
		g.Go(func() error {
			host, err := clients.Censys.Host(ctx, ip)
			if err != nil {
				return lookupError("censys", err)
			}
			doc.Censys = host
			return nil
		})
	}
	if clients.Shodan != nil {
		g.Go(func() error {
			host, err := clients.Shodan.Host(ctx, ip)
			if err != nil {
				return lookupError("shodan", err)
			}
			doc.Shodan = host
			return nil
		})
	}
	if clients.VirusTotal != nil {
		g.Go(func() error {
			report, comments, err := network.VirusTotalReport(ctx, clients.VirusTotal, ip)
			if err != nil {
				return lookupError("virustotal", err)
			}
			doc.VirusTotal = &virusTotalEntry{Report: report, Comments: comments}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return doc, nil
}

func lookupError(provider string, err error) error {
	if errors.Is(err, api.ErrNotFound) {
		logging.Debug("lookup: no record", zap.String("provider", provider))
		return nil
	}
	logging.Warn("lookup failed", zap.String("provider", provider), zap.Error(err))
	return fmt.Errorf("%s: %w", provider, err)
}

// encodeLookup renders doc in the requested format after applying the
// optional JMESPath query.
func encodeLookup(doc *lookupDocument, opts lookupOptions) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}

	if opts.query != "" {
		data, err = jmespath.Search(opts.query, data)
		if err != nil {
			return nil, fmt.Errorf("query failed: %w", err)
		}
	}

	if opts.output == "yaml" {
		out, err := yaml.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return out, nil
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return append(out, '\n'), nil
}

func writeLookup(w io.Writer, data []byte, opts lookupOptions) error {
	if !useColor(w, opts.color) {
		_, err := w.Write(data)
		return err
	}
	return quick.Highlight(w, string(data), opts.output, "terminal256", "monokai")
}

// useColor resolves --color. auto highlights only when w is a terminal and
// NO_COLOR is unset.
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
