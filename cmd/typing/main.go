// Package main provides the CLI entrypoint for typing.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kingcabrams/typing/internal/config"
	"github.com/kingcabrams/typing/internal/layout"
	"github.com/kingcabrams/typing/internal/model"
	"github.com/kingcabrams/typing/internal/quotes"
	"github.com/kingcabrams/typing/internal/stats"
	"github.com/kingcabrams/typing/internal/store"
	"github.com/kingcabrams/typing/internal/tui"
)

const (
	defaultUsername = "default"
	chartHeight     = 8
)

var (
	raceUsername      string
	raceLayout        string
	raceQuotes        string
	raceBuiltinQuotes bool
	raceWatchQuotes   bool

	layoutsShift bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typing [username] [layout]",
		Short:         "Terminal typing-speed trainer",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRaceCmd,
	}

	rootCmd.Flags().StringVar(&raceUsername, "user", defaultUsername, "display name shown on the title screen")
	rootCmd.Flags().StringVar(&raceLayout, "layout", layout.Default, "keyboard layout ("+strings.Join(layout.Names(), ", ")+")")
	rootCmd.PersistentFlags().StringVar(&raceQuotes, "quotes", config.DefaultQuotesPath(), "quote pack file (.toml, .yaml)")
	rootCmd.PersistentFlags().BoolVar(&raceBuiltinQuotes, "builtin-quotes", true, "include the built-in quotes")
	rootCmd.PersistentFlags().BoolVar(&raceWatchQuotes, "watch-quotes", true, "reload the quote pack when it changes")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newQuotesCmd())
	rootCmd.AddCommand(newLayoutsCmd())

	return rootCmd
}

func resolveConfig(cmd *cobra.Command, args []string) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "user", &raceUsername, fileCfg.Race.Username)
	applyStringConfig(cmd, "layout", &raceLayout, fileCfg.Race.Layout)
	applyStringConfig(cmd, "quotes", &raceQuotes, fileCfg.Race.Quotes)
	applyBoolConfig(cmd, "builtin-quotes", &raceBuiltinQuotes, fileCfg.Race.BuiltinQuotes)
	applyBoolConfig(cmd, "watch-quotes", &raceWatchQuotes, fileCfg.Race.WatchQuotes)

	if len(args) > 0 {
		raceUsername = args[0]
	}
	if len(args) > 1 {
		raceLayout = args[1]
	}

	cfg := model.Config{
		Username:      strings.TrimSpace(raceUsername),
		Layout:        raceLayout,
		QuotesPath:    config.ExpandHome(raceQuotes),
		BuiltinQuotes: raceBuiltinQuotes,
		WatchQuotes:   raceWatchQuotes,
	}
	if cfg.Username == "" {
		cfg.Username = defaultUsername
	}
	return cfg, nil
}

func runRaceCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if _, ok := layout.Lookup(cfg.Layout); !ok {
		logErrf("unknown layout %q (available: %s); using %s\n", cfg.Layout, strings.Join(layout.Names(), ", "), layout.Fallback)
	}

	quoteList, err := quotes.Load(cfg.QuotesPath, cfg.BuiltinQuotes)
	if err != nil {
		return fmt.Errorf("failed to load quotes: %w", err)
	}
	pool, err := quotes.NewPool(quoteList)
	if err != nil {
		return fmt.Errorf("failed to build quote pool: %w", err)
	}

	st, err := store.OpenMemory()
	if err != nil {
		return fmt.Errorf("failed to open race log: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close race log: %v\n", cerr)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := tui.NewModel(cfg, st, pool, nil)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if cfg.WatchQuotes && cfg.QuotesPath != "" && dirExists(filepath.Dir(cfg.QuotesPath)) {
		err := quotes.Watch(ctx, cfg.QuotesPath, cfg.BuiltinQuotes, func(qs []quotes.Quote, err error) {
			program.Send(tui.QuotesReloadedMsg{Quotes: qs, Err: err})
		})
		if err != nil {
			logErrf("quote pack will not reload: %v\n", err)
		}
	}
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return printSession(ctx, cmd.OutOrStdout(), st)
}

// printSession writes the summary of this run's races after the TUI exits.
func printSession(ctx context.Context, w io.Writer, st *store.Store) error {
	agg, err := st.Aggregate(ctx)
	if err != nil {
		return fmt.Errorf("failed to summarize session: %w", err)
	}
	if agg.Races == 0 {
		return nil
	}
	races, err := st.ListRaces(ctx)
	if err != nil {
		return fmt.Errorf("failed to list races: %w", err)
	}
	sparks := make(map[int64]string, len(races))
	for _, r := range races {
		splits, err := st.ListSplits(ctx, r.ID)
		if err != nil {
			return fmt.Errorf("failed to list splits: %w", err)
		}
		sparks[r.ID] = stats.Sparkline(stats.SplitWPM(stats.Restore(r, splits)))
	}
	if err := stats.RenderSession(w, agg, races, sparks); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	last := races[len(races)-1]
	splits, err := st.ListSplits(ctx, last.ID)
	if err != nil {
		return fmt.Errorf("failed to list splits: %w", err)
	}
	rec := stats.Restore(last, splits)
	if _, err := fmt.Fprintf(w, "\nLast race: %s\n", last.QuoteName); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderResult(w, rec); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.PlotRace(w, rec, 0, chartHeight, false); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newQuotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quotes",
		Short: "List the quote pool",
		Args:  cobra.NoArgs,
		RunE:  runQuotesCmd,
	}
}

func runQuotesCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	quoteList, err := quotes.Load(cfg.QuotesPath, cfg.BuiltinQuotes)
	if err != nil {
		return fmt.Errorf("failed to load quotes: %w", err)
	}
	pool, err := quotes.NewPool(quoteList)
	if err != nil {
		return fmt.Errorf("failed to build quote pool: %w", err)
	}
	for _, q := range pool.Quotes() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%d chars)\n", q.Name, len([]rune(q.Text))); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newLayoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Print the keyboard layouts",
		Args:  cobra.NoArgs,
		RunE:  runLayoutsCmd,
	}
	cmd.Flags().BoolVar(&layoutsShift, "shift", false, "print shifted keys")
	return cmd
}

func runLayoutsCmd(cmd *cobra.Command, _ []string) error {
	for _, name := range layout.Names() {
		l, _ := layout.Lookup(name)
		rows := l.Rows
		if layoutsShift {
			rows = l.Shifted()
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for _, row := range rows {
			keys := make([]string, len(row))
			for i, r := range row {
				keys[i] = string(r)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", strings.Join(keys, " ")); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typing configuration
# Uncomment a value to enable it. CLI flags override config values.

[race]
# username = %q         # Name shown on the title screen
# layout = %q           # Keyboard layout: %s
# quotes = %q           # Quote pack (.toml with [[quote]] tables, or .yaml with a quotes list)
# builtin-quotes = true       # Include the built-in quotes
# watch-quotes = true         # Reload the quote pack when it changes
`,
		defaultUsername,
		layout.Default,
		strings.Join(layout.Names(), ", "),
		config.DefaultQuotesPath(),
	)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
