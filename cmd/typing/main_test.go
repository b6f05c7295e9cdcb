package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kingcabrams/typing/internal/config"
	"github.com/kingcabrams/typing/internal/quotes"
	"github.com/kingcabrams/typing/internal/race"
	"github.com/kingcabrams/typing/internal/stats"
	"github.com/kingcabrams/typing/internal/store"
)

func TestPrintSessionEmpty(t *testing.T) {
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	var buf bytes.Buffer
	if err := printSession(context.Background(), &buf, st); err != nil {
		t.Fatalf("print session: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestPrintSessionWithRace(t *testing.T) {
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	rec := race.Record{
		Correct: 10,
		Misses:  2,
		Elapsed: 3 * time.Second,
		Splits: []race.Split{
			{Elapsed: time.Second, Hits: 3, Misses: 1},
			{Elapsed: 2 * time.Second, Hits: 7, Misses: 2},
		},
	}
	summary, splits := stats.Summarize(rec, "Sample", "tester", "qwerty", time.Unix(0, 0))
	if _, err := st.InsertRace(context.Background(), summary, splits); err != nil {
		t.Fatalf("insert race: %v", err)
	}

	var buf bytes.Buffer
	if err := printSession(context.Background(), &buf, st); err != nil {
		t.Fatalf("print session: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Races: 1", "Last race: Sample", "acc 83.33%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestLayoutsCommand(t *testing.T) {
	cmd := newLayoutsCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--shift"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "colemak") || !strings.Contains(out, "dvorak") {
		t.Fatalf("expected layout names, got:\n%s", out)
	}
	if !strings.Contains(out, "Q W E R T Y") {
		t.Fatalf("expected shifted qwerty row, got:\n%s", out)
	}
}

func TestDefaultConfigTemplateParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg.Race.Username != nil || cfg.Race.Layout != nil {
		t.Fatalf("expected commented template to set nothing, got %+v", cfg.Race)
	}
}

func TestQuotesCommandListsPool(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"quotes", "--quotes", filepath.Join(dir, "missing.toml")})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(quotes.Builtin()) {
		t.Fatalf("expected %d quotes, got %d:\n%s", len(quotes.Builtin()), len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "chars)") {
		t.Fatalf("unexpected quote line: %q", lines[0])
	}
}
