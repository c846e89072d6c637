package cli

import (
	"context"
	"testing"

	"github.com/five82/flow/internal/app"
)

func execute(t *testing.T, args ...string) (app.Options, error) {
	t.Helper()
	var got app.Options
	cmd := newRootCmd(func(_ context.Context, opts app.Options) error {
		got = opts
		return nil
	})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetContext(context.Background())
	err := cmd.Execute()
	return got, err
}

func TestRootCmd_Flags(t *testing.T) {
	opts, err := execute(t, "--config", "/tmp/c.toml", "--prefs", "/tmp/p.toml",
		"--log-file", "/tmp/flow.log", "--log-level", "debug", "-n", "500", "/var/log/app.log")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := app.Options{
		ConfigPath: "/tmp/c.toml",
		PrefsPath:  "/tmp/p.toml",
		Source:     "/var/log/app.log",
		MaxLines:   500,
		LogFile:    "/tmp/flow.log",
		LogLevel:   "debug",
	}
	if opts != want {
		t.Fatalf("options = %#v, want %#v", opts, want)
	}
}

func TestRootCmd_Defaults(t *testing.T) {
	opts, err := execute(t)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if opts.Source != "" || opts.MaxLines != 0 || opts.LogLevel != "info" {
		t.Fatalf("options = %#v, want defaults", opts)
	}
}

func TestRootCmd_RejectsExtraArgs(t *testing.T) {
	if _, err := execute(t, "a.log", "b.log"); err == nil {
		t.Fatal("Execute() with two paths returned nil error")
	}
}

func TestRootCmd_RejectsNegativeLines(t *testing.T) {
	if _, err := execute(t, "--lines", "-1"); err == nil {
		t.Fatal("Execute() with negative --lines returned nil error")
	}
}
