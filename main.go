package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/spotdemo4/tamil-insight/internal/api"
	"github.com/spotdemo4/tamil-insight/internal/config"
	"github.com/spotdemo4/tamil-insight/internal/render"
	"github.com/spotdemo4/tamil-insight/internal/tamil"
	"github.com/spotdemo4/tamil-insight/internal/tui"
	"github.com/spotdemo4/tamil-insight/internal/worker"
)

var version = "dev"

var errNotReady = errors.New("backend is not ready")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		tui.PrintErr("error: %v", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tamil-insight",
		Short: "Analyze Tamil text against a Tamil literature backend",
		Long: `tamil-insight sends Tamil text to an analysis backend and shows what it
found: the matching verse and its meaning for classical works, or word meanings
and sentiment for everyday text.

Without --text it starts an interactive terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.getConfig(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("text") {
				return runOnce(cmd.Context(), c, opts.text, opts.format, cmd.InOrStdin(), cmd.OutOrStdout())
			}

			return runTui(c)
		},
	}
	opts.register(root)

	root.AddCommand(newHealthCommand(opts))
	root.AddCommand(newVersionCommand())

	return root
}

func newHealthCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the backend has its models and database loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.getConfig(cmd)
			if err != nil {
				return err
			}

			return runHealth(cmd.Context(), c, cmd.OutOrStdout())
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tamil-insight %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

func newClient(c *config.Config) (*api.Client, error) {
	u, err := c.ParsedURL()
	if err != nil {
		return nil, err
	}

	return api.New(u, c.Headers, c.Timeout), nil
}

func runTui(c *config.Config) error {
	logger, closer, err := newLogger(c, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	client, err := newClient(c)
	if err != nil {
		return err
	}

	// Create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := sync.WaitGroup{}

	// Create channels
	requests := make(chan string, 16)
	output := make(chan tui.Msg, 16)

	// Create tea
	t := tea.NewProgram(
		tui.New(version, tui.DefaultExamples, c.ExampleDelay, requests, output),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	// Start worker
	w := worker.New(client, logger, output)
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.Run(ctx, requests)
	}()

	logger.Info("starting", "version", version, "url", c.URL)

	_, err = t.Run()
	cancel()
	wg.Wait()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, tea.ErrInterrupted) {
		return err
	}

	return nil
}

// runOnce validates and analyzes a single text and writes the rendered
// result to out.
func runOnce(ctx context.Context, c *config.Config, text, format string, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	format = strings.ToLower(format)
	switch format {
	case "text", "html", "json":
	default:
		return fmt.Errorf("invalid format: %s (must be one of: text, html, json)", format)
	}

	if text == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("could not read stdin: %w", err)
		}
		text = string(data)
	}

	text, err := tamil.Validate(text)
	if err != nil {
		return err
	}

	logger, _, err := newLogger(c, false)
	if err != nil {
		return err
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}

	msg := worker.New(client, logger, nil).Analyze(ctx, text)
	if msg.Type == tui.MsgError {
		return errors.New(msg.Text)
	}

	switch format {
	case "text":
		_, err = fmt.Fprintln(out, tui.RenderResult(render.Render(msg.Data), 80))
	case "html":
		err = render.HTML(out, render.Render(msg.Data))
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(msg.Data)
	}

	return err
}

func runHealth(ctx context.Context, c *config.Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, _, err := newLogger(c, false)
	if err != nil {
		return err
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}

	health, err := worker.New(client, logger, nil).CheckHealth(ctx)
	if err != nil {
		return err
	}

	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	fmt.Fprintf(out, "models loaded:   %s\n", yesNo(health.ModelsLoaded))
	fmt.Fprintf(out, "database loaded: %s\n", yesNo(health.DatabaseLoaded))
	fmt.Fprintf(out, "verses:          %d\n", health.VerseCount)

	if !health.Ready() {
		return errNotReady
	}

	return nil
}
