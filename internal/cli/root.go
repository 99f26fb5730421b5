// Package cli wires flags, config and the highlighting pipeline into the
// hilite command.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/TimelordUK/hilite/internal/config"
	"github.com/TimelordUK/hilite/internal/driver"
	"github.com/TimelordUK/hilite/internal/highlight"
	"github.com/TimelordUK/hilite/internal/log"
	"github.com/TimelordUK/hilite/internal/render"
	"github.com/TimelordUK/hilite/internal/source"
)

var version = "dev"

type options struct {
	configPath  string
	theme       string
	lexer       string
	mode        string
	color       string
	filter      bool
	lineNumbers bool
	tabWidth    int
	debug       bool
	listThemes  bool
	listLexers  bool
	writeConfig bool
}

// listing reports whether the invocation only prints information
func (o *options) listing() bool {
	return o.listThemes || o.listLexers || o.writeConfig
}

// NewRootCommand builds the hilite command
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hilite [flags] <pattern> <path>",
		Short: "Print a file with syntax highlighting",
		Long: `hilite prints a file to standard output with ANSI syntax highlighting.

The pattern argument is accepted for compatibility and ignored unless
--filter is given, in which case only lines containing it are printed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.listing() {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "",
		"config file (default: "+config.GetConfigPath()+")")
	flags.StringVarP(&opts.theme, "theme", "t", highlight.DefaultTheme, "colour theme")
	flags.StringVarP(&opts.lexer, "lexer", "l", "", "force a lexer instead of detecting one")
	flags.StringVar(&opts.mode, "mode", string(driver.ModeStrict),
		"on a line that cannot be highlighted: strict aborts, best-effort prints it plain")
	flags.StringVar(&opts.color, "color", string(render.ColorAlways), "always, auto or never")
	flags.BoolVarP(&opts.filter, "filter", "f", false, "only print lines containing pattern")
	flags.BoolVarP(&opts.lineNumbers, "line-numbers", "n", false, "number output lines")
	flags.IntVar(&opts.tabWidth, "tab-width", 0, "expand tabs to this width (0 keeps tabs)")
	flags.BoolVar(&opts.debug, "debug", false, "write a debug log to "+log.DefaultPath)
	flags.BoolVar(&opts.listThemes, "list-themes", false, "list available themes and exit")
	flags.BoolVar(&opts.listLexers, "list-lexers", false, "list available lexers and exit")
	flags.BoolVar(&opts.writeConfig, "write-config", false, "write the effective config file and exit")

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
}

// FormatError renders err for w, in colour when w is a terminal
func FormatError(w io.Writer, err error) string {
	renderer := lipgloss.NewRenderer(w)
	label := renderer.NewStyle().Foreground(lipgloss.Color("167")).Bold(true) // Soft red
	return label.Render("Error:") + " " + err.Error()
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cleanup, err := setupLogging(opts.debug)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		cleanup = func() {}
	}
	defer cleanup()

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		log.ErrorErr(log.CatConfig, "loading config", err)
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.listThemes:
		return printNames(out, highlight.LoadDefaultThemes().Names())
	case opts.listLexers:
		return printNames(out, highlight.LoadDefaultGrammars().Names())
	case opts.writeConfig:
		return writeConfig(cmd, opts, cfg)
	}

	return highlightFile(out, cfg, args[0], args[1], opts.filter)
}

func setupLogging(debug bool) (func(), error) {
	path, ok := log.PathFromEnv()
	if debug && !ok {
		path, ok = log.DefaultPath, true
	}
	if !ok {
		return func() {}, nil
	}
	return log.Init(path)
}

// loadConfig layers defaults, the config file and explicitly set flags
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(opts.configPath)
	}
	if err != nil {
		return nil, err
	}
	log.Debug(log.CatConfig, "config loaded", "path", configPath(opts))

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme.Name = opts.theme
	}
	if flags.Changed("lexer") {
		cfg.Highlight.Lexer = opts.lexer
	}
	if flags.Changed("mode") {
		cfg.Highlight.Mode = opts.mode
	}
	if flags.Changed("color") {
		cfg.Display.Color = opts.color
	}
	if flags.Changed("line-numbers") {
		cfg.Display.LineNumbers = opts.lineNumbers
	}
	if flags.Changed("tab-width") {
		cfg.Display.TabWidth = opts.tabWidth
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeConfig(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	var err error
	if opts.configPath == "" {
		err = config.Save(cfg)
	} else {
		err = config.SaveFile(opts.configPath, cfg)
	}
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	path := configPath(opts)
	log.Info(log.CatConfig, "config written", "path", path)
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
	return nil
}

func configPath(opts *options) string {
	if opts.configPath != "" {
		return opts.configPath
	}
	return config.GetConfigPath()
}

func printNames(w io.Writer, names []string) error {
	for _, name := range slices.Sorted(slices.Values(names)) {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// highlightFile opens path and streams its highlighted lines to out
func highlightFile(out io.Writer, cfg *config.Config, pattern, path string, filter bool) error {
	grammars := highlight.LoadDefaultGrammars()
	for ext, name := range cfg.Highlight.Aliases {
		if err := grammars.SetAlias(ext, name); err != nil {
			return highlight.NewInitError("", err)
		}
	}
	if err := grammars.Force(cfg.Highlight.Lexer); err != nil {
		return highlight.NewInitError("", err)
	}

	style, err := highlight.LoadDefaultThemes().Get(cfg.Theme.Name)
	if err != nil {
		return highlight.NewInitError("", err)
	}

	sess, err := highlight.Open(path, grammars, style)
	if err != nil {
		return err
	}
	defer sess.Close()

	mode, err := driver.ParseMode(cfg.Highlight.Mode)
	if err != nil {
		return err
	}
	colorMode, err := render.ParseColorMode(cfg.Display.Color)
	if err != nil {
		return err
	}
	profile := render.Profile(colorMode, out)

	ropts := render.Options{TabWidth: cfg.Display.TabWidth}
	if cfg.Display.LineNumbers {
		count, err := sess.LineCount()
		if err != nil {
			return highlight.NewIOError(path, 0, err)
		}
		ropts.Gutter = render.NewGutter(count, out, profile)
	}

	var renderer render.Renderer
	if profile == termenv.Ascii {
		renderer = render.NewPlainRenderer(ropts)
	} else {
		enc, err := render.NewEncoder(render.FormatterName(profile), style)
		if err != nil {
			return err
		}
		renderer = render.NewSyntaxRenderer(enc, ropts)
		log.Debug(log.CatRender, "encoder selected", "formatter", enc.Name())
	}
	log.Debug(log.CatRender, "renderer selected", "profile", profile, "color", colorMode)

	var textFilter *source.TextFilter
	if filter {
		textFilter = source.NewTextFilter(pattern)
	} else {
		log.Debug(log.CatCLI, "pattern ignored without --filter", "pattern", pattern)
	}

	w := bufio.NewWriter(out)
	err = driver.Run(w, sess, driver.Options{
		Mode:     mode,
		Renderer: renderer,
		Filter:   textFilter,
	})
	if flushErr := w.Flush(); flushErr != nil && err == nil {
		err = highlight.NewIOError(path, 0, flushErr)
	}
	return err
}
