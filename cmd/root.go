package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/arcanaland/cardrename/internal/config"
	"github.com/arcanaland/cardrename/internal/renamer"
)

var (
	configPath string
	verbose    bool
	colorFlag  string

	noRecursive bool
	apply       bool
	onlyExt     string

	// Populated by loadSettings before any command runs
	settings *config.Config
	log      = logrus.New()
)

// RootCmd renames card assets when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardrename [roots...]",
	Short: "Normalize playing-card image file names",
	Long: `Cardrename scans folders of playing-card images and renames recognized files
to the canonical {suit}_{rank}.{ext} convention (c_a.png, h_q.png, back_b.png).

Both the Pixel_Cards names (Clubs_1, Hearts_13, Joker_Red) and the Finnish
names (hertta_01, tausta_sininen) are understood. Without --apply nothing is
renamed; the planned renames are only printed.

Examples:
  cardrename ./cards
  cardrename --apply --only-ext png,gif ./cards ./extra/Joker_Red.png
  cardrename --no-recursive --apply ./cards/Sprites

A root that exists on disk is renamed even when it shares a name with a
subcommand, so "cardrename --apply check" renames the ./check folder.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE:              runRename,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/cardrename/config.toml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log why each file was skipped or renamed")
	RootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Color output: auto, always or never")

	RootCmd.Flags().BoolVar(&noRecursive, "no-recursive", false, "Do not descend into subdirectories")
	RootCmd.Flags().BoolVar(&apply, "apply", false, "Rename files for real (default is a dry-run preview)")
	RootCmd.Flags().StringVar(&onlyExt, "only-ext", "", "Accepted extensions, comma separated (default "+config.DefaultExtensions+")")
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context) error {
	RootCmd.SetArgs(rootArgs(os.Args[1:]))
	return RootCmd.ExecuteContext(ctx)
}

// rootArgs rewrites the first positional argument into an explicit relative
// path when it names a subcommand but also exists on disk, so cobra runs the
// rename instead of dispatching.
func rootArgs(args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args
		}
		if len(arg) > 1 && strings.HasPrefix(arg, "-") {
			if !strings.Contains(arg, "=") && takesValue(arg) {
				i++
			}
			continue
		}
		if !isSubcommand(arg) {
			return args
		}
		if _, err := os.Stat(arg); err != nil {
			return args
		}
		out := append([]string(nil), args...)
		out[i] = "." + string(filepath.Separator) + arg
		return out
	}
	return args
}

// takesValue reports whether a root flag consumes the next argument
func takesValue(arg string) bool {
	var f *pflag.Flag
	if strings.HasPrefix(arg, "--") {
		name := strings.TrimPrefix(arg, "--")
		if f = RootCmd.Flags().Lookup(name); f == nil {
			f = RootCmd.PersistentFlags().Lookup(name)
		}
	} else if len(arg) == 2 {
		if f = RootCmd.Flags().ShorthandLookup(arg[1:]); f == nil {
			f = RootCmd.PersistentFlags().ShorthandLookup(arg[1:])
		}
	}
	return f != nil && f.NoOptDefVal == ""
}

func isSubcommand(arg string) bool {
	// help and completion are only attached when the command executes
	if arg == "help" || arg == "completion" {
		return true
	}
	for _, c := range RootCmd.Commands() {
		if c.Name() == arg || c.HasAlias(arg) {
			return true
		}
	}
	return false
}

func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if colorFlag != "" {
		cfg.Color = config.ColorMode(colorFlag)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	settings = cfg

	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: !useColor()})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	color.NoColor = !useColor()
	return nil
}

// useColor resolves the color mode against the terminal
func useColor() bool {
	switch settings.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
}

func runRename(cmd *cobra.Command, args []string) error {
	roots := args
	if len(roots) == 0 {
		roots = settings.Roots
	}

	exts := config.ParseExtensions(settings.Extensions...)
	if cmd.Flags().Changed("only-ext") {
		exts = config.ParseExtensions(onlyExt)
	}

	recursive := settings.Recursive
	if noRecursive {
		recursive = false
	}

	opts := renamer.Options{
		Roots:      roots,
		Recursive:  recursive,
		Apply:      apply,
		Extensions: exts,
	}
	log.WithFields(logrus.Fields{
		"roots":     roots,
		"recursive": recursive,
		"apply":     apply,
	}).Debug("starting rename run")

	r := renamer.New(opts, renamer.NewReporter(cmd.OutOrStdout(), useColor()), log)
	if _, err := r.Run(); err != nil {
		return fmt.Errorf("rename aborted: %w", err)
	}
	return nil
}
