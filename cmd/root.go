package cmd

import (
	"fmt"
	"io"

	"srclist/pkg/config"
	"srclist/pkg/ignore"
	"srclist/pkg/srclist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Deps carries what the command needs from the process.
type Deps struct {
	Config config.Config
	Logger *zap.Logger
	Level  zap.AtomicLevel
	Stdout io.Writer
}

// Execute prints every element of argv to Stdout, one per line, and then
// runs the root command with argv[1:]. The echo happens before any parsing,
// so it is present even when the run fails.
func Execute(argv []string, deps Deps) error {
	for _, a := range argv {
		if _, err := fmt.Fprintln(deps.Stdout, a); err != nil {
			return fmt.Errorf("failed to echo arguments: %w", err)
		}
	}

	rootCmd := NewRootCommand(deps)
	if len(argv) > 0 {
		rootCmd.SetArgs(argv[1:])
	} else {
		rootCmd.SetArgs([]string{})
	}
	return rootCmd.Execute()
}

// NewRootCommand builds the srclist command. Flag defaults come from deps.Config.
func NewRootCommand(deps Deps) *cobra.Command {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	level := deps.Level
	if level == (zap.AtomicLevel{}) {
		level = zap.NewAtomicLevel()
	}

	var (
		ext        string
		variable   string
		sortPaths  bool
		debug      bool
		ignoreFile string
		excludes   []string
	)

	rootCmd := &cobra.Command{
		Use:   "srclist [flags] <root-directory> <output-file>",
		Short: "srclist writes a CMake source list for files found under a directory",
		Long: `srclist scans <root-directory> recursively for files ending in the chosen
extension and writes them to <output-file> as a CMake list:

  set(ssl_src
  	<root-directory>/a.c
  	<root-directory>/sub/b.c
  )

The output file is created or truncated on each run.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("%w (got %d)", srclist.ErrMissingArguments, len(args))
			}
			if len(args) > 2 {
				logger.Warn("Ignoring extra arguments", zap.Strings("extra", args[2:]))
			}
			if debug {
				level.SetLevel(zapcore.DebugLevel)
			}

			matcher, err := ignore.Load(ignoreFile, excludes, logger)
			if err != nil {
				logger.Error("Failed to load exclusion patterns", zap.Error(err))
				return fmt.Errorf("failed to load exclusion patterns: %w", err)
			}

			opts := srclist.Options{
				Root:      args[0],
				Output:    args[1],
				Extension: ext,
				Variable:  variable,
				Sort:      sortPaths,
			}
			if matcher.Len() > 0 {
				opts.Exclude = matcher
			}

			_, err = srclist.Generate(opts, logger)
			return err
		},
	}

	if deps.Stdout != nil {
		rootCmd.SetOut(deps.Stdout)
	}

	flags := rootCmd.Flags()
	flags.StringVar(&ext, "ext", deps.Config.Extension, "file name suffix to collect (env "+config.EnvExtension+")")
	flags.StringVar(&variable, "var", deps.Config.Variable, "name of the generated list variable (env "+config.EnvVariable+")")
	flags.BoolVar(&sortPaths, "sort", deps.Config.Sort, "sort paths lexicographically instead of keeping walk order (env "+config.EnvSort+")")
	flags.StringVar(&ignoreFile, "ignore-file", deps.Config.IgnoreFile, "file of gitignore-style exclusion patterns (env "+config.EnvIgnoreFile+")")
	flags.StringArrayVarP(&excludes, "exclude", "x", nil, "gitignore-style pattern to exclude, relative to the root (repeatable)")
	flags.BoolVar(&debug, "debug", deps.Config.Debug, "enable debug logging (env "+config.EnvDebug+")")

	addVersion(rootCmd)
	return rootCmd
}
