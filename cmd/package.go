package cmd

import (
	"github.com/spf13/cobra"

	"buildtool/internal/config"
	"buildtool/internal/logger"
	"buildtool/internal/pkgbuild"
	"buildtool/internal/ui"
)

var (
	pkgYes        bool
	pkgNo         bool
	pkgClean      bool
	pkgProfile    string
	pkgOut        string
	pkgConfigPath string
)

// packageCmd compiles and packages the application for distribution.
var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Compile and package the application for distribution",
	Long: `Compile and package the application so that it can be distributed to other
machines (with the same OS and architecture).

The -y or -n flags auto-accept or auto-deny any prompts for user confirmation.

The --profile flag builds with a different cargo profile than the configured
default.

When the -o flag is provided, a file extension can also be provided so that an
archive is created instead of a directory. For example '-o out' will create a
directory, but '-o out.zip' or '-o out.tar.xz' will create an archive. The
default (if -o is not provided) is to create a directory called 'package'.

The --clean flag just removes the directory/file specified by -o (or its
default).

Make sure to run 'buildtool setup' before running this.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if pkgYes && pkgNo {
			logger.Fatal("Flags `-y` and `-n` are incompatible.")
		}
		if pkgClean && cmd.Flags().Changed("profile") {
			logger.Fatal("Flags `--profile` and `--clean` are incompatible.")
		}
		if pkgYes {
			ui.SetAutoAnswer("y")
		}
		if pkgNo {
			ui.SetAutoAnswer("n")
		}

		cfg, err := config.Load(pkgConfigPath)
		if err != nil {
			logger.Fatal("%v", err)
		}

		profile := pkgProfile
		if profile == "" {
			profile = cfg.Build.Profile
		}

		pkgbuild.Run(pkgbuild.Options{
			Profile:  profile,
			Features: cfg.Build.Features,
			Out:      pkgOut,
			Clean:    pkgClean,
			CodecDir: cfg.Codec.Dir,
		})
	},
}

func init() {
	packageCmd.Flags().BoolVarP(&pkgYes, "yes", "y", false,
		"Automatically answer yes to every confirmation prompt")
	packageCmd.Flags().BoolVarP(&pkgNo, "no", "n", false,
		"Automatically answer no to every confirmation prompt")
	packageCmd.Flags().StringVar(&pkgProfile, "profile", "",
		"Cargo build profile (defaults to the configured profile)")
	packageCmd.Flags().StringVarP(&pkgOut, "out", "o", "package",
		"Output path; add .zip, .tar, .tar.gz, or .tar.xz to create an archive")
	packageCmd.Flags().BoolVar(&pkgClean, "clean", false,
		"Remove the output path and exit")
	packageCmd.Flags().StringVarP(&pkgConfigPath, "config", "c", config.DefaultPath,
		"Path to the configuration file")
	rootCmd.AddCommand(packageCmd)
}
