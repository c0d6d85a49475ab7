package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/veteranbv/ThinkiPlex/internal/config"
	"github.com/veteranbv/ThinkiPlex/internal/util"
)

var (
	cfg *config.Config

	flagNoColor bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "thinkiplex",
	Short: "Download Thinkific courses and organize them for Plex",
	Long: `thinkiplex downloads the courses you have purchased on Thinkific
platforms and keeps a local, incrementally-updated copy of every lesson,
quiz, PDF and presentation.

Downloaded courses can be organized into a Plex-ready show layout,
transcribed, summarized, and compiled into a single PDF.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: config/thinkiplex.yaml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		// API keys and auth overrides may live in a .env next to the config.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newSetupCmd(),
		newDownloadCmd(),
		newCoursesCmd(),
		newOrganizeCmd(),
		newTranscribeCmd(),
		newSummarizeCmd(),
		newPDFCmd(),
		newAuthCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
