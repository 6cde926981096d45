// Package cmd implements the vidstrip command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidstrip/vidstrip/color"
	"github.com/vidstrip/vidstrip/config"
	"github.com/vidstrip/vidstrip/constant"
	"github.com/vidstrip/vidstrip/filesystem"
	"github.com/vidstrip/vidstrip/icon"
	"github.com/vidstrip/vidstrip/key"
	"github.com/vidstrip/vidstrip/log"
	"github.com/vidstrip/vidstrip/style"
	"github.com/vidstrip/vidstrip/tui"
	"github.com/vidstrip/vidstrip/version"
)

// featureFlags turn a feature off for one run without touching the config file.
var featureFlags = map[string]string{
	"no-captions":   key.FeaturesCaptions,
	"no-speed":      key.FeaturesPlaybackSpeed,
	"no-mini":       key.FeaturesMiniPlayer,
	"no-theater":    key.FeaturesTheater,
	"no-fullscreen": key.FeaturesFullScreen,
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("title", "t", "", "Window and strip title (defaults to the file name)")

	rootCmd.Flags().StringP("captions-file", "c", "", "Load captions from this file")
	lo.Must0(viper.BindPFlag(key.PlayerCaptionsFile, rootCmd.Flags().Lookup("captions-file")))

	rootCmd.Flags().StringP("previews", "p", "", "Directory holding timeline preview frames")
	lo.Must0(viper.BindPFlag(key.PreviewsDir, rootCmd.Flags().Lookup("previews")))

	for name, k := range featureFlags {
		rootCmd.Flags().Bool(name, false, "Disable the control bound to "+k)
	}

	rootCmd.Flags().Bool("no-resume", false, "Start from the beginning and do not save the position")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.Vidstrip + " [source]",
	Short: "Terminal playback controls for mpv",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Terminal playback controls for mpv"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		for name, k := range featureFlags {
			if lo.Must(cmd.Flags().GetBool(name)) {
				viper.Set(k, false)
			}
		}

		if lo.Must(cmd.Flags().GetBool("no-resume")) {
			viper.Set(key.HistoryResume, false)
		}

		if !strings.Contains(args[0], "://") && !filesystem.IsFile(args[0]) {
			handleErr(fmt.Errorf("no such file: %s", args[0]))
		}

		CheckDependencies()

		options := tui.Options{
			Source:       args[0],
			Title:        lo.Must(cmd.Flags().GetString("title")),
			CaptionsFile: viper.GetString(key.PlayerCaptionsFile),
			Features:     config.Features(),
			Resume:       viper.GetBool(key.HistoryResume),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
