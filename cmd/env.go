package cmd

import (
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidstrip/vidstrip/color"
	"github.com/vidstrip/vidstrip/config"
	"github.com/vidstrip/vidstrip/constant"
	"github.com/vidstrip/vidstrip/style"
	"github.com/vidstrip/vidstrip/where"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "only show variables that are not set")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envName maps an exposed config key to the variable viper reads it from.
func envName(key string) string {
	if key == where.EnvConfigPath {
		return key
	}

	return strings.ToUpper(constant.Vidstrip + "_" + config.EnvKeyReplacer.Replace(key))
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables vidstrip understands",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		names := lo.Map(append(slices.Clone(config.EnvExposed), where.EnvConfigPath), func(key string, _ int) string {
			return envName(key)
		})
		slices.Sort(names)

		for _, name := range names {
			value, present := os.LookupEnv(name)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(name))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
