package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidstrip/vidstrip/color"
	"github.com/vidstrip/vidstrip/constant"
	"github.com/vidstrip/vidstrip/style"
	"github.com/vidstrip/vidstrip/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "print the version only")
}

type buildInfo struct {
	App, Version, Revision string
	BuiltAt, BuiltBy       string
	OS, Arch, Player       string
}

const versionTemplate = `{{ accent "▶" }} {{ bold .App }} {{ faint .Version }}

  {{ faint "commit  " }} {{ .Revision }}
  {{ faint "built   " }} {{ .BuiltAt }} by {{ .BuiltBy }}
  {{ faint "platform" }} {{ .OS }}/{{ .Arch }}
  {{ faint "player  " }} {{ .Player }}
`

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		info := buildInfo{
			App:      constant.Vidstrip,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			Player:   constant.MPV,
		}

		t, err := template.New("version").Funcs(template.FuncMap{
			"faint":  style.Faint,
			"bold":   style.Bold,
			"accent": style.Fg(color.Purple),
		}).Parse(versionTemplate)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), info))
	},
}
