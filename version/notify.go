package version

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/vidstrip/vidstrip/color"
	"github.com/vidstrip/vidstrip/constant"
	"github.com/vidstrip/vidstrip/icon"
	"github.com/vidstrip/vidstrip/key"
	"github.com/vidstrip/vidstrip/log"
	"github.com/vidstrip/vidstrip/style"
	"github.com/vidstrip/vidstrip/util"
)

// Notify prints a banner when a newer release exists. Failures are logged and otherwise silent.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for updates...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()

	if err != nil {
		log.Warnf("version check: %s", err)
		return
	}

	if cmp, err := Compare(latest, constant.Version); err != nil || cmp <= 0 {
		return
	}

	fmt.Printf("\n%s %s %s\n%s\n\n",
		style.Fg(color.Green)("▶"),
		style.Bold("vidstrip "+latest+" is available"),
		style.Faint(fmt.Sprintf("(you have %s)", constant.Version)),
		style.Faint(releasesPage+latest),
	)
}
