package version

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/catchup-cli/catchup/color"
	"github.com/catchup-cli/catchup/constant"
	"github.com/catchup-cli/catchup/icon"
	"github.com/catchup-cli/catchup/key"
	"github.com/catchup-cli/catchup/style"
	"github.com/catchup-cli/catchup/util"
	"github.com/spf13/viper"
)

// Notify prints a notice to stderr when a newer release is available.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Fprintf(os.Stderr, `
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/"+constant.Repository+"/releases/tag/v"+version),
	)
}
