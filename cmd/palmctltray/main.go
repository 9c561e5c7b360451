// Command palmctltray is a small system-tray toggler for palmctl's on-disk
// enable flag. It runs as its own process: the main gesture loop (cmd/palmctl)
// polls the same flag file on every guard step, so toggling here takes effect
// on the loop's next tick without either process needing to know about the
// other directly.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fyne.io/systray"

	"github.com/wavepunk/palmctl/control"
)

var flagPath = flag.String("enable-flag", "", "Path to the on-disk enable flag (defaults to the standard config location)")

// watchInterval keeps the menu checkmark in sync even when the flag is
// flipped by something other than this tray (e.g. a hotkey daemon).
const watchInterval = 200 * time.Millisecond

func main() {
	log.SetFlags(0)
	flag.Parse()

	path := *flagPath
	if path == "" {
		path = control.DefaultFlagPath()
	}

	flagFile := control.NewDiskFlag(path)
	if err := flagFile.Init(true); err != nil {
		log.Fatalf("palmctltray: %v", err)
	}

	systray.Run(func() { onReady(flagFile) }, onExit)
}

func onReady(flagFile *control.DiskFlag) {
	systray.SetTitle("palmctl")
	systray.SetTooltip("palmctl gesture control")

	toggleItem := systray.AddMenuItem("Toggle ON/OFF", "Enable or disable gesture control")
	onItem := systray.AddMenuItem("Turn ON", "Enable gesture control")
	offItem := systray.AddMenuItem("Turn OFF", "Disable gesture control")
	systray.AddSeparator()
	quitItem := systray.AddMenuItem("Quit", "Quit the tray icon")

	refresh := func() {
		if flagFile.Get() {
			systray.SetTitle("palmctl (ON)")
		} else {
			systray.SetTitle("palmctl (OFF)")
		}
	}
	refresh()

	go func() {
		ticker := time.NewTicker(watchInterval)
		defer ticker.Stop()
		last := flagFile.Get()
		for range ticker.C {
			cur := flagFile.Get()
			if cur != last {
				last = cur
				refresh()
			}
		}
	}()

	for {
		select {
		case <-toggleItem.ClickedCh:
			if err := flagFile.Set(!flagFile.Get()); err != nil {
				fmt.Fprintf(os.Stderr, "palmctltray: %v\n", err)
			}
			refresh()
		case <-onItem.ClickedCh:
			if err := flagFile.Set(true); err != nil {
				fmt.Fprintf(os.Stderr, "palmctltray: %v\n", err)
			}
			refresh()
		case <-offItem.ClickedCh:
			if err := flagFile.Set(false); err != nil {
				fmt.Fprintf(os.Stderr, "palmctltray: %v\n", err)
			}
			refresh()
		case <-quitItem.ClickedCh:
			systray.Quit()
			return
		}
	}
}

func onExit() {}
