package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gioui.org/app"
	"golang.org/x/term"

	"github.com/wavepunk/palmctl"
	"github.com/wavepunk/palmctl/calib"
	"github.com/wavepunk/palmctl/control"
	"github.com/wavepunk/palmctl/overlay"
	"github.com/wavepunk/palmctl/sensor"
	"github.com/wavepunk/palmctl/sink"
	"github.com/wavepunk/palmctl/utils"
)

const HelpBanner = `
┌─┐┌─┐┬  ┌┬┐┌─┐┌┬┐┬
├─┘├─┤│  ││││   │ │
┴  ┴ ┴┴─┘┴ ┴└─┘ ┴ ┴

Hands-free pointer control from hand-tracking frames.
    Version: %s

`

// Version indicates the current build version.
var Version string

// tickInterval drives the synthetic/camera loop in the absence of a real
// frame source pushing its own cadence.
const tickInterval = 16 * time.Millisecond

var (
	presetName  = flag.String("preset", "default", "Gesture preset: default, precision or chill")
	screenW     = flag.Int("screen-width", 1920, "Screen width in pixels")
	screenH     = flag.Int("screen-height", 1080, "Screen height in pixels")
	sinkName    = flag.String("sink", "logging", "Output backend: logging, uinput or wayland")
	cascade     = flag.String("cascade", "", "Pigo cascade file path; when empty a synthetic hand source is used")
	faceAngle   = flag.Float64("angle", 0.0, "Face rotation angle, forwarded to the pigo detector")
	profilePath = flag.String("profile", "", "Calibration profile path (defaults to the standard config location)")
	calibrate   = flag.Bool("calibrate", false, "Run the calibration wizard instead of the control loop")
	showOverlay = flag.Bool("overlay", false, "Show a debug overlay window with live mode/cursor state")
	flagPath    = flag.String("enable-flag", "", "Path to the on-disk enable flag (defaults to the standard config location)")
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, fmt.Sprintf(HelpBanner, Version))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *calibrate {
		runCalibration()
		return
	}

	if *showOverlay {
		ov := overlay.New(*screenW/2, *screenH/2)
		go run(ov)
		go func() {
			if err := ov.Run(); err != nil {
				log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
			}
			os.Exit(0)
		}()
		app.Main()
		return
	}
	run(nil)
}

func run(ov *overlay.Overlay) {
	preset := palmctl.PresetByName(*presetName)

	path := *profilePath
	if path == "" {
		path = palmctl.DefaultProfilePath()
	}
	profile, err := palmctl.LoadProfile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText(
			fmt.Sprintf("no calibration profile at %s, using preset defaults", path), utils.DefaultMessage))
		profile = nil
	}

	interp := palmctl.NewInterpreter(preset, *screenW, *screenH, profile)

	s, err := sink.New(*sinkName, os.Stderr)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	fPath := *flagPath
	if fPath == "" {
		fPath = control.DefaultFlagPath()
	}
	diskFlag := control.NewDiskFlag(fPath)
	if err := diskFlag.Init(true); err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	state := control.NewState(diskFlag.Get())
	kill := control.NewKillSwitch(state, interp, s)

	var source sensor.Source
	startMs := time.Now().UnixMilli()
	if *cascade == "" {
		source = sensor.NewFake(startMs)
		fmt.Fprintln(os.Stderr, utils.DecorateText(
			"⚡ palmctl ⇢ no -cascade given, driving a synthetic hand source", utils.StatusMessage))
	} else {
		if _, err := sensor.NewPigoSource(*cascade, *faceAngle); err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		log.Fatal(utils.DecorateText(
			"the cascade loaded fine, but this build has no webcam capture wired up yet — "+
				"rerun without -cascade for the synthetic source, or feed frames via sensor.PigoSource.FrameFromImage yourself",
			utils.ErrorMessage))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	fmt.Fprintln(os.Stderr, utils.DecorateText("⚡ palmctl ⇢ running, press ctrl-c to stop", utils.StatusMessage))

	for {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, utils.DecorateText("\n⇢ shutting down", utils.DefaultMessage))
			return
		case now := <-ticker.C:
			tMs := now.UnixMilli()

			if err := diskFlag.Init(true); err == nil {
				state.SetEnabled(diskFlag.Get())
			}
			for _, ev := range kill.Guard(tMs) {
				applyEvent(kill, ev)
			}
			if !kill.Allow() {
				continue
			}

			frame, ok := source.Frame(tMs)
			if !ok {
				continue
			}
			for _, ev := range interp.Process(frame) {
				applyEvent(kill, ev)
			}

			if ov != nil {
				pushOverlay(ov, interp, frame)
			}
		}
	}
}

func applyEvent(kill *control.KillSwitch, ev palmctl.InputEvent) {
	if err := kill.Apply(ev); err != nil {
		fmt.Fprintln(os.Stderr, status(fmt.Sprintf("sink error: %v", err), utils.ErrorMessage))
	}
}

// status decorates msg with ANSI color only when stderr is an actual
// terminal, the same pipe-vs-terminal distinction the teacher's main.go drew
// around os.Stdin/os.Stdout before deciding how to read or write a file.
func status(msg string, mt utils.MessageType) string {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return msg
	}
	return utils.DecorateText(msg, mt)
}

func pushOverlay(ov *overlay.Overlay, interp *palmctl.Interpreter, frame palmctl.HandFrame) {
	x, y := interp.CursorPos()
	snap := overlay.Snapshot{Mode: interp.Mode(), CursorX: x, CursorY: y}
	if len(frame.Hands) > 0 {
		h := frame.Hands[0]
		snap.Index = h.Pinch.Index
		snap.Middle = h.Pinch.Middle
		snap.Ring = h.Pinch.Ring
		snap.Confident = h.Confidence >= 0.5
	}
	ov.Push(snap)
}

func runCalibration() {
	fmt.Fprintln(os.Stderr, utils.DecorateText("⚡ palmctl ⇢ calibration wizard", utils.StatusMessage))

	path := *profilePath
	if path == "" {
		path = palmctl.DefaultProfilePath()
	}

	c := calib.NewCalibrator()
	startMs := time.Now().UnixMilli()
	c.Start(startMs)
	source := sensor.NewFake(startMs)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	lastStep := c.Current()
	fmt.Fprintln(os.Stderr, utils.DecorateText(calib.Instructions[lastStep], utils.DefaultMessage))

	spinner := utils.NewSpinner(
		utils.DecorateText("⚡ palmctl ⇢ sampling...", utils.DefaultMessage),
		80*time.Millisecond, true)
	spinner.Start()

	for now := range ticker.C {
		tMs := now.UnixMilli()
		frame, ok := source.Frame(tMs)
		if !ok {
			continue
		}
		if len(frame.Hands) == 0 {
			continue
		}
		c.Update(frame.Hands[0], tMs)

		if c.Current() != lastStep {
			lastStep = c.Current()
			if c.Done() {
				break
			}
			spinner.StopMsg = ""
			spinner.Stop()
			fmt.Fprintln(os.Stderr, utils.DecorateText(calib.Instructions[lastStep], utils.DefaultMessage))
			spinner = utils.NewSpinner(
				utils.DecorateText("⚡ palmctl ⇢ sampling...", utils.DefaultMessage),
				80*time.Millisecond, true)
			spinner.Start()
		}
	}
	spinner.StopMsg = utils.DecorateText("⇢ sampling complete", utils.SuccessMessage)
	spinner.Stop()

	profile := c.Finalize()
	if err := palmctl.SaveProfile(path, &profile); err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	fmt.Fprintln(os.Stderr, utils.DecorateText(
		fmt.Sprintf("⇢ calibration saved to %s ✔", path), utils.SuccessMessage))
}
