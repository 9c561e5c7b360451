/*
Package palmctl turns a stream of timestamped hand-tracking observations into a
stream of synthetic pointing-device events: relative pointer motion, wheel ticks
and button transitions, emulating a hands-free mouse.

The package provides a command line interface driving a real mouse device. To
check the supported commands type:

	$ palmctl --help

In case you wish to integrate the API in a self constructed environment here is a
simple example:

	package main

	import "github.com/wavepunk/palmctl"

	func main() {
		interp := palmctl.NewInterpreter(palmctl.DefaultPreset(), 1920, 1080, nil)

		for frame := range frames {
			for _, ev := range interp.Process(frame) {
				applyToSink(ev)
			}
		}
	}
*/
package palmctl
