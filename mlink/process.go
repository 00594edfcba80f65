package mlink

import (
	"strings"

	gopsprocess "github.com/shirou/gopsutil/v3/process"
)

// gw2ProcessNames are the executable names GW2 ships under on the platforms
// the Link Bridge supports; native Windows and the Wine/Proton case both
// still run the same binary name.
var gw2ProcessNames = []string{"gw2-64.exe", "gw2.exe"}

// IsGameRunning scans the process table for a running GW2 client, a
// stronger liveness signal than "ui_tick stopped changing" alone: it
// disambiguates "game closed" from "game briefly stalled/loading", per the
// supplemented process-liveness feature in SPEC_FULL.md. Errors walking the
// process table (permission, transient syscall failure) are treated as
// "unknown" rather than "not running", since misreporting a live game as
// dead would wrongly surface the notification banner.
func IsGameRunning() bool {
	procs, err := gopsprocess.Processes()
	if err != nil {
		return true
	}
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		lname := strings.ToLower(name)
		for _, want := range gw2ProcessNames {
			if lname == want {
				return true
			}
		}
	}
	return false
}
