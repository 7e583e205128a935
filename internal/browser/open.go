// Package browser opens URLs in the user's default browser, used for the
// web links in the help overlay.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open launches the default browser at url. The command is started, not
// waited on; the TUI keeps running.
func Open(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("no browser opener for %s", runtime.GOOS)
	}
}
