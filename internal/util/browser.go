package util

import (
	"errors"
	"os/exec"
	"runtime"
)

// browserCommands candidate commands opening url on goos, in order of preference
func browserCommands(goos, url string) [][]string {
	switch goos {
	case "windows":
		// rundll32 works from Windows 7 on; explorer is the fallback
		return [][]string{
			{"rundll32", "url.dll,FileProtocolHandler", url},
			{"explorer", url},
		}
	case "darwin":
		return [][]string{{"open", url}}
	default:
		cmds := [][]string{{"xdg-open", url}}
		for _, b := range []string{"google-chrome", "firefox", "chromium-browser", "sensible-browser"} {
			cmds = append(cmds, []string{b, url})
		}
		return cmds
	}
}

// OpenBrowser opens url in the default browser, trying fallbacks in turn
func OpenBrowser(url string) error {
	var errs []error
	for _, argv := range browserCommands(runtime.GOOS, url) {
		err := exec.Command(argv[0], argv[1:]...).Start()
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
