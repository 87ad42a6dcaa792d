package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/pders01/algosearch/internal/config"
	"github.com/pders01/algosearch/internal/debuglog"
	"github.com/pders01/algosearch/internal/validation"
)

// Launcher opens result links with the system's URL handler.
type Launcher struct {
	opener    string
	validator *validation.URLValidator
	start     func(cmd *exec.Cmd) error
}

func NewLauncher(cfg *config.Config) *Launcher {
	opener := cfg.Browser.DefaultOpener
	if opener == "" {
		opener = findCommand(candidates()...)
	}

	return &Launcher{
		opener:    opener,
		validator: validation.NewLinkValidator(),
		start:     startDetached,
	}
}

// Opener returns the command used to open links.
func (l *Launcher) Opener() string {
	return l.opener
}

// Open validates link and hands it to the opener without waiting for it.
func (l *Launcher) Open(link string) error {
	normalized, err := l.validator.ValidateAndNormalize(link)
	if err != nil {
		return fmt.Errorf("refusing to open %q: %w", link, err)
	}

	if l.opener == "" {
		return fmt.Errorf("no application found to open URL")
	}

	cmd := exec.Command(l.opener, Args(l.opener, normalized)...)
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("failed to start %s: %w", l.opener, err)
	}

	debuglog.Infof("opened %s with %s", normalized, l.opener)
	return nil
}

// Args builds the argument list for opener.
func Args(opener, link string) []string {
	if opener == "rundll32" {
		return []string{"url.dll,FileProtocolHandler", link}
	}
	return []string{link}
}

func candidates() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32"}
	default:
		return []string{"xdg-open", "sensible-browser", "x-www-browser", "wslview"}
	}
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

func findCommand(commands ...string) string {
	for _, cmd := range commands {
		if _, err := exec.LookPath(cmd); err == nil {
			return cmd
		}
	}
	return ""
}
