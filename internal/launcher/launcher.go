package launcher

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoURL is returned when a book has no link to open
var ErrNoURL = errors.New("no link to open")

// Launcher opens book links in an external browser
type Launcher struct {
	command string   // configured browser command, empty for system default
	args    []string // additional arguments placed before the URL
	goos    string
	logger  *slog.Logger

	start func(name string, args ...string) error // replaced in tests
}

// New creates a Launcher. An empty command uses the system default handler.
func New(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command: command,
		args:    args,
		goos:    runtime.GOOS,
		logger:  logger,
		start:   startCommand,
	}
}

// Open opens url without waiting for the browser to exit
func (l *Launcher) Open(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrNoURL
	}

	name, args := l.commandFor(url)
	l.logger.Info("opening link", "command", name, "args", args)
	if err := l.start(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// commandFor resolves the executable and arguments for url
func (l *Launcher) commandFor(url string) (string, []string) {
	if l.command != "" {
		// On macOS, GUI apps not in PATH are reached through 'open -a'
		if l.goos == "darwin" {
			if _, err := exec.LookPath(l.command); err != nil {
				args := []string{"-a", l.command}
				if len(l.args) > 0 {
					args = append(args, "--args")
					args = append(args, l.args...)
				}
				return "open", append(args, url)
			}
		}
		args := append(append([]string{}, l.args...), url)
		return l.command, args
	}

	switch l.goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{url}
	}
}

// startCommand launches name asynchronously
func startCommand(name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}
