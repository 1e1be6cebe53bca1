package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// DefaultSetupPath is where the CLI looks for its setup file
const DefaultSetupPath = "setup/setup.txt"

// ErrInvalidSetup is returned when a setup file value cannot be parsed
var ErrInvalidSetup = errors.New("invalid setup")

// Setup holds the output settings read from a setup file
type Setup struct {
	Title     string // Output file name, without extension unless one is given
	Width     int
	Height    int
	DrunkMode bool // Render with wide sub-pixel jitter
}

// DefaultSetup returns the settings used when no setup file exists
func DefaultSetup() Setup {
	return Setup{
		Title:  "POTATO",
		Width:  600,
		Height: 600,
	}
}

// LoadSetup reads the setup file at path. A missing file is not an error:
// the defaults are returned and the fallback is logged.
func LoadSetup(path string, logger core.Logger) (Setup, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Printf("No setup file at %s, using default values\n", path)
		return DefaultSetup(), nil
	}
	if err != nil {
		return Setup{}, fmt.Errorf("failed to open setup file: %w", err)
	}
	defer file.Close()

	logger.Printf("Loading setup from %s\n", path)
	setup, err := ParseSetup(file)
	if err != nil {
		return Setup{}, fmt.Errorf("%s: %w", path, err)
	}
	return setup, nil
}

// ParseSetup reads whitespace-separated "KEY: value" tokens on top of the
// defaults. Recognised keys are TITLE:, WIDTH:, HEIGHT: and DRUNK_MODE:; a value
// may sit on a later line than its key. Any other token skips the rest of its
// line. A DRUNK_MODE value above zero enables drunk mode.
func ParseSetup(r io.Reader) (Setup, error) {
	setup := DefaultSetup()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	// key waiting for its value, and the line it was read on
	pending, pendingLine := "", 0

	for scanner.Scan() {
		lineNum++
		for _, token := range strings.Fields(scanner.Text()) {
			if pending == "" {
				if !isSetupKey(token) {
					break
				}
				pending, pendingLine = token, lineNum
				continue
			}

			if err := setup.apply(pending, token, lineNum); err != nil {
				return Setup{}, err
			}
			pending = ""
		}
	}
	if err := scanner.Err(); err != nil {
		return Setup{}, fmt.Errorf("failed to read setup: %w", err)
	}
	if pending != "" {
		return Setup{}, fmt.Errorf("%w: line %d: missing value for %s", ErrInvalidSetup, pendingLine, pending)
	}

	if setup.Width <= 0 || setup.Height <= 0 {
		return Setup{}, fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalidSetup, setup.Width, setup.Height)
	}

	return setup, nil
}

func isSetupKey(token string) bool {
	switch token {
	case "TITLE:", "WIDTH:", "HEIGHT:", "DRUNK_MODE:":
		return true
	}
	return false
}

// apply stores one value read on line lineNum
func (s *Setup) apply(key, value string, lineNum int) error {
	if key == "TITLE:" {
		s.Title = value
		return nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: line %d: %s %q is not an integer", ErrInvalidSetup, lineNum, key, value)
	}

	switch key {
	case "WIDTH:":
		s.Width = n
	case "HEIGHT:":
		s.Height = n
	case "DRUNK_MODE:":
		s.DrunkMode = n > 0
	}
	return nil
}
