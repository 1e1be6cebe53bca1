package server

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

var renderCounter atomic.Int64

// newRenderID returns a short identifier used to tag one request's log lines
func newRenderID() string {
	return fmt.Sprintf("render-%d", renderCounter.Add(1))
}

// WebLogger implements core.Logger by writing to the server log, tagged with a render ID
type WebLogger struct {
	renderID string
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string) core.Logger {
	return &WebLogger{renderID: renderID}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	log.Printf("[%s] %s", wl.renderID, message)
}
