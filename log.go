package floris

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// newDiscardLogger returns a logrus.Logger that drops every entry,
// mirroring run.go's `Log(w io.Writer)` DomainManipulator generalized to
// a structured logger: a Solver built without an explicit logger still
// has one to call, it just writes nowhere.
func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

// logChunk emits one structured log entry per completed (wind direction,
// wind speed) chunk, the superposition-engine analogue of run.go's
// per-iteration Log manipulator.
func (s *Solver) logChunk(di, si, numTurbines int, start time.Time) {
	s.logger.WithFields(logrus.Fields{
		"dir":      s.config.FlowField.WindDirections[di],
		"speed":    s.config.FlowField.WindSpeeds[si],
		"turbines": numTurbines,
		"elapsed":  time.Since(start),
	}).Debug("completed wind condition")
}

func (s *Solver) logClamp(op, detail string) {
	s.logger.WithFields(logrus.Fields{"op": op}).Warn(detail)
}
