package pcmi

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Logger is the package-level logger used by the client and session
// machine. It defaults to the standard logrus logger; replace it to
// route pcmi's logging into an application's own logger.
var Logger log.FieldLogger = log.StandardLogger()

// newSessionLogger returns a logger scoped to one download/connect
// session, tagged with a correlation ID so interleaved log lines from
// concurrent clients can be told apart.
func newSessionLogger() (log.FieldLogger, string) {
	sessionID := uuid.NewString()
	return Logger.WithField("session", sessionID), sessionID
}
