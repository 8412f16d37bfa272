package storage

import "github.com/charmbracelet/log"

// Saver records finished runs. *Store satisfies it.
type Saver interface {
	SaveRun(r Run) (int64, error)
}

// Recorder returns a game over hook saving each score as a copy of tmpl.
// A nil saver records nothing. Save failures are logged, never fatal.
func Recorder(saver Saver, tmpl Run, logger *log.Logger) func(score int) {
	return func(score int) {
		logger.Debug("game over", "score", score, "host", tmpl.Host, "player", tmpl.Player)
		if saver == nil {
			return
		}
		run := tmpl
		run.Score = score
		if _, err := saver.SaveRun(run); err != nil {
			logger.Warn("could not save score", "score", score, "error", err)
		}
	}
}
