package telegram

import (
	"regexp"

	tele "gopkg.in/telebot.v3"
)

// RegexAnywhere passes an update on only if pattern matches somewhere in
// its text. Other updates are dropped silently.
func RegexAnywhere(pattern *regexp.Regexp) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if !pattern.MatchString(c.Text()) {
				return nil
			}
			return next(c)
		}
	}
}
