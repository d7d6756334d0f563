package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the service-tagged entry every component logs through.
func New(env string) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log.WithFields(logrus.Fields{
		"service": "basketballhub",
		"env":     env,
	})
}
