package session

import "github.com/sirupsen/logrus"

var log = logrus.WithField("component", "session")
