package balance

import "github.com/sirupsen/logrus"

var log = logrus.WithField("component", "balance")
