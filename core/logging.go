// File: logging.go
// Role: Thin alias over logrus.Fields so mutation.go doesn't import logrus
// directly just to build a field map.
package core

import "github.com/sirupsen/logrus"

type logFields = logrus.Fields
