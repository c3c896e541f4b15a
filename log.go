/*
This file is part of vlasiator.

Copyright 2010, 2011, 2012 Finnish Meteorological Institute

vlasiator is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License version 3
as published by the Free Software Foundation.

vlasiator is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package vlasiator

import (
	"time"

	"github.com/sirupsen/logrus"
)

// newLogger builds the default structured logger the driver uses to
// report pass timings, replacing the teacher's raw fmt.Fprintf status
// line (run.go's Log) with logrus fields.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	return log
}

// logStep reports one completed time-step, mirroring the walltime/
// timestep fields the teacher's Log(w io.Writer) DomainManipulator prints,
// but as structured fields instead of a formatted sentence.
func (c *Context) logStep(step int, dt float64, start time.Time) {
	c.log.WithFields(logrus.Fields{
		"step":    step,
		"dt":      dt,
		"elapsed": time.Since(start).String(),
	}).Info("propagateFields")
}
