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
	"runtime"

	"github.com/sirupsen/logrus"
)

// fatalf reports a programming/state error per spec.md §7 (negative
// density, non-finite limiter output, a missing neighbor the operation
// mask claimed existed, ...): these are not recoverable, so it logs with
// file/line/cell-id context and aborts the process, the structured
// equivalent of the teacher's fmt.Println(err); os.Exit(1) pattern.
func (c *Context) fatalf(id CellID, format string, args ...interface{}) {
	_, file, line, _ := runtime.Caller(1)
	c.log.WithFields(logrus.Fields{
		"cell_id": uint64(id),
		"file":    file,
		"line":    line,
	}).Fatalf(format, args...)
}
