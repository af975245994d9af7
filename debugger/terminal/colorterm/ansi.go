// This file is part of Gopher65.
//
// Gopher65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65.  If not, see <https://www.gnu.org/licenses/>.

package colorterm

import (
	"fmt"
	"strings"
)

// ansi color
const (
	red     = 1
	green   = 2
	yellow  = 3
	blue    = 4
	magenta = 5
	cyan    = 6
	white   = 7
)

// ansi attribute
const (
	bold      = 1
	underline = 4
)

// cursor control
const (
	clearLine         = "\033[2K"
	cursorStore       = "\0337"
	cursorRestore     = "\0338"
	cursorForwardOne  = "\033[1C"
	cursorBackwardOne = "\033[1D"
)

func cursorMove(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("\033[%dC", n)
	case n < 0:
		return fmt.Sprintf("\033[%dD", -n)
	}
	return ""
}

var (
	pens      = make(map[string]string)
	dimPens   = make(map[string]string)
	penStyles = make(map[string]string)
	normalPen = "\033[m"
)

func init() {
	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		pens[c] = ansiBuild(c, "", true)
		dimPens[c] = ansiBuild(c, "", false)
	}
	penStyles["bold"] = ansiBuild("", "bold", false)
	penStyles["underline"] = ansiBuild("", "underline", false)
}

// ansiBuild returns the escape sequence for the pen colour and attribute. An
// empty pen or attribute is left out of the sequence.
func ansiBuild(pen string, attribute string, brightPen bool) string {
	var params []string

	if pen != "" {
		penType := 3
		if brightPen {
			penType = 9
		}
		var c int
		switch pen {
		case "red":
			c = red
		case "green":
			c = green
		case "yellow":
			c = yellow
		case "blue":
			c = blue
		case "magenta":
			c = magenta
		case "cyan":
			c = cyan
		default:
			c = white
		}
		params = append(params, fmt.Sprintf("%d%d", penType, c))
	}

	switch attribute {
	case "bold":
		params = append(params, fmt.Sprintf("%d", bold))
	case "underline":
		params = append(params, fmt.Sprintf("%d", underline))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(params, ";"))
}
