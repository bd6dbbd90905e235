// SPDX-License-Identifier: MIT

package gridio

import "errors"

// ErrMalformed is returned when artefact text is not a square numeric grid
// of side >= 3.
var ErrMalformed = errors.New("gridio: malformed grid artefact")
