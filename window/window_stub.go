//go:build !cgo

package window

import (
	"errors"

	"github.com/benoitkugler/hexturtle/turtle"
)

func Run(_ *turtle.Recorder, _ Options) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
