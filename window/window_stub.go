//go:build !cgo

package window

import (
	"errors"
	"log"
)

func RunWindow(_ Config, _ []byte, _ *log.Logger) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), or pass -headless")
}
