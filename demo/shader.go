package demo

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// A compiled shader program owned by a Renderer.
type Program interface {
	Dispose()
}

// Compiles shader sources into programs. On success, diagnostics may still be returned as a non-empty log.
type Compiler interface {
	Compile(src []byte) (p Program, diagnostics string, err error)
}

// Returned when a shader source fails to compile. Log holds the compiler's diagnostics.
type ShaderError struct {
	Name string
	Log  string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("shader %v failed to compile: %v", e.Name, e.Log)
}

// Compiles the named shader source. Compilation failures are returned as a *ShaderError, while diagnostics from a
// successful compilation are only logged.
func LoadProgram(c Compiler, name string, src []byte, logger *log.Logger) (Program, error) {
	if len(strings.TrimSpace(string(src))) == 0 {
		return nil, &ShaderError{Name: name, Log: "empty source"}
	}
	p, diagnostics, err := c.Compile(src)
	if err != nil {
		var se *ShaderError
		if errors.As(err, &se) {
			if se.Name == "" {
				se.Name = name
			}
			return nil, se
		}
		return nil, &ShaderError{Name: name, Log: err.Error()}
	}
	if diagnostics != "" && logger != nil {
		logger.Printf("shader log (%v): %v", name, diagnostics)
	}
	return p, nil
}
