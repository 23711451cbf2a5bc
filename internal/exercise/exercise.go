// Package exercise holds the runnable design pattern exercises.
package exercise

import (
	"io"
	"strings"
)

// RunFunc runs one exercise, writing its console output to w. trace
// controls whether state machine transitions are shown.
type RunFunc func(w io.Writer, trace bool) error

// Exercise is a named, self-contained demonstration.
type Exercise struct {
	Name string
	Run  RunFunc
}

// All returns the registered exercises in run order.
func All() []Exercise {
	return []Exercise{
		{Name: "State", Run: State},
	}
}

// ByName looks up an exercise by name, ignoring case.
func ByName(name string) (Exercise, bool) {
	for _, ex := range All() {
		if strings.EqualFold(ex.Name, name) {
			return ex, true
		}
	}
	return Exercise{}, false
}
