package tui

import (
	"github.com/msto63/rechenwerk/internal/batch"
)

// evalResultMsg carries a finished evaluation back into the update loop
type evalResultMsg struct {
	outcome batch.Outcome
}
