package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/noborus/ov/oviewer"
)

// HelpOps opens the help text in the ov pager
type HelpOps struct {
	program *tea.Program
}

// NewHelpOps creates the pager helper. program may be set later.
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{program: program}
}

// SetProgram sets the program whose terminal is released while paging
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager blocks until the operator leaves the pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errors.New("help pager: no program to release the terminal from")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("help pager: release terminal: %w", err)
	}
	defer func() {
		// ov restores the screen asynchronously on exit
		time.Sleep(100 * time.Millisecond)
		if err := h.program.RestoreTerminal(); err != nil {
			log.Error("help pager: restore terminal", "err", err)
		}
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("help pager: %w", err)
	}

	// Don't write on exit, the dashboard redraws the screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
