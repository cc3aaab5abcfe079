// Package input routes key presses to the handler of the current mode.
package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"weighbridge/internal/ui/input/keys"
	"weighbridge/internal/ui/input/modes"
	"weighbridge/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	slots       *modes.SlotsMode
	keys        *keys.KeyMap
}

func New(km keys.KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeSlots,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        &km,
	}

	h.slots = modes.NewSlotsMode(h.keys)
	h.modes[types.ModeSlots] = h.slots
	h.modes[types.ModeRecent] = modes.NewRecentMode(h.keys)
	h.modes[types.ModeHelp] = modes.NewHelpMode(h.keys)

	return h
}

// HandleKey runs msg through the current mode. Mode changes are applied
// here; the returned actions include those of the exited and entered modes.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, false
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil, false
	}
	return h.apply(actions, ctx), true
}

// Unhandled handles a key no focused combobox consumed. Only the form mode
// has such keys.
func (h *Handler) Unhandled(msg tea.KeyMsg, ctx types.Context) []types.Action {
	if h.currentMode != types.ModeSlots {
		return nil
	}
	return h.apply(h.slots.Unhandled(msg, ctx), ctx)
}

func (h *Handler) apply(actions []types.Action, ctx types.Context) []types.Action {
	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.ChangeMode(changeMode.Mode, ctx)...)
	}
	return allActions
}

// ChangeMode switches modes and returns the exit and enter actions
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	var actions []types.Action
	if old := h.modes[h.currentMode]; old != nil {
		actions = append(actions, old.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeSlots
	}
	return h.currentMode
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}
