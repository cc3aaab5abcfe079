package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"weighbridge/internal/domain"
	"weighbridge/internal/ui/input/keys"
	"weighbridge/internal/ui/input/types"
)

// SlotsMode handles the global shortcuts of the form. Keys it does not
// claim go to the focused combobox first and then to Unhandled.
type SlotsMode struct {
	keys *keys.KeyMap
}

func NewSlotsMode(km *keys.KeyMap) *SlotsMode {
	return &SlotsMode{keys: km}
}

func (m *SlotsMode) Name() string { return "FORM" }

func (m *SlotsMode) Enter(ctx types.Context) []types.Action { return nil }

func (m *SlotsMode) Exit(ctx types.Context) []types.Action { return nil }

func (m *SlotsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Print):
		return []types.Action{types.PrintAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	case key.Matches(msg, k.FocusRecent):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeRecent}}, true
	case key.Matches(msg, k.ClearRecent):
		return []types.Action{types.ClearRecentAction{}}, true
	}

	if slot, ok := k.JumpTarget(msg); ok {
		return []types.Action{types.JumpToSlotAction{Slot: slot}}, true
	}
	return nil, false
}

// Unhandled handles keys that no focused combobox consumed
func (m *SlotsMode) Unhandled(msg tea.KeyMsg, ctx types.Context) []types.Action {
	k := m.keys
	switch {
	case key.Matches(msg, k.Back):
		return []types.Action{types.CloseAllAction{}}
	case ctx.FocusedSlot() != domain.NoSlot:
		return nil
	case key.Matches(msg, k.Next, k.Select):
		return []types.Action{types.JumpToSlotAction{Slot: startSlot(ctx)}}
	case key.Matches(msg, k.Prev):
		start := ctx.ActiveSlot()
		if !start.Valid() {
			start = domain.SlotProduct
		}
		return []types.Action{types.JumpToSlotAction{Slot: start}}
	}
	return nil
}

func startSlot(ctx types.Context) domain.Slot {
	if s := ctx.ActiveSlot(); s.Valid() {
		return s
	}
	return domain.SlotTruck
}
