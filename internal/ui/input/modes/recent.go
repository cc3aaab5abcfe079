package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"weighbridge/internal/ui/input/keys"
	"weighbridge/internal/ui/input/types"
)

// RecentMode moves through the recent activity list
type RecentMode struct {
	keys *keys.KeyMap
}

func NewRecentMode(km *keys.KeyMap) *RecentMode {
	return &RecentMode{keys: km}
}

func (m *RecentMode) Name() string { return "RECENT" }

// Enter takes focus away from the form
func (m *RecentMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FocusRecentAction{}}
}

func (m *RecentMode) Exit(ctx types.Context) []types.Action { return nil }

func (m *RecentMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Up):
		return []types.Action{types.RecentMoveAction{Delta: -1}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.RecentMoveAction{Delta: 1}}, true
	case key.Matches(msg, k.Select):
		if ctx.RecentCount() == 0 {
			return nil, true
		}
		return []types.Action{
			types.RestoreRecentAction{Index: ctx.RecentCursor()},
			types.ChangeModeAction{Mode: types.ModeSlots},
		}, true
	case key.Matches(msg, k.Back, k.FocusRecent):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSlots}}, true
	case key.Matches(msg, k.ClearRecent):
		return []types.Action{types.ClearRecentAction{}}, true
	case key.Matches(msg, k.Print):
		return []types.Action{types.PrintAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	}

	if slot, ok := k.JumpTarget(msg); ok {
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeSlots},
			types.JumpToSlotAction{Slot: slot},
		}, true
	}
	return nil, true
}
