package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"weighbridge/internal/ui/input/keys"
	"weighbridge/internal/ui/input/types"
)

// HelpMode is active while the shortcut overlay is shown
type HelpMode struct {
	keys *keys.KeyMap
}

func NewHelpMode(km *keys.KeyMap) *HelpMode {
	return &HelpMode{keys: km}
}

func (m *HelpMode) Name() string { return "HELP" }

func (m *HelpMode) Enter(ctx types.Context) []types.Action { return nil }

func (m *HelpMode) Exit(ctx types.Context) []types.Action { return nil }

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Back, k.Help), msg.String() == "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSlots}}, true
	case key.Matches(msg, k.Up):
		return []types.Action{types.ScrollHelpAction{Delta: -1}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.ScrollHelpAction{Delta: 1}}, true
	case key.Matches(msg, k.Pager):
		return []types.Action{types.OpenHelpPagerAction{}}, true
	}
	return nil, true
}
