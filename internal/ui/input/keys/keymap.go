// Package keys holds the key bindings of the dashboard.
package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"weighbridge/internal/config"
	"weighbridge/internal/domain"
)

// KeyMap is the single key dispatch table of the dashboard. Every global
// shortcut is bound here and nowhere else.
type KeyMap struct {
	JumpTruck    key.Binding
	JumpCustomer key.Binding
	JumpOrder    key.Binding
	JumpProduct  key.Binding
	Print        key.Binding
	Help         key.Binding
	FocusRecent  key.Binding
	ClearRecent  key.Binding
	Quit         key.Binding

	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Pager  key.Binding
	Clear  key.Binding
}

// NewKeyMap builds the key table from the configured bindings
func NewKeyMap(k config.KeySettings) KeyMap {
	return KeyMap{
		JumpTruck:    binding(k.JumpTruck, "truck"),
		JumpCustomer: binding(k.JumpCustomer, "customer"),
		JumpOrder:    binding(k.JumpOrder, "order"),
		JumpProduct:  binding(k.JumpProduct, "product"),
		Print:        binding(k.Print, "print ticket"),
		Help:         binding(k.Help, "help"),
		FocusRecent:  binding(k.FocusRecent, "recent activity"),
		ClearRecent:  binding(k.ClearRecent, "clear recent"),
		Quit:         binding(k.Quit, "quit"),

		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open / select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close / back"),
		),
		Pager: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "open in pager"),
		),
		Clear: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "clear field (empty input)"),
		),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// Jump returns the jump binding of slot
func (k KeyMap) Jump(slot domain.Slot) key.Binding {
	switch slot {
	case domain.SlotCustomer:
		return k.JumpCustomer
	case domain.SlotOrder:
		return k.JumpOrder
	case domain.SlotProduct:
		return k.JumpProduct
	default:
		return k.JumpTruck
	}
}

// JumpTarget returns the slot whose jump binding matches msg
func (k KeyMap) JumpTarget(msg tea.KeyMsg) (domain.Slot, bool) {
	for _, slot := range domain.Slots {
		if key.Matches(msg, k.Jump(slot)) {
			return slot, true
		}
	}
	return domain.NoSlot, false
}

// ShortHelp is shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Select, k.Print, k.FocusRecent, k.Help, k.Quit}
}

// FullHelp is shown in the help overlay
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.JumpTruck, k.JumpCustomer, k.JumpOrder, k.JumpProduct, k.Next, k.Prev},
		{k.Select, k.Up, k.Down, k.Back, k.Clear},
		{k.Print, k.FocusRecent, k.ClearRecent, k.Help, k.Pager, k.Quit},
	}
}
