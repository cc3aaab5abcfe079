package types

import "weighbridge/internal/domain"

// Slot actions
type JumpToSlotAction struct {
	Slot domain.Slot
}

func (a JumpToSlotAction) Type() string { return "jump_to_slot" }

type TabNavigateAction struct {
	From      domain.Slot
	Direction string // "next" or "prev"
}

func (a TabNavigateAction) Type() string { return "tab_navigate" }

type OpenSlotAction struct {
	Slot domain.Slot
}

func (a OpenSlotAction) Type() string { return "open_slot" }

type CloseSlotAction struct {
	Slot domain.Slot
}

func (a CloseSlotAction) Type() string { return "close_slot" }

type CloseAllAction struct{}

func (a CloseAllAction) Type() string { return "close_all" }

// ValueChangeAction commits ID to a slot. An empty ID clears it.
type ValueChangeAction struct {
	Slot domain.Slot
	ID   string
}

func (a ValueChangeAction) Type() string { return "value_change" }

type ReleaseFocusAction struct {
	Slot domain.Slot
}

func (a ReleaseFocusAction) Type() string { return "release_focus" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Ticket actions
type PrintAction struct{}

func (a PrintAction) Type() string { return "print" }

// Recent activity actions
type FocusRecentAction struct{}

func (a FocusRecentAction) Type() string { return "focus_recent" }

type RecentMoveAction struct {
	Delta int
}

func (a RecentMoveAction) Type() string { return "recent_move" }

type RestoreRecentAction struct {
	Index int
}

func (a RestoreRecentAction) Type() string { return "restore_recent" }

type ClearRecentAction struct{}

func (a ClearRecentAction) Type() string { return "clear_recent" }

// Help actions
type ScrollHelpAction struct {
	Delta int
}

func (a ScrollHelpAction) Type() string { return "scroll_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
