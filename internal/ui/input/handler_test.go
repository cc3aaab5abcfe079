package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighbridge/internal/config"
	"weighbridge/internal/domain"
	"weighbridge/internal/ui/input/keys"
	"weighbridge/internal/ui/input/types"
)

type fakeContext struct {
	focused, active, open domain.Slot
	recent, cursor        int
}

func (c fakeContext) FocusedSlot() domain.Slot { return c.focused }
func (c fakeContext) ActiveSlot() domain.Slot  { return c.active }
func (c fakeContext) OpenSlot() domain.Slot    { return c.open }
func (c fakeContext) RecentCount() int         { return c.recent }
func (c fakeContext) RecentCursor() int        { return c.cursor }

func idle() fakeContext {
	return fakeContext{focused: domain.NoSlot, active: domain.NoSlot, open: domain.NoSlot}
}

func newHandler() *Handler {
	return New(keys.NewKeyMap(config.DefaultConfig().Keys))
}

func ctrl(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestJumpHotkeys(t *testing.T) {
	t.Parallel()
	h := newHandler()

	cases := map[tea.KeyType]domain.Slot{
		tea.KeyCtrlK: domain.SlotTruck,
		tea.KeyCtrlJ: domain.SlotCustomer,
		tea.KeyCtrlO: domain.SlotOrder,
		tea.KeyCtrlP: domain.SlotProduct,
	}
	for k, slot := range cases {
		actions, consumed := h.HandleKey(ctrl(k), idle())
		require.True(t, consumed, "key %v", k)
		assert.Equal(t, []types.Action{types.JumpToSlotAction{Slot: slot}}, actions)
	}
}

func TestPrintShortcuts(t *testing.T) {
	t.Parallel()
	h := newHandler()

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEnter, Alt: true},
		ctrl(tea.KeyCtrlS),
	} {
		actions, consumed := h.HandleKey(msg, idle())
		require.True(t, consumed, "key %s", msg)
		assert.Equal(t, []types.Action{types.PrintAction{}}, actions)
	}

	_, consumed := h.HandleKey(ctrl(tea.KeyEnter), idle())
	assert.False(t, consumed, "plain enter belongs to the combobox")
}

func TestUnhandledKeys(t *testing.T) {
	t.Parallel()
	h := newHandler()

	assert.Equal(t, []types.Action{types.CloseAllAction{}}, h.Unhandled(ctrl(tea.KeyEsc), idle()))
	assert.Equal(t, []types.Action{types.JumpToSlotAction{Slot: domain.SlotTruck}}, h.Unhandled(ctrl(tea.KeyTab), idle()))
	assert.Equal(t, []types.Action{types.JumpToSlotAction{Slot: domain.SlotProduct}}, h.Unhandled(ctrl(tea.KeyShiftTab), idle()))

	ctx := idle()
	ctx.active = domain.SlotOrder
	assert.Equal(t, []types.Action{types.JumpToSlotAction{Slot: domain.SlotOrder}}, h.Unhandled(ctrl(tea.KeyEnter), ctx))

	ctx.focused = domain.SlotOrder
	assert.Empty(t, h.Unhandled(ctrl(tea.KeyTab), ctx))
}

func TestRecentModeRoundTrip(t *testing.T) {
	t.Parallel()
	h := newHandler()
	ctx := idle()
	ctx.recent, ctx.cursor = 3, 1

	actions, consumed := h.HandleKey(ctrl(tea.KeyCtrlU), ctx)
	require.True(t, consumed)
	assert.Equal(t, types.ModeRecent, h.CurrentMode())
	assert.Equal(t, []types.Action{types.FocusRecentAction{}}, actions)

	actions, _ = h.HandleKey(ctrl(tea.KeyDown), ctx)
	assert.Equal(t, []types.Action{types.RecentMoveAction{Delta: 1}}, actions)

	actions, _ = h.HandleKey(ctrl(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{types.RestoreRecentAction{Index: 1}}, actions)
	assert.Equal(t, types.ModeSlots, h.CurrentMode())
}

func TestRecentModeSwallowsTyping(t *testing.T) {
	t.Parallel()
	h := newHandler()
	h.ChangeMode(types.ModeRecent, idle())

	actions, consumed := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, idle())
	assert.True(t, consumed)
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(ctrl(tea.KeyCtrlO), idle())
	assert.Equal(t, []types.Action{types.JumpToSlotAction{Slot: domain.SlotOrder}}, actions)
	assert.Equal(t, types.ModeSlots, h.CurrentMode())
}

func TestHelpMode(t *testing.T) {
	t.Parallel()
	h := newHandler()

	_, consumed := h.HandleKey(ctrl(tea.KeyF1), idle())
	require.True(t, consumed)
	assert.Equal(t, types.ModeHelp, h.CurrentMode())
	assert.Equal(t, "HELP", h.ModeName())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, idle())
	assert.Equal(t, []types.Action{types.OpenHelpPagerAction{}}, actions)

	h.HandleKey(ctrl(tea.KeyEsc), idle())
	assert.Equal(t, types.ModeSlots, h.CurrentMode())
}

func TestCustomBindings(t *testing.T) {
	t.Parallel()
	settings := config.DefaultConfig().Keys
	settings.JumpTruck = []string{"f5"}
	h := New(keys.NewKeyMap(settings))

	actions, consumed := h.HandleKey(ctrl(tea.KeyF5), idle())
	require.True(t, consumed)
	assert.Equal(t, []types.Action{types.JumpToSlotAction{Slot: domain.SlotTruck}}, actions)

	_, consumed = h.HandleKey(ctrl(tea.KeyCtrlK), idle())
	assert.False(t, consumed)
}
