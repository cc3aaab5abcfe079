package viewmodels

import (
	"time"

	"github.com/charmbracelet/bubbles/help"

	"weighbridge/internal/catalog"
	"weighbridge/internal/domain"
	"weighbridge/internal/ui/coordinator"
	"weighbridge/internal/ui/state"
	"weighbridge/internal/ui/toast"
	"weighbridge/internal/ui/views"
	"weighbridge/internal/weight"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	coord  *coordinator.Coordinator
	toasts *toast.Sink
	width  int
	height int
	help   help.Model
	mode   string
	recent bool
	now    func() time.Time
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, coord *coordinator.Coordinator, toasts *toast.Sink) *ViewModel {
	return &ViewModel{
		state:  appState,
		coord:  coord,
		toasts: toasts,
		help:   help.New(),
		now:    time.Now,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetInputMode sets the name of the current input mode; recent marks the
// recent activity list as focused.
func (vm *ViewModel) SetInputMode(name string, recent bool) {
	vm.mode = name
	vm.recent = recent
}

// SetClock replaces the clock used for relative times
func (vm *ViewModel) SetClock(now func() time.Time) {
	vm.now = now
}

// PriceLabel returns the price label of the selected product, or "" when
// no product detail is loaded
func (vm *ViewModel) PriceLabel() string {
	d := vm.state.Detail(domain.SlotProduct)
	if d.Status != state.DetailReady {
		return ""
	}
	return d.Record.Get(catalog.FieldPrice)
}

// Summary returns the weight panel for the current reading and product
func (vm *ViewModel) Summary() weight.Summary {
	return weight.Summarize(vm.state.Reading, vm.PriceLabel())
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	boxes := vm.coord.Boxes()
	details := make([]views.DetailView, 0, len(boxes))
	for _, b := range boxes {
		details = append(details, views.DetailView{
			Config: b.Config(),
			Detail: *vm.state.Detail(b.Slot()),
		})
	}

	return views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		Now:              vm.now(),
		Boxes:            boxes,
		ActiveSlot:       vm.coord.Navigation.Active(),
		Details:          details,
		Summary:          vm.Summary(),
		Recent:           vm.state.Recent,
		RecentCursor:     vm.state.RecentCursor,
		RecentFocused:    vm.recent,
		Toasts:           vm.toasts.View(),
		StatusMessage:    vm.state.StatusMessage,
		Mode:             vm.mode,
		ShowHelp:         vm.state.ShowHelp,
		HelpScrollOffset: vm.state.HelpScrollOffset,
		HelpModel:        vm.help,
	}
}
