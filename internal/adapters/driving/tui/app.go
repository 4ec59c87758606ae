package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mappingkml/mappingkml-cli/internal/adapters/driving/tui/styles"
	"github.com/mappingkml/mappingkml-cli/internal/core/domain"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driving"
)

// phase tracks which screen the app is showing.
type phase int

const (
	phaseInput phase = iota
	phaseSearching
	phasePicking
	phaseExporting
	phaseDone
)

// App is the parcel picker TUI following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// input is the reference entry prompt.
	input textinput.Model

	// phase tracks the active screen.
	phase phase

	// result is the last lookup outcome.
	result *domain.LookupResult

	// cursor is the highlighted parcel in the picker.
	cursor int

	// picked marks the parcels selected for export.
	picked map[int]bool

	// preset is the export colour preset, cycled with 'p'.
	preset int

	// exportPath is the written file after a successful export.
	exportPath string

	// exportCount is how many parcels the export wrote.
	exportCount int

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "13//DP1242624, 1RP912949, 5213/925"
	input.Prompt = "> "
	input.Focus()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: styles.DefaultStyles(),
		input:  input,
		phase:  phaseInput,
		picked: make(map[int]bool),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithQuery prefills the reference prompt.
func (a *App) WithQuery(raw string) *App {
	a.input.SetValue(raw)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("mappingkml - Parcel Search"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case lookupDoneMsg:
		if msg.err != nil {
			a.err = msg.err
			a.phase = phaseInput
			return a, nil
		}
		a.err = nil
		a.result = msg.result
		a.cursor = 0
		a.picked = make(map[int]bool)
		// Everything starts picked; the picker deselects.
		for i := range a.result.Parcels {
			a.picked[i] = true
		}
		a.phase = phasePicking
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			a.err = msg.err
			a.phase = phasePicking
			return a, nil
		}
		a.err = nil
		a.exportPath = msg.path
		a.exportCount = msg.count
		a.phase = phaseDone
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	switch a.phase {
	case phaseInput:
		return a.handleInputKey(msg)
	case phasePicking:
		return a.handlePickingKey(msg)
	case phaseDone:
		switch msg.String() {
		case "q", "esc", "enter":
			return a, tea.Quit
		}
	case phaseSearching, phaseExporting:
		// Busy; only ctrl+c applies.
	}
	return a, nil
}

func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return a, tea.Quit
	case tea.KeyEnter:
		raw := strings.TrimSpace(a.input.Value())
		if raw == "" {
			return a, nil
		}
		a.phase = phaseSearching
		return a, a.lookupCmd(raw)
	default:
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handlePickingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := len(a.result.Parcels)

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.phase = phaseInput
		a.input.Focus()
		return a, textinput.Blink
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < total-1 {
			a.cursor++
		}
	case " ":
		if total > 0 {
			a.picked[a.cursor] = !a.picked[a.cursor]
		}
	case "a":
		all := a.pickedCount() == total
		for i := 0; i < total; i++ {
			a.picked[i] = !all
		}
	case "p":
		a.preset = (a.preset + 1) % len(domain.PresetNames())
	case "enter", "e":
		parcels := a.pickedParcels()
		if len(parcels) == 0 {
			return a, nil
		}
		a.phase = phaseExporting
		return a, a.exportCmd(parcels)
	}

	return a, nil
}

// lookupCmd runs the lookup off the UI goroutine.
func (a *App) lookupCmd(raw string) tea.Cmd {
	return func() tea.Msg {
		result, err := a.ports.Lookup.Lookup(a.ctx, raw, driving.LookupOptions{})
		return lookupDoneMsg{result: result, err: err}
	}
}

// exportCmd runs the export off the UI goroutine.
func (a *App) exportCmd(parcels []domain.Parcel) tea.Cmd {
	preset := domain.PresetNames()[a.preset]
	return func() tea.Msg {
		path, err := a.ports.Export.Export(a.ctx, driving.ExportRequest{
			Parcels: parcels,
			Preset:  preset,
			Opacity: -1,
		})
		return exportDoneMsg{path: path, count: len(parcels), err: err}
	}
}

func (a *App) pickedCount() int {
	n := 0
	for _, on := range a.picked {
		if on {
			n++
		}
	}
	return n
}

func (a *App) pickedParcels() []domain.Parcel {
	var parcels []domain.Parcel
	for i, p := range a.result.Parcels {
		if a.picked[i] {
			parcels = append(parcels, p)
		}
	}
	return parcels
}
