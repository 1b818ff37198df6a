package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"websearch/internal/bing"
	"websearch/internal/config"
	"websearch/internal/domain"
	"websearch/internal/eventbus"
	"websearch/internal/ui/input"
	inputtypes "websearch/internal/ui/input/types"
	"websearch/internal/ui/search"
	"websearch/internal/ui/state"
	"websearch/internal/ui/viewmodels"
	"websearch/internal/ui/views"
)

// Lines used by everything except the result list: container padding,
// title, prompt, "Results for", scroll hints, paginator and footer.
const reservedLines = 14

// statusTimeout is how long a transient status message stays visible
const statusTimeout = 3 * time.Second

const (
	firstPageStatus = "Already on the first page"
	lastPageStatus  = "Already on the last page"
	noPagesStatus   = "No results to page through"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	client bing.Searcher
	state  *state.AppState
	form   *search.Form

	// UI-specific state not in AppState
	width        int
	height       int
	help         help.Model
	spinner      spinner.Model
	inPagerMode  bool
	initialQuery string
	statusSeq    int

	// In-flight request
	cancel  context.CancelFunc
	timeout time.Duration

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, client bing.Searcher) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()
	form := search.NewForm()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	timeout := cfg.Search.Timeout.Std()
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		client:       client,
		state:        appState,
		form:         form,
		help:         help.New(),
		spinner:      sp,
		timeout:      timeout,
		renderer:     views.NewRenderer(cfg.UISettings.ShowDisplayURL),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
	}

	m.helpRenderer = NewHelpRenderer(m.inputHandler.Keys())
	m.viewModel = viewmodels.NewViewModel(appState, form, cfg)
	m.viewModel.SetHelp(m.help)
	m.viewModel.SetHelpContent(m.helpRenderer.Render())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// SetInitialQuery submits term as soon as the program starts
func (m *Model) SetInitialQuery(term string) {
	m.initialQuery = term
}

// Form exposes the search form state
func (m *Model) Form() *search.Form {
	return m.form
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.initialQuery != "" {
		m.inputHandler.SetValue(m.initialQuery)
		cmds = append(cmds, m.submit(m.initialQuery))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help)
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		// Popups swallow keys until closed
		if m.state.ShowHelp || m.state.ShowDetail {
			switch msg.String() {
			case "esc", "q", "?", "enter":
				m.state.ClosePopups()
			case "ctrl+c":
				return m, m.quit()
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case searchResultMsg:
		m.handleResult(msg)
		return m, nil

	case spinner.TickMsg:
		// Let the tick loop die once nothing is loading
		if m.form.Lifecycle() != domain.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			log.Warn().Err(msg.err).Bool("detail", msg.detail).Msg("pager failed, falling back to popup")
			if msg.detail {
				m.state.ShowDetail = true
				m.state.DetailContent = msg.content
			} else {
				m.state.ShowHelp = true
			}
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		// A newer message keeps its own timer
		if msg.seq == m.statusSeq {
			m.state.StatusMessage = ""
		}
		return m, nil

	default:
		// Cursor blinks and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	ti := m.inputHandler.TextInput()
	m.viewModel.SetInput(ti.View(), ti.Focused())
	m.viewModel.SetLoadingView(m.spinner.View())
	if m.inputHandler.CurrentMode() == inputtypes.ModeQuery {
		m.viewModel.SetFooterBindings(m.inputHandler.Keys().QueryHelp())
	} else {
		m.viewModel.SetFooterBindings(m.inputHandler.Keys().BrowseHelp())
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.form.SetTerm(a.Text)
		return nil

	case inputtypes.SubmitTextAction:
		return m.submit(a.Text)

	case inputtypes.NextPageAction:
		return m.changePage(m.viewModel.Paginator().Next, m.form.NextPage, lastPageStatus)

	case inputtypes.PreviousPageAction:
		return m.changePage(m.viewModel.Paginator().Previous, m.form.PreviousPage, firstPageStatus)

	case inputtypes.NavigateAction:
		count := len(m.form.Items())
		switch a.Direction {
		case "up":
			m.state.MoveSelection(-1, count, m.renderable)
		case "down":
			m.state.MoveSelection(1, count, m.renderable)
		case "home":
			m.state.MoveSelection(-count, count, m.renderable)
		case "end":
			m.state.MoveSelection(count, count, m.renderable)
		}
		return nil

	case inputtypes.OpenResultAction:
		return m.openResult(a.Index)

	case inputtypes.ToggleHelpAction:
		if m.state.ShowHelp {
			m.state.ShowHelp = false
			return nil
		}
		if m.config.UISettings.UsePager && m.pager.Available() {
			return m.showInPager(m.helpRenderer.Render(), false)
		}
		m.state.ShowHelp = true
		return nil

	case inputtypes.QuitAction:
		return m.quit()
	}
	return nil
}

func (m *Model) submit(text string) tea.Cmd {
	m.form.SetTerm(text)
	req, ok := m.form.Submit()
	if !ok {
		log.Debug().Msg("empty search term")
		m.publish(eventbus.ValidationFailedEvent{})
		return nil
	}

	modeCmd := m.inputHandler.ChangeMode(inputtypes.ModeBrowse, m.context())
	return tea.Batch(modeCmd, m.startSearch(req))
}

// changePage routes navigation through the paginator so that disabled
// controls never reach the form. A disabled control shows blocked in the
// status bar instead.
func (m *Model) changePage(control func(func()) bool, move func() (search.Request, bool), blocked string) tea.Cmd {
	var cmd tea.Cmd
	from := m.form.Page()
	moved := false
	control(func() {
		req, ok := move()
		if !ok {
			return
		}
		moved = true
		m.publish(eventbus.PageChangedEvent{From: from, To: req.Query.Page})
		cmd = m.startSearch(req)
	})
	if moved {
		return cmd
	}

	if m.form.LastPage() == 0 {
		blocked = noPagesStatus
	}
	return m.setStatus(blocked)
}

// setStatus shows text in the status bar and schedules clearing it
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.state.StatusMessage = text
	return tea.Tick(statusTimeout, func(t time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// renderable reports whether the item at index i is drawn in the list
func (m *Model) renderable(i int) bool {
	items := m.form.Items()
	return i >= 0 && i < len(items) && items[i].Renderable()
}

// startSearch cancels whatever is in flight and fetches req
func (m *Model) startSearch(req search.Request) tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	m.cancel = cancel

	m.form.Start(req.Generation)
	m.state.ResetSelection()
	m.state.StatusMessage = ""

	log.Info().
		Uint64("generation", req.Generation).
		Str("term", req.Query.Term).
		Int("page", req.Query.Page).
		Msg("search started")
	m.publish(eventbus.SearchSubmittedEvent{Generation: req.Generation, Query: req.Query})

	client := m.client
	fetch := func() tea.Msg {
		defer cancel()
		if client == nil {
			return searchResultMsg{generation: req.Generation, query: req.Query, err: bing.ErrAPI}
		}
		set, err := client.Search(ctx, req.Query)
		return searchResultMsg{generation: req.Generation, query: req.Query, set: set, err: err}
	}

	return tea.Batch(fetch, m.spinner.Tick)
}

func (m *Model) handleResult(msg searchResultMsg) {
	if !m.form.IsCurrent(msg.generation) {
		log.Debug().
			Uint64("generation", msg.generation).
			Uint64("current", m.form.Generation()).
			Msg("dropping superseded response")
		m.publish(eventbus.SearchSupersededEvent{Generation: msg.generation, Current: m.form.Generation()})
		return
	}

	if msg.err != nil {
		if m.form.Reject(msg.generation, msg.err) {
			log.Warn().Err(msg.err).Str("term", msg.query.Term).Int("page", msg.query.Page).Msg("search failed")
			m.publish(eventbus.SearchFailedEvent{Generation: msg.generation, Query: msg.query, Err: msg.err})
		}
	} else if m.form.Resolve(msg.generation, msg.set) {
		// Keep the cursor off items the list does not draw
		m.state.MoveSelection(0, len(m.form.Items()), m.renderable)
		total := m.form.Total()
		log.Info().
			Uint64("generation", msg.generation).
			Int("items", len(m.form.Items())).
			Int("total", total).
			Msg("search completed")
		m.publish(eventbus.SearchCompletedEvent{
			Generation:     msg.generation,
			Query:          msg.query,
			ItemCount:      len(m.form.Items()),
			TotalEstimated: total,
		})
	}

	m.cancel = nil
}

func (m *Model) openResult(index int) tea.Cmd {
	items := m.form.Items()
	if index < 0 || index >= len(items) || !items[index].Renderable() {
		return nil
	}
	content := m.renderer.Results().RenderDetail(items[index])

	if m.config.UISettings.UsePager && m.pager.Available() {
		return m.showInPager(content, true)
	}
	m.state.ShowDetail = true
	m.state.DetailContent = content
	return nil
}

// showInPager returns a command that shows content using ov pager
func (m *Model) showInPager(content string, detail bool) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{content: content, detail: detail, err: err}
	}
}

func (m *Model) quit() tea.Cmd {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	return tea.Quit
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

func (m *Model) updateViewportHeight() {
	visible := (m.height - reservedLines) / views.ItemHeight
	if visible < 1 {
		visible = 1
	}
	m.state.ViewportHeight = visible
	m.state.EnsureSelectedVisible()
}

func (m *Model) context() inputtypes.Context {
	return modelContext{m: m}
}

// modelContext gives key handlers read-only access to the model
type modelContext struct {
	m *Model
}

func (c modelContext) CurrentIndex() int { return c.m.state.SelectedIndex }

func (c modelContext) ItemCount() int { return len(c.m.form.Items()) }

// HasResults reports whether there is anything to browse, including
// loading and error states of a submitted search
func (c modelContext) HasResults() bool { return c.m.form.Lifecycle() != domain.Idle }
