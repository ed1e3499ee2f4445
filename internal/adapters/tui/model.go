package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	stepListWidthRatio = 0.35
	notePaneBorder     = 3
)

// StepStatus represents the current state of a step.
type StepStatus string

const (
	// StatusPending indicates the step has not started.
	StatusPending StepStatus = "Pending"
	// StatusRunning indicates the step is in progress.
	StatusRunning StepStatus = "Running"
	// StatusDone indicates the step completed.
	StatusDone StepStatus = "Done"
	// StatusError indicates the step failed.
	StatusError StepStatus = "Error"
)

// StepNode is one entry of the step list.
type StepNode struct {
	Name      string
	Status    StepStatus
	Notes     *NotePane
	StartTime time.Time
	EndTime   time.Time
}

// Elapsed returns the step duration, measured up to now while it runs.
func (s *StepNode) Elapsed(now time.Time) time.Duration {
	switch {
	case s.StartTime.IsZero():
		return 0
	case s.EndTime.IsZero():
		return max(now.Sub(s.StartTime), 0)
	default:
		return s.EndTime.Sub(s.StartTime)
	}
}

// Model is the Bubble Tea model of the run progress view.
type Model struct {
	Title       string
	RootSpan    string
	RunErr      error
	Finished    bool
	Steps       []*StepNode
	StepMap     map[string]*StepNode
	SpanMap     map[string]*StepNode
	SelectedIdx int
	ListOffset  int
	ListHeight  int
	NoteWidth   int
	NoteHeight  int
	FollowMode  bool
	Interrupted bool

	Now          time.Time
	TickInterval time.Duration
	disableTick  bool
}

// WithDisableTick stops the elapsed-time refresh loop.
// Tests driving the model under synctest use it to avoid a goroutine that never idles.
func (m Model) WithDisableTick() Model {
	m.disableTick = true
	return m
}

// Init starts the refresh loop.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	if m.disableTick || m.TickInterval <= 0 {
		return nil
	}
	return tea.Tick(m.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tickMsg:
		m.Now = time.Time(msg)
		return m, m.tick()

	case MsgInitSteps:
		m.Steps = make([]*StepNode, 0, len(msg.Steps))
		m.StepMap = make(map[string]*StepNode, len(msg.Steps))
		for _, name := range msg.Steps {
			m.addStep(name)
		}

	case MsgStepStart:
		m.startStep(msg)

	case MsgStepLog:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			_, _ = node.Notes.Write(msg.Data)
		}

	case MsgStepComplete:
		if msg.SpanID == m.RootSpan && m.RootSpan != "" {
			m.Finished = true
			m.RunErr = msg.Err
			m.Now = msg.EndTime
			break
		}
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			node.EndTime = msg.EndTime
			if msg.Err != nil {
				node.Status = StatusError
			} else {
				node.Status = StatusDone
			}
		}
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		m.Interrupted = !m.Finished
		return tea.Quit
	case "k", "up":
		if m.SelectedIdx > 0 {
			m.SelectedIdx--
			m.FollowMode = false
			m.ensureVisible()
		}
	case "j", "down":
		if m.SelectedIdx < len(m.Steps)-1 {
			m.SelectedIdx++
			m.FollowMode = false
			m.ensureVisible()
		}
	case "pgup":
		if node := m.selected(); node != nil {
			node.Notes.Scroll(-m.NoteHeight)
		}
	case "pgdown":
		if node := m.selected(); node != nil {
			node.Notes.Scroll(m.NoteHeight)
		}
	case "esc":
		m.FollowMode = true
		for i, s := range m.Steps {
			if s.Status == StatusRunning {
				m.SelectedIdx = i
				break
			}
		}
		m.ensureVisible()
		if node := m.selected(); node != nil {
			node.Notes.ScrollToBottom()
		}
	}
	return nil
}

func (m *Model) resize(width, height int) {
	listWidth := int(float64(width) * stepListWidthRatio)
	m.NoteWidth = max(width-listWidth-notePaneBorder, 1)

	headerHeight := lipgloss.Height(titleStyle.Render("STRAVEX") + "\n\n")
	m.NoteHeight = max(height-headerHeight, 1)
	m.ListHeight = max(height-headerHeight, 1)
	m.ensureVisible()

	for _, node := range m.Steps {
		node.Notes.SetSize(m.NoteWidth, m.NoteHeight)
	}
}

func (m *Model) addStep(name string) *StepNode {
	if m.StepMap == nil {
		m.StepMap = make(map[string]*StepNode)
	}
	notes := NewNotePane()
	if m.NoteWidth > 0 && m.NoteHeight > 0 {
		notes.SetSize(m.NoteWidth, m.NoteHeight)
	}
	node := &StepNode{Name: name, Status: StatusPending, Notes: notes}
	m.Steps = append(m.Steps, node)
	m.StepMap[name] = node
	return node
}

func (m *Model) startStep(msg MsgStepStart) {
	if msg.ParentID == "" && m.RootSpan == "" {
		m.RootSpan = msg.SpanID
		m.Title = msg.Name
		m.Now = msg.StartTime
		return
	}

	if m.SpanMap == nil {
		m.SpanMap = make(map[string]*StepNode)
	}
	node, ok := m.StepMap[msg.Name]
	if !ok {
		node = m.addStep(msg.Name)
	}
	node.Status = StatusRunning
	node.StartTime = msg.StartTime
	m.SpanMap[msg.SpanID] = node
	if msg.StartTime.After(m.Now) {
		m.Now = msg.StartTime
	}

	if m.FollowMode {
		for i, s := range m.Steps {
			if s == node {
				m.SelectedIdx = i
				break
			}
		}
		m.ensureVisible()
	}
}

func (m *Model) selected() *StepNode {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Steps) {
		return m.Steps[m.SelectedIdx]
	}
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}
