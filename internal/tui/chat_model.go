package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/service"
	"github.com/MKhiriev/vedicas-garden/models"
)

const (
	inputHeight  = 3
	chromeHeight = 12
)

type chatModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger

	gurus   []models.Guru
	guruIdx int

	input   textarea.Model
	history viewport.Model
	spinner spinner.Model
	help    help.Model

	waiting bool
	offers  models.Suggestions
	status  string
	errMsg  string
	width   int
}

func newChatModel(ctx context.Context, services *service.ClientServices, logger *logger.Logger) chatModel {
	input := textarea.New()
	input.Placeholder = "Ask your guru..."
	input.SetHeight(inputHeight)
	input.ShowLineNumbers = false
	input.KeyMap.InsertNewline.SetEnabled(false)
	input.Focus()

	return chatModel{
		ctx:      ctx,
		services: services,
		logger:   logger,
		gurus:    guruList(services.State.Snapshot()),
		input:    input,
		history:  viewport.New(80, 20),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:     help.New(),
		width:    80,
	}
}

// guruList returns the selected gurus in order, or every guru when none
// were selected.
func guruList(snap models.Snapshot) []models.Guru {
	var out []models.Guru
	for _, id := range snap.SelectedGurus {
		if models.KnownGuru(id) {
			out = append(out, models.GuruFor(id))
		}
	}
	if len(out) == 0 {
		return models.Gurus()
	}
	return out
}

func (m chatModel) guru() models.Guru {
	return m.gurus[m.guruIdx]
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.cmdGreet(m.guru().ID))
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width - appStyle.GetHorizontalFrameSize()
		m.input.SetWidth(m.width)
		m.history.Width = m.width
		m.history.Height = max(msg.Height-chromeHeight-inputHeight, 3)
		m.refreshHistory()
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case greetedMsg:
		m.waiting = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
		}
		if msg.guruID == m.guru().ID {
			m.refreshHistory()
		}
		return m, nil

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			m.refreshHistory()
			return m, nil
		}
		m.errMsg = ""
		if msg.guruID == m.guru().ID {
			m.offers = msg.suggestions
			m.status = offersStatus(msg.suggestions)
			m.refreshHistory()
		}
		return m, nil

	case acceptedMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		return m, nil

	case wateredMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Watered %d seed(s)", msg.count)
		return m, nil

	case restartedMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.offers = models.Suggestions{}
		m.status = "Conversation restarted"
		m.refreshHistory()
		return m, m.cmdGreet(msg.guruID)

	case syncDoneMsg:
		if !msg.ok {
			m.errMsg = "Sync failed, will retry in the background"
			return m, nil
		}
		m.errMsg = ""
		m.status = "Synced"
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.send):
		text := strings.TrimSpace(m.input.Value())
		if text == "" || m.waiting {
			return m, nil
		}
		m.input.Reset()
		m.waiting = true
		m.errMsg = ""
		m.status = ""
		return m, tea.Batch(m.cmdSend(m.guru().ID, text), m.spinner.Tick)

	case key.Matches(msg, keys.nextGuru), key.Matches(msg, keys.prevGuru):
		step := 1
		if key.Matches(msg, keys.prevGuru) {
			step = len(m.gurus) - 1
		}
		m.guruIdx = (m.guruIdx + step) % len(m.gurus)
		m.offers = models.Suggestions{}
		m.status = ""
		m.errMsg = ""
		m.refreshHistory()
		return m, m.cmdGreet(m.guru().ID)

	case key.Matches(msg, keys.acceptSeed):
		if len(m.offers.Seeds) == 0 {
			m.status = "No seed offers"
			return m, nil
		}
		offer := m.offers.Seeds[0]
		m.offers.Seeds = m.offers.Seeds[1:]
		return m, m.cmdAcceptSeed(m.guru().ID, offer)

	case key.Matches(msg, keys.acceptWisdom):
		if len(m.offers.Wisdom) == 0 {
			m.status = "No wisdom offers"
			return m, nil
		}
		offer := m.offers.Wisdom[0]
		m.offers.Wisdom = m.offers.Wisdom[1:]
		return m, m.cmdAcceptWisdom(m.guru().ID, offer)

	case key.Matches(msg, keys.water):
		return m, m.cmdWaterAll()

	case key.Matches(msg, keys.copyReply):
		reply, ok := m.lastReply()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(reply); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied"
		return m, nil

	case key.Matches(msg, keys.restart):
		return m, m.cmdRestart(m.guru().ID)

	case key.Matches(msg, keys.sync):
		if !m.services.AuthService.Authenticated() {
			m.errMsg = "Sign in to sync"
			return m, nil
		}
		m.status = "Syncing..."
		return m, m.cmdSync()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) refreshHistory() {
	m.history.SetContent(renderHistory(m.services.ChatService.History(m.guru().ID), m.guru(), m.width))
	m.history.GotoBottom()
}

// lastReply returns the newest guru message without offer tags.
func (m chatModel) lastReply() (string, bool) {
	msgs := m.services.ChatService.History(m.guru().ID)
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == models.RoleAssistant {
			return service.ParseSuggestions(msgs[i].Content).CleanText, true
		}
	}
	return "", false
}

func (m chatModel) cmdGreet(guruID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.ChatService.Greet(m.ctx, guruID)
		return greetedMsg{guruID: guruID, err: err}
	}
}

func (m chatModel) cmdSend(guruID, text string) tea.Cmd {
	return func() tea.Msg {
		_, suggestions, err := m.services.ChatService.Send(m.ctx, guruID, text)
		return replyMsg{guruID: guruID, suggestions: suggestions, err: err}
	}
}

func (m chatModel) cmdAcceptSeed(guruID string, offer models.SeedOffer) tea.Cmd {
	return func() tea.Msg {
		seed, err := m.services.ChatService.AcceptSeedOffer(m.ctx, guruID, offer)
		return acceptedMsg{status: fmt.Sprintf("Planted %q", seed.Title), err: err}
	}
}

func (m chatModel) cmdAcceptWisdom(guruID string, offer models.WisdomOffer) tea.Cmd {
	return func() tea.Msg {
		note, err := m.services.ChatService.AcceptWisdomOffer(m.ctx, guruID, offer)
		return acceptedMsg{status: fmt.Sprintf("Saved %q", note.Title), err: err}
	}
}

// cmdWaterAll waters every active seed not yet watered today.
func (m chatModel) cmdWaterAll() tea.Cmd {
	return func() tea.Msg {
		var count int
		for _, s := range m.services.State.Snapshot().Seeds {
			if !s.Active {
				continue
			}
			_, err := m.services.GardenService.WaterSeed(m.ctx, s.ClientSideID)
			if errors.Is(err, service.ErrAlreadyWatered) {
				continue
			}
			if err != nil {
				return wateredMsg{count: count, err: err}
			}
			count++
		}
		return wateredMsg{count: count}
	}
}

func (m chatModel) cmdRestart(guruID string) tea.Cmd {
	return func() tea.Msg {
		return restartedMsg{guruID: guruID, err: m.services.ChatService.Restart(m.ctx, guruID)}
	}
}

func (m chatModel) cmdSync() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{ok: m.services.SyncService.Push(m.ctx)}
	}
}

func (m chatModel) View() string {
	var b strings.Builder

	b.WriteString(renderTabs(m.gurus, m.guruIdx))
	b.WriteString("\n")
	b.WriteString(renderStats(m.services.GardenService.Stats()))
	b.WriteString("\n\n")
	b.WriteString(m.history.View())
	b.WriteString("\n")

	if offers := renderOffers(m.offers); offers != "" {
		b.WriteString(offerStyle.Render(offers))
		b.WriteString("\n")
	}

	switch {
	case m.waiting:
		b.WriteString(m.spinner.View() + " " + m.guru().Name + " is reflecting...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.ShortHelpView(keys.help())))

	return appStyle.Render(b.String())
}
