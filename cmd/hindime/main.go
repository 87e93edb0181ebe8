// hindime is an interactive terminal translator: type ITRANS, see
// Devanagari. With --history-db it records every translation and
// restores the scrollback on the next run.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/jusunglee/hindime/internal/history"
	"github.com/jusunglee/hindime/internal/logger"
	"github.com/jusunglee/hindime/internal/transliteration"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

const scrollback = 10

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type exchange struct {
	itrans     string
	devanagari string
}

type model struct {
	input textinput.Model
	past  []exchange
	store *history.Store
	err   error
}

func newModel(store *history.Store, past []exchange) model {
	ti := textinput.New()
	ti.Placeholder = "namaste"
	ti.Prompt = "ITRANS: "
	ti.Focus()
	return model{input: ti, past: past, store: store}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	if text == "quit" || text == "exit" || text == "q" {
		return m, tea.Quit
	}

	out := transliteration.Translate(text)
	m.past = append(m.past, exchange{itrans: text, devanagari: out})
	if len(m.past) > scrollback {
		m.past = m.past[len(m.past)-scrollback:]
	}

	m.err = nil
	if m.store != nil {
		if _, err := m.store.Add(context.Background(), text, out); err != nil {
			m.err = fmt.Errorf("recording history: %w", err)
		}
	}

	m.input.SetValue("")
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("ITRANS → Devanagari"))
	s.WriteString("\n")

	for _, ex := range m.past {
		s.WriteString(dimStyle.Render(ex.itrans))
		s.WriteString("\n")
		s.WriteString(outputStyle.Render(ex.devanagari))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.input.View())
	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}
	s.WriteString("\n" + dimStyle.Render("Enter to translate, Esc to quit"))
	s.WriteString("\n")
	return s.String()
}

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()
	log := logger.New()

	fs := ff.NewFlagSet("hindime")
	var (
		historyDB = fs.StringLong("history-db", "", "SQLite file for translation history (empty disables)")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("HINDIME")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	ctx := context.Background()

	var store *history.Store
	var past []exchange
	if *historyDB != "" {
		var err error
		store, err = history.Open(ctx, *historyDB)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()

		entries, err := store.Recent(ctx, scrollback)
		if err != nil {
			return fmt.Errorf("loading history: %w", err)
		}
		// Recent is newest-first; the scrollback reads oldest-first.
		for i := len(entries) - 1; i >= 0; i-- {
			past = append(past, exchange{itrans: entries[i].Input, devanagari: entries[i].Output})
		}
		log.Info("loaded history", "path", *historyDB, "entries", len(entries))
	}

	if _, err := tea.NewProgram(newModel(store, past)).Run(); err != nil {
		return fmt.Errorf("running translator: %w", err)
	}
	return nil
}
