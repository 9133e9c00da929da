package cmd

import (
	"eomarket/internal/config"
	"eomarket/internal/nav"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var initForce bool

// interactive reports whether the setup wizard can take over the terminal.
var interactive = isInteractive

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with a short setup wizard",
	Long: `Asks for the landing page and an optional trace database, then writes
~/.eomarket/config.yml (or the file given with --config). Without a terminal the
defaults are written as they are.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if interactive() {
		done, err := runSetup(cfg)
		if err != nil {
			return err
		}
		if !done {
			fmt.Fprintln(cmd.OutOrStdout(), "Setup canceled, nothing written.")
			return nil
		}
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func isInteractive() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

type setupStep int

const (
	stepLanding setupStep = iota
	stepTrace
	stepDone
)

type setupModel struct {
	step       setupStep
	pages      []string
	cursor     int
	traceInput textinput.Model
	cfg        *config.Config
	canceled   bool
	width      int
	height     int
}

var (
	setupColorMuted  = lipgloss.Color("#7D8794")
	setupColorText   = lipgloss.Color("#E3E7EC")
	setupColorAccent = lipgloss.Color("#D9A441")

	setupHeaderStyle = lipgloss.NewStyle().
				Foreground(setupColorAccent).
				Bold(true).
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(setupColorMuted)

	setupTabInactive = lipgloss.NewStyle().
				Foreground(setupColorMuted).
				Padding(0, 2)

	setupTabActive = lipgloss.NewStyle().
			Foreground(setupColorText).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	setupPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(setupColorMuted).
			Padding(1, 2)

	setupLabelStyle = lipgloss.NewStyle().
			Foreground(setupColorAccent).
			Bold(true)

	setupMutedStyle = lipgloss.NewStyle().
			Foreground(setupColorMuted)

	setupOptionSelected = lipgloss.NewStyle().
				Foreground(setupColorAccent).
				Bold(true)

	setupFooterStyle = lipgloss.NewStyle().
				Foreground(setupColorMuted).
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderTop(true).
				BorderForeground(setupColorMuted)
)

func newSetupModel(cfg *config.Config) setupModel {
	in := textinput.New()
	in.Placeholder = "leave empty to disable"
	in.CharLimit = 256
	in.Prompt = "trace db> "

	var pages []string
	cursor := 0
	for i, p := range nav.DefaultRegistry().Pages {
		pages = append(pages, p.ID)
		if p.ID == cfg.LandingPage {
			cursor = i
		}
	}

	return setupModel{
		step:       stepLanding,
		pages:      pages,
		cursor:     cursor,
		traceInput: in,
		cfg:        cfg,
	}
}

func (m setupModel) Init() tea.Cmd { return nil }

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.canceled = true
			return m, tea.Quit
		}
		switch m.step {
		case stepLanding:
			switch msg.String() {
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.pages)-1 {
					m.cursor++
				}
			case "enter":
				m.cfg.LandingPage = m.pages[m.cursor]
				m.step = stepTrace
				return m, m.traceInput.Focus()
			case "q", "esc":
				m.canceled = true
				return m, tea.Quit
			}
			return m, nil
		case stepTrace:
			switch msg.String() {
			case "enter":
				m.cfg.TraceDB = strings.TrimSpace(m.traceInput.Value())
				m.step = stepDone
				return m, tea.Quit
			case "esc":
				m.step = stepDone
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.traceInput, cmd = m.traceInput.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m setupModel) View() string {
	width := m.width
	height := m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	header := setupHeaderStyle.Width(width).Render("EO Market › Setup")

	landingTab := setupTabInactive.Render("Landing page")
	traceTab := setupTabInactive.Render("Trace")
	if m.step == stepLanding {
		landingTab = setupTabActive.Render("Landing page")
	}
	if m.step == stepTrace {
		traceTab = setupTabActive.Render("Trace")
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Left, landingTab, traceTab)

	var body, help string
	switch m.step {
	case stepLanding:
		lines := []string{setupLabelStyle.Render("Which page should open first?"), ""}
		for i, p := range m.pages {
			if i == m.cursor {
				lines = append(lines, "  "+setupOptionSelected.Render("→ "+p))
			} else {
				lines = append(lines, "    "+p)
			}
		}
		body = strings.Join(lines, "\n")
		help = "↑↓/jk choose  enter confirm  q cancel"
	case stepTrace:
		body = lipgloss.JoinVertical(lipgloss.Left,
			setupLabelStyle.Render("Record navigation transitions?"),
			"",
			setupMutedStyle.Render("Give a SQLite file to record every transition to,"),
			setupMutedStyle.Render("then inspect it with `eomarket trace`."),
			"",
			m.traceInput.View(),
		)
		help = "enter save  esc skip"
	default:
		body = setupLabelStyle.Render("Setup complete")
	}

	cardWidth := max(40, min(80, width-6))
	card := setupPanelStyle.Width(cardWidth).Render(body)
	content := lipgloss.Place(width, max(8, height-6), lipgloss.Center, lipgloss.Top, card)
	footer := setupFooterStyle.Width(width).Render(help)

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, content, footer)
}

// runSetup asks for the settings that are worth choosing up front and
// writes them into cfg. It reports false when the user canceled.
func runSetup(cfg *config.Config) (bool, error) {
	prog := tea.NewProgram(newSetupModel(cfg), tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return false, fmt.Errorf("setup tui failed: %w", err)
	}
	m, ok := finalModel.(setupModel)
	if !ok {
		return false, fmt.Errorf("unexpected setup model type")
	}
	return !m.canceled, nil
}
