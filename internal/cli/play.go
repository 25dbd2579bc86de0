package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/seamusw/nxcube"
	"github.com/seamusw/nxcube/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube in the terminal",
	Long: `Turn a cube interactively.

Keys:
  u d l r f b    clockwise face turns
  U D L R F B    counter-clockwise face turns
  s              apply a random scramble
  backspace      undo the last move
  ctrl+r         reset to solved
  q              quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cube, err := nxcube.New(cubeSize)
	if err != nil {
		return err
	}

	model := newPlayModel(cube)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}

var (
	playTitleStyle  = lipgloss.NewStyle().Bold(true)
	playStatusStyle = lipgloss.NewStyle().Faint(true)
	playSolvedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

type playModel struct {
	cube      *nxcube.Cube
	history   []nxcube.Move
	scrambler *nxcube.Scrambler
	status    string
	quitting  bool
}

func newPlayModel(cube *nxcube.Cube) *playModel {
	return &playModel{
		cube:      cube,
		scrambler: nxcube.NewScrambler(),
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "ctrl+r":
		cube, err := nxcube.New(m.cube.Size())
		if err == nil {
			m.cube = cube
			m.history = nil
			m.status = "reset to solved"
		}
		return m, nil

	case "s":
		moves, err := m.scrambler.Generate(m.cube.Size(), nxcube.Medium.Length(m.cube.Size()))
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		if err := m.cube.ApplyMoves(moves); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.history = append(m.history, moves...)
		m.status = "scramble: " + nxcube.FormatMoves(moves)
		return m, nil

	case "backspace":
		if len(m.history) == 0 {
			return m, nil
		}
		last := m.history[len(m.history)-1]
		if err := m.cube.ApplyMove(last.Inverse()); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.history = m.history[:len(m.history)-1]
		m.status = "undid " + last.Notation()
		return m, nil
	}

	move, ok := keyToMove(key)
	if !ok {
		return m, nil
	}
	if err := m.cube.ApplyMove(move); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.history = append(m.history, move)
	m.status = ""
	return m, nil
}

// keyToMove maps a face key to a move: lower-case is clockwise,
// upper-case counter-clockwise.
func keyToMove(key string) (nxcube.Move, bool) {
	if len(key) != 1 {
		return nxcube.Move{}, false
	}

	turn := nxcube.CW
	upper := strings.ToUpper(key)
	if key == upper {
		turn = nxcube.CCW
	}

	switch upper {
	case "U", "D", "L", "R", "F", "B":
		return nxcube.Move{Face: nxcube.Face(upper), Turn: turn}, true
	default:
		return nxcube.Move{}, false
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	n := m.cube.Size()
	sb.WriteString(playTitleStyle.Render(fmt.Sprintf("nxcube %dx%d", n, n)))
	sb.WriteString("\n\n")
	sb.WriteString(render.Net(m.cube))
	sb.WriteString("\n")

	if m.cube.IsSolved() {
		sb.WriteString(playSolvedStyle.Render("SOLVED"))
	} else {
		sb.WriteString(fmt.Sprintf("%d moves", len(m.history)))
	}
	sb.WriteString("\n")

	if m.status != "" {
		sb.WriteString(m.status)
		sb.WriteString("\n")
	}

	sb.WriteString(playStatusStyle.Render("u/d/l/r/f/b turn  shift+key reverse  s scramble  backspace undo  ctrl+r reset  q quit"))
	sb.WriteString("\n")
	return sb.String()
}
