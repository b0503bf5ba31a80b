package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"vitacoach/internal/engine"
	"vitacoach/internal/storage"
	"vitacoach/internal/ui"
)

const defaultMood = 3

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	summary    *engine.Summary
	badges     []engine.BadgeProgress
	challenges []storage.Challenge

	selected int
	mood     int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	summary    *engine.Summary
	badges     []engine.BadgeProgress
	challenges []storage.Challenge
	err        error
}

type checkedInMsg struct {
	res *engine.CheckInResult
	err error
}

type toggledMsg struct {
	challenge *storage.Challenge
	err       error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		mood:    defaultMood,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		sum, err := m.svc.Summary(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		badges, err := m.svc.Badges(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		challenges, err := m.svc.Challenges(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{summary: sum, badges: badges, challenges: challenges}
	}
}

func (m boardModel) checkInCmd() tea.Cmd {
	mood := m.mood
	return func() tea.Msg {
		res, err := m.svc.CheckIn(m.ctx, engine.CheckInInput{Mood: mood, Energy: mood})
		return checkedInMsg{res: res, err: err}
	}
}

func (m boardModel) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		c, err := m.svc.ToggleChallenge(m.ctx, id)
		return toggledMsg{challenge: c, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.summary = msg.summary
		m.badges = msg.badges
		m.challenges = msg.challenges
		if m.selected >= len(m.challenges) {
			m.selected = len(m.challenges) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", m.svc.Now().Format("15:04:05"))
		return m, nil
	case checkedInMsg:
		if msg.err != nil {
			m.lastLog = "Check-in failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = describeCheckIn(msg.res)
		return m, m.loadCmd()
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Challenge update failed: " + msg.err.Error()
			return m, nil
		}
		if msg.challenge.Joined {
			m.lastLog = "Joined " + msg.challenge.Title + "."
		} else {
			m.lastLog = "Left " + msg.challenge.Title + "."
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.challenges)-1 {
				m.selected++
			}
			return m, nil
		case "+", "=":
			if m.mood < 5 {
				m.mood++
			}
			return m, nil
		case "-":
			if m.mood > 1 {
				m.mood--
			}
			return m, nil
		case "c":
			m.lastLog = "Checking in…"
			return m, m.checkInCmd()
		case " ", "enter":
			if m.selected < 0 || m.selected >= len(m.challenges) {
				return m, nil
			}
			return m, m.toggleCmd(m.challenges[m.selected].ID)
		}
	}
	return m, nil
}

func describeCheckIn(res *engine.CheckInResult) string {
	s := fmt.Sprintf("Checked in: +%d XP, streak %d", res.Award.XPAwarded, res.Streak)
	if res.Award.LevelUp {
		s += fmt.Sprintf(" | %s %d → %d", ui.BadgeLevelUp, res.Award.LevelBefore, res.Award.LevelAfter)
	}
	for _, b := range res.Award.Unlocked {
		s += " | " + b.Icon + " " + b.Name
	}
	return s
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	rows := len(linesLeft)
	if len(linesRight) > rows {
		rows = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.summary == nil {
		return "Vitacoach: loading…"
	}
	s := m.summary
	who := "signed out"
	if s.Authenticated {
		who = fmt.Sprintf("%s %s (%s)", ui.RoleIcon(string(s.Role)), s.Email, s.Role)
	}
	bar := ui.ProgressBar(s.XP-s.LevelFloorXP, engine.XPPerLevel, 30)
	return fmt.Sprintf("Vitacoach | %s | Level %d | XP %d %s", who, s.Level, s.XP, bar)
}

func (m boardModel) renderSidebar() string {
	if m.summary == nil {
		return "Today\n\nLoading…"
	}
	s := m.summary
	lines := []string{"Today"}
	if s.Streak.CheckedInToday {
		lines = append(lines, "- checked in "+ui.IconDone)
	} else {
		lines = append(lines, fmt.Sprintf("- not checked in (mood %d/5)", m.mood))
	}
	streak := fmt.Sprintf("- streak %d %s (best %d)", s.Streak.Current, ui.IconFire, s.Streak.Longest)
	if s.Streak.Broken {
		streak += " broken"
	}
	lines = append(lines, streak)
	lines = append(lines, fmt.Sprintf("- %d XP to level %d", s.XPToNext, s.Level+1))
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("Badges %d/%d", s.BadgesEarned, s.BadgesTotal))
	for _, b := range m.badges {
		mark := ui.IconLock
		if b.Earned {
			mark = b.Icon
		}
		lines = append(lines, fmt.Sprintf("- %s %s", mark, b.Name))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- c: check in")
	lines = append(lines, "- +/-: mood")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- space: join/leave")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Challenges")
	if len(m.challenges) == 0 {
		out = append(out, "(none)")
		return strings.Join(out, "\n")
	}
	for i, c := range m.challenges {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if c.Joined {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s (%dd, +%d XP, %d joined)", cursor, mark, c.Title, c.DurationDays, c.XPReward, c.Participants))
	}

	if s := m.summary; s != nil && s.Contract != nil {
		out = append(out, "")
		out = append(out, "Commitment")
		out = append(out, fmt.Sprintf("- %s, %s at stake", s.Contract.Goal, ui.Cents(s.Contract.StakeCents)))
		if s.Partner != "" {
			out = append(out, "- partner: "+s.Partner)
		}
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
