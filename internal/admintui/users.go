package admintui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/list"
	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

type usersState struct {
	items     *list.List[api.AdminUser]
	stats     *api.UserStats
	cursor    int
	searching bool
	search    textinput.Model
	loaded    bool
}

var userFilters = []string{list.FilterAll, "active", "blocked"}

func (m Model) updateUsers(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case usersLoadedMsg:
		if m.stale(message.gen) {
			return m, nil
		}
		m.users.items.SetItems(message.users)
		m.users.loaded = true
		m.users.cursor = 0
		return m, nil

	case userStatsLoadedMsg:
		if m.stale(message.gen) {
			return m, nil
		}
		m.users.stats = message.stats
		return m, nil

	case userBlockToggledMsg:
		if m.stale(message.gen) {
			return m, nil
		}
		for _, user := range m.users.items.Matching() {
			if user.ID == message.id {
				user.IsBlocked = message.blocked
				m.users.items.ReplaceByID(message.id, user)
				break
			}
		}
		if message.blocked {
			m.notice = styles.SuccessNotice.Render("User blocked")
		} else {
			m.notice = styles.SuccessNotice.Render("User unblocked")
		}
		// Stats change with the block flag; refresh them.
		return m, loadUserStats(m.client, m.gen)

	case tea.KeyMsg:
		if m.users.searching {
			return m.updateUserSearch(message)
		}
		return m.handleUsersKey(message)
	}
	return m, nil
}

func (m Model) updateUserSearch(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.users.searching = false
		m.users.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.users.search, cmd = m.users.search.Update(key)
	m.users.items.SetSearch(m.users.search.Value())
	m.users.cursor = 0
	return m, cmd
}

func (m Model) handleUsersKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "/":
		if m.users.search.Placeholder == "" {
			m.users.search = textinput.New()
			m.users.search.Placeholder = "search name or email"
			m.users.search.CharLimit = 80
		}
		m.users.searching = true
		m.users.search.Focus()
	case "j", "down":
		if m.users.cursor < len(m.users.items.Visible())-1 {
			m.users.cursor++
		}
	case "k", "up":
		if m.users.cursor > 0 {
			m.users.cursor--
		}
	case "n", "right":
		m.users.items.NextPage()
		m.users.cursor = 0
	case "p", "left":
		m.users.items.PrevPage()
		m.users.cursor = 0
	case "f":
		m.users.items.SetFilter(nextUserFilter(m.users.items.Filter()))
		m.users.cursor = 0
	case "enter", "b":
		if user, ok := m.selectedUser(); ok {
			action, blocked := "Block", true
			if user.IsBlocked {
				action, blocked = "Unblock", false
			}
			m.confirm = confirm{
				active:  true,
				prompt:  fmt.Sprintf("%s %s (%s)?", action, user.Name, user.Email),
				pending: setUserBlocked(m.client, m.gen, user.ID, blocked),
			}
		}
	case "r":
		return m, tea.Batch(loadUsers(m.client, m.gen), loadUserStats(m.client, m.gen))
	}
	return m, nil
}

func (m *Model) selectedUser() (api.AdminUser, bool) {
	visible := m.users.items.Visible()
	if m.users.cursor >= len(visible) {
		return api.AdminUser{}, false
	}
	return visible[m.users.cursor], true
}

func nextUserFilter(current string) string {
	for i, f := range userFilters {
		if f == current {
			return userFilters[(i+1)%len(userFilters)]
		}
	}
	return list.FilterAll
}

func (m *Model) viewUsers() string {
	var b strings.Builder
	b.WriteString(styles.AdminTitle.Render("Users"))
	b.WriteString("\n")

	if stats := m.users.stats; stats != nil {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf(
			"%d total · %d active · %d blocked · %d new today",
			stats.TotalUsers, stats.ActiveUsers, stats.BlockedUsers, stats.NewUsersToday)))
		b.WriteString("\n")
	}
	b.WriteString(styles.Subtitle.Render("filter: " + m.users.items.Filter()))
	b.WriteString("\n")
	if m.users.searching || m.users.search.Value() != "" {
		b.WriteString(m.users.search.View() + "\n")
	}
	b.WriteString("\n")

	if !m.users.loaded {
		b.WriteString(styles.Muted.Render("Loading users..."))
		return b.String()
	}

	visible := m.users.items.Visible()
	if len(visible) == 0 {
		b.WriteString(styles.Muted.Render("No users match."))
		return b.String()
	}

	for i, user := range visible {
		status := styles.Secondary.Render("active")
		if user.IsBlocked {
			status = styles.Error.Render("blocked")
		}
		lastLogin := "never"
		if user.LastLogin != nil {
			lastLogin = user.LastLogin.Format("2006-01-02")
		}
		row := fmt.Sprintf("%-24s %-28s %-8s logins %-4d last %s",
			truncate(user.Name, 24), truncate(user.Email, 28), status, user.LoginCount, lastLogin)
		if i == m.users.cursor {
			b.WriteString(styles.RowSelected.Render("> ") + row)
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.Muted.Render(fmt.Sprintf("\npage %d/%d · %d users",
		m.users.items.Page(), m.users.items.TotalPages(), m.users.items.MatchCount())))
	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("/")+" search  "+
			styles.HelpKey.Render("f")+" filter  "+
			styles.HelpKey.Render("enter")+" block/unblock  "+
			styles.HelpKey.Render("r")+" refresh"))
	return b.String()
}
