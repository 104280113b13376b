package admintui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/errors"
	"github.com/lmoreno/toyhaven/internal/tui/styles"
)

// productFormState is the add/edit form. The image field takes a local
// file path; the upload goes out as multipart form data.
type productFormState struct {
	inputs []textinput.Model
	focus  int
	id     string // empty means create
}

func (m *Model) startProductForm(p *api.Product) {
	fields := []struct{ placeholder, value string }{
		{"name", ""},
		{"description", ""},
		{"price", ""},
		{"category", ""},
		{"stock", ""},
		{"image path (optional)", ""},
	}
	id := ""
	if p != nil {
		id = p.ID
		fields[0].value = p.Name
		fields[1].value = p.Description
		fields[2].value = strconv.FormatFloat(p.Price, 'f', -1, 64)
		fields[3].value = p.Category
		fields[4].value = strconv.Itoa(p.Stock)
	}

	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		input := textinput.New()
		input.Placeholder = f.placeholder
		input.CharLimit = 300
		input.SetValue(f.value)
		if i == 0 {
			input.Focus()
		}
		inputs[i] = input
	}
	m.form = productFormState{inputs: inputs, id: id}
}

// enterProductForm switches to the form screen without a fetch.
func (m *Model) enterProductForm() tea.Cmd {
	m.screen = screenProductForm
	m.gen++
	m.notice = ""
	return nil
}

func (m Model) updateProductForm(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case productSavedMsg:
		if m.stale(message.gen) {
			return m, nil
		}
		// Back to the table; it refetches on create and patches on edit.
		cmd := m.navigate(screenProducts)
		if message.created {
			m.notice = styles.SuccessNotice.Render("Product created")
		} else {
			m.notice = styles.SuccessNotice.Render("Product saved")
		}
		return m, cmd

	case tea.KeyMsg:
		switch message.Type {
		case tea.KeyEsc:
			return m, m.navigate(screenProducts)
		case tea.KeyTab, tea.KeyDown:
			m.form.focusField((m.form.focus + 1) % len(m.form.inputs))
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.form.focusField((m.form.focus + len(m.form.inputs) - 1) % len(m.form.inputs))
			return m, nil
		case tea.KeyEnter:
			return m.submitProductForm()
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(message)
	return m, cmd
}

func (m Model) submitProductForm() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.form.inputs[0].Value())
	description := strings.TrimSpace(m.form.inputs[1].Value())
	priceText := strings.TrimSpace(m.form.inputs[2].Value())
	category := strings.TrimSpace(m.form.inputs[3].Value())
	stockText := strings.TrimSpace(m.form.inputs[4].Value())
	imagePath := strings.TrimSpace(m.form.inputs[5].Value())

	if name == "" {
		m.notice = errors.UserMessage(errors.NewValidationError("name", "name is required"), "")
		return m, nil
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil || price < 0 {
		m.notice = errors.UserMessage(errors.NewValidationError("price", "price must be a non-negative number"), "")
		return m, nil
	}
	stock, err := strconv.Atoi(stockText)
	if err != nil || stock < 0 {
		m.notice = errors.UserMessage(errors.NewValidationError("stock", "stock must be a non-negative integer"), "")
		return m, nil
	}

	form := api.ProductForm{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Stock:       stock,
		ImagePath:   imagePath,
	}
	return m, saveProduct(m.client, m.gen, m.form.id, form)
}

func (s *productFormState) focusField(i int) {
	s.inputs[s.focus].Blur()
	s.focus = i
	s.inputs[s.focus].Focus()
}

func (m *Model) viewProductForm() string {
	var b strings.Builder
	title := "New product"
	if m.form.id != "" {
		title = "Edit product"
	}
	b.WriteString(styles.AdminTitle.Render(title))
	b.WriteString("\n\n")
	for i, input := range m.form.inputs {
		cursor := "  "
		if i == m.form.focus {
			cursor = styles.Admin.Render("> ")
		}
		b.WriteString(cursor + input.View() + "\n")
	}
	b.WriteString("\n" + styles.HelpBar.Render(
		styles.HelpKey.Render("enter")+" save  "+
			styles.HelpKey.Render("esc")+" cancel"))
	return b.String()
}
