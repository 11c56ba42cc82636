package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DEFAULT_SERVER_URL = "http://localhost:3000"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringName step = iota
	stepEnteringEmail
	stepEnteringCellphone
	stepEnteringPassword
	stepRegistering
	stepLoggingIn
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	name         string
	email        string
	cellphone    string
	password     string
	token        string
	currentInput string
	message      string
	quitting     bool
}

type registerSuccessMsg struct{}
type loginSuccessMsg struct {
	token string
}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	serverURL := os.Getenv("DUO_SERVER_URL")
	if serverURL == "" {
		serverURL = DEFAULT_SERVER_URL
	}
	return model{
		step:      stepEnteringName,
		serverURL: serverURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func registerUser(serverURL, name, email, cellphone, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"name":      name,
			"email":     email,
			"cellphone": cellphone,
			"password":  password,
		}

		jsonData, _ := json.Marshal(payload)
		registerURL := serverURL + "/api/v1/users/register"

		req, _ := http.NewRequest("POST", registerURL, bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server at %s: %w", serverURL, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusConflict {
			return errMsg{fmt.Errorf("email %s is already registered", email)}
		}
		if resp.StatusCode != http.StatusCreated {
			var result map[string]interface{}
			_ = json.NewDecoder(resp.Body).Decode(&result)
			if msg, ok := result["error"].(string); ok {
				return errMsg{fmt.Errorf("registration failed: %s", msg)}
			}
			return errMsg{fmt.Errorf("registration failed with status %d", resp.StatusCode)}
		}

		return registerSuccessMsg{}
	}
}

func loginUser(serverURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}

		jsonData, _ := json.Marshal(payload)
		loginURL := serverURL + "/api/v1/auth/login"

		req, _ := http.NewRequest("POST", loginURL, bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server at %s: %w", serverURL, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login failed with status %d", resp.StatusCode)}
		}

		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("could not decode login response: %w", err)}
		}

		token, ok := result["token"].(string)
		if !ok || token == "" {
			return errMsg{fmt.Errorf("login response did not include a token")}
		}

		return loginSuccessMsg{token: token}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			value := strings.TrimSpace(m.currentInput)
			switch m.step {
			case stepEnteringName:
				if value == "" {
					m.message = "Name cannot be empty"
					return m, nil
				}
				m.name = value
				m.currentInput = ""
				m.message = ""
				m.step = stepEnteringEmail
			case stepEnteringEmail:
				if value == "" || !strings.Contains(value, "@") {
					m.message = "Please enter a valid email"
					return m, nil
				}
				m.email = value
				m.currentInput = ""
				m.message = ""
				m.step = stepEnteringCellphone
			case stepEnteringCellphone:
				if value == "" {
					m.message = "Cellphone cannot be empty"
					return m, nil
				}
				m.cellphone = value
				m.currentInput = ""
				m.message = ""
				m.step = stepEnteringPassword
			case stepEnteringPassword:
				if len(value) < 6 {
					m.message = "Password must be at least 6 characters"
					return m, nil
				}
				m.password = value
				m.currentInput = ""
				m.message = ""
				m.step = stepRegistering
				return m, registerUser(m.serverURL, m.name, m.email, m.cellphone, m.password)
			}
			return m, nil

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}
			return m, nil

		default:
			if len(msg.String()) == 1 {
				m.currentInput += msg.String()
			}
			return m, nil
		}

	case registerSuccessMsg:
		m.step = stepLoggingIn
		return m, loginUser(m.serverURL, m.email, m.password)

	case loginSuccessMsg:
		m.token = msg.token
		m.step = stepComplete
		return m, nil

	case errMsg:
		m.message = msg.Error()
		// go back to the password prompt so the user can retry
		m.step = stepEnteringPassword
		m.currentInput = ""
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "Setup cancelled.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Duo Account Setup"))
	b.WriteString("\n\n")

	switch m.step {
	case stepEnteringName:
		b.WriteString(promptStyle.Render("Your name: "))
		b.WriteString(inputStyle.Render(m.currentInput + "█"))
	case stepEnteringEmail:
		b.WriteString(promptStyle.Render("Email: "))
		b.WriteString(inputStyle.Render(m.currentInput + "█"))
	case stepEnteringCellphone:
		b.WriteString(promptStyle.Render("Cellphone: "))
		b.WriteString(inputStyle.Render(m.currentInput + "█"))
	case stepEnteringPassword:
		b.WriteString(promptStyle.Render("Password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput)) + "█"))
	case stepRegistering:
		b.WriteString("Registering account for " + m.email + "...")
	case stepLoggingIn:
		b.WriteString("Logging in...")
	case stepComplete:
		b.WriteString(successStyle.Render("Account ready!"))
		b.WriteString("\n\n")
		b.WriteString("Email: " + m.email + "\n")
		b.WriteString("Bearer token (valid 1h):\n")
		b.WriteString(inputStyle.Render(m.token))
		b.WriteString("\n\nPress esc to exit.")
	}

	if m.message != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.message))
	}

	b.WriteString("\n")
	return b.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
