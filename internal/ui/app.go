package ui

import (
	"bufio"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"victorine/internal/app"
	"victorine/internal/domain"
)

var (
	infoColor   = color.New(color.FgBlue)
	promptColor = color.New(color.FgYellow)
	okColor     = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed)
)

// UserDirectory is everything the console needs from the user store.
type UserDirectory interface {
	Register(login, password, birthDate string) error
	Authenticate(login, password string) error
	UpdateSettings(login, password, birthDate string) error
	AppendResult(login, category string, score int, date string) error
	History(login string) (domain.ResultHistory, error)
	All() (map[string]domain.UserRecord, error)
}

// QuestionBank is what the menus and the admin editor need from bank storage.
type QuestionBank interface {
	Load() ([]domain.Question, error)
	Save([]domain.Question) error
}

// App is the interactive console: menus, auth flows, quiz sessions, result
// views and the admin bank editor, all over one shared reader and writer.
type App struct {
	in     *bufio.Reader
	out    io.Writer
	users  UserDirectory
	bank   QuestionBank
	runner *app.Runner
	agg    *app.Aggregator
	topN   int
}

func New(in io.Reader, out io.Writer, users UserDirectory, bank QuestionBank, questionsPerQuiz, leaderboardSize int) *App {
	reader := bufio.NewReader(in)
	return &App{
		in:     reader,
		out:    out,
		users:  users,
		bank:   bank,
		runner: app.NewRunner(bank, users, &consolePrompter{in: reader, out: out}, questionsPerQuiz),
		agg:    app.NewAggregator(users, leaderboardSize),
		topN:   leaderboardSize,
	}
}

// Run drives the main menu until the user exits or input ends.
func (a *App) Run() error {
	for {
		a.renderMenu("Main menu", [][]string{
			{"1", "Log in"},
			{"2", "Register"},
			{"3", "Exit"},
		})

		choice, err := a.prompt("Choose an option (1-3): ")
		if err != nil {
			return finishOnEOF(err)
		}

		switch choice {
		case "1":
			login, ok, err := a.loginFlow()
			if err != nil {
				return finishOnEOF(err)
			}
			if ok {
				if err := a.userMenu(login); err != nil {
					return finishOnEOF(err)
				}
			}
		case "2":
			if err := a.registerFlow(); err != nil {
				return finishOnEOF(err)
			}
		case "3":
			infoColor.Fprintln(a.out, "Goodbye!")
			return nil
		default:
			failColor.Fprintln(a.out, "Invalid choice. Try again.")
		}
	}
}

// finishOnEOF turns end of input into a clean exit; the console has no other
// way to stop than closing stdin.
func finishOnEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (a *App) loginFlow() (string, bool, error) {
	infoColor.Fprintln(a.out, "\nLog in")
	login, err := a.prompt("Login: ")
	if err != nil {
		return "", false, err
	}
	password, err := a.prompt("Password: ")
	if err != nil {
		return "", false, err
	}

	switch err := a.users.Authenticate(login, password); {
	case err == nil:
		infoColor.Fprintf(a.out, "Welcome, %s!\n", login)
		return login, true, nil
	case errors.Is(err, domain.ErrUnknownLogin):
		failColor.Fprintln(a.out, "User not found. Register first.")
		return "", false, nil
	case errors.Is(err, domain.ErrWrongPassword):
		failColor.Fprintln(a.out, "Wrong password.")
		return "", false, nil
	default:
		return "", false, err
	}
}

func (a *App) registerFlow() error {
	infoColor.Fprintln(a.out, "\nRegister")
	login, err := a.prompt("Login: ")
	if err != nil {
		return err
	}
	password, err := a.prompt("Password: ")
	if err != nil {
		return err
	}
	birthDate, err := a.prompt("Birth date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	switch err := a.users.Register(login, password, birthDate); {
	case err == nil:
		okColor.Fprintln(a.out, "Registration successful!")
	case errors.Is(err, domain.ErrLoginTaken):
		failColor.Fprintln(a.out, "Login already exists. Try another one.")
	default:
		failColor.Fprintf(a.out, "Registration failed: %v\n", err)
	}
	return nil
}

func (a *App) userMenu(login string) error {
	isAdmin := strings.EqualFold(strings.TrimSpace(login), "admin")

	for {
		rows := [][]string{
			{"1", "Start a new quiz"},
			{"2", "View my past results"},
			{"3", "View the top scores for a quiz"},
			{"4", "Change settings (password, birth date)"},
			{"5", "Exit"},
		}
		if isAdmin {
			rows = append(rows, []string{"0", "Edit the question bank"})
		}
		a.renderMenu("User menu", rows)

		choice, err := a.prompt("Choose an option (1-5): ")
		if err != nil {
			return err
		}

		switch {
		case choice == "1":
			if err := a.startQuiz(login); err != nil {
				return err
			}
		case choice == "2":
			a.showResults(login)
		case choice == "3":
			if err := a.showTop(); err != nil {
				return err
			}
		case choice == "4":
			if err := a.updateSettings(login); err != nil {
				return err
			}
		case choice == "5":
			infoColor.Fprintln(a.out, "Logging out. Goodbye!")
			return nil
		case choice == "0" && isAdmin:
			if err := a.editorMenu(); err != nil {
				return err
			}
		default:
			failColor.Fprintln(a.out, "Invalid choice. Try again.")
		}
	}
}

func (a *App) startQuiz(login string) error {
	spec, ok, err := a.chooseCategory()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	infoColor.Fprintf(a.out, "\nStarting a quiz in category %s\n", spec.String())
	if _, err := a.runner.Run(login, spec); err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		// Expected misuse (empty bank, empty category) and store trouble end
		// the session without ending the program.
		failColor.Fprintf(a.out, "The quiz could not run: %v\n", err)
	}
	return nil
}

// chooseCategory renders the category menu and maps the pick to a spec. The
// last row is always the Mixed selection. ok is false when nothing valid was
// chosen.
func (a *App) chooseCategory() (app.CategorySpec, bool, error) {
	questions, err := a.bank.Load()
	if err != nil {
		failColor.Fprintf(a.out, "Could not load categories: %v\n", err)
		return app.CategorySpec{}, false, nil
	}
	categories := app.Categories(questions)
	if len(categories) == 0 {
		failColor.Fprintln(a.out, "No questions available!")
		return app.CategorySpec{}, false, nil
	}

	infoColor.Fprintln(a.out, "\nPick a category")
	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"#", "Category"})
	for i, category := range categories {
		table.Append([]string{strconv.Itoa(i + 1), category})
	}
	table.Append([]string{strconv.Itoa(len(categories) + 1), app.MixedCategory})
	table.Render()

	choice, err := a.prompt("Choose a category: ")
	if err != nil {
		return app.CategorySpec{}, false, err
	}
	idx, convErr := strconv.Atoi(choice)
	switch {
	case convErr != nil || idx < 1 || idx > len(categories)+1:
		failColor.Fprintln(a.out, "Invalid category choice.")
		return app.CategorySpec{}, false, nil
	case idx == len(categories)+1:
		return app.Mixed(), true, nil
	default:
		return app.Specific(categories[idx-1]), true, nil
	}
}

func (a *App) showResults(login string) {
	infoColor.Fprintf(a.out, "\nResults for user %s:\n", login)

	history, err := a.agg.UserHistory(login)
	if err != nil {
		failColor.Fprintf(a.out, "Could not load results: %v\n", err)
		return
	}
	if len(history) == 0 {
		infoColor.Fprintln(a.out, "You have no quiz results yet.")
		return
	}

	categories := make([]string, 0, len(history))
	for category := range history {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		infoColor.Fprintf(a.out, "Category %s:\n", category)
		table := tablewriter.NewWriter(a.out)
		table.SetHeader([]string{"Date", "Score"})
		for _, result := range history[category] {
			table.Append([]string{result.Date, strconv.Itoa(result.Score)})
		}
		table.Render()
	}
}

func (a *App) showTop() error {
	spec, ok, err := a.chooseCategory()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	entries, aggErr := a.agg.TopN(spec)
	if aggErr != nil {
		failColor.Fprintf(a.out, "Could not load the leaderboard: %v\n", aggErr)
		return nil
	}

	infoColor.Fprintf(a.out, "\nTop %d for category %s:\n", a.topN, spec.String())
	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"Place", "User", "Score", "Date"})
	for i, entry := range entries {
		table.Append([]string{strconv.Itoa(i + 1), entry.Login, strconv.Itoa(entry.Score), entry.Date})
	}
	table.Render()
	return nil
}

func (a *App) updateSettings(login string) error {
	infoColor.Fprintln(a.out, "\nChange settings")
	password, err := a.prompt("New password: ")
	if err != nil {
		return err
	}
	birthDate, err := a.prompt("New birth date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	switch err := a.users.UpdateSettings(login, password, birthDate); {
	case err == nil:
		okColor.Fprintln(a.out, "Settings updated!")
	case errors.Is(err, domain.ErrUnknownLogin):
		failColor.Fprintln(a.out, "No user with that login exists.")
	default:
		failColor.Fprintf(a.out, "Could not update settings: %v\n", err)
	}
	return nil
}

func (a *App) renderMenu(title string, rows [][]string) {
	infoColor.Fprintf(a.out, "\n%s\n", title)
	table := tablewriter.NewWriter(a.out)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

func (a *App) prompt(label string) (string, error) {
	promptColor.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
