package ui

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"victorine/internal/app"
	"victorine/internal/domain"
)

// editorMenu is the admin-only editor for the question bank. Every change is
// saved immediately, so a cached bank is invalidated on each write.
func (a *App) editorMenu() error {
	for {
		a.renderMenu("Question bank", [][]string{
			{"1", "Add questions"},
			{"2", "Delete a category"},
			{"3", "Edit a question"},
			{"4", "View the bank"},
			{"5", "Back"},
		})

		choice, err := a.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := a.addQuestions(); err != nil {
				return err
			}
		case "2":
			if err := a.deleteCategory(); err != nil {
				return err
			}
		case "3":
			if err := a.editQuestion(); err != nil {
				return err
			}
		case "4":
			a.viewBank()
		case "5":
			return nil
		default:
			failColor.Fprintln(a.out, "Invalid choice. Try again.")
		}
	}
}

func (a *App) addQuestions() error {
	category, err := a.prompt("Category for the new questions: ")
	if err != nil {
		return err
	}

	for {
		text, err := a.prompt("Question: ")
		if err != nil {
			return err
		}
		optionsRaw, err := a.prompt("Options (comma-separated): ")
		if err != nil {
			return err
		}
		answersRaw, err := a.prompt("Correct answers (comma-separated): ")
		if err != nil {
			return err
		}

		questions, loadErr := a.bank.Load()
		if loadErr != nil {
			failColor.Fprintf(a.out, "Could not load the bank: %v\n", loadErr)
			return nil
		}
		questions = append(questions, domain.Question{
			Category:       category,
			Text:           text,
			Options:        splitCSV(optionsRaw),
			CorrectAnswers: splitCSV(answersRaw),
		})
		if err := a.bank.Save(questions); err != nil {
			failColor.Fprintf(a.out, "Could not save the bank: %v\n", err)
			return nil
		}
		okColor.Fprintln(a.out, "Question added.")

		again, err := a.prompt("Add another question? (y/n): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(again, "y") {
			return nil
		}
	}
}

func (a *App) deleteCategory() error {
	questions, categories, ok := a.loadBankWithCategories()
	if !ok {
		return nil
	}

	category, ok, err := a.pickCategory("Pick a category to delete", categories)
	if err != nil || !ok {
		return err
	}

	kept := questions[:0:0]
	for _, q := range questions {
		if q.Category != category {
			kept = append(kept, q)
		}
	}
	if err := a.bank.Save(kept); err != nil {
		failColor.Fprintf(a.out, "Could not save the bank: %v\n", err)
		return nil
	}
	okColor.Fprintf(a.out, "All questions in category %s were deleted.\n", category)
	return nil
}

func (a *App) editQuestion() error {
	questions, categories, ok := a.loadBankWithCategories()
	if !ok {
		return nil
	}

	category, ok, err := a.pickCategory("Pick a category to edit", categories)
	if err != nil || !ok {
		return err
	}

	// Indices into the full bank slice, so the edit lands on the right record.
	var indices []int
	for i, q := range questions {
		if q.Category == category {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		failColor.Fprintln(a.out, "No questions in that category.")
		return nil
	}

	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"#", "Question"})
	for i, idx := range indices {
		table.Append([]string{strconv.Itoa(i + 1), questions[idx].Text})
	}
	table.Render()

	choice, err := a.prompt("Pick a question to edit: ")
	if err != nil {
		return err
	}
	pick, convErr := strconv.Atoi(choice)
	if convErr != nil || pick < 1 || pick > len(indices) {
		failColor.Fprintln(a.out, "Invalid question choice.")
		return nil
	}
	target := indices[pick-1]

	infoColor.Fprintf(a.out, "Editing question: %s\n", questions[target].Text)
	text, err := a.prompt("New question (empty keeps the current one): ")
	if err != nil {
		return err
	}
	optionsRaw, err := a.prompt("New options (comma-separated, empty keeps them): ")
	if err != nil {
		return err
	}
	answersRaw, err := a.prompt("New correct answers (comma-separated, empty keeps them): ")
	if err != nil {
		return err
	}

	if text != "" {
		questions[target].Text = text
	}
	if optionsRaw != "" {
		questions[target].Options = splitCSV(optionsRaw)
	}
	if answersRaw != "" {
		questions[target].CorrectAnswers = splitCSV(answersRaw)
	}

	if err := a.bank.Save(questions); err != nil {
		failColor.Fprintf(a.out, "Could not save the bank: %v\n", err)
		return nil
	}
	okColor.Fprintln(a.out, "Question updated.")
	return nil
}

func (a *App) viewBank() {
	questions, err := a.bank.Load()
	if err != nil {
		failColor.Fprintf(a.out, "Could not load the bank: %v\n", err)
		return
	}
	if len(questions) == 0 {
		infoColor.Fprintln(a.out, "No questions to view.")
		return
	}

	for _, category := range app.Categories(questions) {
		infoColor.Fprintf(a.out, "\nCategory: %s\n", category)
		table := tablewriter.NewWriter(a.out)
		table.SetHeader([]string{"#", "Question", "Options", "Correct answers"})
		row := 0
		for _, q := range questions {
			if q.Category != category {
				continue
			}
			row++
			table.Append([]string{
				strconv.Itoa(row),
				q.Text,
				strings.Join(q.Options, ", "),
				strings.Join(q.CorrectAnswers, ", "),
			})
		}
		table.Render()
	}
}

func (a *App) loadBankWithCategories() ([]domain.Question, []string, bool) {
	questions, err := a.bank.Load()
	if err != nil {
		failColor.Fprintf(a.out, "Could not load the bank: %v\n", err)
		return nil, nil, false
	}
	categories := app.Categories(questions)
	if len(categories) == 0 {
		failColor.Fprintln(a.out, "No categories available.")
		return nil, nil, false
	}
	return questions, categories, true
}

func (a *App) pickCategory(title string, categories []string) (string, bool, error) {
	infoColor.Fprintf(a.out, "\n%s\n", title)
	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"#", "Category"})
	for i, category := range categories {
		table.Append([]string{strconv.Itoa(i + 1), category})
	}
	table.Render()

	choice, err := a.prompt("Choose a category: ")
	if err != nil {
		return "", false, err
	}
	pick, convErr := strconv.Atoi(choice)
	if convErr != nil || pick < 1 || pick > len(categories) {
		failColor.Fprintln(a.out, "Invalid category choice.")
		return "", false, nil
	}
	return categories[pick-1], true, nil
}

func splitCSV(raw string) []string {
	var parts []string
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			parts = append(parts, piece)
		}
	}
	return parts
}
