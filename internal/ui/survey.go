package ui

import "github.com/AlecAivazis/survey/v2"

// PinIconOption returns a survey option that replaces the question icon
// with "-" so masked PIN prompts match the rest of the terminal UI.
func PinIconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}
