package session

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/pkg/errors"
)

// DefaultSystemPrompt is the behavioral directive pinned at index 0 of every
// adventure transcript.
const DefaultSystemPrompt = "You are an educational choose-your-own-adventure guide. " +
	"You MUST always stop after presenting choices to wait for user input. " +
	"Never continue the story without user selection."

// SubjectSystemPromptTemplate narrows the adventure to a single subject.
const SubjectSystemPromptTemplate = DefaultSystemPrompt +
	" Every adventure you run teaches {{ .Subject | trim }}."

// RenderSystemPrompt renders a system prompt template with the given
// parameters. Sprig functions are available in the template.
func RenderSystemPrompt(tmpl string, params map[string]interface{}) (string, error) {
	t, err := template.New("system-prompt").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
	if err != nil {
		return "", errors.Wrap(err, "could not parse system prompt template")
	}

	var sb strings.Builder
	err = t.Execute(&sb, params)
	if err != nil {
		return "", errors.Wrap(err, "could not render system prompt template")
	}

	return sb.String(), nil
}

// SystemPromptForSubject returns the default directive, scoped to a subject
// when one is given.
func SystemPromptForSubject(subject string) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return DefaultSystemPrompt, nil
	}
	return RenderSystemPrompt(SubjectSystemPromptTemplate, map[string]interface{}{
		"Subject": subject,
	})
}
