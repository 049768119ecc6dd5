// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package survey

import (
	"strings"

	"github.com/nlp4re/orkgforms/pkg/types"
)

// FindByCode returns the question whose text starts with the given NLP4RE
// question code, e.g. code "I.1" matches "I.1. What RE task…".
func FindByCode(questions []types.Question, code string) (types.Question, bool) {
	prefix := code + "."
	for _, q := range questions {
		if strings.HasPrefix(q.Text, prefix) {
			return q, true
		}
	}
	return types.Question{}, false
}

// Answers collects every meaningful answer a question carries: the free
// text of Text questions, the selected option labels of choice questions
// (comma-joined selections are split apart), and filled companion inputs
// recorded in the option details.
func Answers(q types.Question) []string {
	var answers []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || s == "None" {
			return
		}
		for _, a := range answers {
			if strings.EqualFold(a, s) {
				return
			}
		}
		answers = append(answers, s)
	}

	if q.Answer != "" {
		add(q.Answer)
	}

	for _, sel := range q.SelectedAnswers {
		if strings.Contains(sel, ",") {
			for _, part := range strings.Split(sel, ",") {
				add(part)
			}
			continue
		}
		add(sel)
	}

	for _, opt := range q.Options {
		if !opt.Selected {
			continue
		}
		add(opt.Label)
		// Companion text inputs store the typed answer in the field
		// value; plain button states carry no information.
		if v := strings.TrimSpace(opt.FieldValue); v != "" && v != "Yes" && v != "Off" {
			add(v)
		}
	}

	return answers
}

// SplitCommaSeparated expands answers that pack several values into one
// comma-joined string, for catalog properties declared comma-separated.
func SplitCommaSeparated(answers []string) []string {
	var out []string
	for _, a := range answers {
		if !strings.Contains(a, ",") {
			out = append(out, a)
			continue
		}
		for _, part := range strings.Split(a, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
