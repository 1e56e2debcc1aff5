// Package review drafts human review notes for ambiguous crosswalk rows
// using the Anthropic API. Intersects-with rows carry the least information
// for a downstream reviewer, so this is where a drafted explanation of the
// overlap saves the most time. Entirely optional: nothing else in the tool
// depends on it.
package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/untoldecay/CrosswalkForge/internal/types"
)

// ErrNoAPIKey is returned when review is requested without credentials.
var ErrNoAPIKey = errors.New("review requires CWF_ANTHROPIC_API_KEY")

// Note is a drafted review annotation for one crosswalk row.
type Note struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Text   string `json:"text"`
}

// Reviewer drafts notes through the Anthropic API.
type Reviewer struct {
	client  anthropic.Client
	model   string
	maxRows int
}

// New returns a reviewer. maxRows caps how many rows a single run will send
// out; the rest are left for manual review.
func New(apiKey, model string, maxRows int) (*Reviewer, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return &Reviewer{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		maxRows: maxRows,
	}, nil
}

// Draft produces one note per intersects-with row, up to the configured cap.
func (r *Reviewer) Draft(ctx context.Context, rows []types.CrosswalkRow) ([]Note, error) {
	var notes []Note
	for _, row := range rows {
		if row.Kind != types.KindIntersectsWith {
			continue
		}
		if len(notes) >= r.maxRows {
			break
		}
		text, err := r.draftOne(ctx, row)
		if err != nil {
			return notes, fmt.Errorf("failed to draft note for %s: %w", row.Pair.Source, err)
		}
		notes = append(notes, Note{
			Source: row.Pair.Source,
			Target: row.Pair.Target,
			Text:   text,
		})
	}
	return notes, nil
}

func (r *Reviewer) draftOne(ctx context.Context, row types.CrosswalkRow) (string, error) {
	prompt := fmt.Sprintf(
		"Security control %s (SP 800-53 Rev 5) maps to %s (Rev 4) with relationship intersects-with. "+
			"The comparison workbook lists these changed elements:\n%s\n\nChange details:\n%s\n\n"+
			"In two sentences, explain for a compliance reviewer what overlaps and what a reviewer should verify.",
		row.Pair.Source, row.Pair.Target, row.Pair.Indicator, row.Pair.Detail)

	msg, err := r.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(r.model),
		MaxTokens: 300,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
