package promptutils

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

type Prompter interface {
	PromptForSelection(label string, items []string) (string, error)
}

type RealPrompter struct{}

var ErrInterrupted = errors.New("operation interrupted")

func (p *RealPrompter) HandlePromptError(err error) error {
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return ErrInterrupted
		}
		return fmt.Errorf("failed to select an option: %w", err)
	}
	return nil
}

func (p *RealPrompter) PromptForSelection(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  len(items),
	}
	_, selected, err := prompt.Run()

	if err := p.HandlePromptError(err); err != nil {
		return "", err
	}

	return selected, nil
}

func NewPrompt() Prompter {
	return &RealPrompter{}
}
