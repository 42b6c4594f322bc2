package promptutils

import (
	"errors"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
)

func TestHandlePromptError(t *testing.T) {
	p := &RealPrompter{}

	tests := []struct {
		name    string
		err     error
		want    error
		wantMsg string
	}{
		{name: "no error", err: nil},
		{name: "ctrl-c", err: promptui.ErrInterrupt, want: ErrInterrupted},
		{name: "ctrl-d", err: promptui.ErrEOF, want: ErrInterrupted},
		{name: "other", err: errors.New("tty gone"), wantMsg: "failed to select an option: tty gone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.HandlePromptError(tt.err)
			switch {
			case tt.want != nil:
				assert.ErrorIs(t, err, tt.want)
			case tt.wantMsg != "":
				assert.EqualError(t, err, tt.wantMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPrompt(t *testing.T) {
	assert.IsType(t, &RealPrompter{}, NewPrompt())
}
