package wizard

import (
	"context"
	"testing"

	"github.com/interpretive-systems/compgen/internal/prompt"
)

// reply is one scripted answer; choose marks a ChooseOne answer.
type reply struct {
	choose bool
	value  string
	err    error
}

func pick(label string) reply { return reply{choose: true, value: label} }
func pickErr(err error) reply { return reply{choose: true, err: err} }
func typeIn(text string) reply { return reply{value: text} }
func inputErr(err error) reply { return reply{err: err} }
func escChoice() reply { return pickErr(prompt.ErrCancelled) }
func escInput() reply { return inputErr(prompt.ErrCancelled) }

// call records what a prompt was shown with.
type call struct {
	placeholder string
	items       []prompt.Item
	def         string
	validate    prompt.Validator
}

type scripted struct {
	t       *testing.T
	replies []reply
	calls   []call
}

func script(t *testing.T, replies ...reply) *scripted {
	return &scripted{t: t, replies: replies}
}

func (s *scripted) next(choose bool) reply {
	s.t.Helper()
	if len(s.replies) == 0 {
		s.t.Fatalf("unexpected prompt #%d: script exhausted", len(s.calls))
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	if r.choose != choose {
		s.t.Fatalf("prompt #%d: script expected choose=%v", len(s.calls), r.choose)
	}
	return r
}

func (s *scripted) ChooseOne(_ context.Context, items []prompt.Item, placeholder string) (string, error) {
	s.calls = append(s.calls, call{placeholder: placeholder, items: items})
	r := s.next(true)
	if r.err == nil {
		found := false
		for _, it := range items {
			found = found || it.Label == r.value
		}
		if !found {
			s.t.Fatalf("scripted choice %q not offered in %q", r.value, placeholder)
		}
	}
	return r.value, r.err
}

func (s *scripted) InputText(_ context.Context, placeholder, def string, validate prompt.Validator) (string, error) {
	s.calls = append(s.calls, call{placeholder: placeholder, def: def, validate: validate})
	r := s.next(false)
	if r.err == nil && validate != nil {
		if err := validate(r.value); err != nil {
			s.t.Fatalf("scripted input %q would be rejected: %v", r.value, err)
		}
	}
	return r.value, r.err
}

func (s *scripted) done() {
	s.t.Helper()
	if len(s.replies) != 0 {
		s.t.Fatalf("%d scripted replies left unused", len(s.replies))
	}
}

func (s *scripted) last() call { return s.calls[len(s.calls)-1] }

// memFolders is an in-memory Folders.
type memFolders struct {
	list []string
	err  error
}

func (f *memFolders) List() []string { return append([]string(nil), f.list...) }

func (f *memFolders) Add(folder string) error {
	if f.err != nil {
		return f.err
	}
	f.list = append(f.list, folder)
	return nil
}
