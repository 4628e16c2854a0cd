package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/tezosjh/recruit/internal/form"
	"github.com/tezosjh/recruit/internal/log"
)

// ErrInputClosed is returned when input ends before the application is sent.
var ErrInputClosed = errors.New("input closed before the application was submitted")

// FallbackRunner drives the form line by line for non-TTY environments,
// e.g. when answers are piped in. It shares the state machine with the TUI.
type FallbackRunner struct {
	model *Model
	in    *bufio.Scanner
	out   io.Writer
	sleep func(time.Duration)

	prompt *color.Color
	answer *color.Color
	text   *color.Color
	dim    *color.Color
	warn   *color.Color
	alert  *color.Color
}

// NewFallbackRunner creates a FallbackRunner reading answers from in.
func NewFallbackRunner(m *Model, in io.Reader, out io.Writer) *FallbackRunner {
	return &FallbackRunner{
		model:  m,
		in:     bufio.NewScanner(in),
		out:    out,
		sleep:  time.Sleep,
		prompt: color.New(color.FgBlue, color.Bold),
		answer: color.New(color.FgWhite),
		text:   color.New(color.FgGreen),
		dim:    color.New(color.Faint),
		warn:   color.New(color.FgYellow),
		alert:  color.New(color.FgRed, color.Bold),
	}
}

// Run asks every question, submits, and offers a new application after
// each success. It returns nil when the applicant declines another round,
// ErrInputClosed if input ends mid-application.
func (f *FallbackRunner) Run(ctx context.Context) error {
	f.banner()
	f.model.RecordEvent(log.EventSessionStarted)

	asked := -1
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s := f.model.Session
		if s.Phase() == form.PhaseComplete {
			again, err := f.complete()
			if err != nil || !again {
				return err
			}
			f.apply(form.Reset{})
			f.model.RecordEvent(log.EventSessionReset)
			asked = -1
			continue
		}

		if asked != s.Position() {
			f.ask()
			asked = s.Position()
		}

		line, ok := f.readLine("~ ")
		if !ok {
			return ErrInputClosed
		}

		eff, err := f.apply(form.Commit{Input: line})
		switch {
		case errors.Is(err, form.ErrEmptyInput):
			continue
		case errors.Is(err, form.ErrInvalidSelection):
			f.showAlert(SelectionAlert(err))
			continue
		case err != nil:
			return err
		}

		f.run(ctx, eff)
	}
}

// run carries out effects until the machine settles.
func (f *FallbackRunner) run(ctx context.Context, eff form.Effect) {
	for eff != form.EffectNone {
		switch eff {
		case form.EffectScheduleAdvance:
			f.warn.Fprintln(f.out, "Processing...")
			f.sleep(f.model.Cfg.Form.AdvanceDelay)
			eff, _ = f.apply(form.AdvanceElapsed{})

		case form.EffectSubmit:
			f.warn.Fprintln(f.out, "Submitting to database...")
			err := f.model.Submitter.Submit(ctx, f.model.Session.Answers())
			if err != nil {
				eff, _ = f.apply(form.SubmitFailed{Err: err})
				f.showAlert(f.model.SubmissionAlert(err))
				// Re-ask the last question.
				f.ask()
				continue
			}
			eff, _ = f.apply(form.SubmitSucceeded{})
		}
	}
}

func (f *FallbackRunner) apply(ev form.Event) (form.Effect, error) {
	eff, err := f.model.Session.Apply(ev)
	f.model.LogTransition(ev, eff, err)
	return eff, err
}

func (f *FallbackRunner) banner() {
	b := f.model.Cfg.Branding
	f.dim.Fprintln(f.out, b.WindowTitle)
	f.text.Fprintln(f.out, b.Banner)
	f.text.Fprintln(f.out, b.Welcome)
	fmt.Fprintln(f.out)
}

func (f *FallbackRunner) ask() {
	s := f.model.Session
	q := s.Current()

	fmt.Fprintln(f.out)
	f.dim.Fprintf(f.out, "Question %d of %d\n", s.Position()+1, s.Total())
	f.prompt.Fprintf(f.out, "$ %s\n", q.Text)
	if q.Hint != "" {
		f.dim.Fprintf(f.out, "  %s\n", q.Hint)
	}
	if q.Kind == form.KindTeams {
		for i, opt := range q.Options {
			f.dim.Fprintf(f.out, "  %d. %s\n", i+1, opt)
		}
	}
	f.dim.Fprintf(f.out, "  (%s)\n", q.Placeholder)
}

func (f *FallbackRunner) complete() (bool, error) {
	b := f.model.Cfg.Branding
	fmt.Fprintln(f.out)
	f.text.Fprintln(f.out, "Application Submitted Successfully!")
	f.answer.Fprintln(f.out, b.Completion)
	f.prompt.Fprintln(f.out, b.Motto)
	fmt.Fprintln(f.out)

	line, ok := f.readLine("Submit another application? [y/N] ")
	if !ok {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (f *FallbackRunner) showAlert(a *Alert) {
	f.alert.Fprintf(f.out, "! %s: %s\n", a.Title, a.Message)
}

func (f *FallbackRunner) readLine(prompt string) (string, bool) {
	f.text.Fprint(f.out, prompt)
	if !f.in.Scan() {
		fmt.Fprintln(f.out)
		return "", false
	}
	return f.in.Text(), true
}
