package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validAnswers = []string{
	"Ada Lovelace",
	"+91 98765 43210",
	"B.Tech CSE",
	"EN2024001",
	"2nd Year, 4th Semester",
	"1,3",
	"null",
}

// answerThrough commits and advances for every question before index stop.
func answerThrough(t *testing.T, s *Session, stop int) {
	t.Helper()
	for i := 0; i < stop; i++ {
		eff, err := s.Apply(Commit{Input: validAnswers[i]})
		require.NoError(t, err)
		require.Equal(t, EffectScheduleAdvance, eff)
		_, err = s.Apply(AdvanceElapsed{})
		require.NoError(t, err)
	}
}

func TestNewSessionStartsAtFirstQuestion(t *testing.T) {
	s := NewSession()
	assert.Equal(t, PhaseAsking, s.Phase())
	assert.Equal(t, 0, s.Position())
	assert.Equal(t, 7, s.Total())
	assert.Equal(t, FieldFullName, s.Current().ID)
	assert.Empty(t, s.Answers())
	assert.Empty(t, s.History())
}

func TestCommitStoresTrimmedValueAndAdvances(t *testing.T) {
	s := NewSession()

	eff, err := s.Apply(Commit{Input: "  Ada Lovelace \t"})
	require.NoError(t, err)
	assert.Equal(t, EffectScheduleAdvance, eff)
	assert.Equal(t, PhaseAdvancing, s.Phase())
	assert.Equal(t, 0, s.Position(), "position moves only after the delay")
	assert.Equal(t, "Ada Lovelace", s.Answers()[FieldFullName])

	eff, err = s.Apply(AdvanceElapsed{})
	require.NoError(t, err)
	assert.Equal(t, EffectNone, eff)
	assert.Equal(t, PhaseAsking, s.Phase())
	assert.Equal(t, 1, s.Position())
}

func TestCommitBlankIsNoop(t *testing.T) {
	for _, input := range []string{"", " ", "\t\n  "} {
		s := NewSession()
		eff, err := s.Apply(Commit{Input: input})
		assert.ErrorIs(t, err, ErrEmptyInput)
		assert.Equal(t, EffectNone, eff)
		assert.Equal(t, PhaseAsking, s.Phase())
		assert.Equal(t, 0, s.Position())
		assert.Empty(t, s.Answers())
	}
}

func TestEveryNonTeamQuestionStoresVerbatim(t *testing.T) {
	s := NewSession()
	for i, q := range Questions() {
		require.Equal(t, i, s.Position())

		input := " value " + q.ID + " "
		want := "value " + q.ID
		if q.Kind == KindTeams {
			input, want = "2", "Graphics Team"
		}
		_, err := s.Apply(Commit{Input: input})
		require.NoError(t, err)
		assert.Equal(t, want, s.Answers()[q.ID])

		eff, err := s.Apply(AdvanceElapsed{})
		require.NoError(t, err)
		if i == s.Total()-1 {
			assert.Equal(t, EffectSubmit, eff)
			assert.Equal(t, PhaseSubmitting, s.Phase())
		} else {
			assert.Equal(t, EffectNone, eff)
			assert.Equal(t, i+1, s.Position())
		}
	}
}

func TestTeamsCommit(t *testing.T) {
	s := NewSession()
	answerThrough(t, s, 5)
	require.Equal(t, FieldTeams, s.Current().ID)

	_, err := s.Apply(Commit{Input: "1,3,9,0"})
	require.NoError(t, err)
	assert.Equal(t, "Content Team, Tech Team", s.Answers()[FieldTeams])
}

func TestTeamsCommitWithoutValidPick(t *testing.T) {
	s := NewSession()
	answerThrough(t, s, 5)
	before := s.Answers()

	eff, err := s.Apply(Commit{Input: "8,0"})
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.Equal(t, "Please select at least one valid team (1-7)", err.Error())
	assert.Equal(t, EffectNone, eff)
	assert.Equal(t, PhaseAsking, s.Phase())
	assert.Equal(t, 5, s.Position())
	assert.Equal(t, before, s.Answers())
}

func TestLastAdvanceRequestsSubmit(t *testing.T) {
	s := NewSession()
	answerThrough(t, s, 6)

	_, err := s.Apply(Commit{Input: "null"})
	require.NoError(t, err)
	eff, err := s.Apply(AdvanceElapsed{})
	require.NoError(t, err)
	assert.Equal(t, EffectSubmit, eff)
	assert.Equal(t, PhaseSubmitting, s.Phase())
	assert.Equal(t, 6, s.Position())
	assert.Len(t, s.Answers(), 7)
	assert.Equal(t, "null", s.Answers()[FieldPortfolio])
}

func TestSubmitFailedHoldsAtLastQuestion(t *testing.T) {
	s := NewSession()
	answerThrough(t, s, 7)
	require.Equal(t, PhaseSubmitting, s.Phase())

	cause := errors.New("quota exceeded")
	_, err := s.Apply(SubmitFailed{Err: cause})
	require.NoError(t, err)
	assert.Equal(t, PhaseAsking, s.Phase())
	assert.True(t, s.IsLast())
	assert.Equal(t, cause, s.LastError())

	// Re-committing the last answer resubmits.
	_, err = s.Apply(Commit{Input: "https://example.com/portfolio"})
	require.NoError(t, err)
	eff, err := s.Apply(AdvanceElapsed{})
	require.NoError(t, err)
	assert.Equal(t, EffectSubmit, eff)
	assert.Nil(t, s.LastError())
	assert.Equal(t, "https://example.com/portfolio", s.Answers()[FieldPortfolio])
}

func TestSubmitSucceededThenReset(t *testing.T) {
	s := NewSession()
	answerThrough(t, s, 7)

	_, err := s.Apply(SubmitSucceeded{})
	require.NoError(t, err)
	assert.Equal(t, PhaseComplete, s.Phase())

	_, err = s.Apply(Reset{})
	require.NoError(t, err)
	assert.Equal(t, PhaseAsking, s.Phase())
	assert.Equal(t, 0, s.Position())
	assert.Empty(t, s.Answers())

	// A second run behaves exactly like the first.
	answerThrough(t, s, 7)
	assert.Equal(t, PhaseSubmitting, s.Phase())
	assert.Len(t, s.Answers(), 7)
}

func TestHistoryListsAnsweredQuestions(t *testing.T) {
	s := NewSession()
	answerThrough(t, s, 3)

	h := s.History()
	require.Len(t, h, 3)
	assert.Equal(t, FieldFullName, h[0].Question.ID)
	assert.Equal(t, "Ada Lovelace", h[0].Answer)
	assert.Equal(t, FieldCourse, h[2].Question.ID)
	assert.Equal(t, "B.Tech CSE", h[2].Answer)
}

func TestOutOfPhaseEventsAreRejected(t *testing.T) {
	s := NewSession()

	for _, ev := range []Event{AdvanceElapsed{}, SubmitSucceeded{}, SubmitFailed{}, Reset{}} {
		_, err := s.Apply(ev)
		assert.ErrorIs(t, err, ErrBadTransition, "%T", ev)
	}

	_, err := s.Apply(Commit{Input: "Ada"})
	require.NoError(t, err)
	_, err = s.Apply(Commit{Input: "again"})
	assert.ErrorIs(t, err, ErrBadTransition, "no commits while advancing")
	assert.Equal(t, "Ada", s.Answers()[FieldFullName])
}

func TestAnswersReturnsCopy(t *testing.T) {
	s := NewSession()
	_, err := s.Apply(Commit{Input: "Ada"})
	require.NoError(t, err)

	a := s.Answers()
	a[FieldFullName] = "mutated"
	assert.Equal(t, "Ada", s.Answers()[FieldFullName])
}

func TestPhaseBusy(t *testing.T) {
	assert.False(t, PhaseAsking.Busy())
	assert.True(t, PhaseAdvancing.Busy())
	assert.True(t, PhaseSubmitting.Busy())
	assert.False(t, PhaseComplete.Busy())
}
