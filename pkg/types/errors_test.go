package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MessageIncludesSubjectAndCause(t *testing.T) {
	cause := errors.New("boom")
	err := Corrupt("Groups/abc", "missing required attribute", cause)

	assert.Equal(t, "missing required attribute (Groups/abc): boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestError_NilReceiverPrintsPlaceholder(t *testing.T) {
	var err *Error
	assert.Equal(t, "<nil>", err.Error())
}

func TestNotFound_ValidationTypeMismatch_SetSubjectAndKind(t *testing.T) {
	nf := NotFound("Objects/xyz")
	assert.Equal(t, ErrKindNotFound, nf.Kind)
	assert.Equal(t, "Objects/xyz", nf.Subject)

	v := Validation("name", "must not be empty")
	assert.Equal(t, ErrKindValidation, v.Kind)
	assert.Contains(t, v.Error(), "must not be empty")

	tm := TypeMismatch("uid", "expected ObjectBase")
	assert.Equal(t, ErrKindTypeMismatch, tm.Kind)
}

func TestAggregateValidation_JoinsMessagesAndUnwraps(t *testing.T) {
	a := &AggregateValidation{Errors: []*Error{
		Validation("name", "required"),
		Validation("units", "unknown"),
	}}

	assert.Contains(t, a.Error(), "2 validation errors")
	assert.Contains(t, a.Error(), "required")
	assert.Contains(t, a.Error(), "unknown")
	assert.Len(t, a.Unwrap(), 2)
}

func TestAggregateValidation_EmptyHasPlaceholderMessage(t *testing.T) {
	a := &AggregateValidation{}
	assert.Equal(t, "multiple validation errors", a.Error())
}

func TestErrKind_String(t *testing.T) {
	assert.Equal(t, "NotFound", ErrKindNotFound.String())
	assert.Equal(t, "RepackFailed", ErrKindRepackFailed.String())
	assert.Contains(t, ErrKind(99).String(), "ErrKind(99)")
}

func TestSentinels_MatchViaErrorsIs(t *testing.T) {
	assert.ErrorIs(t, ErrClosed, ErrClosed)
	assert.ErrorIs(t, ErrReadOnly, ErrReadOnly)
	assert.NotErrorIs(t, ErrClosed, ErrReadOnly)
}
