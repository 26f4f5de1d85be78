package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives.
//
// These sit at every trust boundary, so the invariants "wrapped domain errors
// preserve the original code" and "errors.Is matches by code" get unit tests.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "municipality not found"}
		s.Equal("municipality not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeNotFound}
		s.Equal("not_found", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	s.Run("returns wrapped error", func() {
		inner := errors.New("decode failed")
		err := &Error{Code: CodeInternal, Message: "service error", Err: inner}
		s.Equal(inner, errors.Unwrap(err))
	})

	s.Run("returns nil when no wrapped error", func() {
		err := &Error{Code: CodeNotFound, Message: "not found"}
		s.Nil(errors.Unwrap(err))
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeNotFound, Message: "municipality not found"}
		err2 := &Error{Code: CodeNotFound, Message: "code not found"}
		s.True(errors.Is(err1, err2))
	})

	s.Run("does not match different codes", func() {
		err1 := &Error{Code: CodeNotFound}
		err2 := &Error{Code: CodeBadRequest}
		s.False(errors.Is(err1, err2))
	})

	s.Run("does not match plain errors", func() {
		err := &Error{Code: CodeNotFound}
		s.False(err.Is(errors.New("not found")))
	})
}

func (s *DomainErrorsSuite) TestWrapPreservesCode() {
	inner := New(CodeValidation, "surname is required")
	wrapped := Wrap(inner, CodeInternal, "generate failed")

	s.True(HasCode(wrapped, CodeValidation), "wrapping must keep the original domain code")
	s.Equal("generate failed", wrapped.Error())
}

func (s *DomainErrorsSuite) TestHasCode() {
	s.Run("finds code through chains", func() {
		err := Wrap(New(CodeBadRequest, "bad date"), CodeInternal, "outer")
		s.True(HasCode(err, CodeBadRequest))
	})

	s.Run("false for plain errors", func() {
		s.False(HasCode(errors.New("boom"), CodeInternal))
	})

	s.Run("false for nil", func() {
		s.False(HasCode(nil, CodeInternal))
	})
}
