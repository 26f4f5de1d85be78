package comuni

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DirectorySuite tests cadastral code and municipality name lookups.
type DirectorySuite struct {
	suite.Suite
	dir *Directory
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectorySuite))
}

func (s *DirectorySuite) SetupSuite() {
	s.dir = New()
}

func (s *DirectorySuite) TestLookup() {
	s.Run("known code", func() {
		m, err := s.dir.Lookup("H501")
		s.NoError(err)
		s.Equal("ROMA", m.Name)
		s.Equal("RM", m.Province)
	})

	s.Run("case and whitespace insensitive", func() {
		m, err := s.dir.Lookup(" h501 ")
		s.NoError(err)
		s.Equal("ROMA", m.Name)
	})

	s.Run("unknown code", func() {
		_, err := s.dir.Lookup("X999")
		s.ErrorIs(err, ErrNotFound)
	})

	s.Run("foreign country code", func() {
		m, err := s.dir.Lookup("Z110")
		s.NoError(err)
		s.Equal("EE", m.Province)
	})
}

func (s *DirectorySuite) TestLookupPlace() {
	s.Run("hit", func() {
		name, province, ok := s.dir.LookupPlace("F205")
		s.True(ok)
		s.Equal("MILANO", name)
		s.Equal("MI", province)
	})

	s.Run("miss", func() {
		_, _, ok := s.dir.LookupPlace("X999")
		s.False(ok)
	})
}

func (s *DirectorySuite) TestReverseLookup() {
	s.Run("exact name", func() {
		code, err := s.dir.ReverseLookup("ROMA")
		s.NoError(err)
		s.Equal("H501", code)
	})

	s.Run("case insensitive", func() {
		code, err := s.dir.ReverseLookup("roma")
		s.NoError(err)
		s.Equal("H501", code)
	})

	s.Run("unknown name", func() {
		_, err := s.dir.ReverseLookup("ATLANTIS")
		s.ErrorIs(err, ErrNotFound)
	})

	s.Run("partial name does not match", func() {
		_, err := s.dir.ReverseLookup("ROM")
		s.ErrorIs(err, ErrNotFound)
	})
}

func (s *DirectorySuite) TestSearch() {
	s.Run("substring match sorted by name", func() {
		results := s.dir.Search("roma")
		s.NotEmpty(results)
		for _, m := range results {
			s.Contains(m.Name, "ROMA")
		}
		s.True(sort.SliceIsSorted(results, func(i, j int) bool {
			return results[i].Name < results[j].Name
		}))
	})

	s.Run("empty query returns nothing", func() {
		s.Nil(s.dir.Search(""))
		s.Nil(s.dir.Search("   "))
	})

	s.Run("no match returns empty", func() {
		s.Empty(s.dir.Search("ATLANTIS"))
	})
}

func TestIsForeign(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"Z110", true},
		{"z999", true},
		{"H501", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsForeign(tc.code); got != tc.want {
			t.Errorf("IsForeign(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
