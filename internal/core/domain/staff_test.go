package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 5, 12, 9, 30, 0, 0, time.UTC)

func TestNewStaffMember_Defaults(t *testing.T) {
	s, err := NewStaffMember("Anna", "Undersköterska", 3, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "Anna", s.Name)
	assert.Equal(t, "Undersköterska", s.Role)
	assert.Equal(t, 3, s.Experience)
	assert.Zero(t, s.Rating)
	assert.Zero(t, s.RatingCount)
	assert.NotNil(t, s.Ratings)
	assert.Empty(t, s.Ratings)
	assert.Equal(t, fixedNow, s.CreatedAt)
}

func TestNewStaffMember_RequiredFields(t *testing.T) {
	cases := []struct {
		name, role string
		experience int
		want       string
	}{
		{"", "", 0, "name and role are required"},
		{"  ", "Sjuksköterska", 0, "name is required"},
		{"Erik", "", 0, "role is required"},
		{"Erik", "Vårdbiträde", -1, "experience must be 0 or greater"},
	}

	for _, tc := range cases {
		_, err := NewStaffMember(tc.name, tc.role, tc.experience, fixedNow)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, tc.want, ve.Reason)
	}
}

func TestAddRating_AnnaScenario(t *testing.T) {
	s, err := NewStaffMember("Anna", "Undersköterska", 3, fixedNow)
	require.NoError(t, err)

	for _, r := range []int{5, 3, 4} {
		require.NoError(t, s.AddRating(r, fixedNow))
	}

	assert.Equal(t, 4.0, s.Rating)
	assert.Equal(t, 3, s.RatingCount)
	assert.Equal(t, []int{5, 3, 4}, s.Ratings)
}

func TestAddRating_MeanAndCountAfterEveryAppend(t *testing.T) {
	seq := []int{1, 5, 5, 2, 3, 4, 4, 1, 5, 2}
	s := &StaffMember{Ratings: []int{}}

	sum := 0
	for i, r := range seq {
		require.NoError(t, s.AddRating(r, fixedNow))
		sum += r

		assert.Equal(t, i+1, s.RatingCount)
		assert.InDelta(t, float64(sum)/float64(i+1), s.Rating, 1e-9)
	}
}

func TestAddRating_RejectsOutOfRangeWithoutMutation(t *testing.T) {
	s := &StaffMember{Ratings: []int{4}, Rating: 4, RatingCount: 1}

	for _, r := range []int{0, 6, -3, 100} {
		err := s.AddRating(r, fixedNow)
		assert.ErrorIs(t, err, ErrValidation)
	}

	assert.Equal(t, []int{4}, s.Ratings)
	assert.Equal(t, 4.0, s.Rating)
	assert.Equal(t, 1, s.RatingCount)
	assert.True(t, s.UpdatedAt.IsZero())
}

func TestRatingFromJSON(t *testing.T) {
	for _, in := range []float64{1, 2, 3, 4, 5} {
		r, err := RatingFromJSON(in)
		assert.NoError(t, err)
		assert.Equal(t, int(in), r)
	}

	for _, in := range []any{4.5, 0.0, 6.0, "5", nil, true, []any{5.0}} {
		_, err := RatingFromJSON(in)
		assert.ErrorIs(t, err, ErrValidation, "%v", in)
	}
}

func TestExperienceFromJSON(t *testing.T) {
	accepted := map[any]int{nil: 0, 0.0: 0, 3.0: 3, 40.0: 40}
	for in, want := range accepted {
		got, err := ExperienceFromJSON(in)
		require.NoError(t, err, "%v", in)
		assert.Equal(t, want, got)
	}

	for _, in := range []any{2.5, -1.0, "3", true, []any{3.0}} {
		_, err := ExperienceFromJSON(in)
		require.Error(t, err, "%v", in)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "experience must be a whole number, 0 or greater", ve.Reason)
	}
}
