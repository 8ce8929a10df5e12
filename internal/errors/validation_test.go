package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("rows", "must be positive")
	ve.AddFieldError("cols", "must be positive")
	ve.AddFieldErrorf("max_room_size", "must be at least %d", 3)

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: cols: must be positive; max_room_size: must be at least 3; rows: must be positive",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("rows", "is required").
		Fieldf("room_count", "must be between %d and %d", 1, 64).
		RequiredField("grid").
		InvalidField("margin_factor", "must be positive")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "dungeon_1", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("id", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRangeAndMin() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("room_count", 0, 1, 64, vb)
	errors.ValidateRange("hub_size", 3, 0, 9, vb)
	errors.ValidateMin("rows", 0, 1, vb)
	errors.ValidateMin("cols", 20, 1, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["room_count"][0], "must be between 1 and 64")
	s.Assert().Contains(validationErrors["rows"][0], "must be at least 1")
	s.Assert().NotContains(validationErrors, "hub_size")
	s.Assert().NotContains(validationErrors, "cols")
}
