package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

// RegisterValidators adds the sortcolumn and entrystatus tags used by the request DTOs.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("sortcolumn", func(fl validator.FieldLevel) bool {
		return domain.SortColumn(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("entrystatus", func(fl validator.FieldLevel) bool {
		return domain.EntryStatus(fl.Field().String()).Valid()
	})
}
