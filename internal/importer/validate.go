package importer

import (
	"fmt"

	"github.com/alexanderramin/sprintsum/internal/domain"
)

// ValidateBoardSchema checks the snapshot for errors before conversion.
// Returns a slice of all validation errors found. Missing card fields are
// reported as *domain.RecordError. Filtered cards are not checked since
// they never reach the report.
func ValidateBoardSchema(schema *BoardSchema) []error {
	var errs []error

	for i, s := range schema.Sections {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("sections[%d].name is required", i))
		}
		for j, c := range s.Cards {
			if c.Filtered {
				continue
			}
			errs = append(errs, validateCard(s.Name, j, c)...)
		}
	}

	return errs
}

func validateCard(section string, index int, c CardImport) []error {
	var errs []error

	if c.Title == nil {
		errs = append(errs, &domain.RecordError{Group: section, Index: index, Field: "title"})
	}
	if c.OriginalEstimate == nil {
		errs = append(errs, &domain.RecordError{Group: section, Index: index, Field: "original_estimate"})
	}
	if c.RemainingEstimate == nil {
		errs = append(errs, &domain.RecordError{Group: section, Index: index, Field: "remaining_estimate"})
	}

	return errs
}
