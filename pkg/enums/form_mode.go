package enums

import "fmt"

// FormMode distinguishes the add flow from the edit flow of a product form.
// Removal splices in add mode and soft-deletes in edit mode.
type FormMode string

const (
	FormModeAdd  FormMode = "add"
	FormModeEdit FormMode = "edit"
)

var validFormModes = []FormMode{
	FormModeAdd,
	FormModeEdit,
}

// String implements fmt.Stringer.
func (m FormMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known FormMode.
func (m FormMode) IsValid() bool {
	for _, candidate := range validFormModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseFormMode converts raw input into a FormMode.
func ParseFormMode(value string) (FormMode, error) {
	for _, candidate := range validFormModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid form mode %q", value)
}
