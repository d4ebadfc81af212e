package assets

import (
	"errors"
	"testing"
)

func TestValidatePartName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "part name", input: "slideMaster", wantErr: nil},
		{name: "hyphen", input: "slide-layout", wantErr: nil},
		{name: "digits", input: "theme1", wantErr: nil},
		{name: "empty", input: "", wantErr: ErrInvalidPartName},
		{name: "leading digit", input: "1theme", wantErr: ErrInvalidPartName},
		{name: "leading hyphen", input: "-theme", wantErr: ErrInvalidPartName},
		{name: "forward slash", input: "ooxml/theme", wantErr: ErrInvalidPartName},
		{name: "backslash", input: "ooxml\\theme", wantErr: ErrInvalidPartName},
		{name: "parent traversal", input: "../theme", wantErr: ErrInvalidPartName},
		{name: "extension included", input: "theme.xml", wantErr: ErrInvalidPartName},
		{name: "null byte", input: "theme\x00", wantErr: ErrInvalidPartName},
		{name: "non-ascii", input: "thème", wantErr: ErrInvalidPartName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidatePartName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePartName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePartName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
