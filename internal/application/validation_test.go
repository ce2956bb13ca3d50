package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid value",
			fieldName: "folderName",
			value:     "EDET_Seminario_01",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "folderName",
			value:     "",
			wantErr:   true,
			wantMsg:   "folderName: folder name is required",
		},
		{
			name:      "whitespace only",
			fieldName: "folderName",
			value:     "   ",
			wantErr:   true,
			wantMsg:   "folderName: folder name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if err.Error() != tt.wantMsg {
					t.Errorf("expected message %q, got %q", tt.wantMsg, err.Error())
				}
			}
		})
	}
}

func TestResolveSeminar(t *testing.T) {
	for id := 1; id <= 7; id++ {
		s, err := ResolveSeminar(id)
		if err != nil {
			t.Errorf("ResolveSeminar(%d) unexpected error: %v", id, err)
			continue
		}
		if s.ID != id {
			t.Errorf("ResolveSeminar(%d) returned seminar %d", id, s.ID)
		}
	}

	for _, id := range []int{0, 8, 99, -3} {
		_, err := ResolveSeminar(id)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("ResolveSeminar(%d) expected ErrNotFound, got %v", id, err)
		}
		var nf *NotFoundError
		if !errors.As(err, &nf) || nf.SeminarID != id {
			t.Errorf("ResolveSeminar(%d) error %v does not carry the seminar id", id, err)
		}
	}
}
