package core

import (
	"errors"
	"testing"
)

func TestValidatePath(t *testing.T) {
	accessor := TextField(func(p product) string { return p.Name })

	tests := []struct {
		name    string
		path    *Path
		wantErr error
	}{
		{
			name:    "valid leaf path",
			path:    Leaf(accessor),
			wantErr: nil,
		},
		{
			name: "valid nested path",
			path: Nested(
				ListField(func(p product) []store { return p.Stores }),
				Leaf(TextField(func(s store) string { return s.Name })),
			),
			wantErr: nil,
		},
		{
			name:    "nil path",
			path:    nil,
			wantErr: ErrNilPath,
		},
		{
			name:    "nil accessor at root",
			path:    Leaf(nil),
			wantErr: ErrNilAccessor,
		},
		{
			name:    "nil accessor in tail",
			path:    Nested(accessor, Leaf(nil)),
			wantErr: ErrNilAccessor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePath() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePath() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidPath) {
				t.Errorf("ValidatePath() error = %v, want wrapped %v", err, ErrInvalidPath)
			}
		})
	}
}
