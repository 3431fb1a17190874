package practicum

import (
	"errors"
	"testing"
)

func TestCheckResponse(t *testing.T) {
	tests := []struct {
		name    string
		resp    *StatusesResponse
		wantLen int
		wantErr error
	}{
		{
			name:    "nil response",
			resp:    nil,
			wantErr: ErrNoHomeworks,
		},
		{
			name:    "missing homeworks key",
			resp:    &StatusesResponse{CurrentDate: 1000},
			wantErr: ErrNoHomeworks,
		},
		{
			name:    "empty homeworks",
			resp:    &StatusesResponse{Homeworks: []Homework{}, CurrentDate: 1000},
			wantErr: ErrEmptyHomeworks,
		},
		{
			name: "valid response",
			resp: &StatusesResponse{
				Homeworks: []Homework{
					{Name: "hw2", Status: "approved"},
					{Name: "hw1", Status: "rejected"},
				},
				CurrentDate: 1000,
			},
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckResponse(tt.resp)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CheckResponse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckResponse() error = %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("CheckResponse() returned %d homeworks, want %d", len(got), tt.wantLen)
			}
			if got[0].Name != tt.resp.Homeworks[0].Name {
				t.Errorf("CheckResponse() reordered homeworks: got[0] = %q", got[0].Name)
			}
		})
	}
}
