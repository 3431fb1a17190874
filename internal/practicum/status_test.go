package practicum

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		homework Homework
		want     string
		wantErr  error
	}{
		{
			name:     "approved",
			homework: Homework{Name: "hw1", Status: "approved"},
			want:     `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`,
		},
		{
			name:     "reviewing",
			homework: Homework{Name: "hw1", Status: "reviewing"},
			want:     `Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`,
		},
		{
			name:     "rejected",
			homework: Homework{Name: "hw1", Status: "rejected"},
			want:     `Изменился статус проверки работы "hw1". Работа проверена: у ревьюера есть замечания.`,
		},
		{
			name:     "missing name",
			homework: Homework{Status: "approved"},
			wantErr:  ErrMissingName,
		},
		{
			name:     "missing status",
			homework: Homework{Name: "hw1"},
			wantErr:  ErrMissingStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.homework)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseStatus() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStatusUnknown(t *testing.T) {
	_, err := ParseStatus(Homework{Name: "hw1", Status: "pending"})

	var unknownErr *UnknownStatusError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("ParseStatus() error = %v, want *UnknownStatusError", err)
	}
	if unknownErr.Status != "pending" {
		t.Errorf("UnknownStatusError.Status = %q, want %q", unknownErr.Status, "pending")
	}
}
