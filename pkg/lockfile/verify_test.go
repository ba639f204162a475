package lockfile

import (
	"errors"
	"strings"
	"testing"
)

func TestVerify(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantErr  bool
		expected int
		actual   int
	}{
		{
			name: "well formed",
			in:   "PODS:\n  - A (1.0):\n    - B (~> 0.5)\n    - C\n  - B (2.0)\n  - C (3.0)\n",
		},
		{
			name:     "unrecognised indentation",
			in:       "PODS:\n  - A (1.0):\n      - B (1.0)\n  - B (1.0)\n",
			wantErr:  true,
			expected: 3,
			actual:   2,
		},
		{
			name:     "stray content",
			in:       "PODS:\n  - A (1.0)\nnot a pod\n",
			wantErr:  true,
			expected: 2,
			actual:   1,
		},
		{
			name:     "duplicate pod",
			in:       "PODS:\n  - A (1.0)\n  - A (1.0)\n",
			wantErr:  true,
			expected: 2,
			actual:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lock, err := Parse(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			err = lock.Verify()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Verify() = %v, want nil", err)
				}
				if got := lock.Len() + lock.DependencyCount(); got != lock.Lines() {
					t.Errorf("records = %d, lines = %d", got, lock.Lines())
				}
				return
			}

			var se *StructuralError
			if !errors.As(err, &se) {
				t.Fatalf("Verify() = %v, want *StructuralError", err)
			}
			if se.Expected != tt.expected || se.Actual != tt.actual {
				t.Errorf("Expected/Actual = %d/%d, want %d/%d", se.Expected, se.Actual, tt.expected, tt.actual)
			}
		})
	}
}

func TestVerify_ReportsDuplicates(t *testing.T) {
	lock, _ := Parse(strings.NewReader("PODS:\n  - A (1.0)\n  - A (2.0)\n"))

	err := lock.Verify()
	if err == nil || !strings.Contains(err.Error(), "declared more than once: A") {
		t.Errorf("Verify() = %v, want duplicate names in message", err)
	}
}
