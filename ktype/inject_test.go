package ktype

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestInject(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{
			name:     "string is quoted",
			template: "select $0",
			args:     []any{"name"},
			want:     `select "name"`,
		},
		{
			name:     "numbers are bare",
			template: "limit $0 offset $1",
			args:     []any{10, 2.5},
			want:     "limit 10 offset 2.5",
		},
		{
			name:     "repeated placeholder",
			template: "$0-$0",
			args:     []any{1},
			want:     "1-1",
		},
		{
			name:     "missing argument kept",
			template: "a $0 b $3",
			args:     []any{true},
			want:     "a true b $3",
		},
		{
			name:     "two digits",
			template: "$10",
			args:     []any{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, "ten"},
			want:     `"ten"`,
		},
		{
			name:     "leading zero is one digit",
			template: "$05",
			args:     []any{"zero"},
			want:     `"zero"5`,
		},
		{
			name:     "no placeholders",
			template: "plain $ text",
			want:     "plain $ text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Inject(tt.template, tt.args...))
		})
	}
}
