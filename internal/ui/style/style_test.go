package style

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer)
		want  []string
	}{
		{
			name:  "success",
			print: func(p *Printer) { p.Success("project %q created", "proj1") },
			want:  []string{successMark, `project "proj1" created`},
		},
		{
			name:  "failure",
			print: func(p *Printer) { p.Failure("user %q not created", "alice") },
			want:  []string{failureMark, `user "alice" not created`},
		},
		{
			name:  "warning",
			print: func(p *Printer) { p.Warn("no security group for %s", "proj1") },
			want:  []string{warnMark, "no security group for proj1"},
		},
		{
			name:  "resource",
			print: func(p *Printer) { p.Resource("network", "private", "net-1") },
			want:  []string{"network", "private", "net-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewPrinter(&buf))

			out := buf.String()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
		})
	}
}
