package news

import "testing"

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "  Markets   rose\n today ", want: "Markets rose today"},
		{name: "html", input: "<p>Stocks <b>rallied</b></p>\n<p>again</p>", want: "Stocks rallied again"},
		{name: "entities", input: "AT&amp;T earnings", want: "AT&T earnings"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plainText(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
