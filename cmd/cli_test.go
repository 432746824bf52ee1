package cmd

import "testing"

func TestExtractConfigPath(t *testing.T) {
	var testCases = []struct {
		args     []string
		expected string
	}{
		{[]string{"serve", "-f", "config.yaml"}, "config.yaml"},
		{[]string{"serve", "--config", "config.yaml"}, "config.yaml"},
		{[]string{"list-tools", "--config=etc/asc.yaml"}, "etc/asc.yaml"},
		{[]string{"serve"}, ""},
		{[]string{"-f"}, ""},
	}
	for i, tc := range testCases {
		if got := extractConfigPath(tc.args); got != tc.expected {
			t.Fatalf("[%d] extractConfigPath(%v) = %q; expected %q", i, tc.args, got, tc.expected)
		}
	}
}
