package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/cli"
)

func TestConfirmRestart(t *testing.T) {
	testCases := map[string]struct {
		input string
		want  bool
	}{
		"yes":          {input: "y\n", want: true},
		"yes in words": {input: "YES\n", want: true},
		"no":           {input: "n\n", want: false},
		"enter":        {input: "\n", want: false},
		"other":        {input: "maybe\n", want: false},
		"closed input": {input: "", want: false},
		"no newline":   {input: "y", want: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			p := cli.NewLinePrompterForTest(strings.NewReader(tc.input), &out)
			gt.V(t, p.ConfirmRestart(3, 10)).Equal(tc.want)
			gt.S(t, out.String()).Contains("project 4 of 10")
		})
	}
}

func TestContinueNextBatch(t *testing.T) {
	testCases := map[string]struct {
		input string
		want  bool
	}{
		"enter":        {input: "\n", want: true},
		"anything":     {input: "go\n", want: true},
		"quit":         {input: "q\n", want: false},
		"quit upper":   {input: " Q \n", want: false},
		"closed input": {input: "", want: false},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			p := cli.NewLinePrompterForTest(strings.NewReader(tc.input), &out)
			gt.V(t, p.ContinueNextBatch(2)).Equal(tc.want)
			gt.S(t, out.String()).Contains("batch 2")
		})
	}
}

func TestPrompterReadsSequentialAnswers(t *testing.T) {
	var out bytes.Buffer
	p := cli.NewLinePrompterForTest(strings.NewReader("n\n\nq\n"), &out)

	gt.False(t, p.ConfirmRestart(1, 5))
	gt.True(t, p.ContinueNextBatch(2))
	gt.False(t, p.ContinueNextBatch(3))
}
