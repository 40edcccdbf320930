package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// execute runs command with args against the record file at path, and returns
// its exit status and what it printed.
func execute(t *testing.T, command subcommands.Command, path string, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()

	oldCfg, oldStdout := cfg, stdout
	defer func() { cfg, stdout = oldCfg, oldStdout }()
	cfg = Config{File: path, Currency: "USD"}
	var out bytes.Buffer
	stdout = &out

	f := flag.NewFlagSet(command.Name(), flag.ContinueOnError)
	f.SetOutput(&bytes.Buffer{})
	command.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %v: %v", args, err)
	}
	status := command.Execute(context.Background(), f)
	return status, out.String()
}

const sample = "2024-01-02,Расход,40,lunch\n2024-01-01,Доход,100,salary\n2024-01-02,food,7.5,\n"

func TestBalanceCommand(t *testing.T) {
	path := createTempRecords(t, sample)

	status, got := execute(t, &balanceCmd{}, path)
	if status != subcommands.ExitSuccess {
		t.Fatalf("balance exit status = %v", status)
	}
	for _, want := range []string{"| Income      | $100.00 |", "| Expenses    | $40.00 |", "**$60.00**"} {
		if !strings.Contains(got, want) {
			t.Errorf("balance output does not contain %q:\n%s", want, got)
		}
	}
}

func TestAddCommand(t *testing.T) {
	path := createTempRecords(t, sample)

	status, got := execute(t, &addCmd{}, path, "-d", "2023-12-31", "-c", "Доход", "-a", "5", "-m", "gift")
	if status != subcommands.ExitSuccess {
		t.Fatalf("add exit status = %v", status)
	}
	if want := "Successfully added record to " + path + "\n"; got != want {
		t.Errorf("add output = %q, want %q", got, want)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "2023-12-31,Доход,5,gift\n2024-01-01,Доход,100,salary\n2024-01-02,Расход,40,lunch\n2024-01-02,food,7.5,\n"
	if string(content) != want {
		t.Errorf("record file after add:\n%s\nwant:\n%s", content, want)
	}
}

func TestAddCommandUsage(t *testing.T) {
	path := createTempRecords(t, sample)

	testCases := []struct {
		name string
		args []string
	}{
		{name: "missing category", args: []string{"-a", "5"}},
		{name: "missing amount", args: []string{"-c", "food"}},
		{name: "bad amount", args: []string{"-c", "food", "-a", "five"}},
		{name: "bad date", args: []string{"-d", "yesterday", "-c", "food", "-a", "5"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if status, _ := execute(t, &addCmd{}, path, tc.args...); status != subcommands.ExitUsageError {
				t.Errorf("add %v exit status = %v, want usage error", tc.args, status)
			}
		})
	}
	content, _ := os.ReadFile(path)
	if string(content) != sample {
		t.Errorf("record file modified by invalid add: %q", content)
	}
}

func TestFindCommand(t *testing.T) {
	path := createTempRecords(t, sample)

	testCases := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "all",
			want: []string{"| 2024-01-02 | Расход | $40.00 | lunch |", "| 2024-01-01 | Доход | $100.00 | salary |", "3 records."},
		},
		{
			name:    "by date",
			args:    []string{"-d", "2024-01-02"},
			want:    []string{"lunch", "$7.50", "2 records."},
			notWant: []string{"salary"},
		},
		{
			name:    "by category and amount",
			args:    []string{"-c", "Расход", "-a", "40"},
			want:    []string{"lunch", "1 records."},
			notWant: []string{"salary", "food"},
		},
		{
			name: "no match",
			args: []string{"-c", "travel"},
			want: []string{"No records."},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, got := execute(t, &findCmd{}, path, tc.args...)
			if status != subcommands.ExitSuccess {
				t.Fatalf("find exit status = %v", status)
			}
			for _, want := range tc.want {
				if !strings.Contains(got, want) {
					t.Errorf("find output does not contain %q:\n%s", want, got)
				}
			}
			for _, notWant := range tc.notWant {
				if strings.Contains(got, notWant) {
					t.Errorf("find output contains %q:\n%s", notWant, got)
				}
			}
		})
	}
}

func TestFindCommandInvalidFilter(t *testing.T) {
	path := createTempRecords(t, sample)
	if status, _ := execute(t, &findCmd{}, path, "-a", "lots"); status != subcommands.ExitUsageError {
		t.Errorf("find exit status = %v, want usage error", status)
	}
}

func TestFmtCommand(t *testing.T) {
	path := createTempRecords(t, "  "+sample)

	status, got := execute(t, &fmtCmd{}, path)
	if status != subcommands.ExitSuccess {
		t.Fatalf("fmt exit status = %v", status)
	}
	if want := "Record file '" + path + "' has been formatted.\n"; got != want {
		t.Errorf("fmt output = %q, want %q", got, want)
	}
	content, _ := os.ReadFile(path)
	want := "2024-01-01,Доход,100,salary\n2024-01-02,Расход,40,lunch\n2024-01-02,food,7.5,\n"
	if string(content) != want {
		t.Errorf("record file after fmt:\n%s\nwant:\n%s", content, want)
	}
}

func TestFmtCommandMalformed(t *testing.T) {
	for _, content := range []string{
		sample + "2024-01-03,food\n",
		sample + "\n",
	} {
		path := createTempRecords(t, content)

		if status, _ := execute(t, &fmtCmd{}, path); status != subcommands.ExitFailure {
			t.Errorf("fmt on %q exit status = %v, want failure", content, status)
		}
		got, _ := os.ReadFile(path)
		if string(got) != content {
			t.Errorf("malformed record file was modified: %q", got)
		}
	}
}

func TestCommandsCreateMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	status, got := execute(t, &findCmd{}, path)
	if status != subcommands.ExitSuccess {
		t.Fatalf("find exit status = %v", status)
	}
	if !strings.Contains(got, "No records.") {
		t.Errorf("find output on a new file:\n%s", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("record file was not created: %v", err)
	}
}

func TestExportCommand(t *testing.T) {
	path := createTempRecords(t, "2024-01-01,Доход,100,salary\n2024-01-02,Расход,40.5,\n")

	status, got := execute(t, &exportCmd{}, path)
	if status != subcommands.ExitSuccess {
		t.Fatalf("export exit status = %v", status)
	}
	want := `[
  {
    "date": "2024-01-01",
    "category": "Доход",
    "amount": 100,
    "comment": "salary"
  },
  {
    "date": "2024-01-02",
    "category": "Расход",
    "amount": 40.5
  }
]
`
	if got != want {
		t.Errorf("export output:\n%s\nwant:\n%s", got, want)
	}
}

func TestQueryCommand(t *testing.T) {
	path := createTempRecords(t, sample)

	status, got := execute(t, &queryCmd{}, path, `$[?(@.category=="Расход")].comment`)
	if status != subcommands.ExitSuccess {
		t.Fatalf("query exit status = %v", status)
	}
	if want := "[\n  \"lunch\"\n]\n"; got != want {
		t.Errorf("query output = %q, want %q", got, want)
	}

	if status, _ := execute(t, &queryCmd{}, path); status != subcommands.ExitUsageError {
		t.Errorf("query without expression exit status = %v, want usage error", status)
	}
	if status, _ := execute(t, &queryCmd{}, path, "$["); status != subcommands.ExitFailure {
		t.Errorf("query with invalid expression exit status = %v, want failure", status)
	}
}

func TestTopicCommand(t *testing.T) {
	status, got := execute(t, &topicCmd{}, "unused.txt")
	if status != subcommands.ExitSuccess {
		t.Fatalf("topic exit status = %v", status)
	}
	if !strings.Contains(got, "file-format") {
		t.Errorf("topic index does not list file-format:\n%s", got)
	}
	if status, _ := execute(t, &topicCmd{}, "unused.txt", "nope"); status != subcommands.ExitFailure {
		t.Errorf("topic nope exit status = %v, want failure", status)
	}
}
