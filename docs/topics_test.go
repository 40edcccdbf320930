package docs

import (
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/wallet"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// recordsBlock is the info string of fenced blocks holding a record file.
const recordsBlock = "records"

// TestTopics checks that the readme lists exactly the available topics.
func TestTopics(t *testing.T) {
	readme, err := GetTopic(index)
	if err != nil {
		t.Fatalf("GetTopic(%q) returned an unexpected error: %v", index, err)
	}

	topicRegex := regexp.MustCompile(`(?m)^\*\s+([^:]+):.*$`)
	var listed []string
	for _, m := range topicRegex.FindAllStringSubmatch(readme, -1) {
		listed = append(listed, strings.TrimSpace(m[1]))
	}
	slices.Sort(listed)

	if all := GetAllTopics(); !slices.Equal(listed, all) {
		t.Errorf("readme lists topics %v, available topics are %v", listed, all)
	}
	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("GetTopic(%q) returned an unexpected error: %v", topic, err)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Errorf("GetTopic(%q) expected an error", "nope")
	}
}

func TestGetTopicsStar(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) returned an unexpected error: %v", err)
	}
	for _, topic := range GetAllTopics() {
		content, _ := GetTopic(topic)
		if !strings.Contains(all, content) {
			t.Errorf("GetTopics(*) is missing topic %q", topic)
		}
	}
}

// TestRecordExamples checks that every record file example in the docs can be decoded.
func TestRecordExamples(t *testing.T) {
	found := 0
	for _, topic := range GetAllTopics() {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		for _, block := range fencedBlocks(t, []byte(content), recordsBlock) {
			found++
			if _, err := wallet.DecodeRecords(strings.NewReader(block)); err != nil {
				t.Errorf("topic %q: invalid records example: %v\n%s", topic, err, block)
			}
		}
	}
	if found == 0 {
		t.Errorf("no %q example found in the docs", recordsBlock)
	}
}

// fencedBlocks returns the content of the fenced code blocks with the given info string.
func fencedBlocks(t *testing.T, content []byte, info string) []string {
	t.Helper()
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil || string(fcb.Info.Segment.Value(content)) != info {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, b.String())
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk markdown: %v", err)
	}
	return blocks
}
