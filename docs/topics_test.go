package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fence info strings that make a code block part of an executable
// scenario. A plain bash block is documentation only.
const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	consoleCheck = "console check"
	bashCheck    = "bash check"
)

// TestTopics keeps the topic files and the readme.md index in sync,
// both ways.
func TestTopics(t *testing.T) {
	listed := readmeTopics(t)

	// Every topic announced in the index must load.
	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("GetTopic(%q): %v", topic, err)
			}
		})
	}

	// And every topic file must be announced in the index.
	inReadme := make(map[string]bool, len(listed))
	for _, topic := range listed {
		inReadme[topic] = true
	}
	topics, err := Topics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range topics {
		if !inReadme[topic] {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

// readmeTopics extracts the topic names from the readme.md bullet list.
func readmeTopics(t *testing.T) []string {
	t.Helper()

	content, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatal(err)
	}
	re := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	var topics []string
	for _, line := range strings.Split(string(content), "\n") {
		if m := re.FindStringSubmatch(line); m != nil {
			topics = append(topics, strings.TrimSpace(m[1]))
		}
	}
	return topics
}

// TestCodeBlocks plays the executable scenarios of every topic and of
// the project README against a freshly built binary.
func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runBlocks(t, file)
		})
	}
}

// block is one fenced scenario step lifted from a markdown file.
type block struct {
	kind string
	text string
	file string
	line int
}

// scenarioBlocks extracts the fenced code blocks whose info string
// names one of the scenario kinds, in document order.
func scenarioBlocks(t *testing.T, file string) []block {
	t.Helper()

	source, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks []block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(source))
		switch kind {
		case bashSetup, bashRun, consoleCheck, bashCheck:
		default:
			return ast.WalkContinue, nil
		}

		var body strings.Builder
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			body.Write(lines.At(i).Value(source))
		}
		blocks = append(blocks, block{
			kind: kind,
			text: body.String(),
			file: file,
			// The parser does not track line numbers; count newlines
			// up to the fence instead.
			line: 1 + bytes.Count(source[:fcb.Info.Segment.Start], []byte("\n")),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// scenario runs the blocks of one file in order: a setup opens a fresh
// working directory, a run records its output, checks assert on it.
type scenario struct {
	env        []string
	dir        string
	lastOutput string
}

func (s *scenario) step(t *testing.T, b block) {
	t.Helper()

	switch b.kind {
	case consoleCheck:
		want := strings.TrimSpace(b.text)
		// The terminal renderer emits tabs, the documented transcripts
		// use spaces.
		got := strings.ReplaceAll(strings.TrimSpace(s.lastOutput), "\t", "        ")
		if got != want {
			// Plain text first, escaped after, to make whitespace
			// mismatches visible.
			t.Errorf("%s:%d: output mismatch:\ngot:\n\n%s\n\nwant:\n\n%s\n\ngot: %q\nwant: %q", b.file, b.line, got, want, got, want)
		}
		return
	case bashSetup:
		s.dir = t.TempDir()
	}

	cmd := exec.Command("bash", "-c", "set -e; "+b.text)
	cmd.Dir = s.dir
	cmd.Env = s.env
	output, err := cmd.CombinedOutput()
	if b.kind == bashRun {
		s.lastOutput = string(output)
	}
	if err == nil {
		return
	}
	if b.kind == bashCheck {
		t.Errorf("%s:%d: %s failed: %v with output:\n%s", b.file, b.line, b.kind, err, output)
		return
	}
	t.Fatalf("%s:%d: %s failed: %v with output:\n%s", b.file, b.line, b.kind, err, output)
}

// runBlocks builds the binary once and plays the file's blocks in order.
func runBlocks(t *testing.T, file string) {
	t.Helper()

	blocks := scenarioBlocks(t, file)
	if len(blocks) == 0 {
		return
	}

	bin := buildStks(t)
	path := fmt.Sprintf("PATH=%s%c%s", filepath.Dir(bin), os.PathListSeparator, os.Getenv("PATH"))

	s := scenario{
		env: append(os.Environ(), path),
		dir: t.TempDir(),
	}
	for _, b := range blocks {
		s.step(t, b)
	}
}

// buildStks compiles the stks binary into a scratch directory and
// returns its path.
func buildStks(t *testing.T) string {
	t.Helper()

	bin := filepath.Join(t.TempDir(), "stks")
	if out, err := exec.Command("go", "build", "-o", bin, "../stks/").CombinedOutput(); err != nil {
		t.Fatalf("building stks: %v\n%s", err, out)
	}
	return bin
}
