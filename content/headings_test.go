package content

import (
	"strings"
	"testing"
)

func TestHeadingID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"Hello, World!", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Multiple   spaces", "multiple-spaces"},
		{"already-hyphenated", "already-hyphenated"},
		{"Mixed - Hyphens -- and spaces", "mixed-hyphens-and-spaces"},
		{"UPPERCASE", "uppercase"},
		{"Numbers 123 work", "numbers-123-work"},
		{"ひらがなの見出し", "section"},
		{"Kana ひらがな chart", "kana-chart"},
		{"", "section"},
		{"---", "section"},
	}
	for _, tt := range tests {
		got := HeadingID(tt.input)
		if got != tt.expected {
			t.Errorf("HeadingID(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestHeadingIDGuarantees(t *testing.T) {
	inputs := []string{
		"Some Heading", "--edge--", "a  b\tc", "日本語 only です", "What's New in 2024?",
	}
	for _, input := range inputs {
		id := HeadingID(input)
		if id != strings.ToLower(id) {
			t.Errorf("HeadingID(%q) = %q is not lowercase", input, id)
		}
		if strings.HasPrefix(id, "-") || strings.HasSuffix(id, "-") {
			t.Errorf("HeadingID(%q) = %q has an edge hyphen", input, id)
		}
		if strings.Contains(id, "--") {
			t.Errorf("HeadingID(%q) = %q contains a double hyphen", input, id)
		}
		if id == "" {
			t.Errorf("HeadingID(%q) returned an empty id", input)
		}
	}
}

func TestExtractHeadings(t *testing.T) {
	body := "intro text\n\n## A\n\nsome prose\n\n### B\n\n#### C\n\n## D\n"
	headings := ExtractHeadings(body)
	if len(headings) != 4 {
		t.Fatalf("got %d headings, want 4: %v", len(headings), headings)
	}
	wantLevels := []int{2, 3, 4, 2}
	wantIDs := []string{"a", "b", "c", "d"}
	wantText := []string{"A", "B", "C", "D"}
	for i, h := range headings {
		if h.Level != wantLevels[i] {
			t.Errorf("heading %d level = %d, want %d", i, h.Level, wantLevels[i])
		}
		if h.ID != wantIDs[i] {
			t.Errorf("heading %d id = %q, want %q", i, h.ID, wantIDs[i])
		}
		if h.Text != wantText[i] {
			t.Errorf("heading %d text = %q, want %q", i, h.Text, wantText[i])
		}
	}
}

func TestExtractHeadingsExcludesLevels(t *testing.T) {
	body := "# Title\n\n## Kept\n\n##### Too Deep\n\n###### Deeper\n"
	headings := ExtractHeadings(body)
	if len(headings) != 1 {
		t.Fatalf("got %d headings, want 1: %v", len(headings), headings)
	}
	if headings[0].Text != "Kept" || headings[0].Level != 2 {
		t.Errorf("got %+v, want level-2 %q", headings[0], "Kept")
	}
}

func TestExtractHeadingsSkipsFencedCode(t *testing.T) {
	body := "## Real\n\n```sh\n## not a heading\n```\n\n### Also Real\n"
	headings := ExtractHeadings(body)
	if len(headings) != 2 {
		t.Fatalf("got %d headings, want 2: %v", len(headings), headings)
	}
	if headings[0].Text != "Real" || headings[1].Text != "Also Real" {
		t.Errorf("unexpected headings: %v", headings)
	}
}

func TestExtractHeadingsEmpty(t *testing.T) {
	for _, body := range []string{"", "plain prose only", "# Title only\n"} {
		if got := ExtractHeadings(body); len(got) != 0 {
			t.Errorf("ExtractHeadings(%q) = %v, want none", body, got)
		}
	}
}

func TestExtractHeadingsDeterministic(t *testing.T) {
	body := "## One\n### Two\n"
	first := ExtractHeadings(body)
	second := ExtractHeadings(body)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("heading %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
