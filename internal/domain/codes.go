package domain

import (
	"sort"
	"sync"

	"github.com/sajari/fuzzy"
)

// Code identifies a kind of comment style violation.
type Code string

const (
	CodeBlockComment                Code = "block_comment"
	CodeBlockStartsEmpty            Code = "block_starts_empty"
	CodeBlockEndsEmpty              Code = "block_ends_empty"
	CodeNoSectionEndingPunctuation  Code = "no_section_ending_punctuation"
	CodeNoLeadingSpace              Code = "no_leading_space"
	CodeNoLeadingSpaceAfterTag      Code = "no_leading_space_after_tag"
	CodeStartsWithLowercase         Code = "starts_with_lowercase"
	CodeStartsWithLowercaseAfterTag Code = "starts_with_lowercase_after_tag"
	CodeNoEndingPunctuation         Code = "no_ending_punctuation"
	CodeTrailingComment             Code = "trailing_comment"
)

// Messages maps each violation code to its human-readable description.
var Messages = map[Code]string{
	CodeBlockComment:                "Block comment",
	CodeBlockStartsEmpty:            "Comment blocks can't start with an empty line",
	CodeBlockEndsEmpty:              "Comment blocks can't end with an empty line",
	CodeNoSectionEndingPunctuation:  "Sections of comment blocks must end with `.` or `:`",
	CodeNoLeadingSpace:              "Non-empty line comments must start with a space",
	CodeNoLeadingSpaceAfterTag:      "Tagged comments must start with a space",
	CodeStartsWithLowercase:         "Letters at the start of comment sections must be capitalised",
	CodeStartsWithLowercaseAfterTag: "Letters at the start of tagged comments must be capitalised",
	CodeNoEndingPunctuation:         "Comment blocks must end with `.`",
	CodeTrailingComment:             "Comments must be on their own line",
}

// ValidCodes enumerates every violation code in reporting order.
var ValidCodes = []Code{
	CodeBlockComment,
	CodeBlockStartsEmpty,
	CodeBlockEndsEmpty,
	CodeNoSectionEndingPunctuation,
	CodeNoLeadingSpace,
	CodeNoLeadingSpaceAfterTag,
	CodeStartsWithLowercase,
	CodeStartsWithLowercaseAfterTag,
	CodeNoEndingPunctuation,
	CodeTrailingComment,
}

// IsValidCode reports whether name is a known violation code.
func IsValidCode(name string) bool {
	_, ok := Messages[Code(name)]
	return ok
}

// Message returns the description for c, or the code itself if unknown.
func (c Code) Message() string {
	if msg, ok := Messages[c]; ok {
		return msg
	}
	return string(c)
}

var (
	codeModel     *fuzzy.Model
	codeModelOnce sync.Once
)

// SuggestCode returns the known code closest to name, or "" when nothing is
// within two edits. Safe for concurrent use.
func SuggestCode(name string) string {
	codeModelOnce.Do(func() {
		model := fuzzy.NewModel()
		model.SetDepth(2)
		model.SetThreshold(1)
		for _, c := range ValidCodes {
			model.TrainWord(string(c))
		}
		codeModel = model
	})
	return codeModel.SpellCheck(name)
}

// SortedCodes returns the members of set ordered by ValidCodes.
func SortedCodes(set map[Code]bool) []Code {
	codes := make([]Code, 0, len(set))
	for c := range set {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codeRank(codes[i]) < codeRank(codes[j]) })
	return codes
}

func codeRank(c Code) int {
	for i, v := range ValidCodes {
		if v == c {
			return i
		}
	}
	return len(ValidCodes)
}

// CodeInfo pairs a code with its message for listings.
type CodeInfo struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// CodeTable lists every code in reporting order.
func CodeTable() []CodeInfo {
	out := make([]CodeInfo, 0, len(ValidCodes))
	for _, c := range ValidCodes {
		out = append(out, CodeInfo{Code: c, Message: c.Message()})
	}
	return out
}
