// Package annotate classifies aligned translation pairs with a hosted
// generative model, one API round trip per dataset row.
package annotate

import (
	"fmt"
	"strings"
)

// Output column headers, matching the headers the dataset was built with.
const (
	ColTranslatedTerm = "文化的要素の対応訳"
	ColMethod         = "翻訳技法"
	ColMethodReason   = "翻訳技法の選出理由"

	ColDMIS       = "DMIS"
	ColDMISReason = "DMISの選出理由"

	ColCombinedTerm   = "文化的要素の英訳句/語"
	ColCombinedMethod = "ヴィネイとダルベルネの翻訳7分類"
	ColCombinedDMIS   = "ベネットの異文化感受性モデル"
	ColRemark         = "備考"
)

// Input is the per-row material a prompt is built from. Optional fields
// may be blank; prompt builders substitute a literal "none" placeholder.
type Input struct {
	HighlightJP string
	HighlightEN string
	Note        string
	Annotation  string
	PriorTerm   string
}

// Task parameterizes one annotation variant: which prompt it sends, how
// many comma-separated fields a well-formed reply carries, and which
// columns receive them. The last column always receives the free-text
// rationale and any diagnostic detail.
type Task struct {
	Name        string
	Columns     []string
	Fields      int
	BuildPrompt func(Input) string
}

// MethodTask labels each pair with a Vinay & Darbelnet translation
// procedure: translated term, procedure, rationale.
func MethodTask() Task {
	return Task{
		Name:        "method",
		Columns:     []string{ColTranslatedTerm, ColMethod, ColMethodReason},
		Fields:      3,
		BuildPrompt: MethodPrompt,
	}
}

// DMISTask labels each pair with a Bennett DMIS stage: stage, rationale.
func DMISTask() Task {
	return Task{
		Name:        "dmis",
		Columns:     []string{ColDMIS, ColDMISReason},
		Fields:      2,
		BuildPrompt: DMISPrompt,
	}
}

// CombinedTask labels procedure and DMIS stage in one pass: translated
// term, procedure, stage, remark.
func CombinedTask() Task {
	return Task{
		Name:        "combined",
		Columns:     []string{ColCombinedTerm, ColCombinedMethod, ColCombinedDMIS, ColRemark},
		Fields:      4,
		BuildPrompt: CombinedPrompt,
	}
}

// TaskByName resolves a task from its CLI name.
func TaskByName(name string) (Task, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "method":
		return MethodTask(), nil
	case "dmis":
		return DMISTask(), nil
	case "combined":
		return CombinedTask(), nil
	default:
		return Task{}, fmt.Errorf("unknown task %q (supported: method, dmis, combined)", name)
	}
}
