package report

import (
	"sort"
	"strings"

	"github.com/honyaku-lab/honyakukit/internal/dataset"
)

// CrossTab is a method-by-DMIS frequency table with fixed axis orders.
type CrossTab struct {
	Methods []string
	DMIS    []string

	// Counts is indexed [method][dmis].
	Counts [][]int

	// Labels present in the data but missing from the fixed orders,
	// sorted. Rows carrying them are not counted.
	UndefinedMethods []string
	UndefinedDMIS    []string
}

// Build tabulates label pair frequencies from two columns of tbl. Values
// are trimmed; blank values are ignored without being reported.
func Build(tbl *dataset.Table, methodCol, dmisCol string, cats Categories) (*CrossTab, error) {
	if err := tbl.Require(methodCol, dmisCol); err != nil {
		return nil, err
	}

	methodIdx := indexOf(cats.Methods)
	dmisIdx := indexOf(cats.DMIS)

	ct := &CrossTab{
		Methods: cats.Methods,
		DMIS:    cats.DMIS,
		Counts:  make([][]int, len(cats.Methods)),
	}
	for i := range ct.Counts {
		ct.Counts[i] = make([]int, len(cats.DMIS))
	}

	unknownMethods := map[string]bool{}
	unknownDMIS := map[string]bool{}

	for i := 0; i < tbl.Len(); i++ {
		method := strings.TrimSpace(tbl.Get(i, methodCol))
		dmis := strings.TrimSpace(tbl.Get(i, dmisCol))

		mi, mok := methodIdx[method]
		di, dok := dmisIdx[dmis]
		if method != "" && !mok {
			unknownMethods[method] = true
		}
		if dmis != "" && !dok {
			unknownDMIS[dmis] = true
		}
		if mok && dok {
			ct.Counts[mi][di]++
		}
	}

	ct.UndefinedMethods = sortedKeys(unknownMethods)
	ct.UndefinedDMIS = sortedKeys(unknownDMIS)
	return ct, nil
}

// Max returns the largest cell count.
func (ct *CrossTab) Max() int {
	max := 0
	for _, row := range ct.Counts {
		for _, n := range row {
			if n > max {
				max = n
			}
		}
	}
	return max
}

func indexOf(labels []string) map[string]int {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		// First occurrence wins if an order list repeats a label.
		if _, ok := idx[l]; !ok {
			idx[l] = i
		}
	}
	return idx
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
