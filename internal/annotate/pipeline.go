package annotate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/honyaku-lab/honyakukit/internal/dataset"
	"github.com/honyaku-lab/honyakukit/internal/providers"
	"github.com/honyaku-lab/honyakukit/internal/retry"
)

var errEmptyReply = errors.New("empty reply from model")

// Pipeline drives one annotation task over a dataset, pacing API calls
// and downgrading per-row failures to sentinel values.
type Pipeline struct {
	Provider    providers.Provider
	Model       string
	Temperature float64
	Task        Task

	MaxRetries int
	RetryDelay time.Duration
	Interval   time.Duration

	Log *RunLog

	// Sleep replaces time.Sleep, for tests.
	Sleep func(time.Duration)
}

// Stats summarizes a completed run.
type Stats struct {
	Total   int
	Success int
	Errors  int
}

// Run annotates every row of tbl in place. The source and target columns
// must exist; the task's output columns are created when absent. Rows
// already carrying a value in the first output column are re-annotated,
// matching a fresh batch run over the whole file.
func (p *Pipeline) Run(ctx context.Context, tbl *dataset.Table) (Stats, error) {
	var stats Stats

	if err := tbl.Require(dataset.ColHighlightJP, dataset.ColHighlightEN); err != nil {
		return stats, err
	}
	tbl.EnsureColumns(p.Task.Columns...)

	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	stats.Total = tbl.Len()
	for i := 0; i < tbl.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		jp := strings.TrimSpace(tbl.Get(i, dataset.ColHighlightJP))
		en := strings.TrimSpace(tbl.Get(i, dataset.ColHighlightEN))
		if jp == "" || en == "" {
			// Row 1 is the header, so humans see i+2 in their editor.
			p.Log.Logf("行%d: 必須データが欠落しています（%s）", i+2, reasonDataMissing)
			p.writeSentinels(tbl, i, SentinelDataMissing, reasonDataMissing)
			stats.Errors++
			continue
		}

		prompt := p.Task.BuildPrompt(Input{
			HighlightJP: jp,
			HighlightEN: en,
			Note:        tbl.Get(i, dataset.ColNote),
			Annotation:  tbl.Get(i, dataset.ColAnnotation),
			PriorTerm:   tbl.Get(i, ColTranslatedTerm),
		})

		row := i
		reply, err := retry.Do(ctx, retry.Config{
			Attempts: p.MaxRetries,
			Delay:    p.RetryDelay,
			Sleep:    sleep,
			OnAttemptFailure: func(attempt int, err error) {
				if errors.Is(err, errEmptyReply) {
					p.Log.Logf("行%d: API応答が空です（試行 %d/%d）", row+2, attempt, p.MaxRetries)
					return
				}
				p.Log.Logf("行%d: API呼び出しエラー（試行 %d/%d）: %v", row+2, attempt, p.MaxRetries, err)
			},
		}, func(ctx context.Context) (string, error) {
			return p.generate(ctx, prompt)
		})
		if err != nil {
			p.writeSentinels(tbl, i, SentinelCallFailed, reasonCallFailed)
			stats.Errors++
			sleep(p.Interval)
			continue
		}

		fields, ok := ParseReply(reply, p.Task.Fields)
		for j, col := range p.Task.Columns {
			tbl.Set(i, col, fields[j])
		}
		if ok {
			stats.Success++
		} else {
			p.Log.Logf("行%d: 応答の形式が不正です: %s", i+2, reply)
			stats.Errors++
		}

		sleep(p.Interval)
	}

	return stats, nil
}

func (p *Pipeline) generate(ctx context.Context, prompt string) (string, error) {
	reply, err := p.Provider.GenerateText(ctx, providers.Config{
		Model:       p.Model,
		Temperature: p.Temperature,
		Prompt:      prompt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate annotation: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", errEmptyReply
	}
	return strings.TrimSpace(reply), nil
}

// writeSentinels fills every output column with sentinel, putting reason
// into the last column instead.
func (p *Pipeline) writeSentinels(tbl *dataset.Table, row int, sentinel, reason string) {
	for j, col := range p.Task.Columns {
		if j == len(p.Task.Columns)-1 {
			tbl.Set(row, col, reason)
			continue
		}
		tbl.Set(row, col, sentinel)
	}
}
