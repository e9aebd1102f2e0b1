package annotate

import "strings"

// Sentinel values written into output columns instead of raising errors,
// so a multi-hour batch run degrades row by row and the operator can grep
// the output afterwards.
const (
	// SentinelDataMissing marks rows whose required source or target
	// text was absent; no API call is made for them.
	SentinelDataMissing = "データ欠落"

	// SentinelParseError marks rows whose reply did not have the
	// expected field count.
	SentinelParseError = "解析エラー"

	// SentinelCallFailed marks rows whose API call failed even after
	// retries.
	SentinelCallFailed = "API呼び出し失敗"

	reasonDataMissing = "Highlight_JPまたはHighlight_ENが空です"
	reasonCallFailed  = "APIからの応答がありませんでした"
)

// ParseReply splits a model reply into exactly n comma-separated fields,
// trimmed. Only the last field may contain commas (the free-text
// rationale); splitting stops after n-1 commas. A reply with fewer than n
// fields is not recovered: every field becomes the parse-error sentinel
// and the last carries the raw reply as diagnostic detail, with ok false.
//
// Known limitation: an unescaped comma inside any field before the last
// shifts the remaining fields. The reply format demands a single
// comma-separated line, so this is flagged downstream via the undefined
// label report rather than guessed at here.
func ParseReply(reply string, n int) (fields []string, ok bool) {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	reply = strings.TrimSpace(reply)

	parts := strings.SplitN(reply, ",", n)
	if len(parts) < n {
		fields = make([]string, n)
		for i := range fields {
			fields[i] = SentinelParseError
		}
		fields[n-1] = "形式不正: " + reply
		return fields, false
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true
}
