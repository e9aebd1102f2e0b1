package annotate

import "testing"

func TestParseReply(t *testing.T) {
	tests := []struct {
		name   string
		reply  string
		n      int
		want   []string
		wantOK bool
	}{
		{
			name:   "three fields",
			reply:  "Sensei,Borrowing,原文「先生」を音写しているため。",
			n:      3,
			want:   []string{"Sensei", "Borrowing", "原文「先生」を音写しているため。"},
			wantOK: true,
		},
		{
			name:   "commas in the last field survive",
			reply:  "the sensei,Borrowing,受容,敬称をそのまま提示し、補足を加えず、読者に委ねているため。",
			n:      4,
			want:   []string{"the sensei", "Borrowing", "受容", "敬称をそのまま提示し、補足を加えず、読者に委ねているため。"},
			wantOK: true,
		},
		{
			name:   "surrounding whitespace trimmed",
			reply:  "  Denial , 色彩情報が削除されているため。 \n",
			n:      2,
			want:   []string{"Denial", "色彩情報が削除されているため。"},
			wantOK: true,
		},
		{
			name:   "code fence stripped",
			reply:  "```\nSensei,Borrowing,音写のため。\n```",
			n:      3,
			want:   []string{"Sensei", "Borrowing", "音写のため。"},
			wantOK: true,
		},
		{
			name:   "too few fields",
			reply:  "Borrowing",
			n:      3,
			want:   []string{SentinelParseError, SentinelParseError, "形式不正: Borrowing"},
			wantOK: false,
		},
		{
			name:   "empty reply",
			reply:  "",
			n:      2,
			want:   []string{SentinelParseError, "形式不正: "},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseReply(tt.reply, tt.n)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d fields, want %d: %q", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("field %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTaskByName(t *testing.T) {
	tests := []struct {
		name       string
		arg        string
		wantFields int
		wantErr    bool
	}{
		{name: "method", arg: "method", wantFields: 3},
		{name: "dmis", arg: "dmis", wantFields: 2},
		{name: "combined", arg: "combined", wantFields: 4},
		{name: "case insensitive", arg: " Method ", wantFields: 3},
		{name: "unknown", arg: "summarize", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := TaskByName(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if task.Fields != tt.wantFields {
				t.Errorf("Fields = %d, want %d", task.Fields, tt.wantFields)
			}
			if len(task.Columns) != tt.wantFields {
				t.Errorf("got %d columns for %d fields", len(task.Columns), tt.wantFields)
			}
			if task.BuildPrompt == nil {
				t.Error("BuildPrompt is nil")
			}
		})
	}
}
