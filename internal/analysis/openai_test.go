package analysis

import "testing"

func TestUnmarshalLenient(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "plain JSON object",
			input: `{"sentiment":"positive","moodScore":8}`,
		},
		{
			name:  "fenced with language tag",
			input: "```json\n{\"sentiment\":\"negative\",\"moodScore\":3}\n```",
		},
		{
			name:  "fenced without language tag",
			input: "```\n{\"sentiment\":\"neutral\",\"moodScore\":5}\n```",
		},
		{
			name:  "conversational filler around object",
			input: "Here is the analysis you asked for:\n{\"sentiment\":\"positive\",\"moodScore\":7}\nHope that helps!",
		},
		{
			name:    "no object at all",
			input:   "I could not analyze that entry.",
			wantErr: true,
		},
		{
			name:    "malformed object",
			input:   `{"sentiment": }`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result Result
			err := unmarshalLenient(tt.input, &result)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Sentiment == "" {
				t.Error("sentiment not populated")
			}
			if result.MoodScore == 0 {
				t.Error("moodScore not populated")
			}
		})
	}
}
