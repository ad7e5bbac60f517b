package dto

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"array of strings", `["1","2","3"]`, []string{"1", "2", "3"}},
		{"array of numbers", `[1,2,3]`, []string{"1", "2", "3"}},
		{"comma joined", `"1, 2,3"`, []string{"1", "2", "3"}},
		{"single value", `"42"`, []string{"42"}},
		{"empty string", `""`, []string{}},
		{"empty array", `[]`, []string{}},
		{"trailing comma", `"7,"`, []string{"7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if !reflect.DeepEqual([]string(got), tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	var got StringList
	if err := json.Unmarshal([]byte(`{"a":1}`), &got); err == nil {
		t.Error("expected error for object input")
	}
}
