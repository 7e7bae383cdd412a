package dto

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestOptionsFieldArrayForm(t *testing.T) {
	var req CreateElectionRequest
	body := `{"title":"Lunch Poll","type":"poll","options":["Yes, Pizza!","No, Tacos"]}`

	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := OptionsField{"Yes, Pizza!", "No, Tacos"}
	if !reflect.DeepEqual(req.Options, want) {
		t.Errorf("Options = %v, want %v", req.Options, want)
	}
}

func TestOptionsFieldStringForm(t *testing.T) {
	var opts OptionsField
	if err := json.Unmarshal([]byte(`" Alice ,Bob, Carol "`), &opts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := OptionsField{"Alice", "Bob", "Carol"}
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("Options = %v, want %v", opts, want)
	}
}

func TestOptionsFieldInvalidPayload(t *testing.T) {
	var opts OptionsField
	if err := json.Unmarshal([]byte(`42`), &opts); err == nil {
		t.Error("expected error for non-string, non-array payload")
	}
}
