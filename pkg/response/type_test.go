package response_test

import (
	"encoding/json"
	"errors"
	"testing"

	"astro-chart-api/pkg/response"
)

func TestNewErrorResp(t *testing.T) {
	resp := response.NewErrorResp(errors.New("boom"))
	if resp.Success {
		t.Errorf("expected success=false")
	}
	if resp.Error != "boom" {
		t.Errorf("expected error 'boom', got %q", resp.Error)
	}

	resp = response.NewErrorResp(nil)
	if resp.Error != response.DefaultErrorMessage {
		t.Errorf("expected default message, got %q", resp.Error)
	}
}

func TestRespOmitsEmptyFields(t *testing.T) {
	b, err := json.Marshal(response.NewOKResp(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"success":true}` {
		t.Errorf("unexpected body: %s", b)
	}

	b, _ = json.Marshal(response.NewErrorResp(errors.New("x")))
	if string(b) != `{"success":false,"error":"x"}` {
		t.Errorf("unexpected body: %s", b)
	}
}
