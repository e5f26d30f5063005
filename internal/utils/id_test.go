package utils

import (
	"strings"
	"testing"
)

func TestGenerateSessionID(t *testing.T) {
	a, err := GenerateSessionID()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := GenerateSessionID()

	if !strings.HasPrefix(a, "SES") || len(a) != 35 {
		t.Errorf("unexpected id %q", a)
	}
	if a == b {
		t.Error("ids should differ")
	}
}
