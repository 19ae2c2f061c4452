package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_StampsServiceName(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "info", Output: &buf, Service: "innerview-api"})
	log.Info().Msg("hello")

	line := buf.String()
	if !strings.Contains(line, `"service":"innerview-api"`) {
		t.Fatalf("service field missing from output: %s", line)
	}
}

func TestInit_OnlyFirstCallWins(t *testing.T) {
	Reset()
	defer Reset()

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	log := Init(Options{Output: &second})
	log.Info().Msg("hello")

	if second.Len() != 0 {
		t.Fatalf("second Init reconfigured the singleton")
	}
	if first.Len() == 0 {
		t.Fatalf("log line did not reach the first writer")
	}
}

func TestParseLevel_Default(t *testing.T) {
	if got := parseLevel("verbose"); got.String() != "info" {
		t.Fatalf("unknown level mapped to %s, want info", got)
	}
}
