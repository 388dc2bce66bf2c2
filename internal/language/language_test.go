// Package language provides unit tests for detection and translation.
package language

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/ai"
	"go.uber.org/zap"
)

// recordingGateway captures completion requests and plays back a script.
type recordingGateway struct {
	requests  []ai.CompletionRequest
	responses []string
	err       error
}

func (g *recordingGateway) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	g.requests = append(g.requests, req)
	if g.err != nil {
		return "", g.err
	}
	if len(g.responses) == 0 {
		return "", errors.New("no scripted response")
	}
	resp := g.responses[0]
	g.responses = g.responses[1:]
	return resp, nil
}

func TestService_Detect(t *testing.T) {
	svc := NewService(&recordingGateway{}, zap.NewNop())

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "english",
			text: "This government program provides housing assistance to qualifying families across the country.",
			want: "en",
		},
		{
			name: "spanish",
			text: "Este programa del gobierno proporciona asistencia de vivienda a las familias que califican en todo el país.",
			want: "es",
		},
		{
			name: "empty string undetermined",
			text: "",
			want: Undetermined,
		},
		{
			name: "short string undetermined",
			text: "hi",
			want: Undetermined,
		},
		{
			name: "short multibyte string undetermined",
			text: "你好世界",
			want: Undetermined,
		},
		{
			name: "whitespace only undetermined",
			text: "    \n\t  ",
			want: Undetermined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestService_Translate(t *testing.T) {
	gw := &recordingGateway{responses: []string{"Hola mundo"}}
	svc := NewService(gw, zap.NewNop())

	got, err := svc.Translate(context.Background(), "Hello world", "es")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hola mundo" {
		t.Errorf("Translate() = %q", got)
	}

	if len(gw.requests) != 1 {
		t.Fatalf("expected 1 completion call, got %d", len(gw.requests))
	}
	req := gw.requests[0]
	if req.Temperature != 0.2 {
		t.Errorf("temperature = %v, want 0.2", req.Temperature)
	}
	if want := "Spanish"; !strings.Contains(req.User, want) {
		t.Errorf("user prompt missing language name %q: %q", want, req.User)
	}
}

func TestService_TranslateAll(t *testing.T) {
	gw := &recordingGateway{responses: []string{"uno", "dos"}}
	svc := NewService(gw, zap.NewNop())

	got, err := svc.TranslateAll(context.Background(), []string{"one", "two"}, "es")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "uno" || got[1] != "dos" {
		t.Errorf("TranslateAll() = %v", got)
	}
}

func TestService_TranslateAllFailsFast(t *testing.T) {
	gw := &recordingGateway{err: errors.New("upstream down")}
	svc := NewService(gw, zap.NewNop())

	_, err := svc.TranslateAll(context.Background(), []string{"one", "two"}, "es")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(gw.requests) != 1 {
		t.Errorf("expected fail-fast after 1 call, got %d", len(gw.requests))
	}
}
