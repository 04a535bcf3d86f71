package stylist

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsk_KeywordBuckets(t *testing.T) {
	svc := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	tests := []struct {
		name       string
		prompt     string
		wantSubstr string
	}{
		{name: "вечеринка по-индонезийски", prompt: "Aku mau ke PESTA pernikahan", wantSubstr: "Glitter Bomb"},
		{name: "вечеринка по-английски", prompt: "garden party vibes", wantSubstr: "Glitter Bomb"},
		{name: "офис", prompt: "besok ke kantor", wantSubstr: "Nude Glazed Donut"},
		{name: "отпуск", prompt: "liburan ke pantai", wantSubstr: "Aura Nails"},
		{name: "по умолчанию", prompt: "sesuatu yang artistik", wantSubstr: "Marble Nails"},
		{name: "пустой запрос", prompt: "", wantSubstr: "Marble Nails"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := svc.Ask(ctx, tt.prompt)
			assert.Contains(t, reply.Text, tt.wantSubstr)
			assert.NotEmpty(t, reply.Image)
		})
	}
}

func TestAsk_FirstBucketWins(t *testing.T) {
	svc := New(slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Запрос попадает и в "вечеринку", и в "отпуск": побеждает первая корзина.
	reply := svc.Ask(context.Background(), "pesta di pantai")
	assert.Contains(t, reply.Text, "Glitter Bomb")
}
