package controller

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
)

func TestIsDialogMessage(t *testing.T) {
	tests := []struct {
		name   string
		update *models.Update
		want   bool
	}{
		{name: "callback", update: &models.Update{CallbackQuery: &models.CallbackQuery{}}, want: false},
		{name: "command", update: &models.Update{Message: &models.Message{Text: "/students"}}, want: false},
		{name: "reply", update: &models.Update{Message: &models.Message{Text: "going home"}}, want: true},
		{name: "empty", update: &models.Update{Message: &models.Message{}}, want: false},
		{name: "document", update: &models.Update{Message: &models.Message{Document: &models.Document{FileName: "roster.xlsx"}}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDialogMessage(tt.update))
		})
	}
}
