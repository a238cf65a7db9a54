package common

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWorkflowImage(t *testing.T) {
	tests := []struct {
		name string
		req  *model.OutpassRequest
	}{
		{
			name: "hostel emergency",
			req: &model.OutpassRequest{
				Name: "Asha", RegisterNumber: "21CS001", OutpassType: "Emergency",
				ResidenceType: model.ResidenceHostel, StaffApproval: model.ApprovalApproved,
			},
		},
		{
			name: "day scholar rejected",
			req: &model.OutpassRequest{
				Name: "Bala", RegisterNumber: "21ME042",
				ResidenceType: model.ResidenceDayScholar, StaffApproval: model.ApprovalRejected,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := GenerateWorkflowImage(tt.req)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, imageWidth, img.Bounds().Dx())
			assert.Equal(t, imageHeight, img.Bounds().Dy())
		})
	}
}
