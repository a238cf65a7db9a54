package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/Freeeeeet/outpass_staff_bot/internal/outpass"
)

// Renders the workflow picture of a sample request, for checking the layout
func main() {
	out := flag.String("out", "workflow.png", "output PNG file")
	emergency := flag.Bool("emergency", false, "render an emergency request")
	flag.Parse()

	now := time.Now()
	r := &model.OutpassRequest{
		ID:                   "sample",
		RegisterNumber:       "21CS045",
		Name:                 "Bala K",
		Year:                 "III",
		Department:           "CSE",
		HostelName:           "Main Block",
		RoomNo:               "B-204",
		Reason:               "Family function",
		FromDate:             now.AddDate(0, 0, 1).Format("2006-01-02"),
		ToDate:               now.AddDate(0, 0, 3).Format("2006-01-02"),
		OutpassType:          "Home visit",
		ResidenceType:        model.ResidenceHostel,
		AppliedDate:          now.Format(time.RFC3339),
		StaffApproval:        model.ApprovalApproved,
		StaffApprovedBy:      "Dr. Priya",
		YearInchargeApproval: model.ApprovalPending,
		WardenApproval:       model.ApprovalPending,
	}
	if *emergency {
		r.OutpassType = model.OutpassTypeEmergency
	}

	imageData, err := common.GenerateWorkflowImage(r)
	if err != nil {
		fmt.Printf("Failed to render workflow: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, imageData, 0644); err != nil {
		fmt.Printf("Failed to save file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Workflow saved to %s\n", *out)
	for _, s := range outpass.Stages(r) {
		fmt.Printf("   %s: %s\n", s.Name, s.Display)
	}
}
