package common

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/Freeeeeet/outpass_staff_bot/internal/outpass"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type FontStyle string

const (
	FontStyleDefault FontStyle = ""
	FontStyleBold    FontStyle = "bold"
)

// Sizes and paddings
const (
	imageWidth        = 1200
	imageHeight       = 520
	headerHeight      = 130
	stageTop          = 200
	stageHeight       = 150
	stageGap          = 90
	sidePadding       = 60
	stageBorderRadius = 14.0
	shadowOffset      = 4.0
	legendTop         = 430
)

// Font sizes
const (
	titleFontSize    = 34.0
	subtitleFontSize = 22.0
	stageFontSize    = 26.0
	statusFontSize   = 20.0
	legendFontSize   = 18.0
)

var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{60, 65, 70, 255}
	subtitleColor    = color.RGBA{110, 115, 120, 230}
	emergencyColor   = color.RGBA{220, 53, 69, 255}
	connectorColor   = color.RGBA{150, 150, 150, 255}
	stageShadowColor = color.RGBA{0, 0, 0, 25}
	stageTextColor   = color.RGBA{20, 24, 28, 235}

	completedColor     = color.RGBA{133, 193, 85, 230}
	activeColor        = color.RGBA{255, 205, 86, 240}
	rejectedColor      = color.RGBA{240, 128, 128, 240}
	notYetReachedColor = color.RGBA{215, 215, 215, 230}
)

var (
	fontsOnce   sync.Once
	parsedFonts map[FontStyle]*opentype.Font
)

// loadFont sets the Go font of the given style, falling back to basicfont
func loadFont(dc *gg.Context, size float64, style FontStyle) {
	fontsOnce.Do(func() {
		parsedFonts = make(map[FontStyle]*opentype.Font)
		if f, err := opentype.Parse(goregular.TTF); err == nil {
			parsedFonts[FontStyleDefault] = f
		}
		if f, err := opentype.Parse(gobold.TTF); err == nil {
			parsedFonts[FontStyleBold] = f
		}
	})

	parsed, ok := parsedFonts[style]
	if !ok {
		parsed, ok = parsedFonts[FontStyleDefault]
	}
	if ok {
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			dc.SetFontFace(face)
			return
		}
	}
	dc.SetFontFace(basicfont.Face7x13)
}

// GenerateWorkflowImage renders the approval stages of a request as a PNG
func GenerateWorkflowImage(r *model.OutpassRequest) ([]byte, error) {
	stages := outpass.Stages(r)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()

	drawWorkflowHeader(dc, r)
	drawStages(dc, stages)
	drawWorkflowLegend(dc)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode workflow image: %w", err)
	}
	return buf.Bytes(), nil
}

func drawWorkflowHeader(dc *gg.Context, r *model.OutpassRequest) {
	loadFont(dc, titleFontSize, FontStyleBold)
	dc.SetColor(textColor)
	title := fmt.Sprintf("%s  ·  %s", r.Name, r.RegisterNumber)
	dc.DrawStringAnchored(title, sidePadding, headerHeight/2, 0, 0)

	loadFont(dc, subtitleFontSize, FontStyleDefault)
	dc.SetColor(subtitleColor)
	subtitle := fmt.Sprintf("%s  ·  %s  →  %s",
		r.OutpassType,
		formatting.FormatBackendDate(r.FromDate),
		formatting.FormatBackendDate(r.ToDate))
	dc.DrawStringAnchored(subtitle, sidePadding, headerHeight/2+38, 0, 0)

	if r.IsEmergency() {
		loadFont(dc, subtitleFontSize, FontStyleBold)
		dc.SetColor(emergencyColor)
		dc.DrawStringAnchored("EMERGENCY", imageWidth-sidePadding, headerHeight/2, 1, 0)
	}
}

func drawStages(dc *gg.Context, stages []outpass.Stage) {
	if len(stages) == 0 {
		return
	}

	n := float64(len(stages))
	stageWidth := (imageWidth - 2*sidePadding - (n-1)*stageGap) / n

	for i, s := range stages {
		x := sidePadding + float64(i)*(stageWidth+stageGap)
		y := float64(stageTop)

		if i > 0 {
			drawConnector(dc, x-stageGap, x, y+stageHeight/2)
		}
		drawStage(dc, s, x, y, stageWidth)
	}
}

func drawStage(dc *gg.Context, s outpass.Stage, x, y, w float64) {
	fill := stageColor(s.Display)

	dc.SetColor(stageShadowColor)
	dc.DrawRoundedRectangle(x+shadowOffset, y+shadowOffset, w, stageHeight, stageBorderRadius)
	dc.Fill()

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x, y, w, stageHeight, stageBorderRadius)
	dc.Fill()

	dc.SetColor(darkenColor(fill, 0.8))
	dc.SetLineWidth(2)
	if s.Display == outpass.DisplayNotYetReached {
		dc.SetDash(8, 6)
	}
	dc.DrawRoundedRectangle(x, y, w, stageHeight, stageBorderRadius)
	dc.Stroke()
	dc.SetDash()

	loadFont(dc, stageFontSize, FontStyleBold)
	dc.SetColor(stageTextColor)
	dc.DrawStringAnchored(formatting.StageTitle(s.Name), x+w/2, y+stageHeight/2-18, 0.5, 0.5)

	loadFont(dc, statusFontSize, FontStyleDefault)
	dc.DrawStringAnchored(formatting.GetStageDisplay(s.Display).Text, x+w/2, y+stageHeight/2+22, 0.5, 0.5)
}

func drawConnector(dc *gg.Context, fromX, toX, y float64) {
	dc.SetColor(connectorColor)
	dc.SetLineWidth(3)
	dc.DrawLine(fromX+10, y, toX-14, y)
	dc.Stroke()

	dc.MoveTo(toX-6, y)
	dc.LineTo(toX-20, y-9)
	dc.LineTo(toX-20, y+9)
	dc.ClosePath()
	dc.Fill()
}

func drawWorkflowLegend(dc *gg.Context) {
	items := []outpass.DisplayState{
		outpass.DisplayCompleted,
		outpass.DisplayActive,
		outpass.DisplayRejected,
		outpass.DisplayNotYetReached,
	}

	boxW, boxH := 22.0, 16.0
	x := float64(sidePadding)
	y := float64(legendTop)

	loadFont(dc, legendFontSize, FontStyleDefault)
	for _, item := range items {
		dc.SetColor(stageColor(item))
		dc.DrawRoundedRectangle(x, y, boxW, boxH, 3)
		dc.Fill()

		label := formatting.GetStageDisplay(item).Text
		dc.SetColor(subtitleColor)
		dc.DrawStringAnchored(label, x+boxW+8, y+boxH/2, 0, 0.35)

		w, _ := dc.MeasureString(label)
		x += boxW + 8 + w + 36
	}
}

func stageColor(d outpass.DisplayState) color.RGBA {
	switch d {
	case outpass.DisplayCompleted:
		return completedColor
	case outpass.DisplayActive:
		return activeColor
	case outpass.DisplayRejected:
		return rejectedColor
	default:
		return notYetReachedColor
	}
}

func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
