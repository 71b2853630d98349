package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the title screen: the last result, the running tally and the
// Fight and Quit buttons.
type MenuUI struct {
	UI *ebitenui.UI

	OnFight func()
	OnQuit  func()

	resultLabel *widget.Label
	tallyLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(onFight, onQuit func()) *MenuUI {
	ui := &MenuUI{
		OnFight: onFight,
		OnQuit:  onQuit,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 40}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (ui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("TILEBRAWL", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	ui.resultLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.resultLabel)

	ui.tallyLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(ui.tallyLabel)

	contentContainer.AddChild(ui.buildButtons())
	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MenuUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	fightButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 32)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text("Fight", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnFight != nil {
				ui.OnFight()
			}
		}),
	)
	container.AddChild(fightButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 32)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Quit", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnQuit != nil {
				ui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	return container
}

// SetResult shows the outcome of the last match.
func (ui *MenuUI) SetResult(msg string) {
	if ui.resultLabel != nil {
		ui.resultLabel.Label = msg
	}
}

// SetTally shows the saved win counts.
func (ui *MenuUI) SetTally(msg string) {
	if ui.tallyLabel != nil {
		ui.tallyLabel.Label = msg
	}
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}

func (ui *MenuUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
