package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/folio/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// NavLink is one anchor button of the header
type NavLink struct {
	Label  string
	Anchor string // "#about"
}

// NavUI is the fixed page header with anchor buttons
type NavUI struct {
	UI *ebitenui.UI

	OnNavigate func(anchor string)

	links     []NavLink
	brandFace text.Face
	linkFace  text.Face
}

func NewNavUI(brand string, links []NavLink, onNavigate func(anchor string)) (*NavUI, error) {
	ui := &NavUI{
		OnNavigate: onNavigate,
		links:      links,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI(brand)
	return ui, nil
}

func (ui *NavUI) loadFonts() error {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load nav font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("load nav brand font: %w", err)
	}

	ui.brandFace = &text.GoTextFace{Source: bold, Size: 18}
	ui.linkFace = &text.GoTextFace{Source: regular, Size: 13}
	return nil
}

func (ui *NavUI) buildUI(brand string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 10, Bottom: 10, Left: 16, Right: 16}
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Nav.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(cfg.Nav.Height)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)

	brandLabel := widget.NewLabel(
		widget.LabelOpts.Text(brand, &ui.brandFace, &widget.LabelColor{
			Idle: cfg.Page.Primary,
		}),
	)
	bar.AddChild(brandLabel)

	for _, link := range ui.links {
		bar.AddChild(ui.buildLinkButton(link))
	}

	rootContainer.AddChild(bar)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *NavUI) buildLinkButton(link NavLink) *widget.Button {
	anchor := link.Anchor
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.Nav.ButtonColor),
			Hover:   image.NewNineSliceColor(cfg.Nav.ButtonHover),
			Pressed: image.NewNineSliceColor(cfg.Nav.ButtonHover),
		}),
		widget.ButtonOpts.Text(link.Label, &ui.linkFace, &widget.ButtonTextColor{
			Idle:    cfg.Nav.TextColor,
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: cfg.Page.Primary,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnNavigate != nil {
				ui.OnNavigate(anchor)
			}
		}),
	)
}

func (ui *NavUI) Update() {
	ui.UI.Update()
}
