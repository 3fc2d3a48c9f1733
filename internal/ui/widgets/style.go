package widgets

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/glaze-ui/glaze/internal/ui/icons"
)

const (
	DefaultPageMaxWidth = unit.Dp(1180)
)

type BannerTone int

const (
	BannerInfo BannerTone = iota
	BannerSuccess
	BannerWarning
	BannerError
)

func ConstrainMaxWidth(gtx layout.Context, max unit.Dp, w layout.Widget) layout.Dimensions {
	return layout.N.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		maxPx := gtx.Dp(max)
		if gtx.Constraints.Max.X > maxPx {
			gtx.Constraints.Max.X = maxPx
		}
		if gtx.Constraints.Min.X > gtx.Constraints.Max.X {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
		}
		return w(gtx)
	})
}

// Section is a bordered card on the secondary background.
func Section(gtx layout.Context, th *Theme, w layout.Widget) layout.Dimensions {
	return Border(gtx, th, th.Border, func(gtx layout.Context) layout.Dimensions {
		return Card(gtx, th, th.BgSecondary, w)
	})
}

// bannerColors returns the background and foreground for a tone.
func bannerColors(th *Theme, tone BannerTone) (bg, fg color.NRGBA) {
	switch tone {
	case BannerSuccess:
		return th.SuccessBg, th.Success
	case BannerWarning:
		return th.WarningBg, th.Warning
	case BannerError:
		return th.DangerBg, th.Danger
	}
	return th.InfoBg, th.Info
}

func bannerIcon(tone BannerTone) *widget.Icon {
	switch tone {
	case BannerSuccess:
		return icons.IconCheck
	case BannerWarning, BannerError:
		return icons.IconError
	}
	return nil
}

func Banner(gtx layout.Context, th *Theme, tone BannerTone, text string) layout.Dimensions {
	if text == "" {
		return layout.Dimensions{}
	}
	bg, fg := bannerColors(th, tone)
	return Border(gtx, th, fg, func(gtx layout.Context) layout.Dimensions {
		return CustomCard(gtx, bg, th.BorderRadiusLg, unit.Dp(10), func(gtx layout.Context) layout.Dimensions {
			return IconLabel(gtx, th, bannerIcon(tone), text, fg, unit.Sp(14))
		})
	})
}

func PrimaryButton(th *Theme, c *widget.Clickable, text string) material.ButtonStyle {
	btn := material.Button(th.Material, c, text)
	btn.Background = th.Accent
	btn.Color = th.AccentText
	btn.CornerRadius = th.BorderRadius
	btn.Inset = layout.Inset{Top: th.PaddingV, Bottom: th.PaddingV, Left: th.PaddingH, Right: th.PaddingH}
	btn.TextSize = unit.Sp(14)
	btn.Font.Weight = font.Bold
	return btn
}

func SecondaryButton(th *Theme, c *widget.Clickable, text string) material.ButtonStyle {
	btn := PrimaryButton(th, c, text)
	btn.Background = th.SurfaceVariant
	btn.Color = th.TextPrimary
	return btn
}

// IconButton is a clickable rounded pill with an icon and a label in the
// accent colours.
func IconButton(gtx layout.Context, th *Theme, c *widget.Clickable, icon *widget.Icon, text string) layout.Dimensions {
	bg := th.Accent
	switch {
	case c.Pressed():
		bg = th.AccentPressed
	case c.Hovered():
		bg = th.AccentHover
	}
	return material.Clickable(gtx, c, func(gtx layout.Context) layout.Dimensions {
		return CustomCard(gtx, bg, th.BorderRadius, th.PaddingV, func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Left: th.PaddingSm, Right: th.PaddingSm}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return IconLabel(gtx, th, icon, text, th.AccentText, unit.Sp(14))
			})
		})
	})
}

// Subtitle is a secondary-coloured caption.
func Subtitle(th *Theme, text string) material.LabelStyle {
	l := material.Body2(th.Material, text)
	l.Color = th.TextSecondary
	return l
}

func EmptyState(gtx layout.Context, th *Theme, title, subtitle string) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				l := material.Body1(th.Material, title)
				l.Color = th.TextPrimary
				l.Font.Weight = font.Bold
				return l.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
			layout.Rigid(Subtitle(th, subtitle).Layout),
		)
	})
}
