package icons

import (
	"log"

	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var (
	IconGlaze     *widget.Icon
	IconDropDown  *widget.Icon
	IconPalette   *widget.Icon
	IconWallpaper *widget.Icon
	IconCheck     *widget.Icon
	IconError     *widget.Icon
)

func init() {
	loadIcon := func(data []byte, name string) *widget.Icon {
		if len(data) == 0 {
			log.Printf("Icon data for %s is empty!", name)
			return nil
		}
		ic, err := widget.NewIcon(data)
		if err != nil {
			log.Printf("Failed to load %s: %v", name, err)
		}
		return ic
	}

	IconGlaze = loadIcon(icons.ImageBrush, "IconGlaze")
	IconDropDown = loadIcon(icons.NavigationArrowDropDown, "IconDropDown")
	IconPalette = loadIcon(icons.ImagePalette, "IconPalette")
	IconWallpaper = loadIcon(icons.DeviceWallpaper, "IconWallpaper")
	IconCheck = loadIcon(icons.ActionCheckCircle, "IconCheck")
	IconError = loadIcon(icons.AlertError, "IconError")
}
