package view

import (
	"github.com/soocke/screentext-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Thumbnail shows a scaled preview of the last screenshot with a caption.
type Thumbnail interface {
	Show(path string) error
	Placeholder(caption string)
}

type thumbnail struct {
	imageLabel   *LabelWidget
	captionLabel *TLabelWidget
	width        int
	height       int
	prevPhoto    *Img // last Tk photo, deleted before replacement
}

// NewThumbnail creates the preview label and caption at the given grid row.
func NewThumbnail(row, width, height int, captionStyle string) Thumbnail {
	if width < 50 {
		width = 50
	}
	if height < 50 {
		height = 50
	}
	photo := NewPhoto(Data(images.EncodePNG(images.Placeholder(width, height))))
	img := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	caption := TLabel(Txt(""), Style(captionStyle))
	Grid(img, Row(row), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	Grid(caption, Row(row+1), Column(0), Columnspan(3), Sticky("w"), Padx("0.4m"))
	return &thumbnail{imageLabel: img, captionLabel: caption, width: width, height: height, prevPhoto: photo}
}

// Show loads the image at path and replaces the preview. The caption is cleared.
func (v *thumbnail) Show(path string) error {
	img, err := images.LoadThumbnail(path, v.width, v.height)
	if err != nil {
		return err
	}
	v.replace(images.EncodePNG(img))
	v.captionLabel.Configure(Txt(""))
	return nil
}

// Placeholder clears the preview and shows caption instead.
func (v *thumbnail) Placeholder(caption string) {
	v.replace(images.EncodePNG(images.Placeholder(v.width, v.height)))
	v.captionLabel.Configure(Txt(caption))
}

func (v *thumbnail) replace(pngBytes []byte) {
	if v.imageLabel == nil {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.imageLabel.Configure(Image(v.prevPhoto))
}
