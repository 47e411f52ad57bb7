package view

import (
	"log/slog"
	"strconv"

	"github.com/soocke/screentext-go/config"
	"github.com/soocke/screentext-go/ui/presenter"
	"github.com/soocke/screentext-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level layout and wires UI callbacks.
// It implements presenter.ScanView.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	Thumb Thumbnail

	// Widgets
	ResultText     *TextWidget
	ScanButton     *TButtonWidget
	LanguageSelect *TComboboxWidget
	languages      []string
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout. languages populates the language selector.
// Handlers are invoked on user actions.
func (rv *RootView) Build(languages []string, onScan func(), onExit func(), onLanguageChanged func(name string)) {
	if rv == nil {
		return
	}
	rv.languages = languages
	w, h := 320, 240
	if rv.cfg != nil {
		w, h = rv.cfg.ThumbnailWidth, rv.cfg.ThumbnailHeight
	}

	// Row 0: language selector, scan and exit buttons
	lbl := TLabel(Txt("OCR language:"))
	Grid(lbl, Row(0), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	if len(languages) == 0 {
		languages = []string{"<none>"}
	}
	rv.LanguageSelect = TCombobox(Values(languages), Width(22), State("readonly"))
	Grid(rv.LanguageSelect, Row(0), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.LanguageSelect.Current(0)
	Bind(rv.LanguageSelect, "<<ComboboxSelected>>", Command(func() {
		idx, err := strconv.Atoi(rv.LanguageSelect.Current(nil))
		if err != nil || idx < 0 || idx >= len(rv.languages) {
			if rv.logger != nil {
				rv.logger.Error("language selection parse error", "error", err)
			}
			return
		}
		onLanguageChanged(rv.languages[idx])
	}))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(2), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.ScanButton = TButton(Txt("Take Screenshot & OCR"), Style(theme.StylePrimaryButton), Command(onScan))
	Grid(rv.ScanButton, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Rows 1-2: thumbnail and caption
	rv.Thumb = NewThumbnail(1, w, h, theme.StyleCaptionLabel)

	// Row 3: extracted text
	rv.ResultText = Text(Wrap("word"), Height(14), Width(70), Background(theme.ColorSurface), Foreground(theme.ColorText))
	Grid(rv.ResultText, Row(3), Column(0), Columnspan(3), Sticky("nswe"), Padx("0.4m"), Pady("0.4m"))
	GridRowConfigure(App, 3, Weight(1))
	GridColumnConfigure(App, 1, Weight(1))
	rv.ResultText.Configure(State("disabled"))
}

// SetScanEnabled toggles the scan button and the language selector together.
func (rv *RootView) SetScanEnabled(enabled bool) {
	if rv == nil {
		return
	}
	state := "disabled"
	if enabled {
		state = "normal"
	}
	if rv.ScanButton != nil {
		rv.ScanButton.Configure(State(state))
	}
	if rv.LanguageSelect != nil {
		if enabled {
			state = "readonly"
		}
		rv.LanguageSelect.Configure(State(state))
	}
}

// SetText replaces the result area content.
func (rv *RootView) SetText(text string) {
	if rv == nil || rv.ResultText == nil {
		return
	}
	rv.ResultText.Configure(State("normal"))
	rv.ResultText.Delete("1.0", END)
	rv.ResultText.Insert("1.0", text)
	rv.ResultText.Configure(State("disabled"))
}

// ShowThumbnail proxies to the thumbnail view.
func (rv *RootView) ShowThumbnail(path string) error {
	if rv == nil || rv.Thumb == nil {
		return nil
	}
	return rv.Thumb.Show(path)
}

// ShowPlaceholder proxies to the thumbnail view.
func (rv *RootView) ShowPlaceholder(caption string) {
	if rv != nil && rv.Thumb != nil {
		rv.Thumb.Placeholder(caption)
	}
}

// SelectLanguage sets the selector to name without firing the change handler.
func (rv *RootView) SelectLanguage(name string) {
	if rv == nil || rv.LanguageSelect == nil {
		return
	}
	for i, l := range rv.languages {
		if l == name {
			rv.LanguageSelect.Current(i)
			return
		}
	}
}

var _ presenter.ScanView = (*RootView)(nil)
