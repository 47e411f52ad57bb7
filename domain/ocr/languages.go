package ocr

// Language pairs a human-readable name with the engine language code.
type Language struct {
	Name string
	Code string
}

// DefaultLanguage is the display name selected on first launch.
const DefaultLanguage = "English"

// Languages lists the supported languages in display order.
var Languages = []Language{
	{Name: "English", Code: "en"},
	{Name: "Chinese (Simplified)", Code: "ch"},
	{Name: "French", Code: "fr"},
	{Name: "German", Code: "de"},
	{Name: "Japanese", Code: "japan"},
	{Name: "Korean", Code: "korean"},
}

// tesseractLanguages maps engine codes to Tesseract traineddata names.
var tesseractLanguages = map[string]string{
	"en":     "eng",
	"ch":     "chi_sim",
	"fr":     "fra",
	"de":     "deu",
	"japan":  "jpn",
	"korean": "kor",
}

// LanguageCode returns the engine code for a display name.
func LanguageCode(name string) (string, bool) {
	for _, l := range Languages {
		if l.Name == name {
			return l.Code, true
		}
	}
	return "", false
}

// DefaultLanguageCode returns the code of DefaultLanguage.
func DefaultLanguageCode() string {
	code, _ := LanguageCode(DefaultLanguage)
	return code
}

// LanguageNames returns the display names in order.
func LanguageNames() []string {
	names := make([]string, len(Languages))
	for i, l := range Languages {
		names[i] = l.Name
	}
	return names
}

// TesseractLanguage translates an engine code to a Tesseract language name.
func TesseractLanguage(code string) (string, bool) {
	t, ok := tesseractLanguages[code]
	return t, ok
}
