package display

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	msgLoading   = "Loading weather data"
	msgSpeed     = "Wind speed: %s"
	msgDirection = "Wind direction: %s"
	msgArrow     = "Arrow: %s %s° %s"
	msgError     = "Oh no! %s"
)

func init() {
	sv := language.Swedish
	message.SetString(sv, msgLoading, "Laddar väderdata")
	message.SetString(sv, msgSpeed, "Vindhastighet: %s")
	message.SetString(sv, msgDirection, "Vindriktning: %s")
	message.SetString(sv, msgArrow, "Pil: %s %s° %s")
	message.SetString(sv, msgError, "Åh nej! %s")
}

// Labels formats the screen text in one language
type Labels struct {
	printer *message.Printer
}

// NewLabels returns labels for lang, falling back to English for unknown tags
func NewLabels(lang string) *Labels {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Labels{printer: message.NewPrinter(tag)}
}

func (l *Labels) Loading() string {
	return l.printer.Sprintf(msgLoading)
}

func (l *Labels) Speed(text string) string {
	return l.printer.Sprintf(msgSpeed, text)
}

func (l *Labels) Direction(text string) string {
	return l.printer.Sprintf(msgDirection, text)
}

func (l *Labels) Arrow(glyph, rotation, color string) string {
	return l.printer.Sprintf(msgArrow, glyph, rotation, color)
}

func (l *Labels) Error(reason string) string {
	return l.printer.Sprintf(msgError, reason)
}
