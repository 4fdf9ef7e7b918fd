package dialog

import "github.com/rook-computer/teeui/internal/text"

// Text ids of the dialog labels.
const (
	TextConfirm text.TextID = iota + 1
	TextCancel
	TextTitle
	TextHint
	// TextPrompt is supplied per request and has no catalog entry.
	TextPrompt
)

// DefaultLanguage is used when a requested language is not available.
const DefaultLanguage = "en"

// Catalog holds the translated fixed strings of the dialog.
var Catalog = text.NewCatalog(DefaultLanguage).
	Add("en", TextConfirm, "Press the power button to confirm").
	Add("en", TextCancel, "Press volume up to cancel").
	Add("en", TextTitle, "Protected Confirmation").
	Add("en", TextHint, "This confirmation provides an extra layer of security for the action that you're about to take").
	Add("de", TextConfirm, "Zum Bestätigen die Ein/Aus-Taste drücken").
	Add("de", TextCancel, "Zum Abbrechen die Lauter-Taste drücken").
	Add("de", TextTitle, "Geschützte Bestätigung").
	Add("de", TextHint, "Diese Bestätigung bietet zusätzliche Sicherheit für die Aktion, die Sie gerade ausführen").
	Add("fr", TextConfirm, "Appuyez sur le bouton Marche/Arrêt pour confirmer").
	Add("fr", TextCancel, "Appuyez sur Volume + pour annuler").
	Add("fr", TextTitle, "Confirmation protégée").
	Add("fr", TextHint, "Cette confirmation ajoute un niveau de sécurité supplémentaire à l'action que vous allez effectuer")

// Languages returns the languages with translations, sorted.
func Languages() []string { return Catalog.Languages() }
