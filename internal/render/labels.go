package render

import "github.com/mithrel/profilemd/pkg/models"

// Labels is the localized text used by the renderer.
type Labels struct {
	Greeting        string
	DefaultSubtitle string
	Tech            string
	Projects        string
	Connect         string
}

var (
	labelsEN = Labels{
		Greeting:        "Hi, I'm",
		DefaultSubtitle: "A passionate developer from Planet Earth",
		Tech:            "🛠️ Technologies & Tools",
		Projects:        "🚀 Featured Projects",
		Connect:         "Connect with me",
	}
	labelsPTBR = Labels{
		Greeting:        "Olá, eu sou",
		DefaultSubtitle: "Um desenvolvedor apaixonado por tecnologia",
		Tech:            "🛠️ Tecnologias e Ferramentas",
		Projects:        "🚀 Projetos em Destaque",
		Connect:         "Entre em contato",
	}
)

// LabelsFor returns the label set for a locale; unknown locales get English.
func LabelsFor(l models.Locale) Labels {
	switch l {
	case models.LocalePTBR:
		return labelsPTBR
	default:
		return labelsEN
	}
}

// Locales lists the locales with a dedicated label set.
func Locales() []models.Locale {
	return []models.Locale{models.LocaleEN, models.LocalePTBR}
}
