package models

// pickLang escolhe o campo no idioma pedido, com fallback para RU
// (idioma base do marketplace)
func pickLang(ru, en, uz, lang string) string {
	switch lang {
	case "en":
		if en != "" {
			return en
		}
	case "uz":
		if uz != "" {
			return uz
		}
	}
	return ru
}
